// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// LowerUpper re-expresses child, a distribution on a fixed canonical
// domain, onto the target domain [lower, upper] through an affine map.
// The child is not modified; the wrapper is a new instance whose
// operations translate arguments and results across the map.
//
// The child must have finite support bounds and lower must be strictly
// below upper, otherwise LowerUpper fails with ErrBadDomain. The
// child's parameters are resolved during construction, so a child with
// an unresolvable dependent parameter is rejected with that error.
func LowerUpper(child *Dist, lower, upper float64) (*Dist, error) {
	return lowerUpper(child, lower, upper, nil)
}

func lowerUpper(child *Dist, lower, upper float64, str StrFunc) (*Dist, error) {
	if !(lower < upper) {
		return nil, fmt.Errorf("lower=%v upper=%v: %w", lower, upper, ErrBadDomain)
	}
	// Bounds resolves every child parameter, including dependent ones.
	// A child whose parameters cannot be resolved is rejected here, with
	// the error surfaced, instead of turning into NaN evaluations later.
	clo, chi, err := child.Bounds()
	if err != nil {
		return nil, err
	}
	if math.IsInf(clo, 0) || math.IsInf(chi, 0) || !(clo < chi) {
		return nil, fmt.Errorf("child support [%g, %g] not affinely mappable: %w", clo, chi, ErrBadDomain)
	}

	// The affine map y = shift + scale·x carries the child's domain onto
	// the target; each closure recomputes it from the instance's own
	// lower/upper parameters.
	affine := func(p []float64) (scale, shift float64) {
		scale = (p[1] - p[0]) / (chi - clo)
		return scale, p[0] - clo*scale
	}

	if str == nil {
		str = func(d *Dist, p ...float64) string {
			return fmt.Sprintf("LowerUpper(%v, lower=%v, upper=%v)", child, p[0], p[1])
		}
	}

	// Parameter resolution is deterministic, and the child's bounds are
	// finite, so with construction past the checks above the child
	// evaluations below cannot fail at in-domain arguments. The NaN
	// conversions satisfy the closure signatures for that dead branch.
	ops := map[string]any{
		"cdf": NumFunc(func(d *Dist, x float64, p ...float64) float64 {
			scale, shift := affine(p)
			v, err := child.CDF((x - shift) / scale)
			if err != nil {
				return math.NaN()
			}
			return v
		}),
		"pdf": NumFunc(func(d *Dist, x float64, p ...float64) float64 {
			scale, shift := affine(p)
			v, err := child.PDF((x - shift) / scale)
			if err != nil {
				return math.NaN()
			}
			return v / scale
		}),
		"ppf": NumFunc(func(d *Dist, q float64, p ...float64) float64 {
			scale, shift := affine(p)
			v, err := child.PPF(q)
			if err != nil {
				return math.NaN()
			}
			return shift + scale*v
		}),
		"bnd": BndFunc(func(d *Dist, p ...float64) (float64, float64) {
			return p[0], p[1]
		}),
		// A raw moment does not simply rescale: expand
		// E[(shift + scale·X)^k] binomially over the child's moments.
		"mom": MomFunc(func(d *Dist, k int, p ...float64) float64 {
			scale, shift := affine(p)
			var sum float64
			for i := 0; i <= k; i++ {
				m, err := child.Mom(i)
				if err != nil {
					return math.NaN()
				}
				sum += float64(combin.Binomial(k, i)) *
					math.Pow(shift, float64(k-i)) * math.Pow(scale, float64(i)) * m
			}
			return sum
		}),
		"ttr": TTRFunc(func(d *Dist, k int, p ...float64) (float64, float64, error) {
			scale, shift := affine(p)
			a, b, err := child.TTR(k)
			if err != nil {
				return 0, 0, err
			}
			return a*scale + shift, b * scale * scale, nil
		}),
		"str": str,
	}

	gen, err := Construct(nil, nil, ops)
	if err != nil {
		return nil, err
	}
	return gen.New(Constant("lower", lower), Constant("upper", upper))
}
