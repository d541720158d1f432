// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
)

// triangleGen is the standardized triangle distribution on [0, 1] with
// the peak at shape parameter a in [0, 1]. The density is piecewise
// linear with a kink at a, so cdf, ppf and pdf branch there; both
// branches agree at the kink. The boundary shapes a=0 and a=1 collapse
// to Beta(1,2) and Beta(2,1), which the recurrence short-circuits to
// instead of running quadrature.
var triangleGen = mustGenerator(Construct(nil, nil, map[string]any{
	"pdf": NumFunc(func(d *Dist, x float64, p ...float64) float64 {
		a := p[0]
		if x < a {
			return 2 * x / a
		}
		if a == 1 {
			// Only x = 1 lands here; the density's limit there is 2.
			return 2 * x
		}
		return 2 * (1 - x) / (1 - a)
	}),
	"cdf": NumFunc(func(d *Dist, x float64, p ...float64) float64 {
		a := p[0]
		if x < a {
			return x * x / a
		}
		if a == 1 {
			return x * x
		}
		return (2*x - x*x - a) / (1 - a)
	}),
	"ppf": NumFunc(func(d *Dist, q float64, p ...float64) float64 {
		a := p[0]
		if q < a {
			return math.Sqrt(q * a)
		}
		return 1 - math.Sqrt((1-a)*(1-q))
	}),
	"mom": MomFunc(func(d *Dist, k int, p ...float64) float64 {
		a := p[0]
		if a == 1 {
			return 2 / float64(k+2)
		}
		return 2 * (1 - math.Pow(a, float64(k+1))) /
			(float64(k+1) * float64(k+2) * (1 - a))
	}),
	"ttr": TTRFunc(func(d *Dist, k int, p ...float64) (float64, float64, error) {
		a := p[0]
		if a == 0 {
			alpha, beta := betaTTR(k, 1, 2)
			return alpha, beta, nil
		}
		if a == 1 {
			alpha, beta := betaTTR(k, 2, 1)
			return alpha, beta, nil
		}
		alphas, betas, err := Recurrence(d, k, []float64{a}, d.res)
		if err != nil {
			return 0, 0, err
		}
		return alphas[k], betas[k], nil
	}),
	"bnd": BndFunc(func(d *Dist, p ...float64) (float64, float64) {
		return 0, 1
	}),
	"str": StrFunc(func(d *Dist, p ...float64) string {
		return fmt.Sprintf("triangle(a=%v)", p[0])
	}),
	"doc": "Standardized triangle distribution on the unit interval.",
}))

// Triangle returns a triangular distribution with support
// [lower, upper] and mode at midpoint. It requires
// lower <= midpoint <= upper with lower < upper, and fails with
// ErrBadDomain otherwise.
//
// Internally the midpoint is normalized onto the unit interval and the
// standardized triangle is remapped onto the target domain; the original
// arguments are kept only for display.
func Triangle(lower, midpoint, upper float64) (*Dist, error) {
	if !(lower <= midpoint && midpoint <= upper && lower < upper) {
		return nil, fmt.Errorf("Triangle(%v, %v, %v): %w", lower, midpoint, upper, ErrBadDomain)
	}
	a := (midpoint - lower) / (upper - lower)
	std, err := triangleGen.New(Constant("a", a))
	if err != nil {
		return nil, err
	}
	return lowerUpper(std, lower, upper, func(d *Dist, p ...float64) string {
		return fmt.Sprintf("Triangle(lower=%v, midpoint=%v, upper=%v)", lower, midpoint, upper)
	})
}
