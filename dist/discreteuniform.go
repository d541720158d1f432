// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/yuanyuansjtu/go-randvar/quadrature"
)

// discreteUniformGen is the uniform distribution over the integers in
// [lo, up]. The continuous interpretation spreads each atom over a
// half-open unit cell, so the support is [lo-0.5, up+0.5] and the cdf
// and ppf are the exact piecewise-linear interpolants. The recurrence
// runs the Stieltjes procedure directly over the integer lattice with
// equal weights.
var discreteUniformGen = mustGenerator(Construct(nil, nil, map[string]any{
	"cdf": NumFunc(func(d *Dist, x float64, p ...float64) float64 {
		lo, up := math.Round(p[0]), math.Round(p[1])
		return (x - lo + 0.5) / (up - lo + 1)
	}),
	"bnd": BndFunc(func(d *Dist, p ...float64) (float64, float64) {
		return math.Round(p[0]) - 0.5, math.Round(p[1]) + 0.5
	}),
	"pdf": NumFunc(func(d *Dist, x float64, p ...float64) float64 {
		lo, up := math.Round(p[0]), math.Round(p[1])
		return 1 / (up - lo + 1)
	}),
	"ppf": NumFunc(func(d *Dist, q float64, p ...float64) float64 {
		lo, up := math.Round(p[0]), math.Round(p[1])
		return q*(up-lo+1) + lo - 0.5
	}),
	"mom": MomFunc(func(d *Dist, k int, p ...float64) float64 {
		lo, up := math.Round(p[0]), math.Round(p[1])
		var sum float64
		n := 0
		for i := lo; i <= up; i++ {
			sum += math.Pow(i, float64(k))
			n++
		}
		return sum / float64(n)
	}),
	"ttr": TTRFunc(func(d *Dist, k int, p ...float64) (float64, float64, error) {
		lo, up := math.Round(p[0]), math.Round(p[1])
		n := int(up-lo) + 1
		nodes := make([]float64, n)
		weights := make([]float64, n)
		for i := range nodes {
			nodes[i] = lo + float64(i)
			weights[i] = 1 / float64(n)
		}
		alphas, betas, err := quadrature.Stieltjes(k, nodes, weights)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrPrecision, err)
		}
		return alphas[k], betas[k], nil
	}),
	"str": StrFunc(func(d *Dist, p ...float64) string {
		return fmt.Sprintf("DiscreteUniform(%v, %v)", p[0], p[1])
	}),
	"doc": "Uniform distribution over the integers in [lower, upper].",
}))

// DiscreteUniform returns a uniform distribution over the integers in
// [lower, upper], both rounded to the nearest integer.
func DiscreteUniform(lower, upper float64) (*Dist, error) {
	if !(math.Round(lower) <= math.Round(upper)) {
		return nil, fmt.Errorf("DiscreteUniform(%v, %v): %w", lower, upper, ErrBadDomain)
	}
	return discreteUniformGen.New(Constant("lower", lower), Constant("upper", upper))
}
