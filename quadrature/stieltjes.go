// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadrature

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ErrBadMeasure is returned by Stieltjes when the weighted point set does
// not describe a usable measure: no points, mismatched slice lengths, or
// nonpositive total mass.
var ErrBadMeasure = errors.New("quadrature: invalid discrete measure")

// ErrDegenerate is returned by Stieltjes when the measure has too few
// distinct support points to carry orthogonal polynomials of the
// requested order.
var ErrDegenerate = errors.New("quadrature: measure cannot support requested order")

// Stieltjes derives the coefficients (alpha_j, beta_j), j = 0..order, of
// the monic three-term recurrence
//
//	P_{j+1}(x) = (x - alpha_j)·P_j(x) - beta_j·P_{j-1}(x)
//
// for the polynomial family orthogonal under the discrete measure given
// by nodes and weights. By convention beta_0 is the total mass of the
// measure, so a normalized density yields beta_0 = 1.
//
// A measure with m distinct nodes carries orthogonal polynomials only
// up to degree m-1; order must be below the distinct-node count or
// Stieltjes reports ErrDegenerate. The check is exact: in floating
// point the inner products past that order underflow to tiny positive
// values rather than zero, and the coefficient ratios built from them
// are noise.
func Stieltjes(order int, nodes, weights []float64) (alpha, beta []float64, err error) {
	n := len(nodes)
	switch {
	case n == 0:
		return nil, nil, fmt.Errorf("empty point set: %w", ErrBadMeasure)
	case n != len(weights):
		return nil, nil, fmt.Errorf("%d nodes, %d weights: %w", n, len(weights), ErrBadMeasure)
	}
	mass := floats.Sum(weights)
	if !(mass > 0) {
		return nil, nil, fmt.Errorf("total mass %g: %w", mass, ErrBadMeasure)
	}
	if m := distinct(nodes); order >= m {
		return nil, nil, fmt.Errorf("order %d over %d distinct points: %w", order, m, ErrDegenerate)
	}

	alpha = make([]float64, order+1)
	beta = make([]float64, order+1)

	pPrev := make([]float64, n) // P_{j-1} at each node
	pCur := make([]float64, n)  // P_j at each node
	for i := range pCur {
		pCur[i] = 1
	}

	normPrev := 1.0
	for j := 0; j <= order; j++ {
		var norm, xnorm float64
		for i, x := range nodes {
			wp := weights[i] * pCur[i] * pCur[i]
			norm += wp
			xnorm += x * wp
		}
		if !(norm > 0) {
			return nil, nil, fmt.Errorf("order %d: %w", j, ErrDegenerate)
		}
		alpha[j] = xnorm / norm
		if j == 0 {
			beta[j] = mass
		} else {
			beta[j] = norm / normPrev
		}

		for i, x := range nodes {
			next := (x-alpha[j])*pCur[i] - beta[j]*pPrev[i]
			pPrev[i], pCur[i] = pCur[i], next
		}
		normPrev = norm
	}
	return alpha, beta, nil
}

// distinct counts the distinct values in nodes.
func distinct(nodes []float64) int {
	s := make([]float64, len(nodes))
	copy(s, nodes)
	sort.Float64s(s)
	m := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			m++
		}
	}
	return m
}
