// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quadrature provides the numerical integration primitives used
// by the distribution core: Fejér node/weight generation and the
// discretized Stieltjes procedure for deriving orthogonal-polynomial
// recurrence coefficients from a weighted point set.
package quadrature

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Fejer returns n nodes and weights of Fejér's second rule on [lo, hi].
//
// The nodes are Chebyshev points with the interval endpoints excluded,
// which makes the rule safe for densities that are singular or undefined
// at the boundary. Nodes are returned in ascending order and the weights
// sum to hi-lo.
func Fejer(n int, lo, hi float64) (nodes, weights []float64) {
	if n < 1 {
		n = 1
	}
	nodes = make([]float64, n)
	weights = make([]float64, n)

	// Fejér's second rule on [-1, 1]:
	//   θ_k = kπ/(n+1),  x_k = cos θ_k
	//   w_k = 4/(n+1) · sin θ_k · Σ_{m=1}^{⌊(n+1)/2⌋} sin((2m-1)θ_k)/(2m-1)
	for k := 1; k <= n; k++ {
		theta := float64(k) * math.Pi / float64(n+1)
		sum := 0.0
		for m := 1; m <= (n+1)/2; m++ {
			sum += math.Sin(float64(2*m-1)*theta) / float64(2*m-1)
		}
		// cos θ descends as k grows; store ascending.
		nodes[n-k] = math.Cos(theta)
		weights[n-k] = 4 / float64(n+1) * math.Sin(theta) * sum
	}

	// Affine map onto [lo, hi].
	half := (hi - lo) / 2
	for i, x := range nodes {
		nodes[i] = lo + (x+1)*half
	}
	floats.Scale(half, weights)
	return nodes, weights
}
