// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
)

// betaGen is the standardized beta distribution on [0, 1] with shape
// parameters (a, b) and density x^(a-1)·(1-x)^(b-1)/B(a, b). Every
// operation has a closed form; the recurrence is the monic Jacobi one.
var betaGen = mustGenerator(Construct(nil, nil, map[string]any{
	"cdf": NumFunc(func(d *Dist, x float64, p ...float64) float64 {
		return mathext.RegIncBeta(p[0], p[1], x)
	}),
	"ppf": NumFunc(func(d *Dist, q float64, p ...float64) float64 {
		return mathext.InvRegIncBeta(p[0], p[1], q)
	}),
	"pdf": NumFunc(func(d *Dist, x float64, p ...float64) float64 {
		a, b := p[0], p[1]
		return math.Pow(x, a-1) * math.Pow(1-x, b-1) / mathext.Beta(a, b)
	}),
	"mom": MomFunc(func(d *Dist, k int, p ...float64) float64 {
		// E[X^k] = Π_{i<k} (a+i)/(a+b+i).
		a, b := p[0], p[1]
		out := 1.0
		for i := 0; i < k; i++ {
			out *= (a + float64(i)) / (a + b + float64(i))
		}
		return out
	}),
	"ttr": TTRFunc(func(d *Dist, k int, p ...float64) (float64, float64, error) {
		alpha, beta := betaTTR(k, p[0], p[1])
		return alpha, beta, nil
	}),
	"bnd": BndFunc(func(d *Dist, p ...float64) (float64, float64) {
		return 0, 1
	}),
	"str": StrFunc(func(d *Dist, p ...float64) string {
		return fmt.Sprintf("beta(a=%v, b=%v)", p[0], p[1])
	}),
	"doc": "Standardized beta distribution on the unit interval.",
}))

// Beta returns a beta distribution with shape parameters a, b > 0 on
// [lower, upper].
func Beta(a, b, lower, upper float64) (*Dist, error) {
	if !(a > 0) || !(b > 0) {
		return nil, fmt.Errorf("beta shape a=%v b=%v: %w", a, b, ErrBadParameter)
	}
	std, err := betaGen.New(Constant("a", a), Constant("b", b))
	if err != nil {
		return nil, err
	}
	if lower == 0 && upper == 1 {
		return std, nil
	}
	return lowerUpper(std, lower, upper, func(d *Dist, p ...float64) string {
		return fmt.Sprintf("Beta(a=%v, b=%v, lower=%v, upper=%v)", a, b, lower, upper)
	})
}

// betaTTR is the closed-form monic recurrence for the Beta(a, b) density
// on [0, 1]. It is the shifted Jacobi recurrence with exponents
// al = b-1 on (1-x) and be = a-1 on x, rescaled from [-1, 1] by halving
// alpha-space and quartering beta-space; beta_0 is 1, the total mass of
// a normalized density.
func betaTTR(k int, a, b float64) (alpha, beta float64) {
	al, be := b-1, a-1

	var A float64
	if k == 0 {
		A = (be - al) / (al + be + 2)
	} else {
		n := float64(2*k) + al + be
		A = (be*be - al*al) / (n * (n + 2))
	}
	alpha = (1 + A) / 2

	switch {
	case k == 0:
		beta = 1
	case k == 1:
		s := al + be + 2
		beta = (al + 1) * (be + 1) / (s * s * (s + 1))
	default:
		kf := float64(k)
		n := 2*kf + al + be
		beta = kf * (kf + al) * (kf + be) * (kf + al + be) /
			(n * n * (n + 1) * (n - 1))
	}
	return alpha, beta
}

// mustGenerator unwraps Construct for the package's own generators,
// whose operation tables are fixed at compile time.
func mustGenerator(g *Generator, err error) *Generator {
	if err != nil {
		panic(err)
	}
	return g
}
