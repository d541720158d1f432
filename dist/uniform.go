// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "fmt"

// uniformGen carries only the two mandatory operations; pdf, ppf,
// moments and the recurrence all come from the generic numeric
// fallbacks. It doubles as the canonical example of building a
// distribution from scratch with Construct.
var uniformGen = mustGenerator(Construct(nil, nil, map[string]any{
	"cdf": NumFunc(func(d *Dist, x float64, p ...float64) float64 {
		lo, up := p[0], p[1]
		return (x - lo) / (up - lo)
	}),
	"bnd": BndFunc(func(d *Dist, p ...float64) (float64, float64) {
		return p[0], p[1]
	}),
	"str": StrFunc(func(d *Dist, p ...float64) string {
		return fmt.Sprintf("Uniform(lo=%v, up=%v)", p[0], p[1])
	}),
	"doc": "Uniform distribution on [lo, up].",
}))

// Uniform returns a uniform distribution on [lower, upper].
func Uniform(lower, upper float64) (*Dist, error) {
	if !(lower < upper) {
		return nil, fmt.Errorf("Uniform(%v, %v): %w", lower, upper, ErrBadDomain)
	}
	return uniformGen.New(Constant("lo", lower), Constant("up", upper))
}
