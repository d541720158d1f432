// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"strings"

	"github.com/yuanyuansjtu/go-randvar/quadrature"
)

// A Dist is a continuous statistical distribution assembled from a
// dispatch table of operation functions. The table and the parameter
// list are resolved once, by the generator that built the instance, and
// are not mutated afterwards.
//
// Only cdf and bnd are guaranteed to be bound. Every other operation
// either delegates to its bound function or falls back to a generic
// numeric implementation derived from cdf and the support bounds; when
// no fallback applies the operation reports ErrUnsupported.
type Dist struct {
	params []Param

	cdf, pdf, ppf NumFunc
	mom           MomFunc
	ttr           TTRFunc
	bnd           BndFunc
	str           StrFunc

	fwdCache, invCache *Cache

	res float64
}

// pdfStep is the relative step of the finite-difference pdf fallback.
const pdfStep = 1e-6

// ppfIters bounds the bisection in the ppf fallback; 100 halvings
// exhaust float64 precision on any finite interval.
const ppfIters = 100

// SetResolution overrides the quadrature resolution (nodes per unit of
// support width) used by this instance's numeric fallbacks. Call it
// right after construction, before the first evaluation; nonpositive
// values are ignored.
func (d *Dist) SetResolution(nodesPerUnit float64) {
	if nodesPerUnit > 0 {
		d.res = nodesPerUnit
	}
}

// args resolves the instance's parameters, in declared order, into the
// positional values every operation function receives.
func (d *Dist) args() ([]float64, error) {
	out := make([]float64, len(d.params))
	for i, p := range d.params {
		v, err := p.resolve()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Bounds returns the support bounds (lower, upper) of the distribution.
func (d *Dist) Bounds() (lower, upper float64, err error) {
	p, err := d.args()
	if err != nil {
		return 0, 0, err
	}
	lower, upper = d.bnd(d, p...)
	return lower, upper, nil
}

// CDF returns the cumulative probability Pr[X <= x]. Arguments outside
// the support map to 0 and 1, and the result is clamped to [0, 1].
func (d *Dist) CDF(x float64) (float64, error) {
	if d.fwdCache != nil {
		if v, ok := d.fwdCache.Get(x); ok {
			return v, nil
		}
	}
	p, err := d.args()
	if err != nil {
		return 0, err
	}
	v := d.cdfAt(x, p)
	if d.fwdCache != nil {
		d.fwdCache.Put(x, v)
	}
	return v, nil
}

func (d *Dist) cdfAt(x float64, p []float64) float64 {
	lo, hi := d.bnd(d, p...)
	switch {
	case x < lo:
		return 0
	case x > hi:
		return 1
	}
	return math.Min(1, math.Max(0, d.cdf(d, x, p...)))
}

// CDFEach returns CDF(xs[i]) for each i.
func (d *Dist) CDFEach(xs []float64) ([]float64, error) {
	return d.each(xs, d.CDF)
}

// PDF returns the probability density at x. It is 0 outside the support.
// Without a bound pdf operation the density is approximated by a central
// finite difference of the cdf.
func (d *Dist) PDF(x float64) (float64, error) {
	p, err := d.args()
	if err != nil {
		return 0, err
	}
	lo, hi := d.bnd(d, p...)
	if x < lo || x > hi {
		return 0, nil
	}
	if d.pdf != nil {
		return d.pdf(d, x, p...), nil
	}
	h := pdfStep * (hi - lo)
	if math.IsInf(h, 0) || h == 0 {
		h = pdfStep * math.Max(1, math.Abs(x))
	}
	// The clamped cdf is flat outside the support, so a stencil leg
	// crossing a bound would halve the density there. Keep both legs
	// inside, degrading to a one-sided difference at the endpoints.
	a, b := math.Max(x-h, lo), math.Min(x+h, hi)
	return (d.cdfAt(b, p) - d.cdfAt(a, p)) / (b - a), nil
}

// PDFEach returns PDF(xs[i]) for each i.
func (d *Dist) PDFEach(xs []float64) ([]float64, error) {
	return d.each(xs, d.PDF)
}

// PPF returns the quantile function (inverse cdf) at q, which must lie
// in [0, 1]. Without a bound ppf operation the inverse is found by
// bisection of the cdf, which requires finite support bounds.
func (d *Dist) PPF(q float64) (float64, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, fmt.Errorf("ppf at %v: %w", q, ErrBadDomain)
	}
	if d.invCache != nil {
		if v, ok := d.invCache.Get(q); ok {
			return v, nil
		}
	}
	p, err := d.args()
	if err != nil {
		return 0, err
	}
	lo, hi := d.bnd(d, p...)
	var v float64
	switch {
	case q == 0:
		v = lo
	case q == 1:
		v = hi
	case d.ppf != nil:
		v = d.ppf(d, q, p...)
	default:
		if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return 0, fmt.Errorf("ppf: no closed form and unbounded support: %w", ErrUnsupported)
		}
		v = d.bisect(q, lo, hi, p)
	}
	if d.invCache != nil {
		d.invCache.Put(q, v)
	}
	return v, nil
}

// PPFEach returns PPF(qs[i]) for each i.
func (d *Dist) PPFEach(qs []float64) ([]float64, error) {
	return d.each(qs, d.PPF)
}

// bisect solves cdf(x) = q on [lo, hi]. The cdf is non-decreasing, so
// plain interval halving converges unconditionally.
func (d *Dist) bisect(q, lo, hi float64, p []float64) float64 {
	for i := 0; i < ppfIters && lo < hi; i++ {
		mid := lo + (hi-lo)/2
		if mid <= lo || mid >= hi {
			break
		}
		if d.cdfAt(mid, p) < q {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}

// Mom returns the raw moment E[X^k]. Mom(0) is exactly 1 for every
// instance. Without a bound mom operation the moment is computed by
// Fejér quadrature of x^k against the density, which requires finite
// support bounds.
func (d *Dist) Mom(k int) (float64, error) {
	if k < 0 {
		return 0, fmt.Errorf("moment order %d: %w", k, ErrBadDomain)
	}
	if k == 0 {
		return 1, nil
	}
	p, err := d.args()
	if err != nil {
		return 0, err
	}
	if d.mom != nil {
		return d.mom(d, k, p...), nil
	}
	lo, hi := d.bnd(d, p...)
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, fmt.Errorf("mom: no closed form and unbounded support: %w", ErrUnsupported)
	}
	n := int(d.res * (hi - lo))
	if n < minPieceNodes {
		n = minPieceNodes
	}
	nodes, weights := quadrature.Fejer(n, lo, hi)
	var sum float64
	for i, x := range nodes {
		f, err := d.PDF(x)
		if err != nil {
			return 0, err
		}
		sum += weights[i] * f * math.Pow(x, float64(k))
	}
	return sum, nil
}

// MomEach returns Mom(ks[i]) for each i.
func (d *Dist) MomEach(ks []int) ([]float64, error) {
	out := make([]float64, len(ks))
	for i, k := range ks {
		v, err := d.Mom(k)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// TTR returns the order-k coefficient pair (alpha_k, beta_k) of the
// monic three-term recurrence for the orthogonal polynomial family
// weighted by this distribution's density. Without a bound ttr operation
// the pair is computed by the Recurrence engine.
func (d *Dist) TTR(k int) (alpha, beta float64, err error) {
	if k < 0 {
		return 0, 0, fmt.Errorf("recurrence order %d: %w", k, ErrBadDomain)
	}
	if d.ttr != nil {
		p, err := d.args()
		if err != nil {
			return 0, 0, err
		}
		return d.ttr(d, k, p...)
	}
	alphas, betas, err := Recurrence(d, k, nil, d.res)
	if err != nil {
		return 0, 0, err
	}
	return alphas[k], betas[k], nil
}

// TTREach returns the alpha and beta coefficient rows for each order in
// ks.
func (d *Dist) TTREach(ks []int) (alphas, betas []float64, err error) {
	alphas = make([]float64, len(ks))
	betas = make([]float64, len(ks))
	if d.ttr != nil {
		for i, k := range ks {
			alphas[i], betas[i], err = d.TTR(k)
			if err != nil {
				return nil, nil, err
			}
		}
		return alphas, betas, nil
	}

	// One engine run up to the largest order covers every request.
	max := 0
	for _, k := range ks {
		if k < 0 {
			return nil, nil, fmt.Errorf("recurrence order %d: %w", k, ErrBadDomain)
		}
		if k > max {
			max = k
		}
	}
	as, bs, err := Recurrence(d, max, nil, d.res)
	if err != nil {
		return nil, nil, err
	}
	for i, k := range ks {
		alphas[i], betas[i] = as[k], bs[k]
	}
	return alphas, betas, nil
}

func (d *Dist) String() string {
	p, err := d.args()
	if err != nil {
		return "Dist(<unresolved>)"
	}
	if d.str != nil {
		return d.str(d, p...)
	}
	parts := make([]string, len(d.params))
	for i, prm := range d.params {
		parts[i] = prm.String()
	}
	return "Dist(" + strings.Join(parts, ", ") + ")"
}

func (d *Dist) each(xs []float64, f func(float64) (float64, error)) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		v, err := f(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
