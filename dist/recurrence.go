// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"sort"

	"github.com/yuanyuansjtu/go-randvar/quadrature"
)

// DefaultResolution is the default quadrature resolution of the numeric
// fallbacks, in nodes per unit of support width. Accuracy of the
// recurrence engine degrades when the node count is low relative to the
// requested order, so callers computing high orders on narrow supports
// should raise it.
const DefaultResolution = 1000

// minPieceNodes keeps very narrow sub-intervals from starving the rule.
const minPieceNodes = 8

// Recurrence computes the coefficients (alpha_j, beta_j), j = 0..order,
// of the monic three-term recurrence for the orthogonal polynomial
// family weighted by d's density. It is the fallback used when no
// closed-form ttr operation is bound.
//
// The support is split at the interior breakpoints in breaks (points
// where the density changes functional form; may be nil). Each piece
// receives Fejér nodes in proportion to its width, nodesPerUnit nodes
// per unit (nonpositive selects DefaultResolution). The node weights are
// multiplied by the density, turning the continuous measure into a
// finite weighted point set, and the discretized Stieltjes procedure is
// run over it.
//
// A resolution that yields no more nodes than the requested order makes
// the discretized measure degenerate, and every returned coefficient is
// checked to be finite with beta_j >= 0; either condition reports
// ErrPrecision, the sign that the resolution is too low for the order.
func Recurrence(d *Dist, order int, breaks []float64, nodesPerUnit float64) (alpha, beta []float64, err error) {
	if order < 0 {
		return nil, nil, fmt.Errorf("recurrence order %d: %w", order, ErrBadDomain)
	}
	if nodesPerUnit <= 0 {
		nodesPerUnit = DefaultResolution
	}
	lo, hi, err := d.Bounds()
	if err != nil {
		return nil, nil, err
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || !(lo < hi) {
		return nil, nil, fmt.Errorf("recurrence needs bounded support, have [%g, %g]: %w", lo, hi, ErrUnsupported)
	}

	pts := make([]float64, 0, len(breaks)+2)
	pts = append(pts, lo)
	for _, b := range breaks {
		if b > lo && b < hi {
			pts = append(pts, b)
		}
	}
	pts = append(pts, hi)
	sort.Float64s(pts)

	var nodes, weights []float64
	for i := 0; i+1 < len(pts); i++ {
		width := pts[i+1] - pts[i]
		if width <= 0 {
			continue
		}
		n := int(nodesPerUnit * width)
		if n < minPieceNodes {
			n = minPieceNodes
		}
		qn, qw := quadrature.Fejer(n, pts[i], pts[i+1])
		nodes = append(nodes, qn...)
		weights = append(weights, qw...)
	}

	for i, x := range nodes {
		f, err := d.PDF(x)
		if err != nil {
			return nil, nil, err
		}
		weights[i] *= f
	}

	alpha, beta, err = quadrature.Stieltjes(order, nodes, weights)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPrecision, err)
	}
	for j := range beta {
		if math.IsNaN(alpha[j]) || math.IsInf(alpha[j], 0) ||
			math.IsNaN(beta[j]) || math.IsInf(beta[j], 0) || beta[j] < 0 {
			return nil, nil, fmt.Errorf("order %d: alpha=%g beta=%g: %w", j, alpha[j], beta[j], ErrPrecision)
		}
	}
	return alpha, beta, nil
}
