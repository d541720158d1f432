// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "sort"

// slot identifies the internal dispatch slot an operation key binds to.
type slot int

const (
	slotCDF slot = iota
	slotBnd
	slotPDF
	slotPPF
	slotMom
	slotTTR
	slotFwdCache
	slotInvCache
	slotDoc
	slotStr
)

// registry is the closed set of operation keys a distribution may
// define. It is the single source of truth consulted by Construct for
// validation and by the instance model for dispatch resolution; any key
// outside this set is rejected.
var registry = map[string]slot{
	"cdf":       slotCDF,
	"bnd":       slotBnd,
	"pdf":       slotPDF,
	"ppf":       slotPPF,
	"mom":       slotMom,
	"ttr":       slotTTR,
	"fwd_cache": slotFwdCache,
	"inv_cache": slotInvCache,
	"doc":       slotDoc,
	"str":       slotStr,
}

// Operations returns the registry's operation keys in sorted order.
func Operations() []string {
	keys := make([]string, 0, len(registry))
	for key := range registry {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// NumFunc evaluates a pointwise operation (cdf, pdf or ppf) for the
// instance d at x. The instance's resolved parameter values are passed in
// declared order as p.
type NumFunc func(d *Dist, x float64, p ...float64) float64

// MomFunc returns the raw moment E[X^k] of order k.
type MomFunc func(d *Dist, k int, p ...float64) float64

// TTRFunc returns the order-k coefficient pair of the monic three-term
// recurrence associated with the distribution's density.
type TTRFunc func(d *Dist, k int, p ...float64) (alpha, beta float64, err error)

// BndFunc returns the lower and upper support bounds, which may depend
// on the instance's parameters.
type BndFunc func(d *Dist, p ...float64) (lower, upper float64)

// StrFunc renders the instance for display.
type StrFunc func(d *Dist, p ...float64) string
