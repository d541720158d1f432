// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"sort"
)

// A Generator produces distribution instances from a fully resolved
// table of operation functions plus instantiation-time parameters. Build
// one with Construct.
type Generator struct {
	doc      string
	defaults map[string]float64

	cdf, pdf, ppf NumFunc
	mom           MomFunc
	ttr           TTRFunc
	bnd           BndFunc
	str           StrFunc

	fwdCache, invCache *Cache
}

// Construct builds a reusable distribution generator from the supplied
// operation functions.
//
// The keys of ops are validated against the operation registry; an
// unrecognized key fails with ErrUnknownOperation. Each value must match
// its slot's signature: NumFunc for cdf, pdf and ppf, MomFunc for mom,
// TTRFunc for ttr, BndFunc for bnd, StrFunc or a literal string for str,
// a string for doc, and *Cache for fwd_cache and inv_cache. A literal
// str is normalized into a constant-returning function, so the dispatch
// contract stays uniform.
//
// If parent is non-nil, every registry operation not supplied in ops is
// copied from the parent's dispatch table. The copy happens here, once:
// generators built earlier are unaffected by anything done to the parent
// later. After this fallback cdf and bnd must be present, or Construct
// fails with ErrMissingOperation.
//
// defaults maps registry keys to default parameter values; they are
// merged with (and overridden by) the parameters given when the
// generator is invoked.
func Construct(parent *Dist, defaults map[string]float64, ops map[string]any) (*Generator, error) {
	g := &Generator{}

	keys := make([]string, 0, len(ops))
	for key := range ops {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sl, ok := registry[key]
		if !ok {
			return nil, fmt.Errorf("%q: %w", key, ErrUnknownOperation)
		}
		if err := g.bind(key, sl, ops[key]); err != nil {
			return nil, err
		}
	}

	if parent != nil {
		g.inherit(parent, ops)
	}

	if g.cdf == nil {
		return nil, fmt.Errorf("cdf: %w", ErrMissingOperation)
	}
	if g.bnd == nil {
		return nil, fmt.Errorf("bnd: %w", ErrMissingOperation)
	}

	for key := range defaults {
		if _, ok := registry[key]; !ok {
			return nil, fmt.Errorf("default %q: %w", key, ErrUnknownOperation)
		}
	}
	if len(defaults) > 0 {
		g.defaults = make(map[string]float64, len(defaults))
		for key, v := range defaults {
			g.defaults[key] = v
		}
	}
	return g, nil
}

func (g *Generator) bind(key string, sl slot, val any) error {
	ok := true
	switch sl {
	case slotCDF:
		g.cdf, ok = asNumFunc(val)
	case slotPDF:
		g.pdf, ok = asNumFunc(val)
	case slotPPF:
		g.ppf, ok = asNumFunc(val)
	case slotMom:
		switch fn := val.(type) {
		case MomFunc:
			g.mom = fn
		case func(*Dist, int, ...float64) float64:
			g.mom = MomFunc(fn)
		default:
			ok = false
		}
	case slotTTR:
		switch fn := val.(type) {
		case TTRFunc:
			g.ttr = fn
		case func(*Dist, int, ...float64) (float64, float64, error):
			g.ttr = TTRFunc(fn)
		default:
			ok = false
		}
	case slotBnd:
		switch fn := val.(type) {
		case BndFunc:
			g.bnd = fn
		case func(*Dist, ...float64) (float64, float64):
			g.bnd = BndFunc(fn)
		default:
			ok = false
		}
	case slotStr:
		switch fn := val.(type) {
		case StrFunc:
			g.str = fn
		case func(*Dist, ...float64) string:
			g.str = StrFunc(fn)
		case string:
			g.str = func(*Dist, ...float64) string { return fn }
		default:
			ok = false
		}
	case slotDoc:
		g.doc, ok = val.(string)
	case slotFwdCache:
		g.fwdCache, ok = val.(*Cache)
	case slotInvCache:
		g.invCache, ok = val.(*Cache)
	}
	if !ok {
		return fmt.Errorf("%q bound to %T: %w", key, val, ErrInvalidOperation)
	}
	return nil
}

func asNumFunc(val any) (NumFunc, bool) {
	switch fn := val.(type) {
	case NumFunc:
		return fn, true
	case func(*Dist, float64, ...float64) float64:
		return NumFunc(fn), true
	}
	return nil, false
}

// inherit copies the parent's slot for every registry key that ops did
// not supply and the parent has bound.
func (g *Generator) inherit(parent *Dist, ops map[string]any) {
	has := func(key string) bool { _, ok := ops[key]; return ok }
	if !has("cdf") && parent.cdf != nil {
		g.cdf = parent.cdf
	}
	if !has("pdf") && parent.pdf != nil {
		g.pdf = parent.pdf
	}
	if !has("ppf") && parent.ppf != nil {
		g.ppf = parent.ppf
	}
	if !has("mom") && parent.mom != nil {
		g.mom = parent.mom
	}
	if !has("ttr") && parent.ttr != nil {
		g.ttr = parent.ttr
	}
	if !has("bnd") && parent.bnd != nil {
		g.bnd = parent.bnd
	}
	if !has("str") && parent.str != nil {
		g.str = parent.str
	}
	if !has("fwd_cache") && parent.fwdCache != nil {
		g.fwdCache = parent.fwdCache
	}
	if !has("inv_cache") && parent.invCache != nil {
		g.invCache = parent.invCache
	}
}

// Doc returns the documentation attached to the generator through the
// doc operation key. Documentation lives on the generator, not on the
// instances it produces.
func (g *Generator) Doc() string { return g.doc }

// New builds a distribution instance. The given parameters are merged
// with the generator's defaults (call-time values win) and the resolved
// operation functions are bound into the instance's dispatch table,
// which is immutable from then on. Two instances built from generators
// with different operation overrides behave differently even when their
// parameters agree.
func (g *Generator) New(params ...Param) (*Dist, error) {
	merged := make([]Param, 0, len(params)+len(g.defaults))
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if p.Name == "" {
			return nil, fmt.Errorf("unnamed parameter: %w", ErrBadParameter)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate parameter %q: %w", p.Name, ErrBadParameter)
		}
		seen[p.Name] = true
		merged = append(merged, p)
	}
	names := make([]string, 0, len(g.defaults))
	for name := range g.defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !seen[name] {
			merged = append(merged, Constant(name, g.defaults[name]))
		}
	}

	d := &Dist{
		params: merged,
		cdf:    g.cdf,
		pdf:    g.pdf,
		ppf:    g.ppf,
		mom:    g.mom,
		ttr:    g.ttr,
		bnd:    g.bnd,
		str:    g.str,
		res:    DefaultResolution,
	}
	// Caches memoize per-instance state, so each instance gets a fresh
	// one with the configured capacity.
	if g.fwdCache != nil {
		d.fwdCache = NewCache(g.fwdCache.cap)
	}
	if g.invCache != nil {
		d.invCache = NewCache(g.invCache.cap)
	}
	return d, nil
}
