// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "errors"

var (
	// ErrUnknownOperation reports a Construct operation or defaults key
	// that is not part of the operation registry.
	ErrUnknownOperation = errors.New("dist: unknown operation key")

	// ErrInvalidOperation reports a Construct operation value whose type
	// does not match the signature required by its registry slot.
	ErrInvalidOperation = errors.New("dist: operation has wrong type")

	// ErrMissingOperation reports a factory that still lacks cdf or bnd
	// after parent fallback.
	ErrMissingOperation = errors.New("dist: missing required operation")

	// ErrBadDomain reports an argument outside the valid domain: invalid
	// interval ordering at construction, a quantile outside [0, 1], or a
	// negative order.
	ErrBadDomain = errors.New("dist: argument outside valid domain")

	// ErrBadParameter reports an unusable instance parameter, such as a
	// duplicated name or a dependent parameter that cannot be resolved.
	ErrBadParameter = errors.New("dist: invalid parameter")

	// ErrUnsupported reports an operation that has neither a bound
	// function nor an applicable numeric fallback.
	ErrUnsupported = errors.New("dist: unsupported operation")

	// ErrPrecision reports that the recurrence engine produced a
	// non-finite or negative coefficient, which indicates insufficient
	// quadrature resolution for the requested order.
	ErrPrecision = errors.New("dist: insufficient quadrature resolution")
)
