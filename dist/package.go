// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist is the extensible core of a probability-distribution
// library. A distribution is assembled from a small set of statistical
// primitives (cdf, pdf, ppf, raw moments, three-term recurrence, support
// bounds) through the Construct factory, optionally inheriting missing
// operations from a parent distribution, and can be remapped onto an
// arbitrary interval with LowerUpper. Operations without a closed form
// fall back to generic numeric implementations; in particular, recurrence
// coefficients fall back to piecewise Fejér quadrature combined with the
// discretized Stieltjes procedure.
package dist // import "github.com/yuanyuansjtu/go-randvar/dist"
