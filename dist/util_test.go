// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}

func aeqSlice(expect, got []float64, tol float64) bool {
	if len(expect) != len(got) {
		return false
	}
	for i := range expect {
		if !aeqTol(expect[i], got[i], tol) {
			return false
		}
	}
	return true
}
