// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// aeqTol is aeq with an explicit absolute tolerance, for quantities
// that come out of iterative solvers.
func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}

// releq compares to a relative tolerance, for large-magnitude
// quantiles.
func releq(expect, got, tol float64) bool {
	if expect == 0 {
		return math.Abs(got) < tol
	}
	return math.Abs(got-expect)/math.Abs(expect) < tol
}
