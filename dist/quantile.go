// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub004/mathx"
)

// invCDFNumeric inverts d.CDF at probability p by root finding when
// the family has no closed-form quantile. The initial bracket comes
// from d.Bounds and is expanded geometrically until it straddles p;
// the solver then runs bisection-seeded Newton with d.PDF as the
// derivative. If the iteration cap is hit, the best bracket midpoint
// is returned (the error is deliberately swallowed here: InvCDF is a
// plain float query, and the midpoint is within the final bracket).
func invCDFNumeric(d Dist, p float64) float64 {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}

	lo, hi := d.Bounds()
	// Bounds hold ~all the probability mass, but p may still fall
	// in a tail beyond them.
	lo, hi, ok := mathx.Bracket(func(x float64) float64 { return d.CDF(x) - p }, lo, hi)
	if !ok {
		return nan
	}

	f := func(x float64) float64 { return d.CDF(x) - p }
	x, err := mathx.FindRoot(f, d.PDF, lo, hi, &mathx.RootOpts{TolX: 1e-8, TolF: 1e-10, MaxIter: 100})
	if err != nil && math.IsNaN(x) {
		return nan
	}
	return x
}
