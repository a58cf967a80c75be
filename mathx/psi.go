// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Trigamma returns ψ'(x), the derivative of the digamma function,
// for x > 0. It is the Hurwitz zeta function ζ(2, x).
func Trigamma(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}
	return mathext.Zeta(2, x)
}
