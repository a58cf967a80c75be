// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// derivStep is the relative step used by central differences. The
// results are approximations, good to roughly sqrt(derivStep)
// relative accuracy; callers that need bit-exact derivatives must
// supply analytic ones.
const derivStep = 1e-6

// CentralDiff estimates f'(x) by a central finite difference with a
// step of derivStep relative to scale. If scale is zero, max(|x|, 1)
// is used instead.
func CentralDiff(f func(float64) float64, x, scale float64) float64 {
	h := derivStep * math.Abs(scale)
	if h == 0 {
		h = derivStep * math.Max(math.Abs(x), 1)
	}
	return (f(x+h) - f(x-h)) / (2 * h)
}
