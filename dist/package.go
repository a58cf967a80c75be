// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist implements the univariate parametric distributions used in
// statistical risk and flood-frequency analysis: density, cumulative
// probability, quantiles, moments, parameter estimation from sample
// data, and sampling-uncertainty propagation from parameters to
// quantiles.
package dist // import "github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub004/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
