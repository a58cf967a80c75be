// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx provides generic numerical routines shared by the
// distribution families: scalar root finding, numerical
// differentiation, and a few special functions that gonum's mathext
// does not export directly.
//
// Everything here is a pure function of its arguments. There is no
// package-level state, so these routines are safe for concurrent use.
package mathx // import "github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub004/mathx"
