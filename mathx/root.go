// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"github.com/pkg/errors"
)

// ErrNonConvergence is returned when an iterative routine exhausts
// its iteration budget. The routine still returns its best estimate.
var ErrNonConvergence = errors.New("mathx: iteration did not converge")

// ErrBracket is returned when a root finder is given an interval
// whose endpoints do not bracket a sign change.
var ErrBracket = errors.New("mathx: interval does not bracket a root")

// RootOpts control the FindRoot iteration. The zero value selects
// the defaults documented on each field.
type RootOpts struct {
	// TolX is the absolute tolerance on the bracket width.
	// Defaults to 1e-8.
	TolX float64

	// TolF is the absolute tolerance on |f(x)|. Defaults to 1e-10.
	TolF float64

	// MaxIter caps the number of iterations. Defaults to 100.
	MaxIter int
}

func (o *RootOpts) defaults() RootOpts {
	out := RootOpts{TolX: 1e-8, TolF: 1e-10, MaxIter: 100}
	if o == nil {
		return out
	}
	if o.TolX > 0 {
		out.TolX = o.TolX
	}
	if o.TolF > 0 {
		out.TolF = o.TolF
	}
	if o.MaxIter > 0 {
		out.MaxIter = o.MaxIter
	}
	return out
}

// FindRoot locates a root of f in [lo, hi] using bisection-seeded
// Newton iteration. f(lo) and f(hi) must have opposite signs. If df
// is non-nil it is used for Newton steps; a step that leaves the
// current bracket, or a numerically zero derivative, falls back to
// bisection. When the iteration cap is reached, FindRoot returns the
// bracket midpoint together with ErrNonConvergence.
func FindRoot(f, df func(float64) float64, lo, hi float64, o *RootOpts) (float64, error) {
	opt := o.defaults()

	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if math.IsNaN(flo) || math.IsNaN(fhi) || flo*fhi > 0 {
		return math.NaN(), errors.Wrapf(ErrBracket, "f(%g)=%g, f(%g)=%g", lo, flo, hi, fhi)
	}

	x := 0.5 * (lo + hi)
	for i := 0; i < opt.MaxIter; i++ {
		fx := f(x)
		if math.Abs(fx) < opt.TolF {
			return x, nil
		}

		// Maintain the bracket.
		if (fx < 0) == (flo < 0) {
			lo, flo = x, fx
		} else {
			hi, fhi = x, fx
		}
		if hi-lo < opt.TolX {
			return 0.5 * (lo + hi), nil
		}

		// Try a Newton step; keep it only if it stays strictly
		// inside the bracket.
		if df != nil {
			if d := df(x); d != 0 && !math.IsNaN(d) {
				if xn := x - fx/d; xn > lo && xn < hi {
					x = xn
					continue
				}
			}
		}
		x = 0.5 * (lo + hi)
	}
	return 0.5 * (lo + hi), errors.Wrapf(ErrNonConvergence, "after %d iterations in [%g, %g]", opt.MaxIter, lo, hi)
}

// Bracket grows [lo, hi] geometrically until f changes sign across
// it, starting from the given interval. It reports whether a sign
// change was found within 60 doublings.
func Bracket(f func(float64) float64, lo, hi float64) (float64, float64, bool) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		w := math.Abs(lo)
		if w == 0 {
			w = 1
		}
		lo, hi = lo-w, hi+w
	}
	flo, fhi := f(lo), f(hi)
	for i := 0; i < 60; i++ {
		if !math.IsNaN(flo) && !math.IsNaN(fhi) && flo*fhi <= 0 {
			return lo, hi, true
		}
		w := hi - lo
		if math.Abs(flo) < math.Abs(fhi) {
			lo -= w
			flo = f(lo)
		} else {
			hi += w
			fhi = f(hi)
		}
	}
	return lo, hi, false
}
