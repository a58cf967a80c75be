// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestFindRootNewton(t *testing.T) {
	// x² - 2 on [0, 2].
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	x, err := FindRoot(f, df, 0, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-math.Sqrt2) > 1e-8 {
		t.Errorf("got %v, want %v", x, math.Sqrt2)
	}
}

func TestFindRootBisectionOnly(t *testing.T) {
	// Kinked function with no derivative supplied.
	f := func(x float64) float64 { return math.Abs(x-0.25) - 0.75 }

	x, err := FindRoot(f, nil, 0, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-1) > 1e-7 {
		t.Errorf("got %v, want 1", x)
	}
}

func TestFindRootBadBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	if _, err := FindRoot(f, nil, -1, 1, nil); !errors.Is(err, ErrBracket) {
		t.Errorf("got err %v, want ErrBracket", err)
	}
}

func TestFindRootIterationCap(t *testing.T) {
	f := func(x float64) float64 { return x }
	x, err := FindRoot(f, nil, -1e30, 3e30, &RootOpts{MaxIter: 2, TolX: 1e-300, TolF: 0})
	if !errors.Is(err, ErrNonConvergence) {
		t.Fatalf("got err %v, want ErrNonConvergence", err)
	}
	// Best bracket midpoint is still a finite estimate.
	if math.IsNaN(x) || math.IsInf(x, 0) {
		t.Errorf("best estimate %v is not finite", x)
	}
}

func TestBracket(t *testing.T) {
	f := func(x float64) float64 { return x - 100 }
	lo, hi, ok := Bracket(f, 0, 1)
	if !ok {
		t.Fatal("no bracket found")
	}
	if f(lo)*f(hi) > 0 {
		t.Errorf("[%v, %v] does not bracket the root", lo, hi)
	}
}

func TestTrigamma(t *testing.T) {
	// ψ'(1) = π²/6.
	if got, want := Trigamma(1), math.Pi*math.Pi/6; math.Abs(got-want) > 1e-10 {
		t.Errorf("Trigamma(1) = %v, want %v", got, want)
	}
	// ψ'(x+1) = ψ'(x) - 1/x².
	if got, want := Trigamma(3.5), Trigamma(2.5)-1/(2.5*2.5); math.Abs(got-want) > 1e-10 {
		t.Errorf("recurrence: got %v, want %v", got, want)
	}
	if !math.IsNaN(Trigamma(-1)) {
		t.Error("Trigamma(-1) should be NaN")
	}
}

func TestCentralDiff(t *testing.T) {
	d := CentralDiff(math.Exp, 1, 0)
	if math.Abs(d-math.E) > 1e-6 {
		t.Errorf("d/dx exp at 1 = %v, want %v", d, math.E)
	}
}
