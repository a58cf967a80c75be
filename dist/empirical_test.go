// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmpirical(t *testing.T) {
	d, err := NewEmpirical([]float64{5, 1, 3, 2, 4}) // sorts internally
	require.NoError(t, err)

	// Weibull plotting positions i/(n+1) at the order statistics.
	if !aeq(1.0/6, d.CDF(1)) {
		t.Errorf("CDF(1) = %v", d.CDF(1))
	}
	if !aeq(0.5, d.CDF(3)) {
		t.Errorf("CDF(3) = %v", d.CDF(3))
	}
	if got := d.CDF(0.5); got != 0 {
		t.Errorf("CDF(0.5) = %v, want 0", got)
	}
	if got := d.CDF(9); got != 1 {
		t.Errorf("CDF(9) = %v, want 1", got)
	}
	// Interpolation midway between order statistics.
	if !aeq(0.25, d.CDF(1.5)) {
		t.Errorf("CDF(1.5) = %v", d.CDF(1.5))
	}

	if !aeq(3, d.InvCDF(0.5)) {
		t.Errorf("InvCDF(0.5) = %v", d.InvCDF(0.5))
	}
	// Clamped outside the plotting-position range.
	if !aeq(5, d.InvCDF(0.99)) {
		t.Errorf("InvCDF(0.99) = %v", d.InvCDF(0.99))
	}
	if !aeq(1, d.InvCDF(0.01)) {
		t.Errorf("InvCDF(0.01) = %v", d.InvCDF(0.01))
	}

	if !aeq(3, d.Mean()) {
		t.Errorf("Mean = %v", d.Mean())
	}
	lo, hi := d.Bounds()
	if lo != 1 || hi != 5 {
		t.Errorf("Bounds = (%v, %v)", lo, hi)
	}

	// Nonparametric surface.
	require.ErrorIs(t, d.SetParameters([]float64{1}), ErrUnsupported)
	_, err = d.ParameterCovariance(5, MethodOfMoments)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestEmpiricalTies(t *testing.T) {
	d, err := NewEmpirical([]float64{1, 1, 2, 3, 4})
	require.NoError(t, err)

	// A tied knot takes the highest of its plotting positions,
	// including at the sample minimum.
	if !aeq(2.0/6, d.CDF(1)) {
		t.Errorf("CDF(1) = %v, want %v", d.CDF(1), 2.0/6)
	}
	if got := d.CDF(0.5); got != 0 {
		t.Errorf("CDF(0.5) = %v, want 0", got)
	}

	d, err = NewEmpirical([]float64{1, 2, 2, 2, 3})
	require.NoError(t, err)
	if !aeq(4.0/6, d.CDF(2)) {
		t.Errorf("CDF(2) = %v, want %v", d.CDF(2), 4.0/6)
	}

	// The CDF stays monotone across the tie.
	prev := 0.0
	for _, x := range []float64{0.9, 1, 1.5, 2, 2.5, 3, 3.1} {
		p := d.CDF(x)
		if p < prev {
			t.Errorf("CDF(%v) = %v decreased", x, p)
		}
		prev = p
	}
}

func TestEmpiricalDegenerate(t *testing.T) {
	if _, err := NewEmpirical([]float64{1}); err == nil {
		t.Error("single observation accepted")
	}
	if _, err := NewEmpirical([]float64{2, 2, 2}); err == nil {
		t.Error("degenerate sample accepted")
	}
}
