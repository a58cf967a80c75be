// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPertSymmetric(t *testing.T) {
	d := NewPert() // [0,1], mode 1/2: Beta(3,3)
	if !aeq(0.5, d.Mean()) {
		t.Errorf("Mean = %v", d.Mean())
	}
	if !aeq(0.5, d.Median()) {
		t.Errorf("Median = %v", d.Median())
	}
	if !aeq(0, d.Skewness()) {
		t.Errorf("Skewness = %v", d.Skewness())
	}
	if !aeq(math.Sqrt(1.0/28), d.StdDev()) {
		t.Errorf("StdDev = %v", d.StdDev())
	}
	if !aeqTol(7.0/3, d.Kurtosis(), 1e-6) {
		t.Errorf("Kurtosis = %v", d.Kurtosis())
	}
	// Beta(3,3) density at the mode is 30·(1/2)²·(1/2)² = 1.875.
	if !aeq(1.875, d.PDF(0.5)) {
		t.Errorf("PDF(0.5) = %v", d.PDF(0.5))
	}
	if d.PDF(-0.1) != 0 || d.PDF(1.1) != 0 {
		t.Error("density nonzero outside support")
	}
}

func TestPertRoundTrip(t *testing.T) {
	d := &Pert{Min: 10, C: 13, Max: 20}
	for _, p := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		x := d.InvCDF(p)
		if !aeqTol(p, d.CDF(x), 1e-9) {
			t.Errorf("CDF(InvCDF(%v)) = %v", p, d.CDF(x))
		}
	}
	if d.InvCDF(0) != 10 || d.InvCDF(1) != 20 {
		t.Error("endpoints not pinned")
	}
}

func TestSolvePertPercentile(t *testing.T) {
	want := &Pert{Min: 0, C: 0.7, Max: 1}
	v := want.InvCDF(0.9)

	got, err := SolvePertPercentile(0, v, 1, 0.9)
	require.NoError(t, err)
	require.InDelta(t, 0.7, got.C, 1e-6)

	// Same constraint expressed as a normal deviate.
	z := 1.2815515655446004 // Φ(z) = 0.9
	gotZ, err := SolvePertPercentileZ(0, v, 1, z)
	require.NoError(t, err)
	require.InDelta(t, 0.7, gotZ.C, 1e-4)

	_, err = SolvePertPercentile(0, 1.5, 1, 0.9)
	require.Error(t, err)
}
