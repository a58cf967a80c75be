// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInverseGamma(t *testing.T) {
	d := NewInverseGamma() // α=3, β=1
	if !aeq(0.5, d.Mean()) {
		t.Errorf("Mean = %v", d.Mean())
	}
	if !aeq(0.25, d.Mode()) {
		t.Errorf("Mode = %v", d.Mode())
	}
	if !aeq(0.5, d.StdDev()) {
		t.Errorf("StdDev = %v", d.StdDev())
	}
	// CDF(1/2) = Q(3, 2) = e^{-2}(1 + 2 + 2).
	if !aeq(5*math.Exp(-2), d.CDF(0.5)) {
		t.Errorf("CDF(0.5) = %v", d.CDF(0.5))
	}
	if !aeq(8*math.Exp(-2), d.PDF(0.5)) {
		t.Errorf("PDF(0.5) = %v", d.PDF(0.5))
	}
	if !aeqTol(0.5, d.InvCDF(5*math.Exp(-2)), 1e-8) {
		t.Errorf("InvCDF = %v", d.InvCDF(5*math.Exp(-2)))
	}

	// Moment existence thresholds.
	if !math.IsInf((&InverseGamma{Alpha: 1, Beta: 1}).Mean(), 1) {
		t.Error("Mean(α=1) finite, want +Inf")
	}
	if !math.IsNaN((&InverseGamma{Alpha: 3, Beta: 1}).Skewness()) {
		t.Error("Skewness(α=3) defined, want NaN")
	}
}

func TestInverseGammaEstimate(t *testing.T) {
	want := InverseGamma{Alpha: 4, Beta: 6}
	xs := make([]float64, 499)
	for i := range xs {
		xs[i] = want.InvCDF(float64(i+1) / 500)
	}

	d := NewInverseGamma()
	require.NoError(t, d.Estimate(xs, MethodOfMoments))
	require.InEpsilon(t, want.Alpha, d.Alpha, 0.15)
	require.InEpsilon(t, want.Beta, d.Beta, 0.15)

	d = NewInverseGamma()
	require.NoError(t, d.Estimate(xs, MaximumLikelihood))
	require.InEpsilon(t, want.Alpha, d.Alpha, 0.05)
	require.InEpsilon(t, want.Beta, d.Beta, 0.05)
}
