// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCauchy(t *testing.T) {
	d := &Cauchy{X0: 0.42, Gamma: 1.57}
	if !aeq(0.2009112, d.PDF(0.27)) {
		t.Errorf("PDF(0.27) = %v", d.PDF(0.27))
	}
	if !aeq(0.4696803, d.CDF(0.27)) {
		t.Errorf("CDF(0.27) = %v", d.CDF(0.27))
	}
	if !aeq(1.5130305, d.InvCDF(0.6935864)) {
		t.Errorf("InvCDF(0.6935864) = %v", d.InvCDF(0.6935864))
	}
	if !aeq(0.42, d.Median()) {
		t.Errorf("Median = %v", d.Median())
	}

	// All conventional moments are undefined.
	for name, v := range map[string]float64{
		"Mean": d.Mean(), "StdDev": d.StdDev(),
		"Skewness": d.Skewness(), "Kurtosis": d.Kurtosis(),
	} {
		if !math.IsNaN(v) {
			t.Errorf("%s = %v, want NaN", name, v)
		}
	}
}

func TestCauchyInvalid(t *testing.T) {
	for _, d := range []*Cauchy{
		{X0: math.NaN(), Gamma: 1},
		{X0: 1, Gamma: 0},
		{X0: 1, Gamma: -2},
	} {
		if d.ParametersValid() {
			t.Errorf("Cauchy(%v, %v) reported valid", d.X0, d.Gamma)
		}
		if !math.IsNaN(d.PDF(0)) || !math.IsNaN(d.CDF(0)) {
			t.Errorf("Cauchy(%v, %v) did not propagate NaN", d.X0, d.Gamma)
		}
	}
}

func TestCauchyCovariance(t *testing.T) {
	d := &Cauchy{X0: 0.42, Gamma: 1.57}
	g2 := d.Gamma * d.Gamma
	n := 100

	// MLE: diagonal Fisher inverse, 2γ²/n each.
	cov, err := d.ParameterCovariance(n, MaximumLikelihood)
	require.NoError(t, err)
	require.InEpsilon(t, 2*g2/float64(n), cov.At(0, 0), 1e-12)
	require.InEpsilon(t, 2*g2/float64(n), cov.At(1, 1), 1e-12)
	require.Zero(t, cov.At(0, 1))

	// Quartile estimator: median and half-IQR both carry variance
	// π²γ²/(4n).
	want := math.Pi * math.Pi * g2 / (4 * float64(n))
	for _, method := range []EstimationMethod{MethodOfMoments, MethodOfLinearMoments} {
		cov, err := d.ParameterCovariance(n, method)
		require.NoError(t, err)
		require.InEpsilon(t, want, cov.At(0, 0), 1e-12, "%s Var(x̂0)", method)
		require.InEpsilon(t, want, cov.At(1, 1), 1e-12, "%s Var(γ̂)", method)
		require.Zero(t, cov.At(0, 1))
	}
}

func TestCauchyEstimate(t *testing.T) {
	// Plotting-position sample from a known Cauchy.
	want := Cauchy{X0: 3, Gamma: 0.8}
	xs := make([]float64, 399)
	for i := range xs {
		xs[i] = want.InvCDF(float64(i+1) / 400)
	}

	d := NewCauchy()
	require.NoError(t, d.Estimate(xs, MethodOfMoments))
	require.InDelta(t, want.X0, d.X0, 0.05)
	require.InDelta(t, want.Gamma, d.Gamma, 0.05)

	d = NewCauchy()
	require.NoError(t, d.Estimate(xs, MaximumLikelihood))
	require.InDelta(t, want.X0, d.X0, 0.05)
	require.InDelta(t, want.Gamma, d.Gamma, 0.05)
}
