// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuantileVarianceRayleigh(t *testing.T) {
	// Closed form: Var(x̂_p) = (-2 ln(1-p)) · σ²/(4n) under the
	// maximum-likelihood fit.
	d := &Rayleigh{Sigma: 2}
	got, err := QuantileVariance(d, 0.9, 50, MaximumLikelihood)
	require.NoError(t, err)
	want := -2 * math.Log(0.1) * 4 / 200
	require.InEpsilon(t, want, got, 1e-9)

	se, err := QuantileStdErr(d, 0.9, 50, MaximumLikelihood)
	require.NoError(t, err)
	require.InEpsilon(t, math.Sqrt(want), se, 1e-9)
}

func TestQuantileVarianceShrinks(t *testing.T) {
	d := &GeneralizedPareto{Xi: 100, Alpha: 50, Kappa: 0.1}
	v100, err := QuantileVariance(d, 0.99, 100, MaximumLikelihood)
	require.NoError(t, err)
	v400, err := QuantileVariance(d, 0.99, 400, MaximumLikelihood)
	require.NoError(t, err)
	require.InEpsilon(t, v100/4, v400, 1e-9)
}

func TestJacobianCauchy(t *testing.T) {
	// The Cauchy quantile partials at the quartiles are
	// {1, -1} and {1, 1}, giving determinant 2 regardless of the
	// parameter values.
	d := &Cauchy{X0: 0.42, Gamma: 1.57}
	det, err := Jacobian(d, []float64{0.25, 0.75})
	require.NoError(t, err)
	require.InDelta(t, 2, det, 1e-9)

	_, err = Jacobian(d, []float64{0.5})
	require.Error(t, err)
}

func TestCauchyPartials(t *testing.T) {
	d := &Cauchy{X0: 1, Gamma: 2}
	got := d.PartialDerivatives(0.75)
	if !aeq(1, got[0]) || !aeq(1, got[1]) {
		t.Errorf("partials(0.75) = %v", got)
	}
	// Against central differences on the closed-form quantile.
	num := numericPartials(func(vals []float64) Dist {
		return &Cauchy{X0: vals[0], Gamma: vals[1]}
	}, []float64{1, 2}, 0.9)
	ana := d.PartialDerivatives(0.9)
	for i := range ana {
		if !aeqTol(num[i], ana[i], 1e-4) {
			t.Errorf("partial %d: analytic %v, numeric %v", i, ana[i], num[i])
		}
	}
}

func TestGEVPartialsAgainstNumeric(t *testing.T) {
	d := &GEV{Xi: 1000, Alpha: 250, Kappa: 0.1}
	for _, p := range []float64{0.1, 0.5, 0.9, 0.99} {
		ana := d.PartialDerivatives(p)
		num := numericPartials(func(vals []float64) Dist {
			return &GEV{Xi: vals[0], Alpha: vals[1], Kappa: vals[2]}
		}, []float64{1000, 250, 0.1}, p)
		for i := range ana {
			if !releq(num[i], ana[i], 1e-3) {
				t.Errorf("p=%v partial %d: analytic %v, numeric %v", p, i, ana[i], num[i])
			}
		}
	}
}

func TestGPAPartialsAgainstNumeric(t *testing.T) {
	d := &GeneralizedPareto{Xi: 100, Alpha: 50, Kappa: 0.15}
	for _, p := range []float64{0.1, 0.5, 0.9, 0.99} {
		ana := d.PartialDerivatives(p)
		num := numericPartials(func(vals []float64) Dist {
			return &GeneralizedPareto{Xi: vals[0], Alpha: vals[1], Kappa: vals[2]}
		}, []float64{100, 50, 0.15}, p)
		for i := range ana {
			if !releq(num[i], ana[i], 1e-3) {
				t.Errorf("p=%v partial %d: analytic %v, numeric %v", p, i, ana[i], num[i])
			}
		}
	}
}

func TestMOMCovarianceRayleigh(t *testing.T) {
	// Moment fit σ̂ = m·√(2/π): Var(σ̂) = (2/π)·Var(m) =
	// (2/π)·(4-π)/2·σ²/n = (4-π)σ²/(πn).
	d := &Rayleigh{Sigma: 2}
	cov, err := d.ParameterCovariance(80, MethodOfMoments)
	require.NoError(t, err)
	want := (4 - math.Pi) * 4 / (math.Pi * 80)
	require.InEpsilon(t, want, cov.At(0, 0), 1e-6)
}
