// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestGeometric(t *testing.T) {
	d := &Geometric{P: 0.3}
	if !aeq(0.7/0.3, d.Mean()) {
		t.Errorf("Mean = %v", d.Mean())
	}
	if !aeq(0.3, d.PMF(0)) {
		t.Errorf("PMF(0) = %v", d.PMF(0))
	}
	if !aeq(0.3*0.7*0.7, d.PMF(2)) {
		t.Errorf("PMF(2) = %v", d.PMF(2))
	}
	if !aeq(0.657, d.CDF(2)) {
		t.Errorf("CDF(2) = %v", d.CDF(2))
	}
	if got := d.InvCDF(0.657); got != 2 {
		t.Errorf("InvCDF(0.657) = %v, want 2", got)
	}
	if got := d.InvCDF(0.66); got != 3 {
		t.Errorf("InvCDF(0.66) = %v, want 3", got)
	}
	if d.Step() != 1 {
		t.Errorf("Step = %v", d.Step())
	}
}

func TestGeometricEstimate(t *testing.T) {
	// Mean 7/3 implies p = 0.3 exactly under the moment fit.
	xs := []float64{0, 1, 2, 3, 4, 4}
	d := NewGeometric()
	if err := d.Estimate(xs, MethodOfMoments); err != nil {
		t.Fatal(err)
	}
	if !aeq(1/(1+Sample{Xs: xs}.Mean()), d.P) {
		t.Errorf("fit p = %v", d.P)
	}
}

func TestPoisson(t *testing.T) {
	d := &Poisson{Lambda: 4}
	if !aeq(0.1465251, d.PMF(2)) {
		t.Errorf("PMF(2) = %v", d.PMF(2))
	}
	if !aeq(0.2381033, d.CDF(2)) {
		t.Errorf("CDF(2) = %v", d.CDF(2))
	}
	if got := d.InvCDF(0.2381033); got != 2 {
		t.Errorf("InvCDF(0.2381033) = %v, want 2", got)
	}
	if got := d.InvCDF(0.24); got != 3 {
		t.Errorf("InvCDF(0.24) = %v, want 3", got)
	}
	if got := d.Median(); got != 4 {
		t.Errorf("Median = %v, want 4", got)
	}
	if !aeq(2, d.StdDev()) {
		t.Errorf("StdDev = %v", d.StdDev())
	}
	if !aeq(0.5, d.Skewness()) {
		t.Errorf("Skewness = %v", d.Skewness())
	}
}

func TestPoissonEstimate(t *testing.T) {
	xs := []float64{2, 3, 5, 4, 1, 0, 6, 3, 2, 4}
	d := NewPoisson()
	if err := d.Estimate(xs, MaximumLikelihood); err != nil {
		t.Fatal(err)
	}
	if !aeq(3, d.Lambda) {
		t.Errorf("fit λ = %v", d.Lambda)
	}
	cov, err := d.ParameterCovariance(10, MaximumLikelihood)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(0.3, cov.At(0, 0)) {
		t.Errorf("Var(λ̂) = %v", cov.At(0, 0))
	}
}

func TestPoissonInvalid(t *testing.T) {
	for _, lam := range []float64{0, -1, math.Inf(1), math.NaN()} {
		d := &Poisson{Lambda: lam}
		if d.ParametersValid() {
			t.Errorf("Poisson(%v) reported valid", lam)
		}
	}
}
