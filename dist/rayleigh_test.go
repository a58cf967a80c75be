// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRayleigh(t *testing.T) {
	d := &Rayleigh{Sigma: 2}
	if !aeq(2*math.Sqrt(math.Pi/2), d.Mean()) {
		t.Errorf("Mean = %v", d.Mean())
	}
	if !aeq(2*math.Sqrt(2*math.Ln2), d.Median()) {
		t.Errorf("Median = %v", d.Median())
	}
	if !aeq(2, d.Mode()) {
		t.Errorf("Mode = %v", d.Mode())
	}
	// PDF(2) = (1/2)·e^{-1/2}.
	if !aeq(0.5*math.Exp(-0.5), d.PDF(2)) {
		t.Errorf("PDF(2) = %v", d.PDF(2))
	}
	if !aeq(-math.Expm1(-0.5), d.CDF(2)) {
		t.Errorf("CDF(2) = %v", d.CDF(2))
	}
	for _, p := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		if !aeq(p, d.CDF(d.InvCDF(p))) {
			t.Errorf("CDF(InvCDF(%v)) = %v", p, d.CDF(d.InvCDF(p)))
		}
	}
}

func TestRayleighEstimate(t *testing.T) {
	want := Rayleigh{Sigma: 3.5}
	xs := make([]float64, 299)
	for i := range xs {
		xs[i] = want.InvCDF(float64(i+1) / 300)
	}
	for _, method := range []EstimationMethod{MethodOfMoments, MaximumLikelihood} {
		d := NewRayleigh()
		require.NoError(t, d.Estimate(xs, method))
		require.InEpsilon(t, want.Sigma, d.Sigma, 0.02, "method %s", method)
	}
}
