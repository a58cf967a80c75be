// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestTriangular(t *testing.T) {
	d := &Triangular{Min: 0, C: 2, Max: 6}
	if !aeq(8.0/3, d.Mean()) {
		t.Errorf("Mean = %v", d.Mean())
	}
	if !aeq(2, d.Mode()) {
		t.Errorf("Mode = %v", d.Mode())
	}
	// At the mode: density peak 2/(b-a), CDF (c-a)/(b-a).
	if !aeq(1.0/3, d.PDF(2)) {
		t.Errorf("PDF(2) = %v", d.PDF(2))
	}
	if !aeq(1.0/3, d.CDF(2)) {
		t.Errorf("CDF(2) = %v", d.CDF(2))
	}
	if !aeq(6-math.Sqrt(12), d.Median()) {
		t.Errorf("Median = %v", d.Median())
	}
	if !aeq(2.4, d.Kurtosis()) {
		t.Errorf("Kurtosis = %v", d.Kurtosis())
	}
	if d.PDF(-1) != 0 || d.PDF(7) != 0 {
		t.Error("density nonzero outside support")
	}
	for _, p := range []float64{0.05, 1.0 / 3, 0.5, 0.95} {
		if !aeq(p, d.CDF(d.InvCDF(p))) {
			t.Errorf("CDF(InvCDF(%v)) = %v", p, d.CDF(d.InvCDF(p)))
		}
	}
}

func TestTriangularEstimate(t *testing.T) {
	want := Triangular{Min: 10, C: 12, Max: 20}
	xs := make([]float64, 999)
	for i := range xs {
		xs[i] = want.InvCDF(float64(i+1) / 1000)
	}
	d := NewTriangular()
	if err := d.Estimate(xs, MethodOfMoments); err != nil {
		t.Fatal(err)
	}
	if !aeqTol(want.Min, d.Min, 0.25) || !aeqTol(want.Max, d.Max, 0.25) || !aeqTol(want.C, d.C, 0.5) {
		t.Errorf("fit = (%v, %v, %v)", d.Min, d.C, d.Max)
	}
}
