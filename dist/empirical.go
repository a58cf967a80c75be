// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Empirical is a continuous empirical distribution over an observed
// sample: the CDF linearly interpolates the Weibull plotting
// positions i/(n+1) between the order statistics and clamps outside
// the observed range. It is nonparametric, so the Parametric
// parameter-vector and covariance operations are unsupported.
type Empirical struct {
	xs []float64 // sorted
	ps []float64 // plotting positions, same length
}

// NewEmpirical builds an empirical distribution from xs, which needs
// at least two distinct observations. The input is copied.
func NewEmpirical(xs []float64) (*Empirical, error) {
	if len(xs) < 2 {
		return nil, errors.Wrapf(ErrInsufficientData, "empirical: n=%d", len(xs))
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	for _, x := range sorted {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, errors.Wrap(ErrBadParameters, "empirical: non-finite observation")
		}
	}
	if sorted[0] == sorted[len(sorted)-1] {
		return nil, errors.Wrap(ErrBadParameters, "empirical: degenerate sample")
	}
	n := float64(len(sorted))
	ps := make([]float64, len(sorted))
	for i := range ps {
		ps[i] = float64(i+1) / (n + 1)
	}
	return &Empirical{xs: sorted, ps: ps}, nil
}

func (d *Empirical) ParametersValid() bool {
	return len(d.xs) >= 2
}

func (d *Empirical) Parameters() []Parameter { return nil }

func (d *Empirical) SetParameters(values []float64) error {
	return errors.Wrap(ErrUnsupported, "empirical: no parameter vector")
}

// Estimate rebuilds the distribution over the new sample; the method
// argument is ignored.
func (d *Empirical) Estimate(xs []float64, method EstimationMethod) error {
	e, err := NewEmpirical(xs)
	if err != nil {
		return err
	}
	*d = *e
	return nil
}

func (d *Empirical) CDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x <= d.xs[0] {
		if x < d.xs[0] {
			return 0
		}
		// A tied minimum steps to the highest tied plotting
		// position, like any other tied knot.
		i := 0
		for i+1 < len(d.xs) && d.xs[i+1] == x {
			i++
		}
		return d.ps[i]
	}
	last := len(d.xs) - 1
	if x >= d.xs[last] {
		if x > d.xs[last] {
			return 1
		}
		return d.ps[last]
	}
	i := sort.SearchFloat64s(d.xs, x)
	if d.xs[i] == x {
		// Step over ties to the highest plotting position.
		for i+1 < len(d.xs) && d.xs[i+1] == x {
			i++
		}
		return d.ps[i]
	}
	lo, hi := i-1, i
	if d.xs[hi] == d.xs[lo] {
		return d.ps[hi]
	}
	t := (x - d.xs[lo]) / (d.xs[hi] - d.xs[lo])
	return d.ps[lo] + t*(d.ps[hi]-d.ps[lo])
}

// PDF is the slope of the interpolated CDF at x, zero outside the
// observed range.
func (d *Empirical) PDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x < d.xs[0] || x > d.xs[len(d.xs)-1] {
		return 0
	}
	i := sort.SearchFloat64s(d.xs, x)
	if i == 0 {
		i = 1
	}
	if i >= len(d.xs) {
		i = len(d.xs) - 1
	}
	dx := d.xs[i] - d.xs[i-1]
	if dx == 0 {
		return inf
	}
	return (d.ps[i] - d.ps[i-1]) / dx
}

// InvCDF interpolates the order statistics at probability p, clamping
// to the sample extremes outside the plotting-position range.
func (d *Empirical) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p <= d.ps[0] {
		return d.xs[0]
	}
	last := len(d.ps) - 1
	if p >= d.ps[last] {
		return d.xs[last]
	}
	i := sort.SearchFloat64s(d.ps, p)
	lo, hi := i-1, i
	t := (p - d.ps[lo]) / (d.ps[hi] - d.ps[lo])
	return d.xs[lo] + t*(d.xs[hi]-d.xs[lo])
}

func (d *Empirical) Bounds() (float64, float64) {
	if !d.ParametersValid() {
		return nan, nan
	}
	return d.xs[0], d.xs[len(d.xs)-1]
}

func (d *Empirical) sample() Sample {
	return Sample{Xs: d.xs, Sorted: true}
}

func (d *Empirical) Mean() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.sample().Mean()
}

func (d *Empirical) Median() float64 {
	return d.InvCDF(0.5)
}

// Mode returns the midpoint of the narrowest inter-order-statistic
// gap, where the interpolated density is highest.
func (d *Empirical) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	best, width := 0, inf
	for i := 1; i < len(d.xs); i++ {
		if w := d.xs[i] - d.xs[i-1]; w < width && w > 0 {
			best, width = i, w
		}
	}
	return (d.xs[best] + d.xs[best-1]) / 2
}

func (d *Empirical) StdDev() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.sample().StdDev()
}

func (d *Empirical) Skewness() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.sample().Skewness()
}

// Kurtosis returns the full (non-excess) sample kurtosis.
func (d *Empirical) Kurtosis() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.sample().ExKurtosis() + 3
}

func (d *Empirical) PartialDerivatives(p float64) []float64 { return nil }

func (d *Empirical) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	return nil, errors.Wrap(ErrUnsupported, "empirical: nonparametric")
}
