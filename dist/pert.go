// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub004/mathx"
)

// Pert is the PERT distribution on [Min, Max] with most-likely value
// C: a four-parameter beta with the standard PERT shape mapping
//
//	α = 1 + 4(c−a)/(b−a),  β = 1 + 4(b−c)/(b−a).
type Pert struct {
	Min float64
	C   float64
	Max float64
}

// NewPert returns a symmetric PERT on [0, 1] with mode 1/2.
func NewPert() *Pert {
	return &Pert{Min: 0, C: 0.5, Max: 1}
}

func (d *Pert) ParametersValid() bool {
	return !math.IsNaN(d.Min) && !math.IsInf(d.Min, 0) &&
		!math.IsNaN(d.Max) && !math.IsInf(d.Max, 0) &&
		d.Min < d.Max && d.Min <= d.C && d.C <= d.Max
}

func (d *Pert) Parameters() []Parameter {
	return []Parameter{
		{"Min (a)", d.Min},
		{"Most Likely (c)", d.C},
		{"Max (b)", d.Max},
	}
}

func (d *Pert) SetParameters(values []float64) error {
	if len(values) != 3 {
		return errParamLen("pert", 3, len(values))
	}
	d.Min, d.C, d.Max = values[0], values[1], values[2]
	return nil
}

// shapes returns the underlying beta shape parameters.
func (d *Pert) shapes() (alpha, beta float64) {
	r := d.Max - d.Min
	return 1 + 4*(d.C-d.Min)/r, 1 + 4*(d.Max-d.C)/r
}

func (d *Pert) PDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x <= d.Min || x >= d.Max {
		return 0
	}
	a, b := d.shapes()
	r := d.Max - d.Min
	u := (x - d.Min) / r
	return math.Exp((a-1)*math.Log(u)+(b-1)*math.Log1p(-u)-mathext.Lbeta(a, b)) / r
}

func (d *Pert) CDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x <= d.Min {
		return 0
	}
	if x >= d.Max {
		return 1
	}
	a, b := d.shapes()
	return mathext.RegIncBeta(a, b, (x-d.Min)/(d.Max-d.Min))
}

func (d *Pert) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return d.Min
	}
	if p == 1 {
		return d.Max
	}
	a, b := d.shapes()
	return d.Min + (d.Max-d.Min)*mathext.InvRegIncBeta(a, b, p)
}

func (d *Pert) Bounds() (float64, float64) {
	return d.Min, d.Max
}

func (d *Pert) Mean() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return (d.Min + 4*d.C + d.Max) / 6
}

func (d *Pert) Median() float64 {
	return d.InvCDF(0.5)
}

func (d *Pert) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.C
}

func (d *Pert) StdDev() float64 {
	if !d.ParametersValid() {
		return nan
	}
	a, b := d.shapes()
	r := d.Max - d.Min
	return r * math.Sqrt(a*b/((a+b)*(a+b)*(a+b+1)))
}

func (d *Pert) Skewness() float64 {
	if !d.ParametersValid() {
		return nan
	}
	a, b := d.shapes()
	return 2 * (b - a) * math.Sqrt(a+b+1) / ((a + b + 2) * math.Sqrt(a*b))
}

// Kurtosis returns the full (non-excess) kurtosis.
func (d *Pert) Kurtosis() float64 {
	if !d.ParametersValid() {
		return nan
	}
	a, b := d.shapes()
	num := (a-b)*(a-b)*(a+b+1) - a*b*(a+b+2)
	return 3 + 6*num/(a*b*(a+b+2)*(a+b+3))
}

// Estimate fits the PERT by the method of moments with the endpoints
// anchored at the sample extremes: the mode follows from the PERT
// mean identity c = (6m − a − b)/4, clamped into (a, b).
func (d *Pert) Estimate(xs []float64, method EstimationMethod) error {
	if len(xs) < 3 {
		return errors.Wrapf(ErrInsufficientData, "pert: n=%d", len(xs))
	}
	if method != MethodOfMoments {
		return errors.Wrapf(ErrUnsupported, "pert: %s", method)
	}
	s := Sample{Xs: xs}
	a, b := s.Min(), s.Max()
	if !(a < b) {
		return errors.Wrap(ErrBadParameters, "pert: degenerate sample range")
	}
	c := (6*s.Mean() - a - b) / 4
	c = math.Min(math.Max(c, a), b)
	d.Min, d.C, d.Max = a, c, b
	return nil
}

func (d *Pert) PartialDerivatives(p float64) []float64 {
	if p <= 0 || p >= 1 {
		return []float64{nan, nan, nan}
	}
	return numericPartials(func(vals []float64) Dist {
		return &Pert{Min: vals[0], C: vals[1], Max: vals[2]}
	}, []float64{d.Min, d.C, d.Max}, p)
}

// ParameterCovariance is unsupported: the endpoint estimators are
// extreme order statistics with nonregular asymptotics.
func (d *Pert) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	return nil, errors.Wrap(ErrUnsupported, "pert: nonregular endpoint estimators")
}

// SolvePertPercentile returns the PERT on [min, max] whose p'th
// quantile equals v, solving for the most-likely value. v must lie
// strictly between min and max, and p strictly inside (0, 1).
func SolvePertPercentile(min, v, max, p float64) (*Pert, error) {
	if !(min < v && v < max) || !(p > 0 && p < 1) {
		return nil, errors.Wrap(ErrBadParameters, "pert percentile solve")
	}
	f := func(c float64) float64 {
		g := Pert{Min: min, C: c, Max: max}
		return g.InvCDF(p) - v
	}
	// The p'th quantile is increasing in the mode, so the root is
	// bracketed by the endpoints whenever a solution exists.
	eps := 1e-9 * (max - min)
	lo, hi := min+eps, max-eps
	if f(lo)*f(hi) > 0 {
		return nil, errors.Wrap(ErrNonConvergence, "pert: percentile constraint unattainable on the given range")
	}
	c, err := mathx.FindRoot(f, nil, lo, hi, nil)
	if err != nil {
		return nil, errors.Wrap(err, "pert")
	}
	return &Pert{Min: min, C: c, Max: max}, nil
}

// SolvePertPercentileZ is SolvePertPercentile with the percentile
// given as a standard normal deviate, p = Φ(z).
func SolvePertPercentileZ(min, v, max, z float64) (*Pert, error) {
	return SolvePertPercentile(min, v, max, distuv.UnitNormal.CDF(z))
}
