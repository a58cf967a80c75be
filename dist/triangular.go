// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Triangular is the triangular distribution with support [Min, Max]
// and mode C, Min <= C <= Max, Min < Max.
type Triangular struct {
	Min float64
	C   float64
	Max float64
}

// NewTriangular returns a triangular distribution on [0, 1] with
// mode 0.5.
func NewTriangular() *Triangular {
	return &Triangular{Min: 0, C: 0.5, Max: 1}
}

func (d *Triangular) ParametersValid() bool {
	for _, v := range []float64{d.Min, d.C, d.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return d.Min < d.Max && d.Min <= d.C && d.C <= d.Max
}

func (d *Triangular) Parameters() []Parameter {
	return []Parameter{
		{"Minimum (a)", d.Min},
		{"Most Likely (c)", d.C},
		{"Maximum (b)", d.Max},
	}
}

func (d *Triangular) SetParameters(values []float64) error {
	if len(values) != 3 {
		return errParamLen("triangular", 3, len(values))
	}
	d.Min, d.C, d.Max = values[0], values[1], values[2]
	return nil
}

func (d *Triangular) PDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	a, c, b := d.Min, d.C, d.Max
	switch {
	case x < a || x > b:
		return 0
	case x < c:
		return 2 * (x - a) / ((b - a) * (c - a))
	case x == c:
		return 2 / (b - a)
	default:
		return 2 * (b - x) / ((b - a) * (b - c))
	}
}

func (d *Triangular) CDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	a, c, b := d.Min, d.C, d.Max
	switch {
	case x <= a:
		return 0
	case x >= b:
		return 1
	case x <= c:
		return (x - a) * (x - a) / ((b - a) * (c - a))
	default:
		return 1 - (b-x)*(b-x)/((b-a)*(b-c))
	}
}

func (d *Triangular) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	a, c, b := d.Min, d.C, d.Max
	fc := (c - a) / (b - a)
	if p <= fc {
		return a + math.Sqrt(p*(b-a)*(c-a))
	}
	return b - math.Sqrt((1-p)*(b-a)*(b-c))
}

func (d *Triangular) Bounds() (float64, float64) {
	return d.Min, d.Max
}

func (d *Triangular) Mean() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return (d.Min + d.C + d.Max) / 3
}

func (d *Triangular) Median() float64 {
	return d.InvCDF(0.5)
}

func (d *Triangular) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.C
}

func (d *Triangular) variance() float64 {
	a, c, b := d.Min, d.C, d.Max
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18
}

func (d *Triangular) StdDev() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return math.Sqrt(d.variance())
}

func (d *Triangular) Skewness() float64 {
	if !d.ParametersValid() {
		return nan
	}
	a, c, b := d.Min, d.C, d.Max
	num := math.Sqrt2 * (a + b - 2*c) * (2*a - b - c) * (a - 2*b + c)
	den := 5 * math.Pow(a*a+b*b+c*c-a*b-a*c-b*c, 1.5)
	return num / den
}

// Kurtosis returns the full (non-excess) kurtosis, a constant 12/5
// for every triangular distribution.
func (d *Triangular) Kurtosis() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return 2.4
}

// Estimate fits the support from the sample extremes and the mode
// from the mean identity c = 3m - a - b, clamped into [a, b]. Only
// MethodOfMoments is defined for this family.
func (d *Triangular) Estimate(xs []float64, method EstimationMethod) error {
	if len(xs) < 3 {
		return errors.Wrapf(ErrInsufficientData, "triangular: n=%d", len(xs))
	}
	if method != MethodOfMoments {
		return errors.Wrapf(ErrUnsupported, "triangular: %s", method)
	}
	s := Sample{Xs: xs}
	a, b := s.Min(), s.Max()
	if a >= b {
		return errors.Wrap(ErrBadParameters, "triangular: degenerate sample")
	}
	c := 3*s.Mean() - a - b
	c = math.Max(a, math.Min(b, c))
	d.Min, d.C, d.Max = a, c, b
	return nil
}

func (d *Triangular) PartialDerivatives(p float64) []float64 {
	if p <= 0 || p >= 1 {
		return []float64{nan, nan, nan}
	}
	a, c, b := d.Min, d.C, d.Max
	fc := (c - a) / (b - a)
	if p <= fc {
		// x = a + sqrt(p(b-a)(c-a)).
		r := math.Sqrt(p * (b - a) * (c - a))
		return []float64{
			1 - p*(b-a+c-a)/(2*r),
			p * (b - a) / (2 * r),
			p * (c - a) / (2 * r),
		}
	}
	// x = b - sqrt((1-p)(b-a)(b-c)).
	r := math.Sqrt((1 - p) * (b - a) * (b - c))
	return []float64{
		(1 - p) * (b - c) / (2 * r),
		(1 - p) * (b - a) / (2 * r),
		1 - (1-p)*(b-a+b-c)/(2*r),
	}
}

// ParameterCovariance is not defined for the triangular family; the
// support estimators are nonregular.
func (d *Triangular) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	return nil, errors.Wrap(ErrUnsupported, "triangular: no asymptotic covariance")
}
