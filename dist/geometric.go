// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Geometric is the discrete geometric distribution counting the
// number of failures before the first success, with success
// probability P in (0, 1]. It is defined at k = 0, 1, 2, ....
type Geometric struct {
	P float64
}

// NewGeometric returns a geometric distribution with success
// probability 0.5.
func NewGeometric() *Geometric {
	return &Geometric{P: 0.5}
}

func (d *Geometric) ParametersValid() bool {
	return d.P > 0 && d.P <= 1
}

func (d *Geometric) Parameters() []Parameter {
	return []Parameter{{"Probability (p)", d.P}}
}

func (d *Geometric) SetParameters(values []float64) error {
	if len(values) != 1 {
		return errParamLen("geometric", 1, len(values))
	}
	d.P = values[0]
	return nil
}

// PMF returns Pr[X = floor(k)].
func (d *Geometric) PMF(k float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	ki := int(math.Floor(k))
	if ki < 0 {
		return 0
	}
	return d.P * math.Pow(1-d.P, float64(ki))
}

// PDF aliases PMF at the floored point.
func (d *Geometric) PDF(x float64) float64 {
	return d.PMF(x)
}

func (d *Geometric) CDF(k float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	ki := math.Floor(k)
	if ki < 0 {
		return 0
	}
	return 1 - math.Pow(1-d.P, ki+1)
}

func (d *Geometric) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		if d.P == 1 {
			return 0
		}
		return inf
	}
	if d.P == 1 {
		return 0
	}
	k := math.Ceil(math.Log1p(-p)/math.Log1p(-d.P)) - 1
	if k < 0 {
		k = 0
	}
	return k
}

// Step returns the spacing of the support points.
func (d *Geometric) Step() float64 { return 1 }

func (d *Geometric) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.9999)
}

func (d *Geometric) Mean() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return (1 - d.P) / d.P
}

func (d *Geometric) Median() float64 {
	return d.InvCDF(0.5)
}

func (d *Geometric) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return 0
}

func (d *Geometric) StdDev() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return math.Sqrt(1-d.P) / d.P
}

func (d *Geometric) Skewness() float64 {
	if !d.ParametersValid() || d.P == 1 {
		return nan
	}
	return (2 - d.P) / math.Sqrt(1-d.P)
}

// Kurtosis returns the full (non-excess) kurtosis.
func (d *Geometric) Kurtosis() float64 {
	if !d.ParametersValid() || d.P == 1 {
		return nan
	}
	return 9 + d.P*d.P/(1-d.P)
}

func (d *Geometric) momFromMoments(mean, variance float64) ([]float64, error) {
	if mean < 0 {
		return nil, errors.Wrap(ErrBadParameters, "geometric: negative sample mean")
	}
	return []float64{1 / (1 + mean)}, nil
}

// Estimate fits p = 1/(1 + mean). The method of moments and maximum
// likelihood coincide for this family.
func (d *Geometric) Estimate(xs []float64, method EstimationMethod) error {
	if len(xs) < 1 {
		return errors.Wrapf(ErrInsufficientData, "geometric: n=%d", len(xs))
	}
	switch method {
	case MethodOfMoments, MaximumLikelihood:
	default:
		return errors.Wrapf(ErrUnsupported, "geometric: %s", method)
	}
	vals, err := d.momFromMoments(Sample{Xs: xs}.Mean(), 0)
	if err != nil {
		return err
	}
	d.P = vals[0]
	return nil
}

func (d *Geometric) PartialDerivatives(p float64) []float64 {
	if p <= 0 || p >= 1 {
		return []float64{nan}
	}
	// Continuous relaxation of k = ln(1-p)/ln(1-P) - 1.
	l := math.Log1p(-d.P)
	return []float64{math.Log1p(-p) / (l * l * (1 - d.P))}
}

func (d *Geometric) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInsufficientData, "n=%d", n)
	}
	switch method {
	case MethodOfMoments, MaximumLikelihood:
		// Fisher information per observation is 1/(p²(1-p)).
		return mat.NewSymDense(1, []float64{d.P * d.P * (1 - d.P) / float64(n)}), nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "geometric: %s", method)
}
