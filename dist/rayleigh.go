// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Rayleigh is the Rayleigh distribution with scale Sigma > 0.
type Rayleigh struct {
	Sigma float64
}

// NewRayleigh returns a Rayleigh distribution with scale 1.
func NewRayleigh() *Rayleigh {
	return &Rayleigh{Sigma: 1}
}

func (d *Rayleigh) ParametersValid() bool {
	return d.Sigma > 0 && !math.IsInf(d.Sigma, 0)
}

func (d *Rayleigh) Parameters() []Parameter {
	return []Parameter{{"Scale (σ)", d.Sigma}}
}

func (d *Rayleigh) SetParameters(values []float64) error {
	if len(values) != 1 {
		return errParamLen("rayleigh", 1, len(values))
	}
	d.Sigma = values[0]
	return nil
}

func (d *Rayleigh) PDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x < 0 {
		return 0
	}
	s2 := d.Sigma * d.Sigma
	return x / s2 * math.Exp(-x*x/(2*s2))
}

func (d *Rayleigh) CDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x < 0 {
		return 0
	}
	return -math.Expm1(-x * x / (2 * d.Sigma * d.Sigma))
}

func (d *Rayleigh) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 1 {
		return inf
	}
	return d.Sigma * math.Sqrt(-2*math.Log1p(-p))
}

func (d *Rayleigh) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.9999)
}

func (d *Rayleigh) Mean() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.Sigma * math.Sqrt(math.Pi/2)
}

func (d *Rayleigh) Median() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.Sigma * math.Sqrt(2*math.Ln2)
}

func (d *Rayleigh) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.Sigma
}

func (d *Rayleigh) StdDev() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.Sigma * math.Sqrt(2-math.Pi/2)
}

func (d *Rayleigh) Skewness() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return 2 * math.SqrtPi * (math.Pi - 3) / math.Pow(4-math.Pi, 1.5)
}

// Kurtosis returns the full (non-excess) kurtosis.
func (d *Rayleigh) Kurtosis() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return 3 - (6*math.Pi*math.Pi-24*math.Pi+16)/((4-math.Pi)*(4-math.Pi))
}

func (d *Rayleigh) momFromMoments(mean, variance float64) ([]float64, error) {
	if mean <= 0 {
		return nil, errors.Wrap(ErrBadParameters, "rayleigh: nonpositive sample mean")
	}
	return []float64{mean / math.Sqrt(math.Pi/2)}, nil
}

func (d *Rayleigh) Estimate(xs []float64, method EstimationMethod) error {
	if len(xs) < 1 {
		return errors.Wrapf(ErrInsufficientData, "rayleigh: n=%d", len(xs))
	}
	s := Sample{Xs: xs}
	switch method {
	case MethodOfMoments:
		vals, err := d.momFromMoments(s.Mean(), s.Variance())
		if err != nil {
			return err
		}
		d.Sigma = vals[0]
		return nil
	case MaximumLikelihood:
		sum := 0.0
		for _, x := range xs {
			if x < 0 {
				return errors.Wrap(ErrBadParameters, "rayleigh: negative observation")
			}
			sum += x * x
		}
		if sum == 0 {
			return errors.Wrap(ErrBadParameters, "rayleigh: degenerate sample")
		}
		d.Sigma = math.Sqrt(sum / (2 * float64(len(xs))))
		return nil
	}
	return errors.Wrapf(ErrUnsupported, "rayleigh: %s", method)
}

func (d *Rayleigh) PartialDerivatives(p float64) []float64 {
	if p <= 0 || p >= 1 {
		return []float64{nan}
	}
	return []float64{math.Sqrt(-2 * math.Log1p(-p))}
}

func (d *Rayleigh) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInsufficientData, "n=%d", n)
	}
	s2 := d.Sigma * d.Sigma
	nf := float64(n)
	switch method {
	case MaximumLikelihood:
		// Fisher information per observation is 4/σ².
		return mat.NewSymDense(1, []float64{s2 / (4 * nf)}), nil
	case MethodOfMoments:
		// Delta method on σ̂ = m·sqrt(2/π):
		// Var = (2/π)·Var(m) = (4-π)σ²/(πn).
		return mat.NewSymDense(1, []float64{(4 - math.Pi) * s2 / (math.Pi * nf)}), nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "rayleigh: %s", method)
}
