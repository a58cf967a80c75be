// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Cauchy is the Cauchy (Lorentz) distribution with location X0 and
// scale Gamma > 0. None of its conventional moments exist.
type Cauchy struct {
	X0    float64
	Gamma float64
}

// NewCauchy returns a standard Cauchy distribution (location 0,
// scale 1).
func NewCauchy() *Cauchy {
	return &Cauchy{X0: 0, Gamma: 1}
}

func (d *Cauchy) ParametersValid() bool {
	return !math.IsNaN(d.X0) && !math.IsInf(d.X0, 0) &&
		d.Gamma > 0 && !math.IsInf(d.Gamma, 0)
}

func (d *Cauchy) Parameters() []Parameter {
	return []Parameter{
		{"Location (X0)", d.X0},
		{"Scale (γ)", d.Gamma},
	}
}

func (d *Cauchy) SetParameters(values []float64) error {
	if len(values) != 2 {
		return errParamLen("cauchy", 2, len(values))
	}
	d.X0, d.Gamma = values[0], values[1]
	return nil
}

func (d *Cauchy) PDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	z := (x - d.X0) / d.Gamma
	return 1 / (math.Pi * d.Gamma * (1 + z*z))
}

func (d *Cauchy) CDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	return 0.5 + math.Atan((x-d.X0)/d.Gamma)/math.Pi
}

func (d *Cauchy) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	switch p {
	case 0:
		return math.Inf(-1)
	case 1:
		return inf
	}
	return d.X0 + d.Gamma*math.Tan(math.Pi*(p-0.5))
}

func (d *Cauchy) Bounds() (float64, float64) {
	// The Cauchy tails are heavy; cover the central 99.9%.
	return d.InvCDF(0.0005), d.InvCDF(0.9995)
}

// Mean is undefined for the Cauchy distribution.
func (d *Cauchy) Mean() float64 { return nan }

func (d *Cauchy) Median() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.X0
}

func (d *Cauchy) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.X0
}

// StdDev is undefined for the Cauchy distribution.
func (d *Cauchy) StdDev() float64 { return nan }

// Skewness is undefined for the Cauchy distribution.
func (d *Cauchy) Skewness() float64 { return nan }

// Kurtosis is undefined for the Cauchy distribution.
func (d *Cauchy) Kurtosis() float64 { return nan }

// Estimate fits location and scale. Because no conventional moments
// exist, MethodOfMoments uses the quartile estimator (median and
// half-interquartile range); MaximumLikelihood refines it by a
// likelihood search.
func (d *Cauchy) Estimate(xs []float64, method EstimationMethod) error {
	if len(xs) < 2 {
		return errors.Wrapf(ErrInsufficientData, "cauchy: n=%d", len(xs))
	}
	s := Sample{Xs: xs}

	x0 := s.Percentile(0.5)
	gamma := (s.Percentile(0.75) - s.Percentile(0.25)) / 2
	if gamma <= 0 {
		return errors.Wrap(ErrBadParameters, "cauchy: degenerate sample")
	}

	switch method {
	case MethodOfMoments, MethodOfLinearMoments:
		// Quartile estimator in both cases; the conventional and
		// linear moment maps are not invertible for this family.
	case MaximumLikelihood:
		negLL := func(theta []float64) float64 {
			loc, sc := theta[0], theta[1]
			if sc <= 0 {
				return inf
			}
			ll := 0.0
			for _, x := range xs {
				z := (x - loc) / sc
				ll += -math.Log(math.Pi*sc) - math.Log1p(z*z)
			}
			return -ll
		}
		theta, err := maximizeLikelihood(negLL, []float64{x0, gamma})
		if err != nil {
			return errors.Wrap(err, "cauchy")
		}
		x0, gamma = theta[0], theta[1]
	default:
		return errors.Wrapf(ErrUnsupported, "cauchy: %s", method)
	}

	d.X0, d.Gamma = x0, gamma
	return nil
}

func (d *Cauchy) PartialDerivatives(p float64) []float64 {
	if p <= 0 || p >= 1 {
		return []float64{nan, nan}
	}
	// x = X0 + γ·tan(π(p-1/2)).
	return []float64{1, math.Tan(math.Pi * (p - 0.5))}
}

func (d *Cauchy) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInsufficientData, "n=%d", n)
	}
	g2 := d.Gamma * d.Gamma
	nf := float64(n)
	switch method {
	case MaximumLikelihood:
		// The Fisher information is diagonal: I = n/(2γ²) for
		// both location and scale.
		return mat.NewSymDense(2, []float64{
			2 * g2 / nf, 0,
			0, 2 * g2 / nf,
		}), nil
	case MethodOfMoments, MethodOfLinearMoments:
		// Quartile estimator. Var(med) = π²γ²/(4n) directly from
		// the order-statistic asymptotics. For the half-IQR,
		// Var(q̂.75) = Var(q̂.25) = 3π²γ²/(4n) and
		// Cov(q̂.25, q̂.75) = π²γ²/(4n), so
		// Var(γ̂) = ¼(3/4 + 3/4 - 2/4)π²γ²/n = π²γ²/(4n).
		pi2 := math.Pi * math.Pi
		return mat.NewSymDense(2, []float64{
			pi2 * g2 / (4 * nf), 0,
			0, pi2 * g2 / (4 * nf),
		}), nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "cauchy: %s", method)
}
