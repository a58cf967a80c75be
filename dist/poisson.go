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
)

// Poisson is the discrete Poisson distribution with rate Lambda > 0,
// defined at k = 0, 1, 2, ....
type Poisson struct {
	Lambda float64
}

// NewPoisson returns a Poisson distribution with rate 1.
func NewPoisson() *Poisson {
	return &Poisson{Lambda: 1}
}

func (d *Poisson) ParametersValid() bool {
	return d.Lambda > 0 && !math.IsInf(d.Lambda, 0)
}

func (d *Poisson) Parameters() []Parameter {
	return []Parameter{{"Rate (λ)", d.Lambda}}
}

func (d *Poisson) SetParameters(values []float64) error {
	if len(values) != 1 {
		return errParamLen("poisson", 1, len(values))
	}
	d.Lambda = values[0]
	return nil
}

// PMF returns Pr[X = floor(k)].
func (d *Poisson) PMF(k float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	ki := math.Floor(k)
	if ki < 0 {
		return 0
	}
	lg, _ := math.Lgamma(ki + 1)
	return math.Exp(ki*math.Log(d.Lambda) - d.Lambda - lg)
}

// PDF aliases PMF at the floored point.
func (d *Poisson) PDF(x float64) float64 {
	return d.PMF(x)
}

// CDF is Pr[X <= k], computed through the regularized upper
// incomplete gamma function: Q(floor(k)+1, λ).
func (d *Poisson) CDF(k float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	ki := math.Floor(k)
	if ki < 0 {
		return 0
	}
	return mathext.GammaIncRegComp(ki+1, d.Lambda)
}

func (d *Poisson) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return inf
	}
	// Walk the support; kmax is far beyond any realistic
	// quantile for the rate.
	kmax := int(d.Lambda + 20*math.Sqrt(d.Lambda) + 200)
	for k := 0; k <= kmax; k++ {
		if d.CDF(float64(k)) >= p {
			return float64(k)
		}
	}
	return float64(kmax)
}

// Step returns the spacing of the support points.
func (d *Poisson) Step() float64 { return 1 }

func (d *Poisson) Bounds() (float64, float64) {
	return 0, d.Lambda + 10*math.Sqrt(d.Lambda) + 10
}

func (d *Poisson) Mean() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.Lambda
}

func (d *Poisson) Median() float64 {
	return d.InvCDF(0.5)
}

func (d *Poisson) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return math.Floor(d.Lambda)
}

func (d *Poisson) StdDev() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return math.Sqrt(d.Lambda)
}

func (d *Poisson) Skewness() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return 1 / math.Sqrt(d.Lambda)
}

// Kurtosis returns the full (non-excess) kurtosis.
func (d *Poisson) Kurtosis() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return 3 + 1/d.Lambda
}

// Estimate fits λ to the sample mean. The method of moments and
// maximum likelihood coincide for this family.
func (d *Poisson) Estimate(xs []float64, method EstimationMethod) error {
	if len(xs) < 1 {
		return errors.Wrapf(ErrInsufficientData, "poisson: n=%d", len(xs))
	}
	switch method {
	case MethodOfMoments, MaximumLikelihood:
	default:
		return errors.Wrapf(ErrUnsupported, "poisson: %s", method)
	}
	m := Sample{Xs: xs}.Mean()
	if m <= 0 {
		return errors.Wrap(ErrBadParameters, "poisson: nonpositive sample mean")
	}
	d.Lambda = m
	return nil
}

func (d *Poisson) PartialDerivatives(p float64) []float64 {
	if p <= 0 || p >= 1 {
		return []float64{nan}
	}
	// The quantile is a step function of λ, so differentiate the
	// normal approximation k ≈ λ + z√λ instead.
	z := distuv.UnitNormal.Quantile(p)
	return []float64{1 + z/(2*math.Sqrt(d.Lambda))}
}

func (d *Poisson) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInsufficientData, "n=%d", n)
	}
	switch method {
	case MethodOfMoments, MaximumLikelihood:
		return mat.NewSymDense(1, []float64{d.Lambda / float64(n)}), nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "poisson: %s", method)
}
