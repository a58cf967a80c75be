// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub004/mathx"
)

// InverseGamma is the inverse-gamma distribution with shape
// Alpha > 0 and scale Beta > 0. If X ~ Gamma(α, β) then 1/X follows
// this distribution.
type InverseGamma struct {
	Alpha float64
	Beta  float64
}

// NewInverseGamma returns an inverse-gamma distribution with shape 3
// and scale 1.
func NewInverseGamma() *InverseGamma {
	return &InverseGamma{Alpha: 3, Beta: 1}
}

func (d *InverseGamma) ParametersValid() bool {
	return d.Alpha > 0 && !math.IsInf(d.Alpha, 0) &&
		d.Beta > 0 && !math.IsInf(d.Beta, 0)
}

func (d *InverseGamma) Parameters() []Parameter {
	return []Parameter{
		{"Shape (α)", d.Alpha},
		{"Scale (β)", d.Beta},
	}
}

func (d *InverseGamma) SetParameters(values []float64) error {
	if len(values) != 2 {
		return errParamLen("inversegamma", 2, len(values))
	}
	d.Alpha, d.Beta = values[0], values[1]
	return nil
}

func (d *InverseGamma) PDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	lg, _ := math.Lgamma(d.Alpha)
	return math.Exp(d.Alpha*math.Log(d.Beta) - lg - (d.Alpha+1)*math.Log(x) - d.Beta/x)
}

func (d *InverseGamma) CDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return mathext.GammaIncRegComp(d.Alpha, d.Beta/x)
}

func (d *InverseGamma) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return inf
	}
	return d.Beta / mathext.GammaIncRegCompInv(d.Alpha, p)
}

func (d *InverseGamma) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.9999)
}

func (d *InverseGamma) Mean() float64 {
	if !d.ParametersValid() {
		return nan
	}
	if d.Alpha <= 1 {
		return inf
	}
	return d.Beta / (d.Alpha - 1)
}

func (d *InverseGamma) Median() float64 {
	return d.InvCDF(0.5)
}

func (d *InverseGamma) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.Beta / (d.Alpha + 1)
}

func (d *InverseGamma) StdDev() float64 {
	if !d.ParametersValid() {
		return nan
	}
	if d.Alpha <= 2 {
		return inf
	}
	return d.Beta / ((d.Alpha - 1) * math.Sqrt(d.Alpha-2))
}

func (d *InverseGamma) Skewness() float64 {
	if !d.ParametersValid() || d.Alpha <= 3 {
		return nan
	}
	return 4 * math.Sqrt(d.Alpha-2) / (d.Alpha - 3)
}

// Kurtosis returns the full (non-excess) kurtosis.
func (d *InverseGamma) Kurtosis() float64 {
	if !d.ParametersValid() || d.Alpha <= 4 {
		return nan
	}
	return 3 + 6*(5*d.Alpha-11)/((d.Alpha-3)*(d.Alpha-4))
}

func (d *InverseGamma) momFromMoments(mean, variance float64) ([]float64, error) {
	if mean <= 0 || variance <= 0 {
		return nil, errors.Wrap(ErrBadParameters, "inversegamma: nonpositive sample moments")
	}
	alpha := mean*mean/variance + 2
	beta := mean * (alpha - 1)
	return []float64{alpha, beta}, nil
}

// Estimate fits shape and scale. MaximumLikelihood reduces to a 1-D
// digamma score solve on α with β = α·n/Σ(1/x).
func (d *InverseGamma) Estimate(xs []float64, method EstimationMethod) error {
	if len(xs) < 2 {
		return errors.Wrapf(ErrInsufficientData, "inversegamma: n=%d", len(xs))
	}
	s := Sample{Xs: xs}

	switch method {
	case MethodOfMoments:
		vals, err := d.momFromMoments(s.Mean(), s.Variance())
		if err != nil {
			return err
		}
		d.Alpha, d.Beta = vals[0], vals[1]
		return nil
	case MaximumLikelihood:
		var sumInv, sumLog float64
		for _, x := range xs {
			if x <= 0 {
				return errors.Wrap(ErrBadParameters, "inversegamma: nonpositive observation")
			}
			sumInv += 1 / x
			sumLog += math.Log(x)
		}
		nf := float64(len(xs))
		mInv, mLog := sumInv/nf, sumLog/nf

		// Profile score for α after substituting
		// β(α) = α/mean(1/x):
		// ln β(α) - ψ(α) - mean(ln x) = 0.
		f := func(a float64) float64 {
			return math.Log(a/mInv) - mathext.Digamma(a) - mLog
		}
		df := func(a float64) float64 { return 1/a - mathx.Trigamma(a) }
		lo, hi, ok := mathx.Bracket(f, 0.5, 8)
		if !ok {
			return errors.Wrap(ErrNonConvergence, "inversegamma: score equation has no root")
		}
		alpha, err := mathx.FindRoot(f, df, math.Max(lo, 1e-8), hi, nil)
		if err != nil {
			return errors.Wrap(err, "inversegamma")
		}
		d.Alpha, d.Beta = alpha, alpha/mInv
		return nil
	}
	return errors.Wrapf(ErrUnsupported, "inversegamma: %s", method)
}

func (d *InverseGamma) PartialDerivatives(p float64) []float64 {
	if p <= 0 || p >= 1 {
		return []float64{nan, nan}
	}
	return numericPartials(func(vals []float64) Dist {
		return &InverseGamma{Alpha: vals[0], Beta: vals[1]}
	}, []float64{d.Alpha, d.Beta}, p)
}

func (d *InverseGamma) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInsufficientData, "n=%d", n)
	}
	switch method {
	case MaximumLikelihood:
		// Per-observation Fisher information
		//   [ ψ'(α)   -1/β  ]
		//   [ -1/β    α/β²  ]
		// inverted in closed form.
		a, b := d.Alpha, d.Beta
		det := mathx.Trigamma(a)*a/(b*b) - 1/(b*b)
		if det <= 0 {
			return nil, errors.Wrap(ErrBadParameters, "inversegamma: singular information matrix")
		}
		nf := float64(n)
		return mat.NewSymDense(2, []float64{
			a / (b * b) / det / nf, 1 / b / det / nf,
			1 / b / det / nf, mathx.Trigamma(a) / det / nf,
		}), nil
	case MethodOfMoments:
		return momCovariance(d, d.momFromMoments, n)
	}
	return nil, errors.Wrapf(ErrUnsupported, "inversegamma: %s", method)
}
