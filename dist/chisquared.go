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

// ChiSquared is the chi-squared distribution with integer degrees of
// freedom Nu >= 1. Nu is stored as a float so an invalid
// (non-integer or non-positive) value can be represented and
// reported by ParametersValid.
type ChiSquared struct {
	Nu float64
}

// NewChiSquared returns a chi-squared distribution with one degree
// of freedom.
func NewChiSquared() *ChiSquared {
	return &ChiSquared{Nu: 1}
}

func (d *ChiSquared) ParametersValid() bool {
	return d.Nu >= 1 && !math.IsInf(d.Nu, 0) && d.Nu == math.Floor(d.Nu)
}

func (d *ChiSquared) Parameters() []Parameter {
	return []Parameter{{"Degrees of Freedom (ν)", d.Nu}}
}

func (d *ChiSquared) SetParameters(values []float64) error {
	if len(values) != 1 {
		return errParamLen("chisquared", 1, len(values))
	}
	d.Nu = values[0]
	return nil
}

func (d *ChiSquared) PDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x < 0 {
		return 0
	}
	if x == 0 {
		// Return the boundary limit rather than letting the
		// power term blow up: +Inf for ν=1, 1/2 for ν=2.
		switch {
		case d.Nu < 2:
			return inf
		case d.Nu == 2:
			return 0.5
		default:
			return 0
		}
	}
	k := d.Nu / 2
	lg, _ := math.Lgamma(k)
	return math.Exp((k-1)*math.Log(x) - x/2 - k*math.Ln2 - lg)
}

func (d *ChiSquared) CDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return mathext.GammaIncReg(d.Nu/2, x/2)
}

func (d *ChiSquared) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return 0
	}
	if p == 1 {
		return inf
	}
	return 2 * mathext.GammaIncRegInv(d.Nu/2, p)
}

func (d *ChiSquared) Bounds() (float64, float64) {
	return 0, d.Nu + 10*math.Sqrt(2*d.Nu) + 10
}

func (d *ChiSquared) Mean() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.Nu
}

func (d *ChiSquared) Median() float64 {
	return d.InvCDF(0.5)
}

func (d *ChiSquared) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return math.Max(d.Nu-2, 0)
}

func (d *ChiSquared) StdDev() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return math.Sqrt(2 * d.Nu)
}

func (d *ChiSquared) Skewness() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return math.Sqrt(8 / d.Nu)
}

// Kurtosis returns the full (non-excess) kurtosis.
func (d *ChiSquared) Kurtosis() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return 3 + 12/d.Nu
}

// Estimate fits ν. MethodOfMoments rounds the sample mean;
// MaximumLikelihood solves the score equation ψ(ν/2) = mean(ln x) -
// ln 2 and then rounds to the nearest integer.
func (d *ChiSquared) Estimate(xs []float64, method EstimationMethod) error {
	if len(xs) < 1 {
		return errors.Wrapf(ErrInsufficientData, "chisquared: n=%d", len(xs))
	}
	var nu float64
	switch method {
	case MethodOfMoments:
		m := Sample{Xs: xs}.Mean()
		if m <= 0 {
			return errors.Wrap(ErrBadParameters, "chisquared: nonpositive sample mean")
		}
		nu = math.Round(m)
	case MaximumLikelihood:
		mlog := 0.0
		for _, x := range xs {
			if x <= 0 {
				return errors.Wrap(ErrBadParameters, "chisquared: nonpositive observation")
			}
			mlog += math.Log(x)
		}
		mlog /= float64(len(xs))
		target := mlog - math.Ln2
		f := func(nu float64) float64 { return mathext.Digamma(nu/2) - target }
		df := func(nu float64) float64 { return mathx.Trigamma(nu/2) / 2 }
		lo, hi, ok := mathx.Bracket(f, 1, 64)
		if !ok {
			return errors.Wrap(ErrNonConvergence, "chisquared: score equation has no root")
		}
		root, err := mathx.FindRoot(f, df, math.Max(lo, 1e-8), hi, nil)
		if err != nil {
			return errors.Wrap(err, "chisquared")
		}
		nu = math.Round(root)
	default:
		return errors.Wrapf(ErrUnsupported, "chisquared: %s", method)
	}
	if nu < 1 {
		nu = 1
	}
	d.Nu = nu
	return nil
}

func (d *ChiSquared) PartialDerivatives(p float64) []float64 {
	if p <= 0 || p >= 1 {
		return []float64{nan}
	}
	return numericPartials(func(vals []float64) Dist {
		// Relax the integrality constraint for differentiation:
		// the quantile is smooth in continuous ν.
		return chiSquaredReal{nu: vals[0]}
	}, []float64{d.Nu}, p)
}

// chiSquaredReal is the continuous-ν relaxation used only for
// numerical differentiation of the quantile.
type chiSquaredReal struct{ nu float64 }

func (d chiSquaredReal) PDF(x float64) float64 { return (&ChiSquared{Nu: d.nu}).PDF(x) }
func (d chiSquaredReal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathext.GammaIncReg(d.nu/2, x/2)
}
func (d chiSquaredReal) InvCDF(p float64) float64 {
	return 2 * mathext.GammaIncRegInv(d.nu/2, p)
}
func (d chiSquaredReal) Bounds() (float64, float64) {
	return 0, d.nu + 10*math.Sqrt(2*d.nu) + 10
}

func (d *ChiSquared) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInsufficientData, "n=%d", n)
	}
	nf := float64(n)
	switch method {
	case MethodOfMoments:
		// ν̂ = sample mean, Var = 2ν/n.
		return mat.NewSymDense(1, []float64{2 * d.Nu / nf}), nil
	case MaximumLikelihood:
		// Fisher information per observation is ψ'(ν/2)/4.
		return mat.NewSymDense(1, []float64{4 / (nf * mathx.Trigamma(d.Nu/2))}), nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "chisquared: %s", method)
}
