// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Pareto is the Pareto type I distribution with scale Xm > 0 (the
// support minimum) and shape Alpha > 0. Low shape values have heavy
// tails: the mean diverges for Alpha <= 1 and the variance for
// Alpha <= 2.
type Pareto struct {
	Xm    float64
	Alpha float64
}

// NewPareto returns a Pareto distribution with scale 1 and shape 10.
func NewPareto() *Pareto {
	return &Pareto{Xm: 1, Alpha: 10}
}

func (d *Pareto) ParametersValid() bool {
	return d.Xm > 0 && !math.IsInf(d.Xm, 0) &&
		d.Alpha > 0 && !math.IsInf(d.Alpha, 0)
}

func (d *Pareto) Parameters() []Parameter {
	return []Parameter{
		{"Scale (Xm)", d.Xm},
		{"Shape (α)", d.Alpha},
	}
}

func (d *Pareto) SetParameters(values []float64) error {
	if len(values) != 2 {
		return errParamLen("pareto", 2, len(values))
	}
	d.Xm, d.Alpha = values[0], values[1]
	return nil
}

func (d *Pareto) PDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x < d.Xm {
		return 0
	}
	return d.Alpha * math.Pow(d.Xm, d.Alpha) / math.Pow(x, d.Alpha+1)
}

func (d *Pareto) CDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x < d.Xm {
		return 0
	}
	return 1 - math.Pow(d.Xm/x, d.Alpha)
}

func (d *Pareto) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 1 {
		return inf
	}
	return d.Xm * math.Pow(1-p, -1/d.Alpha)
}

func (d *Pareto) Bounds() (float64, float64) {
	return d.Xm, d.InvCDF(0.9999)
}

func (d *Pareto) Mean() float64 {
	if !d.ParametersValid() {
		return nan
	}
	if d.Alpha <= 1 {
		return inf
	}
	return d.Alpha * d.Xm / (d.Alpha - 1)
}

func (d *Pareto) Median() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.Xm * math.Pow(2, 1/d.Alpha)
}

func (d *Pareto) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.Xm
}

func (d *Pareto) StdDev() float64 {
	if !d.ParametersValid() {
		return nan
	}
	if d.Alpha <= 2 {
		return inf
	}
	a := d.Alpha
	return d.Xm / (a - 1) * math.Sqrt(a/(a-2))
}

func (d *Pareto) Skewness() float64 {
	if !d.ParametersValid() || d.Alpha <= 3 {
		return nan
	}
	a := d.Alpha
	return 2 * (1 + a) / (a - 3) * math.Sqrt((a-2)/a)
}

// Kurtosis returns the full (non-excess) kurtosis.
func (d *Pareto) Kurtosis() float64 {
	if !d.ParametersValid() || d.Alpha <= 4 {
		return nan
	}
	a := d.Alpha
	return 3 + 6*(a*a*a+a*a-6*a-2)/(a*(a-3)*(a-4))
}

func (d *Pareto) momFromMoments(mean, variance float64) ([]float64, error) {
	if mean <= 0 || variance <= 0 {
		return nil, errors.Wrap(ErrBadParameters, "pareto: nonpositive sample moments")
	}
	// mean²/var = α(α-2), so α = 1 + sqrt(1 + mean²/var).
	alpha := 1 + math.Sqrt(1+mean*mean/variance)
	xm := mean * (alpha - 1) / alpha
	return []float64{xm, alpha}, nil
}

func (d *Pareto) Estimate(xs []float64, method EstimationMethod) error {
	if len(xs) < 2 {
		return errors.Wrapf(ErrInsufficientData, "pareto: n=%d", len(xs))
	}
	s := Sample{Xs: xs}

	switch method {
	case MethodOfMoments:
		vals, err := d.momFromMoments(s.Mean(), s.Variance())
		if err != nil {
			return err
		}
		d.Xm, d.Alpha = vals[0], vals[1]
		return nil
	case MaximumLikelihood:
		xm := s.Min()
		if xm <= 0 {
			return errors.Wrap(ErrBadParameters, "pareto: nonpositive observations")
		}
		sum := 0.0
		for _, x := range xs {
			sum += math.Log(x / xm)
		}
		if sum <= 0 {
			return errors.Wrap(ErrBadParameters, "pareto: degenerate sample")
		}
		d.Xm, d.Alpha = xm, float64(len(xs))/sum
		return nil
	}
	return errors.Wrapf(ErrUnsupported, "pareto: %s", method)
}

func (d *Pareto) PartialDerivatives(p float64) []float64 {
	if p <= 0 || p >= 1 {
		return []float64{nan, nan}
	}
	// x = Xm(1-p)^(-1/α).
	t := math.Pow(1-p, -1/d.Alpha)
	return []float64{
		t,
		d.Xm * t * math.Log(1-p) / (d.Alpha * d.Alpha),
	}
}

func (d *Pareto) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInsufficientData, "n=%d", n)
	}
	nf := float64(n)
	switch method {
	case MaximumLikelihood:
		// α̂ is regular with Var = α²/n. The support estimate
		// X̂m = min(x) converges at rate n⁻¹; its exact variance
		// is Xm²·nα/((nα-1)²(nα-2)). The two are asymptotically
		// independent.
		na := nf * d.Alpha
		varXm := inf
		if na > 2 {
			varXm = d.Xm * d.Xm * na / ((na - 1) * (na - 1) * (na - 2))
		}
		return mat.NewSymDense(2, []float64{
			varXm, 0,
			0, d.Alpha * d.Alpha / nf,
		}), nil
	case MethodOfMoments:
		return momCovariance(d, d.momFromMoments, n)
	}
	return nil, errors.Wrapf(ErrUnsupported, "pareto: %s", method)
}
