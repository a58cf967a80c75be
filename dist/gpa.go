// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub004/mathx"
)

// GeneralizedPareto is the generalized Pareto distribution with
// location (threshold) Xi, scale Alpha > 0, and shape Kappa in the
// Hosking convention: positive Kappa gives a bounded upper tail at
// Xi + Alpha/Kappa, Kappa = 0 the shifted exponential, and negative
// Kappa a heavy upper tail.
type GeneralizedPareto struct {
	Xi    float64
	Alpha float64
	Kappa float64
}

// NewGeneralizedPareto returns a shifted exponential (shape 0) with
// threshold 0 and scale 1.
func NewGeneralizedPareto() *GeneralizedPareto {
	return &GeneralizedPareto{Xi: 0, Alpha: 1, Kappa: 0}
}

func (d *GeneralizedPareto) ParametersValid() bool {
	return !math.IsNaN(d.Xi) && !math.IsInf(d.Xi, 0) &&
		d.Alpha > 0 && !math.IsInf(d.Alpha, 0) &&
		!math.IsNaN(d.Kappa) && !math.IsInf(d.Kappa, 0)
}

func (d *GeneralizedPareto) Parameters() []Parameter {
	return []Parameter{
		{"Location (ξ)", d.Xi},
		{"Scale (α)", d.Alpha},
		{"Shape (κ)", d.Kappa},
	}
}

func (d *GeneralizedPareto) SetParameters(values []float64) error {
	if len(values) != 3 {
		return errParamLen("generalizedpareto", 3, len(values))
	}
	d.Xi, d.Alpha, d.Kappa = values[0], values[1], values[2]
	return nil
}

func (d *GeneralizedPareto) z(x float64) float64 {
	return 1 - d.Kappa*(x-d.Xi)/d.Alpha
}

func (d *GeneralizedPareto) PDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x < d.Xi {
		return 0
	}
	if math.Abs(d.Kappa) < kappaZero {
		return math.Exp(-(x-d.Xi)/d.Alpha) / d.Alpha
	}
	z := d.z(x)
	if z <= 0 {
		return 0
	}
	return math.Pow(z, 1/d.Kappa-1) / d.Alpha
}

func (d *GeneralizedPareto) CDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if x <= d.Xi {
		return 0
	}
	if math.Abs(d.Kappa) < kappaZero {
		return -math.Expm1(-(x - d.Xi) / d.Alpha)
	}
	z := d.z(x)
	if z <= 0 {
		return 1
	}
	return 1 - math.Pow(z, 1/d.Kappa)
}

func (d *GeneralizedPareto) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return d.Xi
	}
	if p == 1 {
		if d.Kappa > 0 {
			return d.Xi + d.Alpha/d.Kappa
		}
		return inf
	}
	if math.Abs(d.Kappa) < kappaZero {
		return d.Xi - d.Alpha*math.Log1p(-p)
	}
	return d.Xi + d.Alpha*(1-math.Pow(1-p, d.Kappa))/d.Kappa
}

func (d *GeneralizedPareto) Bounds() (float64, float64) {
	return d.Xi, d.InvCDF(0.9999)
}

func (d *GeneralizedPareto) Mean() float64 {
	if !d.ParametersValid() {
		return nan
	}
	if d.Kappa <= -1 {
		return inf
	}
	return d.Xi + d.Alpha/(1+d.Kappa)
}

func (d *GeneralizedPareto) Median() float64 {
	return d.InvCDF(0.5)
}

// Mode returns the threshold: the density is maximal at the lower
// endpoint for κ > -1.
func (d *GeneralizedPareto) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return d.Xi
}

func (d *GeneralizedPareto) StdDev() float64 {
	if !d.ParametersValid() {
		return nan
	}
	if d.Kappa <= -0.5 {
		return inf
	}
	k := d.Kappa
	return d.Alpha / ((1 + k) * math.Sqrt(1+2*k))
}

func (d *GeneralizedPareto) Skewness() float64 {
	if !d.ParametersValid() || d.Kappa <= -1.0/3 {
		return nan
	}
	k := d.Kappa
	return 2 * (1 - k) * math.Sqrt(1+2*k) / (1 + 3*k)
}

// Kurtosis returns the full (non-excess) kurtosis, which exists for
// κ > -1/4.
func (d *GeneralizedPareto) Kurtosis() float64 {
	if !d.ParametersValid() || d.Kappa <= -0.25 {
		return nan
	}
	k := d.Kappa
	return 3 * (1 + 2*k) * (3 - k + 2*k*k) / ((1 + 3*k) * (1 + 4*k))
}

// LMomentsFromParameters is the exact forward map inverted by the
// MethodOfLinearMoments estimator. It requires κ > -1.
func (d *GeneralizedPareto) LMomentsFromParameters() (LMoments, error) {
	if !d.ParametersValid() {
		return LMoments{}, errors.Wrap(ErrBadParameters, "generalizedpareto")
	}
	k := d.Kappa
	if k <= -1 {
		return LMoments{}, errors.Wrap(ErrBadParameters, "generalizedpareto: L-moments do not exist for κ <= -1")
	}
	return LMoments{
		L1: d.Xi + d.Alpha/(1+k),
		L2: d.Alpha / ((1 + k) * (2 + k)),
		T3: (1 - k) / (3 + k),
		T4: (1 - k) * (2 - k) / ((3 + k) * (4 + k)),
	}, nil
}

// lmomFit inverts the first three L-moments in closed form.
func (d *GeneralizedPareto) lmomFit(lm LMoments) (xi, alpha, kappa float64, err error) {
	kappa = (1 - 3*lm.T3) / (1 + lm.T3)
	alpha = lm.L2 * (1 + kappa) * (2 + kappa)
	if alpha <= 0 {
		return 0, 0, 0, errors.Wrap(ErrNonConvergence, "generalizedpareto: L-moment inversion gave nonpositive scale")
	}
	xi = lm.L1 - alpha/(1+kappa)
	return xi, alpha, kappa, nil
}

// gpaSkew is the shape-to-skewness map for κ > -1/3.
func gpaSkew(k float64) float64 {
	if k <= -1.0/3 {
		return nan
	}
	return 2 * (1 - k) * math.Sqrt(1+2*k) / (1 + 3*k)
}

// momFit inverts mean, standard deviation, and skewness: a 1-D root
// solve for κ, then back-substitution.
func (d *GeneralizedPareto) momFit(mean, sd, skew float64) (xi, alpha, kappa float64, err error) {
	f := func(k float64) float64 { return gpaSkew(k) - skew }
	lo, hi := -1.0/3+1e-6, 40.0
	if f(lo)*f(hi) > 0 {
		return 0, 0, 0, errors.Wrap(ErrNonConvergence, "generalizedpareto: sample skewness outside the attainable range")
	}
	kappa, err = mathx.FindRoot(f, nil, lo, hi, nil)
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "generalizedpareto")
	}
	alpha = sd * (1 + kappa) * math.Sqrt(1+2*kappa)
	xi = mean - alpha/(1+kappa)
	return xi, alpha, kappa, nil
}

// mmomFit is the modified method of moments: the mean and variance
// equations are kept, and the skewness equation is replaced by the
// requirement that the largest observation fall at its median
// plotting position, F(x₍ₙ₎) = (n - 0.35)/n.
func (d *GeneralizedPareto) mmomFit(s Sample) (xi, alpha, kappa float64, err error) {
	xs := s.Copy()
	xs.Sort()
	n := len(xs.Xs)
	xmax := xs.Xs[n-1]
	pn := (float64(n) - 0.35) / float64(n)
	mean, sd := s.Mean(), s.StdDev()

	// For a trial κ, mean and variance give α and ξ in closed form;
	// the residual is the plotting-position mismatch at x₍ₙ₎.
	resid := func(k float64) float64 {
		a := sd * (1 + k) * math.Sqrt(1+2*k)
		loc := mean - a/(1+k)
		g := GeneralizedPareto{Xi: loc, Alpha: a, Kappa: k}
		return g.CDF(xmax) - pn
	}
	lo, hi, ok := mathx.Bracket(resid, -0.3, 2)
	if !ok {
		return 0, 0, 0, errors.Wrap(ErrNonConvergence, "generalizedpareto: no shape satisfies the plotting-position constraint")
	}
	kappa, err = mathx.FindRoot(resid, nil, lo, hi, nil)
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "generalizedpareto")
	}
	alpha = sd * (1 + kappa) * math.Sqrt(1+2*kappa)
	xi = mean - alpha/(1+kappa)
	return xi, alpha, kappa, nil
}

func (d *GeneralizedPareto) Estimate(xs []float64, method EstimationMethod) error {
	if len(xs) < 4 {
		return errors.Wrapf(ErrInsufficientData, "generalizedpareto: n=%d", len(xs))
	}
	s := Sample{Xs: xs}

	var xi, alpha, kappa float64
	var err error
	switch method {
	case MethodOfMoments:
		xi, alpha, kappa, err = d.momFit(s.Mean(), s.StdDev(), s.Skewness())
	case ModifiedMethodOfMoments:
		xi, alpha, kappa, err = d.mmomFit(s)
	case MethodOfLinearMoments:
		var lm LMoments
		lm, err = s.LMoments()
		if err == nil {
			xi, alpha, kappa, err = d.lmomFit(lm)
		}
	case MaximumLikelihood:
		xi, alpha, kappa, err = d.mleFit(s)
	default:
		err = errors.Wrapf(ErrUnsupported, "generalizedpareto: %s", method)
	}
	if err != nil {
		return err
	}
	d.Xi, d.Alpha, d.Kappa = xi, alpha, kappa
	return nil
}

// mleFit holds the threshold at min(x) minus a small offset and
// maximizes the profile likelihood over scale and shape. A free
// threshold makes the likelihood unbounded.
func (d *GeneralizedPareto) mleFit(s Sample) (xi, alpha, kappa float64, err error) {
	xs := s.Copy()
	xs.Sort()
	xmin := xs.Xs[0]
	xi = xmin - 1e-8*math.Max(math.Abs(xmin), 1)

	lm, lmErr := s.LMoments()
	if lmErr != nil {
		return 0, 0, 0, lmErr
	}
	_, salpha, skappa, fitErr := d.lmomFit(lm)
	if fitErr != nil {
		salpha, skappa = s.StdDev(), 0.1
	}

	negLL := func(theta []float64) float64 {
		sc, k := theta[0], theta[1]
		if sc <= 0 {
			return inf
		}
		ll := 0.0
		if math.Abs(k) < kappaZero {
			for _, x := range s.Xs {
				ll += -math.Log(sc) - (x-xi)/sc
			}
			return -ll
		}
		for _, x := range s.Xs {
			z := 1 - k*(x-xi)/sc
			if z <= 0 {
				return inf
			}
			ll += -math.Log(sc) + (1/k-1)*math.Log(z)
		}
		return -ll
	}

	theta, err := maximizeLikelihood(negLL, []float64{salpha, skappa})
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "generalizedpareto")
	}
	return xi, theta[0], theta[1], nil
}

func (d *GeneralizedPareto) PartialDerivatives(p float64) []float64 {
	if p <= 0 || p >= 1 {
		return []float64{nan, nan, nan}
	}
	k := d.Kappa
	if math.Abs(k) < kappaZero {
		// x = ξ − α·ln(1−p).
		return []float64{1, -math.Log1p(-p), 0}
	}
	// x = ξ + α(1−u)/κ with u = (1−p)^κ.
	l := math.Log1p(-p)
	u := math.Exp(k * l)
	return []float64{
		1,
		(1 - u) / k,
		d.Alpha * (-u*l*k - (1 - u)) / (k * k),
	}
}

// ParameterCovariance returns the asymptotic covariance with the
// threshold treated as known (its row and column are zero), which
// matches how the maximum-likelihood fit anchors ξ at the smallest
// observation. For κ < 1/2 per observation,
//
//	Var(α̂) = 2α²(1−κ),  Var(κ̂) = (1−κ)²,  Cov(α̂,κ̂) = α(1−κ).
func (d *GeneralizedPareto) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	if !d.ParametersValid() {
		return nil, errors.Wrap(ErrBadParameters, "generalizedpareto")
	}
	if d.Kappa >= 0.5 {
		return nil, errors.Wrap(ErrUnsupported, "generalizedpareto: no regular asymptotic covariance for κ >= 1/2")
	}
	if n < 3 {
		return nil, errors.Wrapf(ErrInsufficientData, "n=%d", n)
	}
	switch method {
	case MaximumLikelihood, MethodOfMoments, ModifiedMethodOfMoments, MethodOfLinearMoments:
		a, k := d.Alpha, d.Kappa
		nf := float64(n)
		return mat.NewSymDense(3, []float64{
			0, 0, 0,
			0, 2 * a * a * (1 - k) / nf, a * (1 - k) / nf,
			0, a * (1 - k) / nf, (1 - k) * (1 - k) / nf,
		}), nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "generalizedpareto: %s", method)
}
