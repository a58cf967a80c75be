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

const eulerGamma = 0.5772156649015329

// Gumbel limits of the GEV shape functions.
const (
	gumbelSkew = 1.1395470994046486 // 12√6·ζ(3)/π³
	gumbelKurt = 5.4
	gumbelT3   = 0.16992500144231237 // 2·ln3/ln2 − 3
	gumbelT4   = 0.15037499348465246 // 16 − 10·ln3/ln2
)

// kappaZero is the shape magnitude below which the Gumbel limiting
// forms are used; the κ≠0 expressions lose all precision to
// cancellation well before this point matters statistically.
const kappaZero = 1e-8

// GEV is the generalized extreme value distribution with location
// Xi, scale Alpha > 0, and shape Kappa in the Hosking convention:
// positive Kappa gives an upper-bounded tail, negative Kappa a heavy
// upper tail, and Kappa = 0 the Gumbel distribution.
type GEV struct {
	Xi    float64
	Alpha float64
	Kappa float64
}

// NewGEV returns a Gumbel distribution (shape 0) with location 0 and
// scale 1.
func NewGEV() *GEV {
	return &GEV{Xi: 0, Alpha: 1, Kappa: 0}
}

func (d *GEV) ParametersValid() bool {
	return !math.IsNaN(d.Xi) && !math.IsInf(d.Xi, 0) &&
		d.Alpha > 0 && !math.IsInf(d.Alpha, 0) &&
		!math.IsNaN(d.Kappa) && !math.IsInf(d.Kappa, 0)
}

func (d *GEV) Parameters() []Parameter {
	return []Parameter{
		{"Location (ξ)", d.Xi},
		{"Scale (α)", d.Alpha},
		{"Shape (κ)", d.Kappa},
	}
}

func (d *GEV) SetParameters(values []float64) error {
	if len(values) != 3 {
		return errParamLen("gev", 3, len(values))
	}
	d.Xi, d.Alpha, d.Kappa = values[0], values[1], values[2]
	return nil
}

// z returns 1 − κ(x−ξ)/α, the argument of the κ≠0 forms; it is
// positive strictly inside the support.
func (d *GEV) z(x float64) float64 {
	return 1 - d.Kappa*(x-d.Xi)/d.Alpha
}

func (d *GEV) PDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if math.Abs(d.Kappa) < kappaZero {
		y := (x - d.Xi) / d.Alpha
		return math.Exp(-y-math.Exp(-y)) / d.Alpha
	}
	z := d.z(x)
	if z <= 0 {
		return 0
	}
	t := math.Pow(z, 1/d.Kappa)
	return math.Pow(z, 1/d.Kappa-1) * math.Exp(-t) / d.Alpha
}

func (d *GEV) CDF(x float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if math.Abs(d.Kappa) < kappaZero {
		return math.Exp(-math.Exp(-(x - d.Xi) / d.Alpha))
	}
	z := d.z(x)
	if z <= 0 {
		// Above the upper endpoint for κ>0, below the lower
		// endpoint for κ<0.
		if d.Kappa > 0 {
			return 1
		}
		return 0
	}
	return math.Exp(-math.Pow(z, 1/d.Kappa))
}

func (d *GEV) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	switch p {
	case 0:
		if d.Kappa < 0 {
			return d.Xi + d.Alpha/d.Kappa
		}
		return math.Inf(-1)
	case 1:
		if d.Kappa > 0 {
			return d.Xi + d.Alpha/d.Kappa
		}
		return inf
	}
	if math.Abs(d.Kappa) < kappaZero {
		return d.Xi - d.Alpha*math.Log(-math.Log(p))
	}
	return d.Xi + d.Alpha*(1-math.Pow(-math.Log(p), d.Kappa))/d.Kappa
}

func (d *GEV) Bounds() (float64, float64) {
	return d.InvCDF(0.0001), d.InvCDF(0.9999)
}

func (d *GEV) Mean() float64 {
	if !d.ParametersValid() {
		return nan
	}
	if math.Abs(d.Kappa) < kappaZero {
		return d.Xi + eulerGamma*d.Alpha
	}
	if d.Kappa <= -1 {
		return inf
	}
	return d.Xi + d.Alpha*(1-math.Gamma(1+d.Kappa))/d.Kappa
}

func (d *GEV) Median() float64 {
	return d.InvCDF(0.5)
}

func (d *GEV) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	if math.Abs(d.Kappa) < kappaZero {
		return d.Xi
	}
	return d.Xi + d.Alpha*(1-math.Pow(1+d.Kappa, d.Kappa))/d.Kappa
}

func (d *GEV) StdDev() float64 {
	if !d.ParametersValid() {
		return nan
	}
	if math.Abs(d.Kappa) < kappaZero {
		return d.Alpha * math.Pi / math.Sqrt(6)
	}
	if d.Kappa <= -0.5 {
		return inf
	}
	g1 := math.Gamma(1 + d.Kappa)
	g2 := math.Gamma(1 + 2*d.Kappa)
	return d.Alpha * math.Sqrt(g2-g1*g1) / math.Abs(d.Kappa)
}

// gevSkew is the shape-to-skewness map used by the Method of Moments
// inversion. It exists for κ > −1/3.
func gevSkew(kappa float64) float64 {
	// The gamma-product form cancels catastrophically as κ→0; below
	// 1e-4 the Gumbel limit is already more accurate than the
	// expression.
	if math.Abs(kappa) < 1e-4 {
		return gumbelSkew
	}
	if kappa <= -1.0/3 {
		return nan
	}
	g1 := math.Gamma(1 + kappa)
	g2 := math.Gamma(1 + 2*kappa)
	g3 := math.Gamma(1 + 3*kappa)
	sign := 1.0
	if kappa < 0 {
		sign = -1.0
	}
	return -sign * (g3 - 3*g1*g2 + 2*g1*g1*g1) / math.Pow(g2-g1*g1, 1.5)
}

func (d *GEV) Skewness() float64 {
	if !d.ParametersValid() {
		return nan
	}
	return gevSkew(d.Kappa)
}

// Kurtosis returns the full (non-excess) kurtosis, which exists for
// κ > −1/4.
func (d *GEV) Kurtosis() float64 {
	if !d.ParametersValid() || d.Kappa <= -0.25 {
		return nan
	}
	if math.Abs(d.Kappa) < 1e-4 {
		return gumbelKurt
	}
	g1 := math.Gamma(1 + d.Kappa)
	g2 := math.Gamma(1 + 2*d.Kappa)
	g3 := math.Gamma(1 + 3*d.Kappa)
	g4 := math.Gamma(1 + 4*d.Kappa)
	v := g2 - g1*g1
	return (g4 - 4*g3*g1 + 6*g2*g1*g1 - 3*g1*g1*g1*g1) / (v * v)
}

// gevTau3 is the shape-to-L-skewness map, τ3(κ).
func gevTau3(kappa float64) float64 {
	if math.Abs(kappa) < 1e-7 {
		return gumbelT3
	}
	return 2*(1-math.Pow(3, -kappa))/(1-math.Pow(2, -kappa)) - 3
}

// LMomentsFromParameters is the exact forward map inverted by the
// MethodOfLinearMoments estimator (Hosking 1990). It requires
// κ > −1.
func (d *GEV) LMomentsFromParameters() (LMoments, error) {
	if !d.ParametersValid() {
		return LMoments{}, errors.Wrap(ErrBadParameters, "gev")
	}
	if d.Kappa <= -1 {
		return LMoments{}, errors.Wrap(ErrBadParameters, "gev: L-moments do not exist for κ <= -1")
	}
	k := d.Kappa
	if math.Abs(k) < kappaZero {
		return LMoments{
			L1: d.Xi + eulerGamma*d.Alpha,
			L2: d.Alpha * math.Ln2,
			T3: gumbelT3,
			T4: gumbelT4,
		}, nil
	}
	g1 := math.Gamma(1 + k)
	e2 := 1 - math.Pow(2, -k)
	e3 := 1 - math.Pow(3, -k)
	e4 := 1 - math.Pow(4, -k)
	return LMoments{
		L1: d.Xi + d.Alpha*(1-g1)/k,
		L2: d.Alpha * e2 * g1 / k,
		T3: 2*e3/e2 - 3,
		T4: (5*e4 - 10*e3 + 6*e2) / e2,
	}, nil
}

// lmomFit inverts the first three L-moments: a 1-D root solve for κ
// against τ3 (seeded by Hosking's rational approximation) followed by
// closed-form back-substitution.
func (d *GEV) lmomFit(lm LMoments) (xi, alpha, kappa float64, err error) {
	c := 2/(3+lm.T3) - math.Ln2/math.Log(3)
	kappa = 7.8590*c + 2.9554*c*c

	f := func(k float64) float64 { return gevTau3(k) - lm.T3 }
	lo, hi, ok := mathx.Bracket(f, kappa-0.05, kappa+0.05)
	if ok {
		if k, rerr := mathx.FindRoot(f, nil, lo, hi, nil); rerr == nil {
			kappa = k
		}
	}

	if math.Abs(kappa) < kappaZero {
		alpha = lm.L2 / math.Ln2
		xi = lm.L1 - eulerGamma*alpha
		return xi, alpha, kappa, nil
	}
	g1 := math.Gamma(1 + kappa)
	alpha = lm.L2 * kappa / ((1 - math.Pow(2, -kappa)) * g1)
	if alpha <= 0 {
		return 0, 0, 0, errors.Wrap(ErrNonConvergence, "gev: L-moment inversion gave nonpositive scale")
	}
	xi = lm.L1 - alpha*(1-g1)/kappa
	return xi, alpha, kappa, nil
}

// momFit inverts mean, standard deviation, and skewness: a 1-D root
// solve for κ against the skewness map, then back-substitution.
func (d *GEV) momFit(mean, sd, skew float64) (xi, alpha, kappa float64, err error) {
	f := func(k float64) float64 { return gevSkew(k) - skew }
	lo, hi := -1.0/3+1e-6, 8.0
	if f(lo)*f(hi) > 0 {
		return 0, 0, 0, errors.Wrap(ErrNonConvergence, "gev: sample skewness outside the attainable range")
	}
	kappa, err = mathx.FindRoot(f, nil, lo, hi, nil)
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "gev")
	}

	if math.Abs(kappa) < kappaZero {
		alpha = sd * math.Sqrt(6) / math.Pi
		xi = mean - eulerGamma*alpha
		return xi, alpha, kappa, nil
	}
	g1 := math.Gamma(1 + kappa)
	g2 := math.Gamma(1 + 2*kappa)
	alpha = sd * math.Abs(kappa) / math.Sqrt(g2-g1*g1)
	xi = mean - alpha*(1-g1)/kappa
	return xi, alpha, kappa, nil
}

func (d *GEV) Estimate(xs []float64, method EstimationMethod) error {
	if len(xs) < 4 {
		return errors.Wrapf(ErrInsufficientData, "gev: n=%d", len(xs))
	}
	s := Sample{Xs: xs}

	var xi, alpha, kappa float64
	var err error
	switch method {
	case MethodOfMoments:
		xi, alpha, kappa, err = d.momFit(s.Mean(), s.StdDev(), s.Skewness())
	case MethodOfLinearMoments:
		var lm LMoments
		lm, err = s.LMoments()
		if err == nil {
			xi, alpha, kappa, err = d.lmomFit(lm)
		}
	case MaximumLikelihood:
		xi, alpha, kappa, err = d.mleFit(s)
	default:
		err = errors.Wrapf(ErrUnsupported, "gev: %s", method)
	}
	if err != nil {
		return err
	}
	d.Xi, d.Alpha, d.Kappa = xi, alpha, kappa
	return nil
}

func (d *GEV) mleFit(s Sample) (xi, alpha, kappa float64, err error) {
	lm, err := s.LMoments()
	if err != nil {
		return 0, 0, 0, err
	}
	sxi, salpha, skappa, err := d.lmomFit(lm)
	if err != nil {
		return 0, 0, 0, err
	}

	negLL := func(theta []float64) float64 {
		loc, sc, k := theta[0], theta[1], theta[2]
		if sc <= 0 {
			return inf
		}
		ll := 0.0
		if math.Abs(k) < kappaZero {
			for _, x := range s.Xs {
				y := (x - loc) / sc
				ll += -math.Log(sc) - y - math.Exp(-y)
			}
			return -ll
		}
		for _, x := range s.Xs {
			z := 1 - k*(x-loc)/sc
			if z <= 0 {
				return inf
			}
			lz := math.Log(z)
			ll += -math.Log(sc) + (1/k-1)*lz - math.Exp(lz/k)
		}
		return -ll
	}

	theta, err := maximizeLikelihood(negLL, []float64{sxi, salpha, skappa})
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "gev")
	}
	return theta[0], theta[1], theta[2], nil
}

func (d *GEV) PartialDerivatives(p float64) []float64 {
	if p <= 0 || p >= 1 {
		return []float64{nan, nan, nan}
	}
	k := d.Kappa
	if math.Abs(k) < kappaZero {
		// x = ξ − α·ln(−ln p).
		return []float64{1, -math.Log(-math.Log(p)), 0}
	}
	// x = ξ + α(1−w)/κ with w = (−ln p)^κ.
	l := math.Log(-math.Log(p))
	w := math.Exp(k * l)
	return []float64{
		1,
		(1 - w) / k,
		d.Alpha * (-w*l*k - (1 - w)) / (k * k),
	}
}

func (d *GEV) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	if !d.ParametersValid() {
		return nil, errors.Wrap(ErrBadParameters, "gev")
	}
	if d.Kappa >= 0.5 {
		// The maximum-likelihood asymptotics break down.
		return nil, errors.Wrap(ErrUnsupported, "gev: no regular asymptotic covariance for κ >= 1/2")
	}
	switch method {
	case MaximumLikelihood, MethodOfMoments, MethodOfLinearMoments:
		// The expected Fisher information is used for all three
		// methods; the moment-based estimators are treated as
		// asymptotically efficient for covariance sizing.
		return mleCovariance(func(vals []float64) Dist {
			return &GEV{Xi: vals[0], Alpha: vals[1], Kappa: vals[2]}
		}, []float64{d.Xi, d.Alpha, d.Kappa}, n)
	}
	return nil, errors.Wrapf(ErrUnsupported, "gev: %s", method)
}
