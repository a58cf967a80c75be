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

// NoncentralT is the singly noncentral t distribution with degrees of
// freedom Nu > 0 and noncentrality Delta: the distribution of
// (Z + δ)/√(V/ν) for independent Z ~ N(0,1) and V ~ χ²(ν). Delta = 0
// recovers the central t distribution.
type NoncentralT struct {
	Nu    float64
	Delta float64
}

// NewNoncentralT returns a central t distribution with ten degrees of
// freedom.
func NewNoncentralT() *NoncentralT {
	return &NoncentralT{Nu: 10, Delta: 0}
}

func (d *NoncentralT) ParametersValid() bool {
	return d.Nu > 0 && !math.IsInf(d.Nu, 0) &&
		!math.IsNaN(d.Delta) && !math.IsInf(d.Delta, 0)
}

func (d *NoncentralT) Parameters() []Parameter {
	return []Parameter{
		{"Degrees of Freedom (ν)", d.Nu},
		{"Noncentrality (δ)", d.Delta},
	}
}

func (d *NoncentralT) SetParameters(values []float64) error {
	if len(values) != 2 {
		return errParamLen("noncentralt", 2, len(values))
	}
	d.Nu, d.Delta = values[0], values[1]
	return nil
}

// nctCDFPositive evaluates Pr[T <= t] for t >= 0 by Lenth's series
// (Algorithm AS 243):
//
//	P = Φ(−δ) + ½ Σⱼ [pⱼ·Iₓ(j+½, ν/2) + qⱼ·Iₓ(j+1, ν/2)]
//
// with x = t²/(t²+ν), λ = δ²/2, pⱼ = e^{−λ}λʲ/j!, and
// qⱼ = e^{−λ}λʲ δ/(√2·Γ(j+3/2)).
func nctCDFPositive(t, nu, delta float64) float64 {
	phi := distuv.UnitNormal.CDF(-delta)
	if t == 0 {
		return phi
	}
	x := t * t / (t*t + nu)
	lambda := delta * delta / 2
	elam := math.Exp(-lambda)

	// Term-recurrence state: pj and qj carry the Poisson-like
	// weights, updated multiplicatively.
	pj := elam
	qj := elam * delta / (math.Sqrt2 * math.Gamma(1.5))
	sum := 0.0
	for j := 0; j < 1000; j++ {
		term := pj*mathext.RegIncBeta(float64(j)+0.5, nu/2, x) +
			qj*mathext.RegIncBeta(float64(j)+1, nu/2, x)
		sum += term
		if j > 2 && term < 1e-14*sum {
			break
		}
		pj *= lambda / float64(j+1)
		qj *= lambda / (float64(j) + 1.5)
	}
	p := phi + sum/2
	return math.Min(math.Max(p, 0), 1)
}

func (d *NoncentralT) CDF(t float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	if t >= 0 {
		return nctCDFPositive(t, d.Nu, d.Delta)
	}
	// Reflection: Pr[T <= t; δ] = 1 − Pr[T <= −t; −δ].
	return 1 - nctCDFPositive(-t, d.Nu, -d.Delta)
}

func (d *NoncentralT) PDF(t float64) float64 {
	if !d.ParametersValid() {
		return nan
	}
	nu, delta := d.Nu, d.Delta
	if t == 0 {
		lg1, _ := math.Lgamma((nu + 1) / 2)
		lg2, _ := math.Lgamma(nu / 2)
		return math.Exp(lg1-lg2-delta*delta/2) / math.Sqrt(math.Pi*nu)
	}
	// f(t) = (ν/t)·[F_{ν+2,δ}(t·√(1+2/ν)) − F_{ν,δ}(t)].
	up := NoncentralT{Nu: nu + 2, Delta: delta}
	return nu / t * (up.CDF(t*math.Sqrt(1+2/nu)) - d.CDF(t))
}

func (d *NoncentralT) InvCDF(p float64) float64 {
	if !d.ParametersValid() || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 {
		return math.Inf(-1)
	}
	if p == 1 {
		return inf
	}
	return invCDFNumeric(d, p)
}

func (d *NoncentralT) Bounds() (float64, float64) {
	// Rough normal-theory envelope around the noncentrality, wide
	// enough to bracket any quantile the solver is asked for.
	sd := d.StdDev()
	if math.IsNaN(sd) || math.IsInf(sd, 0) {
		sd = 10 * (1 + math.Abs(d.Delta))
	}
	m := d.Mean()
	if math.IsNaN(m) || math.IsInf(m, 0) {
		m = d.Delta
	}
	return m - 12*sd, m + 12*sd
}

// rawMoment returns E[T^k] for k = 1..4, which exists for ν > k:
// E[T^k] = m_k (ν/2)^{k/2} Γ((ν−k)/2)/Γ(ν/2) with m_k the k'th raw
// moment of N(δ, 1).
func (d *NoncentralT) rawMoment(k int) float64 {
	if d.Nu <= float64(k) {
		return nan
	}
	del := d.Delta
	var mk float64
	switch k {
	case 1:
		mk = del
	case 2:
		mk = 1 + del*del
	case 3:
		mk = del*del*del + 3*del
	case 4:
		mk = del*del*del*del + 6*del*del + 3
	}
	lg1, _ := math.Lgamma((d.Nu - float64(k)) / 2)
	lg2, _ := math.Lgamma(d.Nu / 2)
	return mk * math.Exp(float64(k)/2*math.Log(d.Nu/2)+lg1-lg2)
}

func (d *NoncentralT) Mean() float64 {
	if !d.ParametersValid() {
		return nan
	}
	if d.Nu <= 1 {
		return nan
	}
	return d.rawMoment(1)
}

func (d *NoncentralT) Median() float64 {
	return d.InvCDF(0.5)
}

// Mode is located numerically: the density is unimodal.
func (d *NoncentralT) Mode() float64 {
	if !d.ParametersValid() {
		return nan
	}
	lo, hi := d.Bounds()
	// Golden-section search on -PDF.
	const phi = 0.6180339887498949
	a, b := lo, hi
	c := b - phi*(b-a)
	e := a + phi*(b-a)
	fc, fe := -d.PDF(c), -d.PDF(e)
	for i := 0; i < 200 && b-a > 1e-9*(1+math.Abs(a)); i++ {
		if fc < fe {
			b, e, fe = e, c, fc
			c = b - phi*(b-a)
			fc = -d.PDF(c)
		} else {
			a, c, fc = c, e, fe
			e = a + phi*(b-a)
			fe = -d.PDF(e)
		}
	}
	return (a + b) / 2
}

func (d *NoncentralT) StdDev() float64 {
	if !d.ParametersValid() || d.Nu <= 2 {
		return nan
	}
	m1 := d.rawMoment(1)
	return math.Sqrt(d.rawMoment(2) - m1*m1)
}

func (d *NoncentralT) Skewness() float64 {
	if !d.ParametersValid() || d.Nu <= 3 {
		return nan
	}
	m1, m2, m3 := d.rawMoment(1), d.rawMoment(2), d.rawMoment(3)
	v := m2 - m1*m1
	return (m3 - 3*m1*m2 + 2*m1*m1*m1) / math.Pow(v, 1.5)
}

// Kurtosis returns the full (non-excess) kurtosis, which exists for
// ν > 4.
func (d *NoncentralT) Kurtosis() float64 {
	if !d.ParametersValid() || d.Nu <= 4 {
		return nan
	}
	m1, m2, m3, m4 := d.rawMoment(1), d.rawMoment(2), d.rawMoment(3), d.rawMoment(4)
	v := m2 - m1*m1
	return (m4 - 4*m1*m3 + 6*m1*m1*m2 - 3*m1*m1*m1*m1) / (v * v)
}

// Estimate fits ν and δ. MethodOfMoments matches the first two sample
// moments by a nested solve; MaximumLikelihood refines a moment seed
// with a Nelder-Mead likelihood search.
func (d *NoncentralT) Estimate(xs []float64, method EstimationMethod) error {
	if len(xs) < 3 {
		return errors.Wrapf(ErrInsufficientData, "noncentralt: n=%d", len(xs))
	}
	s := Sample{Xs: xs}

	seed, err := nctMomentFit(s.Mean(), s.Variance())
	if err != nil {
		return err
	}
	switch method {
	case MethodOfMoments:
		d.Nu, d.Delta = seed[0], seed[1]
		return nil
	case MaximumLikelihood:
		negLL := func(theta []float64) float64 {
			nu, del := theta[0], theta[1]
			if nu <= 0 {
				return inf
			}
			g := NoncentralT{Nu: nu, Delta: del}
			ll := 0.0
			for _, x := range s.Xs {
				f := g.PDF(x)
				if !(f > 0) {
					return inf
				}
				ll += math.Log(f)
			}
			return -ll
		}
		theta, err := maximizeLikelihood(negLL, seed)
		if err != nil {
			return errors.Wrap(err, "noncentralt")
		}
		d.Nu, d.Delta = theta[0], theta[1]
		return nil
	}
	return errors.Wrapf(ErrUnsupported, "noncentralt: %s", method)
}

// nctMomentFit solves E[T] = m and Var[T] = v for (ν, δ). For fixed
// ν the mean equation is linear in δ, leaving a 1-D solve on ν
// against the variance.
func nctMomentFit(m, v float64) ([]float64, error) {
	if v <= 0 {
		return nil, errors.Wrap(ErrBadParameters, "noncentralt: nonpositive sample variance")
	}
	c := func(nu float64) float64 {
		lg1, _ := math.Lgamma((nu - 1) / 2)
		lg2, _ := math.Lgamma(nu / 2)
		return math.Exp(0.5*math.Log(nu/2) + lg1 - lg2)
	}
	resid := func(nu float64) float64 {
		del := m / c(nu)
		variance := nu/(nu-2)*(1+del*del) - m*m
		return variance - v
	}
	// Var decreases toward the δ-normal limit as ν grows; scan for
	// a sign change from just above the existence boundary.
	lo, hi := 2.0+1e-6, 1e6
	if resid(lo)*resid(hi) > 0 {
		return nil, errors.Wrap(ErrNonConvergence, "noncentralt: sample variance outside the attainable range")
	}
	// Bisection; resid is monotone enough for this to be safe.
	for i := 0; i < 200 && hi-lo > 1e-9*(1+lo); i++ {
		mid := (lo + hi) / 2
		if resid(lo)*resid(mid) <= 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	nu := (lo + hi) / 2
	return []float64{nu, m / c(nu)}, nil
}

func (d *NoncentralT) PartialDerivatives(p float64) []float64 {
	if p <= 0 || p >= 1 {
		return []float64{nan, nan}
	}
	return numericPartials(func(vals []float64) Dist {
		return &NoncentralT{Nu: vals[0], Delta: vals[1]}
	}, []float64{d.Nu, d.Delta}, p)
}

// ParameterCovariance computes the maximum-likelihood covariance from
// the quadrature expected Fisher information. No closed form exists
// for this family.
func (d *NoncentralT) ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error) {
	if !d.ParametersValid() {
		return nil, errors.Wrap(ErrBadParameters, "noncentralt")
	}
	if method != MaximumLikelihood {
		return nil, errors.Wrapf(ErrUnsupported, "noncentralt: %s", method)
	}
	return mleCovariance(func(vals []float64) Dist {
		return &NoncentralT{Nu: vals[0], Delta: vals[1]}
	}, []float64{d.Nu, d.Delta}, n)
}
