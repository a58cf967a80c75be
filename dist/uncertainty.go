// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// QuantileVariance propagates parameter sampling uncertainty to the
// p'th quantile by the delta method: the quadratic form
// partialsᵀ·Cov·partials, where Cov is the asymptotic covariance of
// the parameter estimates for a sample of size n fitted by the given
// method. For a one-parameter family this reduces to the scalar
// (∂x/∂θ)²·Var(θ).
func QuantileVariance(d Parametric, p float64, n int, method EstimationMethod) (float64, error) {
	partials := d.PartialDerivatives(p)
	if partials == nil {
		return nan, errors.Wrap(ErrUnsupported, "no quantile partial derivatives")
	}
	cov, err := d.ParameterCovariance(n, method)
	if err != nil {
		return nan, err
	}
	v := mat.NewVecDense(len(partials), partials)
	return mat.Inner(v, cov, v), nil
}

// QuantileStdErr is the square root of QuantileVariance.
func QuantileStdErr(d Parametric, p float64, n int, method EstimationMethod) (float64, error) {
	v, err := QuantileVariance(d, p, n, method)
	if err != nil {
		return nan, err
	}
	return math.Sqrt(v), nil
}

// Jacobian returns the determinant of the matrix of quantile partial
// derivatives over the probability grid, M[i][j] = ∂InvCDF(pᵢ)/∂θⱼ.
// It is the scaling factor used for joint-quantile confidence
// regions. The grid must have exactly one probability per parameter.
func Jacobian(d Parametric, probs []float64) (float64, error) {
	k := len(d.Parameters())
	if len(probs) != k {
		return nan, errors.Wrapf(ErrUnsupported, "jacobian needs %d probabilities, got %d", k, len(probs))
	}
	m := mat.NewDense(k, k, nil)
	for i, p := range probs {
		partials := d.PartialDerivatives(p)
		if partials == nil {
			return nan, errors.Wrap(ErrUnsupported, "no quantile partial derivatives")
		}
		m.SetRow(i, partials)
	}
	return mat.Det(m), nil
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// numericPartials estimates ∂InvCDF(p)/∂θᵢ by central differences
// with a 1e-6 relative step, rebuilding the distribution at each
// perturbed parameter vector. build must return an instance that
// treats the supplied vector as its full parameter set.
func numericPartials(build func(vals []float64) Dist, vals []float64, p float64) []float64 {
	out := make([]float64, len(vals))
	work := make([]float64, len(vals))
	for i, v := range vals {
		h := 1e-6 * math.Max(math.Abs(v), 1)
		copy(work, vals)
		work[i] = v + h
		hi := build(work).InvCDF(p)
		work[i] = v - h
		lo := build(work).InvCDF(p)
		out[i] = (hi - lo) / (2 * h)
	}
	return out
}

// mleCovariance returns the inverse expected Fisher information for
// a sample of size n, with the per-observation information computed
// by quadrature of the score outer product over probability:
//
//	I = ∫₀¹ s(x(u)) s(x(u))ᵀ du,  s = ∂ln f/∂θ
//
// The score is differentiated numerically. This matches the analytic
// information expressions to quadrature tolerance and avoids
// transcribing the family-specific algebra for three-parameter
// families.
func mleCovariance(build func(vals []float64) Dist, vals []float64, n int) (*mat.SymDense, error) {
	const m = 400 // midpoint-rule panels over (0, 1)
	k := len(vals)
	if n < k+1 {
		return nil, errors.Wrapf(ErrInsufficientData, "n=%d", n)
	}

	logf := func(theta []float64, x float64) float64 {
		return math.Log(build(theta).PDF(x))
	}
	base := build(vals)

	info := mat.NewSymDense(k, nil)
	score := make([]float64, k)
	work := make([]float64, k)
	for j := 0; j < m; j++ {
		u := (float64(j) + 0.5) / m
		x := base.InvCDF(u)
		for i, v := range vals {
			h := 1e-6 * math.Max(math.Abs(v), 1)
			copy(work, vals)
			work[i] = v + h
			up := logf(work, x)
			work[i] = v - h
			dn := logf(work, x)
			score[i] = (up - dn) / (2 * h)
		}
		if !allFinite(score) {
			// A perturbed vector stepped over the support
			// boundary; the panel's weight is negligible.
			continue
		}
		for a := 0; a < k; a++ {
			for b := a; b < k; b++ {
				info.SetSym(a, b, info.At(a, b)+score[a]*score[b]/m)
			}
		}
	}

	// Invert n·I.
	ninfo := mat.NewDense(k, k, nil)
	ninfo.Scale(float64(n), info)
	var inv mat.Dense
	if err := inv.Inverse(ninfo); err != nil {
		return nil, errors.Wrap(ErrBadParameters, "singular information matrix")
	}
	out := mat.NewSymDense(k, nil)
	for a := 0; a < k; a++ {
		for b := a; b < k; b++ {
			out.SetSym(a, b, 0.5*(inv.At(a, b)+inv.At(b, a)))
		}
	}
	return out, nil
}

// momCovariance is the generic delta-method covariance of a Method of
// Moments fit: the sampling covariance of (mean, variance) is mapped
// through the numerical Jacobian of the family's moment-to-parameter
// inversion. fit must be the same inversion Estimate uses. The
// distribution must have a finite fourth moment.
func momCovariance(d Parametric, fit func(mean, variance float64) ([]float64, error), n int) (*mat.SymDense, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInsufficientData, "n=%d", n)
	}
	sd := d.StdDev()
	mu2 := sd * sd
	mu3 := d.Skewness() * mu2 * sd
	mu4 := d.Kurtosis() * mu2 * mu2
	if math.IsNaN(mu4) || math.IsInf(mu4, 0) {
		return nil, errors.Wrap(ErrUnsupported, "fourth moment does not exist")
	}

	// Asymptotic covariance of the sample mean and variance.
	nf := float64(n)
	sig := mat.NewSymDense(2, []float64{
		mu2 / nf, mu3 / nf,
		mu3 / nf, (mu4 - mu2*mu2) / nf,
	})

	m := d.Mean()
	base, err := fit(m, mu2)
	if err != nil {
		return nil, err
	}
	k := len(base)

	// Numerical Jacobian of the inversion, k x 2.
	jac := mat.NewDense(k, 2, nil)
	for j, arg := range []float64{m, mu2} {
		h := 1e-6 * math.Max(math.Abs(arg), 1e-12)
		am, av := m, mu2
		if j == 0 {
			am = m + h
		} else {
			av = mu2 + h
		}
		up, err := fit(am, av)
		if err != nil {
			return nil, err
		}
		if j == 0 {
			am = m - h
		} else {
			av = mu2 - h
		}
		dn, err := fit(am, av)
		if err != nil {
			return nil, err
		}
		for i := 0; i < k; i++ {
			jac.Set(i, j, (up[i]-dn[i])/(2*h))
		}
	}

	var tmp, cov mat.Dense
	tmp.Mul(jac, sig)
	cov.Mul(&tmp, jac.T())

	out := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			out.SetSym(i, j, 0.5*(cov.At(i, j)+cov.At(j, i)))
		}
	}
	return out, nil
}
