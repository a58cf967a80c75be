// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// A Dist is a univariate statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. Discrete families return the
	// probability mass at the floor of x. Outside the support the
	// density is 0; at a boundary where the density is unbounded,
	// the limit value is returned rather than NaN.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. It is nondecreasing in
	// x and lies in [0, 1] whenever the parameters are valid.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF at probability p in
	// [0, 1]. At p=0 or p=1 an unbounded support yields the
	// mathematically correct ±Inf. InvCDF(CDF(x)) = x to solver
	// tolerance for any x strictly inside the support.
	InvCDF(p float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A Parametric distribution owns an ordered parameter vector that can
// be assigned directly or estimated from sample data.
//
// Queries never panic on invalid parameters; they propagate NaN.
// Callers are expected to consult ParametersValid before trusting
// results. Distinct instances are independent and may be used
// concurrently; mutating a shared instance through SetParameters or
// Estimate requires external serialization.
type Parametric interface {
	Dist

	// ParametersValid reports whether every parameter is finite
	// and satisfies the family's domain constraints.
	ParametersValid() bool

	// Parameters returns the ordered parameter vector with
	// human-readable labels.
	Parameters() []Parameter

	// SetParameters replaces the whole parameter vector
	// atomically. The values are not validated here; validity is
	// checked lazily on query.
	SetParameters(values []float64) error

	// Estimate fits the parameter vector to the sample using the
	// given method. The sample is read-only. On failure the prior
	// parameters are left unchanged.
	Estimate(xs []float64, method EstimationMethod) error

	// Moments. Each returns NaN where the moment does not exist
	// for the current parameters, and ±Inf where the defining
	// integral diverges to infinity.
	Mean() float64
	Median() float64
	Mode() float64
	StdDev() float64
	Skewness() float64
	Kurtosis() float64

	// PartialDerivatives returns ∂InvCDF(p)/∂θᵢ for each
	// parameter θᵢ, in parameter-vector order.
	PartialDerivatives(p float64) []float64

	// ParameterCovariance returns the asymptotic covariance of
	// the parameter estimates for a sample of size n fitted by
	// the given method.
	ParameterCovariance(n int, method EstimationMethod) (*mat.SymDense, error)
}

// An LMomentable distribution has a closed-form map from parameters
// to L-moments. It is the exact forward map whose inverse the
// MethodOfLinearMoments estimator computes.
type LMomentable interface {
	LMomentsFromParameters() (LMoments, error)
}

// A Parameter is a labeled parameter value, for display.
type Parameter struct {
	Label string
	Value float64
}

// EstimationMethod selects how Estimate fits parameters to a sample.
type EstimationMethod int

const (
	// MethodOfMoments matches sample moments to the family's
	// moment-to-parameter map.
	MethodOfMoments EstimationMethod = iota

	// MethodOfLinearMoments inverts the family's L-moment
	// relations against the sample's first four L-moments.
	MethodOfLinearMoments

	// MaximumLikelihood solves the family's score equations,
	// seeded from a moment-based fit.
	MaximumLikelihood

	// ModifiedMethodOfMoments is the Generalized Pareto variant
	// that augments the ordinary moment equations with a
	// plotting-position constraint on the largest observation.
	ModifiedMethodOfMoments
)

func (m EstimationMethod) String() string {
	switch m {
	case MethodOfMoments:
		return "MethodOfMoments"
	case MethodOfLinearMoments:
		return "MethodOfLinearMoments"
	case MaximumLikelihood:
		return "MaximumLikelihood"
	case ModifiedMethodOfMoments:
		return "ModifiedMethodOfMoments"
	}
	return "EstimationMethod(?)"
}

// Error sentinels. Routines that hit an iteration cap still return
// their best available estimate alongside ErrNonConvergence.
var (
	ErrNonConvergence   = errors.New("dist: estimation did not converge")
	ErrUnsupported      = errors.New("dist: operation not supported for this family")
	ErrInsufficientData = errors.New("dist: sample too small")
	ErrBadParameters    = errors.New("dist: invalid parameter vector")
)

// errParamLen is the common SetParameters length check.
func errParamLen(family string, want, got int) error {
	return errors.Wrapf(ErrBadParameters, "%s: want %d parameters, got %d", family, want, got)
}
