// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/optimize"
)

// maximizeLikelihood minimizes the negative log-likelihood starting
// from seed. Families whose score equations do not reduce to a 1-D
// solve use this; the search is derivative-free (Nelder-Mead), which
// tolerates the hard support boundaries of the extreme-value
// families, and the seed comes from a moment or L-moment fit so the
// simplex starts near the optimum. negLL must return +Inf outside
// the feasible region.
func maximizeLikelihood(negLL func(theta []float64) float64, seed []float64) ([]float64, error) {
	if f := negLL(seed); math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, errors.Wrap(ErrNonConvergence, "likelihood seed is infeasible")
	}

	problem := optimize.Problem{Func: negLL}
	settings := &optimize.Settings{
		MajorIterations: 1000,
		FuncEvaluations: 5000,
	}

	result, err := optimize.Minimize(problem, seed, settings, &optimize.NelderMead{})
	if err != nil {
		// The solver's best point is still usable if it improved
		// on the seed; signal non-convergence either way.
		if result != nil && result.F < negLL(seed) {
			return result.X, errors.Wrap(ErrNonConvergence, err.Error())
		}
		return nil, errors.Wrap(ErrNonConvergence, err.Error())
	}
	if math.IsInf(result.F, 0) || math.IsNaN(result.F) {
		return nil, errors.Wrap(ErrNonConvergence, "likelihood diverged")
	}
	return result.X, nil
}
