// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// QuantileCI is a distribution-free confidence interval for the p'th
// population quantile, expressed as a pair of order statistics of a
// sample of size N.
type QuantileCI struct {
	// P is the quantile the interval covers.
	P float64

	// N is the sample size the interval was computed for.
	N int

	// Confidence is the achieved confidence level, which is >= the
	// requested level because order statistics are discrete.
	Confidence float64

	// LoOrder and HiOrder are the 1-based order statistics bounding
	// the interval. LoOrder = 0 or HiOrder = N+1 indicate the bound
	// lies beyond the sample (negative or positive infinity).
	LoOrder, HiOrder int
}

// NewQuantileCI computes the order-statistic confidence interval of
// the p'th quantile for a sample of size n. The count of observations
// below the population quantile is Binomial(n, p), so the interval is
// assembled by accumulating binomial probabilities outward from the
// mode until the requested confidence is reached.
func NewQuantileCI(n int, p, confidence float64) (QuantileCI, error) {
	if n < 1 || math.IsNaN(p) || p < 0 || p > 1 {
		return QuantileCI{}, errors.Wrap(ErrBadParameters, "quantile ci")
	}
	ci := QuantileCI{P: p, N: n}
	if confidence >= 1 {
		ci.Confidence = 1
		ci.LoOrder, ci.HiOrder = 0, n+1
		return ci, nil
	}

	b := distuv.Binomial{N: float64(n), P: p}

	// Start at the (lower) mode; PMF decreases monotonically moving
	// away from it, so greedy accumulation gives the shortest
	// interval at each step.
	x := int(math.Ceil(float64(n+1)*p)) - 1
	if x < 0 {
		x = 0
	}
	if x > n {
		x = n
	}
	accum := b.Prob(float64(x))

	// [l, r) is the accumulated interval over binomial outcomes;
	// outcome k corresponds to the gap between order statistics k
	// and k+1.
	l, r := x, x+1
	lp, rp := binomProb(b, l-1), binomProb(b, r)
	for accum < confidence && (lp > 0 || rp > 0) {
		if lp >= rp {
			accum += lp
			l--
			lp = binomProb(b, l-1)
		} else {
			accum += rp
			r++
			rp = binomProb(b, r)
		}
	}
	ci.Confidence = math.Min(accum, 1)
	if l < 0 {
		l = 0
	}
	if r > n+1 {
		r = n + 1
	}
	ci.LoOrder, ci.HiOrder = l, r
	return ci, nil
}

func binomProb(b distuv.Binomial, k int) float64 {
	if k < 0 || float64(k) > b.N {
		return 0
	}
	return b.Prob(float64(k))
}

// FromSample resolves the interval against an actual sample of size
// N, returning ±Inf where a bound falls beyond the observations.
func (ci QuantileCI) FromSample(s Sample) (lo, hi float64, err error) {
	if len(s.Xs) != ci.N {
		return nan, nan, errors.Wrapf(ErrBadParameters, "sample size %d, interval computed for %d", len(s.Xs), ci.N)
	}
	xs := s.Xs
	if !s.Sorted {
		xs = s.Copy().Sort().Xs
	}
	if ci.LoOrder < 1 {
		lo = math.Inf(-1)
	} else {
		lo = xs[ci.LoOrder-1]
	}
	if ci.HiOrder > len(xs) {
		hi = inf
	} else {
		hi = xs[ci.HiOrder-1]
	}
	return lo, hi, nil
}
