// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of observations. Estimation routines treat
// it as read-only; when order statistics are required they sort a
// private copy.
type Sample struct {
	Xs []float64

	// Sorted indicates Xs is already in ascending order.
	Sorted bool
}

// Sort sorts the sample in place and returns it.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		sort.Float64s(s.Xs)
		s.Sorted = true
	}
	return s
}

// Copy returns a deep copy of the sample.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{Xs: xs, Sorted: s.Sorted}
}

func (s Sample) Mean() float64 {
	return stat.Mean(s.Xs, nil)
}

// Variance returns the unbiased (n-1) sample variance.
func (s Sample) Variance() float64 {
	return stat.Variance(s.Xs, nil)
}

func (s Sample) StdDev() float64 {
	return stat.StdDev(s.Xs, nil)
}

// Skewness returns the adjusted Fisher-Pearson sample skewness.
func (s Sample) Skewness() float64 {
	return stat.Skew(s.Xs, nil)
}

// ExKurtosis returns the sample excess kurtosis.
func (s Sample) ExKurtosis() float64 {
	return stat.ExKurtosis(s.Xs, nil)
}

func (s Sample) Min() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if s.Sorted {
		return s.Xs[0]
	}
	return floats.Min(s.Xs)
}

func (s Sample) Max() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if s.Sorted {
		return s.Xs[len(s.Xs)-1]
	}
	return floats.Max(s.Xs)
}

// Percentile returns the p'th quantile of the sample by linear
// interpolation between order statistics, 0 <= p <= 1.
func (s Sample) Percentile(p float64) float64 {
	if len(s.Xs) == 0 || p < 0 || p > 1 {
		return nan
	}
	xs := s.Xs
	if !s.Sorted {
		xs = s.Copy().Sort().Xs
	}
	n := len(xs)
	if n == 1 {
		return xs[0]
	}
	rank := p * float64(n-1)
	lo := int(math.Floor(rank))
	if lo >= n-1 {
		return xs[n-1]
	}
	frac := rank - float64(lo)
	return xs[lo] + frac*(xs[lo+1]-xs[lo])
}

// LMoments holds the first four sample or population L-moments: the
// L-mean, L-scale, and the dimensionless L-skewness and L-kurtosis
// ratios. For any valid sample L2 >= 0, |T3| <= 1 and |T4| <= 1.
type LMoments struct {
	L1, L2 float64
	T3, T4 float64
}

// LMoments computes the first four L-moments of the sample from
// unbiased probability-weighted moments (Hosking 1990). It requires
// at least four observations.
func (s Sample) LMoments() (LMoments, error) {
	n := len(s.Xs)
	if n < 4 {
		return LMoments{}, errors.Wrapf(ErrInsufficientData, "need 4 observations for L-moments, have %d", n)
	}
	xs := s.Xs
	if !s.Sorted {
		xs = s.Copy().Sort().Xs
	}

	// Unbiased PWM estimators b0..b3.
	var b0, b1, b2, b3 float64
	nf := float64(n)
	for j, x := range xs {
		// j is zero-based; the order-statistic weights use the
		// one-based rank j+1.
		r := float64(j)
		b0 += x
		b1 += x * r / (nf - 1)
		b2 += x * r * (r - 1) / ((nf - 1) * (nf - 2))
		b3 += x * r * (r - 1) * (r - 2) / ((nf - 1) * (nf - 2) * (nf - 3))
	}
	b0 /= nf
	b1 /= nf
	b2 /= nf
	b3 /= nf

	l1 := b0
	l2 := 2*b1 - b0
	l3 := 6*b2 - 6*b1 + b0
	l4 := 20*b3 - 30*b2 + 12*b1 - b0
	return LMoments{L1: l1, L2: l2, T3: l3 / l2, T4: l4 / l2}, nil
}
