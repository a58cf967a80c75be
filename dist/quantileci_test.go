// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuantileCIMedianSmall(t *testing.T) {
	// Binomial(5, 1/2) accumulated from the mode: the 90% interval
	// for the median is order statistics 1..5 with achieved
	// confidence 30/32.
	ci, err := NewQuantileCI(5, 0.5, 0.9)
	require.NoError(t, err)
	require.Equal(t, 1, ci.LoOrder)
	require.Equal(t, 5, ci.HiOrder)
	require.InDelta(t, 30.0/32, ci.Confidence, 1e-12)

	lo, hi, err := ci.FromSample(Sample{Xs: []float64{30, 10, 50, 20, 40}})
	require.NoError(t, err)
	require.Equal(t, 10.0, lo)
	require.Equal(t, 50.0, hi)
}

func TestQuantileCIExtremes(t *testing.T) {
	// Far-tail quantile of a small sample: the upper bound escapes
	// the observations.
	ci, err := NewQuantileCI(5, 0.99, 0.95)
	require.NoError(t, err)
	_, hi, err := ci.FromSample(Sample{Xs: []float64{1, 2, 3, 4, 5}})
	require.NoError(t, err)
	require.True(t, math.IsInf(hi, 1))

	full, err := NewQuantileCI(10, 0.5, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, full.Confidence)
	require.Equal(t, 0, full.LoOrder)
	require.Equal(t, 11, full.HiOrder)
}

func TestQuantileCIAchievesConfidence(t *testing.T) {
	for _, n := range []int{10, 31, 100} {
		for _, p := range []float64{0.25, 0.5, 0.9} {
			ci, err := NewQuantileCI(n, p, 0.95)
			require.NoError(t, err)
			require.GreaterOrEqual(t, ci.Confidence, 0.95)
			require.Less(t, ci.LoOrder, ci.HiOrder)
		}
	}
}

func TestQuantileCISizeMismatch(t *testing.T) {
	ci, err := NewQuantileCI(5, 0.5, 0.9)
	require.NoError(t, err)
	_, _, err = ci.FromSample(Sample{Xs: []float64{1, 2, 3}})
	require.Error(t, err)
}
