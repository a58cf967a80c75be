// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	if !aeq(5, s.Mean()) {
		t.Errorf("Mean = %v", s.Mean())
	}
	if !aeq(2, s.Min()) || !aeq(9, s.Max()) {
		t.Errorf("Min/Max = %v/%v", s.Min(), s.Max())
	}
}

func TestSampleLMoments(t *testing.T) {
	// Equally spaced points have zero L-skewness and L-kurtosis and
	// closed-form L1, L2.
	s := Sample{Xs: []float64{4, 2, 1, 3}}
	lm, err := s.LMoments()
	require.NoError(t, err)
	require.InDelta(t, 2.5, lm.L1, 1e-12)
	require.InDelta(t, 5.0/6, lm.L2, 1e-12)
	require.InDelta(t, 0, lm.T3, 1e-12)
	require.InDelta(t, 0, lm.T4, 1e-12)

	// The original sample must not be reordered.
	require.Equal(t, []float64{4, 2, 1, 3}, s.Xs)
}

func TestSampleLMomentsInsufficient(t *testing.T) {
	_, err := Sample{Xs: []float64{1, 2, 3}}.LMoments()
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestSamplePercentile(t *testing.T) {
	s := Sample{Xs: []float64{10, 20, 30, 40, 50}}
	if !aeq(30, s.Percentile(0.5)) {
		t.Errorf("Percentile(0.5) = %v", s.Percentile(0.5))
	}
	if !aeq(10, s.Percentile(0)) || !aeq(50, s.Percentile(1)) {
		t.Errorf("Percentile ends = %v/%v", s.Percentile(0), s.Percentile(1))
	}
}
