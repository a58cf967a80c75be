// Copyright 2026 The Numerics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub004/mathx"
)

// DependencyStructure describes how component failure modes co-occur
// in a CompetingRisks composition.
type DependencyStructure int

const (
	// Independent failure modes: the survival functions multiply.
	Independent DependencyStructure = iota
	// PerfectlyPositive comonotonic failure modes: the weakest
	// component governs.
	PerfectlyPositive
)

func (ds DependencyStructure) String() string {
	switch ds {
	case Independent:
		return "Independent"
	case PerfectlyPositive:
		return "PerfectlyPositive"
	}
	return "Unknown"
}

// CompetingRisks is the distribution of the minimum of several
// component random variables, one per failure mode. Under
// Independent dependence the CDF is 1 − ∏(1 − Fᵢ(x)); under
// PerfectlyPositive it is max Fᵢ(x).
type CompetingRisks struct {
	Components []Dist
	Dependency DependencyStructure
}

// NewCompetingRisks composes the given components. At least one is
// required.
func NewCompetingRisks(components []Dist, dep DependencyStructure) (*CompetingRisks, error) {
	if len(components) == 0 {
		return nil, errors.Wrap(ErrBadParameters, "competingrisks: no components")
	}
	return &CompetingRisks{Components: components, Dependency: dep}, nil
}

func (d *CompetingRisks) CDF(x float64) float64 {
	if len(d.Components) == 0 {
		return nan
	}
	switch d.Dependency {
	case PerfectlyPositive:
		out := 0.0
		for _, c := range d.Components {
			out = math.Max(out, c.CDF(x))
		}
		return out
	default:
		surv := 1.0
		for _, c := range d.Components {
			surv *= 1 - c.CDF(x)
		}
		return 1 - surv
	}
}

// PDF differentiates the composite CDF numerically, scaled to the
// component span.
func (d *CompetingRisks) PDF(x float64) float64 {
	if len(d.Components) == 0 {
		return nan
	}
	lo, hi := d.Bounds()
	scale := math.Max(hi-lo, 1)
	f := mathx.CentralDiff(d.CDF, x, scale)
	if f < 0 {
		return 0
	}
	return f
}

func (d *CompetingRisks) InvCDF(p float64) float64 {
	if len(d.Components) == 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	if p == 0 || p == 1 {
		// The minimum's endpoints are the smallest component
		// endpoints on both sides.
		out := inf
		for _, c := range d.Components {
			out = math.Min(out, c.InvCDF(p))
		}
		return out
	}
	return invCDFNumeric(d, p)
}

func (d *CompetingRisks) Bounds() (float64, float64) {
	lo, hi := inf, math.Inf(-1)
	for _, c := range d.Components {
		clo, chi := c.Bounds()
		lo = math.Min(lo, clo)
		hi = math.Max(hi, chi)
	}
	return lo, hi
}
