// Package statics solves support reactions and shear/moment diagrams for a
// simply supported beam under an arbitrary mixture of point and uniformly
// distributed loads.
//
// Units: kN, m, kNm. Upward reactions are positive; for an all-downward
// load case both reactions come out positive.
package statics

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/load"
)

// DefaultSamples is the diagram resolution used when the caller does not
// choose one.
const DefaultSamples = 201

var (
	// ErrInvalidSpan is returned for a non-positive span.
	ErrInvalidSpan = errors.New("span must be positive")

	// ErrInvalidLoadGeometry is returned when a load position or interval
	// falls outside [0, span] or a UDL interval is empty or reversed.
	ErrInvalidLoadGeometry = errors.New("invalid load geometry")

	// ErrInvalidSampleCount is returned when fewer than two diagram
	// samples are requested.
	ErrInvalidSampleCount = errors.New("sample count must be at least 2")
)

// Demand holds the discretized shear and moment diagrams plus the scalar
// demand values used for section checks. All slices have equal length and
// X spans [0, Span] inclusive.
type Demand struct {
	Span   float64   // m
	X      []float64 // sample positions, m
	Shear  []float64 // kN
	Moment []float64 // kNm

	MaxShear  float64 // max |V|, kN
	MaxMoment float64 // max |M|, kNm

	ReactionLeft  float64 // kN, upward positive
	ReactionRight float64 // kN, upward positive
}

// Reactions computes the two support reactions for a simply supported
// beam from global equilibrium. Distributed loads are treated as their
// resultant acting at the centroid, which is exact for reactions.
func Reactions(lc load.Case) (ra, rb float64, err error) {
	if err := validate(lc); err != nil {
		return 0, 0, err
	}

	L := lc.Span

	// Moments about the left support give RB; vertical equilibrium gives RA.
	for _, pl := range lc.PointLoads {
		rb += -pl.Magnitude * pl.Position / L
	}
	for _, u := range lc.UDLs {
		rb += -u.Total() * u.Centroid() / L
	}
	ra = -lc.TotalLoad() - rb

	return ra, rb, nil
}

// Analyze computes the shear and moment diagram at samples evenly spaced
// positions from 0 to span inclusive.
//
// Each sample is evaluated directly: shear and moment at x are the sum of
// the left reaction term and the contribution of every load acting at or
// left of x, with UDLs integrated over the part of their interval that
// lies left of x. Direct evaluation is O(samples × loads) but immune to
// the double-counting that walk-and-add diagram builders suffer over
// piecewise-defined loads. Overlapping UDL intervals simply superpose.
//
// The right reaction enters as its own point term at x >= span; at exactly
// x = span it adds zero moment, closing the diagram to zero residual.
func Analyze(lc load.Case, samples int) (Demand, error) {
	if samples < 2 {
		return Demand{}, fmt.Errorf("got %d: %w", samples, ErrInvalidSampleCount)
	}

	ra, rb, err := Reactions(lc)
	if err != nil {
		return Demand{}, err
	}

	L := lc.Span
	d := Demand{
		Span:          L,
		X:             make([]float64, samples),
		Shear:         make([]float64, samples),
		Moment:        make([]float64, samples),
		ReactionLeft:  ra,
		ReactionRight: rb,
	}

	step := L / float64(samples-1)
	for i := range d.X {
		x := float64(i) * step
		if i == samples-1 {
			x = L // avoid accumulated rounding at the right support
		}
		d.X[i] = x

		v := ra
		m := ra * x

		for _, pl := range lc.PointLoads {
			if x >= pl.Position {
				v += pl.Magnitude
				m += pl.Magnitude * (x - pl.Position)
			}
		}

		for _, u := range lc.UDLs {
			active := clamp(x-u.Start, 0, u.End-u.Start)
			v += u.Intensity * active
			m += u.Intensity * 0.5 * active * active
		}

		if x >= L {
			v += rb
			m += rb * (x - L)
		}

		d.Shear[i] = v
		d.Moment[i] = m

		if av := abs(v); av > d.MaxShear {
			d.MaxShear = av
		}
		if am := abs(m); am > d.MaxMoment {
			d.MaxMoment = am
		}
	}

	return d, nil
}

func validate(lc load.Case) error {
	if lc.Span <= 0 {
		return fmt.Errorf("span %.3f m: %w", lc.Span, ErrInvalidSpan)
	}
	for _, pl := range lc.PointLoads {
		if pl.Position < 0 || pl.Position > lc.Span {
			return fmt.Errorf("point load at %.3f m outside [0, %.3f]: %w",
				pl.Position, lc.Span, ErrInvalidLoadGeometry)
		}
	}
	for _, u := range lc.UDLs {
		if u.Start >= u.End {
			return fmt.Errorf("UDL interval [%.3f, %.3f] is empty or reversed: %w",
				u.Start, u.End, ErrInvalidLoadGeometry)
		}
		if u.Start < 0 || u.End > lc.Span {
			return fmt.Errorf("UDL interval [%.3f, %.3f] outside [0, %.3f]: %w",
				u.Start, u.End, lc.Span, ErrInvalidLoadGeometry)
		}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
