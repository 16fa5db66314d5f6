// Package load models external actions on a simply supported beam:
// concentrated loads, uniformly distributed loads, named load cases and
// their linear combination into a design combination.
//
// Units at this boundary: forces in kN, intensities in kN/m, positions and
// spans in m. Downward loads are negative by convention.
package load

import (
	"errors"
	"fmt"
	"math"
)

// SpanTolerance is the maximum span difference (m) allowed between load
// cases entering a combination.
const SpanTolerance = 1e-6

var (
	// ErrNoLoadCases is returned when a combination is requested over an
	// empty set of load cases.
	ErrNoLoadCases = errors.New("no load cases provided")

	// ErrSpanMismatch is returned when load cases entering a combination
	// do not share the same span.
	ErrSpanMismatch = errors.New("load cases must share the same span")
)

// PointLoad is a concentrated load on the beam.
// Magnitude is in kN, negative for downward. Position is the distance
// from the left support in m.
type PointLoad struct {
	Magnitude float64
	Position  float64
}

// UDL is a uniformly distributed load acting between Start and End.
// Intensity is in kN/m, negative for downward.
type UDL struct {
	Intensity float64
	Start     float64
	End       float64
}

// Total returns the resultant force of the UDL in kN.
func (u UDL) Total() float64 {
	return u.Intensity * (u.End - u.Start)
}

// Centroid returns the position of the UDL resultant from the left support.
func (u UDL) Centroid() float64 {
	return u.Start + (u.End-u.Start)/2
}

// Case is a single named load case (e.g. "G", "Q") with a partial factor
// gamma applied at combination time.
//
// Construction is deliberately permissive: positions and intervals are
// validated by the statics solver before any analysis, so combinations can
// be assembled incrementally.
type Case struct {
	Name       string
	Span       float64
	PointLoads []PointLoad
	UDLs       []UDL
	Gamma      float64
}

// NewCase creates an empty load case with gamma = 1.0.
func NewCase(name string, span float64) Case {
	return Case{Name: name, Span: span, Gamma: 1.0}
}

// TotalLoad returns the signed sum of all point magnitudes and UDL
// resultants in kN.
func (c Case) TotalLoad() float64 {
	var total float64
	for _, pl := range c.PointLoads {
		total += pl.Magnitude
	}
	for _, u := range c.UDLs {
		total += u.Total()
	}
	return total
}

// Combine linearly combines load cases into a single design combination.
//
// factors maps case names to combination coefficients (e.g. {"G": 1.35,
// "Q": 1.5}). A case whose name is absent, or whose coefficient is exactly
// zero, contributes nothing — the usual convention that a load case not
// listed in a combination is excluded, not an error.
//
// Each included load is scaled by coefficient × case gamma; positions and
// intervals pass through unchanged. The result carries gamma = 1.0 since
// all factors are already folded in, and its loads appear in input order:
// for each case, point loads then UDLs.
func Combine(cases []Case, factors map[string]float64, name string) (Case, error) {
	if len(cases) == 0 {
		return Case{}, ErrNoLoadCases
	}

	span := cases[0].Span
	for _, c := range cases {
		if math.Abs(c.Span-span) > SpanTolerance {
			return Case{}, fmt.Errorf("case %q has span %.6f m, expected %.6f m: %w",
				c.Name, c.Span, span, ErrSpanMismatch)
		}
	}

	combined := NewCase(name, span)

	for _, c := range cases {
		psi := factors[c.Name]
		if psi == 0.0 {
			continue
		}

		factor := psi * c.Gamma

		for _, pl := range c.PointLoads {
			combined.PointLoads = append(combined.PointLoads, PointLoad{
				Magnitude: pl.Magnitude * factor,
				Position:  pl.Position,
			})
		}
		for _, u := range c.UDLs {
			combined.UDLs = append(combined.UDLs, UDL{
				Intensity: u.Intensity * factor,
				Start:     u.Start,
				End:       u.End,
			})
		}
	}

	return combined, nil
}
