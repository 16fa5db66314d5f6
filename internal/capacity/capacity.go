// Package capacity computes bending resistance, deflection and
// utilization for a steel section under a known demand.
//
// Unlike the statics package, everything here works in strict SI: section
// modulus in m³, second moment of area in m⁴, stresses in Pa, lengths in m,
// forces in N. Callers convert once at the boundary.
package capacity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMaterialFactor is returned for a non-positive partial
	// material factor.
	ErrInvalidMaterialFactor = errors.New("material factor must be positive")

	// ErrInvalidResistance is returned when a utilization is requested
	// against a non-positive resistance. A zero resistance is a data
	// error, not an infinitely unsafe section.
	ErrInvalidResistance = errors.New("resistance must be positive")

	// ErrUnknownGrade is returned when a steel grade name is not in the
	// material's grade table.
	ErrUnknownGrade = errors.New("unknown steel grade")
)

// Steel describes the material the engine designs with. It is passed in
// explicitly so the engine stays material-agnostic and testable with
// synthetic properties.
type Steel struct {
	E       float64            // Young's modulus, Pa
	Density float64            // kg/m³
	Grades  map[string]float64 // grade name → yield strength, Pa
}

// DefaultSteel returns structural steel with the common European grades.
func DefaultSteel() Steel {
	return Steel{
		E:       210e9,
		Density: 7850,
		Grades: map[string]float64{
			"S235": 235e6,
			"S275": 275e6,
			"S355": 355e6,
		},
	}
}

// YieldStrength resolves a grade name to its yield strength in Pa.
func (s Steel) YieldStrength(grade string) (float64, error) {
	fy, ok := s.Grades[grade]
	if !ok {
		return 0, fmt.Errorf("%q: %w", grade, ErrUnknownGrade)
	}
	return fy, nil
}

// BendingResistance returns M_Rd = W·fy/γ_M0 in Nm, with W the section
// modulus in m³ and fy the yield strength in Pa.
func BendingResistance(sectionModulus, yieldStrength, gammaM0 float64) (float64, error) {
	if gammaM0 <= 0 {
		return 0, fmt.Errorf("γ_M0 = %.3f: %w", gammaM0, ErrInvalidMaterialFactor)
	}
	return sectionModulus * yieldStrength / gammaM0, nil
}

// Deflection returns the midspan deflection in m of a simply supported
// beam by superposition of the closed-form UDL and midspan point-load
// terms:
//
//	5·q·L⁴/(384·E·I) + P·L³/(48·E·I)
//
// span in m, secondMoment in m⁴, udl (downward magnitude) in N/m, point
// (downward magnitude) in N, elasticModulus in Pa.
//
// Only midspan point loads have this closed form. An off-center point
// load must be assessed through the statics diagram instead; this helper
// does not approximate it.
func Deflection(span, secondMoment, udl, point, elasticModulus float64) float64 {
	ei := elasticModulus * secondMoment

	var w float64
	if udl != 0 {
		w += 5 * udl * span * span * span * span / (384 * ei)
	}
	if point != 0 {
		w += point * span * span * span / (48 * ei)
	}
	return w
}

// Utilization returns demand/resistance. Resistance must be strictly
// positive; a non-positive value is rejected rather than producing an
// infinite or negative ratio.
func Utilization(demand, resistance float64) (float64, error) {
	if resistance <= 0 {
		return 0, fmt.Errorf("M_Rd = %.3f: %w", resistance, ErrInvalidResistance)
	}
	return demand / resistance, nil
}

// DeflectionLimit returns the allowable deflection span/ratio in m
// (e.g. ratio = 250 for the usual L/250).
func DeflectionLimit(span, ratio float64) float64 {
	return span / ratio
}
