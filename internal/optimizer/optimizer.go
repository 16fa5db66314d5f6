// Package optimizer scans candidate sections against an analyzed demand
// and picks the conforming section with the lowest embodied CO₂.
package optimizer

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gosteel/internal/capacity"
	"github.com/alexiusacademia/gosteel/internal/materials"
	"github.com/alexiusacademia/gosteel/internal/statics"
)

// Constraints are the engineering limits a candidate must satisfy, plus
// the serviceability loads used for the closed-form deflection check.
type Constraints struct {
	YieldStrength        float64 // Pa
	GammaM0              float64 // partial material factor
	DeflectionLimitRatio float64 // e.g. 250 for L/250

	// Service-level loads for the deflection check (unfactored): a
	// full-span UDL in kN/m and a midspan point load in kN. Only the
	// magnitude matters; either sign convention is accepted so a
	// negative-for-downward value cannot flip the deflection sign and
	// defeat the limit check.
	ServiceUDL   float64
	ServicePoint float64

	Steel capacity.Steel
}

// Evaluation is the outcome of checking one candidate profile.
type Evaluation struct {
	Profile string

	Resistance  float64 // M_Rd, kNm
	Utilization float64 // M_Ed / M_Rd

	Deflection      float64 // midspan, mm
	DeflectionLimit float64 // mm
	DeflectionOK    bool

	Mass float64 // kg over the full span
	CO2  float64 // embodied CO₂, kg
}

// Conforms reports whether the candidate passes both the strength and
// the serviceability check.
func (e Evaluation) Conforms() bool {
	return e.Utilization <= 1.0 && e.DeflectionOK
}

// Skipped records a candidate that could not be evaluated. One bad row
// must not abort the run; skips are surfaced as diagnostics instead.
type Skipped struct {
	Profile string
	Err     error
}

// Result is the full outcome of a candidate scan. Best is nil when no
// candidate conforms — an expected outcome of the search, not an error.
type Result struct {
	Evaluations []Evaluation // every evaluated candidate, input order
	Passing     []Evaluation // conforming candidates, ascending CO₂
	Best        *Evaluation
	Skipped     []Skipped
}

// Select evaluates each candidate profile against the demand and returns
// the ranked conforming set plus the lowest-CO₂ choice.
//
// Candidates whose lookup fails are skipped and reported in
// Result.Skipped. The conforming set is sorted ascending by embodied CO₂
// with ties broken by input order, so results are deterministic.
func Select(candidates []string, demand statics.Demand, source materials.Source, c Constraints) Result {
	var res Result

	for _, profile := range candidates {
		sec, err := source.Section(profile)
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{Profile: profile, Err: err})
			continue
		}

		ev, err := evaluate(sec, demand, c)
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{Profile: profile, Err: err})
			continue
		}
		res.Evaluations = append(res.Evaluations, ev)
	}

	res.Passing = make([]Evaluation, 0, len(res.Evaluations))
	for _, ev := range res.Evaluations {
		if ev.Conforms() {
			res.Passing = append(res.Passing, ev)
		}
	}

	sort.SliceStable(res.Passing, func(i, j int) bool {
		return res.Passing[i].CO2 < res.Passing[j].CO2
	})

	if len(res.Passing) > 0 {
		best := res.Passing[0]
		res.Best = &best
	}

	return res
}

func evaluate(sec materials.Section, demand statics.Demand, c Constraints) (Evaluation, error) {
	// Strength: demand in kNm, resistance computed in Nm.
	mrd, err := capacity.BendingResistance(sec.SectionModulus, c.YieldStrength, c.GammaM0)
	if err != nil {
		return Evaluation{}, err
	}
	mrdKNm := mrd / 1e3

	util, err := capacity.Utilization(demand.MaxMoment, mrdKNm)
	if err != nil {
		return Evaluation{}, err
	}

	// Serviceability: kN/m → N/m and kN → N; deflection reported in mm.
	// Service loads enter as magnitudes regardless of input sign.
	defl := capacity.Deflection(
		demand.Span,
		sec.SecondMoment,
		math.Abs(c.ServiceUDL)*1e3,
		math.Abs(c.ServicePoint)*1e3,
		c.Steel.E,
	)
	limit := capacity.DeflectionLimit(demand.Span, c.DeflectionLimitRatio)

	mass := sec.MassPerMeter * demand.Span

	return Evaluation{
		Profile:         sec.Profile,
		Resistance:      mrdKNm,
		Utilization:     util,
		Deflection:      defl * 1e3,
		DeflectionLimit: limit * 1e3,
		DeflectionOK:    defl <= limit,
		Mass:            mass,
		CO2:             mass * sec.EmissionFactor,
	}, nil
}
