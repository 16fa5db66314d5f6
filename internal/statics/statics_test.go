package statics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/load"
)

const tol = 1e-9

func mixedCase() load.Case {
	// 6 m span, full-span UDL of 15 kN/m down, 30 kN point load at midspan.
	lc := load.NewCase("ULS", 6)
	lc.UDLs = append(lc.UDLs, load.UDL{Intensity: -15, Start: 0, End: 6})
	lc.PointLoads = append(lc.PointLoads, load.PointLoad{Magnitude: -30, Position: 3})
	return lc
}

func TestReactions_MixedLoads(t *testing.T) {
	ra, rb, err := Reactions(mixedCase())
	require.NoError(t, err)

	// Symmetric loading: each support carries half of the 120 kN total.
	assert.InDelta(t, 60.0, ra, tol)
	assert.InDelta(t, 60.0, rb, tol)
}

func TestReactions_AsymmetricPointLoad(t *testing.T) {
	lc := load.NewCase("P", 6)
	lc.PointLoads = append(lc.PointLoads, load.PointLoad{Magnitude: -60, Position: 2})

	ra, rb, err := Reactions(lc)
	require.NoError(t, err)

	assert.InDelta(t, 40.0, ra, tol)
	assert.InDelta(t, 20.0, rb, tol)
}

func TestReactions_PartialUDLCentroid(t *testing.T) {
	// 12 kN/m over [2, 5] on a 6 m span: W = 36 kN at x = 3.5.
	lc := load.NewCase("w", 6)
	lc.UDLs = append(lc.UDLs, load.UDL{Intensity: -12, Start: 2, End: 5})

	ra, rb, err := Reactions(lc)
	require.NoError(t, err)

	assert.InDelta(t, 36.0*3.5/6.0, rb, tol)
	assert.InDelta(t, 36.0-36.0*3.5/6.0, ra, tol)
}

func TestAnalyze_MixedLoads(t *testing.T) {
	d, err := Analyze(mixedCase(), 201)
	require.NoError(t, err)

	// M_max = wL²/8 + PL/4 = 67.5 + 45 = 112.5 kNm at midspan.
	assert.InDelta(t, 112.5, d.MaxMoment, 1e-6)
	assert.InDelta(t, 60.0, d.MaxShear, 1e-6)
	assert.InDelta(t, 60.0, d.ReactionLeft, tol)
	assert.InDelta(t, 60.0, d.ReactionRight, tol)
}

func TestAnalyze_UDLOnlyMatchesClosedForm(t *testing.T) {
	lc := load.NewCase("w", 8)
	lc.UDLs = append(lc.UDLs, load.UDL{Intensity: -20, Start: 0, End: 8})

	d, err := Analyze(lc, 401)
	require.NoError(t, err)

	assert.InDelta(t, 20.0*8*8/8, d.MaxMoment, 1e-6) // wL²/8 = 160 kNm
	assert.InDelta(t, 80.0, d.MaxShear, 1e-6)        // wL/2
}

func equilibriumCheck(t *testing.T, lc load.Case) {
	t.Helper()

	d, err := Analyze(lc, 201)
	require.NoError(t, err)

	// Global equilibrium: RA + RB + total applied load = 0.
	assert.InDelta(t, 0.0, d.ReactionLeft+d.ReactionRight+lc.TotalLoad(), 1e-9)

	// Free-end boundary conditions: M(0) = M(L) = 0.
	assert.InDelta(t, 0.0, d.Moment[0], 1e-9)
	assert.InDelta(t, 0.0, d.Moment[len(d.Moment)-1], 1e-9)

	// The right reaction closes the shear diagram to zero.
	assert.InDelta(t, 0.0, d.Shear[len(d.Shear)-1], 1e-9)
}

func TestAnalyze_EquilibriumProperties(t *testing.T) {
	cases := map[string]func() load.Case{
		"mixed": mixedCase,
		"partial UDLs": func() load.Case {
			lc := load.NewCase("w", 10)
			lc.UDLs = append(lc.UDLs,
				load.UDL{Intensity: -8, Start: 0, End: 4},
				load.UDL{Intensity: -14, Start: 6, End: 10})
			return lc
		},
		"overlapping UDLs": func() load.Case {
			lc := load.NewCase("w", 5)
			lc.UDLs = append(lc.UDLs,
				load.UDL{Intensity: -5, Start: 1, End: 4},
				load.UDL{Intensity: -5, Start: 2, End: 5})
			return lc
		},
		"off-grid point loads": func() load.Case {
			lc := load.NewCase("P", 7)
			lc.PointLoads = append(lc.PointLoads,
				load.PointLoad{Magnitude: -13, Position: 1.37},
				load.PointLoad{Magnitude: -29, Position: 5.91})
			return lc
		},
		"upward and downward": func() load.Case {
			lc := load.NewCase("mix", 6)
			lc.PointLoads = append(lc.PointLoads,
				load.PointLoad{Magnitude: 20, Position: 2},
				load.PointLoad{Magnitude: -45, Position: 4})
			lc.UDLs = append(lc.UDLs, load.UDL{Intensity: -6, Start: 0, End: 6})
			return lc
		},
	}

	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			equilibriumCheck(t, build())
		})
	}
}

func TestAnalyze_OverlappingUDLsSuperpose(t *testing.T) {
	// Two half-intensity UDLs over the same interval must reproduce the
	// single full-intensity diagram.
	single := load.NewCase("w", 6)
	single.UDLs = append(single.UDLs, load.UDL{Intensity: -10, Start: 1, End: 5})

	split := load.NewCase("w", 6)
	split.UDLs = append(split.UDLs,
		load.UDL{Intensity: -5, Start: 1, End: 5},
		load.UDL{Intensity: -5, Start: 1, End: 5})

	a, err := Analyze(single, 201)
	require.NoError(t, err)
	b, err := Analyze(split, 201)
	require.NoError(t, err)

	for i := range a.X {
		assert.InDelta(t, a.Shear[i], b.Shear[i], tol)
		assert.InDelta(t, a.Moment[i], b.Moment[i], tol)
	}
}

func TestAnalyze_PointLoadAtSupports(t *testing.T) {
	// A point load exactly over a support must flow straight into that
	// support: no shear or moment anywhere in the span.
	for _, position := range []float64{0, 6} {
		lc := load.NewCase("P", 6)
		lc.PointLoads = append(lc.PointLoads, load.PointLoad{Magnitude: -10, Position: position})

		d, err := Analyze(lc, 201)
		require.NoError(t, err)

		assert.InDelta(t, 0.0, d.MaxMoment, tol, "position %v", position)
		assert.InDelta(t, 0.0, d.ReactionLeft+d.ReactionRight-10.0, tol, "position %v", position)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	lc := mixedCase()

	a, err := Analyze(lc, 201)
	require.NoError(t, err)
	b, err := Analyze(lc, 201)
	require.NoError(t, err)

	assert.Equal(t, a, b, "re-analysis of the same case must be bit-identical")
}

func TestAnalyze_SampleGrid(t *testing.T) {
	d, err := Analyze(mixedCase(), 7)
	require.NoError(t, err)

	require.Len(t, d.X, 7)
	assert.Equal(t, 0.0, d.X[0])
	assert.Equal(t, 6.0, d.X[6])
	for i := 1; i < len(d.X); i++ {
		assert.InDelta(t, 1.0, d.X[i]-d.X[i-1], 1e-12)
	}
}

func TestAnalyze_InvalidInputs(t *testing.T) {
	t.Run("non-positive span", func(t *testing.T) {
		lc := load.NewCase("bad", 0)
		_, _, err := Reactions(lc)
		assert.ErrorIs(t, err, ErrInvalidSpan)
	})

	t.Run("reversed UDL interval", func(t *testing.T) {
		lc := load.NewCase("bad", 6)
		lc.UDLs = append(lc.UDLs, load.UDL{Intensity: -5, Start: 4, End: 2})
		_, err := Analyze(lc, 201)
		assert.ErrorIs(t, err, ErrInvalidLoadGeometry)
	})

	t.Run("UDL outside span", func(t *testing.T) {
		lc := load.NewCase("bad", 6)
		lc.UDLs = append(lc.UDLs, load.UDL{Intensity: -5, Start: 2, End: 7})
		_, err := Analyze(lc, 201)
		assert.ErrorIs(t, err, ErrInvalidLoadGeometry)
	})

	t.Run("point load outside span", func(t *testing.T) {
		lc := load.NewCase("bad", 6)
		lc.PointLoads = append(lc.PointLoads, load.PointLoad{Magnitude: -5, Position: 6.5})
		_, err := Analyze(lc, 201)
		assert.ErrorIs(t, err, ErrInvalidLoadGeometry)
	})

	t.Run("too few samples", func(t *testing.T) {
		_, err := Analyze(mixedCase(), 1)
		assert.ErrorIs(t, err, ErrInvalidSampleCount)
	})
}

func TestAnalyze_MomentIsFiniteEverywhere(t *testing.T) {
	d, err := Analyze(mixedCase(), 201)
	require.NoError(t, err)

	for i, m := range d.Moment {
		require.False(t, math.IsNaN(m) || math.IsInf(m, 0), "sample %d", i)
	}
}
