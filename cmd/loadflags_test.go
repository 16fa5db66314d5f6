package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/load"
)

func TestParsePoint(t *testing.T) {
	pl, err := parsePoint("-30@3")
	require.NoError(t, err)
	assert.Equal(t, load.PointLoad{Magnitude: -30, Position: 3}, pl)

	pl, err = parsePoint("12.5@0.75")
	require.NoError(t, err)
	assert.Equal(t, load.PointLoad{Magnitude: 12.5, Position: 0.75}, pl)
}

func TestParsePoint_Invalid(t *testing.T) {
	for _, s := range []string{"", "-30", "x@3", "-30@y"} {
		_, err := parsePoint(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestParseUDL(t *testing.T) {
	u, err := parseUDL("-15@0:6")
	require.NoError(t, err)
	assert.Equal(t, load.UDL{Intensity: -15, Start: 0, End: 6}, u)

	u, err = parseUDL("-7.5@1.5:4.25")
	require.NoError(t, err)
	assert.Equal(t, load.UDL{Intensity: -7.5, Start: 1.5, End: 4.25}, u)
}

func TestParseUDL_Invalid(t *testing.T) {
	for _, s := range []string{"", "-15", "-15@06", "-15@a:6", "-15@0:b"} {
		_, err := parseUDL(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestParseAssignment(t *testing.T) {
	name, v, err := parseAssignment("G=1.35")
	require.NoError(t, err)
	assert.Equal(t, "G", name)
	assert.Equal(t, 1.35, v)

	_, _, err = parseAssignment("G:1.35")
	assert.Error(t, err)
	_, _, err = parseAssignment("=1.35")
	assert.Error(t, err)
}

func TestCollectCases(t *testing.T) {
	cases, factors, err := collectCases(5,
		[]string{"G=1.0", "Q=1.0"},
		[]string{"Q:-20@2.5"},
		[]string{"G:-10@0:5"},
		[]string{"G=1.35", "Q=1.5"},
	)
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, "G", cases[0].Name)
	require.Len(t, cases[0].UDLs, 1)
	assert.Equal(t, load.UDL{Intensity: -10, Start: 0, End: 5}, cases[0].UDLs[0])

	assert.Equal(t, "Q", cases[1].Name)
	require.Len(t, cases[1].PointLoads, 1)
	assert.Equal(t, load.PointLoad{Magnitude: -20, Position: 2.5}, cases[1].PointLoads[0])

	assert.Equal(t, map[string]float64{"G": 1.35, "Q": 1.5}, factors)
}

func TestCollectCases_UndeclaredCase(t *testing.T) {
	_, _, err := collectCases(5, []string{"G=1.0"}, []string{"Q:-20@2.5"}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared case")
}

func TestCollectCases_DuplicateCase(t *testing.T) {
	_, _, err := collectCases(5, []string{"G=1.0", "G=1.2"}, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declared twice")
}

func TestBuildCase(t *testing.T) {
	lc, err := buildCase("analysis", 6, []string{"-30@3"}, []string{"-15@0:6"})
	require.NoError(t, err)

	assert.Equal(t, 6.0, lc.Span)
	require.Len(t, lc.PointLoads, 1)
	require.Len(t, lc.UDLs, 1)
	assert.InDelta(t, -120.0, lc.TotalLoad(), 1e-12)
}
