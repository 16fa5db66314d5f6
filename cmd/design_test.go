package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDesignCase_PlainLoads(t *testing.T) {
	lc, err := resolveDesignCase(6, nil, nil, []string{"-30@3"}, []string{"-15@0:6"}, "combination")
	require.NoError(t, err)

	assert.Equal(t, 6.0, lc.Span)
	require.Len(t, lc.PointLoads, 1)
	require.Len(t, lc.UDLs, 1)
	assert.InDelta(t, -120.0, lc.TotalLoad(), 1e-12)
}

func TestResolveDesignCase_CombinesNamedCases(t *testing.T) {
	// 1.35 G + 1.5 Q in one step must match running combine first.
	lc, err := resolveDesignCase(5,
		[]string{"G=1.0", "Q=1.0"},
		[]string{"G=1.35", "Q=1.5"},
		[]string{"Q:-20@2.5"},
		[]string{"G:-10@0:5"},
		"ULS",
	)
	require.NoError(t, err)

	assert.Equal(t, "ULS", lc.Name)
	require.Len(t, lc.UDLs, 1)
	assert.InDelta(t, -13.5, lc.UDLs[0].Intensity, 1e-12)
	require.Len(t, lc.PointLoads, 1)
	assert.InDelta(t, -30.0, lc.PointLoads[0].Magnitude, 1e-12)
	assert.Equal(t, 1.0, lc.Gamma)
}

func TestResolveDesignCase_FactorWithoutCase(t *testing.T) {
	_, err := resolveDesignCase(5, nil, []string{"G=1.35"}, nil, []string{"-10@0:5"}, "combination")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--factor requires --case")
}

func TestResolveDesignCase_PrefixedLoadWithoutCase(t *testing.T) {
	// With --case declared, every load must carry a valid case prefix.
	_, err := resolveDesignCase(5,
		[]string{"G=1.0"},
		[]string{"G=1.35"},
		nil,
		[]string{"H:-10@0:5"},
		"combination",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared case")
}
