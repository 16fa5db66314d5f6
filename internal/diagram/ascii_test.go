package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/load"
	"github.com/alexiusacademia/gosteel/internal/statics"
)

func TestRenderASCII(t *testing.T) {
	lc := load.NewCase("ULS", 6)
	lc.UDLs = append(lc.UDLs, load.UDL{Intensity: -15, Start: 0, End: 6})
	lc.PointLoads = append(lc.PointLoads, load.PointLoad{Magnitude: -30, Position: 3})

	d, err := statics.Analyze(lc, 201)
	require.NoError(t, err)

	out := RenderASCII(d, DefaultASCIIOptions())

	assert.Contains(t, out, "SHEAR FORCE DIAGRAM")
	assert.Contains(t, out, "BENDING MOMENT DIAGRAM")
	assert.Contains(t, out, "max |V| = 60.00 kN")
	assert.Contains(t, out, "max |M| = 112.50 kNm")
	assert.Contains(t, out, "x = 6.00 m")

	// Both plots actually render a curve.
	assert.Greater(t, strings.Count(out, "\n"), 20)
}
