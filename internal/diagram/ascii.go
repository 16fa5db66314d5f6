// Package diagram renders shear and bending moment diagrams, as ASCII
// plots for the terminal and as PNG images for reports.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gosteel/internal/statics"
)

// ASCIIOptions control the terminal rendering of a demand diagram.
type ASCIIOptions struct {
	Width  int // plot width in characters
	Height int // plot height in characters
}

// DefaultASCIIOptions fits a standard 80-column terminal.
func DefaultASCIIOptions() ASCIIOptions {
	return ASCIIOptions{Width: 64, Height: 12}
}

// RenderASCII draws the shear and moment diagrams of an analyzed beam as
// two stacked ASCII plots.
func RenderASCII(d statics.Demand, opts ASCIIOptions) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  SHEAR FORCE DIAGRAM V(x) [kN]\n")
	sb.WriteString("  ─────────────────────────────\n")
	sb.WriteString(asciiPlot(d.Shear, opts))
	sb.WriteString("\n")
	sb.WriteString(axis(d.Span, opts.Width))
	sb.WriteString(fmt.Sprintf("  max |V| = %.2f kN\n", d.MaxShear))

	sb.WriteString("\n")
	sb.WriteString("  BENDING MOMENT DIAGRAM M(x) [kNm]\n")
	sb.WriteString("  ─────────────────────────────────\n")
	sb.WriteString(asciiPlot(d.Moment, opts))
	sb.WriteString("\n")
	sb.WriteString(axis(d.Span, opts.Width))
	sb.WriteString(fmt.Sprintf("  max |M| = %.2f kNm\n", d.MaxMoment))

	return sb.String()
}

func asciiPlot(series []float64, opts ASCIIOptions) string {
	return asciigraph.Plot(series,
		asciigraph.Width(opts.Width),
		asciigraph.Height(opts.Height),
		asciigraph.Offset(3),
		asciigraph.Precision(1),
	)
}

func axis(span float64, width int) string {
	right := fmt.Sprintf("x = %.2f m", span)
	return fmt.Sprintf("  x = 0 m%*s\n", width, right)
}
