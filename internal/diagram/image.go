package diagram

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gosteel/internal/statics"
)

// ExportImage writes the shear and moment diagrams of an analyzed beam to
// an image file. The format follows the file extension (.png, .svg, .pdf).
func ExportImage(d statics.Demand, filename string) error {
	shear, err := demandPlot(d, d.Shear,
		"Shear Force Diagram", "V (kN)",
		color.RGBA{R: 178, G: 34, B: 34, A: 255})
	if err != nil {
		return err
	}

	moment, err := demandPlot(d, d.Moment,
		"Bending Moment Diagram", "M (kNm)",
		color.RGBA{R: 30, G: 80, B: 180, A: 255})
	if err != nil {
		return err
	}

	const width, height = 16 * vg.Centimeter, 9 * vg.Centimeter

	if err := shear.Save(width, height, shearFilename(filename)); err != nil {
		return fmt.Errorf("save shear diagram: %w", err)
	}
	if err := moment.Save(width, height, filename); err != nil {
		return fmt.Errorf("save moment diagram: %w", err)
	}
	return nil
}

func demandPlot(d statics.Demand, series []float64, title, yLabel string, c color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(d.X))
	for i := range d.X {
		pts[i] = plotter.XY{X: d.X[i], Y: series[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = c
	p.Add(line)

	// Beam axis as a reference line at zero.
	axis, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: d.Span, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Color = color.Black
	axis.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(axis)

	// Support markers.
	supports, err := plotter.NewScatter(plotter.XYs{
		{X: 0, Y: 0},
		{X: d.Span, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	supports.GlyphStyle.Radius = vg.Points(3)
	p.Add(supports)

	p.Add(plotter.NewGrid())
	return p, nil
}

// shearFilename derives the shear-diagram file name from the moment one,
// e.g. beam.png → beam_shear.png.
func shearFilename(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[:i] + "_shear" + filename[i:]
		}
	}
	return filename + "_shear"
}
