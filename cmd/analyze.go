package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/diagram"
	"github.com/alexiusacademia/gosteel/internal/load"
	"github.com/alexiusacademia/gosteel/internal/statics"
)

var (
	// Analysis inputs
	analyzeSpan    float64
	analyzePoints  []string
	analyzeUDLs    []string
	analyzeSamples int
	analyzeOutput  string
	analyzeNoPlot  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute reactions and shear/moment diagrams for a beam",
	Long: `Compute support reactions and the shear and bending moment diagrams
of a simply supported beam under an arbitrary mixture of point and
uniformly distributed loads.

Sign convention: downward loads are negative; upward reactions come out
positive. Units are kN, m and kNm.

Examples:
  # 6 m beam, full-span UDL of 15 kN/m down, 30 kN point load at midspan
  gosteel analyze --span 6 --udl "-15@0:6" --point "-30@3"

  # Partial UDL plus two point loads, exported as PNG diagrams
  gosteel analyze --span 8 --udl "-12@0:5" --point "-40@2" --point "-25@6.5" \
      --output beam.png`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Float64VarP(&analyzeSpan, "span", "L", 0, "Beam span (m) [required]")
	analyzeCmd.Flags().StringArrayVarP(&analyzePoints, "point", "P", nil, `Point load "P@x" (kN at m), repeatable`)
	analyzeCmd.Flags().StringArrayVarP(&analyzeUDLs, "udl", "w", nil, `Distributed load "w@start:end" (kN/m), repeatable`)
	analyzeCmd.Flags().IntVarP(&analyzeSamples, "samples", "n", statics.DefaultSamples, "Diagram sample count")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Export diagrams to an image file (.png, .svg, .pdf)")
	analyzeCmd.Flags().BoolVar(&analyzeNoPlot, "no-plot", false, "Skip the ASCII diagrams")

	analyzeCmd.MarkFlagRequired("span")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	lc, err := buildCase("analysis", analyzeSpan, analyzePoints, analyzeUDLs)
	if err != nil {
		return err
	}
	if len(lc.PointLoads) == 0 && len(lc.UDLs) == 0 {
		return fmt.Errorf("no loads given: provide at least one --point or --udl")
	}

	demand, err := statics.Analyze(lc, analyzeSamples)
	if err != nil {
		return err
	}

	printDemand(lc, demand)

	if !analyzeNoPlot {
		fmt.Println(diagram.RenderASCII(demand, diagram.DefaultASCIIOptions()))
	}

	if analyzeOutput != "" {
		if err := diagram.ExportImage(demand, analyzeOutput); err != nil {
			return err
		}
		fmt.Printf("  Diagrams written to %s\n\n", analyzeOutput)
	}

	return nil
}

func printDemand(lc load.Case, d statics.Demand) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SIMPLY SUPPORTED BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", lc.Span)
	for _, pl := range lc.PointLoads {
		fmt.Fprintf(w, "  Point load:\t%.2f kN at x = %.2f m\n", pl.Magnitude, pl.Position)
	}
	for _, u := range lc.UDLs {
		fmt.Fprintf(w, "  UDL:\t%.2f kN/m over [%.2f, %.2f] m\n", u.Intensity, u.Start, u.End)
	}
	fmt.Fprintf(w, "  Total applied load:\t%.2f kN\n", lc.TotalLoad())
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Left reaction (RA):\t%.2f kN\n", d.ReactionLeft)
	fmt.Fprintf(w, "  Right reaction (RB):\t%.2f kN\n", d.ReactionRight)
	fmt.Fprintf(w, "  Max shear |V|:\t%.2f kN\n", d.MaxShear)
	fmt.Fprintf(w, "  Max moment |M|:\t%.2f kNm\n", d.MaxMoment)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  DESIGN MOMENT M_Ed = %.2f kNm     \n", d.MaxMoment)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
