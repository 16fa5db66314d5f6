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
	combineSpan    float64
	combineCases   []string
	combinePoints  []string
	combineUDLs    []string
	combineFactors []string
	combineName    string
	combineSamples int
	combineNoPlot  bool
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine named load cases into a design combination",
	Long: `Linearly combine named load cases into a single design combination
and analyze the result.

Each case is declared with its partial factor gamma via --case "NAME=gamma",
its loads carry the case name as a prefix, and --factor assigns the
combination coefficient psi. Each load is scaled by psi × gamma; a case
without a factor (or with factor 0) is excluded from the combination.

Examples:
  # ULS combination 1.35 G + 1.5 Q over a 5 m span
  gosteel combine --span 5 \
      --case "G=1.0" --udl "G:-10@0:5" \
      --case "Q=1.0" --point "Q:-20@2.5" \
      --factor "G=1.35" --factor "Q=1.5"`,
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().Float64VarP(&combineSpan, "span", "L", 0, "Beam span (m) [required]")
	combineCmd.Flags().StringArrayVar(&combineCases, "case", nil, `Load case "NAME=gamma", repeatable [required]`)
	combineCmd.Flags().StringArrayVarP(&combinePoints, "point", "P", nil, `Point load "CASE:P@x" (kN at m), repeatable`)
	combineCmd.Flags().StringArrayVarP(&combineUDLs, "udl", "w", nil, `Distributed load "CASE:w@start:end" (kN/m), repeatable`)
	combineCmd.Flags().StringArrayVarP(&combineFactors, "factor", "f", nil, `Combination coefficient "NAME=psi", repeatable`)
	combineCmd.Flags().StringVar(&combineName, "name", "combination", "Name of the resulting combination")
	combineCmd.Flags().IntVarP(&combineSamples, "samples", "n", statics.DefaultSamples, "Diagram sample count")
	combineCmd.Flags().BoolVar(&combineNoPlot, "no-plot", false, "Skip the ASCII diagrams")

	combineCmd.MarkFlagRequired("span")
	combineCmd.MarkFlagRequired("case")
}

func runCombine(cmd *cobra.Command, args []string) error {
	cases, factors, err := collectCases(combineSpan, combineCases, combinePoints, combineUDLs, combineFactors)
	if err != nil {
		return err
	}

	combined, err := load.Combine(cases, factors, combineName)
	if err != nil {
		return err
	}

	printCombination(cases, factors, combined)

	demand, err := statics.Analyze(combined, combineSamples)
	if err != nil {
		return err
	}
	printDemand(combined, demand)

	if !combineNoPlot {
		fmt.Println(diagram.RenderASCII(demand, diagram.DefaultASCIIOptions()))
	}
	return nil
}

// collectCases assembles the named cases and combination factors from the
// raw flag values.
func collectCases(span float64, caseSpecs, points, udls, factorSpecs []string) ([]load.Case, map[string]float64, error) {
	index := make(map[string]int, len(caseSpecs))
	cases := make([]load.Case, 0, len(caseSpecs))

	for _, spec := range caseSpecs {
		name, gamma, err := parseAssignment(spec)
		if err != nil {
			return nil, nil, fmt.Errorf("--case %w", err)
		}
		if _, dup := index[name]; dup {
			return nil, nil, fmt.Errorf("--case %q declared twice", name)
		}
		lc := load.NewCase(name, span)
		lc.Gamma = gamma
		index[name] = len(cases)
		cases = append(cases, lc)
	}

	for _, s := range points {
		name, spec, err := splitCasePrefix(s)
		if err != nil {
			return nil, nil, err
		}
		i, ok := index[name]
		if !ok {
			return nil, nil, fmt.Errorf("point load %q references undeclared case %q", s, name)
		}
		pl, err := parsePoint(spec)
		if err != nil {
			return nil, nil, err
		}
		cases[i].PointLoads = append(cases[i].PointLoads, pl)
	}

	for _, s := range udls {
		name, spec, err := splitCasePrefix(s)
		if err != nil {
			return nil, nil, err
		}
		i, ok := index[name]
		if !ok {
			return nil, nil, fmt.Errorf("UDL %q references undeclared case %q", s, name)
		}
		u, err := parseUDL(spec)
		if err != nil {
			return nil, nil, err
		}
		cases[i].UDLs = append(cases[i].UDLs, u)
	}

	factors := make(map[string]float64, len(factorSpecs))
	for _, spec := range factorSpecs {
		name, psi, err := parseAssignment(spec)
		if err != nil {
			return nil, nil, fmt.Errorf("--factor %w", err)
		}
		if _, ok := index[name]; !ok {
			return nil, nil, fmt.Errorf("--factor %q references undeclared case %q", spec, name)
		}
		factors[name] = psi
	}

	return cases, factors, nil
}

func printCombination(cases []load.Case, factors map[string]float64, combined load.Case) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     LOAD COMBINATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT CASES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Case\tγ\tψ\tLoads\n")
	fmt.Fprintf(w, "  ────\t─\t─\t─────\n")
	for _, c := range cases {
		psi, included := factors[c.Name]
		status := fmt.Sprintf("%d point, %d UDL", len(c.PointLoads), len(c.UDLs))
		if !included || psi == 0 {
			status += " (excluded)"
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%s\n", c.Name, c.Gamma, psi, status)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("COMBINED CASE %q:\n", combined.Name)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, pl := range combined.PointLoads {
		fmt.Fprintf(w, "  Point load:\t%.2f kN at x = %.2f m\n", pl.Magnitude, pl.Position)
	}
	for _, u := range combined.UDLs {
		fmt.Fprintf(w, "  UDL:\t%.2f kN/m over [%.2f, %.2f] m\n", u.Intensity, u.Start, u.End)
	}
	w.Flush()
	fmt.Println()
}
