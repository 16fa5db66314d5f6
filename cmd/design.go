package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/capacity"
	"github.com/alexiusacademia/gosteel/internal/load"
	"github.com/alexiusacademia/gosteel/internal/materials"
	"github.com/alexiusacademia/gosteel/internal/optimizer"
	"github.com/alexiusacademia/gosteel/internal/report"
	"github.com/alexiusacademia/gosteel/internal/statics"
)

var (
	designSpan         float64
	designPoints       []string
	designUDLs         []string
	designCases        []string
	designFactors      []string
	designName         string
	designMaterials    string
	designProfiles     []string
	designGrade        string
	designGammaM0      float64
	designDeflRatio    float64
	designServiceUDL   float64
	designServicePoint float64
	designSamples      int
	designXLSX         string
	designShowAll      bool
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Select the lowest-CO2 section satisfying strength and deflection",
	Long: `Run the full design pipeline: analyze the beam, check every candidate
section for bending strength and deflection, and suggest the conforming
section with the lowest embodied CO2.

Loads are given either pre-factored as plain --point/--udl flags, or as
named cases combined on the fly: declare each case with --case
"NAME=gamma", prefix its loads with the case name, and assign
combination coefficients with --factor "NAME=psi" (the combine command's
grammar).

Candidate sections come from the materials CSV. By default every profile
in the table is scanned; restrict the scan with --profiles. The
deflection check uses the closed-form full-span UDL and midspan point
formulas with the unfactored service loads given by
--service-udl/--service-point (magnitudes; either sign is accepted);
when neither is given the factored loads are used, which is
conservative.

Environment defaults (flags override): GOSTEEL_MATERIALS, GOSTEEL_GRADE,
GOSTEEL_DEFLECTION_RATIO. A .env file in the working directory is read
if present.

Examples:
  # 6 m beam, 15 kN/m UDL and 30 kN midspan load, S355 steel
  gosteel design --span 6 --udl "-15@0:6" --point "-30@3" --grade S355

  # ULS combination 1.35 G + 1.5 Q built in one step
  gosteel design --span 5 \
      --case "G=1.0" --udl "G:-10@0:5" \
      --case "Q=1.0" --point "Q:-20@2.5" \
      --factor "G=1.35" --factor "Q=1.5"

  # Restricted candidate list with an XLSX report
  gosteel design --span 5 --udl "-13.5@0:5" --point "-30@2.5" \
      --profiles "IPE 240","IPE 270","IPE 300" --xlsx ranking.xlsx`,
	RunE: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().Float64VarP(&designSpan, "span", "L", 0, "Beam span (m) [required]")
	designCmd.Flags().StringArrayVarP(&designPoints, "point", "P", nil, `Point load "P@x", or "CASE:P@x" with --case (kN at m), repeatable`)
	designCmd.Flags().StringArrayVarP(&designUDLs, "udl", "w", nil, `Distributed load "w@start:end", or "CASE:w@start:end" with --case (kN/m), repeatable`)
	designCmd.Flags().StringArrayVar(&designCases, "case", nil, `Load case "NAME=gamma", repeatable`)
	designCmd.Flags().StringArrayVarP(&designFactors, "factor", "f", nil, `Combination coefficient "NAME=psi", repeatable`)
	designCmd.Flags().StringVar(&designName, "name", "combination", "Name of the combined case")

	designCmd.Flags().StringVarP(&designMaterials, "materials", "m", "", "Materials CSV path (default $GOSTEEL_MATERIALS or data/materials.csv)")
	designCmd.Flags().StringSliceVar(&designProfiles, "profiles", nil, "Candidate profiles (default: all profiles in the table)")
	designCmd.Flags().StringVarP(&designGrade, "grade", "g", "", "Steel grade: S235, S275 or S355 (default $GOSTEEL_GRADE or S355)")
	designCmd.Flags().Float64Var(&designGammaM0, "gamma-m0", 1.0, "Partial material factor γ_M0")
	designCmd.Flags().Float64Var(&designDeflRatio, "deflection-ratio", 0, "Deflection limit ratio, e.g. 250 for L/250 (default $GOSTEEL_DEFLECTION_RATIO or 250)")
	designCmd.Flags().Float64Var(&designServiceUDL, "service-udl", 0, "Service UDL for deflection (kN/m, either sign)")
	designCmd.Flags().Float64Var(&designServicePoint, "service-point", 0, "Service midspan point load for deflection (kN, either sign)")
	designCmd.Flags().IntVarP(&designSamples, "samples", "n", statics.DefaultSamples, "Diagram sample count")
	designCmd.Flags().StringVar(&designXLSX, "xlsx", "", "Write the candidate table to an XLSX file")
	designCmd.Flags().BoolVarP(&designShowAll, "all", "a", false, "List non-conforming candidates as well")

	designCmd.MarkFlagRequired("span")
}

func runDesign(cmd *cobra.Command, args []string) error {
	lc, err := resolveDesignCase(designSpan, designCases, designFactors, designPoints, designUDLs, designName)
	if err != nil {
		return err
	}
	if len(lc.PointLoads) == 0 && len(lc.UDLs) == 0 {
		return fmt.Errorf("no loads given: provide at least one --point or --udl")
	}

	demand, err := statics.Analyze(lc, designSamples)
	if err != nil {
		return err
	}

	table, err := materials.Load(envOrFlag(designMaterials, "GOSTEEL_MATERIALS", "data/materials.csv"))
	if err != nil {
		return err
	}

	candidates := designProfiles
	if len(candidates) == 0 {
		candidates = table.Profiles()
	}

	steel := capacity.DefaultSteel()
	grade := envOrFlag(designGrade, "GOSTEEL_GRADE", "S355")
	fy, err := steel.YieldStrength(grade)
	if err != nil {
		return err
	}

	ratio := designDeflRatio
	if ratio == 0 {
		ratio = envFloatOr("GOSTEEL_DEFLECTION_RATIO", 250)
	}

	serviceUDL, servicePoint := designServiceUDL, designServicePoint
	if serviceUDL == 0 && servicePoint == 0 {
		// No service loads given: fall back to the factored loads,
		// spread UDLs over the full span and treat point loads as acting
		// at midspan. Conservative for the closed-form deflection check.
		serviceUDL = -totalUDL(lc) / lc.Span
		servicePoint = -totalPoints(lc)
	}

	res := optimizer.Select(candidates, demand, table, optimizer.Constraints{
		YieldStrength:        fy,
		GammaM0:              designGammaM0,
		DeflectionLimitRatio: ratio,
		ServiceUDL:           serviceUDL,
		ServicePoint:         servicePoint,
		Steel:                steel,
	})

	printDesign(demand, res, grade, ratio)

	if designXLSX != "" {
		if err := report.WriteXLSX(designXLSX, demand, res); err != nil {
			return err
		}
		fmt.Printf("  Report written to %s\n\n", designXLSX)
	}

	return nil
}

// resolveDesignCase builds the demand case from the flag values: plain
// pre-factored loads when no --case is declared, otherwise the named-case
// grammar combined with the given coefficients.
func resolveDesignCase(span float64, caseSpecs, factorSpecs, points, udls []string, name string) (load.Case, error) {
	if len(caseSpecs) == 0 {
		if len(factorSpecs) > 0 {
			return load.Case{}, fmt.Errorf("--factor requires --case: declare the load cases being combined")
		}
		return buildCase("design", span, points, udls)
	}

	cases, factors, err := collectCases(span, caseSpecs, points, udls, factorSpecs)
	if err != nil {
		return load.Case{}, err
	}
	return load.Combine(cases, factors, name)
}

// envOrFlag prefers the flag value, then the environment, then def.
func envOrFlag(flagValue, key, def string) string {
	if flagValue != "" {
		return flagValue
	}
	return envOr(key, def)
}

func printDesign(d statics.Demand, res optimizer.Result, grade string, ratio float64) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     LOW-CARBON STEEL SECTION SELECTION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("DEMAND:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", d.Span)
	fmt.Fprintf(w, "  M_Ed (max |M|):\t%.2f kNm\n", d.MaxMoment)
	fmt.Fprintf(w, "  V_Ed (max |V|):\t%.2f kN\n", d.MaxShear)
	fmt.Fprintf(w, "  Reactions (RA, RB):\t%.2f, %.2f kN\n", d.ReactionLeft, d.ReactionRight)
	fmt.Fprintf(w, "  Steel grade:\t%s\n", grade)
	fmt.Fprintf(w, "  Deflection limit:\tL/%.0f\n", ratio)
	w.Flush()
	fmt.Println()

	for _, sk := range res.Skipped {
		fmt.Printf("  ⚠ skipped %q: %v\n", sk.Profile, sk.Err)
	}
	if len(res.Skipped) > 0 {
		fmt.Println()
	}

	fmt.Println("CANDIDATES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Profile\tM_Rd (kNm)\tUtil.\tw (mm)\tw_lim (mm)\tMass (kg)\tCO₂ (kg)\tStatus\n")
	fmt.Fprintf(w, "  ───────\t──────────\t─────\t──────\t──────────\t─────────\t────────\t──────\n")

	rows := res.Passing
	if designShowAll {
		rows = res.Evaluations
	}
	for _, ev := range rows {
		status := "✓"
		if ev.Utilization > 1.0 {
			status = "✗ strength"
		} else if !ev.DeflectionOK {
			status = "✗ deflection"
		}
		fmt.Fprintf(w, "  %s\t%.1f\t%.1f%%\t%.2f\t%.2f\t%.1f\t%.1f\t%s\n",
			ev.Profile, ev.Resistance, ev.Utilization*100,
			ev.Deflection, ev.DeflectionLimit, ev.Mass, ev.CO2, status)
	}
	w.Flush()
	fmt.Println()

	if res.Best == nil {
		fmt.Println("  No section satisfies bending + deflection requirements.")
		fmt.Println()
		return
	}

	best := res.Best
	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  SUGGESTED SECTION: %-28s║\n", best.Profile)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Printf("  utilization = %.1f%% | deflection = %.2f mm | CO₂ = %.1f kg\n",
		best.Utilization*100, best.Deflection, best.CO2)
	fmt.Println()
}

func totalUDL(lc load.Case) float64 {
	var t float64
	for _, u := range lc.UDLs {
		t += u.Total()
	}
	return t
}

func totalPoints(lc load.Case) float64 {
	var t float64
	for _, pl := range lc.PointLoads {
		t += pl.Magnitude
	}
	return t
}
