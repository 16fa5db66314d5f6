package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/materials"
)

var (
	sectionsMaterials string
	sectionsProfile   string
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the section catalog",
	Long: `List the profiles available in the materials CSV, or show the full
properties of a single profile.

Examples:
  gosteel sections
  gosteel sections --profile "IPE 300"`,
	RunE: runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)

	sectionsCmd.Flags().StringVarP(&sectionsMaterials, "materials", "m", "", "Materials CSV path (default $GOSTEEL_MATERIALS or data/materials.csv)")
	sectionsCmd.Flags().StringVarP(&sectionsProfile, "profile", "p", "", "Show a single profile in detail")
}

func runSections(cmd *cobra.Command, args []string) error {
	table, err := materials.Load(envOrFlag(sectionsMaterials, "GOSTEEL_MATERIALS", "data/materials.csv"))
	if err != nil {
		return err
	}

	if sectionsProfile != "" {
		sec, err := table.Section(sectionsProfile)
		if err != nil {
			return err
		}

		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Profile:\t%s\n", sec.Profile)
		fmt.Fprintf(w, "  Mass per metre:\t%.1f kg/m\n", sec.MassPerMeter)
		fmt.Fprintf(w, "  Area (A):\t%.2f cm²\n", sec.Area*1e4)
		fmt.Fprintf(w, "  Second moment (I):\t%.0f cm⁴\n", sec.SecondMoment*1e8)
		fmt.Fprintf(w, "  Section modulus (W):\t%.0f cm³\n", sec.SectionModulus*1e6)
		fmt.Fprintf(w, "  Density:\t%.0f kg/m³\n", sec.Density)
		fmt.Fprintf(w, "  Emission factor:\t%.2f kg CO₂/kg\n", sec.EmissionFactor)
		w.Flush()
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Printf("  %d profiles loaded:\n\n", table.Len())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Profile\tkg/m\tI (cm⁴)\tW (cm³)\n")
	fmt.Fprintf(w, "  ───────\t────\t───────\t───────\n")
	for _, name := range table.Profiles() {
		sec, err := table.Section(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "  %s\t%.1f\t%.0f\t%.0f\n",
			sec.Profile, sec.MassPerMeter, sec.SecondMoment*1e8, sec.SectionModulus*1e6)
	}
	w.Flush()
	fmt.Println()
	return nil
}
