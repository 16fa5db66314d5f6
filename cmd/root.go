package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gosteel",
	Short: "Steel Beam Analysis and Low-Carbon Section Selection",
	Long: `gosteel - Go Steel Beam Designer

A CLI tool for the analysis of simply supported steel beams and the
selection of the lightest, lowest-embodied-carbon section that satisfies
strength and deflection requirements.

This tool helps structural engineers perform:
  - Load case modeling and design combinations
  - Reaction, shear and bending moment diagrams
  - Bending resistance and deflection checks
  - Candidate section ranking by embodied CO2

Section properties are read from a materials CSV (IPE catalog included).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosteel v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Steel Beam Designer                                  ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for simply supported steel beam analysis and")
		fmt.Println("  low-carbon section selection.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Shear and moment diagrams for mixed point and distributed loads")
		fmt.Println("    • Design combinations with per-case partial and combination factors")
		fmt.Println("    • Bending and deflection checks against an IPE section catalog")
		fmt.Println("    • Lowest embodied-CO2 conforming section suggestion")
		fmt.Println()
		fmt.Println("  Use 'gosteel --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// .env is optional; flags always override environment defaults.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// envOr returns the environment value for key, or def when unset.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envFloatOr returns the environment value for key parsed as a float, or
// def when unset or unparseable.
func envFloatOr(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
