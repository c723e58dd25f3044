package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexiusacademia/rcdetail/internal/version"
)

var (
	// Global flags
	verbose bool
	docPath string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "rcdetail",
	Short: "Reinforced concrete beam detailing engine",
	Long: `rcdetail - Reinforced Concrete Beam Detailing

A CLI tool that turns a continuous beam description (spans, nodes and
reinforcement choices) into placement geometry:

  - Node origins and span/node face coordinates
  - Longitudinal bar runs and their anchorage, hook or continuity at nodes
  - Cut-off bars (bastones) by zone, with inner-line cutback
  - Stirrup positions from the compact ABCR spacing notation
  - Reinforcement ratio checks (ρmin, ρmax) at any cut

Documents are YAML or JSON. Lengths are in meters, stresses in kgf/cm².`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   rcdetail v%-46s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Reinforced Concrete Beam Detailing                      ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Commands:")
		fmt.Fprintln(out, "    • geometry   node origins and face coordinates")
		fmt.Fprintln(out, "    • anchorage  longitudinal bar ends at every node")
		fmt.Fprintln(out, "    • bastones   cut-off bar segments by zone")
		fmt.Fprintln(out, "    • stirrups   stirrup positions per span")
		fmt.Fprintln(out, "    • check      reinforcement ratio compliance at cuts")
		fmt.Fprintln(out, "    • detail     full detail as text elevation or YAML")
		fmt.Fprintln(out, "    • plot       elevation image (PNG, SVG, PDF)")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'rcdetail --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&docPath, "file", "f", "", "Beam document (YAML or JSON)")
}
