package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcdetail/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rcdetail",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Reinforced Concrete Beam Detailing Engine")
		fmt.Fprintln(out, "Development lengths for f'c = 210 kgf/cm², fy = 4200 kgf/cm²")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
