package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/rcdetail/internal/detail"
	"github.com/alexiusacademia/rcdetail/internal/diagram"
)

var plotOutput string

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Export the beam elevation as an image",
	Long: `Draw the detailed elevation (concrete outline, nodes, longitudinal bars,
anchorages, bastones and stirrups) in meters. The format follows the
output extension: .png, .svg or .pdf.

Examples:
  rcdetail plot -f beam.yaml -o beam.png
  rcdetail plot -f beam.yaml -o out/beam.svg`,
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "elevation.png", "Output image file")
}

func runPlot(cmd *cobra.Command, args []string) error {
	dev, err := loadDevelopment()
	if err != nil {
		return err
	}
	if err := diagram.ExportElevation(detail.Compute(dev), plotOutput); err != nil {
		return err
	}
	logger.Info("Elevation exported", zap.String("file", plotOutput))
	fmt.Fprintf(cmd.OutOrStdout(), "  Elevation saved to %s\n", plotOutput)
	return nil
}
