package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/rcdetail/internal/detail"
	"github.com/alexiusacademia/rcdetail/internal/diagram"
)

var (
	detailYAML    bool
	detailDrawing bool
	detailColumns int
)

var detailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Compute the full detail of a beam",
	Long: `Run every engine over the document and print a text elevation with a
summary of the generated primitives, or dump them all as YAML.

YAML output is in meters unless --drawing is given, in which case
coordinates stay in drawing units (meters x unit_scale).

Examples:
  rcdetail detail -f beam.yaml
  rcdetail detail -f beam.yaml --yaml > beam.detail.yaml`,
	RunE: runDetail,
}

func init() {
	rootCmd.AddCommand(detailCmd)

	detailCmd.Flags().BoolVar(&detailYAML, "yaml", false, "Dump every primitive as YAML")
	detailCmd.Flags().BoolVar(&detailDrawing, "drawing", false, "Keep drawing units in the YAML dump")
	detailCmd.Flags().IntVar(&detailColumns, "cols", diagram.DefaultColumns, "Width of the text elevation")
}

func runDetail(cmd *cobra.Command, args []string) error {
	dev, err := loadDevelopment()
	if err != nil {
		return err
	}
	res := detail.Compute(dev)
	st := res.Stats()
	logger.Debug("Detail computed",
		zap.Int("spans", st.Spans),
		zap.Int("ends", st.Ends),
		zap.Int("segments", st.Segments),
		zap.Int("stirrups", st.Stirrups))

	out := cmd.OutOrStdout()
	if detailYAML {
		if !detailDrawing {
			res = res.ToReal()
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode detail: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprint(out, diagram.DrawElevation(res.ToReal(), detailColumns))
	fmt.Fprintln(out)
	fmt.Fprint(out, diagram.DrawSummaryBox("DETAIL SUMMARY", []string{
		fmt.Sprintf("Spans / nodes:        %d / %d", st.Spans, st.Nodes),
		fmt.Sprintf("Longitudinal runs:    %d", st.Bars),
		fmt.Sprintf("Node ends (joined):   %d (%d)", st.Ends, st.Joined),
		fmt.Sprintf("Bastón segments:      %d", st.Segments),
		fmt.Sprintf("Bastón connectors:    %d", st.Connectors),
		fmt.Sprintf("Bastón anchorages:    %d", st.BastonEnds),
		fmt.Sprintf("Stirrups (mid-fill):  %d (%d)", st.Stirrups, st.MidStirrups),
	}))
	fmt.Fprintln(out)
	return nil
}
