package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/rcdetail/internal/baston"
	"github.com/alexiusacademia/rcdetail/internal/geometry"
)

var bastonesCmd = &cobra.Command{
	Use:   "bastones",
	Short: "Lay out cut-off bars (bastones) by zone",
	Long: `Compute the bastón segments of every span and face:

  Z1  [x0, x0+L3]        anchored to the left node
  Z2  [x0+L1, x1-L2]     mid-span
  Z3  [x1-L3, x1]        anchored to the right node

L3 defaults to L/3, L1 and L2 to L/5, snapped to 0.05 m. The inner line
(l2) sits one cover toward the centerline and is cut back by Lc at the
zone's open ends.

Examples:
  rcdetail bastones -f beam.yaml`,
	RunE: runBastones,
}

func init() {
	rootCmd.AddCommand(bastonesCmd)
}

func runBastones(cmd *cobra.Command, args []string) error {
	dev, err := loadDevelopment()
	if err != nil {
		return err
	}
	geo := geometry.New(dev)
	layout := baston.Compute(geo).Scaled(1 / geo.Scale())
	logger.Debug("Bastones laid out",
		zap.Int("segments", len(layout.Segments)),
		zap.Int("connectors", len(layout.Connectors)),
		zap.Int("ends", len(layout.Ends)))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "BASTÓN SEGMENTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	if len(layout.Segments) == 0 {
		fmt.Fprintln(out, "  (none enabled)")
		fmt.Fprintln(out)
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Span\tSide\tZone\tLine\tBars\tFrom x (m)\tTo x (m)\tLength (m)\ty (m)")
	for _, s := range layout.Segments {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%d Ø%s\t%.3f\t%.3f\t%.2f\t%.3f\n",
			s.Span+1, s.Side, s.Zone, s.Line, s.Qty, s.Diameter, s.From.X, s.To.X, s.To.X-s.From.X, s.From.Y)
	}
	w.Flush()
	fmt.Fprintln(out)

	if len(layout.Connectors)+len(layout.Ends) == 0 {
		return nil
	}
	fmt.Fprintln(out, "BASTÓN ENDS AT NODES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Node\tSide\tLine\tEnd\tKind\tLength (m)")
	for _, c := range layout.Connectors {
		fmt.Fprintf(w, "  %d\t%s\t%s\tboth\tcontinuous (joined)\t-\n", c.Node, c.Side, c.Line)
	}
	for _, e := range layout.Ends {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\t%.2f\n",
			e.Node, e.Side, e.Line, e.End, e.Termination.Kind, e.Termination.Length())
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
