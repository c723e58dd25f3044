package cmd

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/rcdetail/internal/anchorage"
	"github.com/alexiusacademia/rcdetail/internal/geometry"
	"github.com/alexiusacademia/rcdetail/internal/model"
	"github.com/alexiusacademia/rcdetail/internal/rebar"
)

var anchorageTable bool

var anchorageCmd = &cobra.Command{
	Use:   "anchorage",
	Short: "Resolve longitudinal bar ends at every node",
	Long: `Print how every longitudinal bar ends at each node: continuous through
an interior node, hooked, or anchored with a straight development length.

A continuous end with no bar on the other side of the node is anchored
with the tabulated development length.

Examples:
  rcdetail anchorage -f beam.yaml

  # Print the development length table
  rcdetail anchorage --table`,
	RunE: runAnchorage,
}

func init() {
	rootCmd.AddCommand(anchorageCmd)
	anchorageCmd.Flags().BoolVar(&anchorageTable, "table", false, "Print the development length table and exit")
}

func runAnchorage(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if anchorageTable {
		printLengthTable(cmd)
		return nil
	}

	dev, err := loadDevelopment()
	if err != nil {
		return err
	}
	geo := geometry.New(dev)
	f := 1 / geo.Scale()
	ends := anchorage.NodeEnds(geo)
	logger.Debug("Node ends resolved", zap.Int("ends", len(ends)))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "LONGITUDINAL BAR ENDS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Node\tSide\tEnd\tKind\tTo face\tLength (m)\tFrom x (m)\tTo x (m)")
	for _, e := range ends {
		if e.Joined {
			path := e.Connector.Scaled(f)
			fmt.Fprintf(w, "  %d\t%s\tboth\t%s (joined)\t-\t-\t%.3f\t%.3f\n",
				e.Node, e.Side, e.Kind, path[0].X, path[len(path)-1].X)
			continue
		}
		t := e.Termination.Scaled(f)
		kind := e.Kind.String()
		if e.Kind == model.Hook && len(t.Hook) == 2 {
			kind += fmt.Sprintf(" + %.2f leg", math.Abs(t.Hook[1].Y-t.Hook[0].Y))
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%t\t%.2f\t%.3f\t%.3f\n",
			e.Node, e.Side, e.End, kind, t.ToFace, t.Length(), t.Start.X, t.End.X)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func printLengthTable(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "DEVELOPMENT LENGTHS (f'c = 210 kgf/cm², fy = 4200 kgf/cm²):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Bar\tØ (mm)\tArea (cm²)\tHook (cm)\tBottom (cm)\tTop (cm)")
	for _, b := range rebar.Bars() {
		fmt.Fprintf(w, "  %s\t%.1f\t%.2f\t%.0f\t%.0f\t%.0f\n",
			b.Name, b.DiameterMM, b.AreaCM2, b.HookCM, b.AnchorBottomCM, b.AnchorTopCM)
	}
	w.Flush()
	fmt.Fprintln(out)
}
