package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcdetail/internal/geometry"
)

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Print node origins and span/node face coordinates",
	Long: `Resolve the origin chain of a beam and print, in meters:

  - the origin and marker of every node
  - the bottom (a1..a2) and top (b1..b2) faces of every node
  - the bottom and top face extents of every span

Examples:
  rcdetail geometry -f beam.yaml`,
	RunE: runGeometry,
}

func init() {
	rootCmd.AddCommand(geometryCmd)
}

func runGeometry(cmd *cobra.Command, args []string) error {
	dev, err := loadDevelopment()
	if err != nil {
		return err
	}
	geo := geometry.New(dev)
	f := 1 / geo.Scale()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "NODES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Node\tOrigin (m)\tMarker (m)\tBottom face (m)\tTop face (m)")
	for i := 0; i < geo.NodeCount(); i++ {
		bot, top := geo.NodeBottom(i).Scaled(f), geo.NodeTop(i).Scaled(f)
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f .. %.3f\t%.3f .. %.3f\n",
			i, geo.Origin(i)*f, geo.NodeMarkerX(i)*f, bot.Start, bot.End, top.Start, top.End)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "SPANS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Span\tL (m)\th x b (m)\tBottom face (m)\tTop face (m)")
	for i, s := range dev.Spans {
		bot, top := geo.SpanBottom(i).Scaled(f), geo.SpanTop(i).Scaled(f)
		fmt.Fprintf(w, "  %d\t%.2f\t%.2f x %.2f\t%.3f .. %.3f\t%.3f .. %.3f\n",
			i+1, s.LengthM, s.HeightM, s.WidthM, bot.Start, bot.End, top.Start, top.End)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
