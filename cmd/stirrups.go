package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/rcdetail/internal/geometry"
	"github.com/alexiusacademia/rcdetail/internal/model"
	"github.com/alexiusacademia/rcdetail/internal/stirrup"
)

var (
	stirrupsSpan    int
	stirrupsPattern string
	stirrupsLength  float64
)

var stirrupsCmd = &cobra.Command{
	Use:   "stirrups",
	Short: "Distribute stirrups along each span",
	Long: `Place stirrups between the faces of each span from the ABCR notation

  A=<m> b,B=<n>,<m> c,C=<n>,<m> R=<m>

first stirrup at A, then B-count-1 more at spacing B, C-count more at
spacing C, and the rest at spacing R up to mid-span. Both ends are filled
independently; a wide gap left at mid-span gets one extra stirrup.

The legacy "1@0.05, 8@0.10, rto@0.25" notation is accepted too.

Examples:
  rcdetail stirrups -f beam.yaml
  rcdetail stirrups -f beam.yaml --span 2

  # Try a pattern on a bare 4 m span
  rcdetail stirrups --pattern "A=0.05 b,B=8,0.100 c,C=5,0.150 R=0.250" --length 4`,
	RunE: runStirrups,
}

func init() {
	rootCmd.AddCommand(stirrupsCmd)

	stirrupsCmd.Flags().IntVar(&stirrupsSpan, "span", 0, "Only this span (1-based)")
	stirrupsCmd.Flags().StringVarP(&stirrupsPattern, "pattern", "p", "", "Distribute this pattern instead of a document")
	stirrupsCmd.Flags().Float64VarP(&stirrupsLength, "length", "L", 4, "Clear span for --pattern (m)")
}

func runStirrups(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if stirrupsPattern != "" {
		p := stirrup.ParsePattern(stirrupsPattern)
		if !p.Valid() {
			return fmt.Errorf("unrecognized stirrup pattern %q", stirrupsPattern)
		}
		if stirrupsLength <= 0 {
			return fmt.Errorf("span length must be positive, got %g", stirrupsLength)
		}
		if canon, ok := p.Canonical(); ok {
			fmt.Fprintf(out, "\n  Canonical: %s\n", canon)
		}
		spec := model.StirrupsSpec{Left: stirrupsPattern}
		groups := stirrup.Distribute(spec, geometry.Range{Start: 0, End: stirrupsLength}, 1)
		printGroups(out, 1, groups)
		return nil
	}

	dev, err := loadDevelopment()
	if err != nil {
		return err
	}
	if stirrupsSpan < 0 || stirrupsSpan > len(dev.Spans) {
		return fmt.Errorf("span %d out of range (1..%d)", stirrupsSpan, len(dev.Spans))
	}
	geo := geometry.New(dev)
	f := 1 / geo.Scale()

	for i, s := range dev.Spans {
		if stirrupsSpan != 0 && stirrupsSpan != i+1 {
			continue
		}
		groups := stirrup.Distribute(s.Stirrups, geo.SpanBottom(i), geo.Scale())
		logger.Debug("Stirrups distributed", zap.Int("span", i+1), zap.Int("groups", len(groups)))

		meters := make([]stirrup.Group, len(groups))
		for j, g := range groups {
			meters[j] = g.Scaled(f)
		}
		fmt.Fprintf(out, "\n  Span %d: %s, %s", i+1, s.Stirrups.Case, s.Stirrups.Mode)
		if s.Stirrups.Diameter != "" {
			fmt.Fprintf(out, ", Ø%s", s.Stirrups.Diameter)
		}
		fmt.Fprintln(out)
		printGroups(out, i+1, meters)
	}
	return nil
}

func printGroups(out io.Writer, span int, groups []stirrup.Group) {
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	if len(groups) == 0 {
		fmt.Fprintln(out, "  (no stirrups)")
		fmt.Fprintln(out)
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Span\tEnd\tBlock\tCount\tPositions (m)")
	total := 0
	for _, g := range groups {
		xs := make([]string, len(g.Positions))
		for k, x := range g.Positions {
			xs[k] = fmt.Sprintf("%.3f", x)
		}
		total += len(g.Positions)
		fmt.Fprintf(w, "  %d\t%s\t%s\t%d\t%s\n", span, g.End, g.Tag, len(g.Positions), strings.Join(xs, " "))
	}
	w.Flush()
	fmt.Fprintf(out, "  Total: %d stirrups\n\n", total)
}
