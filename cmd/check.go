package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/rcdetail/internal/compliance"
	"github.com/alexiusacademia/rcdetail/internal/diagram"
	"github.com/alexiusacademia/rcdetail/internal/geometry"
)

var (
	checkAt      []float64
	checkSamples int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check reinforcement ratios at cuts along the beam",
	Long: `Compare the installed steel at a cut with the reinforcement limits:

  ρmin = 14/fy
  ρmax = 0.75·ρb,  ρb = 0.85·β1·(f'c/fy)·6000/(6000+fy)

Installed area is the longitudinal bars plus every bastón line whose
extent contains the cut. Required area is the span's as_required_*_cm2,
or As,min when none is given. A face complies when ρmin ≤ ρ ≤ ρmax and
installed ≥ required.

Examples:
  # Cuts at 1.2 m and 3.5 m from the drawing origin
  rcdetail check -f beam.yaml --at 1.2 --at 3.5

  # Five evenly spaced cuts per span (the default)
  rcdetail check -f beam.yaml --samples 5`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Float64SliceVar(&checkAt, "at", nil, "Cut position x (m), repeatable")
	checkCmd.Flags().IntVarP(&checkSamples, "samples", "n", 5, "Evenly spaced cuts per span when --at is not given")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dev, err := loadDevelopment()
	if err != nil {
		return err
	}
	geo := geometry.New(dev)
	scale := geo.Scale()

	var records []compliance.Record
	if len(checkAt) > 0 {
		for _, x := range checkAt {
			rec, ok := compliance.Check(geo, x*scale)
			if !ok {
				logger.Warn("Cut falls on no span", zap.Float64("x", x))
				continue
			}
			records = append(records, rec)
		}
	} else {
		records = compliance.Sample(geo, checkSamples)
	}
	if len(records) == 0 {
		return fmt.Errorf("no cut falls on a span")
	}

	out := cmd.OutOrStdout()
	fc, fy := compliance.Materials(dev)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     REINFORCEMENT RATIO CHECK")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "  f'c = %.0f kgf/cm²   fy = %.0f kgf/cm²\n\n", fc, fy)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Span\tx (m)\tFace\tAs (cm²)\tAs,req (cm²)\tρ\tρmin\tρmax\tφMn (t·m)\tStatus")
	failing := 0
	for _, r := range records {
		for _, side := range []struct {
			name string
			face compliance.Face
		}{{"top", r.Top}, {"bottom", r.Bottom}} {
			status := "✓"
			if !side.face.Compliant {
				status = "⚠ " + reason(side.face, r)
				failing++
			}
			fmt.Fprintf(w, "  %d\t%.3f\t%s\t%.2f\t%.2f\t%.5f\t%.5f\t%.5f\t%.2f\t%s\n",
				r.Span+1, r.X/scale, side.name, side.face.AsInstalled, side.face.AsRequired,
				side.face.RhoInstalled, r.RhoMin, r.RhoMax, side.face.PhiMn, status)
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	summary := []string{
		fmt.Sprintf("Cuts checked:   %d", len(records)),
		fmt.Sprintf("Faces failing:  %d of %d", failing, 2*len(records)),
	}
	title := "ALL FACES COMPLY"
	if failing > 0 {
		title = "REINFORCEMENT DOES NOT COMPLY"
	}
	fmt.Fprint(out, diagram.DrawSummaryBox(title, summary))
	fmt.Fprintln(out)
	return nil
}

func reason(f compliance.Face, r compliance.Record) string {
	switch {
	case f.RhoInstalled < r.RhoMin-geometry.Eps:
		return "< ρmin"
	case f.RhoInstalled > r.RhoMax+geometry.Eps:
		return "> ρmax"
	default:
		return "< As,req"
	}
}
