package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/rcdetail/internal/detail"
	"github.com/alexiusacademia/rcdetail/internal/geometry"
	"github.com/alexiusacademia/rcdetail/internal/model"
	"github.com/alexiusacademia/rcdetail/internal/stirrup"
)

var (
	colorConcrete = color.Gray{Y: 110}
	colorNode     = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	colorTop      = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	colorBottom   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	colorBaston   = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	colorStirrup  = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	colorMid      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Elevation builds the elevation plot of a detailed beam. Coordinates are
// converted to meters first.
func Elevation(res detail.Result) (*plot.Plot, error) {
	res = res.ToReal()

	p := plot.New()
	p.Title.Text = "Beam Elevation"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"

	for _, n := range res.Nodes {
		if n.Bottom.Len() <= geometry.Eps || len(res.Spans) == 0 {
			continue
		}
		soffit := minSoffit(res)
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: n.Bottom.Start, Y: soffit},
			{X: n.Bottom.End, Y: soffit},
			{X: n.Bottom.End, Y: res.Spans[0].TopY},
			{X: n.Bottom.Start, Y: res.Spans[0].TopY},
		})
		if err != nil {
			return nil, fmt.Errorf("node %d outline: %w", n.Index, err)
		}
		poly.Color = colorNode
		poly.LineStyle.Color = colorConcrete
		p.Add(poly)
	}

	for _, sp := range res.Spans {
		outline := plotter.XYs{
			{X: sp.Bottom.Start, Y: sp.SoffitY},
			{X: sp.Bottom.End, Y: sp.SoffitY},
			{X: sp.Top.End, Y: sp.TopY},
			{X: sp.Top.Start, Y: sp.TopY},
			{X: sp.Bottom.Start, Y: sp.SoffitY},
		}
		if err := addLine(p, outline, colorConcrete, 2, nil); err != nil {
			return nil, fmt.Errorf("span %d outline: %w", sp.Index, err)
		}

		for _, b := range sp.Bars {
			if err := addLine(p, plotter.XYs{{X: b.From.X, Y: b.From.Y}, {X: b.To.X, Y: b.To.Y}}, sideColor(b.Side), 1.5, nil); err != nil {
				return nil, fmt.Errorf("span %d bars: %w", sp.Index, err)
			}
		}

		for _, g := range sp.Stirrups {
			c, dashes := color.Color(colorStirrup), []vg.Length(nil)
			if g.Tag == stirrup.TagMid {
				c, dashes = colorMid, []vg.Length{vg.Points(3), vg.Points(2)}
			}
			for _, x := range g.Positions {
				if err := addLine(p, plotter.XYs{{X: x, Y: sp.SoffitY}, {X: x, Y: sp.TopY}}, c, 0.5, dashes); err != nil {
					return nil, fmt.Errorf("span %d stirrups: %w", sp.Index, err)
				}
			}
		}

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: sp.Bottom.Mid(), Y: sp.SoffitY - 0.15}},
			Labels: []string{fmt.Sprintf("span %d  L=%.2f m", sp.Index+1, sp.Bottom.Len())},
		})
		if err != nil {
			return nil, fmt.Errorf("span %d label: %w", sp.Index, err)
		}
		p.Add(lbl)
	}

	for _, e := range res.Ends {
		if err := addLine(p, polyline(e.Path()), sideColor(e.Side), 1.5, nil); err != nil {
			return nil, fmt.Errorf("node %d %s end: %w", e.Node, e.Side, err)
		}
	}

	for _, seg := range res.Bastones.Segments {
		if err := addLine(p, plotter.XYs{{X: seg.From.X, Y: seg.From.Y}, {X: seg.To.X, Y: seg.To.Y}}, colorBaston, 1.5, nil); err != nil {
			return nil, fmt.Errorf("bastón span %d: %w", seg.Span, err)
		}
	}
	for _, c := range res.Bastones.Connectors {
		if err := addLine(p, polyline(c.Path), colorBaston, 1.5, nil); err != nil {
			return nil, fmt.Errorf("bastón connector node %d: %w", c.Node, err)
		}
	}
	for _, e := range res.Bastones.Ends {
		if err := addLine(p, polyline(e.Termination.Path()), colorBaston, 1.5, nil); err != nil {
			return nil, fmt.Errorf("bastón end node %d: %w", e.Node, err)
		}
	}

	if len(res.Nodes) > 0 {
		marks := make(plotter.XYs, len(res.Nodes))
		for i, n := range res.Nodes {
			marks[i] = plotter.XY{X: n.MarkerX, Y: minSoffit(res)}
		}
		sc, err := plotter.NewScatter(marks)
		if err != nil {
			return nil, fmt.Errorf("node markers: %w", err)
		}
		sc.GlyphStyle.Color = colorConcrete
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Shape = draw.TriangleGlyph{}
		p.Add(sc)
	}

	return p, nil
}

// ExportElevation exports the elevation of a detailed beam to an image file.
// The format follows the extension (.png, .svg, .pdf); anything else is
// saved as PNG with the extension appended.
func ExportElevation(res detail.Result, filename string) error {
	p, err := Elevation(res)
	if err != nil {
		return err
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	width := 11 * vg.Inch
	height := 4 * vg.Inch

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return fmt.Errorf("failed to save elevation: %w", err)
	}
	return nil
}

func addLine(p *plot.Plot, pts plotter.XYs, c color.Color, width float64, dashes []vg.Length) error {
	if len(pts) < 2 {
		return nil
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(width)
	l.LineStyle.Color = c
	l.LineStyle.Dashes = dashes
	p.Add(l)
	return nil
}

func polyline(pl geometry.Polyline) plotter.XYs {
	out := make(plotter.XYs, len(pl))
	for i, pt := range pl {
		out[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return out
}

func sideColor(side model.Side) color.Color {
	if side == model.Top {
		return colorTop
	}
	return colorBottom
}

func minSoffit(res detail.Result) float64 {
	if len(res.Spans) == 0 {
		return 0
	}
	y := res.Spans[0].SoffitY
	for _, sp := range res.Spans[1:] {
		y = min(y, sp.SoffitY)
	}
	return y
}
