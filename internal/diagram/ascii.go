package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/rcdetail/internal/detail"
	"github.com/alexiusacademia/rcdetail/internal/geometry"
	"github.com/alexiusacademia/rcdetail/internal/model"
	"github.com/alexiusacademia/rcdetail/internal/stirrup"
)

// DefaultColumns is the elevation width used when none is given.
const DefaultColumns = 72

// Elevation glyphs
const (
	glyphBar       = '─'
	glyphBaston    = '═'
	glyphConnector = '~'
	glyphAnchor    = '>'
	glyphHook      = '┘'
	glyphNode      = '█'
	glyphBeam      = '░'
	glyphStirrup   = '|'
	glyphMid       = '*'
)

// strip maps drawing x coordinates onto a fixed number of text columns.
type strip struct {
	minX, maxX float64
	cols       int
}

func newStrip(res detail.Result, cols int) strip {
	s := strip{minX: math.Inf(1), maxX: math.Inf(-1), cols: cols}
	grow := func(x float64) {
		s.minX = math.Min(s.minX, x)
		s.maxX = math.Max(s.maxX, x)
	}
	for _, n := range res.Nodes {
		grow(n.Bottom.Start)
		grow(n.Bottom.End)
		grow(n.Top.Start)
		grow(n.Top.End)
	}
	for _, sp := range res.Spans {
		grow(sp.Bottom.Start)
		grow(sp.Bottom.End)
	}
	for _, e := range res.Ends {
		for _, p := range e.Path() {
			grow(p.X)
		}
	}
	if math.IsInf(s.minX, 0) || s.maxX-s.minX <= geometry.Eps {
		s.minX, s.maxX = 0, 1
	}
	return s
}

func (s strip) col(x float64) int {
	c := int(math.Round((x - s.minX) / (s.maxX - s.minX) * float64(s.cols-1)))
	return min(max(c, 0), s.cols-1)
}

func (s strip) row() []rune {
	r := make([]rune, s.cols)
	for i := range r {
		r[i] = ' '
	}
	return r
}

func (s strip) fill(r []rune, from, to float64, g rune) {
	a, b := s.col(math.Min(from, to)), s.col(math.Max(from, to))
	for i := a; i <= b; i++ {
		r[i] = g
	}
}

// barRow draws the longitudinal bars, bastones and node ends of one face.
func (s strip) barRow(res detail.Result, side model.Side) []rune {
	r := s.row()
	for _, sp := range res.Spans {
		for _, b := range sp.Bars {
			if b.Side == side {
				s.fill(r, b.From.X, b.To.X, glyphBar)
			}
		}
	}
	for _, seg := range res.Bastones.Segments {
		if seg.Side == side {
			s.fill(r, seg.From.X, seg.To.X, glyphBaston)
		}
	}
	for _, c := range res.Bastones.Connectors {
		if c.Side == side && len(c.Path) > 0 {
			s.fill(r, c.Path[0].X, c.Path[len(c.Path)-1].X, glyphConnector)
		}
	}
	for _, e := range res.Ends {
		if e.Side != side {
			continue
		}
		if e.Joined {
			if len(e.Connector) > 0 {
				s.fill(r, e.Connector[0].X, e.Connector[len(e.Connector)-1].X, glyphConnector)
			}
			continue
		}
		t := e.Termination
		s.fill(r, t.Start.X, t.End.X, glyphBar)
		tip := glyphAnchor
		if t.Kind == model.Hook {
			tip = glyphHook
		}
		r[s.col(t.End.X)] = tip
	}
	return r
}

// DrawElevation renders a text elevation of a detailed beam: top steel,
// concrete with nodes, stirrups and bottom steel, one row each, followed by
// node labels.
func DrawElevation(res detail.Result, cols int) string {
	if cols < 10 {
		cols = DefaultColumns
	}
	s := newStrip(res, cols)

	concrete := s.row()
	for _, sp := range res.Spans {
		s.fill(concrete, sp.Bottom.Start, sp.Bottom.End, glyphBeam)
	}
	for _, n := range res.Nodes {
		if n.Bottom.Len() > geometry.Eps {
			s.fill(concrete, n.Bottom.Start, n.Bottom.End, glyphNode)
		}
	}

	ties := s.row()
	for _, sp := range res.Spans {
		for _, g := range sp.Stirrups {
			glyph := glyphStirrup
			if g.Tag == stirrup.TagMid {
				glyph = glyphMid
			}
			for _, x := range g.Positions {
				ties[s.col(x)] = glyph
			}
		}
	}

	labels := s.row()
	for _, n := range res.Nodes {
		txt := []rune(fmt.Sprintf("N%d", n.Index))
		c := s.col(n.MarkerX)
		for i, ch := range txt {
			if c+i < len(labels) {
				labels[c+i] = ch
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  BEAM ELEVATION\n")
	sb.WriteString("  ──────────────\n\n")
	fmt.Fprintf(&sb, "  top    %s\n", string(s.barRow(res, model.Top)))
	fmt.Fprintf(&sb, "  beam   %s\n", string(concrete))
	fmt.Fprintf(&sb, "  ties   %s\n", string(ties))
	fmt.Fprintf(&sb, "  bottom %s\n", string(s.barRow(res, model.Bottom)))
	fmt.Fprintf(&sb, "         %s\n", strings.TrimRight(string(labels), " "))

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ─── = Longitudinal bar / anchorage    ═══ = Bastón\n")
	sb.WriteString("  ~~~ = Continuous through node        >, ┘ = Straight / hooked end\n")
	sb.WriteString("  ███ = Node                           |, * = Stirrup / mid stirrup\n")
	fmt.Fprintf(&sb, "  Extent %.3f to %.3f %s\n", s.minX, s.maxX, units(res))

	return sb.String()
}

func units(res detail.Result) string {
	if res.Units == detail.UnitsMeters {
		return "m"
	}
	return "drawing units"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes, which breaks on ², φ or Ø.
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
