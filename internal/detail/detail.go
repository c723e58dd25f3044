// Package detail gathers every engine output for one Development snapshot:
// geometry, longitudinal bars and their node ends, bastones and stirrups.
package detail

import (
	"github.com/alexiusacademia/rcdetail/internal/anchorage"
	"github.com/alexiusacademia/rcdetail/internal/baston"
	"github.com/alexiusacademia/rcdetail/internal/geometry"
	"github.com/alexiusacademia/rcdetail/internal/model"
	"github.com/alexiusacademia/rcdetail/internal/stirrup"
)

// Units of a Result's coordinates.
const (
	UnitsDrawing = "drawing"
	UnitsMeters  = "m"
)

// Bar is the straight run of a longitudinal bar along one face of a span.
type Bar struct {
	Side     model.Side     `yaml:"side"`
	Qty      int            `yaml:"qty"`
	Diameter string         `yaml:"diameter"`
	From     geometry.Point `yaml:"from"`
	To       geometry.Point `yaml:"to"`
}

// Span is the detail of one span.
type Span struct {
	Index    int             `yaml:"index"`
	Bottom   geometry.Range  `yaml:"bottom"`
	Top      geometry.Range  `yaml:"top"`
	TopY     float64         `yaml:"top_y"`
	SoffitY  float64         `yaml:"soffit_y"`
	Bars     []Bar           `yaml:"bars"`
	Stirrups []stirrup.Group `yaml:"stirrups"`
}

// Node is the detail of one node.
type Node struct {
	Index   int            `yaml:"index"`
	Origin  float64        `yaml:"origin"`
	MarkerX float64        `yaml:"marker_x"`
	Bottom  geometry.Range `yaml:"bottom"`
	Top     geometry.Range `yaml:"top"`
}

// Result is the full detail of a development.
type Result struct {
	Units    string              `yaml:"units"`
	Scale    float64             `yaml:"unit_scale"`
	Origins  []float64           `yaml:"origins"`
	Spans    []Span              `yaml:"spans"`
	Nodes    []Node              `yaml:"nodes"`
	Ends     []anchorage.NodeEnd `yaml:"ends"`
	Bastones baston.Layout       `yaml:"bastones"`
}

// Stats counts the primitives of a Result.
type Stats struct {
	Spans       int
	Nodes       int
	Bars        int
	Ends        int
	Joined      int
	Segments    int
	Connectors  int
	BastonEnds  int
	Stirrups    int
	MidStirrups int
}

// Compute details dev. Coordinates are in drawing units.
func Compute(dev model.Development) Result {
	geo := geometry.New(dev)
	res := Result{
		Units:    UnitsDrawing,
		Scale:    geo.Scale(),
		Origins:  geo.Origins(),
		Ends:     anchorage.NodeEnds(geo),
		Bastones: baston.Compute(geo),
	}

	for i := 0; i < geo.NodeCount(); i++ {
		res.Nodes = append(res.Nodes, Node{
			Index:   i,
			Origin:  geo.Origin(i),
			MarkerX: geo.NodeMarkerX(i),
			Bottom:  geo.NodeBottom(i),
			Top:     geo.NodeTop(i),
		})
	}

	for i, s := range dev.Spans {
		sp := Span{
			Index:   i,
			Bottom:  geo.SpanBottom(i),
			Top:     geo.SpanTop(i),
			TopY:    geo.TopY(),
			SoffitY: geo.SoffitY(i),
		}
		for _, side := range model.Sides {
			bars := s.Steel[side]
			face := geo.SpanFace(i, side)
			if bars.Qty <= 0 || face.Empty() {
				continue
			}
			y := geo.BarY(i, side)
			sp.Bars = append(sp.Bars, Bar{
				Side:     side,
				Qty:      bars.Qty,
				Diameter: bars.Diameter,
				From:     geometry.Point{X: face.Start, Y: y},
				To:       geometry.Point{X: face.End, Y: y},
			})
		}
		sp.Stirrups = stirrup.Distribute(s.Stirrups, sp.Bottom, geo.Scale())
		res.Spans = append(res.Spans, sp)
	}
	return res
}

// ToReal converts every coordinate to meters by dividing by the unit scale.
// Every primitive goes through the same factor so exported and drawn
// geometry cannot diverge.
func (r Result) ToReal() Result {
	if r.Units == UnitsMeters {
		return r
	}
	scale := r.Scale
	if scale <= 0 {
		scale = 1
	}
	f := 1 / scale

	out := Result{
		Units:    UnitsMeters,
		Scale:    r.Scale,
		Origins:  make([]float64, len(r.Origins)),
		Spans:    make([]Span, len(r.Spans)),
		Nodes:    make([]Node, len(r.Nodes)),
		Ends:     make([]anchorage.NodeEnd, len(r.Ends)),
		Bastones: r.Bastones.Scaled(f),
	}
	for i, o := range r.Origins {
		out.Origins[i] = o * f
	}
	for i, s := range r.Spans {
		s.Bottom = s.Bottom.Scaled(f)
		s.Top = s.Top.Scaled(f)
		s.TopY *= f
		s.SoffitY *= f
		bars := make([]Bar, len(s.Bars))
		for j, b := range s.Bars {
			b.From, b.To = b.From.Scaled(f), b.To.Scaled(f)
			bars[j] = b
		}
		s.Bars = bars
		groups := make([]stirrup.Group, len(s.Stirrups))
		for j, g := range s.Stirrups {
			groups[j] = g.Scaled(f)
		}
		s.Stirrups = groups
		out.Spans[i] = s
	}
	for i, n := range r.Nodes {
		n.Origin *= f
		n.MarkerX *= f
		n.Bottom = n.Bottom.Scaled(f)
		n.Top = n.Top.Scaled(f)
		out.Nodes[i] = n
	}
	for i, e := range r.Ends {
		out.Ends[i] = e.Scaled(f)
	}
	return out
}

// Stats counts the primitives of r.
func (r Result) Stats() Stats {
	st := Stats{
		Spans:      len(r.Spans),
		Nodes:      len(r.Nodes),
		Ends:       len(r.Ends),
		Segments:   len(r.Bastones.Segments),
		Connectors: len(r.Bastones.Connectors),
		BastonEnds: len(r.Bastones.Ends),
	}
	for _, e := range r.Ends {
		if e.Joined {
			st.Joined++
		}
	}
	for _, s := range r.Spans {
		st.Bars += len(s.Bars)
		for _, g := range s.Stirrups {
			st.Stirrups += len(g.Positions)
			if g.Tag == stirrup.TagMid {
				st.MidStirrups++
			}
		}
	}
	return st
}
