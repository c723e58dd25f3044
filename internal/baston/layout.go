package baston

import (
	"github.com/alexiusacademia/rcdetail/internal/anchorage"
	"github.com/alexiusacademia/rcdetail/internal/geometry"
	"github.com/alexiusacademia/rcdetail/internal/model"
)

// Segment is one drawn bastón run.
type Segment struct {
	Span     int            `yaml:"span"`
	Side     model.Side     `yaml:"side"`
	Zone     model.Zone     `yaml:"zone"`
	Line     model.Line     `yaml:"line"`
	Qty      int            `yaml:"qty"`
	Diameter string         `yaml:"diameter"`
	From     geometry.Point `yaml:"from"`
	To       geometry.Point `yaml:"to"`
}

// Connector replaces the two node terminations when the bastones on both
// sides of a node are continuous.
type Connector struct {
	Node int               `yaml:"node"`
	Side model.Side        `yaml:"side"`
	Line model.Line        `yaml:"line"`
	Path geometry.Polyline `yaml:"path"`
}

// End is an independent termination of a Z1 or Z3 line into its node.
type End struct {
	Node        int                   `yaml:"node"`
	Side        model.Side            `yaml:"side"`
	End         model.End             `yaml:"end"`
	Line        model.Line            `yaml:"line"`
	Span        int                   `yaml:"span"`
	Zone        model.Zone            `yaml:"zone"`
	Termination anchorage.Termination `yaml:"termination"`
}

// Layout is every bastón primitive of a development.
type Layout struct {
	Segments   []Segment   `yaml:"segments"`
	Connectors []Connector `yaml:"connectors"`
	Ends       []End       `yaml:"ends"`
}

// Scaled returns a copy of l with every coordinate multiplied by f.
func (l Layout) Scaled(f float64) Layout {
	out := Layout{
		Segments:   make([]Segment, len(l.Segments)),
		Connectors: make([]Connector, len(l.Connectors)),
		Ends:       make([]End, len(l.Ends)),
	}
	for i, s := range l.Segments {
		s.From, s.To = s.From.Scaled(f), s.To.Scaled(f)
		out.Segments[i] = s
	}
	for i, c := range l.Connectors {
		c.Path = c.Path.Scaled(f)
		out.Connectors[i] = c
	}
	for i, e := range l.Ends {
		e.Termination = e.Termination.Scaled(f)
		out.Ends[i] = e
	}
	return out
}

type segmentKey struct {
	span int
	side model.Side
	zone model.Zone
	line model.Line
}

// Compute lays out every enabled bastón line, then resolves each node:
// interior nodes whose adjoining Z3/Z1 lines are both present and both
// continuous get a connector, every other line end is anchored on its own.
func Compute(geo *geometry.Resolver) Layout {
	dev := geo.Development()
	scale := geo.Scale()
	cutback := dev.Settings.CutbackM

	var out Layout
	index := make(map[segmentKey]int)

	for i, span := range dev.Spans {
		for _, side := range model.Sides {
			face := geo.SpanFace(i, side)
			for _, zone := range model.Zones {
				cfg := span.Bastones.At(side, zone)
				for _, line := range model.Lines {
					bl := cfg.Lines[line]
					if !bl.Enabled {
						continue
					}
					ext, ok := LineExtent(face, span.LengthM, scale, cutback, zone, line, cfg)
					if !ok {
						continue
					}
					y := LineY(geo, i, side, line)
					index[segmentKey{i, side, zone, line}] = len(out.Segments)
					out.Segments = append(out.Segments, Segment{
						Span:     i,
						Side:     side,
						Zone:     zone,
						Line:     line,
						Qty:      bl.Qty,
						Diameter: bl.Diameter,
						From:     geometry.Point{X: ext.Start, Y: y},
						To:       geometry.Point{X: ext.End, Y: y},
					})
				}
			}
		}
	}

	for k := 0; k < geo.NodeCount(); k++ {
		node := dev.Node(k)
		for _, side := range model.Sides {
			face := geo.NodeFace(k, side)
			for _, line := range model.Lines {
				li, hasLeft := index[segmentKey{k - 1, side, model.Z3, line}]
				ri, hasRight := index[segmentKey{k, side, model.Z1, line}]
				leftSpec := node.Baston.At(side, model.EndLeft, line)
				rightSpec := node.Baston.At(side, model.EndRight, line)

				if hasLeft && hasRight && leftSpec.Kind == model.Continuous && rightSpec.Kind == model.Continuous {
					l, r := out.Segments[li], out.Segments[ri]
					out.Connectors = append(out.Connectors, Connector{
						Node: k,
						Side: side,
						Line: line,
						Path: geometry.StepConnector(l.To.X, l.To.Y, r.From.X, r.From.Y),
					})
					continue
				}

				if hasLeft {
					seg := out.Segments[li]
					out.Ends = append(out.Ends, End{
						Node: k, Side: side, End: model.EndLeft, Line: line, Span: k - 1, Zone: model.Z3,
						Termination: anchorage.Terminate(request(dev, scale, seg, seg.To, 1, face.End, leftSpec)),
					})
				}
				if hasRight {
					seg := out.Segments[ri]
					out.Ends = append(out.Ends, End{
						Node: k, Side: side, End: model.EndRight, Line: line, Span: k, Zone: model.Z1,
						Termination: anchorage.Terminate(request(dev, scale, seg, seg.From, -1, face.Start, rightSpec)),
					})
				}
			}
		}
	}
	return out
}

func request(dev model.Development, scale float64, seg Segment, start geometry.Point, dir, farX float64, spec model.EndSpec) anchorage.Request {
	return anchorage.Request{
		Start:     start,
		Direction: dir,
		Side:      seg.Side,
		Diameter:  seg.Diameter,
		Spec:      spec,
		FarFaceX:  farX,
		Scale:     scale,
		CoverM:    dev.Settings.CoverM,
		HookLegM:  dev.Settings.HookLegM,
	}
}
