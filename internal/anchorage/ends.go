package anchorage

import (
	"github.com/alexiusacademia/rcdetail/internal/geometry"
	"github.com/alexiusacademia/rcdetail/internal/model"
)

// NodeEnd is the resolved end of a longitudinal bar at a node. When Joined is
// set the bars of both adjoining spans run through the node as one connector
// and no separate right-end entry is produced.
type NodeEnd struct {
	Node        int               `yaml:"node"`
	Side        model.Side        `yaml:"side"`
	End         model.End         `yaml:"end"`
	Kind        model.SteelKind   `yaml:"kind"`
	Joined      bool              `yaml:"joined"`
	Termination Termination       `yaml:"termination,omitempty"`
	Connector   geometry.Polyline `yaml:"connector,omitempty"`
}

// Path returns the drawable run of the end.
func (e NodeEnd) Path() geometry.Polyline {
	if e.Joined {
		return e.Connector
	}
	return e.Termination.Path()
}

// Scaled returns e with every coordinate multiplied by f.
func (e NodeEnd) Scaled(f float64) NodeEnd {
	e.Termination = e.Termination.Scaled(f)
	e.Connector = e.Connector.Scaled(f)
	return e
}

// NodeEnds resolves every longitudinal bar end of the development, node by
// node, top face first.
func NodeEnds(geo *geometry.Resolver) []NodeEnd {
	dev := geo.Development()
	var out []NodeEnd
	for i := 0; i < geo.NodeCount(); i++ {
		node := dev.Node(i)
		for _, side := range model.Sides {
			hasLeft := i-1 >= 0 && i-1 < len(dev.Spans) && dev.Span(i-1).Steel[side].Qty > 0
			hasRight := i < len(dev.Spans) && dev.Span(i).Steel[side].Qty > 0

			left := node.Steel.At(side, model.EndLeft)
			right := node.Steel.At(side, model.EndRight)

			if hasLeft && hasRight && left.Kind == model.Continuous && right.Kind == model.Continuous {
				out = append(out, NodeEnd{
					Node:   i,
					Side:   side,
					End:    model.EndLeft,
					Kind:   model.Continuous,
					Joined: true,
					Connector: geometry.StepConnector(
						geo.SpanFace(i-1, side).End, geo.BarY(i-1, side),
						geo.SpanFace(i, side).Start, geo.BarY(i, side),
					),
				})
				continue
			}

			if hasLeft {
				out = append(out, endAt(geo, i, side, model.EndLeft, left, dev.Span(i-1).Steel[side].Diameter))
			}
			if hasRight {
				out = append(out, endAt(geo, i, side, model.EndRight, right, dev.Span(i).Steel[side].Diameter))
			}
		}
	}
	return out
}

func endAt(geo *geometry.Resolver, node int, side model.Side, end model.End, spec model.EndSpec, diameter string) NodeEnd {
	req := FaceRequest(geo, node, side, end)
	req.Spec = spec
	req.Diameter = diameter
	return NodeEnd{
		Node:        node,
		Side:        side,
		End:         end,
		Kind:        spec.Kind,
		Termination: Terminate(req),
	}
}

// FaceRequest prepares a Request for the longitudinal bar level of the span
// adjoining node at the given end. Spec and Diameter are left to the caller.
func FaceRequest(geo *geometry.Resolver, node int, side model.Side, end model.End) Request {
	dev := geo.Development()
	req := Request{
		Side:     side,
		Scale:    geo.Scale(),
		CoverM:   dev.Settings.CoverM,
		HookLegM: dev.Settings.HookLegM,
	}
	nodeFace := geo.NodeFace(node, side)
	if end == model.EndLeft {
		req.Start = geometry.Point{X: geo.SpanFace(node-1, side).End, Y: geo.BarY(node-1, side)}
		req.Direction = 1
		req.FarFaceX = nodeFace.End
	} else {
		req.Start = geometry.Point{X: geo.SpanFace(node, side).Start, Y: geo.BarY(node, side)}
		req.Direction = -1
		req.FarFaceX = nodeFace.Start
	}
	return req
}
