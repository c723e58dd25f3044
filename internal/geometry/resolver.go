package geometry

import "github.com/alexiusacademia/rcdetail/internal/model"

// Resolver chains node origins and answers coordinate queries for one
// Development snapshot. It is immutable once built.
type Resolver struct {
	dev     model.Development
	scale   float64
	origins []float64
}

// New builds a Resolver for dev.
func New(dev model.Development) *Resolver {
	return &Resolver{
		dev:     dev,
		scale:   dev.Scale(),
		origins: Origins(dev),
	}
}

// Origins returns one drawing-unit origin per node. Consecutive origins
// satisfy origins[i+1] = origins[i] + (a2_i + L_i - a1_{i+1}) * scale, so the
// bottom face of every span meets the adjoining node faces exactly.
func Origins(dev model.Development) []float64 {
	if len(dev.Nodes) == 0 {
		return nil
	}
	s := dev.Scale()
	out := make([]float64, len(dev.Nodes))
	out[0] = dev.Settings.X0 * s
	for i := 0; i+1 < len(dev.Nodes); i++ {
		a2 := dev.Node(i).A2
		a1 := dev.Node(i + 1).A1
		l := dev.Span(i).LengthM
		out[i+1] = out[i] + a2*s + l*s - a1*s
	}
	return out
}

// Scale returns drawing units per meter.
func (r *Resolver) Scale() float64 { return r.scale }

// Development returns the snapshot the resolver was built from.
func (r *Resolver) Development() model.Development { return r.dev }

// Origins returns a copy of the node origins.
func (r *Resolver) Origins() []float64 {
	return append([]float64(nil), r.origins...)
}

// Origin returns the origin of node i, or 0 when out of range.
func (r *Resolver) Origin(i int) float64 {
	if i < 0 || i >= len(r.origins) {
		return 0
	}
	return r.origins[i]
}

// SpanCount returns the number of spans.
func (r *Resolver) SpanCount() int { return len(r.dev.Spans) }

// NodeCount returns the number of nodes.
func (r *Resolver) NodeCount() int { return len(r.origins) }

// SpanBottom returns the bottom-face extent of span i.
func (r *Resolver) SpanBottom(i int) Range {
	if i < 0 || i >= len(r.dev.Spans) {
		return Range{}
	}
	start := r.Origin(i) + r.dev.Node(i).A2*r.scale
	return Range{Start: start, End: start + r.dev.Span(i).LengthM*r.scale}
}

// SpanTop returns the top-face extent of span i. Beam-column joints are not
// symmetric top to bottom, so the top face uses the b offsets.
func (r *Resolver) SpanTop(i int) Range {
	if i < 0 || i >= len(r.dev.Spans) {
		return Range{}
	}
	return Range{
		Start: r.Origin(i) + r.dev.Node(i).B2*r.scale,
		End:   r.Origin(i+1) + r.dev.Node(i+1).B1*r.scale,
	}
}

// SpanFace returns the extent of span i on the given face.
func (r *Resolver) SpanFace(i int, side model.Side) Range {
	if side == model.Top {
		return r.SpanTop(i)
	}
	return r.SpanBottom(i)
}

// NodeMarkerX returns the x of the marker drawn for node i.
func (r *Resolver) NodeMarkerX(i int) float64 {
	if i < 0 || i >= len(r.origins) {
		return 0
	}
	return r.Origin(i) + r.dev.Node(i).A2*r.scale
}

// NodeBottom returns the bottom-face interval occupied by node i.
func (r *Resolver) NodeBottom(i int) Range {
	if i < 0 || i >= len(r.origins) {
		return Range{}
	}
	n := r.dev.Node(i)
	return ordered(r.Origin(i)+n.A1*r.scale, r.Origin(i)+n.A2*r.scale)
}

// NodeTop returns the top-face interval occupied by node i.
func (r *Resolver) NodeTop(i int) Range {
	if i < 0 || i >= len(r.origins) {
		return Range{}
	}
	n := r.dev.Node(i)
	return ordered(r.Origin(i)+n.B1*r.scale, r.Origin(i)+n.B2*r.scale)
}

// NodeFace returns the interval occupied by node i on the given face.
func (r *Resolver) NodeFace(i int, side model.Side) Range {
	if side == model.Top {
		return r.NodeTop(i)
	}
	return r.NodeBottom(i)
}

// TopY returns the y of the beam top, shared by every span.
func (r *Resolver) TopY() float64 {
	return r.dev.Settings.Y0 * r.scale
}

// SoffitY returns the y of the underside of span i.
func (r *Resolver) SoffitY(i int) float64 {
	return (r.dev.Settings.Y0 - r.dev.Span(i).HeightM) * r.scale
}

// BarY returns the y of the longitudinal bar axis of span i on a face.
func (r *Resolver) BarY(i int, side model.Side) float64 {
	cover := r.dev.Settings.CoverM * r.scale
	if side == model.Top {
		return r.TopY() - cover
	}
	return r.SoffitY(i) + cover
}

// Inward returns the unit y direction from a face toward the section
// centerline: down for the top face, up for the bottom face.
func Inward(side model.Side) float64 {
	if side == model.Top {
		return -1
	}
	return 1
}

func ordered(a, b float64) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}
