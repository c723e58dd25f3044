package anchorage

import (
	"math"

	"github.com/alexiusacademia/rcdetail/internal/geometry"
	"github.com/alexiusacademia/rcdetail/internal/model"
	"github.com/alexiusacademia/rcdetail/internal/rebar"
)

// Request describes one bar end entering a node.
type Request struct {
	Start     geometry.Point // bar end at the span face
	Direction float64        // +1 into a node on the right, -1 on the left
	Side      model.Side
	Diameter  string
	Spec      model.EndSpec
	FarFaceX  float64 // opposite face of the node

	Scale    float64
	CoverM   float64
	HookLegM float64
}

// Termination is the resolved run of a bar from the span face into a node.
type Termination struct {
	Kind   model.SteelKind   `yaml:"kind"`
	ToFace bool              `yaml:"to_face"`
	Start  geometry.Point    `yaml:"start"`
	End    geometry.Point    `yaml:"end"`
	Hook   geometry.Polyline `yaml:"hook,omitempty"` // perpendicular leg, hooks only
}

// Length returns the straight run length in drawing units.
func (t Termination) Length() float64 {
	return math.Abs(t.End.X - t.Start.X)
}

// Path returns the straight run followed by the hook leg, if any.
func (t Termination) Path() geometry.Polyline {
	pl := geometry.Polyline{t.Start, t.End}
	if len(t.Hook) == 2 {
		pl = append(pl, t.Hook[1])
	}
	return pl
}

// Scaled returns t with every coordinate multiplied by f.
func (t Termination) Scaled(f float64) Termination {
	t.Start = t.Start.Scaled(f)
	t.End = t.End.Scaled(f)
	t.Hook = t.Hook.Scaled(f)
	return t
}

// Terminate resolves the endpoint of a bar end.
//
// With ToFace set the bar stops at the far face less the cover, never past
// that face nor behind its start. Otherwise it runs the explicit length, or
// the tabulated development length for the diameter, kind and side. Hooks get
// a perpendicular leg pointing toward the opposite bar layer.
func Terminate(req Request) Termination {
	scale := req.Scale
	if scale <= 0 {
		scale = 1
	}
	dir := 1.0
	if req.Direction < 0 {
		dir = -1
	}

	t := Termination{
		Kind:   req.Spec.Kind,
		ToFace: req.Spec.ToFace,
		Start:  req.Start,
		End:    req.Start,
	}

	if req.Spec.ToFace {
		target := req.FarFaceX - dir*req.CoverM*scale
		lo := math.Min(req.Start.X, req.FarFaceX)
		hi := math.Max(req.Start.X, req.FarFaceX)
		t.End.X = math.Min(math.Max(target, lo), hi)
	} else {
		length := req.Spec.LengthM
		if length <= 0 {
			length = rebar.Length(req.Diameter, req.Spec.Kind, req.Side)
		}
		t.End.X = req.Start.X + dir*length*scale
	}

	if req.Spec.Kind == model.Hook && req.HookLegM > 0 {
		leg := t.End
		leg.Y += geometry.Inward(req.Side) * req.HookLegM * scale
		t.Hook = geometry.Polyline{t.End, leg}
	}
	return t
}
