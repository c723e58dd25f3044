package geometry

import "math"

// Eps is the tolerance used for every boundary comparison.
const Eps = 1e-6

// Point is a 2D coordinate in drawing units (Y up).
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Scaled returns p with both coordinates multiplied by f.
func (p Point) Scaled(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Range is a closed interval along the beam axis.
type Range struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Len returns the length of r, never negative.
func (r Range) Len() float64 {
	return math.Max(0, r.End-r.Start)
}

// Contains reports whether x lies in r, boundaries included within Eps.
func (r Range) Contains(x float64) bool {
	return x >= r.Start-Eps && x <= r.End+Eps
}

// Empty reports whether r has no usable length.
func (r Range) Empty() bool {
	return r.End-r.Start <= Eps
}

// Mid returns the midpoint of r.
func (r Range) Mid() float64 {
	return (r.Start + r.End) / 2
}

// Scaled returns r with both bounds multiplied by f.
func (r Range) Scaled(f float64) Range {
	return Range{Start: r.Start * f, End: r.End * f}
}

// Polyline is an ordered list of points.
type Polyline []Point

// Scaled returns a copy of pl with every point multiplied by f.
func (pl Polyline) Scaled(f float64) Polyline {
	if pl == nil {
		return nil
	}
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[i] = p.Scaled(f)
	}
	return out
}

// StepConnector joins a run ending at (xL, yL) with one starting at
// (xR, yR). When the levels differ the run crosses at the lower level and
// jogs vertically at the face of the shallower side.
func StepConnector(xL, yL, xR, yR float64) Polyline {
	if math.Abs(yL-yR) <= Eps {
		return Polyline{{X: xL, Y: yL}, {X: xR, Y: yL}}
	}
	if yL > yR {
		return Polyline{{X: xL, Y: yL}, {X: xL, Y: yR}, {X: xR, Y: yR}}
	}
	return Polyline{{X: xL, Y: yL}, {X: xR, Y: yL}, {X: xR, Y: yR}}
}
