// Package baston lays out cut-off bars (bastones) in the three zones of each
// span face and joins or anchors them at the nodes.
package baston

import (
	"math"

	"github.com/alexiusacademia/rcdetail/internal/geometry"
	"github.com/alexiusacademia/rcdetail/internal/model"
)

// SnapStep is the rounding step for zone lengths, in meters.
const SnapStep = 0.05

// Snap rounds v to the nearest multiple of SnapStep.
func Snap(v float64) float64 {
	return math.Round(v/SnapStep) * SnapStep
}

// Lengths are the resolved zone lengths of one zone, in meters.
type Lengths struct {
	L1 float64 // Z2 offset from the left face
	L2 float64 // Z2 offset from the right face
	L3 float64 // Z1/Z3 length from the node face
}

// ZoneLengths resolves the lengths of a zone. Positive overrides are snapped
// and clamped to [0, spanM]; anything else takes the default: L/3 for L3 and
// L/5 for L1 and L2.
func ZoneLengths(cfg model.BastonCfg, spanM float64) Lengths {
	spanM = math.Max(0, spanM)
	return Lengths{
		L1: resolveLength(cfg.L1M, spanM/5, spanM),
		L2: resolveLength(cfg.L2M, spanM/5, spanM),
		L3: resolveLength(cfg.L3M, spanM/3, spanM),
	}
}

func resolveLength(override, def, spanM float64) float64 {
	v := def
	if override > 0 {
		v = override
	}
	return math.Min(math.Max(Snap(v), 0), spanM)
}

// ZoneExtent returns the full extent of a zone on a face in drawing units.
// Z1 hangs from the left face, Z3 from the right, Z2 sits between L1 and L2.
// The result never has negative length.
func ZoneExtent(face geometry.Range, spanM, scale float64, zone model.Zone, cfg model.BastonCfg) geometry.Range {
	l := ZoneLengths(cfg, spanM)
	x0, x1 := face.Start, face.End
	if x1 < x0 {
		x1 = x0
	}
	switch zone {
	case model.Z1:
		return geometry.Range{Start: x0, End: math.Min(x0+l.L3*scale, x1)}
	case model.Z3:
		return geometry.Range{Start: math.Max(x1-l.L3*scale, x0), End: x1}
	case model.Z2:
		start := math.Min(x0+l.L1*scale, x1)
		end := math.Max(x1-l.L2*scale, start)
		return geometry.Range{Start: start, End: end}
	}
	return geometry.Range{Start: x0, End: x0}
}

// LineExtent returns the extent of one line of a zone. The outer line spans
// the whole zone; the inner line is cut back by cutback at the zone's open
// ends. ok is false when nothing is left to draw.
func LineExtent(face geometry.Range, spanM, scale, cutbackM float64, zone model.Zone, line model.Line, cfg model.BastonCfg) (geometry.Range, bool) {
	ext := ZoneExtent(face, spanM, scale, zone, cfg)
	if line == model.Line2 {
		lc := math.Max(0, cutbackM) * scale
		switch zone {
		case model.Z1:
			ext.End -= lc
		case model.Z3:
			ext.Start += lc
		case model.Z2:
			ext.Start += lc
			ext.End -= lc
		}
	}
	if ext.End-ext.Start <= geometry.Eps {
		return geometry.Range{}, false
	}
	return ext, true
}

// LineY returns the y of a bastón line in span i. The outer line shares the
// longitudinal bar level; the inner line sits one cover further inside.
func LineY(geo *geometry.Resolver, span int, side model.Side, line model.Line) float64 {
	y := geo.BarY(span, side)
	if line == model.Line2 {
		y += geometry.Inward(side) * geo.Development().Settings.CoverM * geo.Scale()
	}
	return y
}
