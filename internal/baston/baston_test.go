package baston

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/rcdetail/internal/geometry"
	"github.com/alexiusacademia/rcdetail/internal/model"
)

func TestSnap(t *testing.T) {
	assert.InDelta(t, 1.00, Snap(3.0/3), 1e-9)
	assert.InDelta(t, 0.95, Snap(0.93), 1e-9)
	assert.InDelta(t, 0.90, Snap(0.92), 1e-9)
	assert.InDelta(t, 1.35, Snap(4.0/3), 1e-9)
}

func TestDefaultZ1Length(t *testing.T) {
	face := geometry.Range{Start: 0, End: 3}
	z1 := ZoneExtent(face, 3.0, 1, model.Z1, model.BastonCfg{})
	assert.InDelta(t, 1.00, z1.Len(), geometry.Eps)
	assert.InDelta(t, 0.0, z1.Start, geometry.Eps)
}

func TestZoneLengthsOverrides(t *testing.T) {
	l := ZoneLengths(model.BastonCfg{L1M: 0.72, L2M: -1, L3M: 9}, 3.0)
	assert.InDelta(t, 0.70, l.L1, 1e-9)
	assert.InDelta(t, 0.60, l.L2, 1e-9, "negative override takes the L/5 default")
	assert.InDelta(t, 3.0, l.L3, 1e-9, "clamped to the span")
}

func TestZoneExtentsScaleAndMirror(t *testing.T) {
	face := geometry.Range{Start: 10, End: 70}
	cfg := model.BastonCfg{L3M: 1.2}
	z1 := ZoneExtent(face, 3.0, 20, model.Z1, cfg)
	z3 := ZoneExtent(face, 3.0, 20, model.Z3, cfg)
	assert.InDelta(t, 34.0, z1.End, geometry.Eps)
	assert.InDelta(t, 46.0, z3.Start, geometry.Eps)
	assert.InDelta(t, z1.Len(), z3.Len(), geometry.Eps)
}

func TestZoneOrdering(t *testing.T) {
	for _, spanM := range []float64{2.0, 3.0, 4.5, 6.0, 8.25} {
		for _, l1 := range []float64{0, 0.5, 1.0, 1.5} {
			for _, l3 := range []float64{0, 0.25, 0.5, 1.0} {
				cfg := model.BastonCfg{L1M: l1, L2M: l1, L3M: l3}
				l := ZoneLengths(cfg, spanM)
				if l.L1+l.L2 > spanM || 2*l.L3 > spanM {
					continue
				}
				name := fmt.Sprintf("L=%.2f L1=%.2f L3=%.2f", spanM, l1, l3)
				face := geometry.Range{Start: 5, End: 5 + spanM*10}
				z1 := ZoneExtent(face, spanM, 10, model.Z1, cfg)
				z2 := ZoneExtent(face, spanM, 10, model.Z2, cfg)
				z3 := ZoneExtent(face, spanM, 10, model.Z3, cfg)

				for _, z := range []geometry.Range{z1, z2, z3} {
					assert.GreaterOrEqual(t, z.End-z.Start, 0.0, name)
				}
				assert.LessOrEqual(t, z2.Start, z2.End+geometry.Eps, name)
				assert.LessOrEqual(t, z1.End, z3.Start+geometry.Eps, name)
				if l.L3 <= l.L1 && l.L3 <= l.L2 {
					assert.LessOrEqual(t, z1.End, z2.Start+geometry.Eps, name)
					assert.LessOrEqual(t, z2.End, z3.Start+geometry.Eps, name)
				}
			}
		}
	}
}

func TestZ2NeverNegative(t *testing.T) {
	face := geometry.Range{Start: 0, End: 3}
	z2 := ZoneExtent(face, 3.0, 1, model.Z2, model.BastonCfg{L1M: 2, L2M: 2})
	assert.Zero(t, z2.Len())
}

func TestInnerLineCutback(t *testing.T) {
	face := geometry.Range{Start: 0, End: 4}
	cfg := model.BastonCfg{}

	z1, ok := LineExtent(face, 4, 1, 0.3, model.Z1, model.Line2, cfg)
	require.True(t, ok)
	assert.InDelta(t, 1.35-0.3, z1.End, geometry.Eps)
	assert.InDelta(t, 0, z1.Start, geometry.Eps)

	z3, ok := LineExtent(face, 4, 1, 0.3, model.Z3, model.Line2, cfg)
	require.True(t, ok)
	assert.InDelta(t, 4-1.35+0.3, z3.Start, geometry.Eps)
	assert.InDelta(t, 4, z3.End, geometry.Eps)

	z2, ok := LineExtent(face, 4, 1, 0.3, model.Z2, model.Line2, cfg)
	require.True(t, ok)
	assert.InDelta(t, 0.8+0.3, z2.Start, geometry.Eps)
	assert.InDelta(t, 3.2-0.3, z2.End, geometry.Eps)

	outer, ok := LineExtent(face, 4, 1, 0.3, model.Z2, model.Line1, cfg)
	require.True(t, ok)
	assert.InDelta(t, 0.8, outer.Start, geometry.Eps)
}

func TestInnerLineVanishes(t *testing.T) {
	face := geometry.Range{Start: 0, End: 4}
	_, ok := LineExtent(face, 4, 1, 0.3, model.Z1, model.Line2, model.BastonCfg{L3M: 0.2})
	assert.False(t, ok)
	_, ok = LineExtent(face, 4, 1, 0.3, model.Z1, model.Line2, model.BastonCfg{L3M: 0.3})
	assert.False(t, ok, "exactly the cutback leaves nothing")
}

func layoutFixture() model.Development {
	enabled := func(d string) model.BastonLine { return model.BastonLine{Enabled: true, Qty: 2, Diameter: d} }
	pair := model.BastonCfg{Lines: [2]model.BastonLine{enabled(`1/2"`), enabled(`1/2"`)}}

	dev := model.Development{
		Settings: model.Settings{UnitScale: 1, CoverM: 0.05, CutbackM: 0.3, HookLegM: 0.15},
		Spans:    []model.Span{{LengthM: 3, HeightM: 0.5}, {LengthM: 4, HeightM: 0.6}},
		Nodes:    []model.Node{{A2: 0.3, B2: 0.3}, {A2: 0.3, B2: 0.3}, {A2: 0.3, B2: 0.3}},
	}
	dev.Spans[0].Bastones[model.Top][model.Z3] = pair
	dev.Spans[1].Bastones[model.Top][model.Z1] = pair
	dev.Spans[1].Bastones[model.Bottom][model.Z2] = pair
	dev.Nodes[1].Baston[model.Top][model.EndLeft][model.Line2] = model.EndSpec{Kind: model.Hook}
	dev.Nodes[1].Baston[model.Top][model.EndRight][model.Line2] = model.EndSpec{Kind: model.Hook}
	return dev
}

func TestComputeLayout(t *testing.T) {
	geo := geometry.New(layoutFixture())
	l := Compute(geo)

	require.Len(t, l.Segments, 6)
	require.Len(t, l.Connectors, 1)
	require.Len(t, l.Ends, 2)

	c := l.Connectors[0]
	assert.Equal(t, 1, c.Node)
	assert.Equal(t, model.Line1, c.Line)
	require.Len(t, c.Path, 2)
	assert.InDelta(t, 3.3, c.Path[0].X, geometry.Eps)
	assert.InDelta(t, 3.6, c.Path[1].X, geometry.Eps)

	left, right := l.Ends[0], l.Ends[1]
	assert.Equal(t, model.EndLeft, left.End)
	assert.Equal(t, model.Z3, left.Zone)
	assert.InDelta(t, 3.3+0.45, left.Termination.End.X, geometry.Eps)
	assert.Equal(t, model.EndRight, right.End)
	assert.InDelta(t, 3.6-0.45, right.Termination.End.X, geometry.Eps)
	require.Len(t, right.Termination.Hook, 2)
	assert.InDelta(t, -0.10-0.15, right.Termination.Hook[1].Y, geometry.Eps, "top hook turns down")

	var z2 []Segment
	for _, s := range l.Segments {
		if s.Zone == model.Z2 {
			z2 = append(z2, s)
		}
	}
	require.Len(t, z2, 2)
	assert.InDelta(t, 4.4, z2[0].From.X, geometry.Eps)
	assert.InDelta(t, 6.8, z2[0].To.X, geometry.Eps)
	assert.InDelta(t, 4.7, z2[1].From.X, geometry.Eps)
	assert.InDelta(t, 6.5, z2[1].To.X, geometry.Eps)
	assert.Greater(t, z2[1].From.Y, z2[0].From.Y, "bottom inner line sits above the outer one")
}

func TestComputeDisabledSideAnchorsIndependently(t *testing.T) {
	dev := layoutFixture()
	dev.Spans[1].Bastones[model.Top][model.Z1].Lines[model.Line1].Enabled = false
	l := Compute(geometry.New(dev))

	assert.Empty(t, l.Connectors)
	var lineOneEnds int
	for _, e := range l.Ends {
		if e.Line == model.Line1 {
			lineOneEnds++
			assert.Equal(t, model.Continuous, e.Termination.Kind)
			assert.InDelta(t, 3.3+0.75, e.Termination.End.X, geometry.Eps, "top anchorage of 1/2\"")
		}
	}
	assert.Equal(t, 1, lineOneEnds)
}

func TestComputeToFaceClip(t *testing.T) {
	dev := layoutFixture()
	dev.Nodes[1].Baston[model.Top][model.EndLeft][model.Line2] = model.EndSpec{Kind: model.DevelopmentLength, ToFace: true}
	l := Compute(geometry.New(dev))
	require.NotEmpty(t, l.Ends)
	assert.InDelta(t, 3.6-0.05, l.Ends[0].Termination.End.X, geometry.Eps)
}

func TestLayoutScaled(t *testing.T) {
	l := Compute(geometry.New(layoutFixture()))
	half := l.Scaled(0.5)
	require.Len(t, half.Segments, len(l.Segments))
	assert.InDelta(t, l.Segments[0].To.X/2, half.Segments[0].To.X, geometry.Eps)
	assert.InDelta(t, l.Connectors[0].Path[1].X/2, half.Connectors[0].Path[1].X, geometry.Eps)
	assert.InDelta(t, l.Ends[1].Termination.End.X/2, half.Ends[1].Termination.End.X, geometry.Eps)
}
