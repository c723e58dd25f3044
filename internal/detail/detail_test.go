package detail

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/rcdetail/internal/anchorage"
	"github.com/alexiusacademia/rcdetail/internal/model"
	"github.com/alexiusacademia/rcdetail/internal/stirrup"
)

func singleSpan() model.Development {
	s := model.Span{
		LengthM: 3,
		HeightM: 0.5,
		WidthM:  0.25,
		Steel:   [2]model.Bars{{Qty: 2, Diameter: `5/8"`}, {Qty: 2, Diameter: `3/4"`}},
		Stirrups: model.StirrupsSpec{
			Left: stirrup.DefaultSeismic,
		},
	}
	s.Bastones[model.Bottom][model.Z2].Lines[model.Line1] = model.BastonLine{Enabled: true, Qty: 1, Diameter: `5/8"`}

	var n0 model.Node
	n0.A2, n0.B2 = 0.5, 0.5
	n0.Steel[model.Bottom][model.EndRight] = model.EndSpec{Kind: model.Hook}
	n1 := model.Node{A1: 0.5, A2: 0.5, B1: 0.5, B2: 0.5}

	return model.Development{
		Settings: model.Settings{UnitScale: 2, CoverM: 0.05, CutbackM: 0.3, HookLegM: 0.15, Y0: 1},
		Spans:    []model.Span{s},
		Nodes:    []model.Node{n0, n1},
	}
}

func findEnd(t *testing.T, ends []anchorage.NodeEnd, node int, side model.Side, end model.End) anchorage.NodeEnd {
	t.Helper()
	for _, e := range ends {
		if e.Node == node && e.Side == side && e.End == end {
			return e
		}
	}
	require.Failf(t, "missing end", "node %d %s %s", node, side, end)
	return anchorage.NodeEnd{}
}

func TestComputeGeometry(t *testing.T) {
	res := Compute(singleSpan())
	assert.Equal(t, UnitsDrawing, res.Units)
	require.Len(t, res.Spans, 1)
	require.Len(t, res.Nodes, 2)

	sp := res.Spans[0]
	assert.InDelta(t, 1.0, sp.Bottom.Start, 1e-9)
	assert.InDelta(t, 7.0, sp.Bottom.End, 1e-9)
	assert.InDelta(t, 2.0, sp.TopY, 1e-9)
	assert.InDelta(t, 1.0, sp.SoffitY, 1e-9)

	require.Len(t, sp.Bars, 2)
	assert.Equal(t, model.Top, sp.Bars[0].Side)
	assert.InDelta(t, 1.9, sp.Bars[0].From.Y, 1e-9)
	assert.InDelta(t, 1.1, sp.Bars[1].From.Y, 1e-9)
	assert.InDelta(t, 7.0, sp.Bars[1].To.X, 1e-9)

	assert.InDelta(t, 0.0, res.Nodes[0].Origin, 1e-9)
	assert.InDelta(t, 1.0, res.Nodes[0].MarkerX, 1e-9)
	assert.InDelta(t, 6.0, res.Nodes[1].Origin, 1e-9)
}

func TestComputeHookEnd(t *testing.T) {
	res := Compute(singleSpan())
	e := findEnd(t, res.Ends, 0, model.Bottom, model.EndRight)
	assert.Equal(t, model.Hook, e.Kind)
	assert.False(t, e.Joined)
	assert.InDelta(t, 1.4, e.Termination.Length(), 1e-9, "0.70 m at scale 2")
	assert.Less(t, e.Termination.End.X, e.Termination.Start.X, "drawn outward from the face")
	require.Len(t, e.Termination.Hook, 2)
	assert.InDelta(t, 0.3, e.Termination.Hook[1].Y-e.Termination.Hook[0].Y, 1e-9, "leg points up for bottom bars")

	last := findEnd(t, res.Ends, 1, model.Bottom, model.EndLeft)
	assert.Equal(t, model.Continuous, last.Kind, "continuous with no partner is anchored")
	assert.InDelta(t, 1.8, last.Termination.Length(), 1e-9)
}

func TestToRealDividesUniformly(t *testing.T) {
	res := Compute(singleSpan())
	meters := res.ToReal()
	assert.Equal(t, UnitsMeters, meters.Units)

	assert.InDelta(t, 0.5, meters.Spans[0].Bottom.Start, 1e-9)
	assert.InDelta(t, 3.5, meters.Spans[0].Bottom.End, 1e-9)
	assert.InDelta(t, 3.0, meters.Origins[1], 1e-9)

	e := findEnd(t, meters.Ends, 0, model.Bottom, model.EndRight)
	assert.InDelta(t, 0.70, e.Termination.Length(), 1e-9)
	assert.InDelta(t, 0.15, e.Termination.Hook[1].Y-e.Termination.Hook[0].Y, 1e-9)

	want := res.Spans[0].Stirrups
	got := meters.Spans[0].Stirrups
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Tag, got[i].Tag)
		for j := range want[i].Positions {
			assert.InDelta(t, want[i].Positions[j]/2, got[i].Positions[j], 1e-9)
		}
	}

	require.Len(t, meters.Bastones.Segments, len(res.Bastones.Segments))
	for i, s := range res.Bastones.Segments {
		assert.InDelta(t, s.From.X/2, meters.Bastones.Segments[i].From.X, 1e-9)
	}

	assert.Empty(t, cmp.Diff(meters, meters.ToReal(), cmpopts.EquateApprox(0, 1e-12)), "already real")
	assert.InDelta(t, 1.0, res.Spans[0].Bottom.Start, 1e-9, "source untouched")
}

func TestStats(t *testing.T) {
	st := Compute(singleSpan()).Stats()
	assert.Equal(t, 1, st.Spans)
	assert.Equal(t, 2, st.Nodes)
	assert.Equal(t, 2, st.Bars)
	assert.Equal(t, 4, st.Ends)
	assert.Zero(t, st.Joined)
	assert.Equal(t, 1, st.Segments)
	assert.Zero(t, st.Connectors)
	assert.Zero(t, st.BastonEnds, "z2 never reaches a node")
	assert.Greater(t, st.Stirrups, 0)
}

func TestComputeJoinsInteriorContinuous(t *testing.T) {
	dev := singleSpan()
	s := dev.Spans[0]
	s.Stirrups = model.StirrupsSpec{}
	dev = dev.WithSpan(0, s)
	dev.Spans = append(dev.Spans, dev.Spans[0])
	dev.Nodes = append(dev.Nodes, model.Node{A1: 0.5})

	res := Compute(dev)
	e := findEnd(t, res.Ends, 1, model.Top, model.EndLeft)
	assert.True(t, e.Joined)
	assert.Len(t, e.Connector, 2, "same depth, straight run")
	assert.Equal(t, 2, res.Stats().Joined)
	assert.Empty(t, res.Spans[0].Stirrups, "blank spec places nothing")
}

func TestComputeEmpty(t *testing.T) {
	res := Compute(model.Development{})
	assert.Empty(t, res.Spans)
	assert.Empty(t, res.Ends)
	assert.Equal(t, Stats{}, Result{}.Stats())
}
