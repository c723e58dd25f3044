package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/rcdetail/internal/detail"
	"github.com/alexiusacademia/rcdetail/internal/model"
	"github.com/alexiusacademia/rcdetail/internal/stirrup"
)

func twoSpans() model.Development {
	s := model.Span{
		LengthM: 4,
		HeightM: 0.5,
		WidthM:  0.25,
		Steel:   [2]model.Bars{{Qty: 2, Diameter: `5/8"`}, {Qty: 2, Diameter: `5/8"`}},
		Stirrups: model.StirrupsSpec{
			Left: stirrup.DefaultSeismic,
		},
	}
	s.Bastones[model.Top][model.Z1].Lines[model.Line1] = model.BastonLine{Enabled: true, Qty: 1, Diameter: `1/2"`}
	s.Bastones[model.Top][model.Z3].Lines[model.Line1] = model.BastonLine{Enabled: true, Qty: 1, Diameter: `1/2"`}

	var first model.Node
	first.A2, first.B2 = 0.3, 0.3
	first.Steel[model.Bottom][model.EndRight] = model.EndSpec{Kind: model.Hook}

	return model.Development{
		Settings: model.Settings{UnitScale: 100, CoverM: 0.05, CutbackM: 0.3, HookLegM: 0.15, Y0: 0.5},
		Spans:    []model.Span{s, s},
		Nodes: []model.Node{
			first,
			{A1: 0.3, A2: 0.3, B1: 0.3, B2: 0.3},
			{A1: 0.3, B1: 0.3},
		},
	}
}

func TestDrawSummaryBoxAligned(t *testing.T) {
	out := DrawSummaryBox("Compliance", []string{"As,min = 3.67 cm²", "φMn = 12.4 t·m"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}
	assert.Contains(t, out, "φMn = 12.4 t·m")
}

func TestDrawElevation(t *testing.T) {
	res := detail.Compute(twoSpans())
	out := DrawElevation(res, 80)

	assert.Contains(t, out, "BEAM ELEVATION")
	for _, label := range []string{"N0", "N1", "N2"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, string(glyphHook), "hooked end at the first node")
	assert.Contains(t, out, string(glyphConnector), "continuous bars through the interior node")
	assert.Contains(t, out, string(glyphBaston))
	assert.Contains(t, out, string(glyphStirrup))

	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "  top    ") || strings.HasPrefix(l, "  bottom ") {
			assert.Equal(t, 9+80, utf8.RuneCountInString(l), l)
		}
	}
}

func TestDrawElevationEmpty(t *testing.T) {
	out := DrawElevation(detail.Result{}, 0)
	assert.Contains(t, out, "BEAM ELEVATION")
}

func TestElevationPlot(t *testing.T) {
	p, err := Elevation(detail.Compute(twoSpans()))
	require.NoError(t, err)
	assert.Equal(t, "Beam Elevation", p.Title.Text)

	_, err = Elevation(detail.Result{})
	require.NoError(t, err)
}

func TestExportElevation(t *testing.T) {
	dir := t.TempDir()
	res := detail.Compute(twoSpans())

	for _, name := range []string{"beam.png", "beam.svg", filepath.Join("nested", "beam.pdf")} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportElevation(res, path))
		info, err := os.Stat(path)
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0))
	}

	require.NoError(t, ExportElevation(res, filepath.Join(dir, "beam.out")))
	_, err := os.Stat(filepath.Join(dir, "beam.out.png"))
	assert.NoError(t, err)
}
