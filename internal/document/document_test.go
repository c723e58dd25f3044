package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/rcdetail/internal/aci"
	"github.com/alexiusacademia/rcdetail/internal/model"
	"github.com/alexiusacademia/rcdetail/internal/stirrup"
)

const twoSpans = `
unit_scale: 100
x0: 0
y0: 3.0
cover_m: 0.05
cutback_lc_m: 0.25
hook_leg_m: 0.2
fc: 280
spans:
  - L_m: 5.0
    h_m: 0.5
    b_m: 0.25
    steel_top: {qty: 2, diameter: '5/8"'}
    steel_bottom: {qty: 3, diameter: "3/4"}
    as_required_bottom_cm2: 6.5
    bastones:
      top:
        z1: {l1_enabled: true, l1_qty: 2, l1_diameter: '1/2"', L3_m: 1.23}
        z3: {l1_enabled: "yes", l2_enabled: true, l2_qty: 5}
    stirrups:
      case_type: asym_one
      single_end: right
      design_mode: gravity
      right_spec: "1@0.05, 6@0.10, rto@0.20"
  - L: 4
    h_m: 0.6
    b_m: 0.3
    steel_top: {qty: 2}
nodes:
  - {a2: 0.3, b2: 0.3, steel_bottom_2_kind: Hook, steel_top_2_hook: true}
  - a1: 0.3
    a2: 0.3
    b1: 0.3
    b2: 0.3
    steel_bottom_1_development: true
    steel_bottom_1_continuous: true
    steel_top_2_to_face: true
    steel_top_2_ld_m: 0.9
    baston_top_2_l1_kind: anclaje
    project_a: true
`

func TestParseDocument(t *testing.T) {
	dev, warnings, err := Parse([]byte(twoSpans))
	require.NoError(t, err)

	wantSettings := model.Settings{
		UnitScale: 100, Y0: 3, CoverM: 0.05, CutbackM: 0.25, HookLegM: 0.2,
		Fc: 280, Fy: aci.DefaultFy,
	}
	assert.Empty(t, cmp.Diff(wantSettings, dev.Settings))

	require.Len(t, dev.Spans, 2)
	require.Len(t, dev.Nodes, 3, "nodes padded to spans+1")

	s0 := dev.Spans[0]
	assert.Equal(t, 5.0, s0.LengthM)
	assert.Equal(t, model.Bars{Qty: 3, Diameter: `3/4"`}, s0.Steel[model.Bottom])
	assert.Equal(t, 6.5, s0.RequiredAsCM2[model.Bottom])
	assert.Zero(t, s0.RequiredAsCM2[model.Top])

	z1 := s0.Bastones.At(model.Top, model.Z1)
	assert.Equal(t, model.BastonLine{Enabled: true, Qty: 2, Diameter: `1/2"`}, z1.Lines[model.Line1])
	assert.Equal(t, 1.23, z1.L3M, "overrides are kept raw")
	assert.False(t, z1.Lines[model.Line2].Enabled)
	assert.Equal(t, 1, z1.Lines[model.Line2].Qty, "bastón qty defaults to one")

	z3 := s0.Bastones.At(model.Top, model.Z3)
	assert.True(t, z3.Lines[model.Line1].Enabled)
	assert.Equal(t, 3, z3.Lines[model.Line2].Qty, "bastón qty clamped")

	st := s0.Stirrups
	assert.Equal(t, model.AsymOne, st.Case)
	assert.Equal(t, model.Gravity, st.Mode)
	assert.Equal(t, model.EndRight, st.SingleEnd)
	assert.Equal(t, stirrup.DefaultGravity, st.Left)
	assert.Equal(t, "1@0.05, 6@0.10, rto@0.20", st.Right)
	assert.Empty(t, st.Center)

	s1 := dev.Spans[1]
	assert.Equal(t, 4.0, s1.LengthM, "legacy L key")
	assert.Equal(t, `3/4"`, s1.Steel[model.Top].Diameter)
	assert.Equal(t, stirrup.DefaultSeismic, s1.Stirrups.Left)

	n0 := dev.Nodes[0]
	assert.Equal(t, model.Hook, n0.Steel.At(model.Bottom, model.EndRight).Kind, "explicit kind is case-insensitive")
	assert.Equal(t, model.Hook, n0.Steel.At(model.Top, model.EndRight).Kind, "legacy hook flag")

	n1 := dev.Nodes[1]
	assert.Equal(t, model.DevelopmentLength, n1.Steel.At(model.Bottom, model.EndLeft).Kind, "development beats continuous")
	assert.Equal(t, model.EndSpec{Kind: model.Continuous, ToFace: true, LengthM: 0.9}, n1.Steel.At(model.Top, model.EndRight))
	assert.Equal(t, model.DevelopmentLength, n1.Baston.At(model.Top, model.EndRight, model.Line1).Kind)
	assert.Equal(t, model.Continuous, n1.Baston.At(model.Top, model.EndRight, model.Line2).Kind)
	assert.True(t, n1.ProjectA)
	assert.False(t, n1.ProjectB)

	assert.Equal(t, model.Node{}, dev.Nodes[2])

	msgs := messages(warnings)
	assert.Contains(t, msgs, "spans[0].bastones.top.z3.l2_qty")
	assert.Contains(t, msgs, "nodes")
}

func TestParseJSON(t *testing.T) {
	dev, warnings, err := Parse([]byte(`{"unit_scale": 2, "spans": [{"L_m": 3.0}], "nodes": [{"a2": 0.5}, {"a2": 0.5}]}`))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 2.0, dev.Settings.UnitScale)
	assert.Equal(t, 0.5, dev.Nodes[1].A2)
}

func TestNormalizeDefaults(t *testing.T) {
	dev, warnings := Normalize(nil)
	assert.Empty(t, warnings)
	assert.Empty(t, dev.Spans)
	require.Len(t, dev.Nodes, 1)

	assert.Equal(t, DefaultUnitScale, dev.Settings.UnitScale)
	assert.Equal(t, DefaultCoverM, dev.Settings.CoverM)
	assert.Equal(t, DefaultCutbackM, dev.Settings.CutbackM)
	assert.Equal(t, DefaultHookLegM, dev.Settings.HookLegM)
	assert.Equal(t, aci.DefaultFc, dev.Settings.Fc)
}

func TestNormalizeToleratesBadValues(t *testing.T) {
	raw := map[string]any{
		"unit_scale": "abc",
		"cover_m":    -1,
		"fy":         "4200",
		"spans": []any{
			map[string]any{
				"L_m":       "6,5",
				"steel_top": map[string]any{"qty": 2.5, "diameter": "7/8 in"},
				"stirrups":  map[string]any{"case_type": "weird", "left_spec": "every 20cm"},
			},
			"not a span",
		},
		"nodes": []any{map[string]any{"steel_top_1_kind": "bent"}, map[string]any{}, map[string]any{}, map[string]any{}},
	}
	dev, warnings := Normalize(raw)

	assert.Equal(t, DefaultUnitScale, dev.Settings.UnitScale)
	assert.Equal(t, DefaultCoverM, dev.Settings.CoverM)
	assert.Equal(t, 4200.0, dev.Settings.Fy)

	require.Len(t, dev.Spans, 2)
	assert.Equal(t, 6.5, dev.Spans[0].LengthM)
	assert.Equal(t, model.Bars{Qty: 3, Diameter: `3/4"`}, dev.Spans[0].Steel[model.Top])
	assert.Equal(t, model.Symmetric, dev.Spans[0].Stirrups.Case)
	assert.Equal(t, "every 20cm", dev.Spans[0].Stirrups.Left, "malformed text is kept")
	assert.Equal(t, model.Continuous, dev.Nodes[0].Steel.At(model.Top, model.EndLeft).Kind)
	assert.Len(t, dev.Nodes, 3, "extra nodes dropped")

	msgs := messages(warnings)
	for _, path := range []string{
		"unit_scale", "cover_m",
		"spans[0].steel_top.qty", "spans[0].steel_top.diameter",
		"spans[0].stirrups.case_type", "spans[0].stirrups.left_spec",
		"spans[1]", "nodes[0].steel_top_1_kind", "nodes",
	} {
		assert.Contains(t, msgs, path)
	}
}

func TestNormalizeClampsHugeCounts(t *testing.T) {
	raw := map[string]any{
		"spans": []any{
			map[string]any{
				"L_m":              4.0,
				"steel_top":        map[string]any{"qty": 1e30},
				"steel_bottom":     map[string]any{"qty": "-1e30"},
				"stirrups_section": map[string]any{"qty": 5e18},
				"bastones": map[string]any{
					"top": map[string]any{"z1": map[string]any{"l1_enabled": true, "l1_qty": 1e300}},
				},
			},
		},
	}
	dev, warnings := Normalize(raw)

	s := dev.Spans[0]
	assert.Equal(t, maxCount, s.Steel[model.Top].Qty)
	assert.Equal(t, 0, s.Steel[model.Bottom].Qty)
	assert.Equal(t, maxCount, s.StirrupsSection.Qty)
	assert.Equal(t, maxBastonQty, s.Bastones[model.Top][model.Z1].Lines[model.Line1].Qty)

	msgs := messages(warnings)
	for _, path := range []string{
		"spans[0].steel_top.qty",
		"spans[0].steel_bottom.qty",
		"spans[0].stirrups_section.qty",
		"spans[0].bastones.top.z1.l1_qty",
	} {
		assert.Contains(t, msgs, path)
	}
}

func TestNormalizeIsPure(t *testing.T) {
	a, _, err := Parse([]byte(twoSpans))
	require.NoError(t, err)
	b, _, err := Parse([]byte(twoSpans))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(a, b))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoSpans), 0o644))

	dev, _, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, dev.Spans, 2)

	_, _, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read document")

	_, _, err = Parse([]byte("spans: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse document")
}

func messages(ws []Warning) string {
	var parts []string
	for _, w := range ws {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "\n")
}
