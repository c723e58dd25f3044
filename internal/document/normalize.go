package document

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/rcdetail/internal/aci"
	"github.com/alexiusacademia/rcdetail/internal/anchorage"
	"github.com/alexiusacademia/rcdetail/internal/baston"
	"github.com/alexiusacademia/rcdetail/internal/model"
	"github.com/alexiusacademia/rcdetail/internal/rebar"
	"github.com/alexiusacademia/rcdetail/internal/stirrup"
)

// Settings defaults for keys a document leaves out.
const (
	DefaultUnitScale = 1.0
	DefaultCoverM    = 0.04
	DefaultCutbackM  = 0.30
	DefaultHookLegM  = 0.15
)

const (
	minBastonQty = 1
	maxBastonQty = 3
)

// Normalize converts a decoded document into a Development. Every fallback
// chain (new key, legacy key, default) is resolved here, once; the result has
// len(Nodes) == len(Spans)+1 and every enum resolved.
func Normalize(raw map[string]any) (model.Development, []Warning) {
	r := &reader{}
	if raw == nil {
		raw = map[string]any{}
	}

	dev := model.Development{Settings: r.settings(raw)}

	for i, s := range r.list(raw, "", "spans") {
		dev.Spans = append(dev.Spans, r.span(s, fmt.Sprintf("spans[%d]", i)))
	}

	nodes := r.list(raw, "", "nodes")
	want := len(dev.Spans) + 1
	switch {
	case len(nodes) < want:
		if len(nodes) > 0 || len(dev.Spans) > 0 {
			r.warn("nodes", "%d nodes for %d spans, padding with empty nodes", len(nodes), len(dev.Spans))
		}
		for len(nodes) < want {
			nodes = append(nodes, map[string]any{})
		}
	case len(nodes) > want:
		r.warn("nodes", "%d nodes for %d spans, dropping the extra ones", len(nodes), len(dev.Spans))
		nodes = nodes[:want]
	}
	for i, n := range nodes {
		dev.Nodes = append(dev.Nodes, r.node(n, fmt.Sprintf("nodes[%d]", i)))
	}

	return dev, r.warnings
}

func (r *reader) settings(m map[string]any) model.Settings {
	return model.Settings{
		UnitScale: r.positive(m, "", DefaultUnitScale, "unit_scale"),
		X0:        r.float(m, "", 0, "x0"),
		Y0:        r.float(m, "", 0, "y0"),
		CoverM:    r.nonNegative(m, "", DefaultCoverM, "cover_m"),
		CutbackM:  r.nonNegative(m, "", DefaultCutbackM, "cutback_Lc_m", "cutback_lc_m"),
		HookLegM:  r.nonNegative(m, "", DefaultHookLegM, "hook_leg_m"),
		Fc:        r.positive(m, "", aci.DefaultFc, "fc", "fc_kgcm2"),
		Fy:        r.positive(m, "", aci.DefaultFy, "fy", "fy_kgcm2"),
	}
}

func (r *reader) bars(m map[string]any, path string) model.Bars {
	b := model.Bars{
		Qty:      r.count(m, path, 0, "qty", "n"),
		Diameter: r.diameter(m, path, "diameter", "dia"),
	}
	if b.Qty < 0 {
		r.warn(join(path, "qty"), "negative bar count %d, using 0", b.Qty)
		b.Qty = 0
	}
	return b
}

// diameter returns the canonical table name, or the default row with a
// warning when the name is not in the table.
func (r *reader) diameter(m map[string]any, path string, keys ...string) string {
	name := r.text(m, keys...)
	if name == "" {
		return rebar.DefaultName
	}
	bar, ok := rebar.Find(name)
	if !ok {
		r.warn(join(path, keys[0]), "unknown diameter %q, using %s", name, rebar.DefaultName)
		return rebar.DefaultName
	}
	return bar.Name
}

func (r *reader) span(m map[string]any, path string) model.Span {
	s := model.Span{
		LengthM: r.nonNegative(m, path, 0, "L_m", "L"),
		HeightM: r.nonNegative(m, path, 0, "h_m", "h"),
		WidthM:  r.nonNegative(m, path, 0, "b_m", "b"),
		Steel: [2]model.Bars{
			model.Top:    r.bars(r.object(m, path, "steel_top"), join(path, "steel_top")),
			model.Bottom: r.bars(r.object(m, path, "steel_bottom"), join(path, "steel_bottom")),
		},
		RequiredAsCM2: [2]float64{
			model.Top:    r.nonNegative(m, path, 0, "as_required_top_cm2"),
			model.Bottom: r.nonNegative(m, path, 0, "as_required_bottom_cm2"),
		},
	}

	bastones := r.object(m, path, "bastones")
	for _, side := range model.Sides {
		face := r.object(bastones, join(path, "bastones"), side.String())
		for _, zone := range model.Zones {
			zpath := join(join(join(path, "bastones"), side.String()), zone.String())
			s.Bastones[side][zone] = r.bastonCfg(r.object(face, zpath, zone.String()), zpath)
		}
	}

	s.Stirrups = r.stirrups(r.object(m, path, "stirrups"), join(path, "stirrups"))

	ties := r.object(m, path, "stirrups_section")
	s.StirrupsSection = model.SectionTies{
		Diameter: r.text(ties, "diameter"),
		Qty:      r.count(ties, join(path, "stirrups_section"), 0, "qty"),
	}
	return s
}

func (r *reader) bastonCfg(m map[string]any, path string) model.BastonCfg {
	var cfg model.BastonCfg
	for _, line := range model.Lines {
		p := line.String() + "_"
		bl := model.BastonLine{
			Enabled:  r.flag(m, path, p+"enabled"),
			Qty:      r.count(m, path, minBastonQty, p+"qty"),
			Diameter: r.diameter(m, path, p+"diameter"),
		}
		if bl.Qty < minBastonQty || bl.Qty > maxBastonQty {
			r.warn(join(path, p+"qty"), "bar count %d outside %d..%d, clamping", bl.Qty, minBastonQty, maxBastonQty)
			bl.Qty = min(max(bl.Qty, minBastonQty), maxBastonQty)
		}
		cfg.Lines[line] = bl
	}
	cfg.L1M = r.override(m, path, "L1_m", "l1_m")
	cfg.L2M = r.override(m, path, "L2_m", "l2_m")
	cfg.L3M = r.override(m, path, "L3_m", "l3_m")
	return cfg
}

// override reads an optional zone length. Zero means "computed default";
// explicit values are kept raw, the layout snaps and clamps them.
func (r *reader) override(m map[string]any, path string, keys ...string) float64 {
	v := r.float(m, path, 0, keys...)
	if v < 0 {
		r.warn(join(path, keys[0]), "negative zone length %g, using default", v)
		return 0
	}
	if v > 0 && baston.Snap(v) <= 0 {
		r.warn(join(path, keys[0]), "zone length %g snaps to zero", v)
	}
	return v
}

func (r *reader) stirrups(m map[string]any, path string) model.StirrupsSpec {
	spec := model.StirrupsSpec{
		Diameter: r.text(m, "diameter"),
		Left:     r.text(m, "left_spec"),
		Center:   r.text(m, "center_spec"),
		Right:    r.text(m, "right_spec"),
	}

	switch c := strings.ToLower(r.text(m, "case_type")); c {
	case "", "symmetric":
		spec.Case = model.Symmetric
	case "asym_both":
		spec.Case = model.AsymBoth
	case "asym_one":
		spec.Case = model.AsymOne
	default:
		r.warn(join(path, "case_type"), "unknown case %q, using symmetric", c)
	}

	switch mode := strings.ToLower(r.text(m, "design_mode")); mode {
	case "", "seismic", "sismico", "sísmico":
		spec.Mode = model.Seismic
	case "gravity", "gravedad":
		spec.Mode = model.Gravity
	default:
		r.warn(join(path, "design_mode"), "unknown design mode %q, using seismic", mode)
	}

	switch end := strings.ToLower(r.text(m, "single_end")); end {
	case "", "left", "1":
		spec.SingleEnd = model.EndLeft
	case "right", "2":
		spec.SingleEnd = model.EndRight
	default:
		r.warn(join(path, "single_end"), "unknown end %q, using left", end)
	}

	def := stirrup.DefaultSpec(spec.Mode)
	switch spec.Case {
	case model.Symmetric:
		if spec.Left == "" && spec.Center == "" && spec.Right == "" {
			spec.Left = def
		}
	default:
		if spec.Left == "" {
			spec.Left = def
		}
		if spec.Right == "" {
			spec.Right = def
		}
	}

	for _, f := range []struct{ key, text string }{
		{"left_spec", spec.Left},
		{"center_spec", spec.Center},
		{"right_spec", spec.Right},
	} {
		if f.text != "" && !stirrup.ParsePattern(f.text).Valid() {
			r.warn(join(path, f.key), "unrecognized spacing %q, no stirrups will be placed from it", f.text)
		}
	}
	return spec
}

func (r *reader) node(m map[string]any, path string) model.Node {
	n := model.Node{
		A1:       r.nonNegative(m, path, 0, "a1"),
		A2:       r.nonNegative(m, path, 0, "a2"),
		B1:       r.nonNegative(m, path, 0, "b1"),
		B2:       r.nonNegative(m, path, 0, "b2"),
		ProjectA: r.flag(m, path, "project_a"),
		ProjectB: r.flag(m, path, "project_b"),
	}
	for _, side := range model.Sides {
		for _, end := range model.Ends {
			key := fmt.Sprintf("steel_%s_%d", side, end.Number())
			n.Steel[side][end] = r.endSpec(m, path, key)
			for _, line := range model.Lines {
				key := fmt.Sprintf("baston_%s_%d_%s", side, end.Number(), line)
				n.Baston[side][end][line] = r.endSpec(m, path, key)
			}
		}
	}
	return n
}

// endSpec resolves one node end from its flat keys: <prefix>_kind,
// <prefix>_to_face, <prefix>_ld_m and the legacy booleans
// <prefix>_continuous, <prefix>_hook, <prefix>_development.
func (r *reader) endSpec(m map[string]any, path, prefix string) model.EndSpec {
	explicit := strings.ToLower(r.text(m, prefix+"_kind"))
	if explicit != "" {
		if _, ok := model.ParseSteelKind(explicit); !ok {
			r.warn(join(path, prefix+"_kind"), "unknown kind %q, using legacy flags", explicit)
		}
	}
	legacy := anchorage.Legacy{
		Continuous:  r.flag(m, path, prefix+"_continuous"),
		Hook:        r.flag(m, path, prefix+"_hook"),
		Development: r.flag(m, path, prefix+"_development"),
	}
	return model.EndSpec{
		Kind:    anchorage.ResolveKind(explicit, legacy),
		ToFace:  r.flag(m, path, prefix+"_to_face"),
		LengthM: r.nonNegative(m, path, 0, prefix+"_ld_m"),
	}
}
