package stirrup

import (
	"math"
	"slices"

	"github.com/alexiusacademia/rcdetail/internal/geometry"
	"github.com/alexiusacademia/rcdetail/internal/model"
)

// Group ends.
const (
	EndLeft  = "left"
	EndRight = "right"
	EndMid   = "mid"
)

// Default patterns used when a document leaves every spec blank.
const (
	DefaultSeismic = "A=0.05 b,B=8,0.100 c,C=5,0.150 R=0.250"
	DefaultGravity = "A=0.05 b,B=5,0.150 c,C=0,0.000 R=0.250"
)

// DefaultSpec returns the default pattern text for a design mode.
func DefaultSpec(mode model.DesignMode) string {
	if mode == model.Gravity {
		return DefaultGravity
	}
	return DefaultSeismic
}

// EndPatterns picks the patterns applied from the left and right faces.
//
// Symmetric mirrors the first non-blank spec. AsymBoth uses the left and
// right specs independently. AsymOne uses the spec of SingleEnd there and the
// center spec (or, if blank, the opposite end's spec) for the other end.
func EndPatterns(spec model.StirrupsSpec) (left, right Pattern) {
	switch spec.Case {
	case model.AsymBoth:
		return ParsePattern(spec.Left), ParsePattern(spec.Right)
	case model.AsymOne:
		special, other := spec.Left, spec.Right
		if spec.SingleEnd == model.EndRight {
			special, other = spec.Right, spec.Left
		}
		rest := spec.Center
		if blank(rest) {
			rest = other
		}
		if spec.SingleEnd == model.EndRight {
			return ParsePattern(rest), ParsePattern(special)
		}
		return ParsePattern(special), ParsePattern(rest)
	default:
		text := spec.Left
		for _, s := range []string{spec.Left, spec.Center, spec.Right} {
			if !blank(s) {
				text = s
				break
			}
		}
		p := ParsePattern(text)
		return p, p
	}
}

// Distribute places the stirrups of one span between its faces. Both ends are
// filled toward mid-span independently; if the gap left between them is wider
// than the smaller rest spacing, one extra stirrup tagged "mid" goes in the
// middle of the gap.
func Distribute(spec model.StirrupsSpec, face geometry.Range, scale float64) []Group {
	if scale <= 0 {
		scale = 1
	}
	if face.Empty() {
		return nil
	}
	lp, rp := EndPatterns(spec)
	mid := face.Mid()

	left := Generate(lp, face.Start, 1, mid, scale)
	right := Generate(rp, face.End, -1, mid, scale)

	lastLeft, hasLeft := extreme(left, math.Max)
	right = dropNear(right, left)
	firstRight, hasRight := extreme(right, math.Min)

	var out []Group
	for _, g := range left {
		g.End = EndLeft
		out = append(out, g)
	}
	for _, g := range right {
		g.End = EndRight
		out = append(out, g)
	}

	if hasLeft && hasRight {
		threshold := minPositive(lp.RestSpacing(), rp.RestSpacing()) * scale
		gap := firstRight - lastLeft
		if threshold > 0 && gap > threshold+geometry.Eps {
			out = append(out, Group{
				Tag:       TagMid,
				End:       EndMid,
				Positions: []float64{(lastLeft + firstRight) / 2},
			})
		}
	}
	return out
}

// Positions flattens groups into one ascending list.
func Positions(groups []Group) []float64 {
	var out []float64
	for _, g := range groups {
		out = append(out, g.Positions...)
	}
	slices.Sort(out)
	return out
}

func extreme(groups []Group, pick func(a, b float64) float64) (float64, bool) {
	var (
		v     float64
		found bool
	)
	for _, g := range groups {
		for _, x := range g.Positions {
			if !found {
				v, found = x, true
				continue
			}
			v = pick(v, x)
		}
	}
	return v, found
}

// dropNear removes positions of groups that coincide with any of ref.
func dropNear(groups, ref []Group) []Group {
	var out []Group
	for _, g := range groups {
		var keep []float64
		for _, x := range g.Positions {
			if !near(x, ref) {
				keep = append(keep, x)
			}
		}
		if len(keep) > 0 {
			g.Positions = keep
			out = append(out, g)
		}
	}
	return out
}

func near(x float64, groups []Group) bool {
	for _, g := range groups {
		for _, y := range g.Positions {
			if math.Abs(x-y) <= geometry.Eps {
				return true
			}
		}
	}
	return false
}

func minPositive(a, b float64) float64 {
	switch {
	case a > 0 && b > 0:
		return math.Min(a, b)
	case a > 0:
		return a
	case b > 0:
		return b
	}
	return 0
}
