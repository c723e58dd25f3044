package stirrup

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/rcdetail/internal/geometry"
)

// Tags of the ABCR blocks.
const (
	TagB   = "b"
	TagC   = "c"
	TagR   = "r"
	TagMid = "mid"
	TagRto = "rto"
)

// maxPerBlock bounds a single block so a degenerate spacing cannot run away.
const maxPerBlock = 10000

// Pattern is a parsed spacing specification in either notation. The zero
// Pattern is invalid and yields no positions.
type Pattern struct {
	Text   string
	ABCR   ABCR
	Legacy []Token
	IsABCR bool
}

// ParsePattern parses ABCR text first, then the legacy grammar.
func ParsePattern(text string) Pattern {
	p := Pattern{Text: text}
	if a, ok := ParseABCR(text); ok {
		p.ABCR = a
		p.IsABCR = true
		return p
	}
	if toks, ok := ParseLegacy(text); ok {
		p.Legacy = toks
	}
	return p
}

// Valid reports whether the text parsed in either notation.
func (p Pattern) Valid() bool {
	return p.IsABCR || len(p.Legacy) > 0
}

// Canonical returns the ABCR form of p when it has one.
func (p Pattern) Canonical() (ABCR, bool) {
	if p.IsABCR {
		return p.ABCR, true
	}
	return LegacyToABCR(p.Legacy)
}

// RestSpacing returns the spacing used to fill the remaining length, or 0.
func (p Pattern) RestSpacing() float64 {
	if p.IsABCR {
		return p.ABCR.R
	}
	for _, t := range p.Legacy {
		if t.Rest {
			return t.Spacing
		}
	}
	if n := len(p.Legacy); n > 0 {
		return p.Legacy[n-1].Spacing
	}
	return 0
}

// Group is a tagged run of stirrup positions, ordered away from its face.
type Group struct {
	Tag       string    `yaml:"tag"`
	End       string    `yaml:"end"`
	Positions []float64 `yaml:"positions"`
}

// Scaled returns g with every position multiplied by f.
func (g Group) Scaled(f float64) Group {
	out := Group{Tag: g.Tag, End: g.End, Positions: make([]float64, len(g.Positions))}
	for i, x := range g.Positions {
		out.Positions[i] = x * f
	}
	return out
}

// cursor walks positions from a face toward endU.
type cursor struct {
	at    float64
	dir   float64
	endU  float64
	scale float64
}

func (c *cursor) fits(x float64) bool {
	return c.dir*(x-c.endU) <= geometry.Eps
}

// run emits up to n positions at spacing, starting one spacing past the
// cursor. n < 0 means as many as fit.
func (c *cursor) run(n int, spacingM float64) []float64 {
	step := spacingM * c.scale
	if step <= geometry.Eps || n == 0 {
		return nil
	}
	if n < 0 || n > maxPerBlock {
		n = maxPerBlock
	}
	var out []float64
	for i := 0; i < n; i++ {
		x := c.at + c.dir*float64(i+1)*step
		if !c.fits(x) {
			break
		}
		out = append(out, x)
	}
	if len(out) > 0 {
		c.at = out[len(out)-1]
	}
	return out
}

// Generate produces the positions of p from face toward endU in direction
// dir (+1 or -1). endU is inclusive. Each block starts wherever the cursor
// sits, so a block that does not fit does not stop later ones.
func Generate(p Pattern, face, dir, endU, scale float64) []Group {
	if scale <= 0 {
		scale = 1
	}
	if dir < 0 {
		dir = -1
	} else {
		dir = 1
	}
	c := &cursor{at: face, dir: dir, endU: endU, scale: scale}

	var groups []Group
	add := func(tag string, xs []float64) {
		if len(xs) > 0 {
			groups = append(groups, Group{Tag: tag, Positions: xs})
		}
	}

	if p.IsABCR {
		a := p.ABCR
		if a.BCount > 0 {
			first := face + dir*a.A*scale
			if c.fits(first) {
				c.at = first
				add(TagB, append([]float64{first}, c.run(a.BCount-1, a.B)...))
			}
		}
		add(TagC, c.run(a.CCount, a.C))
		add(TagR, c.run(-1, a.R))
		return groups
	}

	for i, t := range p.Legacy {
		if t.Rest {
			add(TagRto, c.run(-1, t.Spacing))
			continue
		}
		add(fmt.Sprintf("s%d", i+1), c.run(t.Count, t.Spacing))
	}
	return groups
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
