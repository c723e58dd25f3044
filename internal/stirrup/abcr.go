// Package stirrup parses stirrup spacing notation and distributes stirrup
// positions along a span.
package stirrup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ABCR is the compact spacing notation measured from a support face: the
// first stirrup at A, BCount-1 more at spacing B, CCount more at spacing C,
// then the rest of the length at spacing R. Lengths are in meters.
type ABCR struct {
	A      float64 `yaml:"a"`
	BCount int     `yaml:"b"`
	B      float64 `yaml:"B"`
	CCount int     `yaml:"c"`
	C      float64 `yaml:"C"`
	R      float64 `yaml:"R"`
}

const num = `(\d+(?:\.\d*)?|\.\d+)`

var abcrPattern = regexp.MustCompile(
	`^\s*A\s*=\s*` + num +
		`\s+b\s*,\s*B\s*=\s*(\d+)\s*,\s*` + num +
		`\s+c\s*,\s*C\s*=\s*(\d+)\s*,\s*` + num +
		`\s+R\s*=\s*` + num + `\s*$`)

// ParseABCR parses text of the form
//
//	A=0.05 b,B=8,0.100 c,C=5,0.150 R=0.250
//
// ok is false for anything else.
func ParseABCR(text string) (ABCR, bool) {
	m := abcrPattern.FindStringSubmatch(text)
	if m == nil {
		return ABCR{}, false
	}
	var (
		out ABCR
		err error
	)
	parseF := func(s string) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = strconv.ParseFloat(s, 64)
		return v
	}
	parseI := func(s string) int {
		if err != nil {
			return 0
		}
		var v int
		v, err = strconv.Atoi(s)
		return v
	}
	out.A = parseF(m[1])
	out.BCount = parseI(m[2])
	out.B = parseF(m[3])
	out.CCount = parseI(m[4])
	out.C = parseF(m[5])
	out.R = parseF(m[6])
	if err != nil {
		return ABCR{}, false
	}
	return out, true
}

// String formats a in canonical notation. A is written with two decimals and
// spacings with three, unless more digits are needed to keep the value exact.
func (a ABCR) String() string {
	return fmt.Sprintf("A=%s b,B=%d,%s c,C=%d,%s R=%s",
		fixed(a.A, 2), a.BCount, fixed(a.B, 3), a.CCount, fixed(a.C, 3), fixed(a.R, 3))
}

func fixed(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if back, err := strconv.ParseFloat(s, 64); err == nil && back == v {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Token is one entry of the legacy comma grammar: Count bars at Spacing, or,
// when Rest is set, as many as fit at Spacing.
type Token struct {
	Count   int
	Spacing float64
	Rest    bool
}

// ParseLegacy parses the legacy grammar: comma separated "<n>@<spacing>",
// "rto@<spacing>" or a bare number meaning "rto@<number>".
func ParseLegacy(text string) ([]Token, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}
	var out []Token
	for _, raw := range strings.Split(text, ",") {
		tok := strings.ToLower(strings.TrimSpace(raw))
		if tok == "" {
			continue
		}
		head, tail, found := strings.Cut(tok, "@")
		if !found {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil || v < 0 {
				return nil, false
			}
			out = append(out, Token{Spacing: v, Rest: true})
			continue
		}
		spacing, err := strconv.ParseFloat(strings.TrimSpace(tail), 64)
		if err != nil || spacing < 0 {
			return nil, false
		}
		head = strings.TrimSpace(head)
		if head == "rto" || head == "r" {
			out = append(out, Token{Spacing: spacing, Rest: true})
			continue
		}
		n, err := strconv.Atoi(head)
		if err != nil || n < 0 {
			return nil, false
		}
		out = append(out, Token{Count: n, Spacing: spacing})
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// LegacyToABCR converts tokens of the form 1@A[, N@B][, rto@R] into ABCR.
func LegacyToABCR(tokens []Token) (ABCR, bool) {
	if len(tokens) == 0 || tokens[0].Rest || tokens[0].Count != 1 {
		return ABCR{}, false
	}
	out := ABCR{A: tokens[0].Spacing, BCount: 1}
	rest := tokens[1:]
	if len(rest) > 0 && !rest[0].Rest {
		out.BCount = rest[0].Count + 1
		out.B = rest[0].Spacing
		rest = rest[1:]
	}
	if len(rest) > 0 && rest[0].Rest {
		out.R = rest[0].Spacing
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return ABCR{}, false
	}
	return out, true
}
