package model

// Side selects the top or bottom face of a beam.
type Side int

const (
	Top Side = iota
	Bottom
)

// Sides lists both faces in a fixed order.
var Sides = [2]Side{Top, Bottom}

func (s Side) Valid() bool { return s == Top || s == Bottom }

func (s Side) String() string {
	if s == Bottom {
		return "bottom"
	}
	return "top"
}

// End selects the left (1) or right (2) end at a node. At node i the left end
// receives the bar of span i-1 and the right end starts span i.
type End int

const (
	EndLeft End = iota
	EndRight
)

// Ends lists both ends in a fixed order.
var Ends = [2]End{EndLeft, EndRight}

func (e End) Valid() bool { return e == EndLeft || e == EndRight }

// Number returns the 1-based end number used in documents.
func (e End) Number() int { return int(e) + 1 }

func (e End) String() string {
	if e == EndRight {
		return "right"
	}
	return "left"
}

// Line selects the outer (1) or inner (2) bastón line.
type Line int

const (
	Line1 Line = iota
	Line2
)

// Lines lists both bastón lines in a fixed order.
var Lines = [2]Line{Line1, Line2}

func (l Line) Valid() bool { return l == Line1 || l == Line2 }

// Number returns the 1-based line number used in documents.
func (l Line) Number() int { return int(l) + 1 }

func (l Line) String() string {
	if l == Line2 {
		return "l2"
	}
	return "l1"
}

// Zone selects one of the three bastón regions of a span.
type Zone int

const (
	Z1 Zone = iota // near the left node
	Z2             // mid-span
	Z3             // near the right node
)

// Zones lists the zones left to right.
var Zones = [3]Zone{Z1, Z2, Z3}

func (z Zone) Valid() bool { return z >= Z1 && z <= Z3 }

func (z Zone) String() string {
	switch z {
	case Z2:
		return "z2"
	case Z3:
		return "z3"
	default:
		return "z1"
	}
}

// SteelKind is how a bar ends at a node.
type SteelKind int

const (
	Continuous SteelKind = iota
	Hook
	DevelopmentLength
)

func (k SteelKind) String() string {
	switch k {
	case Hook:
		return "hook"
	case DevelopmentLength:
		return "development"
	default:
		return "continuous"
	}
}

// ParseSteelKind accepts the document spellings of a kind.
func ParseSteelKind(s string) (SteelKind, bool) {
	switch s {
	case "continuous", "continuo", "cont":
		return Continuous, true
	case "hook", "gancho":
		return Hook, true
	case "development", "anchorage", "anclaje", "dev":
		return DevelopmentLength, true
	}
	return Continuous, false
}

// StirrupCase selects how end specifications map to the span ends.
type StirrupCase int

const (
	Symmetric StirrupCase = iota
	AsymBoth
	AsymOne
)

func (c StirrupCase) String() string {
	switch c {
	case AsymBoth:
		return "asym_both"
	case AsymOne:
		return "asym_one"
	default:
		return "symmetric"
	}
}

// DesignMode selects default stirrup patterns.
type DesignMode int

const (
	Seismic DesignMode = iota
	Gravity
)

func (m DesignMode) String() string {
	if m == Gravity {
		return "gravity"
	}
	return "seismic"
}

// MarshalYAML encodes enums by name so dumped details stay readable.
func (s Side) MarshalYAML() (interface{}, error)        { return s.String(), nil }
func (e End) MarshalYAML() (interface{}, error)         { return e.String(), nil }
func (l Line) MarshalYAML() (interface{}, error)        { return l.String(), nil }
func (z Zone) MarshalYAML() (interface{}, error)        { return z.String(), nil }
func (k SteelKind) MarshalYAML() (interface{}, error)   { return k.String(), nil }
func (c StirrupCase) MarshalYAML() (interface{}, error) { return c.String(), nil }
func (m DesignMode) MarshalYAML() (interface{}, error)  { return m.String(), nil }
