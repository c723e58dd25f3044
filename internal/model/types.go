package model

// Development is a normalized snapshot of a continuous beam: an ordered run of
// spans separated by nodes (columns or supports). The engine only reads it.
//
// Lengths are in meters unless a field says otherwise. Drawing coordinates
// are meters multiplied by UnitScale.
type Development struct {
	Settings Settings
	Spans    []Span
	Nodes    []Node // len(Nodes) == len(Spans)+1 after normalization
}

// Settings holds the document-wide scalars.
type Settings struct {
	UnitScale float64 // drawing units per meter
	X0        float64 // m, drawing origin of the first node
	Y0        float64 // m, top of the beam
	CoverM    float64 // m, face to bar axis
	CutbackM  float64 // m, Lc: inner bastón line shortening
	HookLegM  float64 // m, perpendicular hook tail

	// Materials (kgf/cm²)
	Fc float64 // f'c - concrete compressive strength
	Fy float64 // fy - steel yield strength
}

// Bars is a group of identical longitudinal bars.
type Bars struct {
	Qty      int
	Diameter string
}

// Span is one beam segment between two nodes.
type Span struct {
	LengthM float64 // clear length at the bottom face
	HeightM float64
	WidthM  float64

	Steel    [2]Bars // indexed by Side
	Bastones Bastones

	Stirrups        StirrupsSpec
	StirrupsSection SectionTies

	// Explicit required area per face (cm²); zero means "use As,min".
	RequiredAsCM2 [2]float64
}

// SectionTies describes cross-section ties. Carried for consumers only.
type SectionTies struct {
	Diameter string
	Qty      int
}

// Node is a support between spans. A1/A2 locate its left and right bottom
// faces relative to its origin, B1/B2 the top faces.
type Node struct {
	A1, A2 float64
	B1, B2 float64

	ProjectA bool // bottom faces projected in the elevation
	ProjectB bool // top faces projected in the elevation

	Steel  EndTable
	Baston LineEndTable
}

// EndSpec is the resolved termination rule of a bar at one node end.
type EndSpec struct {
	Kind    SteelKind
	ToFace  bool
	LengthM float64 // explicit anchorage length; zero means table value
}

// EndTable indexes end rules by side and end.
type EndTable [2][2]EndSpec

// LineEndTable indexes bastón end rules by side, end and line.
type LineEndTable [2][2][2]EndSpec

// At returns the rule for a side and end.
func (t EndTable) At(side Side, end End) EndSpec {
	if !side.Valid() || !end.Valid() {
		return EndSpec{}
	}
	return t[side][end]
}

// At returns the rule for a side, end and line.
func (t LineEndTable) At(side Side, end End, line Line) EndSpec {
	if !side.Valid() || !end.Valid() || !line.Valid() {
		return EndSpec{}
	}
	return t[side][end][line]
}

// BastonLine is one run of cut-off bars inside a zone.
type BastonLine struct {
	Enabled  bool
	Qty      int
	Diameter string
}

// BastonCfg configures one zone. Zero lengths mean "computed default".
type BastonCfg struct {
	Lines [2]BastonLine // indexed by Line
	L1M   float64
	L2M   float64
	L3M   float64
}

// Bastones indexes zone configuration by side and zone.
type Bastones [2][3]BastonCfg

// At returns the configuration of a zone on a face.
func (b Bastones) At(side Side, zone Zone) BastonCfg {
	if !side.Valid() || !zone.Valid() {
		return BastonCfg{}
	}
	return b[side][zone]
}

// StirrupsSpec describes the stirrup distribution of a span.
type StirrupsSpec struct {
	Case      StirrupCase
	Mode      DesignMode
	Diameter  string
	Left      string
	Center    string
	Right     string
	SingleEnd End // special end for AsymOne
}
