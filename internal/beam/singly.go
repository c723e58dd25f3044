package beam

import (
	"github.com/alexiusacademia/rcdetail/internal/aci"
)

// Section is a singly reinforced rectangular section at one cut of a span
type Section struct {
	// Geometry (cm)
	Width          float64 // b - beam width
	EffectiveDepth float64 // d - depth to the tension steel

	// Materials (kgf/cm²)
	Fc float64 // f'c - concrete compressive strength
	Fy float64 // fy - steel yield strength
}

// NewSection builds a section from meters, the unit of the beam documents.
func NewSection(widthM, heightM, coverM, fc, fy float64) Section {
	return Section{
		Width:          widthM * 100,
		EffectiveDepth: (heightM - coverM) * 100,
		Fc:             fc,
		Fy:             fy,
	}
}

// Valid reports whether the section can carry any moment.
func (s Section) Valid() bool {
	return s.Width > 0 && s.EffectiveDepth > 0 && s.Fc > 0 && s.Fy > 0
}

// GrossArea returns b·d in cm².
func (s Section) GrossArea() float64 {
	if s.Width <= 0 || s.EffectiveDepth <= 0 {
		return 0
	}
	return s.Width * s.EffectiveDepth
}

// Capacity holds the flexural capacity of a section for a steel area
type Capacity struct {
	A        float64 // Depth of compression block (cm)
	C        float64 // Neutral axis depth (cm)
	EpsilonT float64 // Tensile strain
	Phi      float64 // Strength reduction factor

	Mn    float64 // Nominal moment capacity (t·m)
	PhiMn float64 // Design moment capacity (t·m)

	IsTensionControlled bool
}

// Analyze calculates the moment capacity for a tension steel area in cm².
// Invalid sections or non-positive areas give a zero capacity.
func (s Section) Analyze(as float64) Capacity {
	if !s.Valid() || as <= 0 {
		return Capacity{}
	}

	var c Capacity

	// T = C → As*fy = 0.85*f'c*b*a
	c.A = as * s.Fy / (0.85 * s.Fc * s.Width)
	c.C = c.A / aci.Beta1(s.Fc)

	c.EpsilonT = aci.EpsilonCU * (s.EffectiveDepth - c.C) / c.C
	c.Phi = aci.Phi(c.EpsilonT, s.Fy)
	c.IsTensionControlled = c.EpsilonT >= 0.005

	// Mn = As * fy * (d - a/2), kgf·cm to t·m
	c.Mn = as * s.Fy * (s.EffectiveDepth - c.A/2) / 1e5
	c.PhiMn = c.Phi * c.Mn

	return c
}
