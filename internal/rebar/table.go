// Package rebar holds nominal bar data: areas and the development-length
// table used to anchor bars at nodes.
package rebar

import (
	"strings"

	"github.com/alexiusacademia/rcdetail/internal/model"
)

// Bar is one row of the table. Lengths are in centimeters, as tabulated.
type Bar struct {
	Name       string
	DiameterMM float64
	AreaCM2    float64

	HookCM         float64 // hooked development length
	AnchorBottomCM float64 // straight development, bottom bars
	AnchorTopCM    float64 // straight development, top bars
}

// DefaultName is the row used for unknown diameters.
const DefaultName = `3/4"`

// Development lengths for f'c = 210 kgf/cm², fy = 4200 kgf/cm².
var table = []Bar{
	{Name: "6mm", DiameterMM: 6, AreaCM2: 0.28, HookCM: 20, AnchorBottomCM: 30, AnchorTopCM: 40},
	{Name: "8mm", DiameterMM: 8, AreaCM2: 0.50, HookCM: 25, AnchorBottomCM: 35, AnchorTopCM: 45},
	{Name: `3/8"`, DiameterMM: 9.5, AreaCM2: 0.71, HookCM: 35, AnchorBottomCM: 45, AnchorTopCM: 60},
	{Name: "12mm", DiameterMM: 12, AreaCM2: 1.13, HookCM: 40, AnchorBottomCM: 55, AnchorTopCM: 70},
	{Name: `1/2"`, DiameterMM: 12.7, AreaCM2: 1.29, HookCM: 45, AnchorBottomCM: 60, AnchorTopCM: 75},
	{Name: `5/8"`, DiameterMM: 15.9, AreaCM2: 1.99, HookCM: 55, AnchorBottomCM: 75, AnchorTopCM: 95},
	{Name: `3/4"`, DiameterMM: 19.1, AreaCM2: 2.84, HookCM: 70, AnchorBottomCM: 90, AnchorTopCM: 115},
	{Name: `1"`, DiameterMM: 25.4, AreaCM2: 5.10, HookCM: 95, AnchorBottomCM: 150, AnchorTopCM: 195},
	{Name: `1 3/8"`, DiameterMM: 35.8, AreaCM2: 10.06, HookCM: 130, AnchorBottomCM: 250, AnchorTopCM: 325},
}

var byName = func() map[string]Bar {
	m := make(map[string]Bar, len(table))
	for _, b := range table {
		m[Normalize(b.Name)] = b
	}
	return m
}()

// Bars returns a copy of the table in ascending diameter order.
func Bars() []Bar {
	return append([]Bar(nil), table...)
}

// Normalize canonicalizes a diameter spelling: `Ø 3/4 in`, `3/4"` and `3/4`
// all map to the same key.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "ø")
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "in")
	s = strings.TrimSuffix(s, "\"")
	s = strings.TrimSuffix(s, "''")
	s = strings.TrimSpace(s)
	return strings.Join(strings.Fields(s), " ")
}

// Find returns the row for name and whether it was present.
func Find(name string) (Bar, bool) {
	b, ok := byName[Normalize(name)]
	return b, ok
}

// Lookup returns the row for name, falling back to the 3/4" row.
func Lookup(name string) Bar {
	if b, ok := Find(name); ok {
		return b
	}
	return byName[Normalize(DefaultName)]
}

// HookLength returns the hooked development length in meters.
func (b Bar) HookLength() float64 { return b.HookCM / 100 }

// AnchorLength returns the straight development length in meters.
func (b Bar) AnchorLength(side model.Side) float64 {
	if side == model.Top {
		return b.AnchorTopCM / 100
	}
	return b.AnchorBottomCM / 100
}

// Length returns the development length in meters for a termination kind.
// Continuous bars that cannot continue are anchored straight.
func (b Bar) Length(kind model.SteelKind, side model.Side) float64 {
	if kind == model.Hook {
		return b.HookLength()
	}
	return b.AnchorLength(side)
}

// Length is shorthand for Lookup(diameter).Length(kind, side).
func Length(diameter string, kind model.SteelKind, side model.Side) float64 {
	return Lookup(diameter).Length(kind, side)
}

// Area returns the area in cm² of qty bars of the given diameter. Unknown
// diameters use the default row; non-positive counts give zero.
func Area(diameter string, qty int) float64 {
	if qty <= 0 {
		return 0
	}
	return float64(qty) * Lookup(diameter).AreaCM2
}
