// Package compliance checks installed longitudinal steel against the
// reinforcement-ratio limits at arbitrary cuts along a beam.
package compliance

import (
	"github.com/alexiusacademia/rcdetail/internal/aci"
	"github.com/alexiusacademia/rcdetail/internal/baston"
	"github.com/alexiusacademia/rcdetail/internal/beam"
	"github.com/alexiusacademia/rcdetail/internal/geometry"
	"github.com/alexiusacademia/rcdetail/internal/model"
	"github.com/alexiusacademia/rcdetail/internal/rebar"
)

// Face is the check of one face (top or bottom) at a cut. Areas in cm²,
// moments in t·m.
type Face struct {
	AsInstalled  float64 `yaml:"as_installed_cm2"`
	AsRequired   float64 `yaml:"as_required_cm2"`
	RhoInstalled float64 `yaml:"rho_installed"`
	RhoRequired  float64 `yaml:"rho_required"`
	Compliant    bool    `yaml:"compliant"`
	Margin       float64 `yaml:"margin_cm2"` // installed - required
	PhiMn        float64 `yaml:"phi_mn_tm"`
}

// Record is the compliance record of one cut.
type Record struct {
	Span int     `yaml:"span"`
	X    float64 `yaml:"x"` // drawing units

	AsMin  float64 `yaml:"as_min_cm2"`
	AsMax  float64 `yaml:"as_max_cm2"`
	RhoMin float64 `yaml:"rho_min"`
	RhoMax float64 `yaml:"rho_max"`

	Top    Face `yaml:"top"`
	Bottom Face `yaml:"bottom"`
}

// Face returns the check of one side.
func (r Record) Face(side model.Side) Face {
	if side == model.Top {
		return r.Top
	}
	return r.Bottom
}

// Compliant reports whether both faces pass.
func (r Record) Compliant() bool {
	return r.Top.Compliant && r.Bottom.Compliant
}

// Materials returns f'c and fy of a development, defaulting missing values.
func Materials(dev model.Development) (fc, fy float64) {
	fc, fy = dev.Settings.Fc, dev.Settings.Fy
	if fc <= 0 {
		fc = aci.DefaultFc
	}
	if fy <= 0 {
		fy = aci.DefaultFy
	}
	return fc, fy
}

// InstalledArea returns the steel area in cm² on one face of a span at x:
// the longitudinal bars plus every enabled bastón line whose extent contains
// x. Zone extents are derived from the span configuration on every call.
func InstalledArea(geo *geometry.Resolver, span int, side model.Side, x float64) float64 {
	dev := geo.Development()
	if span < 0 || span >= len(dev.Spans) {
		return 0
	}
	s := dev.Spans[span]
	as := rebar.Area(s.Steel[side].Diameter, s.Steel[side].Qty)

	face := geo.SpanFace(span, side)
	for _, zone := range model.Zones {
		cfg := s.Bastones.At(side, zone)
		for _, line := range model.Lines {
			bl := cfg.Lines[line]
			if !bl.Enabled {
				continue
			}
			ext, ok := baston.LineExtent(face, s.LengthM, geo.Scale(), dev.Settings.CutbackM, zone, line, cfg)
			if ok && ext.Contains(x) {
				as += rebar.Area(bl.Diameter, bl.Qty)
			}
		}
	}
	return as
}

// RequiredArea returns the explicit required area of a face, or asMin when
// the span carries none.
func RequiredArea(s model.Span, side model.Side, asMin float64) float64 {
	if side.Valid() && s.RequiredAsCM2[side] > 0 {
		return s.RequiredAsCM2[side]
	}
	return asMin
}

// Evaluate checks installed against required area on a section of gross
// effective area b·d (cm²). Both ratio limits are inclusive.
func Evaluate(asInstalled, asRequired, gross float64, lim aci.Limits) Face {
	f := Face{
		AsInstalled: asInstalled,
		AsRequired:  asRequired,
		Margin:      asInstalled - asRequired,
	}
	if gross <= 0 {
		return f
	}
	f.RhoInstalled = asInstalled / gross
	f.RhoRequired = asRequired / gross
	withinRatio := f.RhoInstalled >= lim.RhoMin-geometry.Eps && f.RhoInstalled <= lim.RhoMax+geometry.Eps
	f.Compliant = withinRatio && asInstalled >= asRequired-geometry.Eps
	return f
}

// At checks both faces of span at the cut x (drawing units).
func At(geo *geometry.Resolver, span int, x float64) Record {
	dev := geo.Development()
	rec := Record{Span: span, X: x}
	if span < 0 || span >= len(dev.Spans) {
		return rec
	}
	s := dev.Spans[span]
	fc, fy := Materials(dev)
	lim := aci.LimitsFor(fc, fy)

	sec := beam.NewSection(s.WidthM, s.HeightM, dev.Settings.CoverM, fc, fy)
	gross := sec.GrossArea()

	rec.RhoMin = lim.RhoMin
	rec.RhoMax = lim.RhoMax
	rec.AsMin = lim.RhoMin * gross
	rec.AsMax = lim.RhoMax * gross

	for _, side := range model.Sides {
		installed := InstalledArea(geo, span, side, x)
		f := Evaluate(installed, RequiredArea(s, side, rec.AsMin), gross, lim)
		f.PhiMn = sec.Analyze(installed).PhiMn
		if side == model.Top {
			rec.Top = f
		} else {
			rec.Bottom = f
		}
	}
	return rec
}

// Locate returns the span whose bottom face contains x.
func Locate(geo *geometry.Resolver, x float64) (int, bool) {
	for i := 0; i < geo.SpanCount(); i++ {
		if geo.SpanBottom(i).Contains(x) {
			return i, true
		}
	}
	return -1, false
}

// Check locates x and checks it. ok is false when x falls on no span.
func Check(geo *geometry.Resolver, x float64) (Record, bool) {
	i, ok := Locate(geo, x)
	if !ok {
		return Record{Span: -1, X: x}, false
	}
	return At(geo, i, x), true
}

// Sample checks perSpan evenly spaced cuts over every span, faces included.
// A single cut per span is taken at mid-span.
func Sample(geo *geometry.Resolver, perSpan int) []Record {
	if perSpan <= 0 {
		return nil
	}
	var out []Record
	for i := 0; i < geo.SpanCount(); i++ {
		r := geo.SpanBottom(i)
		if perSpan == 1 {
			out = append(out, At(geo, i, r.Mid()))
			continue
		}
		step := r.Len() / float64(perSpan-1)
		for k := 0; k < perSpan; k++ {
			out = append(out, At(geo, i, r.Start+float64(k)*step))
		}
	}
	return out
}
