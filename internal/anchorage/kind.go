// Package anchorage resolves how bars end at nodes: continuous through the
// joint, hooked, or anchored with a straight development length.
package anchorage

import "github.com/alexiusacademia/rcdetail/internal/model"

// Legacy carries the boolean flags older documents used instead of an
// explicit kind.
type Legacy struct {
	Continuous  bool
	Hook        bool
	Development bool
}

// ResolveKind returns the explicit kind when one is given, otherwise the
// kind implied by the legacy flags with precedence Hook > Development >
// Continuous.
func ResolveKind(explicit string, legacy Legacy) model.SteelKind {
	if k, ok := model.ParseSteelKind(explicit); ok {
		return k
	}
	switch {
	case legacy.Hook:
		return model.Hook
	case legacy.Development:
		return model.DevelopmentLength
	default:
		return model.Continuous
	}
}

// Kind returns the resolved kind of the longitudinal bar at a node end.
func Kind(n model.Node, side model.Side, end model.End) model.SteelKind {
	return n.Steel.At(side, end).Kind
}

// ToFace reports whether the longitudinal bar is clipped to the far face.
func ToFace(n model.Node, side model.Side, end model.End) bool {
	return n.Steel.At(side, end).ToFace
}

// BastonKind returns the resolved kind of a bastón line at a node end.
func BastonKind(n model.Node, side model.Side, end model.End, line model.Line) model.SteelKind {
	return n.Baston.At(side, end, line).Kind
}

// BastonToFace reports whether a bastón line is clipped to the far face.
func BastonToFace(n model.Node, side model.Side, end model.End, line model.Line) bool {
	return n.Baston.At(side, end, line).ToFace
}
