package model

// Span returns span i, or a zero span when i is out of range.
func (d Development) Span(i int) Span {
	if i < 0 || i >= len(d.Spans) {
		return Span{}
	}
	return d.Spans[i]
}

// Node returns node i, or a zero node when i is out of range.
func (d Development) Node(i int) Node {
	if i < 0 || i >= len(d.Nodes) {
		return Node{}
	}
	return d.Nodes[i]
}

// Scale returns the drawing scale, treating a non-positive value as 1.
func (d Development) Scale() float64 {
	if d.Settings.UnitScale <= 0 {
		return 1
	}
	return d.Settings.UnitScale
}

// IsInterior reports whether node i sits between two spans.
func (d Development) IsInterior(i int) bool {
	return i > 0 && i < len(d.Spans) && i < len(d.Nodes)
}

// Clone returns a deep copy that shares no slices with d.
func (d Development) Clone() Development {
	out := Development{Settings: d.Settings}
	if d.Spans != nil {
		out.Spans = append([]Span(nil), d.Spans...)
	}
	if d.Nodes != nil {
		out.Nodes = append([]Node(nil), d.Nodes...)
	}
	return out
}

// WithSpan returns a copy of d with span i replaced. Out-of-range indices
// return an unchanged copy.
func (d Development) WithSpan(i int, s Span) Development {
	out := d.Clone()
	if i >= 0 && i < len(out.Spans) {
		out.Spans[i] = s
	}
	return out
}

// WithNode returns a copy of d with node i replaced.
func (d Development) WithNode(i int, n Node) Development {
	out := d.Clone()
	if i >= 0 && i < len(out.Nodes) {
		out.Nodes[i] = n
	}
	return out
}

// MapSpans returns a copy of d with fn applied to every span.
func (d Development) MapSpans(fn func(i int, s Span) Span) Development {
	out := d.Clone()
	for i := range out.Spans {
		out.Spans[i] = fn(i, out.Spans[i])
	}
	return out
}
