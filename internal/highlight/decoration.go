package highlight

import "sort"

// Decoration is one inline highlight range in document coordinates, tagged
// with the entity it belongs to and a kind-specific class for styling.
type Decoration struct {
	From     int               `json:"from"`
	To       int               `json:"to"`
	EntityID string            `json:"entity_id"`
	Class    string            `json:"class"`
	Attrs    map[string]string `json:"attrs,omitempty"`
}

// Edit describes one document mutation as a span replacement: OldLen bytes
// at From were replaced by NewLen bytes. Pure insertions have OldLen 0,
// pure deletions NewLen 0.
type Edit struct {
	From   int
	OldLen int
	NewLen int
}

// mapPos maps a document position through the edit. assoc controls which
// side a position exactly on the edit boundary sticks to: +1 (range starts)
// moves past content inserted at the position, -1 (range ends) stays before
// it, so typing at either edge of a decoration does not extend it.
// Positions inside the replaced span clamp into its new extent.
func (e Edit) mapPos(pos, assoc int) int {
	end := e.From + e.OldLen
	if pos < e.From || (pos == e.From && assoc < 0) {
		return pos
	}
	if pos > end || (pos == end && assoc > 0) {
		return pos + e.NewLen - e.OldLen
	}
	d := pos - e.From
	if d > e.NewLen {
		d = e.NewLen
	}
	return e.From + d
}

// Set is an ordered collection of decorations. It supports exactly two
// update operations: wholesale replacement on a full recompute, and
// position remapping on an incremental edit. It is never diffed.
type Set struct {
	decorations []Decoration
}

// NewSet builds a set from decorations, sorted by position (From, then To)
// for stable rendering. Overlapping decorations from different entities are
// all kept; last-applied style wins visually and the engine does not try to
// resolve that.
func NewSet(decorations []Decoration) Set {
	sorted := make([]Decoration, len(decorations))
	copy(sorted, decorations)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].From != sorted[j].From {
			return sorted[i].From < sorted[j].From
		}
		return sorted[i].To < sorted[j].To
	})
	return Set{decorations: sorted}
}

// Decorations returns the decorations in position order. The returned slice
// is shared; callers must not mutate it.
func (s Set) Decorations() []Decoration {
	return s.decorations
}

// Len returns the number of decorations.
func (s Set) Len() int {
	return len(s.decorations)
}

// MapThrough remaps every decoration through the edits, in order, and drops
// decorations that collapse to nothing (their range fell entirely inside a
// deleted span). The receiver is unchanged.
func (s Set) MapThrough(edits []Edit) Set {
	if len(edits) == 0 {
		return s
	}

	mapped := make([]Decoration, 0, len(s.decorations))
	for _, dec := range s.decorations {
		from, to := dec.From, dec.To
		for _, e := range edits {
			from = e.mapPos(from, 1)
			to = e.mapPos(to, -1)
		}
		if to <= from {
			continue
		}
		dec.From, dec.To = from, to
		mapped = append(mapped, dec)
	}
	return Set{decorations: mapped}
}
