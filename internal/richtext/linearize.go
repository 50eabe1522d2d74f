// Package richtext flattens a rich-text document's fragmented text nodes
// into one contiguous string plus a position map.
//
// Rich-text models split prose into inline fragments wherever formatting
// changes (bold, links, emphasis). A regex scan must see contiguous prose so
// an entity name split across a formatting boundary is still found; the
// linearized text is scanned, and match indices map back to document
// positions through the segment table.
package richtext

import (
	"sort"
	"strings"
)

// Fragment is one inline text run with its absolute start position in the
// host document's coordinate space. This is the only thing the linearizer
// requires of a document model.
type Fragment struct {
	Text string
	From int
}

// FragmentSource enumerates a document's text fragments in document order.
// Adapters over concrete document trees (see Markdown in this package)
// implement it.
type FragmentSource interface {
	Fragments() []Fragment
}

// Segment records one fragment's text and its absolute [From, To) range.
type Segment struct {
	Text string
	From int
	To   int
}

// Linearized is the flattened view of a document: FullText is the
// concatenation of all fragment texts in document order, Segments maps
// FullText indices back to document positions.
type Linearized struct {
	FullText string
	Segments []Segment

	// starts[i] is the FullText offset where Segments[i] begins.
	starts []int
}

// Linearize flattens src into a Linearized view.
func Linearize(src FragmentSource) Linearized {
	var sb strings.Builder
	var segments []Segment
	var starts []int

	offset := 0
	for _, frag := range src.Fragments() {
		if frag.Text == "" {
			continue
		}
		sb.WriteString(frag.Text)
		segments = append(segments, Segment{
			Text: frag.Text,
			From: frag.From,
			To:   frag.From + len(frag.Text),
		})
		starts = append(starts, offset)
		offset += len(frag.Text)
	}

	return Linearized{
		FullText: sb.String(),
		Segments: segments,
		starts:   starts,
	}
}

// Position maps a FullText index to its absolute document position.
//
// Indices at or past the end of the last segment clamp to that segment's
// end; an empty document maps everything to 0. Never negative, never
// panics: regex match indices are always in bounds of the text that was
// scanned, so clamping only covers drift from empty or degenerate segment
// tables.
func (l Linearized) Position(index int) int {
	if len(l.Segments) == 0 {
		return 0
	}
	if index < 0 {
		index = 0
	}

	// Find the last segment starting at or before index.
	i := sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > index
	}) - 1
	if i < 0 {
		i = 0
	}

	seg := l.Segments[i]
	pos := seg.From + (index - l.starts[i])
	if pos > seg.To {
		pos = seg.To
	}
	return pos
}

// PositionEnd maps an exclusive FullText end index to an exclusive document
// position. It resolves through the segment containing index-1, so a range
// ending exactly on a fragment boundary stays inside that fragment instead
// of jumping past any non-text gap to the next one.
func (l Linearized) PositionEnd(index int) int {
	if index <= 0 {
		return l.Position(0)
	}
	return l.Position(index-1) + 1
}
