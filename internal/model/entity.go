// Package model defines the data types shared across Vellum.
package model

// EntityKind identifies the category of a tagged entity.
type EntityKind string

const (
	KindTerm   EntityKind = "term"
	KindDate   EntityKind = "date"
	KindPerson EntityKind = "person"
	KindPlace  EntityKind = "place"
)

// Kinds lists all entity kinds in display order.
var Kinds = []EntityKind{KindTerm, KindDate, KindPerson, KindPlace}

// Valid reports whether k is a known entity kind.
func (k EntityKind) Valid() bool {
	switch k {
	case KindTerm, KindDate, KindPerson, KindPlace:
		return true
	}
	return false
}

// CSSClass returns the kind-specific class attached to decorations so
// renderers can style term/date/person/place differently.
func (k EntityKind) CSSClass() string {
	return "vellum-highlight-" + string(k)
}

// TaggedEntity is a user-created annotation tracked for scanning and
// highlighting. All four kinds share this shape; kind-specific fields are
// populated according to Kind and left empty otherwise.
type TaggedEntity struct {
	// ID uniquely identifies this entity. Assigned at creation
	// (kind:slug form), stable for the entity's lifetime, never reused.
	ID string `json:"id" yaml:"id"`

	// Kind is the entity category.
	Kind EntityKind `json:"kind" yaml:"kind"`

	// Term and Definition are set for term entities.
	Term       string `json:"term,omitempty" yaml:"term,omitempty"`
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty"`

	// RawText is the literal text a date entity was tagged from; Date is
	// its parsed ISO-8601 (YYYY-MM-DD) value.
	RawText string `json:"raw_text,omitempty" yaml:"raw_text,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`

	// Name is set for person and place entities. Role qualifies a person
	// (e.g. "Buyer"); Significance qualifies a place.
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	Role         string `json:"role,omitempty" yaml:"role,omitempty"`
	Significance string `json:"significance,omitempty" yaml:"significance,omitempty"`

	// Usages is derived data: fully recomputed by Recalculate, never
	// hand-edited. Stale until the next recalculation after an outline
	// change.
	Usages []EntityUsage `json:"usages" yaml:"usages"`
}

// MatchText returns the text used to locate this entity in document prose.
func (e TaggedEntity) MatchText() string {
	switch e.Kind {
	case KindTerm:
		return e.Term
	case KindDate:
		return e.RawText
	case KindPerson, KindPlace:
		return e.Name
	}
	return ""
}

// DisplayName returns a human-readable label for lists and tables.
func (e TaggedEntity) DisplayName() string {
	if t := e.MatchText(); t != "" {
		return t
	}
	return e.ID
}

// EntityUsage records one outline node where an entity's text occurs.
type EntityUsage struct {
	// BlockID and NodeID form the composite key of the containing node.
	BlockID string `json:"block_id" yaml:"block_id"`
	NodeID  string `json:"node_id" yaml:"node_id"`

	// NodePrefix is the structural address (e.g. "2.b.iii") computed under
	// the numbering style active at scan time. Not stable across style
	// changes: a style change requires a rescan even if no text changed.
	NodePrefix string `json:"node_prefix" yaml:"node_prefix"`

	// NodeLabel is a display-only snapshot of the node's label at scan time.
	NodeLabel string `json:"node_label" yaml:"node_label"`

	// Count is the number of non-overlapping matches in the node's label.
	// Always >= 1: zero-match nodes are omitted, not emitted with count 0.
	Count int `json:"count" yaml:"count"`
}
