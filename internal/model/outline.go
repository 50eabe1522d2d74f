package model

// OutlineNode is one item in a hierarchical outline. Depth is not stored:
// it is derived from tree position during traversal (a child's depth is its
// parent's depth + 1; roots are depth 0).
type OutlineNode struct {
	// ID uniquely identifies this node within its document. Assigned at
	// creation, never reused.
	ID string `json:"id" yaml:"id"`

	// Label is the node's display text, treated as plain prose for
	// scanning.
	Label string `json:"label" yaml:"label"`

	// Children in insertion order. Order is semantic: it defines both
	// visual order and address numbering.
	Children []OutlineNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// OutlineBlock is a named, addressable outline tree embedded in a document.
// Multiple blocks may coexist in one document; structural addresses restart
// at block boundaries.
type OutlineBlock struct {
	// ID is unique within the document.
	ID string `json:"id" yaml:"id"`

	// Tree holds the root-level nodes.
	Tree []OutlineNode `json:"tree" yaml:"tree"`
}
