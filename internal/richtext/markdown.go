package richtext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown adapts a markdown document to FragmentSource. Goldmark splits
// prose into multiple Text nodes at every inline boundary (emphasis, links,
// special characters), which is exactly the fragmentation the linearizer
// exists to bridge. Fragment positions are byte offsets into the source.
type Markdown struct {
	source    []byte
	fragments []Fragment
}

// ParseMarkdown parses source and collects its inline text fragments in
// document order. Code blocks and inline code are skipped: entity prose is
// never matched inside code.
func ParseMarkdown(source []byte) (*Markdown, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	m := &Markdown{source: source}

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			seg := node.Segment
			if seg.Len() > 0 {
				m.fragments = append(m.fragments, Fragment{
					Text: string(seg.Value(source)),
					From: seg.Start,
				})
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Fragments returns the document's inline text runs in document order.
func (m *Markdown) Fragments() []Fragment {
	return m.fragments
}

// Source returns the original markdown bytes.
func (m *Markdown) Source() []byte {
	return m.source
}
