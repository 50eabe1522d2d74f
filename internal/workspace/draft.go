package workspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	goslug "github.com/gosimple/slug"

	"github.com/vellumtools/vellum/internal/model"
)

// ParseDraft parses a markdown draft into outline blocks.
//
// Structure mapping:
//   - Each level-1 heading starts a new block (addresses restart there).
//   - Headings of level 2+ become outline nodes at depth level-2.
//   - List items nest under the most recent heading node, one depth level
//     per list nesting level.
//
// Node IDs are positional paths within their block ("2", "2/1", "2/1/3"):
// stable across rescans of an unchanged draft, which is all the CLI host
// needs since every scan re-parses from source.
func ParseDraft(source []byte, fallbackBlockID string) ([]model.OutlineBlock, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	p := &draftParser{
		source:          source,
		fallbackBlockID: fallbackBlockID,
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			p.heading(node)
		case *ast.List:
			p.list(node, p.headingDepth())
		}
	}
	p.flushBlock()

	return p.blocks, nil
}

type draftParser struct {
	source          []byte
	fallbackBlockID string

	blocks  []model.OutlineBlock
	blockID string

	// current holds the open builder chain: current[d] is the unfinished
	// node at depth d whose children are still being collected.
	current []*nodeBuilder
	roots   []*nodeBuilder

	seenBlockIDs map[string]bool
}

type nodeBuilder struct {
	id       string
	label    string
	children []*nodeBuilder
}

func (p *draftParser) heading(h *ast.Heading) {
	label := strings.TrimSpace(nodeText(h, p.source))
	if h.Level == 1 {
		p.flushBlock()
		p.blockID = p.uniqueBlockID(label)
		return
	}
	p.appendNode(h.Level-2, label)
}

// headingDepth is the depth at which new list roots attach: one below the
// innermost open heading node.
func (p *draftParser) headingDepth() int {
	return len(p.current)
}

func (p *draftParser) list(l *ast.List, depth int) {
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		li, ok := item.(*ast.ListItem)
		if !ok {
			continue
		}

		var label string
		var nested []*ast.List
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			if sub, ok := c.(*ast.List); ok {
				nested = append(nested, sub)
				continue
			}
			if label == "" {
				label = strings.TrimSpace(nodeText(c, p.source))
			}
		}

		p.appendNode(depth, label)
		for _, sub := range nested {
			p.list(sub, depth+1)
		}
	}
}

// appendNode adds a node at the given depth, closing any deeper open nodes.
// A depth jump past the innermost open node clamps to one level below it.
func (p *draftParser) appendNode(depth int, label string) {
	if depth < 0 {
		depth = 0
	}
	if depth > len(p.current) {
		depth = len(p.current)
	}
	p.current = p.current[:depth]

	nb := &nodeBuilder{label: label}
	if depth == 0 {
		p.roots = append(p.roots, nb)
		nb.id = strconv.Itoa(len(p.roots))
	} else {
		parent := p.current[depth-1]
		parent.children = append(parent.children, nb)
		nb.id = parent.id + "/" + strconv.Itoa(len(parent.children))
	}
	p.current = append(p.current, nb)
}

func (p *draftParser) flushBlock() {
	if len(p.roots) == 0 {
		p.current = nil
		return
	}

	id := p.blockID
	if id == "" {
		id = p.uniqueBlockID(p.fallbackBlockID)
	}

	tree := make([]model.OutlineNode, len(p.roots))
	for i, nb := range p.roots {
		tree[i] = nb.build()
	}
	p.blocks = append(p.blocks, model.OutlineBlock{ID: id, Tree: tree})

	p.roots = nil
	p.current = nil
	p.blockID = ""
}

func (p *draftParser) uniqueBlockID(name string) string {
	id := goslug.Make(name)
	if id == "" {
		id = "block"
	}
	if p.seenBlockIDs == nil {
		p.seenBlockIDs = make(map[string]bool)
	}
	base := id
	for n := 2; p.seenBlockIDs[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	p.seenBlockIDs[id] = true
	return id
}

func (nb *nodeBuilder) build() model.OutlineNode {
	node := model.OutlineNode{ID: nb.id, Label: nb.label}
	for _, child := range nb.children {
		node.Children = append(node.Children, child.build())
	}
	return node
}

// nodeText concatenates the inline text content beneath n.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
