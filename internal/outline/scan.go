// Package outline scans hierarchical outline blocks for entity usages and
// drives usage recalculation across a document's entity list.
package outline

import (
	"regexp"

	"github.com/vellumtools/vellum/internal/match"
	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/outline/numbering"
)

// ScanUsages finds every outline node whose label contains matchText as a
// whole word (case-insensitively) and reports one usage per node with its
// occurrence count and structural prefix under style.
//
// Traversal is depth-first pre-order per block, which equals document
// reading order; usages are returned in that order with no separate sort.
// Returns nil when matchText normalizes to empty.
func ScanUsages(matchText string, blocks []model.OutlineBlock, style numbering.Style) []model.EntityUsage {
	re, ok := match.Pattern(matchText)
	if !ok {
		return nil
	}

	var usages []model.EntityUsage
	for _, block := range blocks {
		// Sibling counters are scoped per subtree: indices[d] is the
		// 1-based position of the current node among its siblings at
		// depth d, reset each time a new parent is entered.
		var indices []int
		scanNodes(re, block.ID, block.Tree, 0, indices, style, &usages)
	}
	return usages
}

func scanNodes(re *regexp.Regexp, blockID string, nodes []model.OutlineNode, depth int, indices []int, style numbering.Style, usages *[]model.EntityUsage) {
	for i, node := range nodes {
		current := append(indices[:depth:depth], i+1)

		if count := match.Count(re, node.Label); count > 0 {
			*usages = append(*usages, model.EntityUsage{
				BlockID:    blockID,
				NodeID:     node.ID,
				NodePrefix: style.Prefix(depth, current),
				NodeLabel:  node.Label,
				Count:      count,
			})
		}

		if len(node.Children) > 0 {
			scanNodes(re, blockID, node.Children, depth+1, current, style, usages)
		}
	}
}
