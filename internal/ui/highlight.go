package ui

import (
	"strings"

	"github.com/vellumtools/vellum/internal/highlight"
	"github.com/vellumtools/vellum/internal/model"
)

// RenderHighlighted renders draft source with decoration ranges styled by
// entity kind. Decorations arrive in position order; where two overlap, the
// later one keeps only its non-overlapped tail (last-applied wins visually,
// matching the engine's accepted overlap policy).
func RenderHighlighted(source string, set highlight.Set) string {
	decorations := set.Decorations()
	if len(decorations) == 0 {
		return source
	}

	var sb strings.Builder
	cursor := 0
	for _, dec := range decorations {
		from, to := dec.From, dec.To
		if from < cursor {
			from = cursor
		}
		if to > len(source) {
			to = len(source)
		}
		if from >= to {
			continue
		}

		sb.WriteString(source[cursor:from])
		kind := model.EntityKind(dec.Attrs["data-entity-kind"])
		sb.WriteString(KindStyle(kind).Render(source[from:to]))
		cursor = to
	}
	sb.WriteString(source[cursor:])
	return sb.String()
}
