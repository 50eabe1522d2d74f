package highlight

import (
	"github.com/vellumtools/vellum/internal/match"
	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/richtext"
)

// RecomputeInput carries everything a full recompute needs: the current
// entity list, the active sessions, and a fresh linearization of the
// document.
type RecomputeInput struct {
	Entities []model.TaggedEntity
	Sessions []Session
	Doc      richtext.Linearized
}

// Transaction describes one step of the highlight state machine. Exactly
// one of the two cases applies:
//
//   - Recompute is set: the highlight config or document structure changed,
//     and the previous set is discarded wholesale in favor of a full
//     recompute.
//   - Recompute is nil: a plain document edit; existing decorations are
//     remapped through Edits without rescanning. Rescanning on every
//     keystroke is the failure mode this split exists to prevent.
type Transaction struct {
	Edits     []Edit
	Recompute *RecomputeInput
}

// Apply is the pure transition function of the highlight state machine:
// (previous set, transaction) -> next set. It holds no state of its own and
// never mutates prev.
func Apply(prev Set, tx Transaction) Set {
	if tx.Recompute != nil {
		return Recompute(tx.Recompute.Entities, tx.Recompute.Sessions, tx.Recompute.Doc)
	}
	return prev.MapThrough(tx.Edits)
}

// Recompute scans the linearized document text for every eligible entity
// and builds the full decoration set. Matches run over the contiguous
// FullText, so an entity name split across formatting fragments is still
// found; match indices map back to document positions through the
// linearization.
func Recompute(entities []model.TaggedEntity, sessions []Session, doc richtext.Linearized) Set {
	var decorations []Decoration
	for _, session := range sessions {
		for _, entity := range session.Eligible(entities) {
			re, ok := match.Pattern(entity.MatchText())
			if !ok {
				continue
			}
			for _, m := range match.FindAll(re, doc.FullText) {
				decorations = append(decorations, Decoration{
					From:     doc.Position(m[0]),
					To:       doc.PositionEnd(m[1]),
					EntityID: entity.ID,
					Class:    entity.Kind.CSSClass(),
					Attrs: map[string]string{
						"data-entity-id":   entity.ID,
						"data-entity-kind": string(entity.Kind),
					},
				})
			}
		}
	}
	return NewSet(decorations)
}
