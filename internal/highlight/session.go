// Package highlight computes inline highlight decorations for tagged
// entities and keeps them valid as the document is edited.
//
// One Session value describes the highlight policy for one entity kind; the
// engine takes a list of sessions, so terms, dates, people and places are
// four values of one type rather than four parallel state machines.
package highlight

import (
	"github.com/vellumtools/vellum/internal/match"
	"github.com/vellumtools/vellum/internal/model"
)

// Mode controls which entities of a session's kind are highlighted.
type Mode string

const (
	// ModeAll highlights every entity of the kind with a non-empty
	// normalized match key.
	ModeAll Mode = "all"

	// ModeSelected highlights exactly the selected entity. With no
	// selection it highlights nothing: the wait state never falls back to
	// highlighting everything.
	ModeSelected Mode = "selected"

	// ModeNone highlights nothing regardless of the entity list.
	ModeNone Mode = "none"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeAll, ModeSelected, ModeNone:
		return true
	}
	return false
}

// Session is the highlight policy for one entity kind.
type Session struct {
	Kind model.EntityKind `json:"kind"`
	Mode Mode             `json:"mode"`

	// SelectedID is the entity in focus, relevant only under ModeSelected.
	SelectedID string `json:"selected_id,omitempty"`
}

// Eligible filters entities down to the ones this session highlights.
func (s Session) Eligible(entities []model.TaggedEntity) []model.TaggedEntity {
	if s.Mode == ModeNone {
		return nil
	}

	var eligible []model.TaggedEntity
	for _, entity := range entities {
		if entity.Kind != s.Kind {
			continue
		}
		switch s.Mode {
		case ModeAll:
			if match.Normalize(entity.MatchText()) != "" {
				eligible = append(eligible, entity)
			}
		case ModeSelected:
			if s.SelectedID != "" && entity.ID == s.SelectedID {
				eligible = append(eligible, entity)
			}
		}
	}
	return eligible
}

// AllSessions returns one session per entity kind, all in the given mode.
func AllSessions(mode Mode) []Session {
	sessions := make([]Session, 0, len(model.Kinds))
	for _, kind := range model.Kinds {
		sessions = append(sessions, Session{Kind: kind, Mode: mode})
	}
	return sessions
}
