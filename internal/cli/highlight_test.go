package cli

import (
	"testing"

	"github.com/vellumtools/vellum/internal/config"
	"github.com/vellumtools/vellum/internal/highlight"
	"github.com/vellumtools/vellum/internal/model"
)

func setHighlightFlags(t *testing.T, mode, kind, selected string) {
	t.Helper()
	prevMode, prevKind, prevSelect, prevCfg := highlightMode, highlightKind, highlightSelect, cfg
	t.Cleanup(func() {
		highlightMode, highlightKind, highlightSelect, cfg = prevMode, prevKind, prevSelect, prevCfg
	})
	highlightMode, highlightKind, highlightSelect = mode, kind, selected
	cfg = config.Default()
}

func TestBuildSessionsSelectImpliesSelected(t *testing.T) {
	setHighlightFlags(t, "", "", "term:acme-corp")

	sessions, err := buildSessions()
	if err != nil {
		t.Fatalf("buildSessions: %v", err)
	}
	if len(sessions) != len(model.Kinds) {
		t.Fatalf("got %d sessions, want %d", len(sessions), len(model.Kinds))
	}
	for _, s := range sessions {
		if s.Kind == model.KindTerm {
			if s.Mode != highlight.ModeSelected || s.SelectedID != "term:acme-corp" {
				t.Errorf("term session = %+v, want selected with id", s)
			}
			continue
		}
		if s.Mode != highlight.ModeNone {
			t.Errorf("%s session mode = %q, want none", s.Kind, s.Mode)
		}
	}
}

func TestBuildSessionsRejectsConflictingMode(t *testing.T) {
	for _, mode := range []string{"none", "all"} {
		t.Run(mode, func(t *testing.T) {
			setHighlightFlags(t, mode, "", "term:acme-corp")
			if _, err := buildSessions(); err == nil {
				t.Errorf("--mode %s with --select should be rejected", mode)
			}
		})
	}
}

func TestBuildSessionsExplicitSelectedMode(t *testing.T) {
	setHighlightFlags(t, "selected", "", "person:jane-doe")
	sessions, err := buildSessions()
	if err != nil {
		t.Fatalf("buildSessions: %v", err)
	}
	for _, s := range sessions {
		if s.Kind == model.KindPerson && s.SelectedID != "person:jane-doe" {
			t.Errorf("person session = %+v, want selected id set", s)
		}
	}
}
