// Package testutil provides test fixtures and assertion helpers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/workspace"
)

// TestWorkspace is a temporary workspace for tests.
type TestWorkspace struct {
	t    *testing.T
	Path string
}

// NewWorkspace creates an initialized workspace in a temp directory.
func NewWorkspace(t *testing.T) *TestWorkspace {
	t.Helper()
	path := t.TempDir()
	if err := workspace.Init(path); err != nil {
		t.Fatalf("failed to init workspace: %v", err)
	}
	return &TestWorkspace{t: t, Path: path}
}

// WriteDraft writes a markdown draft into the workspace.
func (w *TestWorkspace) WriteDraft(relPath, content string) {
	w.t.Helper()
	full := filepath.Join(w.Path, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		w.t.Fatalf("failed to create draft directory: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		w.t.Fatalf("failed to write draft: %v", err)
	}
}

// SaveEntities stores entities in the workspace's entity store.
func (w *TestWorkspace) SaveEntities(entities []model.TaggedEntity) {
	w.t.Helper()
	if err := workspace.SaveEntities(w.Path, entities); err != nil {
		w.t.Fatalf("failed to save entities: %v", err)
	}
}

// LoadEntities reads the workspace's entity store.
func (w *TestWorkspace) LoadEntities() []model.TaggedEntity {
	w.t.Helper()
	entities, err := workspace.LoadEntities(w.Path)
	if err != nil {
		w.t.Fatalf("failed to load entities: %v", err)
	}
	return entities
}
