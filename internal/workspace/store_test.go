package workspace

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vellumtools/vellum/internal/model"
)

func initWorkspace(t *testing.T) string {
	t.Helper()
	path := t.TempDir()
	if err := Init(path); err != nil {
		t.Fatalf("init: %v", err)
	}
	return path
}

func TestEntityStoreRoundTrip(t *testing.T) {
	root := initWorkspace(t)

	entities := []model.TaggedEntity{
		{
			ID:         "term:acme-corp",
			Kind:       model.KindTerm,
			Term:       "Acme Corp",
			Definition: "the Delaware corporation",
			Usages: []model.EntityUsage{
				{BlockID: "d.md#main", NodeID: "1", NodePrefix: "1", NodeLabel: "Acme Corp shall", Count: 2},
			},
		},
		{
			ID:      "date:closing",
			Kind:    model.KindDate,
			RawText: "Closing Date",
			Date:    "2026-03-01",
			Usages:  []model.EntityUsage{},
		},
		{
			ID:     "person:jane-doe",
			Kind:   model.KindPerson,
			Name:   "Jane Doe",
			Role:   "Buyer",
			Usages: []model.EntityUsage{},
		},
	}

	if err := SaveEntities(root, entities); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadEntities(root)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(loaded, entities) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", loaded, entities)
	}

	// ISO-8601 date survives as-is.
	if loaded[1].Date != "2026-03-01" {
		t.Errorf("date = %q", loaded[1].Date)
	}
}

func TestLoadEntitiesMissingStore(t *testing.T) {
	root := t.TempDir()
	entities, err := LoadEntities(root)
	if err != nil {
		t.Fatalf("missing store should not error: %v", err)
	}
	if entities != nil {
		t.Errorf("got %+v, want nil", entities)
	}
}

func TestFind(t *testing.T) {
	root := initWorkspace(t)
	nested := filepath.Join(root, "contracts", "2026")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	found, err := Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if found != root {
		t.Errorf("Find = %q, want %q", found, root)
	}

	if _, err := Find(t.TempDir()); err == nil {
		t.Error("Find outside a workspace should error")
	}
}

func TestInitTwice(t *testing.T) {
	root := initWorkspace(t)
	if err := Init(root); err == nil {
		t.Error("second Init should error")
	}
}

func TestWalkDrafts(t *testing.T) {
	root := initWorkspace(t)
	write := func(rel, content string) {
		t.Helper()
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.md", "# A\n")
	write("sub/b.md", "# B\n")
	write("notes.txt", "not a draft")
	write(".vellum/hidden.md", "# skipped\n")

	var seen []string
	err := WalkDrafts(root, func(path, relPath string) error {
		seen = append(seen, relPath)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a.md", filepath.Join("sub", "b.md")}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("seen = %v, want %v", seen, want)
	}
}
