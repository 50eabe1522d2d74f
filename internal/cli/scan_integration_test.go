package cli

import (
	"testing"

	"github.com/vellumtools/vellum/internal/config"
	"github.com/vellumtools/vellum/internal/index"
	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/outline"
	"github.com/vellumtools/vellum/internal/testutil"
)

// Exercises the scan pipeline end to end: drafts on disk through block
// collection, recalculation, the entity store, and the usage index.
func TestScanPipeline(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	ws.WriteDraft("contracts/msa.md", `# Definitions

## Payment Terms

- The Buyer shall pay Acme Corp within 30 days.
- Acme Corp may suspend delivery.

## Termination

- Either party may terminate.
`)
	ws.SaveEntities([]model.TaggedEntity{
		{ID: "term:acme-corp", Kind: model.KindTerm, Term: "Acme Corp"},
	})

	blocks, err := collectBlocks(ws.Path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(blocks), 1)
	testutil.AssertEqual(t, blocks[0].ID, "contracts/msa.md#definitions")

	entities := outline.Recalculate(ws.LoadEntities(), blocks, config.Default().Style())
	testutil.AssertEqual(t, len(entities), 1)

	wantUsages := []model.EntityUsage{
		{
			BlockID:    "contracts/msa.md#definitions",
			NodeID:     "1/1",
			NodePrefix: "1.a",
			NodeLabel:  "The Buyer shall pay Acme Corp within 30 days.",
			Count:      1,
		},
		{
			BlockID:    "contracts/msa.md#definitions",
			NodeID:     "1/2",
			NodePrefix: "1.b",
			NodeLabel:  "Acme Corp may suspend delivery.",
			Count:      1,
		},
	}
	testutil.AssertDeepEqual(t, entities[0].Usages, wantUsages)

	ws.SaveEntities(entities)

	db, err := index.Open(ws.Path)
	testutil.AssertNoError(t, err)
	defer db.Close()
	testutil.AssertNoError(t, db.Rebuild(entities))

	indexed, err := db.UsagesFor("term:acme-corp")
	testutil.AssertNoError(t, err)
	testutil.AssertDeepEqual(t, indexed, wantUsages)
}
