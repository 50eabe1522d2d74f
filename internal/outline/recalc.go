package outline

import (
	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/outline/numbering"
)

// Recalculate replaces every entity's Usages with a fresh scan of blocks
// under style. It is pure and idempotent: the inputs are not mutated, and
// calling it twice with unchanged inputs yields value-equal output.
//
// Callers invoke it whenever the outline structure or the numbering style
// changes; Usages read between a change and the next Recalculate are stale.
// An empty blocks slice is not an error: every entity comes back with empty
// usages (the orphan state the CLI surfaces as a warning).
func Recalculate(entities []model.TaggedEntity, blocks []model.OutlineBlock, style numbering.Style) []model.TaggedEntity {
	updated := make([]model.TaggedEntity, len(entities))
	for i, entity := range entities {
		entity.Usages = ScanUsages(entity.MatchText(), blocks, style)
		if entity.Usages == nil {
			entity.Usages = []model.EntityUsage{}
		}
		updated[i] = entity
	}
	return updated
}

// Orphaned returns the entities whose last recalculation found no usages.
func Orphaned(entities []model.TaggedEntity) []model.TaggedEntity {
	var orphans []model.TaggedEntity
	for _, entity := range entities {
		if len(entity.Usages) == 0 {
			orphans = append(orphans, entity)
		}
	}
	return orphans
}
