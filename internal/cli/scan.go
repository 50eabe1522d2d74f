package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vellumtools/vellum/internal/index"
	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/outline"
	"github.com/vellumtools/vellum/internal/paths"
	"github.com/vellumtools/vellum/internal/ui"
	"github.com/vellumtools/vellum/internal/workspace"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Recalculate entity usages across all drafts",
	Long: `Scan parses every markdown draft into outline blocks, finds each tagged
entity's occurrences, and replaces the stored usages wholesale. Run it after
editing drafts or changing the numbering style; usages are derived data and
are stale until the next scan.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		entities, err := workspace.LoadEntities(resolvedWorkspace)
		if err != nil {
			return err
		}

		blocks, err := collectBlocks(resolvedWorkspace)
		if err != nil {
			return err
		}
		log.Debug().Int("blocks", len(blocks)).Int("entities", len(entities)).Msg("scanning")

		entities = outline.Recalculate(entities, blocks, cfg.Style())

		if err := workspace.SaveEntities(resolvedWorkspace, entities); err != nil {
			return err
		}

		db, err := index.Open(resolvedWorkspace)
		if err != nil {
			return &cliError{Code: ErrIndexError, Message: err.Error()}
		}
		defer db.Close()
		if err := db.Rebuild(entities); err != nil {
			return &cliError{Code: ErrIndexError, Message: err.Error()}
		}

		var warnings []Warning
		for _, orphan := range outline.Orphaned(entities) {
			warnings = append(warnings, Warning{
				Code:     WarnOrphanedEntity,
				Message:  fmt.Sprintf("%s %q has no usages in any draft", orphan.Kind, orphan.DisplayName()),
				EntityID: orphan.ID,
			})
		}

		elapsed := time.Since(start).Milliseconds()
		if jsonOutput {
			outputSuccessWithWarnings(entities, warnings, &Meta{Count: len(entities), ScanTimeMs: elapsed})
			return nil
		}

		total := 0
		for _, e := range entities {
			total += len(e.Usages)
		}
		fmt.Println(ui.Successf("scanned %d blocks, %d entities, %d usages", len(blocks), len(entities), total))
		for _, w := range warnings {
			fmt.Println(ui.Warning(w.Message))
		}
		return nil
	},
}

// collectBlocks parses every draft in the workspace into outline blocks.
// Block IDs are namespaced by draft path so addressing stays unique across
// files.
func collectBlocks(root string) ([]model.OutlineBlock, error) {
	var blocks []model.OutlineBlock
	err := workspace.WalkDrafts(root, func(path, relPath string) error {
		source, err := os.ReadFile(path)
		if err != nil {
			return &cliError{Code: ErrFileReadError, Message: fmt.Sprintf("failed to read %s: %v", relPath, err)}
		}

		fileBlocks, err := workspace.ParseDraft(source, relPath)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", relPath, err)
		}
		for _, block := range fileBlocks {
			block.ID = paths.BlockRef(relPath, block.ID)
			blocks = append(blocks, block)
		}
		log.Debug().Str("draft", relPath).Int("blocks", len(fileBlocks)).Msg("parsed draft")
		return nil
	})
	return blocks, err
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
