package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vellumtools/vellum/internal/index"
	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/paths"
	"github.com/vellumtools/vellum/internal/ui"
)

var usagesCmd = &cobra.Command{
	Use:   "usages <entity-id|text>",
	Short: "Show where an entity is used",
	Long: `Usages reads the usage index built by 'vlm scan'. The argument is an
entity id (term:acme-corp) or free text matched against entity names.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := index.Open(resolvedWorkspace)
		if err != nil {
			return &cliError{Code: ErrIndexError, Message: err.Error()}
		}
		defer db.Close()

		ids := []string{args[0]}
		usages, err := db.UsagesFor(args[0])
		if errors.Is(err, index.ErrEntityNotFound) {
			// Not an id: fall back to a text search over entity names.
			ids, err = db.EntityIDsMatching(args[0])
			if err != nil {
				return &cliError{Code: ErrIndexError, Message: err.Error()}
			}
			if len(ids) == 0 {
				return &cliError{
					Code:       ErrEntityNotFound,
					Message:    fmt.Sprintf("no indexed entity matches %q", args[0]),
					Suggestion: "run 'vlm scan' to rebuild the index",
				}
			}
		} else if err != nil {
			return &cliError{Code: ErrIndexError, Message: err.Error()}
		} else {
			return printUsages(db, args[0], usages)
		}

		for _, id := range ids {
			usages, err := db.UsagesFor(id)
			if err != nil {
				return &cliError{Code: ErrIndexError, Message: err.Error()}
			}
			if err := printUsages(db, id, usages); err != nil {
				return err
			}
		}
		return nil
	},
}

func printUsages(db *index.Database, entityID string, usages []model.EntityUsage) error {
	if jsonOutput {
		outputSuccess(map[string]interface{}{
			"entity_id": entityID,
			"usages":    usages,
		}, &Meta{Count: len(usages)})
		return nil
	}

	fmt.Println(ui.Header(entityID) + " " + ui.Count(len(usages), "usage", "usages"))
	if len(usages) == 0 {
		fmt.Println(ui.Hint("  orphaned: not used in any draft"))
		return nil
	}

	table := ui.NewTable(4)
	for _, u := range usages {
		draft, _ := paths.SplitBlockRef(u.BlockID)
		table.AddRow("  "+u.NodePrefix, draft, truncate(u.NodeLabel, 60), "×"+strconv.Itoa(u.Count))
	}
	fmt.Print(table.String())
	return nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func init() {
	rootCmd.AddCommand(usagesCmd)
}
