package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vellumtools/vellum/internal/dates"
	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/slugs"
	"github.com/vellumtools/vellum/internal/ui"
	"github.com/vellumtools/vellum/internal/workspace"
)

var (
	entityDefinition   string
	entityDate         string
	entityRole         string
	entitySignificance string
)

var entityCmd = &cobra.Command{
	Use:   "entity",
	Short: "Manage tagged entities",
}

var entityAddCmd = &cobra.Command{
	Use:   "add <kind> <text>",
	Short: "Tag a new entity (kind: term, date, person, or place)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := model.EntityKind(args[0])
		if !kind.Valid() {
			return &cliError{
				Code:       ErrKindInvalid,
				Message:    fmt.Sprintf("unknown entity kind %q", args[0]),
				Suggestion: "valid kinds: term, date, person, place",
			}
		}
		text := args[1]

		entity := model.TaggedEntity{Kind: kind, Usages: []model.EntityUsage{}}
		switch kind {
		case model.KindTerm:
			entity.Term = text
			entity.Definition = entityDefinition
		case model.KindDate:
			entity.RawText = text
			raw := entityDate
			if raw == "" {
				raw = text
			}
			parsed, err := dates.Parse(raw)
			if err != nil {
				return &cliError{Code: ErrDateInvalid, Message: err.Error(), Suggestion: "pass --date YYYY-MM-DD when the tagged text is not a parseable date"}
			}
			entity.Date = dates.Format(parsed)
		case model.KindPerson:
			entity.Name = text
			entity.Role = entityRole
		case model.KindPlace:
			entity.Name = text
			entity.Significance = entitySignificance
		}

		entities, err := workspace.LoadEntities(resolvedWorkspace)
		if err != nil {
			return err
		}

		entity.ID = slugs.EntityID(kind, text)
		if workspace.HasEntity(entities, entity.ID) {
			entity.ID = slugs.Disambiguate(entity.ID)
		}

		entities = append(entities, entity)
		if err := workspace.SaveEntities(resolvedWorkspace, entities); err != nil {
			return err
		}

		if jsonOutput {
			outputSuccess(entity, nil)
			return nil
		}
		fmt.Println(ui.Successf("tagged %s %s", kind, ui.Accent.Render(entity.DisplayName())))
		fmt.Println(ui.Hint("id: " + entity.ID))
		return nil
	},
}

var entityListCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List tagged entities",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entities, err := workspace.LoadEntities(resolvedWorkspace)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			kind := model.EntityKind(args[0])
			if !kind.Valid() {
				return &cliError{Code: ErrKindInvalid, Message: fmt.Sprintf("unknown entity kind %q", args[0])}
			}
			var filtered []model.TaggedEntity
			for _, e := range entities {
				if e.Kind == kind {
					filtered = append(filtered, e)
				}
			}
			entities = filtered
		}

		if jsonOutput {
			outputSuccess(entities, &Meta{Count: len(entities)})
			return nil
		}

		if len(entities) == 0 {
			fmt.Println(ui.Hint("no entities tagged"))
			return nil
		}

		table := ui.NewTable(4)
		for _, e := range entities {
			table.AddRow(e.ID, string(e.Kind), e.DisplayName(), fmt.Sprintf("%d usages", len(e.Usages)))
		}
		fmt.Print(table.String())
		return nil
	},
}

var entityRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a tagged entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		entities, err := workspace.LoadEntities(resolvedWorkspace)
		if err != nil {
			return err
		}

		kept := entities[:0:0]
		found := false
		for _, e := range entities {
			if e.ID == id {
				found = true
				continue
			}
			kept = append(kept, e)
		}
		if !found {
			return &cliError{Code: ErrEntityNotFound, Message: fmt.Sprintf("entity %q not found", id)}
		}

		if err := workspace.SaveEntities(resolvedWorkspace, kept); err != nil {
			return err
		}

		if jsonOutput {
			outputSuccess(map[string]string{"removed": id}, nil)
			return nil
		}
		fmt.Println(ui.Successf("removed %s", id))
		return nil
	},
}

func init() {
	entityAddCmd.Flags().StringVar(&entityDefinition, "definition", "", "definition for a term entity")
	entityAddCmd.Flags().StringVar(&entityDate, "date", "", "ISO date for a date entity (default: parse the tagged text)")
	entityAddCmd.Flags().StringVar(&entityRole, "role", "", "role for a person entity")
	entityAddCmd.Flags().StringVar(&entitySignificance, "significance", "", "significance for a place entity")

	entityCmd.AddCommand(entityAddCmd)
	entityCmd.AddCommand(entityListCmd)
	entityCmd.AddCommand(entityRemoveCmd)
	rootCmd.AddCommand(entityCmd)
}
