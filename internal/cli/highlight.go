package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vellumtools/vellum/internal/highlight"
	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/richtext"
	"github.com/vellumtools/vellum/internal/slugs"
	"github.com/vellumtools/vellum/internal/ui"
	"github.com/vellumtools/vellum/internal/workspace"
)

var (
	highlightMode   string
	highlightKind   string
	highlightSelect string
)

var highlightCmd = &cobra.Command{
	Use:   "highlight <draft>",
	Short: "Preview a draft with entity occurrences highlighted",
	Long: `Highlight linearizes the draft's prose (so entity names split across
formatting boundaries still match), computes the decoration set for the
active highlight sessions, and renders the draft with one color per entity
kind.

Modes: all (every entity), selected (only --select), none.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := buildSessions()
		if err != nil {
			return err
		}

		path := args[0]
		if !filepath.IsAbs(path) {
			path = filepath.Join(resolvedWorkspace, path)
		}
		source, err := os.ReadFile(path)
		if err != nil {
			return &cliError{Code: ErrFileNotFound, Message: fmt.Sprintf("failed to read %s: %v", args[0], err)}
		}

		entities, err := workspace.LoadEntities(resolvedWorkspace)
		if err != nil {
			return err
		}

		doc, err := richtext.ParseMarkdown(source)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}
		lin := richtext.Linearize(doc)

		set := highlight.Recompute(entities, sessions, lin)
		log.Debug().Int("decorations", set.Len()).Int("fragments", len(lin.Segments)).Msg("recomputed highlights")

		if jsonOutput {
			outputSuccess(set.Decorations(), &Meta{Count: set.Len()})
			return nil
		}

		fmt.Print(ui.RenderHighlighted(string(source), set))
		return nil
	},
}

// buildSessions translates the mode/kind/select flags into highlight
// sessions: one per kind, with non-targeted kinds muted when --kind or
// --select narrows the scope.
func buildSessions() ([]highlight.Session, error) {
	mode := highlight.Mode(highlightMode)
	if highlightMode == "" {
		mode = highlight.Mode(cfg.Highlight.Mode)
	}
	if !mode.Valid() {
		return nil, &cliError{
			Code:       ErrModeInvalid,
			Message:    fmt.Sprintf("unknown highlight mode %q", highlightMode),
			Suggestion: "valid modes: all, selected, none",
		}
	}

	var only model.EntityKind
	if highlightKind != "" {
		only = model.EntityKind(highlightKind)
		if !only.Valid() {
			return nil, &cliError{Code: ErrKindInvalid, Message: fmt.Sprintf("unknown entity kind %q", highlightKind)}
		}
	}
	if highlightSelect != "" {
		// --select implies selected mode; an explicit conflicting --mode is
		// a contradiction, not something to override silently.
		if highlightMode != "" && mode != highlight.ModeSelected {
			return nil, &cliError{
				Code:       ErrInvalidInput,
				Message:    fmt.Sprintf("--select cannot be combined with --mode %s", mode),
				Suggestion: "drop --mode, or use --mode selected",
			}
		}
		mode = highlight.ModeSelected
		if only == "" {
			only = slugs.KindOf(highlightSelect)
		}
	}

	sessions := make([]highlight.Session, 0, len(model.Kinds))
	for _, kind := range model.Kinds {
		s := highlight.Session{Kind: kind, Mode: mode}
		if only != "" && kind != only {
			s.Mode = highlight.ModeNone
		}
		if s.Mode == highlight.ModeSelected && kind == only {
			s.SelectedID = highlightSelect
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func init() {
	highlightCmd.Flags().StringVar(&highlightMode, "mode", "", "highlight mode: all, selected, none (default: config)")
	highlightCmd.Flags().StringVar(&highlightKind, "kind", "", "restrict to one entity kind")
	highlightCmd.Flags().StringVar(&highlightSelect, "select", "", "highlight only this entity id")
	rootCmd.AddCommand(highlightCmd)
}
