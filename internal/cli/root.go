package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vellumtools/vellum/internal/config"
	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/ui"
	"github.com/vellumtools/vellum/internal/workspace"
)

var (
	// Global flags
	workspaceFlag string
	debugFlag     bool

	// Resolved values
	resolvedWorkspace string
	cfg               *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vlm",
	Short: "Vellum - entity tracking for outline drafts",
	Long: `Vellum tracks tagged entities (defined terms, dates, people, places)
across markdown outline drafts: it scans every outline block for each
entity's text, addresses the occurrences with structural prefixes like
"2.b.iii", and highlights them in terminal previews.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		if debugFlag {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		// Commands that don't need a workspace.
		switch cmd.Name() {
		case "init", "version", "help", "completion":
			return nil
		}

		start := workspaceFlag
		if start == "" {
			start = "."
		}
		root, err := workspace.Find(start)
		if err != nil {
			return &cliError{Code: ErrWorkspaceNotFound, Message: err.Error(), Suggestion: "run 'vlm init' to create a workspace"}
		}
		resolvedWorkspace = root

		cfg, err = config.Load(root)
		if err != nil {
			return &cliError{Code: ErrConfigInvalid, Message: err.Error()}
		}
		for _, kind := range model.Kinds {
			ui.ConfigureKindColor(kind, cfg.KindColor(kind))
		}

		log.Debug().Str("workspace", root).Msg("workspace resolved")
		return nil
	},
}

// cliError carries a stable error code alongside the message.
type cliError struct {
	Code       string
	Message    string
	Suggestion string
}

func (e *cliError) Error() string { return e.Message }

// Execute runs the root command and reports errors in the active output
// mode.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		var ce *cliError
		if e, ok := err.(*cliError); ok {
			ce = e
		} else {
			ce = &cliError{Code: ErrInvalidInput, Message: err.Error()}
		}

		if jsonOutput {
			outputError(ce.Code, ce.Message, ce.Suggestion)
		} else {
			fmt.Fprintln(os.Stderr, ui.Error(ce.Message))
			if ce.Suggestion != "" {
				fmt.Fprintln(os.Stderr, ui.Hint(ce.Suggestion))
			}
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&workspaceFlag, "workspace", "", "workspace path (default: walk up from cwd)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}
