package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vellumtools/vellum/internal/config"
	"github.com/vellumtools/vellum/internal/ui"
	"github.com/vellumtools/vellum/internal/workspace"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a new workspace",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		if err := workspace.Init(abs); err != nil {
			return &cliError{Code: ErrWorkspaceExists, Message: err.Error()}
		}
		if err := config.Default().Save(abs); err != nil {
			return &cliError{Code: ErrConfigInvalid, Message: err.Error()}
		}

		if jsonOutput {
			outputSuccess(map[string]string{"workspace": abs}, nil)
			return nil
		}
		fmt.Println(ui.Successf("initialized workspace at %s", abs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
