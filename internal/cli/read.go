package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vellumtools/vellum/internal/ui"
)

var readCmd = &cobra.Command{
	Use:   "read <draft>",
	Short: "Render a draft in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !filepath.IsAbs(path) {
			path = filepath.Join(resolvedWorkspace, path)
		}
		source, err := os.ReadFile(path)
		if err != nil {
			return &cliError{Code: ErrFileNotFound, Message: fmt.Sprintf("failed to read %s: %v", args[0], err)}
		}

		display := ui.NewDisplayContext()
		if !display.IsTTY || jsonOutput {
			fmt.Print(string(source))
			return nil
		}

		rendered, err := ui.RenderMarkdown(string(source), display.TermWidth)
		if err != nil {
			return err
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
