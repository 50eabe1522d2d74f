package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/vellumtools/vellum/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		version := buildinfo.Version
		if version == "" {
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				version = info.Main.Version
			} else {
				version = "dev"
			}
		}

		if jsonOutput {
			outputSuccess(map[string]string{
				"version": version,
				"commit":  buildinfo.Commit,
				"date":    buildinfo.Date,
			}, nil)
			return nil
		}

		fmt.Printf("vlm %s\n", version)
		if buildinfo.Commit != "" {
			fmt.Printf("commit: %s\n", buildinfo.Commit)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
