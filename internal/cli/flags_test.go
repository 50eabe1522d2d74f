package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestGlobalFlagsRegistered(t *testing.T) {
	for _, name := range []string{"workspace", "json", "debug"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("global flag %q is not registered", name)
		}
	}
}

// Every flag in the command tree needs usage text; bare flags render as
// blank lines in help output.
func TestAllFlagsHaveUsage(t *testing.T) {
	var walk func(cmd *cobra.Command)
	walk = func(cmd *cobra.Command) {
		cmd.LocalFlags().VisitAll(func(flag *pflag.Flag) {
			if flag.Name == "help" {
				return
			}
			if flag.Usage == "" {
				t.Errorf("%s: flag %q has no usage text", cmd.CommandPath(), flag.Name)
			}
		})
		for _, sub := range cmd.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}
