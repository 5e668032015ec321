package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "malread",
	Short: "Read mal source text",
	Long: `Read mal source text and print the forms it contains.

Without a subcommand an interactive read-print loop is started.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRepl,
}

// Execute adds all child commands to the root command and runs it.  A
// non-nil error means the process should exit with a failure status.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file (.toml, .yaml or .yml)")
}
