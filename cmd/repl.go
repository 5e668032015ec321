package cmd

import (
	"github.com/luthersystems/malread/repl"
	"github.com/spf13/cobra"
)

var (
	replPrompt    string
	replMultiline bool
	replColor     bool
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive read-print loop",
	Long: `Run an interactive read-print loop.  Each line typed at the prompt is
read and the forms it contains are printed back.  Ctrl-C or Ctrl-D ends the
session.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := replConfig(cmd)
	if err != nil {
		return err
	}
	return repl.RunRepl(cmd.Context(), cfg)
}

// replConfig loads the configuration file and applies any flags given on
// the command line over it.
func replConfig(cmd *cobra.Command) (*repl.Config, error) {
	cfg, err := repl.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("prompt") {
		cfg.Prompt = replPrompt
	}
	if flags.Changed("multiline") {
		cfg.Multiline = replMultiline
	}
	if flags.Changed("color") {
		cfg.Color = replColor
	}
	return cfg, nil
}

func addReplFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&replPrompt, "prompt", repl.DefaultPrompt,
		"Prompt displayed while waiting for input")
	cmd.Flags().BoolVarP(&replMultiline, "multiline", "m", false,
		"Continue unfinished forms on the following line")
	cmd.Flags().BoolVar(&replColor, "color", false,
		"Highlight error messages")
}

func init() {
	rootCmd.AddCommand(replCmd)

	addReplFlags(rootCmd)
	addReplFlags(replCmd)
}
