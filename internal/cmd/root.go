package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	return NewRootCommand(version, commit).Execute()
}

// NewRootCommand returns the "zwm" command with all subcommands attached.
func NewRootCommand(version, commit string) *cobra.Command {
	a := &App{}

	root := &cobra.Command{
		Use:          "zwm",
		Short:        "Hide text inside other text with zero width characters",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()
			return a.Init()
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.zwm/config.toml)")

	root.AddCommand(
		newEmbedCommand(a),
		newExtractCommand(a),
		newStripCommand(a),
		newInspectCommand(a),
	)

	return root
}
