// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/surveykit/cmd/surveykit/handlers"
)

// Root returns the root command for the surveykit CLI.
//
// Global flags:
//
//	--config: Path to the tool configuration (default: $XDG_CONFIG_HOME/surveykit/config.yaml)
//	--verbose, -v: Increase log verbosity (repeatable)
func Root() *cobra.Command {
	g := &handlers.Globals{}

	cmd := &cobra.Command{
		Use:           "surveykit",
		Short:         "Build surveys with a live preview and export them as zip archives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "Path to configuration file")
	cmd.PersistentFlags().CountVarP(&g.Verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	// Core commands
	cmd.AddCommand(Edit(g))
	cmd.AddCommand(New(g))
	cmd.AddCommand(Preview(g))
	cmd.AddCommand(Export(g))

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
