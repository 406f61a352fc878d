package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/surveykit/cmd/surveykit/handlers"
)

// Edit returns the command for the interactive survey editor.
//
// Flags:
//
//	--from, -f: Survey definition to start from (default: fresh survey)
//	--output-dir, -o: Directory exported archives are written to
//	--log-file: File receiving log output while the editor runs
//	--upload: Also upload exported archives to the configured bucket
func Edit(g *handlers.Globals) *cobra.Command {
	var opts handlers.EditOptions

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a survey interactively",
		Long: `Edit a survey in the terminal with a live preview.

The left pane holds the survey form, the right pane previews the survey
as respondents will see it. Press ctrl+p to switch between the live and
the final preview, and ctrl+e to export the survey as a zip archive.

Examples:
  # Start from a fresh survey
  surveykit edit

  # Continue from a definition file
  surveykit edit --from wine-quiz.yaml -o exports/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Edit(cmd.Context(), g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "Survey definition to start from")
	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "Directory for exported archives (default from config)")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	cmd.Flags().BoolVar(&opts.Upload, "upload", false, "Upload exported archives to the configured bucket")

	return cmd
}
