package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/surveykit/cmd/surveykit/handlers"
)

// New returns the command for the guided survey wizard.
//
// Flags:
//
//	--output-dir, -o: Directory the archive is written to
//	--save, -s: Also save the answers as a survey definition
//	--upload: Also upload the archive to the configured bucket
func New(g *handlers.Globals) *cobra.Command {
	var opts handlers.NewOptions

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a survey with a guided wizard",
		Long: `Create a survey by answering a few questions.

The wizard asks for the survey details, the number of steps and, for
each step, its type, question and options. The result is exported as a
zip archive right away.

Use --save to keep the answers as a definition file that can be edited
with 'surveykit edit --from' or exported again with 'surveykit export'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.New(cmd.Context(), g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "Directory for the archive (default from config)")
	cmd.Flags().StringVarP(&opts.SavePath, "save", "s", "", "Save the answers as a definition file")
	cmd.Flags().BoolVar(&opts.Upload, "upload", false, "Upload the archive to the configured bucket")

	return cmd
}
