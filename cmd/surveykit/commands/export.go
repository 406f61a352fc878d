package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/surveykit/cmd/surveykit/handlers"
)

// Export returns the command for exporting a survey definition as an archive.
//
// Flags:
//
//	--from, -f: Survey definition (required)
//	--output-dir, -o: Directory the archive is written to
//	--collisions: Policy for distinct images sharing a file name
//	--upload: Also upload the archive to the configured bucket
func Export(g *handlers.Globals) *cobra.Command {
	var opts handlers.ExportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a survey definition as a zip archive",
		Long: `Export a survey definition as a zip archive.

The archive holds survey.json and every attached image under images/.
When two different images share a file name, --collisions decides:

  rename     store the second one as name-1.ext (default)
  reject     fail the export
  overwrite  keep only the last one

Examples:
  surveykit export --from wine-quiz.yaml -o exports/
  surveykit export --from wine-quiz.yaml --upload`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Export(cmd.Context(), g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "Survey definition (required)")
	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "Directory for the archive (default from config)")
	cmd.Flags().StringVar(&opts.Collisions, "collisions", "", "Collision policy: rename, reject, overwrite (default from config)")
	cmd.Flags().BoolVar(&opts.Upload, "upload", false, "Upload the archive to the configured bucket")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
