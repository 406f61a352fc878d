package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/surveykit/cmd/surveykit/handlers"
)

// Preview returns the command for printing a survey preview.
//
// Flags:
//
//	--from, -f: Survey definition (required)
//	--final: Show the final preview instead of the live one
//	--format: Output format: text, json or yaml
//	--plain: Disable colors even on a terminal
func Preview(g *handlers.Globals) *cobra.Command {
	var opts handlers.PreviewOptions

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the preview of a survey definition",
		Long: `Print the preview of a survey definition.

The live preview shows each step with its type and question, the final
preview shows the survey as respondents see it. The json and yaml formats
print the projected preview for scripting.

Examples:
  surveykit preview --from wine-quiz.yaml
  surveykit preview --from wine-quiz.yaml --final --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Preview(cmd.Context(), g, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "Survey definition (required)")
	cmd.Flags().BoolVar(&opts.Final, "final", false, "Show the final preview")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Disable colors")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
