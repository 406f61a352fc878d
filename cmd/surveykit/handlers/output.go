package handlers

import (
	"fmt"

	"github.com/imamik/surveykit/internal/export"
	"github.com/imamik/surveykit/internal/survey"
)

// printWelcome prints the wizard welcome message.
func printWelcome() {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "surveykit - Survey Builder")
	fmt.Fprintln(stdout, "==========================")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "This wizard creates a survey with up to %d steps.\n", survey.MaxSteps)
	fmt.Fprintln(stdout, "The survey is exported as a zip archive when you are done.")
	fmt.Fprintln(stdout)
}

// printExportSuccess prints the archive summary and next steps.
func printExportSuccess(res export.Result, key string, doc survey.Document) {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Survey exported!")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  File:   %s\n", res.Path)
	fmt.Fprintf(stdout, "  Size:   %d bytes\n", res.Size)
	fmt.Fprintf(stdout, "  Images: %d\n", res.Images)
	if key != "" {
		fmt.Fprintf(stdout, "  Upload: %s\n", key)
	}
	fmt.Fprintln(stdout)

	// Summary
	fmt.Fprintln(stdout, "Survey Summary")
	fmt.Fprintln(stdout, "--------------")
	title := doc.Meta.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(stdout, "  Title:  %s\n", title)
	if doc.Meta.Vinoks != "" {
		fmt.Fprintf(stdout, "  Vinoks: %s\n", doc.Meta.Vinoks)
	}
	for i, step := range doc.Steps {
		question := step.Question
		if question == "" {
			question = "(no question)"
		}
		fmt.Fprintf(stdout, "  %d. %-8s %s\n", i+1, step.Kind(), question)
	}
	fmt.Fprintln(stdout)
}
