// Package main is the entry point for the surveykit CLI.
//
// surveykit is a terminal survey builder. Authors edit a survey of up to four
// steps with a live preview and export it as a zip archive holding
// survey.json and the attached images, optionally uploading the archive to
// an S3-compatible bucket.
//
// Commands: edit, new, preview, export.
//
// For detailed usage information, run:
//
//	surveykit --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/surveykit/cmd/surveykit/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
