// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/surveykit/internal/config"
	"github.com/imamik/surveykit/internal/logging"
	"github.com/imamik/surveykit/internal/metrics"
	"github.com/imamik/surveykit/internal/surveyfile"
	"github.com/imamik/surveykit/internal/ui/tui"
	"github.com/imamik/surveykit/internal/wizard"
)

// Globals holds the flags shared by every command.
type Globals struct {
	ConfigPath string
	Verbosity  int
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig loads the tool configuration.
	loadConfig = config.Load

	// loadDefinition replays a definition file into an editor.
	loadDefinition = surveyfile.Load

	// runEditor runs the interactive editor until the author quits.
	runEditor = tui.Run

	// runWizard runs the guided wizard.
	runWizard = wizard.RunWizard

	// newUploader creates the archive uploader for the configured bucket.
	newUploader = newS3Uploader

	// pushMetrics pushes the metrics registry to a pushgateway.
	pushMetrics = metrics.Push

	// fileExists and confirmOverwrite guard definition files written by new.
	fileExists       = wizard.FileExists
	confirmOverwrite = wizard.ConfirmOverwrite

	// writeDefinition saves wizard answers as a definition file.
	writeDefinition = wizard.WriteDefinition

	// readFile reads a written archive back for upload.
	readFile = os.ReadFile

	// isTerminal reports whether w is an interactive terminal.
	isTerminal = func(w io.Writer) bool {
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}

	// stdout receives command summaries.
	stdout io.Writer = os.Stdout
)

// session is the configuration and logger of one command run.
type session struct {
	cfg    *config.Config
	log    logr.Logger
	closer io.Closer
}

// openSession loads the configuration and sets up logging. Logs go to
// logFile, then the configured file, then stderr. Interactive commands never
// log to stderr because the terminal belongs to the UI.
func openSession(ctx context.Context, g *Globals, logFile string, interactive bool) (context.Context, *session, error) {
	cfg, err := loadConfig(g.ConfigPath)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to load config: %w", err)
	}

	verbosity := max(cfg.Log.Verbosity, g.Verbosity)
	if logFile == "" {
		logFile = cfg.Log.File
	}

	s := &session{cfg: cfg}
	switch {
	case logFile != "":
		log, closer, err := logging.OpenFile(logFile, verbosity)
		if err != nil {
			return ctx, nil, err
		}
		s.log, s.closer = log, closer
	case interactive:
		s.log = logr.Discard()
	default:
		s.log = logging.Stderr(verbosity)
	}

	s.log = s.log.WithName("surveykit")
	return logging.NewContext(ctx, s.log), s, nil
}

// Close releases the log file, if any.
func (s *session) Close() {
	if s != nil && s.closer != nil {
		_ = s.closer.Close()
	}
}
