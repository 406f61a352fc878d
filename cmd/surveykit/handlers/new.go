package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/surveykit/internal/editor"
)

var errOverwriteDeclined = errors.New("definition file exists and overwrite was declined")

// NewOptions holds the flags of the new command.
type NewOptions struct {
	OutputDir string
	SavePath  string
	Upload    bool
}

// New runs the guided wizard, then exports the resulting survey.
func New(ctx context.Context, g *Globals, opts NewOptions) error {
	ctx, s, err := openSession(ctx, g, "", false)
	if err != nil {
		return err
	}
	defer s.Close()

	exp, err := newExporter(ctx, s.cfg, opts.OutputDir, "", opts.Upload)
	if err != nil {
		return err
	}

	if opts.SavePath != "" && fileExists(opts.SavePath) {
		ok, err := confirmOverwrite(opts.SavePath)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			return errOverwriteDeclined
		}
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	ed := editor.New(editor.WithLogger(s.log))
	defer ed.Close()

	if err := result.Apply(ctx, ed); err != nil {
		return fmt.Errorf("failed to build survey: %w", err)
	}

	if opts.SavePath != "" {
		if err := writeDefinition(result.Definition(), opts.SavePath); err != nil {
			return fmt.Errorf("failed to save definition: %w", err)
		}
		fmt.Fprintf(stdout, "Definition saved to %s\n", opts.SavePath)
	}

	res, key, err := exp.Run(ctx, ed.Snapshot().Doc)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	printExportSuccess(res, key, ed.Snapshot().Doc)
	return nil
}
