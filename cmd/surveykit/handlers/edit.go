package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/surveykit/internal/editor"
)

// EditOptions holds the flags of the edit command.
type EditOptions struct {
	From      string
	OutputDir string
	LogFile   string
	Upload    bool
}

// Edit runs the interactive editor, optionally starting from a definition.
func Edit(ctx context.Context, g *Globals, opts EditOptions) error {
	ctx, s, err := openSession(ctx, g, opts.LogFile, true)
	if err != nil {
		return err
	}
	defer s.Close()

	exp, err := newExporter(ctx, s.cfg, opts.OutputDir, "", opts.Upload)
	if err != nil {
		return err
	}

	ed := editor.New(editor.WithLogger(s.log))
	defer ed.Close()

	if opts.From != "" {
		if err := loadDefinition(ctx, opts.From, ed); err != nil {
			return fmt.Errorf("failed to load survey: %w", err)
		}
	}

	s.log.V(1).Info("editor started", "from", opts.From, "outputDir", exp.dir, "upload", exp.uploader != nil)
	return runEditor(ctx, ed, exp.forEditor())
}
