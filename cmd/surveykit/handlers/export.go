package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/surveykit/internal/editor"
)

// ExportOptions holds the flags of the export command.
type ExportOptions struct {
	From       string
	OutputDir  string
	Collisions string
	Upload     bool
}

// Export loads a definition and writes it as an archive.
func Export(ctx context.Context, g *Globals, opts ExportOptions) error {
	ctx, s, err := openSession(ctx, g, "", false)
	if err != nil {
		return err
	}
	defer s.Close()

	exp, err := newExporter(ctx, s.cfg, opts.OutputDir, opts.Collisions, opts.Upload)
	if err != nil {
		return err
	}

	ed := editor.New(editor.WithLogger(s.log))
	defer ed.Close()

	if err := loadDefinition(ctx, opts.From, ed); err != nil {
		return fmt.Errorf("failed to load survey: %w", err)
	}

	res, key, err := exp.Run(ctx, ed.Snapshot().Doc)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	printExportSuccess(res, key, ed.Snapshot().Doc)
	return nil
}
