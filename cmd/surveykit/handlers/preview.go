package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/imamik/surveykit/internal/editor"
	"github.com/imamik/surveykit/internal/preview"
)

// PreviewOptions holds the flags of the preview command.
type PreviewOptions struct {
	From   string
	Final  bool
	Format string
	Plain  bool
}

// Preview loads a definition and writes its preview to w. Text output is
// colored only when w is a terminal and Plain is not set.
func Preview(ctx context.Context, g *Globals, opts PreviewOptions, w io.Writer) error {
	format, err := preview.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	ctx, s, err := openSession(ctx, g, "", false)
	if err != nil {
		return err
	}
	defer s.Close()

	ed := editor.New(editor.WithLogger(s.log))
	defer ed.Close()

	if err := loadDefinition(ctx, opts.From, ed); err != nil {
		return fmt.Errorf("failed to load survey: %w", err)
	}

	mode := preview.ModeLive
	if opts.Final {
		mode = preview.ModeFinal
	}
	view := preview.Project(ed.Snapshot().Doc, mode)

	var out []byte
	if format == preview.FormatText {
		style := preview.Plain
		if !opts.Plain && isTerminal(w) {
			style = preview.Colored
		}
		out = []byte(preview.Render(view, style))
	} else {
		out, err = preview.Marshal(view, format)
		if err != nil {
			return err
		}
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}
