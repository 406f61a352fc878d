package handlers

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/surveykit/internal/preview"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		opts     PreviewOptions
		contains []string
		excludes []string
	}{
		{
			name:     "live text",
			opts:     PreviewOptions{},
			contains: []string{"Wine Quiz", "Step 1 CHECKBOX", "Which wines?"},
			excludes: []string{"[10]"},
		},
		{
			name:     "final text",
			opts:     PreviewOptions{Final: true, Plain: true},
			contains: []string{"[10]", "Step 1: Which wines?", "Choose from 1 to 10"},
		},
		{
			name:     "json",
			opts:     PreviewOptions{Format: "json"},
			contains: []string{`"mode": "live"`, `"title"`},
		},
		{
			name:     "yaml",
			opts:     PreviewOptions{Final: true, Format: "yaml"},
			contains: []string{"mode: final", "reward: \"10\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHandlerTest(t)
			tt.opts.From = writeWineQuiz(t)

			var buf bytes.Buffer
			require.NoError(t, Preview(context.Background(), &Globals{}, tt.opts, &buf))

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, buf.String(), unwanted)
			}
		})
	}
}

func TestPreview_StyleSelection(t *testing.T) {
	tests := []struct {
		name     string
		terminal bool
		plain    bool
		want     preview.Style
	}{
		{name: "pipe", terminal: false, want: preview.Plain},
		{name: "terminal", terminal: true, want: preview.Colored},
		{name: "terminal with --plain", terminal: true, plain: true, want: preview.Plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHandlerTest(t)
			var asked io.Writer
			isTerminal = func(w io.Writer) bool {
				asked = w
				return tt.terminal
			}

			var buf bytes.Buffer
			opts := PreviewOptions{From: writeWineQuiz(t), Plain: tt.plain, Final: true}
			require.NoError(t, Preview(context.Background(), &Globals{}, opts, &buf))

			if !tt.plain {
				assert.Same(t, &buf, asked)
			}
			// The plain chip is bracketed; the colored one is not
			if tt.want.Chip("x") == "[x]" {
				assert.Contains(t, buf.String(), "[10]")
			} else {
				assert.NotContains(t, buf.String(), "[10]")
			}
		})
	}
}

func TestPreview_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		setupHandlerTest(t)
		err := Preview(context.Background(), &Globals{}, PreviewOptions{From: writeWineQuiz(t), Format: "xml"}, io.Discard)
		require.ErrorIs(t, err, preview.ErrUnknownFormat)
	})

	t.Run("missing definition", func(t *testing.T) {
		setupHandlerTest(t)
		err := Preview(context.Background(), &Globals{}, PreviewOptions{From: "/does/not/exist.yaml"}, io.Discard)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load survey")
	})
}
