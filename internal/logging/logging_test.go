package logging

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Verbosity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		verbosity int
		wantDebug bool
	}{
		{name: "default hides V(1)", verbosity: 0, wantDebug: false},
		{name: "verbose shows V(1)", verbosity: 1, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := New(&buf, tt.verbosity).WithName("export")

			log.Info("archive written", "name", "survey.zip")
			log.V(1).Info("ignored edit", "op", "moveOption")

			out := buf.String()
			assert.Contains(t, out, "export")
			assert.Contains(t, out, `"msg"="archive written"`)
			assert.Contains(t, out, `"name"="survey.zip"`)
			if tt.wantDebug {
				assert.Contains(t, out, "ignored edit")
			} else {
				assert.NotContains(t, out, "ignored edit")
			}
		})
	}
}

func TestNew_Error(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, 0).Error(errors.New("disk full"), "export failed")

	assert.Contains(t, buf.String(), `"error"="disk full"`)
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "surveykit.log")
	log, closer, err := OpenFile(path, 0)
	require.NoError(t, err)

	log.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	// No logger in the context yields a usable discard logger.
	FromContext(context.Background()).Info("dropped")

	var buf bytes.Buffer
	ctx := NewContext(context.Background(), New(&buf, 0))
	FromContext(ctx).Info("kept")

	assert.Contains(t, buf.String(), "kept")
}
