package handlers

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/surveykit/internal/editor"
	"github.com/imamik/surveykit/internal/survey"
	"github.com/imamik/surveykit/internal/ui/tui"
)

func TestEdit_FreshSurvey(t *testing.T) {
	setupHandlerTest(t)

	var steps []survey.StepKind
	runEditor = func(_ context.Context, ed *editor.Editor, exportFn tui.ExportFunc) error {
		for _, s := range ed.Snapshot().Doc.Steps {
			steps = append(steps, s.Kind())
		}
		assert.NotNil(t, exportFn)
		return nil
	}

	require.NoError(t, Edit(context.Background(), &Globals{}, EditOptions{}))
	assert.Equal(t, []survey.StepKind{survey.KindCheckbox, survey.KindOrdering, survey.KindScore, survey.KindText}, steps)
}

func TestEdit_FromDefinitionAndExport(t *testing.T) {
	cfg, _ := setupHandlerTest(t)
	def := writeWineQuiz(t)

	var done tui.ExportDoneMsg
	runEditor = func(ctx context.Context, ed *editor.Editor, exportFn tui.ExportFunc) error {
		doc := ed.Snapshot().Doc
		assert.Equal(t, "Wine Quiz", doc.Meta.Title)
		require.Len(t, doc.Steps, 2)
		assert.Equal(t, 2, ed.Registry().Active())

		var err error
		done, err = exportFn(ctx, doc)
		return err
	}

	require.NoError(t, Edit(context.Background(), &Globals{}, EditOptions{From: def}))
	assert.Equal(t, filepath.Join(cfg.Export.OutputDir, "Wine Quiz.zip"), done.Result.Path)
	assert.Equal(t, 2, done.Result.Images)
}

func TestEdit_OutputDirFlag(t *testing.T) {
	setupHandlerTest(t)
	dir := t.TempDir()

	runEditor = func(ctx context.Context, ed *editor.Editor, exportFn tui.ExportFunc) error {
		ed.SetMetaField(editor.FieldTitle, "Flagged")
		_, err := exportFn(ctx, ed.Snapshot().Doc)
		return err
	}

	require.NoError(t, Edit(context.Background(), &Globals{}, EditOptions{OutputDir: dir}))
	assert.FileExists(t, filepath.Join(dir, "Flagged.zip"))
}

func TestEdit_RevokesURLsOnExit(t *testing.T) {
	setupHandlerTest(t)

	var ed *editor.Editor
	runEditor = func(_ context.Context, e *editor.Editor, _ tui.ExportFunc) error {
		ed = e
		return nil
	}

	require.NoError(t, Edit(context.Background(), &Globals{}, EditOptions{From: writeWineQuiz(t)}))
	require.NotNil(t, ed)
	assert.Equal(t, 0, ed.Registry().Active())
}

func TestEdit_Errors(t *testing.T) {
	t.Run("definition fails to load", func(t *testing.T) {
		setupHandlerTest(t)
		runEditor = func(context.Context, *editor.Editor, tui.ExportFunc) error {
			t.Fatal("editor must not start")
			return nil
		}

		err := Edit(context.Background(), &Globals{}, EditOptions{From: "/does/not/exist.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load survey")
	})

	t.Run("editor error is returned", func(t *testing.T) {
		setupHandlerTest(t)
		runEditor = func(context.Context, *editor.Editor, tui.ExportFunc) error {
			return errors.New("TUI error: no tty")
		}

		err := Edit(context.Background(), &Globals{}, EditOptions{})
		require.EqualError(t, err, "TUI error: no tty")
	})

	t.Run("upload without bucket", func(t *testing.T) {
		setupHandlerTest(t)
		err := Edit(context.Background(), &Globals{}, EditOptions{Upload: true})
		require.ErrorIs(t, err, errUploadNotConfigured)
	})
}
