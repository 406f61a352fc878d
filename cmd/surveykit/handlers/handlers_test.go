package handlers

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/surveykit/internal/config"
	"github.com/imamik/surveykit/internal/survey"
	surveytest "github.com/imamik/surveykit/internal/testing"
)

const wineQuiz = `title: Wine Quiz
description: Taste and tell
vinoks: "10"
image: cover.png
steps:
  - type: checkbox
    question: Which wines?
    options:
      - title: Red
        image: red.png
      - title: White
  - type: score
    question: Rate it
    maxScore: 10
`

// saveAndRestoreFactories saves and restores all factory functions.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origLoadConfig := loadConfig
	origLoadDefinition := loadDefinition
	origRunEditor := runEditor
	origRunWizard := runWizard
	origNewUploader := newUploader
	origPushMetrics := pushMetrics
	origFileExists := fileExists
	origConfirmOverwrite := confirmOverwrite
	origWriteDefinition := writeDefinition
	origReadFile := readFile
	origIsTerminal := isTerminal
	origStdout := stdout

	t.Cleanup(func() {
		loadConfig = origLoadConfig
		loadDefinition = origLoadDefinition
		runEditor = origRunEditor
		runWizard = origRunWizard
		newUploader = origNewUploader
		pushMetrics = origPushMetrics
		fileExists = origFileExists
		confirmOverwrite = origConfirmOverwrite
		writeDefinition = origWriteDefinition
		readFile = origReadFile
		isTerminal = origIsTerminal
		stdout = origStdout
	})
}

// setupHandlerTest installs a default configuration and captures stdout.
// The returned config can be adjusted before the handler runs.
func setupHandlerTest(t *testing.T) (*config.Config, *bytes.Buffer) {
	t.Helper()
	saveAndRestoreFactories(t)

	cfg := config.Default()
	cfg.Export.OutputDir = t.TempDir()
	loadConfig = func(string) (*config.Config, error) { return cfg, nil }

	var out bytes.Buffer
	stdout = &out
	return cfg, &out
}

// writeWineQuiz writes the wine quiz definition and its images to a new
// directory and returns the definition path.
func writeWineQuiz(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	surveytest.WriteImage(t, dir, "cover.png", "cover")
	surveytest.WriteImage(t, dir, "red.png", "red")
	path := filepath.Join(dir, "wine-quiz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(wineQuiz), 0o600))
	return path
}

// surveyDoc returns a small document with one checkbox step.
func surveyDoc(t *testing.T) survey.Document {
	t.Helper()
	return surveytest.NewDocumentBuilder().
		WithTitle("Wine Quiz").
		WithStep(survey.KindCheckbox, "Which wines?", "Red", "White").
		Build()
}

// fakeUploader records uploads.
type fakeUploader struct {
	names []string
	data  [][]byte
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, name string, data []byte) (string, error) {
	f.names = append(f.names, name)
	f.data = append(f.data, data)
	if f.err != nil {
		return "", f.err
	}
	return "surveys/" + name, nil
}

func TestOpenSession(t *testing.T) {
	t.Run("config error", func(t *testing.T) {
		saveAndRestoreFactories(t)
		loadConfig = func(string) (*config.Config, error) { return nil, errors.New("bad yaml") }

		_, _, err := openSession(context.Background(), &Globals{}, "", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config: bad yaml")
	})

	t.Run("passes config path", func(t *testing.T) {
		saveAndRestoreFactories(t)
		var gotPath string
		loadConfig = func(path string) (*config.Config, error) {
			gotPath = path
			return config.Default(), nil
		}

		_, s, err := openSession(context.Background(), &Globals{ConfigPath: "/etc/surveykit.yaml"}, "", false)
		require.NoError(t, err)
		defer s.Close()
		assert.Equal(t, "/etc/surveykit.yaml", gotPath)
	})

	t.Run("log file from flag", func(t *testing.T) {
		saveAndRestoreFactories(t)
		loadConfig = func(string) (*config.Config, error) { return config.Default(), nil }
		logFile := filepath.Join(t.TempDir(), "logs", "surveykit.log")

		_, s, err := openSession(context.Background(), &Globals{Verbosity: 1}, logFile, true)
		require.NoError(t, err)
		s.log.V(1).Info("hello from test")
		s.Close()

		content, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "hello from test")
	})

	t.Run("log file from config", func(t *testing.T) {
		saveAndRestoreFactories(t)
		cfg := config.Default()
		cfg.Log.File = filepath.Join(t.TempDir(), "configured.log")
		loadConfig = func(string) (*config.Config, error) { return cfg, nil }

		_, s, err := openSession(context.Background(), &Globals{}, "", true)
		require.NoError(t, err)
		s.log.Info("configured")
		s.Close()

		assert.FileExists(t, cfg.Log.File)
	})

	t.Run("interactive without file discards", func(t *testing.T) {
		saveAndRestoreFactories(t)
		loadConfig = func(string) (*config.Config, error) { return config.Default(), nil }

		_, s, err := openSession(context.Background(), &Globals{}, "", true)
		require.NoError(t, err)
		defer s.Close()
		assert.False(t, s.log.Enabled())
	})
}

func TestSessionClose_Nil(t *testing.T) {
	var s *session
	assert.NotPanics(t, s.Close)
}
