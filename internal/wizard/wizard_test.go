package wizard

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/surveykit/internal/editor"
	"github.com/imamik/surveykit/internal/survey"
	surveytest "github.com/imamik/surveykit/internal/testing"
)

func wineQuiz(dir string) *Result {
	return &Result{
		Title:       "  Wine Quiz ",
		Description: "Taste and tell",
		Vinoks:      "10",
		ImagePath:   filepath.Join(dir, "cover.png"),
		Steps: []StepAnswers{
			{
				Kind:     survey.KindCheckbox,
				Question: "Which wines?",
				Options: []OptionAnswers{
					{Title: "Red", Description: "Malbec", ImagePath: filepath.Join(dir, "red.png")},
					{Title: "White"},
				},
			},
			{Kind: survey.KindText, Question: "Comments?", Stars: 3},
			{Kind: survey.KindScore, Question: "Rate it", MaxScore: 10},
		},
	}
}

func TestResult_Definition(t *testing.T) {
	t.Parallel()

	def := wineQuiz("/pics").Definition()

	assert.Equal(t, "Wine Quiz", def.Title)
	assert.Equal(t, "10", def.Vinoks)
	assert.Equal(t, "/pics/cover.png", def.Image)
	require.Len(t, def.Steps, 3)

	assert.Equal(t, "checkbox", def.Steps[0].Type)
	require.Len(t, def.Steps[0].Options, 2)
	assert.Equal(t, "Red", def.Steps[0].Options[0].Title)
	assert.Equal(t, "/pics/red.png", def.Steps[0].Options[0].Image)
	assert.Nil(t, def.Steps[0].Stars)

	assert.Equal(t, "text", def.Steps[1].Type)
	require.NotNil(t, def.Steps[1].Stars)
	assert.Equal(t, 3, *def.Steps[1].Stars)
	assert.Nil(t, def.Steps[1].MaxScore)

	assert.Equal(t, "score", def.Steps[2].Type)
	require.NotNil(t, def.Steps[2].MaxScore)
	assert.Equal(t, 10, *def.Steps[2].MaxScore)

	require.NoError(t, def.Validate())
}

func TestResult_Definition_DropsFieldsOfOtherKinds(t *testing.T) {
	t.Parallel()

	r := &Result{Steps: []StepAnswers{
		{Kind: survey.KindScore, Question: "q", Stars: 4, Options: []OptionAnswers{{Title: "stale"}}},
	}}
	def := r.Definition()

	require.Len(t, def.Steps, 1)
	assert.Nil(t, def.Steps[0].Stars)
	assert.Nil(t, def.Steps[0].MaxScore)
	assert.Empty(t, def.Steps[0].Options)
	require.NoError(t, def.Validate())
}

func TestResult_Apply(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	surveytest.WriteImage(t, dir, "cover.png", "cover")
	surveytest.WriteImage(t, dir, "red.png", "red")

	ed := editor.New(editor.WithGenerator(survey.NewCounterGenerator("id-")))
	t.Cleanup(ed.Close)

	require.NoError(t, wineQuiz(dir).Apply(context.Background(), ed))

	state := ed.Snapshot()
	doc := state.Doc
	assert.Equal(t, "Wine Quiz", doc.Meta.Title)
	assert.Equal(t, "Taste and tell", doc.Meta.Description)
	assert.Equal(t, "10", doc.Meta.Vinoks)
	assert.Equal(t, "cover.png", doc.Meta.Image.Name())
	assert.Equal(t, 0, state.Active)

	require.Len(t, doc.Steps, 3)
	opts := doc.Steps[0].Options()
	require.Len(t, opts, 2)
	assert.Equal(t, "Red", opts[0].Title)
	assert.Equal(t, "Malbec", opts[0].Description)
	assert.Equal(t, "red.png", opts[0].Image.Name())
	assert.Nil(t, opts[1].Image)

	assert.Equal(t, survey.KindText, doc.Steps[1].Kind())
	assert.Equal(t, 3, doc.Steps[1].Stars())
	assert.Equal(t, survey.KindScore, doc.Steps[2].Kind())
	assert.Equal(t, 10, doc.Steps[2].MaxScore())

	assert.Equal(t, 2, ed.Registry().Active())
}

func TestResult_Apply_MissingImageLeavesEditorUnchanged(t *testing.T) {
	t.Parallel()

	ed := editor.New(editor.WithGenerator(survey.NewCounterGenerator("id-")))
	t.Cleanup(ed.Close)
	ed.SetMetaField(editor.FieldTitle, "Before")
	before := ed.Snapshot()

	r := &Result{Title: "After", ImagePath: filepath.Join(t.TempDir(), "missing.png")}
	err := r.Apply(context.Background(), ed)

	require.Error(t, err)
	assert.Equal(t, before, ed.Snapshot())
}

func TestResult_Apply_TooManySteps(t *testing.T) {
	t.Parallel()

	r := &Result{Title: "Big"}
	for range survey.MaxSteps + 1 {
		r.Steps = append(r.Steps, StepAnswers{Kind: survey.KindScore, Question: "q"})
	}

	ed := editor.New()
	t.Cleanup(ed.Close)

	err := r.Apply(context.Background(), ed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid answers")
}

func TestValidators(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	image := surveytest.WriteImage(t, dir, "a.png", "a")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	tests := []struct {
		name     string
		validate func(string) error
		input    string
		wantErr  error
	}{
		{"title ok", validateTitle, "Wine Quiz", nil},
		{"title blank", validateTitle, "   ", errTitleRequired},
		{"question ok", validateQuestion, "Which?", nil},
		{"question empty", validateQuestion, "", errQuestionRequired},
		{"option title ok", validateOptionTitle, "Red", nil},
		{"option title empty", validateOptionTitle, " ", errOptionTitleRequired},
		{"vinoks empty", validateVinoks, "", nil},
		{"vinoks number", validateVinoks, " 10 ", nil},
		{"vinoks zero", validateVinoks, "0", nil},
		{"vinoks negative", validateVinoks, "-1", errVinoksInvalid},
		{"vinoks text", validateVinoks, "ten", errVinoksInvalid},
		{"image empty", validateImagePath, "", nil},
		{"image exists", validateImagePath, image, nil},
		{"image missing", validateImagePath, filepath.Join(dir, "nope.png"), errImageNotFound},
		{"image directory", validateImagePath, filepath.Join(dir, "sub"), errImageIsDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.validate(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	kinds := StepKindOptions()
	require.Len(t, kinds, len(survey.StepKinds))
	for i, opt := range kinds {
		assert.Equal(t, survey.StepKinds[i], opt.Value)
		assert.Equal(t, survey.StepKinds[i].Label(), opt.Key)
	}

	steps := StepCountOptions()
	require.Len(t, steps, survey.MaxSteps)
	assert.Equal(t, 1, steps[0].Value)
	assert.Equal(t, survey.MaxSteps, steps[len(steps)-1].Value)

	options := OptionCountOptions()
	require.Len(t, options, MaxOptions-MinOptions+1)
	assert.Equal(t, "2", options[0].Key)
	assert.Equal(t, MaxOptions, options[len(options)-1].Value)
}
