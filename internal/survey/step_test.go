package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/surveykit/internal/attachment"
)

func TestNewStep_DefaultBodies(t *testing.T) {
	t.Parallel()

	gen := NewCounterGenerator("x")

	tests := []struct {
		kind      StepKind
		wantOpts  int
		wantStars int
		wantMax   int
	}{
		{kind: KindCheckbox, wantOpts: DefaultOptionCount},
		{kind: KindOrdering, wantOpts: DefaultOptionCount},
		{kind: KindText, wantStars: DefaultStars},
		{kind: KindScore, wantMax: DefaultMaxScore},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			step := NewStep(gen, tt.kind)
			assert.Equal(t, tt.kind, step.Kind())
			assert.Empty(t, step.Question)
			assert.Len(t, step.Options(), tt.wantOpts)
			assert.Equal(t, tt.wantStars, step.Stars())
			assert.Equal(t, tt.wantMax, step.MaxScore())
			for _, o := range step.Options() {
				assert.NotEmpty(t, o.ID)
				assert.Empty(t, o.Title)
				assert.Empty(t, o.Description)
				assert.Nil(t, o.Image)
				assert.False(t, o.Checked)
			}
		})
	}
}

func TestNewStep_InvalidKindFallsBackToCheckbox(t *testing.T) {
	t.Parallel()

	step := NewStep(NewCounterGenerator(""), StepKind("SLIDER"))
	assert.Equal(t, KindCheckbox, step.Kind())
}

func TestStep_WithOptions(t *testing.T) {
	t.Parallel()

	gen := NewCounterGenerator("o")
	step := NewStep(gen, KindOrdering)
	opts := []Option{{ID: "a", Title: "A"}}

	updated := step.WithOptions(opts)
	require.Equal(t, KindOrdering, updated.Kind())
	assert.Equal(t, opts, updated.Options())
	assert.Len(t, step.Options(), DefaultOptionCount, "original unchanged")
	assert.Equal(t, 0, updated.OptionIndex("a"))
	assert.Equal(t, -1, updated.OptionIndex("missing"))

	text := NewStep(gen, KindText)
	assert.Equal(t, text, text.WithOptions(opts), "non-option steps are unchanged")
}

func TestStep_Images(t *testing.T) {
	t.Parallel()

	img := &attachment.Image{URL: "attachment://1/a.png"}
	step := Step{Body: CheckboxBody{Options: []Option{
		{ID: "1"},
		{ID: "2", Image: img},
	}}}

	assert.Equal(t, []*attachment.Image{img}, step.Images())
	assert.Nil(t, Step{Body: ScoreBody{MaxScore: 3}}.Images())
}
