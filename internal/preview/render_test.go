package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/surveykit/internal/survey"
	surveytest "github.com/imamik/surveykit/internal/testing"
)

func wineQuiz() survey.Document {
	return surveytest.NewDocumentBuilder().
		WithTitle("Wine Quiz").
		WithVinoks("10").
		WithStep(survey.KindCheckbox, "Which wines?", "Red", "White").
		WithOptionImage(0, 1, surveytest.PNG("white.png", "w")).
		WithStep(survey.KindOrdering, "Rank them", "Malbec", "Syrah").
		WithStep(survey.KindScore, "").
		WithStep(survey.KindText, "Anything else?").
		Build()
}

func TestRender_Live(t *testing.T) {
	t.Parallel()

	out := Render(Project(wineQuiz(), ModeLive), Plain)

	assert.Contains(t, out, "Wine Quiz\n")
	assert.Contains(t, out, PlaceholderDescription)
	assert.Contains(t, out, "Step 1 CHECKBOX  Which wines?")
	assert.Contains(t, out, "Step 3 SCORE  (no question)")
	assert.NotContains(t, out, "[10]", "live view has no reward chip")
	assert.NotContains(t, out, "Malbec", "live view has no widgets")
}

func TestRender_Final(t *testing.T) {
	t.Parallel()

	out := Render(Project(wineQuiz(), ModeFinal), Plain)

	for _, want := range []string{
		"[10]",
		"Step 1: Which wines?",
		"  [ ] Red\n",
		"  [ ] White  ▣ white.png",
		"  Order the options",
		"  1. Malbec",
		"  2. Syrah",
		"Step 3: (Question)",
		"Choose from 1 to 7",
		"(1) (2) (3) (4) (5) (6) (7)",
		"★★★★★",
		PlaceholderComment,
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_PlainHasNoEscapes(t *testing.T) {
	t.Parallel()

	out := Render(Project(wineQuiz(), ModeFinal), Plain)
	assert.NotContains(t, out, "\x1b[")
}

func TestRender_ColoredKeepsText(t *testing.T) {
	t.Parallel()

	out := Render(Project(wineQuiz(), ModeFinal), Colored)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "Wine Quiz")
	assert.Contains(t, out, "Malbec")
	assert.Equal(t, 5, strings.Count(out, "★"))
}
