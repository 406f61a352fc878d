package wizard

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/imamik/surveykit/internal/survey"
)

// Bounds for the number of options the wizard asks for.
const (
	MinOptions = 2
	MaxOptions = 8
)

// StepKindOptions lists the step kinds in the order the editor offers them.
func StepKindOptions() []huh.Option[survey.StepKind] {
	opts := make([]huh.Option[survey.StepKind], len(survey.StepKinds))
	for i, k := range survey.StepKinds {
		opts[i] = huh.NewOption(k.Label(), k)
	}
	return opts
}

// StepCountOptions offers 1..survey.MaxSteps steps.
func StepCountOptions() []huh.Option[int] {
	return countOptions(1, survey.MaxSteps)
}

// OptionCountOptions offers MinOptions..MaxOptions options.
func OptionCountOptions() []huh.Option[int] {
	return countOptions(MinOptions, MaxOptions)
}

// StarsOptions contains the star counts offered for text steps.
var StarsOptions = []huh.Option[int]{
	huh.NewOption("3 stars", 3),
	huh.NewOption("5 stars (Default)", survey.DefaultStars),
	huh.NewOption("10 stars", 10),
}

// MaxScoreOptions contains the score ranges offered for score steps.
var MaxScoreOptions = []huh.Option[int]{
	huh.NewOption("1 to 5", 5),
	huh.NewOption("1 to 7 (Default)", survey.DefaultMaxScore),
	huh.NewOption("1 to 10", 10),
}

func countOptions(from, to int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, to-from+1)
	for n := from; n <= to; n++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(n), n))
	}
	return opts
}
