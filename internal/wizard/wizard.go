package wizard

import (
	"context"
	"fmt"

	"github.com/imamik/surveykit/internal/survey"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Survey metadata
	Title       string
	Description string
	Vinoks      string
	ImagePath   string // optional, empty means no survey image

	Steps []StepAnswers
}

// StepAnswers holds the answers for one step.
type StepAnswers struct {
	Kind     survey.StepKind
	Question string

	// Stars is set for text steps, MaxScore for score steps.
	Stars    int
	MaxScore int

	// Options is set for checkbox and ordering steps.
	Options []OptionAnswers
}

// OptionAnswers holds the answers for one option card.
type OptionAnswers struct {
	Title       string
	Description string
	ImagePath   string
}

// RunWizard runs the interactive survey wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runMetaGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("survey details: %w", err)
	}

	count, err := runStepCountGroup(ctx)
	if err != nil {
		return nil, fmt.Errorf("step count: %w", err)
	}

	for i := range count {
		step, err := runStepGroups(ctx, i+1)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		result.Steps = append(result.Steps, step)
	}

	return result, nil
}

// runStepGroups asks for the kind and question of step n, then for the
// settings of that kind.
func runStepGroups(ctx context.Context, n int) (StepAnswers, error) {
	step := StepAnswers{Kind: survey.KindCheckbox}

	if err := runStepGroup(ctx, n, &step); err != nil {
		return step, err
	}

	switch {
	case step.Kind.HasOptions():
		if err := runOptionsGroups(ctx, n, &step); err != nil {
			return step, fmt.Errorf("options: %w", err)
		}
	case step.Kind == survey.KindText:
		if err := runStarsGroup(ctx, &step); err != nil {
			return step, fmt.Errorf("stars: %w", err)
		}
	case step.Kind == survey.KindScore:
		if err := runMaxScoreGroup(ctx, &step); err != nil {
			return step, fmt.Errorf("max score: %w", err)
		}
	}
	return step, nil
}
