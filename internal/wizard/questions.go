package wizard

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/surveykit/internal/survey"
)

// runMetaGroup prompts for the survey title, description, reward and image.
func runMetaGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Survey Title").
				Placeholder("Wine Quiz").
				Value(&result.Title).
				Validate(validateTitle),
			huh.NewText().
				Title("Description").
				Description("Shown under the title").
				Value(&result.Description),
			huh.NewInput().
				Title("Vinoks (Optional)").
				Description("Reward for completing the survey").
				Placeholder("10").
				Value(&result.Vinoks).
				Validate(validateVinoks),
			huh.NewInput().
				Title("Survey Image (Optional)").
				Description("Path to an image file. Leave empty for none.").
				Value(&result.ImagePath).
				Validate(validateImagePath),
		).Title("Survey Details"),
	).RunWithContext(ctx)
}

// runStepCountGroup prompts for the number of steps.
func runStepCountGroup(ctx context.Context) (int, error) {
	count := 1
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Number of Steps").
				Description(fmt.Sprintf("A survey holds at most %d steps", survey.MaxSteps)).
				Options(StepCountOptions()...).
				Value(&count),
		).Title("Steps"),
	).RunWithContext(ctx)
	return count, err
}

// runStepGroup prompts for the kind and question of step n.
func runStepGroup(ctx context.Context, n int, step *StepAnswers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[survey.StepKind]().
				Title("Step Type").
				Options(StepKindOptions()...).
				Value(&step.Kind),
			huh.NewInput().
				Title("Question").
				Value(&step.Question).
				Validate(validateQuestion),
		).Title(fmt.Sprintf("Step %d", n)),
	).RunWithContext(ctx)
}

// runOptionsGroups prompts for the number of options, then for each option.
func runOptionsGroups(ctx context.Context, n int, step *StepAnswers) error {
	count := survey.DefaultOptionCount
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Number of Options").
				Options(OptionCountOptions()...).
				Value(&count),
		).Title(fmt.Sprintf("Step %d Options", n)),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	step.Options = make([]OptionAnswers, count)
	for i := range step.Options {
		opt := &step.Options[i]
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Title").
					Value(&opt.Title).
					Validate(validateOptionTitle),
				huh.NewInput().
					Title("Description (Optional)").
					Value(&opt.Description),
				huh.NewInput().
					Title("Image (Optional)").
					Description("Path to an image file. Leave empty for none.").
					Value(&opt.ImagePath).
					Validate(validateImagePath),
			).Title(fmt.Sprintf("Step %d, Option %d of %d", n, i+1, count)),
		).RunWithContext(ctx)
		if err != nil {
			return fmt.Errorf("option %d: %w", i+1, err)
		}
	}
	return nil
}

// runStarsGroup prompts for the star count of a text step.
func runStarsGroup(ctx context.Context, step *StepAnswers) error {
	step.Stars = survey.DefaultStars
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Stars").
				Options(StarsOptions...).
				Value(&step.Stars),
		),
	).RunWithContext(ctx)
}

// runMaxScoreGroup prompts for the score range of a score step.
func runMaxScoreGroup(ctx context.Context, step *StepAnswers) error {
	step.MaxScore = survey.DefaultMaxScore
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Score Range").
				Options(MaxScoreOptions...).
				Value(&step.MaxScore),
		),
	).RunWithContext(ctx)
}

// validateTitle checks that a survey title was entered.
func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errTitleRequired
	}
	return nil
}

// validateQuestion checks that a step question was entered.
func validateQuestion(s string) error {
	if strings.TrimSpace(s) == "" {
		return errQuestionRequired
	}
	return nil
}

// validateOptionTitle checks that an option title was entered.
func validateOptionTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errOptionTitleRequired
	}
	return nil
}

// validateVinoks accepts an empty reward or a non-negative whole number.
func validateVinoks(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err != nil || n < 0 {
		return errVinoksInvalid
	}
	return nil
}

// validateImagePath accepts an empty path or an existing regular file.
// Content checks happen when the image is attached.
func validateImagePath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	info, err := os.Stat(s)
	if err != nil {
		return errImageNotFound
	}
	if info.IsDir() {
		return errImageIsDirectory
	}
	return nil
}
