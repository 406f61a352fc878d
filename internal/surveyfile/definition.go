package surveyfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/imamik/surveykit/internal/survey"
)

// Definition is the YAML form of a survey.
type Definition struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Vinoks      string    `yaml:"vinoks"`
	Image       string    `yaml:"image"`
	Steps       []StepDef `yaml:"steps"`
}

// StepDef is one step of a definition. Options keeps the editor defaults
// when omitted.
type StepDef struct {
	Type     string      `yaml:"type"`
	Question string      `yaml:"question"`
	Stars    *int        `yaml:"stars,omitempty"`
	MaxScore *int        `yaml:"maxScore,omitempty"`
	Options  []OptionDef `yaml:"options,omitempty"`
}

// OptionDef is one option of a step.
type OptionDef struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// Parse decodes and validates a definition. Unknown keys are rejected.
func Parse(data []byte) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
		return Definition{}, fmt.Errorf("failed to parse definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Validate checks that the editor can represent def.
func (d Definition) Validate() error {
	if len(d.Steps) > survey.MaxSteps {
		return fmt.Errorf("%w: %d steps, at most %d allowed", ErrTooManySteps, len(d.Steps), survey.MaxSteps)
	}
	for i, s := range d.Steps {
		kind, err := survey.ParseStepKind(s.Type)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if len(s.Options) > 0 && !kind.HasOptions() {
			return fmt.Errorf("step %d: %w", i+1, ErrUnexpectedOptions)
		}
		if s.Stars != nil {
			if kind != survey.KindText {
				return fmt.Errorf("step %d: stars: %w", i+1, ErrNotApplicable)
			}
			if *s.Stars < 1 || *s.Stars > survey.MaxStars {
				return fmt.Errorf("step %d: stars %d: %w (1..%d)", i+1, *s.Stars, ErrInvalidValue, survey.MaxStars)
			}
		}
		if s.MaxScore != nil {
			if kind != survey.KindScore {
				return fmt.Errorf("step %d: maxScore: %w", i+1, ErrNotApplicable)
			}
			if *s.MaxScore < 1 || *s.MaxScore > survey.MaxScoreLimit {
				return fmt.Errorf("step %d: maxScore %d: %w (1..%d)", i+1, *s.MaxScore, ErrInvalidValue, survey.MaxScoreLimit)
			}
		}
	}
	return nil
}
