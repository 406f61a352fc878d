package editor

import (
	"slices"

	"github.com/imamik/surveykit/internal/attachment"
	"github.com/imamik/surveykit/internal/survey"
)

// Direction moves an option towards the start (Up) or end (Down) of its list.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// OptionPatch holds the option fields to change. Nil fields are left alone.
type OptionPatch struct {
	Title       *string
	Description *string
	Checked     *bool
}

// AddOption appends a blank option to an option-bearing step.
func (e *Editor) AddOption(stepIndex int) {
	step, ok := e.optionStep("addOption", stepIndex)
	if !ok {
		return
	}
	opts := append(slices.Clone(step.Options()), survey.NewOption(e.gen))
	e.replaceStep(stepIndex, step.WithOptions(opts))
}

// RemoveOption deletes an option and revokes its image.
func (e *Editor) RemoveOption(stepIndex int, optionID string) {
	step, i, ok := e.option("removeOption", stepIndex, optionID)
	if !ok {
		return
	}
	removed := step.Options()[i]
	opts := slices.Delete(slices.Clone(step.Options()), i, i+1)
	e.replaceStep(stepIndex, step.WithOptions(opts))
	e.release(removed.Image)
}

// UpdateOption merges patch into an option.
func (e *Editor) UpdateOption(stepIndex int, optionID string, patch OptionPatch) {
	e.editOption("updateOption", stepIndex, optionID, func(o *survey.Option) {
		if patch.Title != nil {
			o.Title = *patch.Title
		}
		if patch.Description != nil {
			o.Description = *patch.Description
		}
		if patch.Checked != nil {
			o.Checked = *patch.Checked
		}
	})
}

// MoveOption swaps an option with its neighbour in direction dir. Moving the
// first option up or the last option down is a no-op.
func (e *Editor) MoveOption(stepIndex int, optionID string, dir Direction) {
	step, i, ok := e.option("moveOption", stepIndex, optionID)
	if !ok {
		return
	}
	j := i + int(dir)
	if dir == 0 || j < 0 || j >= len(step.Options()) {
		e.ignore("moveOption", "target out of range", "from", i, "to", j)
		return
	}
	opts := slices.Clone(step.Options())
	opts[i], opts[j] = opts[j], opts[i]
	e.replaceStep(stepIndex, step.WithOptions(opts))
}

// SetOptionImage attaches f to an option, revoking the image it replaces.
func (e *Editor) SetOptionImage(stepIndex int, optionID string, f *attachment.File) {
	if f == nil {
		e.ignore("setOptionImage", "no file")
		return
	}
	var prev *attachment.Image
	e.editOption("setOptionImage", stepIndex, optionID, func(o *survey.Option) {
		prev = o.Image
		o.Image = e.reg.Attach(f)
	})
	e.release(prev)
}

// ClearOptionImage detaches the image of an option.
func (e *Editor) ClearOptionImage(stepIndex int, optionID string) {
	var prev *attachment.Image
	e.editOption("clearOptionImage", stepIndex, optionID, func(o *survey.Option) {
		prev = o.Image
		o.Image = nil
	})
	e.release(prev)
}

func (e *Editor) optionStep(op string, stepIndex int) (survey.Step, bool) {
	step, ok := e.state.Doc.Step(stepIndex)
	if !ok {
		e.ignore(op, "no such step", "index", stepIndex)
		return survey.Step{}, false
	}
	if !step.Kind().HasOptions() {
		e.ignore(op, "step has no options", "index", stepIndex, "kind", step.Kind())
		return survey.Step{}, false
	}
	return step, true
}

func (e *Editor) option(op string, stepIndex int, optionID string) (survey.Step, int, bool) {
	step, ok := e.optionStep(op, stepIndex)
	if !ok {
		return survey.Step{}, -1, false
	}
	i := step.OptionIndex(optionID)
	if i < 0 {
		e.ignore(op, "no such option", "index", stepIndex, "option", optionID)
		return survey.Step{}, -1, false
	}
	return step, i, true
}

func (e *Editor) editOption(op string, stepIndex int, optionID string, fn func(*survey.Option)) {
	step, i, ok := e.option(op, stepIndex, optionID)
	if !ok {
		return
	}
	opts := slices.Clone(step.Options())
	fn(&opts[i])
	e.replaceStep(stepIndex, step.WithOptions(opts))
}
