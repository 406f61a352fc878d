package editor

import (
	"slices"

	"github.com/imamik/surveykit/internal/survey"
)

// StepPatch holds the step fields to change. Nil fields are left alone;
// fields that do not belong to the step's kind are ignored.
type StepPatch struct {
	Question *string
	Stars    *int // TEXT only, must be positive
	MaxScore *int // SCORE only, must be positive
}

// AddStep appends a default step of kind and selects it. It is a no-op when
// the document already holds survey.MaxSteps steps.
func (e *Editor) AddStep(kind survey.StepKind) {
	if e.state.Doc.Full() {
		e.ignore("addStep", "document full", "max", survey.MaxSteps)
		return
	}
	if !kind.Valid() {
		e.ignore("addStep", "unknown kind", "kind", kind)
		return
	}
	steps := append(slices.Clone(e.state.Doc.Steps), survey.NewStep(e.gen, kind))
	e.state.Doc.Steps = steps
	e.state.Active = len(steps) - 1
}

// AddDefaultStep appends a CHECKBOX step.
func (e *Editor) AddDefaultStep() {
	e.AddStep(survey.KindCheckbox)
}

// RemoveStep deletes the step at index, revoking its option images. The
// step before it becomes active.
func (e *Editor) RemoveStep(index int) {
	step, ok := e.state.Doc.Step(index)
	if !ok {
		e.ignore("removeStep", "no such step", "index", index)
		return
	}
	steps := slices.Delete(slices.Clone(e.state.Doc.Steps), index, index+1)
	e.state.Doc.Steps = steps
	e.state.Active = max(0, min(len(steps)-1, index-1))
	e.release(step.Images()...)
}

// SelectStep makes the step at index active.
func (e *Editor) SelectStep(index int) {
	if _, ok := e.state.Doc.Step(index); !ok {
		e.ignore("selectStep", "no such step", "index", index)
		return
	}
	e.state.Active = index
}

// SetStepType resets the step at index to the default shape of kind. The
// question is cleared and discarded option images are revoked; the step keeps
// its id.
func (e *Editor) SetStepType(index int, kind survey.StepKind) {
	step, ok := e.state.Doc.Step(index)
	if !ok {
		e.ignore("setStepType", "no such step", "index", index)
		return
	}
	if !kind.Valid() {
		e.ignore("setStepType", "unknown kind", "kind", kind)
		return
	}
	e.replaceStep(index, survey.Step{ID: step.ID, Body: survey.DefaultBody(e.gen, kind)})
	e.release(step.Images()...)
}

// UpdateStep merges patch into the step at index.
func (e *Editor) UpdateStep(index int, patch StepPatch) {
	step, ok := e.state.Doc.Step(index)
	if !ok {
		e.ignore("updateStep", "no such step", "index", index)
		return
	}
	if patch.Question != nil {
		step.Question = *patch.Question
	}
	switch body := step.Body.(type) {
	case survey.TextBody:
		if patch.Stars != nil {
			if *patch.Stars < 1 || *patch.Stars > survey.MaxStars {
				e.ignore("updateStep", "stars out of range", "index", index, "stars", *patch.Stars)
			} else {
				body.Stars = *patch.Stars
				step.Body = body
			}
		}
	case survey.ScoreBody:
		if patch.MaxScore != nil {
			if *patch.MaxScore < 1 || *patch.MaxScore > survey.MaxScoreLimit {
				e.ignore("updateStep", "maxScore out of range", "index", index, "maxScore", *patch.MaxScore)
			} else {
				body.MaxScore = *patch.MaxScore
				step.Body = body
			}
		}
	}
	e.replaceStep(index, step)
}

func (e *Editor) replaceStep(index int, step survey.Step) {
	steps := slices.Clone(e.state.Doc.Steps)
	steps[index] = step
	e.state.Doc.Steps = steps
}
