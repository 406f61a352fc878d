package survey

import (
	"fmt"
	"strings"
)

// StepKind is the answer-collection widget a step renders.
type StepKind string

const (
	KindCheckbox StepKind = "CHECKBOX" // Multiple choice with option cards
	KindOrdering StepKind = "ORDERING" // Rank the options
	KindText     StepKind = "TEXT"     // Star rating plus free text
	KindScore    StepKind = "SCORE"    // Numeric score 1..MaxScore
)

// StepKinds lists every kind in the order the editor offers them.
var StepKinds = []StepKind{KindCheckbox, KindOrdering, KindText, KindScore}

// ParseStepKind parses a kind name case-insensitively.
func ParseStepKind(s string) (StepKind, error) {
	k := StepKind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStepKind, s)
	}
	return k, nil
}

// Valid reports whether k is one of the known kinds.
func (k StepKind) Valid() bool {
	switch k {
	case KindCheckbox, KindOrdering, KindText, KindScore:
		return true
	}
	return false
}

// HasOptions reports whether steps of this kind carry an option list.
func (k StepKind) HasOptions() bool {
	return k == KindCheckbox || k == KindOrdering
}

func (k StepKind) String() string {
	return string(k)
}

// Label returns the human readable description shown in kind selectors.
func (k StepKind) Label() string {
	switch k {
	case KindCheckbox:
		return "Checkbox: multiple choice with cards"
	case KindOrdering:
		return "Ordering: rank the options"
	case KindText:
		return "Text: star rating and comments"
	case KindScore:
		return "Score: numeric rating"
	default:
		return string(k)
	}
}

// Next returns the kind following k in StepKinds, wrapping around.
func (k StepKind) Next() StepKind {
	for i, kind := range StepKinds {
		if kind == k {
			return StepKinds[(i+1)%len(StepKinds)]
		}
	}
	return KindCheckbox
}
