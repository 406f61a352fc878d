package preview

import (
	"github.com/imamik/surveykit/internal/survey"
)

// Mode selects the projection.
type Mode string

const (
	ModeLive  Mode = "live"
	ModeFinal Mode = "final"
)

// Placeholders for empty fields and widget hints.
const (
	PlaceholderTitle             = "Survey title"
	PlaceholderDescription       = "Description..."
	PlaceholderLiveQuestion      = "(no question)"
	PlaceholderFinalQuestion     = "(Question)"
	PlaceholderOptionTitle       = "Title"
	PlaceholderOptionDescription = "Description"
	PlaceholderComment           = "Write your comments here..."
	HintOrdering                 = "Order the options"
	HintText                     = "Rate with stars and add comments"
	hintScoreFormat              = "Choose from 1 to %d"
)

// Text is a displayed value. Placeholder is set when Value is a stand-in
// for an empty field.
type Text struct {
	Value       string `json:"value"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

func text(value, placeholder string) Text {
	if value == "" {
		return Text{Value: placeholder, Placeholder: true}
	}
	return Text{Value: value}
}

// View is a projected document.
type View struct {
	Mode   Mode       `json:"mode"`
	Header Header     `json:"header"`
	Steps  []StepView `json:"steps"`
}

// Header is the survey heading.
type Header struct {
	Image       string `json:"image,omitempty"`
	Title       Text   `json:"title"`
	Description Text   `json:"description"`
	Reward      string `json:"reward,omitempty"` // final mode only
}

// StepView is one step of the projection.
type StepView struct {
	Ordinal  int             `json:"ordinal"`
	Kind     survey.StepKind `json:"kind"`
	Question Text            `json:"question"`
	Widget   *Widget         `json:"widget,omitempty"` // final mode only
}

// Widget is the answer widget of a step in the final view.
type Widget struct {
	Kind    survey.StepKind `json:"kind"`
	Hint    string          `json:"hint,omitempty"`
	Cards   []Card          `json:"cards,omitempty"`   // CHECKBOX and ORDERING
	Scores  []int           `json:"scores,omitempty"`  // SCORE
	Stars   int             `json:"stars,omitempty"`   // TEXT
	Comment string          `json:"comment,omitempty"` // TEXT comment placeholder
}

// Card is an option as shown to the respondent.
type Card struct {
	Position    int    `json:"position,omitempty"` // ORDERING only, 1-based
	Title       Text   `json:"title"`
	Description Text   `json:"description"`
	Image       string `json:"image,omitempty"`
}
