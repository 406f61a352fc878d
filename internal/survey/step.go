package survey

import "github.com/imamik/surveykit/internal/attachment"

// Defaults applied when a step body is created or reset.
const (
	DefaultOptionCount = 4
	DefaultStars       = 5
	DefaultMaxScore    = 7
)

// Upper bounds for the rating widgets. Stars and scores are rendered one
// glyph or button each.
const (
	MaxStars      = 10
	MaxScoreLimit = 100
)

// Option is a selectable or orderable answer choice.
type Option struct {
	ID          string
	Title       string
	Description string
	Image       *attachment.Image // nil when no image is attached
	Checked     bool              // UI-only, never exported
}

// NewOption returns a blank option with a fresh id.
func NewOption(gen IDGenerator) Option {
	return Option{ID: gen.NewID()}
}

// StepBody is the type-specific payload of a step.
// Exactly one implementation exists per StepKind.
type StepBody interface {
	Kind() StepKind
}

// CheckboxBody holds the cards of a CHECKBOX step.
type CheckboxBody struct {
	Options []Option
}

// OrderingBody holds the entries of an ORDERING step.
type OrderingBody struct {
	Options []Option
}

// TextBody configures the star row of a TEXT step.
type TextBody struct {
	Stars int
}

// ScoreBody configures the score range of a SCORE step.
type ScoreBody struct {
	MaxScore int
}

func (CheckboxBody) Kind() StepKind { return KindCheckbox }
func (OrderingBody) Kind() StepKind { return KindOrdering }
func (TextBody) Kind() StepKind     { return KindText }
func (ScoreBody) Kind() StepKind    { return KindScore }

// DefaultBody returns the default payload for kind: four blank options for
// option-bearing kinds, DefaultStars for TEXT and DefaultMaxScore for SCORE.
func DefaultBody(gen IDGenerator, kind StepKind) StepBody {
	switch kind {
	case KindOrdering:
		return OrderingBody{Options: blankOptions(gen, DefaultOptionCount)}
	case KindText:
		return TextBody{Stars: DefaultStars}
	case KindScore:
		return ScoreBody{MaxScore: DefaultMaxScore}
	default:
		return CheckboxBody{Options: blankOptions(gen, DefaultOptionCount)}
	}
}

func blankOptions(gen IDGenerator, n int) []Option {
	opts := make([]Option, n)
	for i := range opts {
		opts[i] = NewOption(gen)
	}
	return opts
}

// Step is one page of the survey.
type Step struct {
	ID       string
	Question string
	Body     StepBody
}

// NewStep returns a step of the given kind with an empty question and the
// kind's default body.
func NewStep(gen IDGenerator, kind StepKind) Step {
	if !kind.Valid() {
		kind = KindCheckbox
	}
	return Step{
		ID:   gen.NewID(),
		Body: DefaultBody(gen, kind),
	}
}

// Kind returns the kind of the step body.
func (s Step) Kind() StepKind {
	if s.Body == nil {
		return KindCheckbox
	}
	return s.Body.Kind()
}

// Options returns the option list of an option-bearing step, nil otherwise.
// The returned slice must not be modified.
func (s Step) Options() []Option {
	switch b := s.Body.(type) {
	case CheckboxBody:
		return b.Options
	case OrderingBody:
		return b.Options
	}
	return nil
}

// WithOptions returns a copy of s whose option list is opts.
// Steps without options are returned unchanged.
func (s Step) WithOptions(opts []Option) Step {
	switch s.Body.(type) {
	case CheckboxBody:
		s.Body = CheckboxBody{Options: opts}
	case OrderingBody:
		s.Body = OrderingBody{Options: opts}
	}
	return s
}

// OptionIndex returns the position of the option with id, or -1.
func (s Step) OptionIndex(id string) int {
	for i, o := range s.Options() {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// Stars returns the star count of a TEXT step and 0 for other kinds.
func (s Step) Stars() int {
	if b, ok := s.Body.(TextBody); ok {
		return b.Stars
	}
	return 0
}

// MaxScore returns the maximum score of a SCORE step and 0 for other kinds.
func (s Step) MaxScore() int {
	if b, ok := s.Body.(ScoreBody); ok {
		return b.MaxScore
	}
	return 0
}

// Images returns every attached option image of the step.
func (s Step) Images() []*attachment.Image {
	var imgs []*attachment.Image
	for _, o := range s.Options() {
		if o.Image != nil {
			imgs = append(imgs, o.Image)
		}
	}
	return imgs
}
