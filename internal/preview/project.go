package preview

import (
	"fmt"

	"github.com/imamik/surveykit/internal/survey"
)

// Project builds the view of doc for mode. Unknown modes project as live.
func Project(doc survey.Document, mode Mode) View {
	if mode != ModeFinal {
		mode = ModeLive
	}

	v := View{
		Mode: mode,
		Header: Header{
			Image:       doc.Meta.Image.Name(),
			Title:       text(doc.Meta.Title, PlaceholderTitle),
			Description: text(doc.Meta.Description, PlaceholderDescription),
		},
		Steps: make([]StepView, 0, len(doc.Steps)),
	}

	questionPlaceholder := PlaceholderLiveQuestion
	if mode == ModeFinal {
		v.Header.Reward = doc.Meta.Vinoks
		questionPlaceholder = PlaceholderFinalQuestion
	}

	for i, s := range doc.Steps {
		sv := StepView{
			Ordinal:  i + 1,
			Kind:     s.Kind(),
			Question: text(s.Question, questionPlaceholder),
		}
		if mode == ModeFinal {
			sv.Widget = widget(s)
		}
		v.Steps = append(v.Steps, sv)
	}
	return v
}

func widget(s survey.Step) *Widget {
	w := &Widget{Kind: s.Kind()}
	switch s.Kind() {
	case survey.KindCheckbox:
		w.Cards = cards(s.Options(), false)
	case survey.KindOrdering:
		w.Hint = HintOrdering
		w.Cards = cards(s.Options(), true)
	case survey.KindScore:
		n := s.MaxScore()
		w.Hint = fmt.Sprintf(hintScoreFormat, n)
		w.Scores = make([]int, n)
		for i := range w.Scores {
			w.Scores[i] = i + 1
		}
	case survey.KindText:
		w.Hint = HintText
		w.Stars = s.Stars()
		w.Comment = PlaceholderComment
	}
	return w
}

func cards(opts []survey.Option, numbered bool) []Card {
	out := make([]Card, len(opts))
	for i, o := range opts {
		out[i] = Card{
			Title:       text(o.Title, PlaceholderOptionTitle),
			Description: text(o.Description, PlaceholderOptionDescription),
			Image:       o.Image.Name(),
		}
		if numbered {
			out[i].Position = i + 1
		}
	}
	return out
}
