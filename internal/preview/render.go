package preview

import (
	"fmt"
	"strings"

	"github.com/imamik/surveykit/internal/survey"
)

const (
	starGlyph     = "★"
	checkboxGlyph = "[ ]"
	imageGlyph    = "▣"
)

// Render draws v as terminal text using style.
func Render(v View, style Style) string {
	var b strings.Builder

	renderHeader(&b, v, style)

	for _, s := range v.Steps {
		b.WriteString("\n")
		if v.Mode == ModeFinal {
			renderFinalStep(&b, s, style)
		} else {
			renderLiveStep(&b, s, style)
		}
	}

	return b.String()
}

func renderHeader(b *strings.Builder, v View, style Style) {
	if v.Header.Image != "" {
		fmt.Fprintf(b, "%s %s\n", imageGlyph, style.Hint(v.Header.Image))
	}
	b.WriteString(renderText(v.Header.Title, style.Title, style))
	b.WriteString("\n")
	b.WriteString(renderText(v.Header.Description, style.Body, style))
	b.WriteString("\n")
	if v.Header.Reward != "" {
		b.WriteString(style.Chip(v.Header.Reward))
		b.WriteString("\n")
	}
}

func renderLiveStep(b *strings.Builder, s StepView, style Style) {
	fmt.Fprintf(b, "%s %s  %s\n",
		style.Heading(fmt.Sprintf("Step %d", s.Ordinal)),
		style.Kind(s.Kind.String()),
		renderText(s.Question, style.Body, style))
}

func renderFinalStep(b *strings.Builder, s StepView, style Style) {
	fmt.Fprintf(b, "%s %s\n",
		style.Heading(fmt.Sprintf("Step %d:", s.Ordinal)),
		renderText(s.Question, style.Heading, style))

	w := s.Widget
	if w == nil {
		return
	}
	if w.Hint != "" {
		b.WriteString("  ")
		b.WriteString(style.Hint(w.Hint))
		b.WriteString("\n")
	}

	switch w.Kind {
	case survey.KindCheckbox, survey.KindOrdering:
		for _, c := range w.Cards {
			renderCard(b, c, style)
		}
	case survey.KindScore:
		buttons := make([]string, len(w.Scores))
		for i, n := range w.Scores {
			buttons[i] = fmt.Sprintf("(%d)", n)
		}
		fmt.Fprintf(b, "  %s\n", strings.Join(buttons, " "))
	case survey.KindText:
		fmt.Fprintf(b, "  %s\n", style.Star(strings.Repeat(starGlyph, w.Stars)))
		fmt.Fprintf(b, "  %s\n", style.Placeholder(w.Comment))
	}
}

func renderCard(b *strings.Builder, c Card, style Style) {
	marker := checkboxGlyph
	if c.Position > 0 {
		marker = fmt.Sprintf("%d.", c.Position)
	}
	line := fmt.Sprintf("  %s %s", marker, renderText(c.Title, style.Heading, style))
	if c.Image != "" {
		line += fmt.Sprintf("  %s %s", imageGlyph, style.Hint(c.Image))
	}
	b.WriteString(line)
	b.WriteString("\n")
	fmt.Fprintf(b, "      %s\n", renderText(c.Description, style.Body, style))
}

func renderText(t Text, fn styleFunc, style Style) string {
	if t.Placeholder {
		return style.Placeholder(t.Value)
	}
	return fn(t.Value)
}
