package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/surveykit/internal/preview"
	"github.com/imamik/surveykit/internal/survey"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

// minSplitWidth is the narrowest terminal that shows form and preview side by side.
const minSplitWidth = 100

func renderView(m Model) string {
	if m.notice != nil {
		return renderNotice(m)
	}

	var b strings.Builder

	// Header
	renderHeader(&b, m)

	form := renderForm(m)
	pv := renderPreview(m)
	if m.Width >= minSplitWidth {
		half := m.Width/2 - 2
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			paneStyle.Width(half).Render(form),
			paneStyle.Width(half).Render(pv),
		))
	} else {
		b.WriteString(paneStyle.Render(form))
		b.WriteString("\n")
		b.WriteString(paneStyle.Render(pv))
	}
	b.WriteString("\n")

	// Status
	renderStatus(&b, m)

	// Footer
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	doc := m.ed.Snapshot().Doc
	title := "surveykit"
	if doc.Meta.Title != "" {
		title += ": " + doc.Meta.Title
	}
	b.WriteString(titleStyle.Render(title))

	fmt.Fprintf(b, " %s", dimStyle.Render(fmt.Sprintf("%d/%d steps", len(doc.Steps), survey.MaxSteps)))
	if m.Exporting {
		fmt.Fprintf(b, " %s", warningStyle.Render(spinner+" exporting"))
	}
	b.WriteString("\n")
}

func renderForm(m Model) string {
	var b strings.Builder
	state := m.ed.Snapshot()
	doc := state.Doc

	b.WriteString(sectionStyle.Render("Survey"))
	b.WriteString("\n")
	renderField(&b, m, field{kind: fieldTitle}, "Title", doc.Meta.Title)
	renderField(&b, m, field{kind: fieldDescription}, "Description", doc.Meta.Description)
	renderField(&b, m, field{kind: fieldVinoks}, "Vinoks", doc.Meta.Vinoks)
	renderField(&b, m, field{kind: fieldMetaImage}, "Image", doc.Meta.Image.Name())

	b.WriteString("\n")
	renderTabs(&b, doc, state.Active)

	step, ok := state.ActiveStep()
	if !ok {
		b.WriteString(dimStyle.Render("No steps yet. Press ctrl+n to add one."))
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s %s\n",
		labelStyle.Render("Type"), step.Kind(), dimStyle.Render("(ctrl+t)"))
	renderField(&b, m, field{kind: fieldQuestion}, "Question", step.Question)

	switch step.Kind() {
	case survey.KindText:
		fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Stars"), step.Stars())
	case survey.KindScore:
		fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Max score"), step.MaxScore())
	}

	for i, opt := range step.Options() {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Option %d", i+1)))
		b.WriteString("\n")
		renderField(&b, m, field{kind: fieldOptionTitle, optionID: opt.ID}, "Title", opt.Title)
		renderField(&b, m, field{kind: fieldOptionDescription, optionID: opt.ID}, "Description", opt.Description)
		renderField(&b, m, field{kind: fieldOptionImage, optionID: opt.ID}, "Image", opt.Image.Name())
	}

	return b.String()
}

func renderField(b *strings.Builder, m Model, f field, label, value string) {
	if m.focus == f {
		fmt.Fprintf(b, "%s %s\n", focusedLabelStyle.Render("> "+label), m.input.View())
		return
	}
	if value == "" {
		value = dimStyle.Render("-")
	}
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render("  "+label), value)
}

func renderTabs(b *strings.Builder, doc survey.Document, active int) {
	tabs := make([]string, 0, len(doc.Steps)+1)
	for i := range doc.Steps {
		label := fmt.Sprintf("Step %d", i+1)
		if i == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	add := tabStyle.Render("+ Add")
	if doc.Full() {
		add = tabStyle.Strikethrough(true).Render("+ Add")
	}
	tabs = append(tabs, add)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
}

func renderPreview(m Model) string {
	label := "Live preview"
	if m.mode == preview.ModeFinal {
		label = "Final preview"
	}
	view := preview.Project(m.ed.Snapshot().Doc, m.mode)
	return sectionStyle.MarginTop(0).Render(label) + "\n" + preview.Render(view, preview.Colored)
}

func renderStatus(b *strings.Builder, m Model) {
	if m.status == "" {
		return
	}
	style := sf(readyStyle)
	if m.statusErr {
		style = sf(failedStyle)
	}
	b.WriteString(style(m.status))
	b.WriteString("\n")
}

func renderFooter(b *strings.Builder, m Model) {
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
}

func renderNotice(m Model) string {
	body := fmt.Sprintf("%s\n\n%s\n\n%s",
		failedStyle.Bold(true).Render(crossMark+" Export failed"),
		m.notice.Error(),
		dimStyle.Render("Press enter to dismiss. Your survey is unchanged; export again with ctrl+e."),
	)
	box := noticeStyle.Render(body)
	if m.Width == 0 || m.Height == 0 {
		return box
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
