package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/surveykit/internal/attachment"
	"github.com/imamik/surveykit/internal/editor"
	"github.com/imamik/surveykit/internal/preview"
	"github.com/imamik/surveykit/internal/survey"
)

// statusTTL is how long a status line stays visible.
const statusTTL = 4 * time.Second

// ExportFunc writes the archive for doc. It returns the written archive and,
// when the archive was uploaded, the object key.
type ExportFunc func(ctx context.Context, doc survey.Document) (ExportDoneMsg, error)

// fieldKind identifies an editable field of the form.
type fieldKind int

const (
	fieldTitle fieldKind = iota
	fieldDescription
	fieldVinoks
	fieldMetaImage
	fieldQuestion
	fieldOptionTitle
	fieldOptionDescription
	fieldOptionImage
)

// field is one focusable input. optionID is set for option fields.
type field struct {
	kind     fieldKind
	optionID string
}

func (f field) isImage() bool {
	return f.kind == fieldMetaImage || f.kind == fieldOptionImage
}

// Model is the Bubble Tea model for the survey editor.
type Model struct {
	ctx    context.Context
	ed     *editor.Editor
	export ExportFunc
	keys   KeyMap
	help   help.Model
	input  textinput.Model

	focus field
	mode  preview.Mode

	// Status line
	status    string
	statusErr bool
	statusSeq int

	// Blocking notice, set when an export fails
	notice error

	Exporting bool
	Width     int
	Height    int
	Quitting  bool
}

// NewModel creates an editor model over ed. exportFn runs when the author
// exports; nil disables exporting.
func NewModel(ctx context.Context, ed *editor.Editor, exportFn ExportFunc) Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 500

	m := Model{
		ctx:    ctx,
		ed:     ed,
		export: exportFn,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  input,
		focus:  field{kind: fieldTitle},
		mode:   preview.ModeLive,
	}
	m.loadInput()
	m.input.Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ExportDoneMsg:
		m.Exporting = false
		text := fmt.Sprintf("%s Exported %s (%d images)", checkMark, msg.Result.Path, msg.Result.Images)
		if msg.Key != "" {
			text += ", uploaded as " + msg.Key
		}
		return m, m.setStatus(text, false)

	case ExportFailedMsg:
		m.Exporting = false
		m.notice = msg.Err
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.notice != nil {
		if key.Matches(msg, m.keys.Dismiss) {
			m.notice = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Quitting = true
		m.ed.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.Submit):
		if m.focus.isImage() {
			return m, m.attachImage()
		}
		m.moveFocus(1)

	case key.Matches(msg, m.keys.AddStep):
		if m.ed.Snapshot().Doc.Full() {
			return m, m.setStatus(fmt.Sprintf("%s A survey holds at most %d steps", warnMark, survey.MaxSteps), true)
		}
		m.ed.AddDefaultStep()
		m.setFocus(field{kind: fieldQuestion})

	case key.Matches(msg, m.keys.RemoveStep):
		m.ed.RemoveStep(m.ed.Snapshot().Active)
		m.setFocus(m.focus)

	case key.Matches(msg, m.keys.CycleType):
		state := m.ed.Snapshot()
		if step, ok := state.ActiveStep(); ok {
			m.ed.SetStepType(state.Active, step.Kind().Next())
			m.setFocus(field{kind: fieldQuestion})
		}

	case key.Matches(msg, m.keys.SelectStep):
		idx := int(msg.String()[len(msg.String())-1] - '1')
		m.ed.SelectStep(idx)
		m.setFocus(field{kind: fieldQuestion})

	case key.Matches(msg, m.keys.AddOption):
		state := m.ed.Snapshot()
		m.ed.AddOption(state.Active)
		if step, ok := m.ed.Snapshot().ActiveStep(); ok && step.Kind().HasOptions() {
			opts := step.Options()
			m.setFocus(field{kind: fieldOptionTitle, optionID: opts[len(opts)-1].ID})
		}

	case key.Matches(msg, m.keys.RemoveOption):
		if m.focus.optionID == "" {
			return m, m.setStatus(warnMark+" Select an option first", true)
		}
		m.ed.RemoveOption(m.ed.Snapshot().Active, m.focus.optionID)
		m.setFocus(m.focus)

	case key.Matches(msg, m.keys.MoveUp):
		m.moveOption(editor.Up)
	case key.Matches(msg, m.keys.MoveDown):
		m.moveOption(editor.Down)

	case key.Matches(msg, m.keys.Preview):
		if m.mode == preview.ModeLive {
			m.mode = preview.ModeFinal
		} else {
			m.mode = preview.ModeLive
		}

	case key.Matches(msg, m.keys.Export):
		return m, m.startExport()

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.commitInput()
		return m, cmd
	}

	return m, nil
}

// fields lists the focusable inputs for the current document.
func (m Model) fields() []field {
	fields := []field{
		{kind: fieldTitle},
		{kind: fieldDescription},
		{kind: fieldVinoks},
		{kind: fieldMetaImage},
	}

	step, ok := m.ed.Snapshot().ActiveStep()
	if !ok {
		return fields
	}
	fields = append(fields, field{kind: fieldQuestion})
	for _, opt := range step.Options() {
		fields = append(fields,
			field{kind: fieldOptionTitle, optionID: opt.ID},
			field{kind: fieldOptionDescription, optionID: opt.ID},
			field{kind: fieldOptionImage, optionID: opt.ID},
		)
	}
	return fields
}

func (m *Model) moveFocus(delta int) {
	fields := m.fields()
	idx := indexOf(fields, m.focus)
	idx = (idx + delta + len(fields)) % len(fields)
	m.focus = fields[idx]
	m.loadInput()
}

// setFocus focuses f, or the closest remaining field when f no longer exists.
func (m *Model) setFocus(f field) {
	fields := m.fields()
	switch {
	case indexOf(fields, f) >= 0:
		m.focus = f
	case f.kind >= fieldQuestion && len(fields) > 4:
		m.focus = field{kind: fieldQuestion}
	default:
		m.focus = fields[0]
	}
	m.loadInput()
}

func indexOf(fields []field, f field) int {
	for i, candidate := range fields {
		if candidate == f {
			return i
		}
	}
	return -1
}

// loadInput fills the text input with the focused field's value. Image fields
// start empty; the attached file name is shown as placeholder.
func (m *Model) loadInput() {
	state := m.ed.Snapshot()
	doc := state.Doc
	step, _ := state.ActiveStep()
	opt, _ := findOption(step, m.focus.optionID)

	value, placeholder := "", ""
	switch m.focus.kind {
	case fieldTitle:
		value, placeholder = doc.Meta.Title, preview.PlaceholderTitle
	case fieldDescription:
		value, placeholder = doc.Meta.Description, preview.PlaceholderDescription
	case fieldVinoks:
		value, placeholder = doc.Meta.Vinoks, "0"
	case fieldMetaImage:
		placeholder = imagePlaceholder(doc.Meta.Image)
	case fieldQuestion:
		value, placeholder = step.Question, "Question"
	case fieldOptionTitle:
		value, placeholder = opt.Title, preview.PlaceholderOptionTitle
	case fieldOptionDescription:
		value, placeholder = opt.Description, preview.PlaceholderOptionDescription
	case fieldOptionImage:
		placeholder = imagePlaceholder(opt.Image)
	}
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
}

func imagePlaceholder(img *attachment.Image) string {
	if img == nil {
		return "path/to/image.png"
	}
	return img.Name() + " (enter a new path, or enter on empty to remove)"
}

func findOption(step survey.Step, id string) (survey.Option, bool) {
	if id == "" {
		return survey.Option{}, false
	}
	i := step.OptionIndex(id)
	if i < 0 {
		return survey.Option{}, false
	}
	return step.Options()[i], true
}

// commitInput writes the text input into the focused text field.
func (m *Model) commitInput() {
	value := m.input.Value()
	active := m.ed.Snapshot().Active

	switch m.focus.kind {
	case fieldTitle:
		m.ed.SetMetaField(editor.FieldTitle, value)
	case fieldDescription:
		m.ed.SetMetaField(editor.FieldDescription, value)
	case fieldVinoks:
		m.ed.SetMetaField(editor.FieldVinoks, value)
	case fieldQuestion:
		m.ed.UpdateStep(active, editor.StepPatch{Question: &value})
	case fieldOptionTitle:
		m.ed.UpdateOption(active, m.focus.optionID, editor.OptionPatch{Title: &value})
	case fieldOptionDescription:
		m.ed.UpdateOption(active, m.focus.optionID, editor.OptionPatch{Description: &value})
	}
}

// attachImage loads the typed path into the focused image field. An empty
// path removes the current image. Load failures only set the status line.
func (m *Model) attachImage() tea.Cmd {
	path := strings.TrimSpace(m.input.Value())
	active := m.ed.Snapshot().Active

	if path == "" {
		if m.focus.kind == fieldMetaImage {
			m.ed.ClearMetaImage()
		} else {
			m.ed.ClearOptionImage(active, m.focus.optionID)
		}
		m.loadInput()
		return m.setStatus("Image removed", false)
	}

	f, err := attachment.Load(path)
	if err != nil {
		return m.setStatus(fmt.Sprintf("%s %v", crossMark, err), true)
	}

	if m.focus.kind == fieldMetaImage {
		m.ed.SetMetaImage(f)
	} else {
		m.ed.SetOptionImage(active, m.focus.optionID, f)
	}
	m.loadInput()
	return m.setStatus(fmt.Sprintf("%s Attached %s (%s)", checkMark, f.Name, f.MIME), false)
}

func (m *Model) moveOption(dir editor.Direction) {
	if m.focus.optionID == "" {
		return
	}
	m.ed.MoveOption(m.ed.Snapshot().Active, m.focus.optionID, dir)
}

func (m *Model) startExport() tea.Cmd {
	if m.export == nil {
		return m.setStatus(warnMark+" Export is not configured", true)
	}
	if m.Exporting {
		return nil
	}
	m.Exporting = true
	return exportCmd(m.ctx, m.export, m.ed.Snapshot().Doc)
}

func exportCmd(ctx context.Context, fn ExportFunc, doc survey.Document) tea.Cmd {
	return func() tea.Msg {
		done, err := fn(ctx, doc)
		if err != nil {
			return ExportFailedMsg{Err: err}
		}
		return done
	}
}

// setStatus shows text on the status line and schedules its removal.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(_ time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

// Notice returns the error shown in the blocking notice, if any.
func (m Model) Notice() error {
	return m.notice
}

// Mode returns the preview mode.
func (m Model) Mode() preview.Mode {
	return m.mode
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}

// Run starts the editor and blocks until the author quits.
func Run(ctx context.Context, ed *editor.Editor, exportFn ExportFunc) error {
	p := tea.NewProgram(NewModel(ctx, ed, exportFn), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
