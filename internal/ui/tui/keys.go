package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the editor key bindings.
type KeyMap struct {
	Next         key.Binding
	Prev         key.Binding
	Submit       key.Binding
	AddStep      key.Binding
	RemoveStep   key.Binding
	CycleType    key.Binding
	AddOption    key.Binding
	RemoveOption key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	SelectStep   key.Binding
	Preview      key.Binding
	Export       key.Binding
	Dismiss      key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:         key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:         key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "attach image")),
		AddStep:      key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add step")),
		RemoveStep:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove step")),
		CycleType:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "step type")),
		AddOption:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "add option")),
		RemoveOption: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove option")),
		MoveUp:       key.NewBinding(key.WithKeys("alt+up"), key.WithHelp("alt+↑", "move up")),
		MoveDown:     key.NewBinding(key.WithKeys("alt+down"), key.WithHelp("alt+↓", "move down")),
		SelectStep:   key.NewBinding(key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4"), key.WithHelp("alt+1-4", "select step")),
		Preview:      key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "final preview")),
		Export:       key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export")),
		Dismiss:      key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.AddStep, k.CycleType, k.AddOption, k.Preview, k.Export, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit},
		{k.AddStep, k.RemoveStep, k.CycleType, k.SelectStep},
		{k.AddOption, k.RemoveOption, k.MoveUp, k.MoveDown},
		{k.Preview, k.Export, k.Quit},
	}
}
