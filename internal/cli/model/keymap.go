package model

import "github.com/charmbracelet/bubbles/key"

// workspaceKeyMap defines the multiplexer bindings. Every other key goes to
// the focused shell.
type workspaceKeyMap struct {
	NewTab          key.Binding
	ClosePane       key.Binding
	SplitHorizontal key.Binding
	SplitVertical   key.Binding
	FocusNext       key.Binding
	FocusPrev       key.Binding
	NextTab         key.Binding
	PrevTab         key.Binding
	MoveTabLeft     key.Binding
	MoveTabRight    key.Binding
	MoveToNewTab    key.Binding
	MoveToNextTab   key.Binding
	ToggleSidebar   key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k workspaceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitHorizontal, k.SplitVertical, k.ClosePane, k.NewTab, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k workspaceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SplitHorizontal, k.SplitVertical, k.ClosePane},
		{k.FocusNext, k.FocusPrev},
		{k.NewTab, k.NextTab, k.PrevTab, k.MoveTabLeft, k.MoveTabRight},
		{k.MoveToNewTab, k.MoveToNextTab},
		{k.ToggleSidebar, k.Help, k.Quit},
	}
}

func defaultWorkspaceKeyMap() workspaceKeyMap {
	return workspaceKeyMap{
		NewTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "new tab"),
		),
		ClosePane: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close pane"),
		),
		SplitHorizontal: key.NewBinding(
			key.WithKeys(`alt+\`, "alt+|"),
			key.WithHelp(`alt+\`, "split right"),
		),
		SplitVertical: key.NewBinding(
			key.WithKeys("alt+-", "alt+_"),
			key.WithHelp("alt+-", "split down"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("alt+l", "alt+right"),
			key.WithHelp("alt+l", "next pane"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("alt+h", "alt+left"),
			key.WithHelp("alt+h", "prev pane"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("alt+n", "ctrl+pgdown"),
			key.WithHelp("alt+n", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("alt+p", "ctrl+pgup"),
			key.WithHelp("alt+p", "prev tab"),
		),
		MoveTabLeft: key.NewBinding(
			key.WithKeys("alt+,"),
			key.WithHelp("alt+,", "tab left"),
		),
		MoveTabRight: key.NewBinding(
			key.WithKeys("alt+."),
			key.WithHelp("alt+.", "tab right"),
		),
		MoveToNewTab: key.NewBinding(
			key.WithKeys("alt+t"),
			key.WithHelp("alt+t", "pane to new tab"),
		),
		MoveToNextTab: key.NewBinding(
			key.WithKeys("alt+m"),
			key.WithHelp("alt+m", "pane to next tab"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("alt+b"),
			key.WithHelp("alt+b", "sidebar"),
		),
		Help: key.NewBinding(
			key.WithKeys("alt+?"),
			key.WithHelp("alt+?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}
