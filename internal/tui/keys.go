package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open     key.Binding
	Type     key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Months   key.Binding
	Years    key.Binding
	Shortcut key.Binding
	Commit   key.Binding
	Cancel   key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "open"),
		),
		Type: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "type range"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "select"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "previous"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next"),
		),
		Months: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "months"),
		),
		Years: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "years"),
		),
		Shortcut: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "shortcut"),
		),
		Commit: key.NewBinding(
			key.WithKeys("s", "ctrl+s"),
			key.WithHelp("s", "ok"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is shown while the picker is closed.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Type, k.Clear, k.Quit}
}

// FullHelp is shown while the picker is open.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Select},
		{k.PrevPage, k.NextPage, k.Months, k.Years},
		{k.Shortcut, k.Type, k.Commit, k.Cancel, k.Clear, k.Quit},
	}
}
