package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Bootcamp key.Binding
	Sport    key.Binding
	Transfer key.Binding
	LogHours key.Binding
	Filter   key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bootcamp, k.Sport, k.LogHours, k.Filter, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Bootcamp, k.Sport, k.Transfer, k.LogHours},
		{k.Filter, k.Reset, k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Bootcamp: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle bootcamp"),
		),
		Sport: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sport"),
		),
		Transfer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle transfer+"),
		),
		LogHours: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "log transfer+ hours"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle filter"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset program"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
