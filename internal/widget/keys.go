package widget

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Refresh    key.Binding
	CycleTheme key.Binding
	Help       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Refresh, k.CycleTheme, k.Help, k.Quit}
}
