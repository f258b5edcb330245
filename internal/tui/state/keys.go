package state

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the dashboard keybindings. It satisfies help.KeyMap so
// the status line can render the short hint row.
type keyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	Refresh    key.Binding
	ClearNotes key.Binding
	DeleteColl key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("^n/^p", "tabs"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+p"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "fields"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "submit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^r", "health"),
		),
		ClearNotes: key.NewBinding(
			key.WithKeys("ctrl+l"),
		),
		DeleteColl: key.NewBinding(
			key.WithKeys("ctrl+d"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.NextField, k.Submit, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.NextField, k.PrevField},
		{k.Submit, k.Refresh, k.ClearNotes, k.DeleteColl, k.Quit},
	}
}
