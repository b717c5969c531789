package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	NextLead  key.Binding
	PrevLead  key.Binding
	Add       key.Binding
	Remove    key.Binding
	Template  key.Binding
	Language  key.Binding
	CopyLink  key.Binding
	CopyBatch key.Binding
	Quit      key.Binding

	SavePreset   key.Binding
	DeletePreset key.Binding
	Confirm      key.Binding
	Cancel       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		NextLead:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next lead")),
		PrevLead:  key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev lead")),
		Add:       key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add lead")),
		Remove:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove lead")),
		Template:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "template")),
		Language:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "language")),
		CopyLink:  key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "copy link")),
		CopyBatch: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "copy shortcut")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),

		SavePreset:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "save as template")),
		DeletePreset: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete template")),
		Confirm:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Add, k.Template, k.Language, k.CopyLink, k.CopyBatch, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.NextLead, k.PrevLead},
		{k.Add, k.Remove, k.Template, k.Language},
		{k.SavePreset, k.DeletePreset},
		{k.CopyLink, k.CopyBatch, k.Quit},
	}
}
