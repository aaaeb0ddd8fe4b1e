package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the interactive bindings. List bindings only apply while the
// task list has focus so letters can be typed into the inputs.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Delete   key.Binding
	Submit   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Back     key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "mark completed")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "list")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// listHelp implements help.KeyMap for the list focus.
type listHelp struct{ k keyMap }

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Complete, h.k.Delete, h.k.Dismiss, h.k.Next, h.k.Quit}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// inputHelp implements help.KeyMap for the input fields.
type inputHelp struct{ k keyMap }

func (h inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Submit, h.k.Next, h.k.Back, h.k.ForceQ}
}

func (h inputHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
