package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the play view.
type KeyMap struct {
	Choice1 key.Binding
	Choice2 key.Binding
	Choice3 key.Binding
	Choice4 key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choice1, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Choice1, k.Choice2, k.Choice3, k.Choice4},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default play bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Choice1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-4", "pick a swatch"),
		),
		Choice2: key.NewBinding(key.WithKeys("2")),
		Choice3: key.NewBinding(key.WithKeys("3")),
		Choice4: key.NewBinding(key.WithKeys("4")),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// choiceIndex maps a pressed key to a choice index, or -1.
func (k KeyMap) choiceIndex(keyStr string) int {
	switch keyStr {
	case "1":
		return 0
	case "2":
		return 1
	case "3":
		return 2
	case "4":
		return 3
	}
	return -1
}
