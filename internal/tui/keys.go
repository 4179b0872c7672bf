package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings of the progress view.
type KeyMap struct {
	Quit Key
}

// Key represents a key binding.
type Key struct {
	Keys    []string
	Help    string
	Enabled bool
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: Key{
			Keys:    []string{"q", "esc", "ctrl+c"},
			Help:    "cancel",
			Enabled: true,
		},
	}
}

// Matches checks if a key message matches this key binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	if !k.Enabled {
		return false
	}

	keyStr := msg.String()
	for _, key := range k.Keys {
		if keyStr == key {
			return true
		}
	}
	return false
}

// StatusBarHelp returns the help text for the status bar.
func (km KeyMap) StatusBarHelp() string {
	return "[q]" + km.Quit.Help
}
