package textinput

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the keys the controller interprets.
type KeyMap struct {
	// Submit is the carriage return.
	Submit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	}
}

// matches reports whether the native key name k is bound by b.
func matches(b key.Binding, k string) bool {
	return b.Enabled() && slices.Contains(b.Keys(), k)
}
