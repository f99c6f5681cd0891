package page

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the page-level bindings. Keys not bound here go to the
// focused dropdown.
type KeyMap struct {
	Quit       key.Binding
	QuitIdle   key.Binding
	Next       key.Binding
	Prev       key.Binding
	Unfocus    key.Binding
	LineUp     key.Binding
	LineDown   key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	GotoTop    key.Binding
	GotoBottom key.Binding
}

// DefaultKeyMap returns the default page bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		QuitIdle:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Unfocus:    key.NewBinding(key.WithKeys("esc")),
		LineUp:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "scroll")),
		LineDown:   key.NewBinding(key.WithKeys("j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+d")),
		GotoTop:    key.NewBinding(key.WithKeys("g")),
		GotoBottom: key.NewBinding(key.WithKeys("G")),
	}
}
