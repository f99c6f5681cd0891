package inputselect

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// State is what a combobox behavior exposes to the dropdown.
type State struct {
	Open        bool
	Highlighted int // -1 for none
	InputValue  string
}

// ChangeType says what a Change reports.
type ChangeType int

const (
	ChangeOpen ChangeType = iota
	ChangeClose
	ChangeHighlight
	ChangeInput
	// ChangeSelect asks the dropdown to commit the item at Change.Index.
	// Index -1 means the user dismissed the panel without choosing.
	ChangeSelect
)

// Change is a state transition reported to subscribers.
type Change struct {
	Type  ChangeType
	State State
	Index int
}

// Behavior owns the open/closed state, keyboard navigation and highlight
// tracking of a dropdown. The dropdown only reads its state, tells it how many
// items there are and reacts to the changes it reports.
type Behavior interface {
	State() State
	SetItemCount(n int)
	Toggle()
	Close()
	Highlight(i int)
	SelectHighlighted()
	Dismiss()
	HandleKey(msg tea.KeyMsg) tea.Cmd
	Subscribe(fn func(Change)) (unsubscribe func())
}

// KeyMap holds the combobox key bindings.
type KeyMap struct {
	Open    key.Binding
	Up      key.Binding
	Down    key.Binding
	First   key.Binding
	Last    key.Binding
	Select  key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Up:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
		Down:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		First:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:    key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Select:  key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "select")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	}
}

type subscriber struct {
	id int
	fn func(Change)
}

// Combobox is the default Behavior. Typing while open edits a free-text
// value; the highlight wraps around at both ends.
type Combobox struct {
	Keys KeyMap

	open        bool
	highlighted int
	count       int
	input       textinput.Model

	subs   []subscriber
	nextID int
}

// NewCombobox returns a closed combobox with no highlight.
func NewCombobox() *Combobox {
	in := textinput.New()
	in.Prompt = ""
	// The trigger draws the typed text itself; the cursor is never shown.
	in.Cursor.SetMode(cursor.CursorStatic)
	return &Combobox{
		Keys:        DefaultKeyMap(),
		highlighted: -1,
		input:       in,
	}
}

// State implements Behavior.
func (c *Combobox) State() State {
	return State{
		Open:        c.open,
		Highlighted: c.highlighted,
		InputValue:  c.input.Value(),
	}
}

// SetItemCount implements Behavior. The highlight is dropped when it no
// longer points at an item.
func (c *Combobox) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	c.count = n
	if c.highlighted >= n {
		c.highlighted = -1
		c.notify(Change{Type: ChangeHighlight, Index: -1})
	}
}

// Toggle implements Behavior.
func (c *Combobox) Toggle() {
	if c.open {
		c.Close()
		return
	}
	c.openMenu()
}

// Close implements Behavior. The free-text value is cleared.
func (c *Combobox) Close() {
	if !c.open {
		return
	}
	c.open = false
	c.highlighted = -1
	c.input.Reset()
	c.input.Blur()
	c.notify(Change{Type: ChangeClose, Index: -1})
}

// Highlight implements Behavior. Out of range indices clear the highlight.
func (c *Combobox) Highlight(i int) {
	if i < 0 || i >= c.count {
		i = -1
	}
	if i == c.highlighted {
		return
	}
	c.highlighted = i
	c.notify(Change{Type: ChangeHighlight, Index: i})
}

// SelectHighlighted implements Behavior. It reports the highlighted index
// (which may be -1) and closes the panel.
func (c *Combobox) SelectHighlighted() {
	if !c.open {
		return
	}
	c.notify(Change{Type: ChangeSelect, Index: c.highlighted})
	c.Close()
}

// Dismiss implements Behavior: it reports a selection of nothing and closes.
func (c *Combobox) Dismiss() {
	if !c.open {
		return
	}
	c.notify(Change{Type: ChangeSelect, Index: -1})
	c.Close()
}

// HandleKey implements Behavior.
func (c *Combobox) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if !c.open {
		switch {
		case key.Matches(msg, c.Keys.Open):
			return c.openMenu()
		case key.Matches(msg, c.Keys.Down):
			cmd := c.openMenu()
			c.Highlight(0)
			return cmd
		}
		return nil
	}

	switch {
	case key.Matches(msg, c.Keys.Dismiss):
		c.Dismiss()
	case key.Matches(msg, c.Keys.Select):
		c.SelectHighlighted()
	case key.Matches(msg, c.Keys.Up):
		c.move(-1)
	case key.Matches(msg, c.Keys.Down):
		c.move(1)
	case key.Matches(msg, c.Keys.First):
		c.Highlight(0)
	case key.Matches(msg, c.Keys.Last):
		c.Highlight(c.count - 1)
	default:
		before := c.input.Value()
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		if c.input.Value() != before {
			c.highlighted = -1
			c.notify(Change{Type: ChangeInput, Index: -1})
		}
		return cmd
	}
	return nil
}

// Subscribe implements Behavior. Subscribers are called synchronously, in
// subscription order.
func (c *Combobox) Subscribe(fn func(Change)) func() {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Combobox) openMenu() tea.Cmd {
	if c.open {
		return nil
	}
	c.open = true
	c.highlighted = -1
	cmd := c.input.Focus()
	c.notify(Change{Type: ChangeOpen, Index: -1})
	return cmd
}

// move shifts the highlight by delta, wrapping at both ends. From no
// highlight, moving down lands on the first item and moving up on the last.
func (c *Combobox) move(delta int) {
	if c.count == 0 {
		return
	}
	next := c.highlighted + delta
	switch {
	case c.highlighted < 0 && delta < 0:
		next = c.count - 1
	case next < 0:
		next = c.count - 1
	case next >= c.count:
		next = 0
	}
	c.Highlight(next)
}

func (c *Combobox) notify(ch Change) {
	ch.State = c.State()
	for _, s := range append([]subscriber(nil), c.subs...) {
		s.fn(ch)
	}
}
