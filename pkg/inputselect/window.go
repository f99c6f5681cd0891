package inputselect

import tea "github.com/charmbracelet/bubbletea"

// Signal identifies a page-wide event source.
type Signal int

const (
	SignalScroll Signal = iota
	SignalResize
)

func (s Signal) String() string {
	switch s {
	case SignalScroll:
		return "scroll"
	case SignalResize:
		return "resize"
	default:
		return "unknown"
	}
}

// ListenerID identifies a registered listener so it can be removed again.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn func()
}

// Window is the page-wide scroll and resize signal hub. One Window is shared
// by every dropdown on a page; each dropdown registers and removes its own
// listeners. Dispatch is synchronous and happens on the Bubble Tea update
// goroutine, so no locking is done.
type Window struct {
	scrollY       int
	width, height int

	nextID    ListenerID
	listeners map[Signal][]listener
}

// NewWindow creates an empty signal hub.
func NewWindow() *Window {
	return &Window{listeners: make(map[Signal][]listener)}
}

// AddListener registers fn for sig and returns its handle.
func (w *Window) AddListener(sig Signal, fn func()) ListenerID {
	w.nextID++
	id := w.nextID
	w.listeners[sig] = append(w.listeners[sig], listener{id: id, fn: fn})
	return id
}

// RemoveListener unregisters the listener with the given handle. Unknown
// handles are ignored.
func (w *Window) RemoveListener(sig Signal, id ListenerID) {
	ls := w.listeners[sig]
	for i, l := range ls {
		if l.id == id {
			w.listeners[sig] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Listeners returns how many listeners are registered for sig.
func (w *Window) Listeners(sig Signal) int {
	return len(w.listeners[sig])
}

// ScrollY implements Scroller.
func (w *Window) ScrollY() int {
	return w.scrollY
}

// Size returns the last known terminal size.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// ScrollTo moves the page's vertical offset and fires a scroll signal when it
// actually changed.
func (w *Window) ScrollTo(y int) {
	if y < 0 {
		y = 0
	}
	if y == w.scrollY {
		return
	}
	w.scrollY = y
	w.dispatch(SignalScroll)
}

// Resize records the terminal size and fires a resize signal.
func (w *Window) Resize(width, height int) {
	w.width, w.height = width, height
	w.dispatch(SignalResize)
}

// Update feeds Bubble Tea messages the Window cares about.
func (w *Window) Update(msg tea.Msg) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		w.Resize(msg.Width, msg.Height)
	}
}

// dispatch calls every listener registered for sig. The list is snapshotted
// first; a listener removed by an earlier one in the same dispatch is skipped.
func (w *Window) dispatch(sig Signal) {
	snapshot := append([]listener(nil), w.listeners[sig]...)
	for _, l := range snapshot {
		if !w.registered(sig, l.id) {
			continue
		}
		l.fn()
	}
}

func (w *Window) registered(sig Signal, id ListenerID) bool {
	for _, l := range w.listeners[sig] {
		if l.id == id {
			return true
		}
	}
	return false
}
