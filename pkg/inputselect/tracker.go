package inputselect

import "log/slog"

// Tracker keeps a panel pinned below its trigger while the panel is open.
//
// It is Inactive (no listeners on the Window) until SetOpen(true), which
// registers scroll and resize listeners and recomputes the position once
// straight away. SetOpen(false) and Close remove both listeners again. Every
// scroll or resize signal seen while Active recomputes the position; there is
// no throttling.
type Tracker struct {
	window *Window
	anchor Element
	logger *slog.Logger

	pos    DropdownPosition
	active bool

	scrollID ListenerID
	resizeID ListenerID

	// OnUpdate, if set, is called after every recomputation.
	OnUpdate func(DropdownPosition)
}

// NewTracker creates an inactive tracker for anchor on window.
func NewTracker(window *Window, anchor Element, logger *slog.Logger) *Tracker {
	if window == nil {
		window = NewWindow()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{window: window, anchor: anchor, logger: logger}
}

// Position returns the last computed position. It may be stale while the
// tracker is inactive.
func (t *Tracker) Position() DropdownPosition {
	return t.pos
}

// Active reports whether listeners are currently registered.
func (t *Tracker) Active() bool {
	return t.active
}

// SetOpen follows the provider's open flag.
func (t *Tracker) SetOpen(open bool) {
	if open {
		t.activate()
	} else {
		t.deactivate()
	}
}

// Close tears the tracker down. It is safe to call more than once.
func (t *Tracker) Close() {
	t.deactivate()
}

// Update recomputes the position from the tracked anchor.
func (t *Tracker) Update() DropdownPosition {
	return t.UpdateFrom(t.anchor)
}

// UpdateFrom recomputes the position from el, which is usually the element
// that was just clicked.
func (t *Tracker) UpdateFrom(el Element) DropdownPosition {
	t.pos = ResolvePosition(el, t.window)
	if t.OnUpdate != nil {
		t.OnUpdate(t.pos)
	}
	return t.pos
}

func (t *Tracker) activate() {
	if t.active {
		return
	}
	t.active = true
	t.scrollID = t.window.AddListener(SignalScroll, t.onSignal)
	t.resizeID = t.window.AddListener(SignalResize, t.onSignal)
	t.Update()
	t.logger.Debug("position tracking started", "top", t.pos.Top, "left", t.pos.Left)
}

func (t *Tracker) deactivate() {
	if !t.active {
		return
	}
	t.window.RemoveListener(SignalScroll, t.scrollID)
	t.window.RemoveListener(SignalResize, t.resizeID)
	t.scrollID, t.resizeID = 0, 0
	t.active = false
	t.logger.Debug("position tracking stopped")
}

func (t *Tracker) onSignal() {
	t.Update()
}
