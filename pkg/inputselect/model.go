package inputselect

import (
	"errors"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/marcus/pick/pkg/inputselect/mouse"
)

// ErrNoParseItem is returned by New when Config.ParseItem is nil.
var ErrNoParseItem = errors.New("inputselect: ParseItem is required")

const (
	DefaultWidth      = 32
	DefaultMaxVisible = 6

	triggerHeight = 3 // bordered, one line of text

	regionTrigger = "trigger"
	regionPanel   = "panel"
	regionRow     = "row"
)

// Config configures a dropdown.
type Config[T any] struct {
	// ID routes ItemsMsg and LoadingMsg. A random one is generated if empty.
	ID string

	Label        string
	DefaultValue *T
	Items        []T
	IsLoading    bool
	LoadingLabel string

	// ParseItem derives label and value. Values must be unique within Items.
	ParseItem ParseFunc[T]

	// OnChange is called once per confirmed, non-nil selection with the raw
	// item.
	OnChange func(T)

	Placeholder string
	EmptyLabel  string
	Width       int
	MaxVisible  int

	// Filter narrows the panel to labels that fuzzy-match the typed text.
	Filter bool

	// Window is the page's shared signal hub. A private one is created if
	// nil; the dropdown then feeds it tea.WindowSizeMsg itself.
	Window *Window

	// Behavior defaults to a new Combobox.
	Behavior Behavior
	Logger   *slog.Logger
}

// Model is a dropdown select control for items of type T.
//
// The host mounts it at a screen position on every layout pass, forwards key
// (while focused) and mouse messages to Update, and draws the open panel with
// Overlay after composing the rest of the screen.
type Model[T any] struct {
	id           string
	label        string
	placeholder  string
	loadingLabel string
	emptyLabel   string
	width        int
	maxVisible   int
	filter       bool
	parse        ParseFunc[T]

	items   []T
	view    []T
	loading bool
	focused bool
	offset  int

	window     *Window
	ownsWindow bool
	behavior   Behavior
	unsub      func()
	selection  *Selection[T]
	tracker    *Tracker
	trigger    Ref
	mouse      *mouse.Handler
	logger     *slog.Logger
	closed     bool
}

// New builds a dropdown from cfg.
func New[T any](cfg Config[T]) (*Model[T], error) {
	if cfg.ParseItem == nil {
		return nil, ErrNoParseItem
	}

	m := &Model[T]{
		id:           cfg.ID,
		label:        cfg.Label,
		placeholder:  cfg.Placeholder,
		loadingLabel: cfg.LoadingLabel,
		emptyLabel:   cfg.EmptyLabel,
		width:        cfg.Width,
		maxVisible:   cfg.MaxVisible,
		filter:       cfg.Filter,
		parse:        cfg.ParseItem,
		items:        cfg.Items,
		loading:      cfg.IsLoading,
		window:       cfg.Window,
		behavior:     cfg.Behavior,
		logger:       cfg.Logger,
		mouse:        mouse.NewHandler(),
	}
	if m.id == "" {
		m.id = uuid.NewString()
	}
	if m.width <= 0 {
		m.width = DefaultWidth
	}
	if m.maxVisible <= 0 {
		m.maxVisible = DefaultMaxVisible
	}
	if m.window == nil {
		m.window = NewWindow()
		m.ownsWindow = true
	}
	if m.behavior == nil {
		m.behavior = NewCombobox()
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	m.logger = m.logger.With("dropdown", m.id)

	onChange := cfg.OnChange
	m.selection = NewSelection(cfg.DefaultValue, func(item T) {
		m.logger.Debug("selection confirmed", "value", m.parse(item).Value)
		if onChange != nil {
			onChange(item)
		}
	})
	m.tracker = NewTracker(m.window, &m.trigger, m.logger)

	m.unsub = m.behavior.Subscribe(m.onBehaviorChange)
	m.refilter()
	if m.behavior.State().Open {
		m.tracker.SetOpen(true)
	}
	return m, nil
}

// ID returns the dropdown's message routing ID.
func (m *Model[T]) ID() string { return m.id }

// Width returns the outer width of the trigger and panel.
func (m *Model[T]) Width() int { return m.width }

// Height returns the number of lines TriggerView occupies.
func (m *Model[T]) Height() int { return m.labelHeight() + triggerHeight }

// IsOpen reports whether the panel is open.
func (m *Model[T]) IsOpen() bool { return m.behavior.State().Open }

// Focused reports whether the dropdown receives key messages.
func (m *Model[T]) Focused() bool { return m.focused }

// Position returns the panel position last computed by the tracker.
func (m *Model[T]) Position() DropdownPosition { return m.tracker.Position() }

// Tracking reports whether scroll and resize listeners are registered.
func (m *Model[T]) Tracking() bool { return m.tracker.Active() }

// Selected returns the committed item.
func (m *Model[T]) Selected() (T, bool) { return m.selection.Selected() }

// Items returns the items the panel currently lists, after filtering.
func (m *Model[T]) Items() []T { return m.view }

// Loading reports whether the item list is being fetched.
func (m *Model[T]) Loading() bool { return m.loading }

// Focus makes the dropdown receive key messages.
func (m *Model[T]) Focus() { m.focused = true }

// Blur stops key delivery and closes the panel.
func (m *Model[T]) Blur() {
	m.focused = false
	m.behavior.Close()
}

// Mount records that the dropdown's top-left corner (its label line, if
// any) is drawn at screen cell (x, y). Hosts call it on every layout pass.
func (m *Model[T]) Mount(x, y int) {
	m.trigger.Set(Rect{X: x, Y: y + m.labelHeight(), W: m.width, H: triggerHeight})
}

// Unmount marks the trigger as not drawn. The panel then anchors at the
// origin until the next Mount.
func (m *Model[T]) Unmount() {
	m.trigger.Clear()
}

// SetItems replaces the item list.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.refilter()
}

// SetLoading sets the loading flag. While loading, the list is not shown
// and cannot be picked from.
func (m *Model[T]) SetLoading(loading bool) {
	m.loading = loading
	m.refilter()
}

// Close tears the dropdown down: position tracking stops and it stops
// listening to its behavior. It is safe to call more than once.
func (m *Model[T]) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.tracker.Close()
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
	m.trigger.Clear()
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.ownsWindow {
			m.window.Update(msg)
		}
	case tea.KeyMsg:
		if m.focused {
			return m, m.behavior.HandleKey(msg)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case ItemsMsg[T]:
		if msg.ID != m.id {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.logger.Error("load items", "err", msg.Err)
			m.SetItems(nil)
		} else {
			m.SetItems(msg.Items)
		}
	case LoadingMsg:
		if msg.ID == m.id {
			m.SetLoading(msg.Loading)
		}
	}
	return m, nil
}

// Contains reports whether screen cell (x, y) is over the open panel.
func (m *Model[T]) Contains(x, y int) bool {
	if !m.IsOpen() {
		return false
	}
	m.layoutHits()
	r := m.mouse.HitMap.Test(x, y)
	return r != nil && r.ID != regionTrigger
}

// TriggerView renders the label line and the trigger field.
func (m *Model[T]) TriggerView() string {
	st := m.behavior.State()
	selected, ok := m.selection.Label(m.parse)
	text := TriggerText(st.InputValue, selected, ok, m.placeholder)

	textWidth := max(m.width-6, 1) // border, padding, arrow
	text = ansi.Truncate(text, textWidth, "…")
	pad := strings.Repeat(" ", max(textWidth-ansi.StringWidth(text), 0))

	style := PlaceholderText
	if st.InputValue != "" || (ok && selected != "") {
		style = ValueText
	}
	arrow := "▾"
	if st.Open {
		arrow = "▴"
	}

	box := TriggerBox
	if m.focused {
		box = TriggerBoxFocused
	}
	field := box.Width(m.width - 2).Render(style.Render(text) + pad + " " + arrow)

	if m.label == "" {
		return field
	}
	return LabelText.Render(ansi.Truncate(m.label, m.width, "…")) + "\n" + field
}

// PanelView renders the panel, or "" when closed.
func (m *Model[T]) PanelView() string {
	return m.renderPanel().content
}

// Overlay draws the open panel over screen at its tracked position.
func (m *Model[T]) Overlay(screen string) string {
	if !m.IsOpen() {
		return screen
	}
	x, y := m.panelOrigin()
	return PlaceOverlay(x, y, m.PanelView(), screen)
}

// View implements tea.Model for standalone use, with the dropdown mounted at
// the top-left of the screen.
func (m *Model[T]) View() string {
	return m.Overlay(m.TriggerView())
}

func (m *Model[T]) labelHeight() int {
	if m.label == "" {
		return 0
	}
	return 1
}

func (m *Model[T]) renderState() RenderState[T] {
	st := m.behavior.State()
	var selected *T
	if item, ok := m.selection.Selected(); ok {
		selected = &item
	}
	return RenderState[T]{
		Open:         st.Open,
		Loading:      m.loading,
		LoadingLabel: m.loadingLabel,
		EmptyLabel:   m.emptyLabel,
		Items:        m.view,
		Highlighted:  st.Highlighted,
		Selected:     selected,
		Parse:        m.parse,
	}
}

func (m *Model[T]) renderPanel() panel {
	return renderPanel(Rows(m.renderState()), m.offset, m.maxVisible, m.width)
}

// panelOrigin converts the page position to screen cells.
func (m *Model[T]) panelOrigin() (x, y int) {
	pos := m.tracker.Position()
	return pos.Left, pos.Top - m.window.ScrollY()
}

// refilter recomputes the listed items and tells the behavior how many
// there are.
func (m *Model[T]) refilter() {
	if m.filter {
		m.view = filterItems(m.items, m.parse, m.behavior.State().InputValue)
	} else {
		m.view = m.items
	}
	n := len(m.view)
	if m.loading {
		n = 0
	}
	m.behavior.SetItemCount(n)
	m.followHighlight()
}

func (m *Model[T]) followHighlight() {
	m.offset = clampOffset(m.offset, m.behavior.State().Highlighted, len(m.view), m.maxVisible)
}

func (m *Model[T]) onBehaviorChange(ch Change) {
	switch ch.Type {
	case ChangeOpen:
		m.offset = 0
		m.tracker.SetOpen(true)
	case ChangeClose:
		m.tracker.SetOpen(false)
		m.refilter()
	case ChangeInput:
		m.offset = 0
		m.refilter()
	case ChangeHighlight:
		m.followHighlight()
	case ChangeSelect:
		if m.loading || ch.Index < 0 || ch.Index >= len(m.view) {
			m.selection.Select(nil)
			return
		}
		item := m.view[ch.Index]
		m.selection.Select(&item)
	}
}

// layoutHits rebuilds the hit map from the current trigger and panel
// geometry. Panel regions are added last so they win over the trigger.
func (m *Model[T]) layoutHits() {
	hm := m.mouse.HitMap
	hm.Clear()

	if r, ok := m.trigger.BoundingRect(); ok {
		hm.AddRect(regionTrigger, r.X, r.Y, r.W, r.H, r)
	}
	if !m.IsOpen() {
		return
	}

	p := m.renderPanel()
	if p.content == "" {
		return
	}
	x, y := m.panelOrigin()
	hm.AddRect(regionPanel, x, y, m.width, len(p.lineRow)+2, nil)
	for i, idx := range p.lineRow {
		if idx >= 0 {
			hm.AddRect(regionRow, x+1, y+1+i, m.width-2, 1, idx)
		}
	}
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) {
	m.layoutHits()
	a := m.mouse.HandleMouse(msg)

	switch a.Type {
	case mouse.ActionClick:
		if a.Region == nil {
			m.focused = false
			m.behavior.Close()
			return
		}
		switch a.Region.ID {
		case regionTrigger:
			m.focused = true
			m.tracker.UpdateFrom(rectElement(a.Region.Data.(Rect)))
			m.behavior.Toggle()
		case regionRow:
			m.behavior.Highlight(a.Region.Data.(int))
			m.behavior.SelectHighlighted()
		}

	case mouse.ActionHover:
		if a.Region != nil && a.Region.ID == regionRow {
			m.behavior.Highlight(a.Region.Data.(int))
		}

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		if a.Region == nil || a.Region.ID == regionTrigger {
			return
		}
		delta := 1
		if a.Type == mouse.ActionScrollUp {
			delta = -1
		}
		m.offset = clampOffset(m.offset+delta, -1, len(m.view), m.maxVisible)
	}
}

// rectElement is a clicked region acting as the element it was hit-tested
// from.
type rectElement Rect

func (r rectElement) BoundingRect() (Rect, bool) { return Rect(r), true }
