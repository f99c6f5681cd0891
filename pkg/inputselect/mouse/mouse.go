// Package mouse maps terminal mouse events onto named screen regions.
//
// Regions are registered after layout, in paint order; when regions
// overlap, the one added last wins, matching what is drawn on top.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen rectangle. Width and height are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named, hit-testable rectangle.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions of the last layout.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Later regions take priority over earlier ones.
func (h *HitMap) AddRect(id string, x, y, w, h2 int, data any) {
	if w <= 0 || h2 <= 0 {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h2}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions in priority order, lowest first.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// Clear drops every region.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// ActionType classifies a mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

// Action is a classified mouse event. Region is nil when the event fell
// outside every region.
type Action struct {
	Type   ActionType
	X, Y   int
	Region *Region
}

// Handler classifies mouse events against its hit map.
type Handler struct {
	HitMap *HitMap
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleMouse classifies msg. Wheel events are reported as scrolls; left
// presses as clicks; motion as hover. Everything else is ActionNone.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	a := Action{X: msg.X, Y: msg.Y, Region: h.HitMap.Test(msg.X, msg.Y)}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		a.Type = ActionScrollUp
	case msg.Button == tea.MouseButtonWheelDown:
		a.Type = ActionScrollDown
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		a.Type = ActionClick
	case msg.Action == tea.MouseActionMotion:
		a.Type = ActionHover
	}
	return a
}

// Clear drops every region from the hit map.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
