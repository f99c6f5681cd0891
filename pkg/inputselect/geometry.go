package inputselect

// Rect is a box in viewport (screen) cells.
type Rect struct {
	X, Y int
	W, H int
}

// DropdownPosition is where the panel's top-left corner goes, in page
// coordinates (already adjusted for the page's vertical scroll).
type DropdownPosition struct {
	Top  int
	Left int
}

// Element is something that can report the box it was last drawn into.
// The bool is false while the element is not mounted.
type Element interface {
	BoundingRect() (Rect, bool)
}

// Scroller reports the page's current vertical scroll offset.
type Scroller interface {
	ScrollY() int
}

// ResolvePosition computes the panel anchor for el: directly below the
// trigger, left-aligned with it. An unmounted or nil element yields the zero
// position. Only vertical scroll is compensated.
func ResolvePosition(el Element, page Scroller) DropdownPosition {
	if el == nil {
		return DropdownPosition{}
	}
	r, ok := el.BoundingRect()
	if !ok {
		return DropdownPosition{}
	}

	scrollY := 0
	if page != nil {
		scrollY = page.ScrollY()
	}
	return DropdownPosition{
		Top:  scrollY + r.Y + r.H,
		Left: r.X,
	}
}

// Ref records where a trigger was drawn. The zero value is unmounted.
type Ref struct {
	rect    Rect
	mounted bool
}

// Set records the trigger box and marks the ref mounted.
func (r *Ref) Set(rect Rect) {
	r.rect = rect
	r.mounted = true
}

// Clear marks the ref unmounted.
func (r *Ref) Clear() {
	r.rect = Rect{}
	r.mounted = false
}

// BoundingRect implements Element.
func (r *Ref) BoundingRect() (Rect, bool) {
	if r == nil || !r.mounted {
		return Rect{}, false
	}
	return r.rect, true
}
