package inputselect

// Parsed is the display form of an item.
type Parsed struct {
	Label string
	// Value identifies the item. It must be unique within a list; this is
	// not checked here (see ValidateValues).
	Value string
}

// ParseFunc derives the display form of an item. It must be pure.
type ParseFunc[T any] func(T) Parsed

// Selection holds the committed item of a dropdown.
type Selection[T any] struct {
	item     T
	ok       bool
	onChange func(T)
}

// NewSelection creates a selection seeded with defaultValue, if any. Seeding
// does not call onChange.
func NewSelection[T any](defaultValue *T, onChange func(T)) *Selection[T] {
	s := &Selection[T]{onChange: onChange}
	if defaultValue != nil {
		s.item = *defaultValue
		s.ok = true
	}
	return s
}

// Select commits item and reports it to the owner. A nil item means the user
// dismissed the panel without choosing and is ignored.
func (s *Selection[T]) Select(item *T) {
	if item == nil {
		return
	}
	s.item = *item
	s.ok = true
	if s.onChange != nil {
		s.onChange(*item)
	}
}

// Selected returns the committed item.
func (s *Selection[T]) Selected() (T, bool) {
	return s.item, s.ok
}

// Label returns the label of the committed item, parsed now.
func (s *Selection[T]) Label(parse ParseFunc[T]) (string, bool) {
	if !s.ok {
		return "", false
	}
	return parse(s.item).Label, true
}

// Is reports whether item is the committed one, comparing parsed values.
func (s *Selection[T]) Is(item T, parse ParseFunc[T]) bool {
	if !s.ok {
		return false
	}
	return parse(s.item).Value == parse(item).Value
}
