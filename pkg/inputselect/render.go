package inputselect

import "fmt"

const (
	DefaultPlaceholder  = "Select..."
	DefaultLoadingLabel = "Loading"
	DefaultEmptyLabel   = "No items"
)

// RowKind distinguishes the rows a panel can show.
type RowKind int

const (
	RowItem RowKind = iota
	RowLoading
	RowEmpty
)

// Row is one line of the panel.
type Row struct {
	Kind  RowKind
	Key   string // parsed value; empty for non-item rows
	Label string
	Index int // position in the item list; -1 for non-item rows

	Highlighted bool
	Selected    bool
}

// RenderState is everything the render policy looks at.
type RenderState[T any] struct {
	Open         bool
	Loading      bool
	LoadingLabel string
	EmptyLabel   string
	Items        []T
	Highlighted  int // -1 for none
	Selected     *T
	Parse        ParseFunc[T]
}

// Rows derives the panel content. The first matching rule wins: closed
// panels are empty, loading shows a single loading row, an empty list shows
// a single "no items" row, otherwise there is one row per item.
func Rows[T any](s RenderState[T]) []Row {
	if !s.Open {
		return nil
	}

	if s.Loading {
		label := s.LoadingLabel
		if label == "" {
			label = DefaultLoadingLabel
		}
		return []Row{{Kind: RowLoading, Label: label + "...", Index: -1}}
	}

	if len(s.Items) == 0 {
		label := s.EmptyLabel
		if label == "" {
			label = DefaultEmptyLabel
		}
		return []Row{{Kind: RowEmpty, Label: label, Index: -1}}
	}

	selectedValue, hasSelected := "", false
	if s.Selected != nil {
		selectedValue, hasSelected = s.Parse(*s.Selected).Value, true
	}

	rows := make([]Row, len(s.Items))
	for i, item := range s.Items {
		p := s.Parse(item)
		rows[i] = Row{
			Kind:        RowItem,
			Key:         p.Value,
			Label:       p.Label,
			Index:       i,
			Highlighted: i == s.Highlighted,
			Selected:    hasSelected && p.Value == selectedValue,
		}
	}
	return rows
}

// TriggerText picks what the trigger field shows: typed text first, then the
// selected item's label, then the placeholder.
func TriggerText(inputValue, selectedLabel string, hasSelected bool, placeholder string) string {
	if inputValue != "" {
		return inputValue
	}
	if hasSelected && selectedLabel != "" {
		return selectedLabel
	}
	if placeholder == "" {
		return DefaultPlaceholder
	}
	return placeholder
}

// ValidateValues reports the first parsed value that appears more than once
// in items. Dropdowns do not call it; highlight and selection matching are
// ambiguous with duplicate values, so callers loading untrusted lists can.
func ValidateValues[T any](items []T, parse ParseFunc[T]) error {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		v := parse(item).Value
		if j, dup := seen[v]; dup {
			return fmt.Errorf("duplicate value %q at positions %d and %d", v, j, i)
		}
		seen[v] = i
	}
	return nil
}
