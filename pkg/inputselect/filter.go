package inputselect

import "github.com/sahilm/fuzzy"

// labelSource exposes item labels to the fuzzy matcher.
type labelSource[T any] struct {
	items []T
	parse ParseFunc[T]
}

func (s labelSource[T]) String(i int) string { return s.parse(s.items[i]).Label }
func (s labelSource[T]) Len() int            { return len(s.items) }

// filterItems returns the items whose labels fuzzy-match pattern, best match
// first. An empty pattern returns items unchanged.
func filterItems[T any](items []T, parse ParseFunc[T], pattern string) []T {
	if pattern == "" {
		return items
	}
	matches := fuzzy.FindFrom(pattern, labelSource[T]{items: items, parse: parse})
	out := make([]T, 0, len(matches))
	for _, m := range matches {
		out = append(out, items[m.Index])
	}
	return out
}
