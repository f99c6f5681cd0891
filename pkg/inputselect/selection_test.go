package inputselect

import "testing"

type fruit struct {
	id   string
	name string
}

func parseFruit(f fruit) Parsed { return Parsed{Label: f.name, Value: f.id} }

func parseFruitPtr(f *fruit) Parsed { return Parsed{Label: f.name, Value: f.id} }

var (
	apple  = fruit{id: "a", name: "Apple"}
	banana = fruit{id: "b", name: "Banana"}
	cherry = fruit{id: "c", name: "Cherry"}
)

func TestSelectNilIsNoop(t *testing.T) {
	calls := 0
	s := NewSelection(&apple, func(fruit) { calls++ })

	s.Select(nil)

	got, ok := s.Selected()
	if !ok || got != apple {
		t.Errorf("Select(nil) changed selection to %+v, %v", got, ok)
	}
	if calls != 0 {
		t.Errorf("Select(nil) called onChange %d times", calls)
	}
}

func TestSelectCommitsAndNotifiesOnce(t *testing.T) {
	var got []fruit
	s := NewSelection(nil, func(f fruit) { got = append(got, f) })

	item := banana
	s.Select(&item)

	sel, ok := s.Selected()
	if !ok || sel != banana {
		t.Errorf("Selected() = %+v, %v, want banana", sel, ok)
	}
	if len(got) != 1 || got[0] != banana {
		t.Errorf("onChange calls = %+v, want exactly [banana]", got)
	}

	// Re-selecting the same item still reports it.
	s.Select(&item)
	if len(got) != 2 {
		t.Errorf("expected a second notification, got %d", len(got))
	}
}

func TestSelectionDefaultDoesNotNotify(t *testing.T) {
	calls := 0
	s := NewSelection(&banana, func(fruit) { calls++ })

	label, ok := s.Label(parseFruit)
	if !ok || label != "Banana" {
		t.Errorf("Label() = %q, %v, want Banana", label, ok)
	}
	if calls != 0 {
		t.Errorf("default value triggered onChange %d times", calls)
	}
}

func TestSelectionNilOnChange(t *testing.T) {
	s := NewSelection[fruit](nil, nil)
	item := cherry
	s.Select(&item)
	if got, _ := s.Selected(); got != cherry {
		t.Errorf("Selected() = %+v, want cherry", got)
	}
}

func TestSelectionLabelIsNotCached(t *testing.T) {
	locale := "en"
	parse := func(f fruit) Parsed {
		if locale == "fr" && f.id == "a" {
			return Parsed{Label: "Pomme", Value: f.id}
		}
		return parseFruit(f)
	}
	s := NewSelection(&apple, nil)

	if label, _ := s.Label(parse); label != "Apple" {
		t.Errorf("Label() = %q, want Apple", label)
	}
	locale = "fr"
	if label, _ := s.Label(parse); label != "Pomme" {
		t.Errorf("Label() after locale change = %q, want Pomme", label)
	}
}

func TestSelectionIsComparesParsedValue(t *testing.T) {
	original := &fruit{id: "b", name: "Banana"}
	s := NewSelection(&original, nil)

	// A regenerated list hands out new pointers for the same items.
	regenerated := &fruit{id: "b", name: "Banana (ripe)"}
	if !s.Is(regenerated, parseFruitPtr) {
		t.Error("items with equal parsed values should match")
	}
	if s.Is(&fruit{id: "a", name: "Banana"}, parseFruitPtr) {
		t.Error("items with different values should not match")
	}

	empty := NewSelection[*fruit](nil, nil)
	if empty.Is(regenerated, parseFruitPtr) {
		t.Error("empty selection should match nothing")
	}
}
