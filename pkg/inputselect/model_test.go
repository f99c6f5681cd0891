package inputselect

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func newFruitModel(t *testing.T, cfg Config[fruit]) *Model[fruit] {
	t.Helper()
	if cfg.ParseItem == nil {
		cfg.ParseItem = parseFruit
	}
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestNewRequiresParseItem(t *testing.T) {
	_, err := New(Config[fruit]{Label: "Fruit"})
	if !errors.Is(err, ErrNoParseItem) {
		t.Errorf("New() error = %v, want ErrNoParseItem", err)
	}
}

func TestDefaultValueShownWithoutOnChange(t *testing.T) {
	calls := 0
	m := newFruitModel(t, Config[fruit]{
		Label:        "Fruit",
		DefaultValue: &fruit{id: "b", name: "Banana"},
		Items:        []fruit{apple, banana},
		OnChange:     func(fruit) { calls++ },
	})

	view := ansi.Strip(m.TriggerView())
	if !strings.Contains(view, "Banana") {
		t.Errorf("trigger should show the default label, got:\n%s", view)
	}
	if calls != 0 {
		t.Errorf("default value triggered OnChange %d times", calls)
	}
	if m.PanelView() != "" {
		t.Error("closed dropdown should render no panel")
	}
}

func TestPlaceholderShownWithoutSelection(t *testing.T) {
	m := newFruitModel(t, Config[fruit]{Items: []fruit{apple}})
	if view := ansi.Strip(m.TriggerView()); !strings.Contains(view, "Select...") {
		t.Errorf("expected placeholder, got:\n%s", view)
	}
}

func TestKeyboardSelectionNotifiesOwner(t *testing.T) {
	var picked []fruit
	m := newFruitModel(t, Config[fruit]{
		Items:    []fruit{apple, banana},
		OnChange: func(f fruit) { picked = append(picked, f) },
	})

	// Unfocused dropdowns ignore keys.
	m.Update(keyDown)
	if m.IsOpen() {
		t.Fatal("unfocused dropdown opened on a key")
	}

	m.Focus()
	m.Update(keyDown) // opens, highlights Apple
	m.Update(keyDown) // Banana
	m.Update(keyEnter)

	if len(picked) != 1 || picked[0] != banana {
		t.Fatalf("OnChange calls = %+v, want [banana]", picked)
	}
	if got, ok := m.Selected(); !ok || got != banana {
		t.Errorf("Selected() = %+v, %v", got, ok)
	}
	if m.IsOpen() || m.Tracking() {
		t.Error("dropdown should be closed and untracked after selecting")
	}
	if view := ansi.Strip(m.TriggerView()); !strings.Contains(view, "Banana") {
		t.Errorf("trigger should show the selection, got:\n%s", view)
	}
}

func TestEscapeDoesNotNotify(t *testing.T) {
	calls := 0
	m := newFruitModel(t, Config[fruit]{
		DefaultValue: &apple,
		Items:        []fruit{apple, banana},
		OnChange:     func(fruit) { calls++ },
	})
	m.Focus()
	m.Update(keyDown)
	m.Update(keyDown)
	m.Update(keyEsc)

	if calls != 0 {
		t.Errorf("dismissal called OnChange %d times", calls)
	}
	if got, _ := m.Selected(); got != apple {
		t.Errorf("dismissal changed selection to %+v", got)
	}
}

func TestOpenRendersRowsInOrder(t *testing.T) {
	m := newFruitModel(t, Config[fruit]{Items: []fruit{apple, banana}})
	m.Focus()
	m.Update(keyEnter)

	rows := Rows(m.renderState())
	if got := rowLabels(rows); len(got) != 2 || got[0] != "Apple" || got[1] != "Banana" {
		t.Errorf("rows = %v, want [Apple Banana]", got)
	}
	for _, r := range rows {
		if r.Highlighted {
			t.Errorf("row %q highlighted without provider highlight", r.Label)
		}
	}

	panel := ansi.Strip(m.PanelView())
	if strings.Index(panel, "Apple") > strings.Index(panel, "Banana") {
		t.Errorf("Apple should be drawn before Banana:\n%s", panel)
	}
}

func TestLoadingPanel(t *testing.T) {
	calls := 0
	m := newFruitModel(t, Config[fruit]{
		IsLoading:    true,
		LoadingLabel: "Loading",
		OnChange:     func(fruit) { calls++ },
	})
	m.Focus()
	m.Update(keyDown)

	if panel := ansi.Strip(m.PanelView()); !strings.Contains(panel, "Loading...") {
		t.Errorf("expected loading row, got:\n%s", panel)
	}

	m.Update(keyEnter)
	if calls != 0 {
		t.Errorf("picking while loading called OnChange %d times", calls)
	}
}

func TestEmptyPanel(t *testing.T) {
	m := newFruitModel(t, Config[fruit]{})
	m.Focus()
	m.Update(keyEnter)

	if panel := ansi.Strip(m.PanelView()); !strings.Contains(panel, "No items") {
		t.Errorf("expected empty row, got:\n%s", panel)
	}
}

func TestItemsMsgRouting(t *testing.T) {
	m := newFruitModel(t, Config[fruit]{ID: "fruit", IsLoading: true})

	m.Update(ItemsMsg[fruit]{ID: "other", Items: []fruit{apple}})
	if !m.Loading() || len(m.Items()) != 0 {
		t.Fatal("message for another dropdown was applied")
	}

	m.Update(ItemsMsg[fruit]{ID: "fruit", Items: []fruit{apple, banana}})
	if m.Loading() || len(m.Items()) != 2 {
		t.Errorf("loading=%v items=%d, want loaded with 2 items", m.Loading(), len(m.Items()))
	}

	m.Update(LoadingMsg{ID: "fruit", Loading: true})
	if !m.Loading() {
		t.Error("LoadingMsg should set the flag")
	}

	m.Update(ItemsMsg[fruit]{ID: "fruit", Err: errors.New("boom")})
	if m.Loading() || len(m.Items()) != 0 {
		t.Errorf("failed load should leave an empty, loaded list")
	}
}

func TestFilterNarrowsItems(t *testing.T) {
	var picked fruit
	m := newFruitModel(t, Config[fruit]{
		Items:    []fruit{apple, banana, cherry},
		Filter:   true,
		OnChange: func(f fruit) { picked = f },
	})
	m.Focus()
	m.Update(keyEnter)
	m.Update(typeText("chy"))

	items := m.Items()
	if len(items) != 1 || items[0] != cherry {
		t.Fatalf("filtered items = %+v, want [cherry]", items)
	}
	if view := ansi.Strip(m.TriggerView()); !strings.Contains(view, "chy") {
		t.Errorf("trigger should show typed text, got:\n%s", view)
	}

	m.Update(keyDown)
	m.Update(keyEnter)
	if picked != cherry {
		t.Errorf("picked %+v, want cherry", picked)
	}
	if len(m.Items()) != 3 {
		t.Errorf("closing should clear the filter, got %d items", len(m.Items()))
	}
}

func TestTrackingFollowsOpenState(t *testing.T) {
	w := NewWindow()
	m := newFruitModel(t, Config[fruit]{Label: "Fruit", Items: []fruit{apple}, Window: w})
	m.Mount(2, 5)
	m.Focus()

	m.Update(keyEnter)
	if !m.Tracking() || w.Listeners(SignalScroll) != 1 || w.Listeners(SignalResize) != 1 {
		t.Fatal("opening should register scroll and resize listeners")
	}
	// Label line at 5, trigger rows 6-8, panel from row 9.
	if got, want := m.Position(), (DropdownPosition{Top: 9, Left: 2}); got != want {
		t.Errorf("Position() = %+v, want %+v", got, want)
	}

	w.ScrollTo(4)
	if got := m.Position().Top; got != 13 {
		t.Errorf("after scroll Top = %d, want 13", got)
	}

	m.Update(keyEsc)
	if m.Tracking() || w.Listeners(SignalScroll) != 0 || w.Listeners(SignalResize) != 0 {
		t.Error("closing should remove listeners")
	}
}

func TestCloseTearsDownWhileOpen(t *testing.T) {
	w := NewWindow()
	m, err := New(Config[fruit]{Items: []fruit{apple}, ParseItem: parseFruit, Window: w})
	if err != nil {
		t.Fatal(err)
	}
	m.Focus()
	m.Update(keyEnter)

	m.Close()
	m.Close()
	if w.Listeners(SignalScroll) != 0 || w.Listeners(SignalResize) != 0 {
		t.Error("Close left listeners on the shared window")
	}
}

func TestOpenCloseCyclesDoNotLeak(t *testing.T) {
	w := NewWindow()
	a := newFruitModel(t, Config[fruit]{Items: []fruit{apple}, Window: w})
	b := newFruitModel(t, Config[fruit]{Items: []fruit{banana}, Window: w})
	a.Focus()
	b.Focus()

	for i := 0; i < 10; i++ {
		a.Update(keyEnter)
		b.Update(keyEnter)
		a.Update(keyEsc)
		if w.Listeners(SignalScroll) != 1 {
			t.Fatalf("cycle %d: expected only b's listener, got %d", i, w.Listeners(SignalScroll))
		}
		b.Update(keyEsc)
	}
	if w.Listeners(SignalScroll) != 0 || w.Listeners(SignalResize) != 0 {
		t.Error("listeners leaked across open/close cycles")
	}
}

func TestMouseClickOpensAndSelects(t *testing.T) {
	var picked []fruit
	m := newFruitModel(t, Config[fruit]{
		Label:    "Fruit",
		Items:    []fruit{apple, banana},
		OnChange: func(f fruit) { picked = append(picked, f) },
	})
	m.Mount(0, 0)

	// Trigger occupies rows 1-3.
	m.Update(click(4, 2))
	if !m.IsOpen() || !m.Focused() {
		t.Fatal("clicking the trigger should open and focus")
	}
	if got, want := m.Position(), (DropdownPosition{Top: 4, Left: 0}); got != want {
		t.Errorf("Position() = %+v, want %+v", got, want)
	}

	// Panel border on row 4, Apple on 5, Banana on 6.
	if !m.Contains(3, 6) {
		t.Error("Contains should report the panel")
	}
	m.Update(tea.MouseMsg{X: 3, Y: 6, Action: tea.MouseActionMotion})
	if got := m.behavior.State().Highlighted; got != 1 {
		t.Errorf("hover should highlight Banana, got %d", got)
	}

	m.Update(click(3, 6))
	if len(picked) != 1 || picked[0] != banana {
		t.Errorf("OnChange calls = %+v, want [banana]", picked)
	}
	if m.IsOpen() {
		t.Error("panel should close after a pick")
	}
}

func TestMouseClickOutsideCloses(t *testing.T) {
	m := newFruitModel(t, Config[fruit]{Items: []fruit{apple}})
	m.Mount(0, 0)
	m.Update(click(1, 1))
	if !m.IsOpen() {
		t.Fatal("expected open panel")
	}

	m.Update(click(60, 20))
	if m.IsOpen() || m.Focused() || m.Tracking() {
		t.Error("clicking elsewhere should close, blur and stop tracking")
	}
}

func TestOverlayDrawsPanelBelowTrigger(t *testing.T) {
	m := newFruitModel(t, Config[fruit]{Label: "Fruit", Items: []fruit{apple, banana}, Width: 20})
	m.Mount(0, 0)
	m.Update(click(2, 2))

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) < 8 {
		t.Fatalf("expected trigger plus panel, got %d lines:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[4], "┌") {
		t.Errorf("panel border should start on line 4, got %q", lines[4])
	}
	if !strings.Contains(lines[5], "Apple") || !strings.Contains(lines[6], "Banana") {
		t.Errorf("unexpected panel rows:\n%s", strings.Join(lines, "\n"))
	}
}

func TestPanelWindowing(t *testing.T) {
	items := make([]fruit, 10)
	for i := range items {
		items[i] = fruit{id: string(rune('a' + i)), name: "Item " + string(rune('A'+i))}
	}
	m := newFruitModel(t, Config[fruit]{Items: items, MaxVisible: 3})
	m.Focus()
	m.Update(keyEnter)

	panel := ansi.Strip(m.PanelView())
	if strings.Contains(panel, "more above") || !strings.Contains(panel, "more below") {
		t.Errorf("top of list should only show the lower indicator:\n%s", panel)
	}

	m.Update(keyEnd)
	panel = ansi.Strip(m.PanelView())
	if !strings.Contains(panel, "Item J") || strings.Contains(panel, "Item A") {
		t.Errorf("panel should scroll to the highlighted last item:\n%s", panel)
	}
	if !strings.Contains(panel, "more above") {
		t.Errorf("expected upper indicator:\n%s", panel)
	}
}
