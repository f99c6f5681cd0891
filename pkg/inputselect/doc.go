// Package inputselect provides a generic dropdown select control for Bubble
// Tea programs.
//
// A dropdown is generic over its item type. The consumer supplies a
// ParseFunc that maps an item to its display label and a value that must be
// unique within the list; the value is also what decides which row is the
// selected one, so regenerated lists with fresh item values still match.
//
// # Quick Start
//
//	type fruit struct{ ID, Name string }
//
//	dd, err := inputselect.New(inputselect.Config[fruit]{
//	    Label:     "Fruit",
//	    Items:     fruits,
//	    ParseItem: func(f fruit) inputselect.Parsed { return inputselect.Parsed{Label: f.Name, Value: f.ID} },
//	    OnChange:  func(f fruit) { log.Println("picked", f.Name) },
//	    Window:    window, // shared by every dropdown on the page
//	})
//
//	// Layout: tell the dropdown where its label line is drawn.
//	dd.Mount(x, y)
//
//	// View: compose the screen, then draw the open panel on top.
//	screen = dd.Overlay(screen)
//
// # Positioning
//
// The panel sits directly below the trigger, left-aligned with it. Its
// position is tracked only while the panel is open: opening registers scroll
// and resize listeners on the shared Window and computes the position once;
// closing, or Close on the dropdown, removes them. Hosts report page scroll
// with Window.ScrollTo and terminal resizes with Window.Resize (or
// Window.Update with a tea.WindowSizeMsg).
//
// # Behavior
//
// Open state, highlight and keyboard handling come from a Behavior. The
// default Combobox opens on enter, space or down, moves with up/down (wrapping
// at both ends), selects with enter or tab and dismisses with esc. Any other
// input while open is typed into a free-text value, shown in the trigger and,
// with Config.Filter, used to fuzzy-filter the list.
package inputselect
