package page

// The demo document. A dropdown is drawn after each section except the
// last, in the order the page creates them.
var sections = []string{
	`# Dropdowns on a scrolling page

Each field below opens a panel anchored under its trigger. Scroll the page
while a panel is open and it stays attached.

## Fruit

A static list with a default value.`,

	`## People

Loaded from the catalog after a simulated delay. The panel shows a loading
row until the fetch completes.`,

	`## Notes

The panel position is tracked only while it is open. Closing it removes the
scroll and resize listeners again, so a page full of closed dropdowns costs
nothing when it scrolls.

Positions are page coordinates: the row under the trigger plus the current
scroll offset. The panel is drawn at that position minus the offset, which
puts it back under the trigger wherever the trigger is on screen.

Mouse wheel events over an open panel move its list. Anywhere else they
scroll the page.

Keys go to the focused field. Use tab to move between fields.

## Countries

Type to narrow the list. Matches are ranked by how well the label fits.`,

	`---

That is the whole page.`,
}
