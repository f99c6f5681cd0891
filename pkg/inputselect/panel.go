package inputselect

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	moreAbove = "↑ more above"
	moreBelow = "↓ more below"
)

// panel is a rendered panel plus the row index drawn on each inner line
// (-1 for indicator and status lines).
type panel struct {
	content string
	lineRow []int
}

// clampOffset returns the first visible row so that the highlighted row is
// inside a window of the given size.
func clampOffset(offset, highlighted, total, visible int) int {
	if visible <= 0 {
		return 0
	}
	if highlighted >= 0 {
		if highlighted < offset {
			offset = highlighted
		} else if highlighted >= offset+visible {
			offset = highlighted - visible + 1
		}
	}
	return clamp(offset, 0, max(0, total-visible))
}

// renderPanel draws rows inside a bordered box of the given outer width,
// showing at most maxVisible rows starting at offset.
func renderPanel(rows []Row, offset, maxVisible, width int) panel {
	if len(rows) == 0 {
		return panel{}
	}
	inner := max(width-2, 4)

	visible := min(maxVisible, len(rows))
	if visible <= 0 {
		visible = len(rows)
	}
	offset = clamp(offset, 0, max(0, len(rows)-visible))

	var lines []string
	var lineRow []int

	if offset > 0 {
		lines = append(lines, MoreIndicator.Render(ansi.Truncate(moreAbove, inner, "")))
		lineRow = append(lineRow, -1)
	}

	for _, r := range rows[offset : offset+visible] {
		lines = append(lines, renderRow(r, inner))
		if r.Kind == RowItem {
			lineRow = append(lineRow, r.Index)
		} else {
			lineRow = append(lineRow, -1)
		}
	}

	if offset+visible < len(rows) {
		lines = append(lines, MoreIndicator.Render(ansi.Truncate(moreBelow, inner, "")))
		lineRow = append(lineRow, -1)
	}

	return panel{
		content: PanelBox.Width(inner).Render(strings.Join(lines, "\n")),
		lineRow: lineRow,
	}
}

func renderRow(r Row, inner int) string {
	if r.Kind != RowItem {
		return RowMuted.Render(ansi.Truncate(r.Label, inner, "…"))
	}

	cursor := "  "
	if r.Highlighted {
		cursor = RowCursor.Render("> ")
	}
	mark := ""
	if r.Selected {
		mark = " ✓"
	}

	labelWidth := max(inner-2-ansi.StringWidth(mark), 1)
	label := ansi.Truncate(r.Label, labelWidth, "…") + mark

	style := RowNormal
	switch {
	case r.Highlighted:
		style = RowHighlighted
	case r.Selected:
		style = RowSelected
	}
	return cursor + style.Render(label)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
