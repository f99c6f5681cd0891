package inputselect

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// PlaceOverlay draws fg on top of bg with its top-left corner at cell (x, y).
// The result grows to fit fg; parts of fg left of or above the origin are
// clipped.
func PlaceOverlay(x, y int, fg, bg string) string {
	if fg == "" {
		return bg
	}
	fgW, fgH := lipgloss.Width(fg), lipgloss.Height(fg)
	bgW, bgH := lipgloss.Width(bg), lipgloss.Height(bg)
	if bg == "" {
		bgH = 0
	}

	width := max(bgW, x+fgW)
	height := max(bgH, y+fgH)
	if width <= 0 || height <= 0 {
		return bg
	}

	buf := cellbuf.NewBuffer(width, height)
	if bg != "" {
		cellbuf.SetContent(buf, bg)
	}
	cellbuf.SetContentRect(buf, fg, cellbuf.Rect(x, y, fgW, fgH))

	return strings.ReplaceAll(cellbuf.Render(buf), "\r\n", "\n")
}
