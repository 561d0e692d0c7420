package display

import "github.com/mattn/go-runewidth"

// clip shortens s to at most width terminal cells. Cells of four or more
// end in "..."; narrower ones are cut without a tail.
func clip(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width < minTailWidth {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, clippedTail)
}
