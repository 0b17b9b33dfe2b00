package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s from (x, y) and returns the column after the last cell written
// Wide runes advance by their display width; text past maxX is dropped
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

// drawCentered writes s centered on row y within [0, width), truncating with an ellipsis when too long
func drawCentered(screen tcell.Screen, width, y int, s string, style tcell.Style) {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	x := (width - runewidth.StringWidth(s)) / 2
	drawText(screen, x, y, width, s, style)
}

// drawRight writes s flush against the right edge of row y
func drawRight(screen tcell.Screen, width, y int, s string, style tcell.Style) int {
	x := width - runewidth.StringWidth(s)
	if x < 0 {
		x = 0
	}
	drawText(screen, x, y, width, s, style)
	return x
}
