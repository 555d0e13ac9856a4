package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// StatusLine formats the line shown under the maze during play.
func StatusLine(steps int, elapsed time.Duration) string {
	return fmt.Sprintf("Steps: %d  Time: %s  [arrows/hjkl] move  [q] quit",
		steps, elapsed.Round(time.Second))
}

// drawText writes text starting at column x, advancing by each rune's
// display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
