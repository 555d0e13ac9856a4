package render

import "github.com/gdamore/tcell/v2"

// Styles used when painting a frame.
var (
	wallStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	cursorStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	targetStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	messageStyle = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	titleStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// styleFor picks the style of one rune of maze text.
func styleFor(r rune) tcell.Style {
	switch string(r) {
	case CursorGlyph:
		return cursorStyle
	case TargetGlyph:
		return targetStyle
	}
	return wallStyle
}
