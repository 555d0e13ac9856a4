// Package render turns a maze into box-drawing text and paints it onto a
// tcell screen.
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudHeight is the number of bottom rows reserved for the status line.
const hudHeight = 2

// Renderer draws maze frames and message screens onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, max(h-hudHeight, 1)),
	}
}

// Resize refreshes the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, max(h-hudHeight, 1)
}

// DrawFrame clears the screen, paints the maze around the player and the
// status line below it, then shows the result.
func (r *Renderer) DrawFrame(m Layout, status string) {
	r.screen.Clear()

	lines := strings.Split(strings.TrimSuffix(Text(m), "\n"), "\n")
	worldW := 0
	for _, l := range lines {
		worldW = max(worldW, runewidth.StringWidth(l))
	}
	pos := m.Position()
	cy := 2*pos.Row + 1
	cx := runewidth.StringWidth(string([]rune(lines[cy])[:4*pos.Column+1])) + 1
	r.camera.Follow(cx, cy, worldW, len(lines))

	for wy, line := range lines {
		wx := 0
		for _, ch := range line {
			width := runewidth.RuneWidth(ch)
			if sx, sy, ok := r.camera.WorldToScreen(wx, wy); ok {
				r.screen.SetContent(sx, sy, ch, nil, styleFor(ch))
			}
			wx += width
		}
	}

	_, h := r.screen.Size()
	r.drawText(0, h-1, status, statusStyle)
	r.screen.Show()
}

// DrawMessages clears the screen and shows lines centered on it. The first
// line is drawn as a title.
func (r *Renderer) DrawMessages(lines ...string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	top := (h - len(lines)) / 2
	for i, line := range lines {
		x := (w - runewidth.StringWidth(line)) / 2
		style := messageStyle
		if i == 0 {
			style = titleStyle
		}
		r.drawText(max(x, 0), top+i, line, style)
	}
	r.screen.Show()
}
