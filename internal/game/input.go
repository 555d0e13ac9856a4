package game

import (
	"terminal-maze/internal/maze"

	"github.com/gdamore/tcell/v2"
)

// Answer is the player's reply to the "play again" prompt.
type Answer uint8

const (
	AnswerNone Answer = iota // unrecognized key, ask again
	AnswerYes
	AnswerNo
)

// keyToDirection maps a tcell key event to a movement direction.
// Unrecognized keys map to maze.None, which the maze treats as a no-op.
func keyToDirection(ev *tcell.EventKey) maze.Direction {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return maze.Up
	case tcell.KeyDown:
		return maze.Down
	case tcell.KeyRight:
		return maze.Right
	case tcell.KeyLeft:
		return maze.Left
	case tcell.KeyRune:
	default:
		return maze.None
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return maze.Up
	case 'j', 'J':
		return maze.Down
	case 'l', 'L':
		return maze.Right
	case 'h', 'H':
		return maze.Left
	}
	return maze.None
}

// isQuit reports whether the key ends the session.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// keyToAnswer maps a key to a reply for the "play again [Y/n]" prompt.
// Enter accepts the default.
func keyToAnswer(ev *tcell.EventKey) Answer {
	switch ev.Key() {
	case tcell.KeyEnter:
		return AnswerYes
	case tcell.KeyRune:
	default:
		return AnswerNone
	}
	switch ev.Rune() {
	case 'y', 'Y':
		return AnswerYes
	case 'n', 'N':
		return AnswerNo
	}
	return AnswerNone
}
