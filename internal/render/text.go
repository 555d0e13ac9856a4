package render

import (
	"strings"
	"terminal-maze/internal/maze"
)

const (
	// CursorGlyph marks the player's cell.
	CursorGlyph = "*"
	// TargetGlyph marks the exit.
	TargetGlyph = "X"
)

// junctions maps the set of wall arms meeting at a grid point to its
// box-drawing glyph.
var junctions = [16]string{
	maze.None: " ",

	maze.Left:              "─",
	maze.Right:             "─",
	maze.Left | maze.Right: "─",

	maze.Down:                          "│",
	maze.Down | maze.Left:              "┐",
	maze.Down | maze.Right:             "┌",
	maze.Down | maze.Left | maze.Right: "┬",

	maze.Up:                          "│",
	maze.Up | maze.Left:              "┘",
	maze.Up | maze.Right:             "└",
	maze.Up | maze.Left | maze.Right: "┴",

	maze.Up | maze.Down:              "│",
	maze.Up | maze.Down | maze.Left:  "┤",
	maze.Up | maze.Down | maze.Right: "├",
	maze.All:                         "┼",
}

const (
	horizontalWall = "───"
	verticalWall   = "│"
)

// Layout is the read-only view of a maze the renderer draws from.
// *maze.Maze satisfies it.
type Layout interface {
	Rows() int
	Columns() int
	Walls(p maze.Position) maze.Direction
	Position() maze.Position
	Target() maze.Position
}

// Text draws the maze as box-drawing text, one line per row of the doubled
// grid (2·rows+1 lines of 4·columns+1 runes, each ending in "\n").
func Text(l Layout) string {
	return strings.Join(units(l), "")
}

// units returns the glyph units of the doubled grid point by point, with a
// "\n" unit closing every line. Cell interiors and horizontal walls are
// three runes wide; every other unit is one rune.
func units(l Layout) []string {
	rows, columns := l.Rows(), l.Columns()
	out := make([]string, 0, (2*rows+1)*(2*columns+2))
	for x := 0; x <= 2*rows; x++ {
		for y := 0; y <= 2*columns; y++ {
			out = append(out, glyphAt(l, x, y))
		}
		out = append(out, "\n")
	}
	return out
}

// glyphAt returns the text for doubled-grid point (x, y). x walks rows and y
// walks columns; the cell below and to the right of the point is (x/2, y/2).
func glyphAt(l Layout, x, y int) string {
	cell := maze.Position{Row: x / 2, Column: y / 2}
	lastX, lastY := 2*l.Rows(), 2*l.Columns()

	switch {
	case x%2 == 1 && y%2 == 1:
		switch cell {
		case l.Position():
			return " " + CursorGlyph + " "
		case l.Target():
			return " " + TargetGlyph + " "
		}
		return "   "

	case x%2 == 0 && y%2 == 1:
		if l.Walls(cell).Has(maze.Up) {
			return horizontalWall
		}
		return "   "

	case x%2 == 1 && y%2 == 0:
		if l.Walls(cell).Has(maze.Left) {
			return verticalWall
		}
		return " "
	}

	var arms maze.Direction
	switch {
	case x == 0 && y == 0:
		arms = maze.Down | maze.Right
	case x == 0 && y == lastY:
		arms = maze.Down | maze.Left
	case x == lastX && y == 0:
		arms = maze.Up | maze.Right
	case x == lastX && y == lastY:
		arms = maze.Up | maze.Left

	case x == 0:
		arms = maze.Left | maze.Right
		if l.Walls(cell).Has(maze.Left) {
			arms |= maze.Down
		}
	case y == 0:
		arms = maze.Up | maze.Down
		if l.Walls(cell).Has(maze.Up) {
			arms |= maze.Right
		}
	case x == lastX:
		arms = maze.Left | maze.Right
		if l.Walls(cell.Up()).Has(maze.Left) {
			arms |= maze.Up
		}
	case y == lastY:
		arms = maze.Up | maze.Down
		if l.Walls(cell.Left()).Has(maze.Up) {
			arms |= maze.Left
		}

	default:
		if l.Walls(cell).Has(maze.Up) {
			arms |= maze.Right
		}
		if l.Walls(cell.Left()).Has(maze.Up) {
			arms |= maze.Left
		}
		if l.Walls(cell).Has(maze.Left) {
			arms |= maze.Down
		}
		if l.Walls(cell.Up()).Has(maze.Left) {
			arms |= maze.Up
		}
	}
	return junctions[arms]
}
