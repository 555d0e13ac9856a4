// Package maze generates perfect mazes and tracks a player walking through
// them.
package maze

import "math/rand"

// Maze is one game's maze: its walls, the player and the exit.
// Only the player position changes after construction.
type Maze struct {
	grid     *Grid
	target   Position
	position Position
}

// New generates a rows×columns maze with the player at (0,0) and the exit at
// the opposite corner.
func New(rows, columns int, rng *rand.Rand) (*Maze, error) {
	g, err := Generate(rows, columns, rng)
	if err != nil {
		return nil, err
	}
	return &Maze{grid: g, target: Position{rows - 1, columns - 1}}, nil
}

// Rows and Columns return the maze dimensions.
func (m *Maze) Rows() int    { return m.grid.rows }
func (m *Maze) Columns() int { return m.grid.columns }

// Position returns the player's current cell.
func (m *Maze) Position() Position { return m.position }

// Target returns the exit cell.
func (m *Maze) Target() Position { return m.target }

// Walls returns the wall set of cell p; cells outside the maze are fully
// walled.
func (m *Maze) Walls(p Position) Direction { return m.grid.Lookup(p) }

// Move steps the player one cell in direction d when the current cell has no
// wall on that side. None, multi-bit sets and walled sides are no-ops.
// It reports whether the player moved.
func (m *Maze) Move(d Direction) bool {
	if m.grid.Lookup(m.position).Has(d) {
		return false
	}
	next, ok := m.position.Step(d)
	if !ok {
		return false
	}
	m.position = next
	return true
}

// Escaped reports whether the player has reached the exit.
func (m *Maze) Escaped() bool { return m.position == m.target }
