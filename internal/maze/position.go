package maze

import "fmt"

// Position is a zero-based (row, column) cell coordinate.
type Position struct {
	Row, Column int
}

// Up, Down, Left and Right return the neighboring position. No bounds
// checking is done; callers validate against the Grid.
func (p Position) Up() Position    { return Position{p.Row - 1, p.Column} }
func (p Position) Down() Position  { return Position{p.Row + 1, p.Column} }
func (p Position) Left() Position  { return Position{p.Row, p.Column - 1} }
func (p Position) Right() Position { return Position{p.Row, p.Column + 1} }

// Step returns the neighbor in a single direction. ok is false for None or a
// multi-bit set.
func (p Position) Step(d Direction) (next Position, ok bool) {
	switch d {
	case Up:
		return p.Up(), true
	case Down:
		return p.Down(), true
	case Left:
		return p.Left(), true
	case Right:
		return p.Right(), true
	}
	return p, false
}

// Less orders positions by row, then column.
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Column < o.Column
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Column) }
