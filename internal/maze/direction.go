package maze

import "strings"

// Direction is a set of the four grid directions.
//
// In a generated Grid a set bit means the side of the cell is walled and a
// clear bit means it opens into the neighbor. A single-bit Direction is also
// used as a movement request.
type Direction uint8

const (
	Up Direction = 1 << iota
	Down
	Left
	Right

	// None is the empty set: no movement, or a cell open on every side.
	None Direction = 0
	// All is the full set: a fully walled (or not yet visited) cell.
	All = Up | Down | Left | Right
)

// Union returns the set of directions present in d or o.
func (d Direction) Union(o Direction) Direction { return d | o }

// Has reports whether every direction in o is also in d.
// The empty set is contained in every set.
func (d Direction) Has(o Direction) bool { return d&o == o }

// Toggle returns the symmetric difference of d and o.
func (d Direction) Toggle(o Direction) Direction { return d ^ o }

// Opposite returns the reverse of a single direction. Any other value
// yields None.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

// String renders the set as names joined by "|", e.g. "up|left".
func (d Direction) String() string {
	if d == None {
		return "none"
	}
	var parts []string
	for _, n := range []struct {
		dir  Direction
		name string
	}{{Up, "up"}, {Down, "down"}, {Left, "left"}, {Right, "right"}} {
		if d.Has(n.dir) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
