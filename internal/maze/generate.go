package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/stack"
)

// ErrInvalidDimension is returned when a maze is requested with a
// non-positive number of rows or columns.
var ErrInvalidDimension = errors.New("invalid maze dimension")

// neighborOrder is the fixed order candidate directions are collected in
// before one is picked at random.
var neighborOrder = [...]Direction{Up, Down, Left, Right}

// Generate carves a perfect maze over a rows×columns grid using a randomized
// iterative depth-first search (recursive backtracker).
//
// A cell still equal to All has not been visited yet. Carving toggles the
// shared wall off in both cells, which also marks the neighbor visited.
func Generate(rows, columns int, rng *rand.Rand) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, columns)
	}
	g := newGrid(rows, columns)

	cells := stack.New[Position]()
	cells.Push(Position{rng.Intn(rows), rng.Intn(columns)})

	var available [len(neighborOrder)]Direction
	for visited := 1; visited < rows*columns; {
		cell := cells.Peek()

		n := 0
		for _, d := range neighborOrder {
			next, _ := cell.Step(d)
			if walls, ok := g.At(next); ok && walls == All {
				available[n] = d
				n++
			}
		}

		if n == 0 {
			// Dead end: backtrack.
			cells.Pop()
			continue
		}

		d := available[rng.Intn(n)]
		next, _ := cell.Step(d)
		g.carve(cell, d)
		cells.Push(next)
		visited++
	}
	return g, nil
}
