package maze

// Grid holds the wall set of every cell of a rows×columns maze, row-major.
// It is read-only outside this package.
type Grid struct {
	rows, columns int
	cells         []Direction
}

// newGrid creates a Grid with every cell fully walled.
func newGrid(rows, columns int) *Grid {
	cells := make([]Direction, rows*columns)
	for i := range cells {
		cells[i] = All
	}
	return &Grid{rows: rows, columns: columns, cells: cells}
}

// Rows and Columns return the grid dimensions.
func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Columns() int { return g.columns }

// InBounds reports whether p is a cell of the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Column >= 0 && p.Column < g.columns
}

// At returns the wall set at p. ok is false when p is outside the grid.
func (g *Grid) At(p Position) (walls Direction, ok bool) {
	if !g.InBounds(p) {
		return None, false
	}
	return g.cells[p.Row*g.columns+p.Column], true
}

// Lookup returns the wall set at p, treating positions outside the grid as
// fully walled so borders are always solid and impassable.
func (g *Grid) Lookup(p Position) Direction {
	if walls, ok := g.At(p); ok {
		return walls
	}
	return All
}

// set replaces the wall set at p. Panics if p is out of bounds.
func (g *Grid) set(p Position, walls Direction) {
	if !g.InBounds(p) {
		panic("maze: set out of bounds " + p.String())
	}
	g.cells[p.Row*g.columns+p.Column] = walls
}

// carve opens the passage from p toward its neighbor in direction d on both
// sides. It reports false, changing nothing, if the neighbor is outside the
// grid or d is not a single direction.
func (g *Grid) carve(p Position, d Direction) bool {
	next, ok := p.Step(d)
	if !ok || !g.InBounds(p) || !g.InBounds(next) {
		return false
	}
	g.set(p, g.Lookup(p).Toggle(d))
	g.set(next, g.Lookup(next).Toggle(d.Opposite()))
	return true
}
