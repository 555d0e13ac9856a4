package maze

// open reports whether a passage leads from p in direction d.
func (g *Grid) open(p Position, d Direction) bool {
	return !g.Lookup(p).Has(d)
}

// edges counts the passages of the grid. Each passage is counted once.
func (g *Grid) edges() int {
	n := 0
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.columns; col++ {
			p := Position{row, col}
			if g.InBounds(p.Right()) && g.open(p, Right) {
				n++
			}
			if g.InBounds(p.Down()) && g.open(p, Down) {
				n++
			}
		}
	}
	return n
}

// fromGrid wraps a hand-carved grid as a maze with the usual start and exit.
func fromGrid(g *Grid) *Maze {
	return &Maze{grid: g, target: Position{g.rows - 1, g.columns - 1}}
}
