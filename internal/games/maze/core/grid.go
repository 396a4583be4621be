package core

import "fmt"

// Grid is a rectangular maze of cells.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	cells []Cell
}

// NewGrid creates a grid with every wall standing and no cell visited.
// The last cell (W-1, H-1) is marked as the exit.
func NewGrid(w, h int) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	g := &Grid{
		W:     w,
		H:     h,
		cells: make([]Cell, w*h),
	}
	for i := range g.cells {
		g.cells[i] = NewCell()
	}
	exit := g.index(g.Exit())
	g.cells[exit] |= exitFlag
	return g, nil
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// Start returns the coordinate where carving and walking begin.
func (g *Grid) Start() Coord {
	return C(0, 0)
}

// Exit returns the coordinate of the terminal cell.
func (g *Grid) Exit() Coord {
	return C(g.W-1, g.H-1)
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the cell at c. Out-of-bounds coordinates yield a fully walled cell.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return NewCell()
	}
	return g.cells[g.index(c)]
}

// Neighbor returns the cell adjacent to c in direction d and whether it is in bounds.
func (g *Grid) Neighbor(c Coord, d Dir) (Coord, bool) {
	n := c.Step(d)
	return n, g.InBounds(n)
}

// CanMove reports whether a walker at c may step in direction d.
func (g *Grid) CanMove(c Coord, d Dir) bool {
	if _, ok := g.Neighbor(c, d); !ok || !g.InBounds(c) {
		return false
	}
	return !g.At(c).HasWall(d)
}

// carve removes the wall pair between c and its neighbour in direction d.
func (g *Grid) carve(c Coord, d Dir) {
	n := c.Step(d)
	if !g.InBounds(c) || !g.InBounds(n) {
		return
	}
	g.cells[g.index(c)] = g.cells[g.index(c)].withoutWall(d)
	g.cells[g.index(n)] = g.cells[g.index(n)].withoutWall(d.Opposite())
}

func (g *Grid) markVisited(c Coord) {
	if g.InBounds(c) {
		g.cells[g.index(c)] |= visitedFlag
	}
}

// VisitedCount returns the number of visited cells.
func (g *Grid) VisitedCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.Visited() {
			count++
		}
	}
	return count
}

// OpenPassages counts removed wall pairs between adjacent cells.
// Each passage is counted once, from its west or north side.
func (g *Grid) OpenPassages() int {
	count := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if x+1 < g.W && !g.At(c).HasWall(East) {
				count++
			}
			if y+1 < g.H && !g.At(c).HasWall(South) {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
