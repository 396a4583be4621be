package core

// Walls is a set of cell sides, one bit per Dir.
type Walls uint8

// AllWalls is the wall set of a freshly built cell.
const AllWalls Walls = 1<<North | 1<<East | 1<<South | 1<<West

// Has reports whether the wall on side d is standing.
func (w Walls) Has(d Dir) bool {
	return w&d.Wall() != 0
}

// Count returns the number of standing walls.
func (w Walls) Count() int {
	n := 0
	for _, d := range Dirs {
		if w.Has(d) {
			n++
		}
	}
	return n
}

const (
	wallMask    Cell = Cell(AllWalls)
	visitedFlag Cell = 1 << 4
	exitFlag    Cell = 1 << 5
)

// Cell packs a grid cell into one byte: bits 0-3 are walls, bit 4 is the
// visited flag, bit 5 marks the exit.
type Cell uint8

// NewCell returns a fully walled, unvisited cell.
func NewCell() Cell {
	return wallMask
}

// Walls returns the set of standing walls.
func (c Cell) Walls() Walls {
	return Walls(c & wallMask)
}

// HasWall reports whether the wall on side d is standing.
func (c Cell) HasWall(d Dir) bool {
	return c.Walls().Has(d)
}

// Visited reports whether the carver has reached this cell.
func (c Cell) Visited() bool {
	return c&visitedFlag != 0
}

// Exit reports whether this is the maze's terminal cell.
func (c Cell) Exit() bool {
	return c&exitFlag != 0
}

func (c Cell) withoutWall(d Dir) Cell {
	return c &^ Cell(d.Wall())
}
