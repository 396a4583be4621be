package core

// Walker moves a player through a finished maze. It only reads walls.
type Walker struct {
	grid  *Grid
	pos   Coord
	moves int
}

// NewWalker places a walker on the grid's start cell.
func NewWalker(grid *Grid) *Walker {
	return &Walker{
		grid: grid,
		pos:  grid.Start(),
	}
}

// Move steps one cell in direction d unless a wall or the edge blocks it.
// Returns true if the walker moved.
func (w *Walker) Move(d Dir) bool {
	if !w.grid.CanMove(w.pos, d) {
		return false
	}
	w.pos = w.pos.Step(d)
	w.moves++
	return true
}

// Pos returns the walker's current cell.
func (w *Walker) Pos() Coord {
	return w.pos
}

// Moves returns the number of successful moves.
func (w *Walker) Moves() int {
	return w.moves
}

// AtExit reports whether the walker stands on the exit cell.
func (w *Walker) AtExit() bool {
	return w.grid.At(w.pos).Exit()
}
