// Package core implements perfect-maze generation by randomized depth-first
// search with backtracking, plus walking a finished maze.
// This package is UI-agnostic and deterministic for a given random source.
package core

import "fmt"

// Dir is one of the four orthogonal directions.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// Dirs lists all directions in the order neighbours are examined.
var Dirs = [4]Dir{North, East, South, West}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// North decreases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Wall returns the wall bit guarding this side of a cell.
func (d Dir) Wall() Walls {
	return Walls(1) << d
}

// Coord is a cell position. X is the column, Y is the row.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the coordinate one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
