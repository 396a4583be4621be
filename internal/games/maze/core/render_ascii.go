package core

import "strings"

// RenderASCII draws the grid with '+' posts, "---" and '|' walls.
// Unvisited cells are filled with dots, the exit shows 'E', and marks
// place a rune in the middle of a cell (taking precedence over 'E').
//
// A finished 2x1 maze renders as:
//
//	+---+---+
//	|     E |
//	+---+---+
func RenderASCII(grid *Grid, marks map[Coord]rune) string {
	var sb strings.Builder
	sb.Grow((grid.W*4 + 2) * (grid.H*2 + 1))

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			sb.WriteByte('+')
			if grid.At(C(x, y)).HasWall(North) {
				sb.WriteString("---")
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("+\n")

		for x := 0; x < grid.W; x++ {
			c := C(x, y)
			cell := grid.At(c)
			if cell.HasWall(West) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteString(interior(c, cell, marks))
		}
		if grid.At(C(grid.W-1, y)).HasWall(East) {
			sb.WriteString("|\n")
		} else {
			sb.WriteString(" \n")
		}
	}

	for x := 0; x < grid.W; x++ {
		sb.WriteByte('+')
		if grid.At(C(x, grid.H-1)).HasWall(South) {
			sb.WriteString("---")
		} else {
			sb.WriteString("   ")
		}
	}
	sb.WriteString("+\n")
	return sb.String()
}

func interior(c Coord, cell Cell, marks map[Coord]rune) string {
	if r, ok := marks[c]; ok {
		return " " + string(r) + " "
	}
	switch {
	case cell.Exit():
		return " E "
	case !cell.Visited():
		return "..."
	default:
		return "   "
	}
}
