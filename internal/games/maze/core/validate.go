package core

import "fmt"

// ValidationError contains details about an invariant a grid violates.
type ValidationError struct {
	Reason string
	At     Coord
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("maze: %s at %s", e.Reason, e.At)
}

// Validate checks that grid is a completed perfect maze: every cell visited,
// mirrored walls consistent, boundary intact, and the passages forming a
// spanning tree rooted at the start cell.
func Validate(grid *Grid) error {
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			c := C(x, y)
			cell := grid.At(c)
			if !cell.Visited() {
				return &ValidationError{Reason: "cell not visited", At: c}
			}
			if cell.Exit() != (c == grid.Exit()) {
				return &ValidationError{Reason: "exit flag misplaced", At: c}
			}
			for _, d := range Dirs {
				n := c.Step(d)
				if !grid.InBounds(n) {
					if !cell.HasWall(d) {
						return &ValidationError{Reason: "boundary wall removed on " + d.String(), At: c}
					}
					continue
				}
				if cell.HasWall(d) != grid.At(n).HasWall(d.Opposite()) {
					return &ValidationError{Reason: "mismatched wall on " + d.String(), At: c}
				}
			}
		}
	}

	want := grid.W*grid.H - 1
	if got := grid.OpenPassages(); got != want {
		return &ValidationError{
			Reason: fmt.Sprintf("expected %d passages, found %d", want, got),
			At:     grid.Start(),
		}
	}

	if reached := reachable(grid); reached != grid.W*grid.H {
		return &ValidationError{
			Reason: fmt.Sprintf("only %d of %d cells reachable", reached, grid.W*grid.H),
			At:     grid.Start(),
		}
	}
	return nil
}

// reachable counts cells connected to the start through open passages.
func reachable(grid *Grid) int {
	seen := make([]bool, grid.W*grid.H)
	queue := []Coord{grid.Start()}
	seen[grid.index(grid.Start())] = true
	count := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		count++
		for _, d := range Dirs {
			if !grid.CanMove(c, d) {
				continue
			}
			n := c.Step(d)
			if !seen[grid.index(n)] {
				seen[grid.index(n)] = true
				queue = append(queue, n)
			}
		}
	}
	return count
}
