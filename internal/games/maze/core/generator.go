package core

import (
	"math/rand"
	"time"
)

// Source picks carving directions. *rand.Rand satisfies it; tests inject
// scripted sources to force particular choices.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Phase is the generator's lifecycle state.
type Phase int

const (
	PhaseGenerating Phase = iota
	PhaseDone
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseGenerating:
		return "generating"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Outcome describes what a single Step did.
type Outcome int

const (
	// Carved means a wall pair was removed and the cursor moved into a new cell.
	Carved Outcome = iota
	// Backtracked means the cursor returned to a cell taken from the history.
	Backtracked
	// Done means every reachable cell has been visited and fully explored.
	Done
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Carved:
		return "carved"
	case Backtracked:
		return "backtracked"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// StepResult is returned by Generator.Step.
type StepResult struct {
	Outcome Outcome
	Current Coord // Cursor position after the step
}

// Stats counts the work performed so far.
type Stats struct {
	Steps      int
	Carves     int
	Backtracks int
}

// Generator carves a perfect maze by randomized depth-first search.
// It owns the grid until Done; callers may inspect it between steps.
type Generator struct {
	grid    *Grid
	rng     Source
	current Coord
	history []Coord
	phase   Phase
	stats   Stats
	open    [4]Coord // Scratch space for neighbour selection
}

// NewGenerator builds a fully walled width x height grid and prepares to carve
// from (0,0). A nil src uses a time-seeded math/rand source.
func NewGenerator(width, height int, src Source) (*Generator, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	start := grid.Start()
	grid.markVisited(start)

	history := make([]Coord, 1, width*height)
	history[0] = start

	return &Generator{
		grid:    grid,
		rng:     src,
		current: start,
		history: history,
		phase:   PhaseGenerating,
	}, nil
}

// Step performs one unit of carving work. Neighbours of the current cell are
// re-evaluated on every call.
func (g *Generator) Step() (StepResult, error) {
	if g.phase == PhaseDone {
		return StepResult{Outcome: Done, Current: g.current}, ErrGenerationDone
	}
	g.stats.Steps++

	open := g.openNeighbors()
	if len(open) > 0 {
		next := open[g.rng.Intn(len(open))]
		g.grid.carve(g.current, dirTo(g.current, next))
		g.grid.markVisited(next)
		g.history = append(g.history, g.current)
		g.current = next
		g.stats.Carves++
		return StepResult{Outcome: Carved, Current: next}, nil
	}

	// The start coordinate seeds the history, so popping it while standing
	// on start is not a move.
	for len(g.history) > 0 {
		prev := g.history[len(g.history)-1]
		g.history = g.history[:len(g.history)-1]
		if prev == g.current {
			continue
		}
		g.current = prev
		g.stats.Backtracks++
		return StepResult{Outcome: Backtracked, Current: prev}, nil
	}

	g.phase = PhaseDone
	return StepResult{Outcome: Done, Current: g.current}, nil
}

// Run steps until the maze is complete and returns the finished grid.
func (g *Generator) Run() (*Grid, error) {
	for g.phase != PhaseDone {
		if _, err := g.Step(); err != nil {
			return nil, err
		}
	}
	return g.grid, nil
}

// openNeighbors returns in-bounds unvisited neighbours in N, E, S, W order.
func (g *Generator) openNeighbors() []Coord {
	open := g.open[:0]
	for _, d := range Dirs {
		n, ok := g.grid.Neighbor(g.current, d)
		if ok && !g.grid.At(n).Visited() {
			open = append(open, n)
		}
	}
	return open
}

// dirTo returns the direction from a to the adjacent cell b.
func dirTo(a, b Coord) Dir {
	switch {
	case b.Y < a.Y:
		return North
	case b.X > a.X:
		return East
	case b.Y > a.Y:
		return South
	default:
		return West
	}
}

// Grid returns the grid being carved.
func (g *Generator) Grid() *Grid {
	return g.grid
}

// Current returns the cursor position.
func (g *Generator) Current() Coord {
	return g.current
}

// History returns a copy of the backtracking stack, bottom first.
func (g *Generator) History() []Coord {
	h := make([]Coord, len(g.history))
	copy(h, g.history)
	return h
}

// Phase returns the lifecycle state.
func (g *Generator) Phase() Phase {
	return g.phase
}

// Done reports whether carving has finished.
func (g *Generator) Done() bool {
	return g.phase == PhaseDone
}

// Stats returns counters for the work done so far.
func (g *Generator) Stats() Stats {
	return g.stats
}
