package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-labyrinth/internal/games/maze/core"
)

// scripted returns a fixed sequence of picks, reduced modulo n.
type scripted struct {
	picks []int
	calls []int // n passed to each Intn call
	i     int
}

func (s *scripted) Intn(n int) int {
	s.calls = append(s.calls, n)
	if len(s.picks) == 0 {
		return 0
	}
	v := s.picks[s.i%len(s.picks)]
	s.i++
	return v % n
}

func mustGenerator(t *testing.T, w, h int, src core.Source) *core.Generator {
	t.Helper()
	gen, err := core.NewGenerator(w, h, src)
	if err != nil {
		t.Fatalf("NewGenerator(%d, %d) failed: %v", w, h, err)
	}
	return gen
}

func TestNewGeneratorInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 3},
		{"both zero", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen, err := core.NewGenerator(tc.w, tc.h, nil)
			if !errors.Is(err, core.ErrInvalidDimensions) {
				t.Errorf("NewGenerator(%d, %d) error = %v, expected ErrInvalidDimensions", tc.w, tc.h, err)
			}
			if gen != nil {
				t.Error("expected nil generator on error")
			}
		})
	}
}

func TestNewGeneratorInitialState(t *testing.T) {
	gen := mustGenerator(t, 3, 4, rand.New(rand.NewSource(1)))
	grid := gen.Grid()

	if gen.Phase() != core.PhaseGenerating {
		t.Errorf("Phase() = %v, expected generating", gen.Phase())
	}
	if gen.Current() != core.C(0, 0) {
		t.Errorf("Current() = %v, expected (0,0)", gen.Current())
	}
	history := gen.History()
	if len(history) != 1 || history[0] != core.C(0, 0) {
		t.Errorf("History() = %v, expected [(0,0)]", history)
	}
	if grid.VisitedCount() != 1 || !grid.At(core.C(0, 0)).Visited() {
		t.Errorf("expected only the start cell visited, got %d visited", grid.VisitedCount())
	}

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			c := core.C(x, y)
			cell := grid.At(c)
			if cell.Walls() != core.AllWalls {
				t.Errorf("cell %v walls = %04b, expected all walls", c, cell.Walls())
			}
			if cell.Exit() != (c == core.C(2, 3)) {
				t.Errorf("cell %v Exit() = %v", c, cell.Exit())
			}
		}
	}
}

func TestSingleCellIsDoneOnFirstStep(t *testing.T) {
	gen := mustGenerator(t, 1, 1, &scripted{})

	res, err := gen.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if res.Outcome != core.Done {
		t.Errorf("Step() outcome = %v, expected done", res.Outcome)
	}
	if !gen.Done() {
		t.Error("generator should be done")
	}

	grid := gen.Grid()
	cell := grid.At(core.C(0, 0))
	if cell.Walls() != core.AllWalls {
		t.Errorf("single cell walls = %04b, expected all walls", cell.Walls())
	}
	if grid.Start() != grid.Exit() || !cell.Exit() {
		t.Error("single cell should be both start and exit")
	}
	if gen.Stats().Carves != 0 || gen.Stats().Backtracks != 0 {
		t.Errorf("Stats() = %+v, expected no work", gen.Stats())
	}
}

func TestTwoByOneCarvesOnePair(t *testing.T) {
	src := &scripted{}
	gen := mustGenerator(t, 2, 1, src)

	expected := []core.StepResult{
		{Outcome: core.Carved, Current: core.C(1, 0)},
		{Outcome: core.Backtracked, Current: core.C(0, 0)},
		{Outcome: core.Done, Current: core.C(0, 0)},
	}
	for i, want := range expected {
		got, err := gen.Step()
		if err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		if got != want {
			t.Errorf("step %d = %+v, expected %+v", i, got, want)
		}
	}

	if len(src.calls) != 1 || src.calls[0] != 1 {
		t.Errorf("Intn calls = %v, expected a single call with n=1", src.calls)
	}

	grid := gen.Grid()
	left, right := grid.At(core.C(0, 0)), grid.At(core.C(1, 0))
	if left.HasWall(core.East) || right.HasWall(core.West) {
		t.Error("wall pair between the two cells should be carved")
	}
	for _, d := range []core.Dir{core.North, core.South, core.West} {
		if !left.HasWall(d) {
			t.Errorf("left cell lost its %v wall", d)
		}
	}
	for _, d := range []core.Dir{core.North, core.South, core.East} {
		if !right.HasWall(d) {
			t.Errorf("right cell lost its %v wall", d)
		}
	}
	if grid.OpenPassages() != 1 {
		t.Errorf("OpenPassages() = %d, expected 1", grid.OpenPassages())
	}
}

func TestScriptedTwoByTwo(t *testing.T) {
	gen := mustGenerator(t, 2, 2, &scripted{picks: []int{0}})

	var outcomes []core.Outcome
	for !gen.Done() {
		res, err := gen.Step()
		if err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		outcomes = append(outcomes, res.Outcome)
	}

	expected := []core.Outcome{
		core.Carved, core.Carved, core.Carved,
		core.Backtracked, core.Backtracked, core.Backtracked,
		core.Done,
	}
	if len(outcomes) != len(expected) {
		t.Fatalf("outcomes = %v, expected %v", outcomes, expected)
	}
	for i := range expected {
		if outcomes[i] != expected[i] {
			t.Errorf("outcome %d = %v, expected %v", i, outcomes[i], expected[i])
		}
	}

	// Picks of 0 walk East, South, then West, leaving (0,0)-(0,1) walled.
	grid := gen.Grid()
	if grid.At(core.C(0, 0)).HasWall(core.East) {
		t.Error("expected (0,0)->(1,0) carved")
	}
	if grid.At(core.C(1, 0)).HasWall(core.South) {
		t.Error("expected (1,0)->(1,1) carved")
	}
	if grid.At(core.C(1, 1)).HasWall(core.West) {
		t.Error("expected (1,1)->(0,1) carved")
	}
	if !grid.At(core.C(0, 0)).HasWall(core.South) || !grid.At(core.C(0, 1)).HasWall(core.North) {
		t.Error("expected (0,0)-(0,1) to stay walled")
	}
}

func TestFiveByFiveHasTwentyFourPassages(t *testing.T) {
	gen := mustGenerator(t, 5, 5, rand.New(rand.NewSource(7)))

	grid, err := gen.Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if grid.OpenPassages() != 24 {
		t.Errorf("OpenPassages() = %d, expected 24", grid.OpenPassages())
	}
}

func TestCompletedMazesArePerfect(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {1, 7}, {7, 1}, {2, 2}, {3, 5}, {10, 6}, {25, 25},
	}

	for _, size := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			gen := mustGenerator(t, size.w, size.h, rand.New(rand.NewSource(seed)))
			grid, err := gen.Run()
			if err != nil {
				t.Fatalf("%dx%d seed %d: Run() failed: %v", size.w, size.h, seed, err)
			}

			if err := core.Validate(grid); err != nil {
				t.Errorf("%dx%d seed %d: %v", size.w, size.h, seed, err)
			}
			if grid.VisitedCount() != size.w*size.h {
				t.Errorf("%dx%d seed %d: VisitedCount() = %d", size.w, size.h, seed, grid.VisitedCount())
			}

			stats := gen.Stats()
			if stats.Carves != size.w*size.h-1 {
				t.Errorf("%dx%d seed %d: Carves = %d, expected %d", size.w, size.h, seed, stats.Carves, size.w*size.h-1)
			}
			if stats.Backtracks > size.w*size.h {
				t.Errorf("%dx%d seed %d: Backtracks = %d exceeds cell count", size.w, size.h, seed, stats.Backtracks)
			}
		}
	}
}

func TestStepAfterDoneDoesNotMutate(t *testing.T) {
	gen := mustGenerator(t, 6, 4, rand.New(rand.NewSource(3)))
	if _, err := gen.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	before := gen.Grid().Clone()
	current := gen.Current()
	stats := gen.Stats()

	for i := 0; i < 3; i++ {
		res, err := gen.Step()
		if !errors.Is(err, core.ErrGenerationDone) {
			t.Errorf("Step() after done error = %v, expected ErrGenerationDone", err)
		}
		if res.Outcome != core.Done {
			t.Errorf("Step() after done outcome = %v, expected done", res.Outcome)
		}
	}

	if !gen.Grid().Equal(before) {
		t.Error("grid changed after stepping a finished generator")
	}
	if gen.Current() != current {
		t.Errorf("Current() changed from %v to %v", current, gen.Current())
	}
	if gen.Stats() != stats {
		t.Errorf("Stats() changed from %+v to %+v", stats, gen.Stats())
	}
	if _, err := gen.Run(); err != nil {
		t.Errorf("Run() on a finished generator should be a no-op, got %v", err)
	}
}

func TestDeterminism(t *testing.T) {
	picks := []int{2, 0, 1, 3, 1, 0, 2}

	g1 := mustGenerator(t, 8, 6, &scripted{picks: picks})
	g2 := mustGenerator(t, 8, 6, &scripted{picks: picks})

	grid1, err := g1.Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	grid2, err := g2.Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !grid1.Equal(grid2) {
		t.Error("same scripted picks produced different mazes")
	}
	if g1.Stats() != g2.Stats() {
		t.Errorf("Stats mismatch: %+v vs %+v", g1.Stats(), g2.Stats())
	}

	// Same seed through math/rand must also agree.
	r1 := mustGenerator(t, 12, 9, rand.New(rand.NewSource(99)))
	r2 := mustGenerator(t, 12, 9, rand.New(rand.NewSource(99)))
	m1, _ := r1.Run()
	m2, _ := r2.Run()
	if !m1.Equal(m2) {
		t.Error("same seed produced different mazes")
	}
}

func TestPartialStateStaysConsistent(t *testing.T) {
	gen := mustGenerator(t, 7, 5, rand.New(rand.NewSource(11)))
	grid := gen.Grid()
	limit := 2*grid.W*grid.H + 1

	steps := 0
	for !gen.Done() {
		res, err := gen.Step()
		if err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		steps++
		if steps > limit {
			t.Fatalf("generation exceeded %d steps", limit)
		}

		stats := gen.Stats()
		if grid.OpenPassages() != stats.Carves {
			t.Fatalf("step %d: OpenPassages() = %d, Carves = %d", steps, grid.OpenPassages(), stats.Carves)
		}
		if grid.VisitedCount() != stats.Carves+1 {
			t.Fatalf("step %d: VisitedCount() = %d, expected %d", steps, grid.VisitedCount(), stats.Carves+1)
		}
		if !grid.At(res.Current).Visited() {
			t.Fatalf("step %d: cursor %v on unvisited cell", steps, res.Current)
		}
		for _, c := range gen.History() {
			if !grid.At(c).Visited() {
				t.Fatalf("step %d: history holds unvisited cell %v", steps, c)
			}
		}
		assertMirroredWalls(t, grid)
	}
}

func assertMirroredWalls(t *testing.T, grid *core.Grid) {
	t.Helper()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			c := core.C(x, y)
			if x+1 < grid.W && grid.At(c).HasWall(core.East) != grid.At(core.C(x+1, y)).HasWall(core.West) {
				t.Fatalf("mismatched East/West wall at %v", c)
			}
			if y+1 < grid.H && grid.At(c).HasWall(core.South) != grid.At(core.C(x, y+1)).HasWall(core.North) {
				t.Fatalf("mismatched South/North wall at %v", c)
			}
		}
	}
}
