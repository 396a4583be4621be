package maze

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-labyrinth/internal/config"
	"github.com/vovakirdan/tui-labyrinth/internal/core"
	mazecore "github.com/vovakirdan/tui-labyrinth/internal/games/maze/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, rc core.RuntimeConfig, mutate func(*config.MazeConfig)) *Game {
	t.Helper()
	cfg := config.DefaultMazeConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := New()
	g.resetWith(rc, cfg)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// solve returns the moves leading from start to exit.
func solve(t *testing.T, grid *mazecore.Grid) []mazecore.Dir {
	t.Helper()
	type step struct {
		from mazecore.Coord
		dir  mazecore.Dir
	}
	prev := map[mazecore.Coord]step{grid.Start(): {}}
	queue := []mazecore.Coord{grid.Start()}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range mazecore.Dirs {
			n := c.Step(d)
			if _, seen := prev[n]; seen || !grid.CanMove(c, d) {
				continue
			}
			prev[n] = step{from: c, dir: d}
			queue = append(queue, n)
		}
	}

	var path []mazecore.Dir
	for c := grid.Exit(); c != grid.Start(); c = prev[c].from {
		s, ok := prev[c]
		if !ok {
			t.Fatalf("exit %v unreachable", grid.Exit())
		}
		path = append([]mazecore.Dir{s.dir}, path...)
	}
	return path
}

func dirAction(d mazecore.Dir) core.Action {
	switch d {
	case mazecore.North:
		return core.ActionUp
	case mazecore.East:
		return core.ActionRight
	case mazecore.South:
		return core.ActionDown
	default:
		return core.ActionLeft
	}
}

func TestResetFitsScreen(t *testing.T) {
	g := newTestGame(t, testRuntime(1), nil)

	grid := g.Grid()
	if grid == nil {
		t.Fatal("80x24 should fit a maze")
	}
	if grid.W < 20 || grid.W > 25 {
		t.Errorf("width = %d, expected within [20, 25]", grid.W)
	}
	// (24 - 2 HUD rows - 1) / 2 rows per cell
	if grid.H != 10 {
		t.Errorf("height = %d, expected clamped to 10", grid.H)
	}
	if g.Phase() != PhaseCarving {
		t.Errorf("phase = %v, expected carving", g.Phase())
	}
}

func TestResetWithoutFitting(t *testing.T) {
	g := newTestGame(t, testRuntime(1), func(c *config.MazeConfig) {
		c.Display.FitToScreen = false
	})
	if !g.Snapshot().TooSmall {
		t.Error("a 20x20 maze cannot fit 80x24 unshrunk")
	}

	g = newTestGame(t, core.RuntimeConfig{ScreenW: 200, ScreenH: 60, Seed: 1}, func(c *config.MazeConfig) {
		c.Display.FitToScreen = false
	})
	if g.Grid() == nil || g.Grid().H < 20 {
		t.Errorf("large screen should hold the full maze, got %+v", g.Snapshot())
	}
}

func TestCarvingOneStepPerTick(t *testing.T) {
	g := newTestGame(t, testRuntime(3), nil)

	for i := 1; i <= 5; i++ {
		g.Step(core.NewInputFrame())
		if got := g.gen.Stats().Steps; got != i {
			t.Fatalf("after %d ticks generator ran %d steps", i, got)
		}
	}

	g = newTestGame(t, testRuntime(3), func(c *config.MazeConfig) {
		c.Carving.StepsPerTick = 4
	})
	g.Step(core.NewInputFrame())
	if got := g.gen.Stats().Steps; got != 4 {
		t.Errorf("steps_per_tick 4 ran %d steps", got)
	}
}

func TestCarvingCompletesIntoPlaying(t *testing.T) {
	g := newTestGame(t, testRuntime(4), func(c *config.MazeConfig) {
		c.Size = config.MazeSize{Min: 3, Max: 3}
	})

	// 9 cells need 8 carves, 8 backtracks and the final Done.
	for i := 0; i < 17; i++ {
		if g.Phase() != PhaseCarving {
			t.Fatalf("left carving early after %d ticks", i)
		}
		g.Step(core.NewInputFrame())
	}
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v after carving, expected playing", g.Phase())
	}
	if err := mazecore.Validate(g.Grid()); err != nil {
		t.Errorf("carved maze invalid: %v", err)
	}
}

func TestConfirmSkipsCarving(t *testing.T) {
	g := newTestGame(t, testRuntime(5), nil)

	g.Step(frame(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", g.Phase())
	}
	if err := mazecore.Validate(g.Grid()); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if s := g.Snapshot(); s.CursorX != 0 || s.CursorY != 0 {
		t.Errorf("player should start at (0,0), got (%d,%d)", s.CursorX, s.CursorY)
	}
}

func TestWalkToExit(t *testing.T) {
	g := newTestGame(t, testRuntime(6), func(c *config.MazeConfig) {
		c.Carving.Instant = true
	})
	if g.Phase() != PhasePlaying {
		t.Fatalf("instant maze should start in playing, got %v", g.Phase())
	}

	// Bumping into the outer wall is not a move.
	g.Step(frame(core.ActionUp))
	if g.State().Moves != 0 {
		t.Fatalf("moves = %d after walking into the boundary", g.State().Moves)
	}

	path := solve(t, g.Grid())
	for i, d := range path {
		if g.State().GameOver {
			t.Fatalf("game ended after %d of %d moves", i, len(path))
		}
		g.Step(frame(dirAction(d)))
	}

	state := g.State()
	if !state.GameOver || !state.Won {
		t.Fatalf("state = %+v, expected won", state)
	}
	ticks := len(path) + 1
	expected := Score(g.Grid().W, g.Grid().H, len(path), ticks/60)
	if state.Score != expected || state.Moves != len(path) {
		t.Errorf("score/moves = %d/%d, expected %d/%d", state.Score, state.Moves, expected, len(path))
	}
	if state.ActiveTicks != ticks {
		t.Errorf("ActiveTicks = %d, expected %d play ticks", state.ActiveTicks, ticks)
	}

	// Input after winning changes nothing.
	g.Step(frame(core.ActionLeft))
	if g.State() != state {
		t.Errorf("state changed after win: %+v", g.State())
	}

	g.Step(frame(core.ActionRestart))
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("restart should begin a new maze, got %+v", g.State())
	}
}

func TestSkipCarvingPerInstance(t *testing.T) {
	g := New()
	g.SkipCarving(true)
	g.resetWith(testRuntime(4), config.DefaultMazeConfig())
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", g.Phase())
	}
	if g.State().ActiveTicks != 0 {
		t.Errorf("ActiveTicks = %d before any play", g.State().ActiveTicks)
	}

	other := newTestGame(t, testRuntime(4), nil)
	if other.Phase() != PhaseCarving {
		t.Errorf("other instances should still carve, got %v", other.Phase())
	}
}

func TestCarvingTicksAreNotCharged(t *testing.T) {
	g := newTestGame(t, testRuntime(2), nil)
	for range 10 {
		g.Step(frame())
	}
	if g.Phase() != PhaseCarving {
		t.Fatalf("phase = %v, expected carving", g.Phase())
	}
	if g.State().ActiveTicks != 0 {
		t.Errorf("ActiveTicks = %d while carving", g.State().ActiveTicks)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		w, h, moves, secs, expected int
	}{
		{20, 10, 0, 0, 2000},
		{20, 10, 100, 30, 1770},
		{2, 2, 500, 0, 1},
		{1, 1, 0, 0, 10},
	}
	for _, tt := range tests {
		if got := Score(tt.w, tt.h, tt.moves, tt.secs); got != tt.expected {
			t.Errorf("Score(%d, %d, %d, %d) = %d, expected %d", tt.w, tt.h, tt.moves, tt.secs, got, tt.expected)
		}
	}
}

func TestSingleCellMazeIsWonImmediately(t *testing.T) {
	g := newTestGame(t, testRuntime(7), func(c *config.MazeConfig) {
		c.Size = config.MazeSize{Min: 1, Max: 1}
	})

	g.Step(core.NewInputFrame())
	state := g.State()
	if !state.Won || state.Score != 10 {
		t.Errorf("1x1 maze state = %+v, expected won with score 10", state)
	}
}

func TestPauseFreezesCarving(t *testing.T) {
	g := newTestGame(t, testRuntime(8), nil)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()
	if after.Visited != before.Visited {
		t.Errorf("carving advanced while paused: %d -> %d", before.Visited, after.Visited)
	}

	g.Step(frame(core.ActionPause))
	g.Step(core.NewInputFrame())
	if g.Snapshot().Visited == before.Visited {
		t.Error("carving should resume after unpausing")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := newTestGame(t, core.RuntimeConfig{ScreenW: 4, ScreenH: 4, Seed: 1}, nil)

	if !g.Snapshot().TooSmall {
		t.Fatal("4x4 screen should be too small")
	}
	g.Step(frame(core.ActionConfirm))
	if g.State().GameOver {
		t.Error("too small game should not progress")
	}

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("missing overlay:\n%s", screen.String())
	}
}

func TestRenderColors(t *testing.T) {
	g := newTestGame(t, testRuntime(9), func(c *config.MazeConfig) {
		c.Size = config.MazeSize{Min: 2, Max: 2}
		c.Carving.Instant = true
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// A 2x2 maze is 5x5 characters, centered below the HUD.
	ox, oy := (80-5)/2, 2+(22-5)/2
	checks := []struct {
		name  string
		x, y  int
		r     rune
		color core.Color
	}{
		{"corner post", ox, oy, wallRune, wallColor},
		{"player", ox + 1, oy + 1, playerRune, playerColor},
		{"exit", ox + 3, oy + 3, exitRune, exitColor},
		{"far corner", ox + 4, oy + 4, wallRune, wallColor},
	}
	for _, c := range checks {
		cell := screen.GetCell(c.x, c.y)
		if cell.Rune != c.r || cell.Color != c.color {
			t.Errorf("%s at (%d,%d) = %q/%v, expected %q/%v", c.name, c.x, c.y, cell.Rune, cell.Color, c.r, c.color)
		}
	}
	if !strings.Contains(screen.Row(0), "Maze 2x2") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
}

func TestRenderShowsUnvisitedWhileCarving(t *testing.T) {
	g := newTestGame(t, testRuntime(10), nil)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), unvisitedRune) {
		t.Error("carving view should show unvisited cells")
	}
	if !strings.Contains(screen.Row(0), "Carving") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, testRuntime(12345), nil)
		for i := 0; i < 150; i++ {
			in := core.NewInputFrame()
			if i == 100 {
				in.Set(core.ActionConfirm)
			}
			if i > 100 {
				in.Set([]core.Action{core.ActionRight, core.ActionDown}[i%2])
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("runs diverged:\n%+v\n%+v", a, b)
	}
}
