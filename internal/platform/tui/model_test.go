package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-labyrinth/internal/core"
	"github.com/vovakirdan/tui-labyrinth/internal/games/maze"
	mazecore "github.com/vovakirdan/tui-labyrinth/internal/games/maze/core"
	"github.com/vovakirdan/tui-labyrinth/internal/registry"
	"github.com/vovakirdan/tui-labyrinth/internal/storage"
)

// scriptedGame wins after winAt unpaused ticks with a fixed score.
type scriptedGame struct {
	winAt    int
	score    int
	steps    int
	resets   int
	restarts int
	seed     int64
	paused   bool
	last     core.InputFrame
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(rc core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.seed = rc.Seed
	g.paused = false
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.last = core.NewInputFrame()
	for a := range in.Actions {
		g.last.Set(a)
	}
	if in.Has(core.ActionRestart) && g.steps >= g.winAt {
		g.restarts++
		g.steps = 0
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused && g.steps < g.winAt {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	won := g.steps >= g.winAt
	st := core.GameState{Moves: g.steps, GameOver: won, Won: won, Paused: g.paused, ActiveTicks: g.steps}
	if won {
		st.Score = g.score
	}
	return st
}

var _ registry.Game = (*scriptedGame)(nil)

func newTestModel(t *testing.T, g *scriptedGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 10, Seed: 7, Player: "ana"}
	m := NewModel(g, store, cfg)
	m.Init()
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelForwardsActions(t *testing.T) {
	g := &scriptedGame{winAt: 100}
	m := newTestModel(t, g, nil)

	m, _ = pressKey(t, m, runeKey('d'))
	m = tick(t, m)

	if !g.last.Has(core.ActionRight) {
		t.Error("d should reach the game as ActionRight")
	}

	m = tick(t, m)
	if g.last.Has(core.ActionRight) {
		t.Error("input frame should be cleared after each tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &scriptedGame{winAt: 100}, nil)

	m, cmd := pressKey(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelSavesWinOnce(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{winAt: 20, score: 321}
	m := newTestModel(t, g, store)

	for range 25 {
		m = tick(t, m)
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 321 || got.Player != "ana" || got.Moves != 20 {
		t.Errorf("saved %+v", got)
	}
	// 20 charged ticks at 10 ticks per second
	if got.DurationSecs != 2 {
		t.Errorf("DurationSecs = %d, want 2", got.DurationSecs)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, &scriptedGame{winAt: 2, score: 0}, store)

	for range 5 {
		m = tick(t, m)
	}

	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 0 {
		t.Errorf("zero score should not be saved, got %d rows", len(scores))
	}
}

func TestModelElapsedIgnoresPause(t *testing.T) {
	g := &scriptedGame{winAt: 1000}
	m := newTestModel(t, g, nil)

	for range 10 {
		m = tick(t, m)
	}
	m, _ = pressKey(t, m, runeKey('p'))
	for range 30 {
		m = tick(t, m)
	}

	if got := m.Elapsed(); got != time.Second {
		t.Errorf("Elapsed = %v, want 1s", got)
	}
}

func TestModelRestartAfterWin(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{winAt: 3, score: 50}
	m := newTestModel(t, g, store)

	for range 4 {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("game should be over")
	}

	m, _ = pressKey(t, m, runeKey('r'))
	m = tick(t, m)

	if g.restarts != 1 || g.resets != 1 {
		t.Errorf("restart should go through the game once, restarts=%d resets=%d", g.restarts, g.resets)
	}
	if m.State().GameOver {
		t.Error("restart should clear game over")
	}
	if m.Elapsed() != 0 {
		t.Error("restart should clear elapsed time")
	}

	for range 4 {
		m = tick(t, m)
	}
	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 2 {
		t.Errorf("each win should be saved, got %d rows", len(scores))
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &scriptedGame{winAt: 100}
	m := newTestModel(t, g, nil)
	m = tick(t, m)

	m, _ = pressKey(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("back should be ignored while playing")
	}
	m = tick(t, m)

	m, _ = pressKey(t, m, runeKey('p'))
	m = tick(t, m)
	m, cmd := pressKey(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should be honoured while paused")
	}
	if cmd == nil {
		t.Error("back should end the program")
	}
}

func TestModelResizeResets(t *testing.T) {
	g := &scriptedGame{winAt: 100}
	m := newTestModel(t, g, nil)
	m = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if g.seed != 7 {
		t.Errorf("resize should keep the seed, got %d", g.seed)
	}
}

func TestModelScreenshot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := newTestModel(t, &scriptedGame{winAt: 100}, nil)

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot: %v", err)
	}
	if filepath.Base(filepath.Dir(path)) != "screenshots" {
		t.Errorf("unexpected screenshot path %s", path)
	}
}

func TestModelStoresMazePlayTime(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store := openStore(t)

	// A 5x7 window fits exactly one 2x2 maze below the HUD
	g := maze.New()
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 5, ScreenH: 7, TickRate: 1, Seed: 3, Player: "ana"})
	m.Init()

	carveTicks := 0
	for g.Phase() == maze.PhaseCarving && carveTicks < 20 {
		m = tick(t, m)
		carveTicks++
	}
	if g.Phase() != maze.PhasePlaying {
		t.Fatalf("phase = %v after %d ticks, want playing", g.Phase(), carveTicks)
	}
	if g.Grid().W != 2 || g.Grid().H != 2 {
		t.Fatalf("maze is %dx%d, want 2x2", g.Grid().W, g.Grid().H)
	}

	route := []rune{'s', 'd'}
	if start := g.Grid().Start(); g.Grid().CanMove(start, mazecore.East) && g.Grid().CanMove(mazecore.C(1, 0), mazecore.South) {
		route = []rune{'d', 's'}
	}
	for _, r := range route {
		m, _ = pressKey(t, m, runeKey(r))
		m = tick(t, m)
	}

	st := m.State()
	if !st.Won {
		t.Fatalf("maze should be solved, state %+v", st)
	}
	playSecs := st.ActiveTicks // One tick per second
	if want := maze.Score(2, 2, 2, playSecs); st.Score != want {
		t.Errorf("score = %d, want %d", st.Score, want)
	}

	scores, err := store.TopScores("maze", 1)
	if err != nil || len(scores) != 1 {
		t.Fatalf("TopScores = %v, %v", scores, err)
	}
	if scores[0].DurationSecs != playSecs || playSecs != 2 {
		t.Errorf("stored %ds, score used %ds; carving took %d ticks and must not count",
			scores[0].DurationSecs, playSecs, carveTicks)
	}
}
