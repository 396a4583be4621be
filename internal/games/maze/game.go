// Package maze implements the maze game: a perfect maze is carved on screen
// one generator step at a time, then the player walks it from the top-left
// cell to the exit in the bottom-right corner.
package maze

import (
	"math/rand"

	"github.com/vovakirdan/tui-labyrinth/internal/config"
	"github.com/vovakirdan/tui-labyrinth/internal/core"
	mazecore "github.com/vovakirdan/tui-labyrinth/internal/games/maze/core"
	"github.com/vovakirdan/tui-labyrinth/internal/registry"
)

// Phase is the game's lifecycle state.
type Phase int

const (
	PhaseCarving Phase = iota
	PhasePlaying
	PhaseWon
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseCarving:
		return "carving"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

const (
	hudHeight = 2 // Title line plus separator
	minFit    = 2 // Smallest maze side shown when shrinking to the terminal
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the maze game.
type Game struct {
	cfg      config.MazeConfig
	rng      *rand.Rand
	tick     uint64
	tickRate int

	gen    *mazecore.Generator
	walker *mazecore.Walker
	phase  Phase

	skipCarving bool // Start fully carved, set per player

	playTicks int // Ticks spent in PhasePlaying
	score     int
	paused    bool
	tooSmall  bool

	// Layout
	screenW, screenH int
	needW, needH     int // Screen size required for the smallest maze
	offsetX, offsetY int
}

// New creates a new maze game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "maze"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Runner"
}

// SkipCarving makes this game start every maze fully carved.
func (g *Game) SkipCarving(on bool) {
	g.skipCarving = on
}

// Reset draws new dimensions and starts carving a fresh maze.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		cfg = config.DefaultMazeConfig()
	}
	g.resetWith(rc, cfg)
}

// resetWith is Reset with an explicit config.
func (g *Game) resetWith(rc core.RuntimeConfig, cfg config.MazeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.playTicks = 0
	g.score = 0
	g.paused = false
	g.walker = nil
	g.gen = nil
	g.phase = PhaseCarving

	w := cfg.Size.Min + g.rng.Intn(cfg.Size.Max-cfg.Size.Min+1)
	h := cfg.Size.Min + g.rng.Intn(cfg.Size.Max-cfg.Size.Min+1)
	w, h, g.tooSmall = g.fit(w, h)
	if g.tooSmall {
		return
	}

	gen, err := mazecore.NewGenerator(w, h, g.rng)
	if err != nil {
		g.tooSmall = true
		return
	}
	g.gen = gen

	mazeW, mazeH := g.footprint(w, h)
	g.offsetX = (g.screenW - mazeW) / 2
	g.offsetY = hudHeight + (g.screenH-hudHeight-mazeH)/2

	if g.skipCarving || cfg.Carving.Instant {
		g.finishCarving()
	}
}

// footprint returns the screen size of a w x h maze.
func (g *Game) footprint(w, h int) (int, int) {
	return w*(g.cfg.Display.CellWidth+1) + 1, h*2 + 1
}

// fit clamps the maze dimensions to the screen. It reports tooSmall when not
// even the smallest acceptable maze fits.
func (g *Game) fit(w, h int) (int, int, bool) {
	avail := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight)

	if !g.cfg.Display.FitToScreen {
		mazeW, mazeH := g.footprint(w, h)
		g.needW, g.needH = mazeW, mazeH+hudHeight
		return w, h, !avail.Fits(mazeW, mazeH)
	}

	smallest := min(minFit, g.cfg.Size.Min)
	mazeW, mazeH := g.footprint(smallest, smallest)
	g.needW, g.needH = mazeW, mazeH+hudHeight
	if !avail.Fits(mazeW, mazeH) {
		return w, h, true
	}

	maxW := (avail.W - 1) / (g.cfg.Display.CellWidth + 1)
	maxH := (avail.H - 1) / 2
	return min(w, maxW), min(h, maxH), false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.phase == PhaseWon {
		g.resetWith(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		}, g.cfg)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.phase != PhaseWon {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.phase == PhaseWon {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseCarving:
		g.stepCarving(input)
	case PhasePlaying:
		g.stepPlaying(input)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepCarving(input core.InputFrame) {
	if input.Has(core.ActionConfirm) {
		g.finishCarving()
		return
	}
	for i := 0; i < g.cfg.Carving.StepsPerTick && !g.gen.Done(); i++ {
		if _, err := g.gen.Step(); err != nil {
			break
		}
	}
	if g.gen.Done() {
		g.startPlaying()
	}
}

func (g *Game) finishCarving() {
	if _, err := g.gen.Run(); err != nil {
		return
	}
	g.startPlaying()
}

func (g *Game) startPlaying() {
	g.phase = PhasePlaying
	g.walker = mazecore.NewWalker(g.gen.Grid())
	g.checkExit()
}

func (g *Game) stepPlaying(input core.InputFrame) {
	g.playTicks++

	if d, ok := actionDir(input.Direction()); ok {
		g.walker.Move(d)
	}
	g.checkExit()
}

func (g *Game) checkExit() {
	if !g.walker.AtExit() {
		return
	}
	g.phase = PhaseWon
	g.score = Score(g.gen.Grid().W, g.gen.Grid().H, g.walker.Moves(), g.playTicks/g.tickRate)
}

// Score rates a finished run: bigger mazes are worth more, every move and
// every elapsed second costs a little. The result is never below 1.
func Score(w, h, moves, elapsedSeconds int) int {
	return max(1, w*h*10-2*moves-elapsedSeconds)
}

// actionDir translates a directional action to a maze direction.
func actionDir(a core.Action) (mazecore.Dir, bool) {
	switch a {
	case core.ActionUp:
		return mazecore.North, true
	case core.ActionRight:
		return mazecore.East, true
	case core.ActionDown:
		return mazecore.South, true
	case core.ActionLeft:
		return mazecore.West, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	moves := 0
	if g.walker != nil {
		moves = g.walker.Moves()
	}
	return core.GameState{
		Score:    g.score,
		Moves:    moves,
		GameOver: g.phase == PhaseWon,
		Won:      g.phase == PhaseWon,
		Paused:   g.paused,

		ActiveTicks: g.playTicks,
	}
}

// Phase returns the lifecycle state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Grid returns the maze being carved or played, or nil when the window is too small.
func (g *Game) Grid() *mazecore.Grid {
	if g.gen == nil {
		return nil
	}
	return g.gen.Grid()
}
