// Package chase implements the chase game: reach the exit tile of a tile map
// while an enemy patrols a fixed loop.
package chase

import (
	"fmt"

	"github.com/vovakirdan/tui-labyrinth/internal/config"
	"github.com/vovakirdan/tui-labyrinth/internal/core"
	"github.com/vovakirdan/tui-labyrinth/internal/registry"
)

const hudHeight = 2

// configPath stores the custom config path set via CLI
var configPath string

// mapPath overrides the map file from the config when set via CLI
var mapPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetMapPath sets a map file that takes precedence over the config.
func SetMapPath(path string) {
	mapPath = path
}

// Game implements the chase game.
type Game struct {
	cfg      config.ChaseConfig
	tilemap  *TileMap
	rules    Rules
	tick     uint64
	tickRate int
	elapsed  int // Unpaused ticks since the start

	hero         Point
	heroCooldown int
	pending      core.Action // Buffered direction waiting for the cooldown
	moves        int

	enemy      *Patrol
	enemyTicks int

	score    int
	won      bool
	caught   bool
	paused   bool
	tooSmall bool
	loadErr  error

	screenW, screenH int
	offsetX, offsetY int
}

// New creates a new chase game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("chase", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chase"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chase"
}

// Reset loads the map and places both actors on their start tiles.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadChase(configPath)
	if err != nil {
		cfg = config.DefaultChaseConfig()
	}
	if mapPath != "" {
		cfg.Map.Path = mapPath
	}

	m, err := LoadTileMap(cfg.Map.Path)
	if err != nil {
		g.fail(rc, cfg, err)
		return
	}
	g.resetWith(rc, cfg, m)
}

// fail leaves the game stopped with an error overlay.
func (g *Game) fail(rc core.RuntimeConfig, cfg config.ChaseConfig, err error) {
	*g = Game{cfg: cfg, loadErr: err, screenW: rc.ScreenW, screenH: rc.ScreenH}
}

// resetWith is Reset with an explicit config and map.
func (g *Game) resetWith(rc core.RuntimeConfig, cfg config.ChaseConfig, m *TileMap) {
	*g = Game{
		cfg:      cfg,
		tilemap:  m,
		rules:    NewRules(cfg.Map.FreeTiles, cfg.Map.ExitTile),
		tickRate: rc.TickRate,
		screenW:  rc.ScreenW,
		screenH:  rc.ScreenH,
		pending:  core.ActionNone,
	}
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.hero = Point{X: cfg.Hero.Start.X, Y: cfg.Hero.Start.Y}
	enemyStart := Point{X: cfg.Enemy.Start.X, Y: cfg.Enemy.Start.Y}
	waypoints := make([]Point, len(cfg.Enemy.Patrol))
	for i, w := range cfg.Enemy.Patrol {
		waypoints[i] = Point{X: w.X, Y: w.Y}
	}
	g.enemy = NewPatrol(enemyStart, waypoints)

	if err := g.checkPlacement(enemyStart); err != nil {
		g.fail(rc, cfg, err)
		return
	}

	mapW, mapH := m.W*2, m.H
	g.tooSmall = g.screenW < mapW || g.screenH < mapH+hudHeight
	g.offsetX = (g.screenW - mapW) / 2
	g.offsetY = hudHeight + (g.screenH-hudHeight-mapH)/2
}

// checkPlacement verifies that the actors start on usable tiles.
func (g *Game) checkPlacement(enemyStart Point) error {
	if t, ok := g.tilemap.At(g.hero); !ok || !g.rules.Walkable(t) || g.rules.Exit(t) {
		return fmt.Errorf("chase: hero start %v is not a free tile", g.hero)
	}
	if t, ok := g.tilemap.At(enemyStart); !ok || !g.rules.Patrollable(t) {
		return fmt.Errorf("chase: enemy start %v is not a free tile", enemyStart)
	}
	for _, w := range g.cfg.Enemy.Patrol {
		if !g.tilemap.InBounds(Point{X: w.X, Y: w.Y}) {
			return fmt.Errorf("chase: waypoint (%d,%d) is off the map", w.X, w.Y)
		}
	}
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.won || g.caught) {
		g.resetWith(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		}, g.cfg, g.tilemap)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}

	if g.over() || g.paused || g.tooSmall || g.loadErr != nil {
		return core.StepResult{State: g.State()}
	}

	g.elapsed++
	if d := input.Direction(); d != core.ActionNone {
		g.pending = d
	}
	g.stepHero()
	if g.over() {
		return core.StepResult{State: g.State()}
	}
	g.stepEnemy()

	return core.StepResult{State: g.State()}
}

func (g *Game) stepHero() {
	if g.heroCooldown > 0 {
		g.heroCooldown--
	}
	if g.pending == core.ActionNone || g.heroCooldown > 0 {
		return
	}

	dx, dy := actionDelta(g.pending)
	g.pending = core.ActionNone
	next := g.hero.Step(dx, dy)
	tile, ok := g.tilemap.At(next)
	if !ok || !g.rules.Walkable(tile) {
		return
	}

	g.hero = next
	g.moves++
	g.heroCooldown = g.cfg.Hero.MoveEvery

	switch {
	case g.rules.Exit(tile):
		g.won = true
		g.score = Score(g.elapsed / g.tickRate)
	case g.hero == g.enemy.Pos():
		g.caught = true
	}
}

func (g *Game) stepEnemy() {
	g.enemyTicks++
	if g.enemyTicks < g.cfg.Enemy.MoveEvery {
		return
	}
	g.enemyTicks = 0

	g.enemy.Advance(func(p Point) bool {
		t, ok := g.tilemap.At(p)
		return ok && g.rules.Patrollable(t)
	})
	if g.enemy.Pos() == g.hero {
		g.caught = true
	}
}

// Score rates a win: faster escapes score higher, never below 1.
func Score(elapsedSeconds int) int {
	return max(1, 1000-10*elapsedSeconds)
}

func actionDelta(a core.Action) (int, int) {
	switch a {
	case core.ActionUp:
		return 0, -1
	case core.ActionDown:
		return 0, 1
	case core.ActionLeft:
		return -1, 0
	case core.ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (g *Game) over() bool {
	return g.won || g.caught
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.moves,
		GameOver: g.over(),
		Won:      g.won,
		Paused:   g.paused,

		ActiveTicks: g.elapsed,
	}
}

// Hero returns the hero's tile.
func (g *Game) Hero() Point {
	return g.hero
}

// Enemy returns the enemy's tile.
func (g *Game) Enemy() Point {
	if g.enemy == nil {
		return Point{}
	}
	return g.enemy.Pos()
}

// Err returns the error that stopped the game from loading, if any.
func (g *Game) Err() error {
	return g.loadErr
}
