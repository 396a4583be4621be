package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-labyrinth/internal/core"
	"github.com/vovakirdan/tui-labyrinth/internal/games/chase"
	"github.com/vovakirdan/tui-labyrinth/internal/games/maze"
	"github.com/vovakirdan/tui-labyrinth/internal/platform/tui"
	"github.com/vovakirdan/tui-labyrinth/internal/registry"
)

var (
	flagConfig  string
	flagMap     string
	flagInstant bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD/HJKL  - Move
  Enter/Space       - Skip the carving animation (maze)
  P/Esc             - Pause
  B                 - Back (when paused or finished)
  R                 - Restart (after the game ends)
  Ctrl+S            - Save a screenshot to ~/.labyrinth/screenshots
  Q/Ctrl+C          - Quit

Examples:
  labyrinth play maze
  labyrinth play maze --instant
  labyrinth play maze --config ./my-maze.yaml
  labyrinth play chase --map ./maps/arena.map`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagMap, "map", "", "Path to a chase tile map (.map or .yaml)")
	playCmd.Flags().BoolVar(&flagInstant, "instant", false, "Start mazes fully carved")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'labyrinth list' to see available games)", gameID)
	}

	cfg := runtimeConfig()
	applyGameFlags(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if mg, ok := game.(*maze.Game); ok && flagInstant {
		mg.SkipCarving(true)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "game", gameID, "seed", cfg.Seed, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	if _, err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// applyGameFlags hands the per-game CLI flags to the game packages before
// an instance is created.
func applyGameFlags(gameID string) {
	switch gameID {
	case "maze":
		maze.SetConfigPath(flagConfig)
	case "chase":
		chase.SetConfigPath(flagConfig)
		chase.SetMapPath(flagMap)
	}
}

// chooseMazeMode asks whether to watch g carving. It reports false when
// the player backed out.
func chooseMazeMode(cfg core.RuntimeConfig, g *maze.Game) (bool, error) {
	mode, err := tui.RunMazeModeSelector(cfg)
	if err != nil || mode == nil {
		return false, err
	}
	g.SkipCarving(*mode == tui.MazeModeInstant)
	return true, nil
}
