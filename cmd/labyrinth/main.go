// labyrinth is a terminal maze platform: watch a perfect maze being carved
// and walk it, or escape a patrolling guard on a tile map.
//
// Usage:
//
//	labyrinth list              - List available games
//	labyrinth play <game>       - Play a game
//	labyrinth menu              - Start menu to pick games interactively
//	labyrinth generate          - Print a generated maze as ASCII
//	labyrinth serve             - Start SSH server for remote play
//	labyrinth scores [game]     - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible mazes
//	--db <path>           - Set database path (default: ~/.labyrinth/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
package main

import (
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-labyrinth/internal/core"
	"github.com/vovakirdan/tui-labyrinth/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tui-labyrinth/internal/games/chase"
	_ "github.com/vovakirdan/tui-labyrinth/internal/games/maze"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "labyrinth",
	Level:  log.WarnLevel,
})

func main() {
	// cobra has already printed the error
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "labyrinth",
	Short: "Labyrinth - mazes in your terminal",
	Long: `Labyrinth carves perfect mazes with a randomized depth-first search,
animates the carving, and lets you walk them in your terminal.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  generate  - Print a maze as ASCII art
  serve     - Start SSH server for remote play
  scores    - View high scores

Examples:
  labyrinth list
  labyrinth play maze
  labyrinth play maze --instant --seed 42
  labyrinth play chase --map ./maps/arena.yaml
  labyrinth generate --width 12 --height 8 --seed 7
  labyrinth serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.labyrinth/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runtimeConfig builds the game config from global flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	} else {
		logger.Debug("terminal size unavailable, using defaults", "error", err)
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		cfg.Player = u.Username
	}
	return cfg
}

// openStore opens the score database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
