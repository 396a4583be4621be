package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// validator is implemented by every per-game config.
type validator interface {
	Validate() error
}

// LoadMaze loads maze configuration.
// Search order: customPath -> ~/.labyrinth/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (MazeConfig, error) {
	return load("maze", customPath, DefaultMazeConfig)
}

// LoadChase loads chase configuration.
// Search order: customPath -> ~/.labyrinth/configs/chase.yaml -> ./configs/chase.yaml -> embedded default
func LoadChase(customPath string) (ChaseConfig, error) {
	return load("chase", customPath, DefaultChaseConfig)
}

// load walks the search path for gameID. Files are decoded on top of the
// hardcoded defaults so partial files only override what they mention.
// Unreadable or invalid files on the implicit search path are skipped;
// problems with an explicit customPath are returned.
func load[T validator](gameID, customPath string, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data, defaults)
		if err != nil {
			return defaults(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, defaults); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := decode(GetDefaultYAML(gameID), defaults); err == nil {
		return cfg, nil
	}
	return defaults(), nil // Fallback to hardcoded if embed fails
}

func decode[T validator](data []byte, defaults func() T) (T, error) {
	cfg := defaults()
	if len(data) == 0 {
		return cfg, errors.New("empty config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// UserDir returns ~/.labyrinth, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".labyrinth")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// Validate checks the maze configuration for usable values.
func (c MazeConfig) Validate() error {
	switch {
	case c.Size.Min < 1:
		return fmt.Errorf("%w: size.min must be >= 1, got %d", ErrInvalid, c.Size.Min)
	case c.Size.Max < c.Size.Min:
		return fmt.Errorf("%w: size.max %d is below size.min %d", ErrInvalid, c.Size.Max, c.Size.Min)
	case c.Carving.StepsPerTick < 1:
		return fmt.Errorf("%w: carving.steps_per_tick must be >= 1, got %d", ErrInvalid, c.Carving.StepsPerTick)
	case c.Display.CellWidth < 1:
		return fmt.Errorf("%w: display.cell_width must be >= 1, got %d", ErrInvalid, c.Display.CellWidth)
	}
	return nil
}

// Validate checks the chase configuration for usable values.
func (c ChaseConfig) Validate() error {
	switch {
	case len(c.Map.FreeTiles) == 0:
		return fmt.Errorf("%w: map.free_tiles is empty", ErrInvalid)
	case c.Hero.MoveEvery < 1:
		return fmt.Errorf("%w: hero.move_every must be >= 1, got %d", ErrInvalid, c.Hero.MoveEvery)
	case c.Enemy.MoveEvery < 1:
		return fmt.Errorf("%w: enemy.move_every must be >= 1, got %d", ErrInvalid, c.Enemy.MoveEvery)
	case len(c.Enemy.Patrol) < 2:
		return fmt.Errorf("%w: enemy.patrol needs at least 2 waypoints, got %d", ErrInvalid, len(c.Enemy.Patrol))
	}
	for _, t := range c.Map.FreeTiles {
		if t == c.Map.ExitTile {
			return nil
		}
	}
	return fmt.Errorf("%w: map.exit_tile %d is not a free tile", ErrInvalid, c.Map.ExitTile)
}
