// Package config provides YAML-based game configuration loading for the
// labyrinth platform.
package config

// Point is a tile or cell coordinate in a config file.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Size    MazeSize    `yaml:"size"`
	Carving MazeCarving `yaml:"carving"`
	Display MazeDisplay `yaml:"display"`
}

// MazeSize bounds the randomly chosen maze dimensions, per axis.
type MazeSize struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// MazeCarving controls how the generator is animated.
type MazeCarving struct {
	StepsPerTick int  `yaml:"steps_per_tick"`
	Instant      bool `yaml:"instant"` // Skip the animation entirely
}

// MazeDisplay controls how cells map to terminal characters.
type MazeDisplay struct {
	CellWidth   int  `yaml:"cell_width"`    // Characters per cell interior
	FitToScreen bool `yaml:"fit_to_screen"` // Shrink the maze to the terminal
}

// ChaseConfig contains all configuration for the chase game.
type ChaseConfig struct {
	Map   ChaseMap   `yaml:"map"`
	Hero  ChaseHero  `yaml:"hero"`
	Enemy ChaseEnemy `yaml:"enemy"`
}

// ChaseMap describes the tile map and tile semantics.
type ChaseMap struct {
	Path      string `yaml:"path"` // Empty uses the embedded map
	FreeTiles []int  `yaml:"free_tiles"`
	ExitTile  int    `yaml:"exit_tile"`
}

// ChaseHero defines the player character.
type ChaseHero struct {
	Start     Point `yaml:"start"`
	MoveEvery int   `yaml:"move_every"` // Ticks between accepted moves
}

// ChaseEnemy defines the patrolling enemy.
type ChaseEnemy struct {
	Start     Point   `yaml:"start"`
	MoveEvery int     `yaml:"move_every"`
	Patrol    []Point `yaml:"patrol"` // Closed loop of waypoints
}
