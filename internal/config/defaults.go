package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Size: MazeSize{
			Min: 20,
			Max: 25,
		},
		Carving: MazeCarving{
			StepsPerTick: 1,
		},
		Display: MazeDisplay{
			CellWidth:   1,
			FitToScreen: true,
		},
	}
}

// DefaultChaseConfig returns the default chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Map: ChaseMap{
			FreeTiles: []int{0, 2},
			ExitTile:  2,
		},
		Hero: ChaseHero{
			Start:     Point{X: 7, Y: 7},
			MoveEvery: 3,
		},
		Enemy: ChaseEnemy{
			Start:     Point{X: 3, Y: 3},
			MoveEvery: 6,
			Patrol: []Point{
				{X: 3, Y: 3},
				{X: 11, Y: 3},
				{X: 11, Y: 11},
				{X: 3, Y: 11},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "maze":
		return defaultMazeYAML
	case "chase":
		return defaultChaseYAML
	default:
		return nil
	}
}
