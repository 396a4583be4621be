package core

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a side shorter than one cell.
	ErrInvalidDimensions = errors.New("maze: width and height must be at least 1")

	// ErrGenerationDone is returned by Step once carving has finished.
	ErrGenerationDone = errors.New("maze: step called after generation finished")
)
