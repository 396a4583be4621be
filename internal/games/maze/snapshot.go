package maze

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Width    int
	Height   int
	CursorX  int // Generator cursor while carving, player afterwards
	CursorY  int
	Visited  int
	Passages int
	Moves    int
	Score    int
	Paused   bool
	TooSmall bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Score:    g.score,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}

	grid := g.Grid()
	if grid == nil {
		return s
	}
	s.Width = grid.W
	s.Height = grid.H
	s.Visited = grid.VisitedCount()
	s.Passages = grid.OpenPassages()

	cursor := g.gen.Current()
	if g.walker != nil {
		cursor = g.walker.Pos()
		s.Moves = g.walker.Moves()
	}
	s.CursorX = cursor.X
	s.CursorY = cursor.Y
	return s
}
