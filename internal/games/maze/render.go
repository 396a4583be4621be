package maze

import (
	"fmt"

	"github.com/vovakirdan/tui-labyrinth/internal/core"
	mazecore "github.com/vovakirdan/tui-labyrinth/internal/games/maze/core"
)

const (
	wallRune       = '#'
	unvisitedRune  = '░'
	trailRune      = '·'
	exitRune       = 'E'
	playerRune     = '@'
	wallColor      = core.ColorBlue
	unvisitedColor = core.ColorGray
	trailColor     = core.ColorCyan
	exitColor      = core.ColorOrange
	playerColor    = core.ColorBrightGreen
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", g.needW, g.needH))
		return
	}

	g.renderMaze(dst)

	switch {
	case g.phase == PhaseWon:
		dst.DrawOverlay("You escaped!", fmt.Sprintf("Score: %d  Moves: %d  R to restart", g.score, g.walker.Moves()))
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " Maze Runner"
	if grid := g.Grid(); grid != nil {
		switch g.phase {
		case PhaseCarving:
			done := grid.VisitedCount() * 100 / (grid.W * grid.H)
			hud = fmt.Sprintf(" Maze %dx%d | Carving %d%% | Enter: skip", grid.W, grid.H, done)
		default:
			hud = fmt.Sprintf(" Maze %dx%d | Moves: %d | Time: %ds", grid.W, grid.H, g.walker.Moves(), g.playTicks/g.tickRate)
		}
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls, cell interiors and the cursor or player.
// Cell (x, y) occupies one wall column and CellWidth interior columns,
// and one wall row above one interior row.
func (g *Game) renderMaze(dst *core.Screen) {
	grid := g.Grid()
	cw := g.cfg.Display.CellWidth
	stride := cw + 1

	trail := make(map[mazecore.Coord]bool)
	if g.phase == PhaseCarving {
		for _, c := range g.gen.History() {
			trail[c] = true
		}
	}

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			c := mazecore.C(x, y)
			cell := grid.At(c)
			sx := g.offsetX + x*stride
			sy := g.offsetY + y*2

			dst.SetColored(sx, sy, wallRune, wallColor)
			if cell.HasWall(mazecore.North) {
				for i := 1; i <= cw; i++ {
					dst.SetColored(sx+i, sy, wallRune, wallColor)
				}
			}
			if cell.HasWall(mazecore.West) {
				dst.SetColored(sx, sy+1, wallRune, wallColor)
			}

			r, color := g.interior(c, cell, trail)
			for i := 1; i <= cw; i++ {
				dst.SetColored(sx+i, sy+1, r, color)
			}
		}

		// East boundary
		ex := g.offsetX + grid.W*stride
		ey := g.offsetY + y*2
		dst.SetColored(ex, ey, wallRune, wallColor)
		if grid.At(mazecore.C(grid.W-1, y)).HasWall(mazecore.East) {
			dst.SetColored(ex, ey+1, wallRune, wallColor)
		}
	}

	// South boundary
	by := g.offsetY + grid.H*2
	for x := 0; x < grid.W; x++ {
		sx := g.offsetX + x*stride
		dst.SetColored(sx, by, wallRune, wallColor)
		if grid.At(mazecore.C(x, grid.H-1)).HasWall(mazecore.South) {
			for i := 1; i <= cw; i++ {
				dst.SetColored(sx+i, by, wallRune, wallColor)
			}
		}
	}
	dst.SetColored(g.offsetX+grid.W*stride, by, wallRune, wallColor)
}

// interior picks the rune and color filling a cell.
func (g *Game) interior(c mazecore.Coord, cell mazecore.Cell, trail map[mazecore.Coord]bool) (rune, core.Color) {
	switch {
	case g.phase == PhaseCarving && c == g.gen.Current():
		return playerRune, playerColor
	case g.walker != nil && c == g.walker.Pos():
		return playerRune, playerColor
	case cell.Exit():
		return exitRune, exitColor
	case !cell.Visited():
		return unvisitedRune, unvisitedColor
	case trail[c]:
		return trailRune, trailColor
	default:
		return ' ', core.ColorDefault
	}
}
