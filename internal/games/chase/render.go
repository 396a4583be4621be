package chase

import (
	"fmt"

	"github.com/vovakirdan/tui-labyrinth/internal/core"
)

// Render draws the game to the screen. Each tile is two columns wide.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := " Chase | reach the exit"
	if g.tilemap != nil {
		hud = fmt.Sprintf(" Chase | Moves: %d | Time: %ds", g.moves, g.elapsed/g.tickRate)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	switch {
	case g.loadErr != nil:
		dst.DrawOverlay("Cannot start chase", g.loadErr.Error())
		return
	case g.tooSmall:
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", g.tilemap.W*2, g.tilemap.H+hudHeight))
		return
	}

	for y := 0; y < g.tilemap.H; y++ {
		for x := 0; x < g.tilemap.W; x++ {
			p := Point{X: x, Y: y}
			tile, _ := g.tilemap.At(p)
			r, color := ' ', core.ColorDefault
			switch {
			case g.rules.Exit(tile):
				r, color = '▒', core.ColorGray
			case !g.rules.Walkable(tile):
				r, color = '█', core.ColorBlue
			}
			g.drawTile(dst, p, r, color)
		}
	}

	g.drawTile(dst, g.enemy.Pos(), 'X', core.ColorBrightBlue)
	g.drawTile(dst, g.hero, '@', core.ColorBrightYellow)

	switch {
	case g.won:
		dst.DrawOverlay("You escaped!", fmt.Sprintf("Score: %d  R to restart", g.score))
	case g.caught:
		dst.DrawOverlay("Caught!", "Press R to restart")
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

func (g *Game) drawTile(dst *core.Screen, p Point, r rune, c core.Color) {
	sx := g.offsetX + p.X*2
	sy := g.offsetY + p.Y
	dst.SetColored(sx, sy, r, c)
	dst.SetColored(sx+1, sy, r, c)
}
