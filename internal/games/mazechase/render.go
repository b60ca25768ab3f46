package mazechase

import (
	"fmt"

	platformcore "github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/core"
)

// cellChars is how many terminal columns one maze cell occupies.
const cellChars = 2

// MinScreen returns the smallest terminal that fits the standard maze.
func MinScreen() (w, h int) {
	return core.StandardCols * cellChars, core.StandardRows + 2
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.world == nil {
		msg := "Maze unavailable"
		if g.err != nil {
			msg = g.err.Error()
		}
		g.renderOverlay(dst, "Cannot start game", msg)
		return
	}

	// Draw HUD
	g.renderHUD(dst)

	// Handle special states
	if g.tooSmall {
		w, h := MinScreen()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	g.renderMaze(dst)
	g.renderDots(dst)
	g.renderGhosts(dst)
	g.renderPlayer(dst)

	// Draw overlays
	switch g.world.Status() {
	case core.StatusWon:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Score: %d  R to restart", g.world.Score()))
	case core.StatusLost:
		g.renderOverlay(dst, "Game Over", "Caught! Press R to restart")
	case core.StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	w := g.world
	mode := w.Ghost(core.Blinky).Mode()
	hud := fmt.Sprintf(" Maze Chase | Score: %d | Dots: %d/%d | Ghosts: %s",
		w.Score(), w.DotsRemaining(), len(w.Maze().Dots), mode)

	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorWhite)

	// Separator
	for x := range dst.Width() {
		dst.SetWithColor(x, 1, '─', platformcore.ColorGray)
	}
}

// renderMaze draws walls and the ghost-house gate.
func (g *Game) renderMaze(dst *platformcore.Screen) {
	m := g.world.Maze()
	for _, wall := range m.Walls {
		x, y := g.cellToScreen(wall.X/core.CellSize, wall.Y/core.CellSize)
		dst.SetWithColor(x, y, '█', platformcore.ColorBlue)
		dst.SetWithColor(x+1, y, '█', platformcore.ColorBlue)
	}
	for _, gate := range m.Gates {
		col, row := gate.Cell()
		x, y := g.cellToScreen(col, row)
		dst.SetWithColor(x, y, '─', platformcore.ColorPink)
		dst.SetWithColor(x+1, y, '─', platformcore.ColorPink)
	}
}

// renderDots draws every live dot.
func (g *Game) renderDots(dst *platformcore.Screen) {
	for _, d := range g.world.Dots() {
		x, y := g.cellToScreen(d.Col, d.Row)
		dst.SetWithColor(x, y, '·', platformcore.ColorWhite)
	}
}

// renderGhosts draws ghosts in personality order. Chasing ghosts use a
// sharper glyph.
func (g *Game) renderGhosts(dst *platformcore.Screen) {
	for _, ghost := range g.world.Ghosts() {
		glyph := "{}"
		if ghost.Mode() == core.ModeChase {
			glyph = "<>"
		}
		x, y := g.worldToScreen(ghost.Pos)
		dst.DrawTextWithColor(x, y, glyph, core.ProfileOf(ghost.Personality()).Color)
	}
}

// renderPlayer draws the player with its mouth facing the current heading.
func (g *Game) renderPlayer(dst *platformcore.Screen) {
	p := g.world.Player()
	glyph := "()"
	switch p.Dir {
	case core.DirRight:
		glyph = "(<"
	case core.DirLeft:
		glyph = ">)"
	case core.DirUp:
		glyph = "\\/"
	case core.DirDown:
		glyph = "/\\"
	}
	x, y := g.worldToScreen(p.Pos)
	dst.DrawTextWithColor(x, y, glyph, platformcore.ColorYellow)
}

// cellToScreen returns the screen position of a maze cell's left column.
func (g *Game) cellToScreen(col, row int) (int, int) {
	return g.offsetX + col*cellChars, g.offsetY + row
}

// worldToScreen maps a world position to the nearest screen column and row.
// Horizontal placement has half-cell precision.
func (g *Game) worldToScreen(p core.Point) (int, int) {
	x := (p.X*cellChars + core.CellSize/2) / core.CellSize
	y := (p.Y + core.CellSize/2) / core.CellSize
	return g.offsetX + x, g.offsetY + y
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
