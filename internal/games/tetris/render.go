package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Each board cell paints as two block runes so cells look square in a
// terminal font.
const blockRune = '█'

// Render draws the game to the screen: a HUD line, the bordered board
// with the falling shape overlaid, and a status caption when the game is
// paused or over.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Not enough display space")
		return
	}

	display := g.engine.RenderGrid()
	rows := display.Rows()
	cols := display.Cols()

	boardW := cols*2 + 2
	boardH := rows + 2
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight

	dst.DrawBox(boardX, boardY, boardW, boardH)

	// Level row 0 is the bottom; screen y grows downward.
	for r := 0; r < rows; r++ {
		y := boardY + 1 + (rows - r - 1)
		for c := 0; c < cols; c++ {
			if display.Get(r, c) {
				x := boardX + 1 + c*2
				dst.SetCell(x, y, blockRune, core.ColorCyan)
				dst.SetCell(x+1, y, blockRune, core.ColorCyan)
			}
		}
	}

	switch g.engine.State() {
	case StateEnd:
		g.renderCaption(dst, "GAME OVER", core.ColorRed)
	case StatePaused:
		g.renderCaption(dst, "Paused", core.ColorGreen)
	case StateInit:
		g.renderCaption(dst, "Press S to start", core.ColorDefault)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris [%s]  ticks: %d", g.engine.State(), g.engineTicks)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderCaption overlays a centered status caption on the board.
func (g *Game) renderCaption(dst *core.Screen, text string, color core.Color) {
	y := hudHeight + 1 + g.engine.Level().Rows()/2
	x := (dst.Width() - len(text)) / 2
	dst.DrawTextColored(x, y, text, color)
}
