package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/tickarcade/internal/core"
)

const (
	cellW  = 7
	cellH  = 3
	boardW = cellW*3 + 4
	boardH = cellH*3 + 4
)

// Render draws the board, the series tally and whose turn it is.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	xName, oName := "X", "O"
	if snap.Mode == ModeCPU {
		xName, oName = "You (X)", "Computer (O)"
	}
	hud := fmt.Sprintf(" Tic-Tac-Toe  %s %d : %d %s  Draws: %d",
		xName, snap.Series.XWins, snap.Series.OWins, oName, snap.Series.Draws)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if dst.Width() < boardW || dst.Height() < boardH+4 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small - resize to continue")
		return
	}

	ox := (dst.Width() - boardW) / 2
	oy := 3
	drawGrid(dst, ox, oy)

	win := map[int]bool{}
	if snap.Result == XWins || snap.Result == OWins {
		for _, i := range snap.WinLine {
			win[i] = true
		}
	}

	for i, c := range snap.Board {
		x0 := ox + 1 + (i%3)*(cellW+1)
		y0 := oy + 1 + (i/3)*(cellH+1)

		color := markColor(c)
		if win[i] {
			color = core.ColorBrightYellow
		}
		if c != Empty {
			dst.SetColored(x0+cellW/2, y0+cellH/2, []rune(c.String())[0], color)
		}
		if i == snap.Cursor && snap.Result == Ongoing {
			dst.SetColored(x0+1, y0+cellH/2, '[', core.ColorWhite)
			dst.SetColored(x0+cellW-2, y0+cellH/2, ']', core.ColorWhite)
		}
	}

	dst.DrawTextCentered(oy+boardH+1, statusLine(snap))
	dst.DrawTextColored(ox, oy+boardH+2, "arrows move  space/enter place  1-9 keypad", core.ColorGray)
}

func drawGrid(dst *core.Screen, ox, oy int) {
	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH))
	for k := 1; k < 3; k++ {
		x := ox + k*(cellW+1)
		y := oy + k*(cellH+1)
		dst.DrawVLine(x, oy+1, boardH-2, '│')
		dst.DrawHLine(ox+1, y, boardW-2, '─')
		dst.Set(x, oy, '┬')
		dst.Set(x, oy+boardH-1, '┴')
		dst.Set(ox, y, '├')
		dst.Set(ox+boardW-1, y, '┤')
	}
	for kx := 1; kx < 3; kx++ {
		for ky := 1; ky < 3; ky++ {
			dst.Set(ox+kx*(cellW+1), oy+ky*(cellH+1), '┼')
		}
	}
}

func markColor(c Cell) core.Color {
	switch c {
	case X:
		return core.ColorCyan
	case O:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}

func statusLine(s Snapshot) string {
	switch s.Result {
	case XWins, OWins, Draw:
		return ""
	}
	if s.Thinking {
		return "Computer is thinking..."
	}
	if s.Mode == ModeCPU {
		return "Your turn"
	}
	return fmt.Sprintf("Player %s's turn", s.Turn)
}
