package snake

import (
	"fmt"

	"github.com/vovakirdan/tickarcade/internal/core"
)

const (
	hudHeight = 2
	cellWidth = 2 // terminal cells are about twice as tall as wide
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	hud := fmt.Sprintf(" Snake  Score: %d  Speed: %d  (%dms)", snap.Score, g.SpeedLevel(), snap.Interval.Milliseconds())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightGreen)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height
	boardW := w*cellWidth + 2
	boardH := h + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small - resize to continue")
		return
	}

	offX := (dst.Width() - boardW) / 2
	offY := hudHeight
	dst.DrawBox(core.NewRect(offX, offY, boardW, boardH))

	cell := func(p Point, glyph string, c core.Color) {
		dst.DrawTextColored(offX+1+p.X*cellWidth, offY+1+p.Y, glyph, c)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell(Point{X: x, Y: y}, "· ", core.ColorGray)
		}
	}

	if snap.Apple.X >= 0 {
		cell(snap.Apple, "● ", core.ColorRed)
	}
	for i := len(snap.Body) - 1; i >= 0; i-- {
		if i == 0 {
			cell(snap.Body[i], headGlyph(snap.Heading), core.ColorGreen)
		} else {
			cell(snap.Body[i], "██", core.ColorBrightGreen)
		}
	}
}

func headGlyph(d Direction) string {
	switch d {
	case Up:
		return "▲▲"
	case Down:
		return "▼▼"
	case Left:
		return "◀█"
	default:
		return "█▶"
	}
}
