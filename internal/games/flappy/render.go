package flappy

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tickarcade/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BeakChar      = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '▓'
	GroundStripe  = '▒'
	CloudChar     = '~'
)

// viewport maps world units onto the terminal. Row 0 is the HUD.
type viewport struct {
	sx, sy float64
	top    int
	rows   int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := dst.Height() - 1
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:   float64(dst.Width()) / worldW,
		sy:   float64(rows) / worldH,
		top:  1,
		rows: rows,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return v.top + int(math.Floor(y*v.sy)) }

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)
	groundRow := vp.row(g.cfg.World.GroundY)

	g.drawClouds(dst, vp, snap.Tick)

	for _, p := range snap.Pipes {
		g.drawPipe(dst, vp, p, groundRow)
	}

	g.drawGround(dst, groundRow, snap.Tick)
	drawBird(dst, vp, snap.Bird)

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightYellow)
}

// drawPipe renders a single pipe to the screen.
func (g *Game) drawPipe(dst *core.Screen, vp viewport, p Pipe, groundRow int) {
	left := vp.col(p.X)
	right := core.Max(vp.col(p.X+g.cfg.Obstacles.PipeWidth), left+1)
	topEnd := vp.row(p.GapTop)
	bottomStart := vp.row(p.GapBottom)

	for x := left; x < right; x++ {
		for y := vp.top; y < topEnd; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if topEnd > vp.top {
			dst.SetColored(x, topEnd-1, PipeCapTop, core.ColorBrightGreen)
		}

		for y := bottomStart; y < groundRow; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if bottomStart < groundRow {
			dst.SetColored(x, bottomStart, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawGround fills everything below the ground line with a scrolling pattern.
func (g *Game) drawGround(dst *core.Screen, groundRow int, tick uint64) {
	offset := int(float64(tick)*g.cfg.Physics.PipeSpeed*float64(dst.Width())/g.cfg.World.Width) % 6
	for y := groundRow; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			ch := GroundChar
			if (x+offset)%6 < 2 && y == groundRow {
				ch = GroundStripe
			}
			dst.SetColored(x, y, ch, core.ColorOrange)
		}
	}
}

func (g *Game) drawClouds(dst *core.Screen, vp viewport, tick uint64) {
	w := dst.Width()
	if w <= 0 {
		return
	}
	clouds := []struct {
		x, y   float64
		period uint64
	}{
		{100, 80, 400},
		{300, 150, 500},
	}
	for _, c := range clouds {
		x := vp.col(c.x - float64(tick%c.period))
		x = ((x % w) + w) % w
		dst.DrawTextColored(x, vp.row(c.y), strings.Repeat(string(CloudChar), 4), core.ColorGray)
	}
}

func drawBird(dst *core.Screen, vp viewport, b Bird) {
	left := vp.col(b.X)
	right := core.Max(vp.col(b.X+b.W), left+1)
	top := vp.row(b.Y)
	bottom := core.Max(vp.row(b.Y+b.H), top+1)

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			ch := BirdChar
			if x == right-1 && y == top {
				ch = BeakChar
			}
			dst.SetColored(x, y, ch, core.ColorYellow)
		}
	}
}
