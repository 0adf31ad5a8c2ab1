package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridcaster/internal/raycast"
)

var _ raycast.Surface = (*ebitenSurface)(nil)

// ebitenSurface draws frame controller output onto the screen image handed
// to Draw. ebiten flips the buffer itself once Draw returns, so Present only
// counts frames.
type ebitenSurface struct {
	target *ebiten.Image
	frames uint64
}

func (s *ebitenSurface) Clear(c color.Gray) {
	s.target.Fill(c)
}

// DrawVerticalLine fills column from yTop to yBottom inclusive.
func (s *ebitenSurface) DrawVerticalLine(column, yTop, yBottom int, c color.Gray) {
	x := float32(column) + 0.5
	vector.StrokeLine(s.target, x, float32(yTop), x, float32(yBottom+1), 1, c, false)
}

func (s *ebitenSurface) Present() {
	s.frames++
}

// Draw renders the first-person view and the optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.target = screen
	g.frame.Render(g.surface)

	if *debugFlag {
		p := g.frame.Player
		cols := g.frame.Columns()
		centre := cols[len(cols)/2]
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nPos: %.2f, %.2f\nAngle: %.1f deg\nAhead: %.2f (slice %dpx, grey %d)\nFrames: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), p.Pos.X, p.Pos.Y,
			p.Angle*180/math.Pi, centre.Raw, centre.Height, centre.Brightness, g.surface.frames)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size; one ray is cast per logical column.
func (g *Game) Layout(_, _ int) (int, int) { return g.width, g.height }
