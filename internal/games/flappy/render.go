package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar    = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
)

// Messages shared by every frontend.
const (
	GameOverText = "Game Over! Press R to Restart"
	scoreFormat  = "Score: %d"
)

// ScoreText returns the HUD line for a score.
func ScoreText(score int) string {
	return fmt.Sprintf(scoreFormat, score)
}

// Render draws the current game state into a character screen, scaling
// world coordinates to the screen's size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	proj := projection{
		sx: float64(dst.Width()) / float64(g.cfg.Screen.Width),
		sy: float64(dst.Height()) / float64(g.cfg.Screen.Height),
	}

	if g.phase == PhaseGameOver {
		drawCenteredMessage(dst, "GAME OVER", GameOverText)
		return
	}

	for _, p := range g.pipes {
		drawPipe(dst, proj, p)
	}

	dst.FillRect(proj.rect(g.bird.Bounds()), PlayerChar, core.ColorBrightYellow)

	dst.DrawTextCentered(int(50*proj.sy), ScoreText(g.score), core.ColorBrightWhite)
}

// projection maps world units to screen cells.
type projection struct {
	sx, sy float64
}

// rect converts a world box to the smallest cell box covering it.
// Anything with area stays at least one cell wide and tall.
func (p projection) rect(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * p.sx))
	y0 := int(math.Floor(r.Y * p.sy))
	x1 := int(math.Ceil(r.Right() * p.sx))
	y1 := int(math.Ceil(r.Bottom() * p.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// drawPipe renders both halves of a pair with caps facing the gap.
func drawPipe(dst *core.Screen, proj projection, p Pipe) {
	top := proj.rect(p.TopRect().Float())
	bottom := proj.rect(p.BottomRect().Float())

	dst.FillRect(top, PipeChar, core.ColorGreen)
	dst.FillRect(bottom, PipeChar, core.ColorGreen)

	// Caps on the rows that border the gap
	dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop, core.ColorBrightGreen)
	dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBottom, core.ColorBrightGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorRed)
	dst.DrawTextColor(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorBrightWhite)
}
