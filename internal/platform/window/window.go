// Package window runs the game in a desktop window using Ebitengine.
package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// hudFontSize is the size of the score and game over text.
const hudFontSize = 28

// Key bindings for the window frontend.
var (
	jumpKeys    = []ebiten.Key{ebiten.KeySpace}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// sprites are the startup images uploaded to the GPU.
type sprites struct {
	background *ebiten.Image
	bird       *ebiten.Image
	pipe       *ebiten.Image
}

// Game adapts a flappy.Game to the ebiten.Game interface.
type Game struct {
	sim    *flappy.Game
	art    sprites
	face   *text.GoTextFace
	logger *log.Logger
	input  core.InputFrame
}

// New prepares the window frontend. It does not open the window.
func New(sim *flappy.Game, set assets.Set, logger *log.Logger) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}

	return &Game{
		sim: sim,
		art: sprites{
			background: ebiten.NewImageFromImage(set.Background),
			bird:       ebiten.NewImageFromImage(set.Bird),
			pipe:       ebiten.NewImageFromImage(set.Pipe),
		},
		face:   &text.GoTextFace{Source: src, Size: hudFontSize},
		logger: logger,
		input:  core.NewInputFrame(),
	}, nil
}

// Run opens the window and blocks until the player quits or closes it.
func Run(g *Game) error {
	cfg := g.sim.Config()

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(g.sim.Title())
	ebiten.SetTPS(cfg.Timing.FPS)

	g.logger.Info("window opened", "width", cfg.Screen.Width, "height", cfg.Screen.Height, "tps", cfg.Timing.FPS)

	// RunGame returns nil when Update returns ebiten.Termination.
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	g.logger.Info("window closed", "score", g.sim.Score())
	return nil
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	g.input.Clear()
	pollInput(inpututil.IsKeyJustPressed, &g.input)

	wasOver := g.sim.State().GameOver
	res := g.sim.Step(g.input)

	if res.Quit {
		return ebiten.Termination
	}
	switch {
	case !wasOver && res.State.GameOver:
		g.logger.Debug("game over", "score", res.State.Score, "ticks", g.sim.Ticks())
	case wasOver && !res.State.GameOver:
		g.logger.Debug("restart")
	}
	return nil
}

// pollInput sets an action for every bound key pressed this frame.
func pollInput(justPressed func(ebiten.Key) bool, frame *core.InputFrame) {
	bindings := []struct {
		keys   []ebiten.Key
		action core.Action
	}{
		{jumpKeys, core.ActionJump},
		{restartKeys, core.ActionRestart},
		{quitKeys, core.ActionQuit},
	}

	for _, b := range bindings {
		for _, k := range b.keys {
			if justPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := g.sim.Config()
	w, h := float64(cfg.Screen.Width), float64(cfg.Screen.Height)

	g.drawScaled(screen, g.art.background, 0, 0, w, h, false)

	if g.sim.Phase() == flappy.PhaseGameOver {
		g.drawText(screen, flappy.GameOverText, w/2, h/2)
		return
	}

	b := g.sim.Bird().Bounds()
	g.drawScaled(screen, g.art.bird, b.X, b.Y, b.W, b.H, false)

	for _, p := range g.sim.Pipes() {
		top := p.TopRect().Float()
		bottom := p.BottomRect().Float()
		g.drawScaled(screen, g.art.pipe, top.X, top.Y, top.W, top.H, true)
		g.drawScaled(screen, g.art.pipe, bottom.X, bottom.Y, bottom.W, bottom.H, false)
	}

	g.drawText(screen, flappy.ScoreText(g.sim.Score()), w/2, 50)
}

// drawScaled stretches img over the box (x, y, w, h), optionally flipped
// upside down so the top pipe's cap faces the gap.
func (g *Game) drawScaled(dst, img *ebiten.Image, x, y, w, h float64, flip bool) {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(iw), h/float64(ih))
	if flip {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, h)
	}
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}

// drawText draws white text centered on (cx, cy).
func (g *Game) drawText(dst *ebiten.Image, msg string, cx, cy float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, msg, g.face, op)
}

// Layout fixes the logical resolution; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.sim.Config()
	return cfg.Screen.Width, cfg.Screen.Height
}
