package flappy

import (
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Bird is the player: a fixed column, a vertical position and a velocity.
// Y is the center of the hitbox; positive velocity points down.
type Bird struct {
	X      float64
	Y      float64
	Vel    float64
	Width  float64
	Height float64

	startY float64
}

// NewBird places a bird at its starting position with zero velocity.
func NewBird(cfg config.FlappyConfig) Bird {
	b := Bird{
		X:      float64(cfg.Bird.X),
		Width:  float64(cfg.Bird.Width),
		Height: float64(cfg.Bird.Height),
		startY: cfg.StartY(),
	}
	b.Reset()
	return b
}

// Reset moves the bird back to its starting position and stops it.
func (b *Bird) Reset() {
	b.Y = b.startY
	b.Vel = 0
}

// Jump replaces the current velocity with the jump velocity.
func (b *Bird) Jump(jumpVelocity float64) {
	b.Vel = jumpVelocity
}

// Integrate advances the bird by one frame: velocity first, then position.
func (b *Bird) Integrate(gravity float64) {
	b.Vel += gravity
	b.Y += b.Vel
}

// Bounds returns the bird's hitbox.
func (b Bird) Bounds() core.RectF {
	return core.RectAround(b.X, b.Y, b.Width, b.Height)
}
