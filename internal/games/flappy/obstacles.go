package flappy

import (
	"time"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Rand is the subset of *rand.Rand the generator needs.
// Tests pass fixed sequences to pin gap positions.
type Rand interface {
	Intn(n int) int
}

// Pipe is a top/bottom obstacle pair sharing one column.
// X is the horizontal center; GapY is the top edge of the opening.
type Pipe struct {
	X      int
	GapY   int
	Gap    int // Height of the opening
	Width  int
	Height int // Length of each half
}

// Left returns the x-coordinate of the pair's left edge.
func (p Pipe) Left() int {
	return p.X - p.Width/2
}

// Right returns the x-coordinate of the pair's right edge.
func (p Pipe) Right() int {
	return p.Left() + p.Width
}

// GapBottom returns the y-coordinate where the bottom pipe starts.
func (p Pipe) GapBottom() int {
	return p.GapY + p.Gap
}

// TopRect returns the collision rectangle of the upper pipe.
// It ends at the top of the gap and may extend above the screen.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.Left(), p.GapY-p.Height, p.Width, p.Height)
}

// BottomRect returns the collision rectangle of the lower pipe.
func (p Pipe) BottomRect() core.Rect {
	return core.NewRect(p.Left(), p.GapBottom(), p.Width, p.Height)
}

// Generator spawns pipe pairs on a fixed time interval.
type Generator struct {
	cfg config.FlappyConfig
	rng Rand
}

// NewGenerator creates a generator drawing gap positions from rng.
func NewGenerator(cfg config.FlappyConfig, rng Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// MaybeSpawn creates a new pair once more than the spawn interval has
// elapsed since lastSpawn. It returns the new baseline and whether a pair
// was produced; when nothing spawns the baseline is returned unchanged.
func (g *Generator) MaybeSpawn(now, lastSpawn time.Duration) (Pipe, time.Duration, bool) {
	if now-lastSpawn <= g.cfg.Pipes.SpawnInterval {
		return Pipe{}, lastSpawn, false
	}
	return g.Spawn(), now, true
}

// Spawn creates a pair just off the right edge of the screen with its gap
// placed uniformly at random inside the allowed range.
func (g *Generator) Spawn() Pipe {
	lo, hi := g.cfg.GapRange()
	gapY := lo
	if hi > lo {
		gapY = lo + g.rng.Intn(hi-lo+1)
	}

	return Pipe{
		X:      g.cfg.SpawnX(),
		GapY:   gapY,
		Gap:    g.cfg.Pipes.Gap,
		Width:  g.cfg.Pipes.Width,
		Height: g.cfg.Pipes.Height,
	}
}

// MovePipes shifts every pair left by speed and drops the ones whose right
// edge has reached the left side of the screen. The slice is filtered in
// place and survivors keep their order.
func MovePipes(pipes []Pipe, speed int) []Pipe {
	for i := range pipes {
		pipes[i].X -= speed
	}

	valid := pipes[:0]
	for _, p := range pipes {
		if p.Right() > 0 {
			valid = append(valid, p)
		}
	}
	return valid
}
