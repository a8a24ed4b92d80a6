package flappy

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// constRand always draws the same value, capped to the requested range.
type constRand int

func (c constRand) Intn(n int) int {
	if int(c) >= n {
		return n - 1
	}
	return int(c)
}

func TestMaybeSpawnInterval(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	gen := NewGenerator(cfg, constRand(0))
	frame := core.FrameDuration(60)

	tests := []struct {
		name  string
		now   time.Duration
		spawn bool
	}{
		{"first frame", frame, false},
		{"after 25 frames", 25 * frame, false},
		{"after 90 frames", 90 * frame, false},
		{"exactly the interval", 1500 * time.Millisecond, false},
		{"just past the interval", 1500*time.Millisecond + time.Nanosecond, true},
		{"after 91 frames", 91 * frame, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, last, ok := gen.MaybeSpawn(tc.now, 0)
			if ok != tc.spawn {
				t.Fatalf("MaybeSpawn(%v, 0) spawned = %v, expected %v", tc.now, ok, tc.spawn)
			}
			if !ok {
				if last != 0 {
					t.Errorf("no spawn should keep the baseline, got %v", last)
				}
				return
			}
			if last != tc.now {
				t.Errorf("new baseline = %v, expected %v", last, tc.now)
			}
			if p.X != 850 {
				t.Errorf("spawned pipe X = %d, expected 850", p.X)
			}
		})
	}
}

func TestMaybeSpawnRelativeToBaseline(t *testing.T) {
	gen := NewGenerator(config.DefaultFlappyConfig(), constRand(0))

	if _, _, ok := gen.MaybeSpawn(10*time.Second, 9*time.Second); ok {
		t.Error("1s after the last spawn should not fire")
	}
	if _, _, ok := gen.MaybeSpawn(11*time.Second, 9*time.Second); !ok {
		t.Error("2s after the last spawn should fire")
	}
}

func TestSpawnGeometry(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := NewGenerator(cfg, constRand(75)).Spawn()

	if p.GapY != 225 || p.GapBottom() != 375 {
		t.Errorf("gap = [%d, %d), expected [225, 375)", p.GapY, p.GapBottom())
	}
	if p.Left() != 825 || p.Right() != 875 {
		t.Errorf("columns = [%d, %d), expected [825, 875)", p.Left(), p.Right())
	}
	// Spawns fully off the right edge
	if p.Left() < cfg.Screen.Width {
		t.Errorf("Left() = %d, expected >= %d", p.Left(), cfg.Screen.Width)
	}

	top, bottom := p.TopRect(), p.BottomRect()
	if top.Bottom() != p.GapY || top.H != 400 {
		t.Errorf("TopRect() = %+v, expected to end at %d with height 400", top, p.GapY)
	}
	if bottom.Y != p.GapBottom() || bottom.H != 400 {
		t.Errorf("BottomRect() = %+v, expected to start at %d with height 400", bottom, p.GapBottom())
	}
	// Both halves reach past the screen so there is no way around them
	if top.Y > 0 || bottom.Bottom() < cfg.Screen.Height {
		t.Errorf("pipe halves do not cover the screen: top %+v, bottom %+v", top, bottom)
	}
}

func TestSpawnGapExtremes(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	low := NewGenerator(cfg, constRand(0)).Spawn()
	if low.GapY != 150 {
		t.Errorf("smallest draw GapY = %d, expected 150", low.GapY)
	}

	high := NewGenerator(cfg, constRand(1<<30)).Spawn()
	if high.GapY != 300 || high.GapBottom() != 450 {
		t.Errorf("largest draw gap = [%d, %d), expected [300, 450)", high.GapY, high.GapBottom())
	}
}

func TestSpawnGapWithinMargins(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	minTop := cfg.Pipes.Margin
	maxBottom := cfg.Screen.Height - cfg.Pipes.Margin

	for seed := int64(0); seed < 200; seed++ {
		gen := NewGenerator(cfg, rand.New(rand.NewSource(seed)))
		for i := 0; i < 50; i++ {
			p := gen.Spawn()
			if p.GapY < minTop || p.GapBottom() > maxBottom {
				t.Fatalf("seed %d spawn %d: gap [%d, %d) outside [%d, %d]",
					seed, i, p.GapY, p.GapBottom(), minTop, maxBottom)
			}
			if p.GapBottom()-p.GapY != cfg.Pipes.Gap {
				t.Fatalf("seed %d spawn %d: gap height %d, expected %d",
					seed, i, p.GapBottom()-p.GapY, cfg.Pipes.Gap)
			}
		}
	}
}

func TestSpawnDegenerateRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.Margin = 225 // 600 - 225 - 150 = 225, a single legal position

	p := NewGenerator(cfg, constRand(40)).Spawn()
	if p.GapY != 225 {
		t.Errorf("GapY = %d, expected 225", p.GapY)
	}
}

func TestMovePipes(t *testing.T) {
	mk := func(x, gapY int) Pipe {
		return Pipe{X: x, GapY: gapY, Gap: 150, Width: 50, Height: 400}
	}

	pipes := []Pipe{
		mk(-22, 150), // right edge reaches 0 after the move
		mk(-21, 160), // right edge stays at 1
		mk(28, 170),  // right edge stays at 50
		mk(847, 180),
	}

	got := MovePipes(pipes, 3)

	if len(got) != 3 {
		t.Fatalf("MovePipes() kept %d pipes, expected 3", len(got))
	}

	expected := []Pipe{mk(-24, 160), mk(25, 170), mk(844, 180)}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("pipe %d = %+v, expected %+v", i, got[i], expected[i])
		}
	}
	for _, p := range got {
		if p.Right() <= 0 {
			t.Errorf("pipe with right edge %d should have been culled", p.Right())
		}
	}
}

func TestMovePipesEmpty(t *testing.T) {
	if got := MovePipes(nil, 3); len(got) != 0 {
		t.Errorf("MovePipes(nil) = %v, expected empty", got)
	}
}

func TestMovePipesUntilGone(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pipes := []Pipe{NewGenerator(cfg, constRand(0)).Spawn()}

	// 875 to 0 at 3 per frame: gone on the frame the right edge hits <= 0
	frames := 0
	for len(pipes) > 0 {
		pipes = MovePipes(pipes, cfg.Pipes.Speed)
		frames++
		if frames > 1000 {
			t.Fatal("pipe never left the screen")
		}
	}
	if frames != 292 {
		t.Errorf("pipe culled after %d frames, expected 292", frames)
	}
}
