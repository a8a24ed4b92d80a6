package flappy

import "github.com/vovakirdan/flappy/internal/core"

// Collides reports whether the bird's hitbox touches any pipe, or reaches
// the top or bottom of a screen screenH units tall.
func Collides(bird core.RectF, pipes []Pipe, screenH int) bool {
	for _, p := range pipes {
		if bird.Intersects(p.TopRect().Float()) || bird.Intersects(p.BottomRect().Float()) {
			return true
		}
	}
	return bird.Y <= 0 || bird.Bottom() >= float64(screenH)
}

// ScorePasses counts pairs whose center lines up exactly with the bird's
// column this frame. Pipes move in whole steps, so each pair matches on at
// most one frame, and only if its spawn column and speed land on birdX.
func ScorePasses(birdX int, pipes []Pipe) int {
	passed := 0
	for _, p := range pipes {
		if p.X == birdX {
			passed++
		}
	}
	return passed
}
