// Package config provides the YAML-declared gameplay constants for Flappy Bird.
// The document is embedded at build time; there is no runtime lookup path.
package config

import "time"

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Screen  FlappyScreen  `yaml:"screen"`
	Physics FlappyPhysics `yaml:"physics"`
	Bird    FlappyBird    `yaml:"bird"`
	Pipes   FlappyPipes   `yaml:"pipes"`
	Timing  FlappyTiming  `yaml:"timing"`
	Assets  FlappyAssets  `yaml:"assets"`
}

// FlappyScreen is the logical playfield size in world units (pixels).
type FlappyScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlappyPhysics defines the per-frame vertical motion of the bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
}

// FlappyBird defines the bird's fixed column and hitbox.
type FlappyBird struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlappyPipes defines obstacle geometry and pacing.
type FlappyPipes struct {
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	Gap           int           `yaml:"gap"`
	Margin        int           `yaml:"margin"`
	Speed         int           `yaml:"speed"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
}

// FlappyTiming defines the target frame rate.
type FlappyTiming struct {
	FPS int `yaml:"fps"`
}

// FlappyAssets names the images the window frontend loads at startup.
// Paths are relative to the working directory.
type FlappyAssets struct {
	Dir        string `yaml:"dir"`
	Background string `yaml:"background"`
	Bird       string `yaml:"bird"`
	Pipe       string `yaml:"pipe"`
}

// StartY returns the bird's initial vertical center.
func (c FlappyConfig) StartY() float64 {
	return float64(c.Screen.Height / 2)
}

// SpawnX returns the center x of a freshly spawned pipe pair,
// which places its left edge just past the right side of the screen.
func (c FlappyConfig) SpawnX() int {
	return c.Screen.Width + c.Pipes.Width
}

// GapRange returns the inclusive bounds for the top edge of a pipe gap.
// Any value in the range keeps the whole gap at least Margin away from
// both the top and bottom of the screen.
func (c FlappyConfig) GapRange() (lo, hi int) {
	lo = c.Pipes.Margin
	hi = c.Screen.Height - c.Pipes.Margin - c.Pipes.Gap
	return lo, hi
}
