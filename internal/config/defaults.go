package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
// It mirrors defaults/flappy.yaml and serves tests that need the
// constants without decoding.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: FlappyScreen{
			Width:  800,
			Height: 600,
		},
		Physics: FlappyPhysics{
			Gravity:      0.25,
			JumpVelocity: -6.0,
		},
		Bird: FlappyBird{
			X:      100,
			Width:  32,
			Height: 32,
		},
		Pipes: FlappyPipes{
			Width:         50,
			Height:        400,
			Gap:           150,
			Margin:        150,
			Speed:         3,
			SpawnInterval: 1500 * time.Millisecond,
		},
		Timing: FlappyTiming{
			FPS: 60,
		},
		Assets: FlappyAssets{
			Dir:        "assets",
			Background: "background.png",
			Bird:       "bird.png",
			Pipe:       "pipe.png",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
