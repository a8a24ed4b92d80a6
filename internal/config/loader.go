package config

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load decodes the embedded configuration and validates it.
func Load() (FlappyConfig, error) {
	return Parse(defaultFlappyYAML)
}

// Parse decodes a YAML document into a FlappyConfig.
// Unknown keys are rejected so typos surface instead of silently using zero values.
func Parse(data []byte) (FlappyConfig, error) {
	var cfg FlappyConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the constants describe a playable game.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		errs = append(errs, fmt.Errorf("bird size must be positive, got %dx%d", c.Bird.Width, c.Bird.Height))
	}
	if c.Pipes.Width <= 0 || c.Pipes.Height <= 0 {
		errs = append(errs, fmt.Errorf("pipe size must be positive, got %dx%d", c.Pipes.Width, c.Pipes.Height))
	}
	if c.Pipes.Gap <= 0 {
		errs = append(errs, fmt.Errorf("pipe gap must be positive, got %d", c.Pipes.Gap))
	}
	if c.Pipes.Margin < 0 {
		errs = append(errs, fmt.Errorf("pipe margin must not be negative, got %d", c.Pipes.Margin))
	}
	if lo, hi := c.GapRange(); hi < lo {
		errs = append(errs, fmt.Errorf("gap %d with margin %d does not fit a %d tall screen",
			c.Pipes.Gap, c.Pipes.Margin, c.Screen.Height))
	}
	if c.Pipes.Speed <= 0 {
		errs = append(errs, fmt.Errorf("pipe speed must be positive, got %d", c.Pipes.Speed))
	}
	if c.Pipes.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn interval must be positive, got %v", c.Pipes.SpawnInterval))
	}
	if c.Timing.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.Timing.FPS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
