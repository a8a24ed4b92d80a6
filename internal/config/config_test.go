package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadMatchesDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig() disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultFlappyConfig())
	}
}

func TestParseEmbedded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("Gravity = %v, expected 0.25", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpVelocity != -6 {
		t.Errorf("JumpVelocity = %v, expected -6", cfg.Physics.JumpVelocity)
	}
	if cfg.Pipes.SpawnInterval != 1500*time.Millisecond {
		t.Errorf("SpawnInterval = %v, expected 1.5s", cfg.Pipes.SpawnInterval)
	}
	if cfg.Pipes.Gap != 150 {
		t.Errorf("Gap = %d, expected 150", cfg.Pipes.Gap)
	}
}

func TestLoadRejectsBadDocument(t *testing.T) {
	orig := defaultFlappyYAML
	t.Cleanup(func() { defaultFlappyYAML = orig })

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "gap wider than the playable band",
			yaml:    strings.Replace(string(orig), "gap: 150", "gap: 400", 1),
			wantErr: "does not fit",
		},
		{
			name:    "not yaml",
			yaml:    "screen: [",
			wantErr: "failed to parse",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defaultFlappyYAML = []byte(tc.yaml)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Load() error = %q, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultFlappyConfig()

	if cfg.StartY() != 300 {
		t.Errorf("StartY() = %v, expected 300", cfg.StartY())
	}
	if cfg.SpawnX() != 850 {
		t.Errorf("SpawnX() = %d, expected 850", cfg.SpawnX())
	}
	lo, hi := cfg.GapRange()
	if lo != 150 || hi != 300 {
		t.Errorf("GapRange() = (%d, %d), expected (150, 300)", lo, hi)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown key",
			yaml:    "screen:\n  width: 800\n  height: 600\n  depth: 3\n",
			wantErr: "failed to parse",
		},
		{
			name:    "bad duration",
			yaml:    "pipes:\n  spawn_interval: soon\n",
			wantErr: "failed to parse",
		},
		{
			name:    "empty document",
			yaml:    "timing:\n  fps: 60\n",
			wantErr: "screen size must be positive",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Parse() error = %q, expected it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FlappyConfig)
		wantErr string
	}{
		{"defaults", func(*FlappyConfig) {}, ""},
		{"gap too tall", func(c *FlappyConfig) { c.Pipes.Gap = 400 }, "does not fit"},
		{"negative margin", func(c *FlappyConfig) { c.Pipes.Margin = -1 }, "margin must not be negative"},
		{"zero speed", func(c *FlappyConfig) { c.Pipes.Speed = 0 }, "pipe speed"},
		{"zero interval", func(c *FlappyConfig) { c.Pipes.SpawnInterval = 0 }, "spawn interval"},
		{"zero fps", func(c *FlappyConfig) { c.Timing.FPS = 0 }, "fps"},
		{"no bird", func(c *FlappyConfig) { c.Bird.Width = 0 }, "bird size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}
