// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"time"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Phase is the round state: simulating or waiting for a restart.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "Active"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game implements the Flappy Bird game logic.
// It owns all mutable state; frontends feed it one InputFrame per tick.
type Game struct {
	cfg       config.FlappyConfig
	clock     core.Clock
	gen       *Generator
	bird      Bird
	pipes     []Pipe        // Active pairs in spawn order
	score     int           // Current score
	phase     Phase         // Active or GameOver
	lastSpawn time.Duration // Clock reading of the last spawn (or restart)
	tickCount int           // Number of simulated ticks since the round began
}

// New creates a game ready to play. The clock supplies spawn timing and
// rng supplies gap positions.
func New(cfg config.FlappyConfig, clock core.Clock, rng Rand) *Game {
	g := &Game{
		cfg:   cfg,
		clock: clock,
		gen:   NewGenerator(cfg, rng),
		bird:  NewBird(cfg),
		pipes: make([]Pipe, 0, 8),
	}
	g.Reset()
	return g
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset starts a new round: bird back to the start, no pipes, zero score,
// and the spawn timer measured from now.
func (g *Game) Reset() {
	g.bird.Reset()
	g.pipes = g.pipes[:0]
	g.score = 0
	g.phase = PhaseActive
	g.lastSpawn = g.clock.Now()
	g.tickCount = 0
}

// Step advances the game by one tick.
// Jump is honored only while Active, Restart only after game over, Quit always.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	if g.phase == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.Reset()
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if in.Has(core.ActionJump) {
		g.bird.Jump(g.cfg.Physics.JumpVelocity)
	}
	g.bird.Integrate(g.cfg.Physics.Gravity)

	if p, last, ok := g.gen.MaybeSpawn(g.clock.Now(), g.lastSpawn); ok {
		g.pipes = append(g.pipes, p)
		g.lastSpawn = last
	}

	g.pipes = MovePipes(g.pipes, g.cfg.Pipes.Speed)

	if Collides(g.bird.Bounds(), g.pipes, g.cfg.Screen.Height) {
		g.phase = PhaseGameOver
	}

	// Scoring still runs on the frame that ends the round.
	g.score += ScorePasses(g.cfg.Bird.X, g.pipes)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Phase returns the current round phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird {
	return g.bird
}

// Pipes returns the active pairs in spawn order.
// The slice is owned by the game and must not be modified.
func (g *Game) Pipes() []Pipe {
	return g.pipes
}

// Score returns the number of pairs passed this round.
func (g *Game) Score() int {
	return g.score
}

// Ticks returns the number of simulated ticks this round.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Config returns the constants the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
