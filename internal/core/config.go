package core

// RuntimeConfig contains settings the frontend passes to the simulation.
// Gameplay constants live in the config package; these only control pacing
// and randomness.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for pipe placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // Frontends seed from the wall clock
	}
}

// GameState represents the current state of a game.
// Returned by Step to communicate status to the frontend.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // A quit action was received; the frontend should stop its loop
}
