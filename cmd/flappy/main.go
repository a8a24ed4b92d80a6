// flappy is a side-scrolling arcade game: steer a bird through gaps in
// an endless stream of pipes.
//
// Usage:
//
//	flappy          - Play in a window (needs ./assets)
//	flappy term     - Play in the terminal
//	flappy rules    - Print the gameplay constants
//
// Controls: Space to flap, R to restart after game over, Esc/Q to quit.
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "flappy",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird - fly through the pipes",
	Long: `Flappy Bird in a desktop window or your terminal.

Gravity pulls the bird down; each flap sends it back up. Pipes scroll in
from the right every 1.5 seconds. Touch a pipe, the ceiling or the floor
and the round is over.

Controls:
  Space    - Flap
  R        - Restart (after game over)
  Esc/Q    - Quit

Examples:
  flappy
  flappy term
  flappy rules`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

func init() {
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(rulesCmd)
}

// newGame loads the compiled-in constants and builds a game on the wall clock.
func newGame() (*flappy.Game, core.RuntimeConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, core.RuntimeConfig{}, err
	}

	rt := core.DefaultConfig()
	rt.TickRate = cfg.Timing.FPS
	rt.Seed = time.Now().UnixNano()

	logger.Debug("new game", "seed", rt.Seed, "tps", rt.TickRate)
	game := flappy.New(cfg, core.NewWallClock(), rand.New(rand.NewSource(rt.Seed)))
	return game, rt, nil
}
