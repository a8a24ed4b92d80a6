package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play in the current terminal. The 800x600 playfield is scaled to the
terminal size; no image files are needed.

Controls:
  Space/Up/W  - Flap
  R           - Restart (after game over)
  Q/Esc       - Quit`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func runTerm(_ *cobra.Command, _ []string) error {
	game, rt, err := newGame()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(game, rt, width, height, logger)
}
