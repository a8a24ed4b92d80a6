package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/platform/window"
)

func runWindow(_ *cobra.Command, _ []string) error {
	game, _, err := newGame()
	if err != nil {
		return err
	}

	// Missing art is fatal before the window opens.
	set, err := assets.Load(game.Config().Assets)
	if err != nil {
		return err
	}

	w, err := window.New(game, set, logger)
	if err != nil {
		return err
	}
	return window.Run(w)
}
