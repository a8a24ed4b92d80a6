package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the gameplay constants",
	Long:  `Shows the constants compiled into this build.`,
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

var rulesYAML bool

func init() {
	rulesCmd.Flags().BoolVar(&rulesYAML, "yaml", false, "Print the embedded YAML document instead of the table")
}

func runRules(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rulesYAML {
		_, err := out.Write(config.DefaultYAML())
		return err
	}
	lo, hi := cfg.GapRange()

	rows := []struct {
		name  string
		value string
	}{
		{"Screen", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height)},
		{"Frame rate", fmt.Sprintf("%d fps", cfg.Timing.FPS)},
		{"Gravity", fmt.Sprintf("%g px/frame²", cfg.Physics.Gravity)},
		{"Jump velocity", fmt.Sprintf("%g px/frame", cfg.Physics.JumpVelocity)},
		{"Bird", fmt.Sprintf("%dx%d at x=%d", cfg.Bird.Width, cfg.Bird.Height, cfg.Bird.X)},
		{"Pipe", fmt.Sprintf("%dx%d", cfg.Pipes.Width, cfg.Pipes.Height)},
		{"Pipe speed", fmt.Sprintf("%d px/frame", cfg.Pipes.Speed)},
		{"Gap", fmt.Sprintf("%d px, top edge in [%d, %d]", cfg.Pipes.Gap, lo, hi)},
		{"Spawn interval", cfg.Pipes.SpawnInterval.String()},
		{"Assets", cfg.Assets.Dir},
	}

	// Calculate column width
	maxLen := 0
	for _, r := range rows {
		if len(r.name) > maxLen {
			maxLen = len(r.name)
		}
	}

	for _, r := range rows {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, r.name, r.value)
	}
	return nil
}
