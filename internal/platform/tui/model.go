package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Model is the Bubble Tea model for playing in a terminal.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	tickRate   int
	quitting   bool
}

// NewModel creates a Bubble Tea model drawing the game into a width x height terminal.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, width, height int) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(width, core.Max(height-helpHeight, 0)),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		tickRate:   cfg.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if action := m.keys.MapKey(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The world keeps its own coordinates; only the projection changes.
		m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *flappy.Game, cfg core.RuntimeConfig, width, height int, logger *log.Logger) error {
	logger.Info("starting terminal session", "width", width, "height", height, "tps", cfg.TickRate)

	p := tea.NewProgram(
		NewModel(game, cfg, width, height),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	logger.Info("terminal session ended", "score", game.Score(), "phase", game.Phase())
	return nil
}
