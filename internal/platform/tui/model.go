package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/dmalakhov/flapterm/internal/core"
	"github.com/dmalakhov/flapterm/internal/flappy"
	"github.com/dmalakhov/flapterm/internal/storage"
)

// Model is the Bubble Tea model driving one game session. It owns the
// frame loop: one simulation step per tick, render after the step.
// Input events call straight into the session's single flap entry point
// as they arrive, so a burst of events between frames is processed
// eagerly, each against the mode current at that moment.
type Model struct {
	game      *flappy.Game
	screen    *core.Screen
	store     *storage.Store
	rcfg      core.RuntimeConfig
	keys      KeyMap
	logger    *log.Logger
	quitting  bool
	persisted bool // Whether the current game over has been written out
}

// NewModel creates a model for the given session. store and logger may be
// nil; persistence is best-effort throughout.
func NewModel(game *flappy.Game, store *storage.Store, rcfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	// Seed the in-memory best score from storage. A failed read just
	// means the session starts from zero.
	if store != nil {
		if best, err := store.BestScore(storage.GameID); err != nil {
			logger.Warn("could not read best score", "error", err)
		} else {
			game.SeedBest(best)
		}
	}

	return Model{
		game:   game,
		screen: core.NewScreen(rcfg.ScreenW, rcfg.ScreenH),
		store:  store,
		rcfg:   rcfg,
		keys:   DefaultKeyMap(),
		logger: logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rcfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// A pointer press anywhere on the play surface is the same
		// impulse as the keyboard binding.
		if msg.Action == tea.MouseActionPress {
			m.game.Flap()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.rcfg.ScreenW = msg.Width
		m.rcfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Flap):
		m.game.Flap()
		return m, nil
	}

	return m, nil
}

// handleTick runs one simulation frame and persists the best score on the
// transition into game over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step()

	if m.game.Mode() == flappy.ModeGameOver {
		if !m.persisted {
			m.persistScore()
			m.persisted = true
		}
	} else {
		m.persisted = false
	}

	return m, tickCmd(m.rcfg.TickRate)
}

// persistScore writes the finished session to storage. Failures are logged
// and ignored: the in-memory best stays correct for this session and
// gameplay never blocks on I/O.
func (m *Model) persistScore() {
	if m.store == nil {
		return
	}

	score := m.game.Score()
	if score > 0 {
		if _, err := m.store.SaveScore(storage.GameID, score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}

	if _, err := m.store.UpdateBest(storage.GameID, m.game.Best()); err != nil {
		m.logger.Warn("could not persist best score", "error", err)
	}
}

// saveScreenshot saves the current frame to a file.
func (m *Model) saveScreenshot() {
	drawFrame(m.screen, m.game.Snapshot(), m.game.Config())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not resolve home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".flapterm", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.game.Snapshot(), m.game.Config())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(game *flappy.Game, store *storage.Store, rcfg core.RuntimeConfig) error {
	model := NewModel(game, store, rcfg, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer presses map to the flap input
	)

	_, err := p.Run()
	return err
}
