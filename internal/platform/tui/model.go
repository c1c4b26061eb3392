package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/stardrift-dev/stardrift/internal/core"
	"github.com/stardrift-dev/stardrift/internal/game"
	"github.com/stardrift-dev/stardrift/internal/storage"
)

// Model is the Bubble Tea model running an exploration session.
type Model struct {
	game       game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	keyMapper  *KeyMapper
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// A galaxy needs a seed; pick a throwaway one if none was given
	if cfg.Seed == "" {
		cfg.Seed = fmt.Sprintf("galaxy-%d", time.Now().UnixNano())
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The galaxy itself is not
// tied to the viewport, so resizing only grows or shrinks the screen
// buffer; the session continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Discovery != nil {
		m.persistDiscovery(result.Discovery)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// persistDiscovery journals a first visit. Persistence is best effort;
// the session continues on failure.
func (m Model) persistDiscovery(d *core.Discovery) {
	if m.store == nil {
		return
	}
	_, err := m.store.RecordDiscovery(storage.DiscoveryEntry{
		GalaxySeed: m.config.Seed,
		X:          d.X,
		Y:          d.Y,
		Name:       d.Name,
		Class:      d.Class,
		Planets:    d.Planets,
		Starbase:   d.Starbase,
	})
	if err != nil && m.logger != nil {
		m.logger.Warn("could not journal discovery", "system", d.Name, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
