package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewResults
)

// SessionModel manages the full flow of one terminal: menu, game and results.
// It is the top-level model for local play and for each SSH connection.
type SessionModel struct {
	id       string
	username string
	config   core.RuntimeConfig
	results  *Results
	logger   *log.Logger
	view     sessionView
	menu     MenuModel
	game     *GameModel
	table    ResultsModel
	quitting bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	id := uuid.NewString()
	results := NewResults()

	return SessionModel{
		id:       id,
		username: username,
		config:   cfg,
		results:  results,
		logger:   logger.With("session", id, "user", username),
		menu:     NewMenuModel(cfg, results),
	}
}

// StartGame switches the session straight into a variant, skipping the menu.
func (m SessionModel) StartGame(gameID string) (SessionModel, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return m, err
	}
	gm := NewGameModel(game, m.config, m.results, m.logger)
	m.game = &gm
	m.view = viewGame
	return m, nil
}

// ID returns the session's unique identifier.
func (m SessionModel) ID() string {
	return m.id
}

// Results returns the games finished in this session.
func (m SessionModel) Results() *Results {
	return m.results
}

// Init initializes the current view.
func (m SessionModel) Init() tea.Cmd {
	if m.view == viewGame && m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active view and handles transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewResults:
		return m.updateResults(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsResults():
		m.table = NewResultsModel(m.results, m.config.ScreenW, m.config.ScreenH)
		m.view = viewResults
		return m, m.table.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		started, err := m.StartGame(id)
		if err != nil {
			m.logger.Error("cannot start game", "game", id, "err", err)
			m.menu = NewMenuModel(m.config, m.results)
			return m, nil
		}
		return started, started.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = &gm
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		m.logger.Debug("back to menu", "game", m.game.game.ID())
		m.game = nil
		m.menu = NewMenuModel(m.config, m.results)
		m.view = viewMenu
		// The pending tick is dropped by the menu and by later games.
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.table.Update(msg)
	if rm, ok := next.(ResultsModel); ok {
		m.table = rm
	}

	switch {
	case m.table.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.table.IsGoingBack():
		m.menu = NewMenuModel(m.config, m.results)
		m.view = viewMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the active view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewResults:
		return m.table.View()
	default:
		return m.menu.View()
	}
}

// Run plays gameID in the local terminal. Going back from the game opens the
// variant menu.
func Run(gameID string, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewSessionModel(cfg, "local", logger).StartGame(gameID)
	if err != nil {
		return err
	}
	return runProgram(model)
}

// RunMenu opens the variant menu in the local terminal.
func RunMenu(cfg core.RuntimeConfig, logger *log.Logger) error {
	return runProgram(NewSessionModel(cfg, "local", logger))
}

func runProgram(model SessionModel) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
