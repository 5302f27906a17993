package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bubble-pop/internal/core"
	"github.com/vovakirdan/bubble-pop/internal/registry"
	"github.com/vovakirdan/bubble-pop/internal/storage"
)

// helpRows is the number of rows under the game reserved for key help.
const helpRows = 1

// ScoreStore is the part of storage.Store the platform needs.
type ScoreStore interface {
	SaveScore(r storage.Result) (int64, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting the session.
type Resizer interface {
	Resize(w, h int)
}

// Options configures a Model beyond the game and runtime config.
type Options struct {
	Store    ScoreStore         // Nil disables score saving
	Logger   *log.Logger        // Nil discards logs
	Renderer *lipgloss.Renderer // Nil uses the default renderer
	Player   string             // Recorded with saved scores
	ShotDir  string             // Screenshot directory; empty uses ~/.bubblepop/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	render     *Renderer
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	sessionID  uuid.UUID
	scoreSaved bool // Whether the score has been saved for the current session
	board      *ScoreboardModel
	quitting   bool
}

// NewModel creates a new Bubble Tea model and starts a session of game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		render:     NewRenderer(opts.Renderer),
		opts:       opts,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		sessionID:  uuid.New(),
	}

	gameCfg := m.gameConfig()
	m.screen = core.NewScreen(gameCfg.ScreenW, gameCfg.ScreenH)
	game.Reset(gameCfg)
	m.gameState = game.State()
	return m
}

// gameConfig returns the runtime config the game sees: the terminal minus
// the help rows.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpRows, 1)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "session", m.sessionID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(TickMsg); ok {
		return m.handleTick(tick)
	}

	if m.board != nil {
		return m.updateBoard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}

	case core.ActionScores:
		board := NewScoreboardModel(m.opts.Store, m.opts.Renderer, m.game.ID(), m.config.ScreenW, m.config.ScreenH)
		m.board = &board
	}

	return m, nil
}

// updateBoard forwards input to the open scoreboard.
// The game keeps ticking underneath.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.applyResize(wsm)
	}

	board, cmd := m.board.Update(msg)
	switch {
	case board.Quitting():
		m.quitting = true
		return m, tea.Quit
	case board.Closed():
		m.board = nil
		return m, nil
	}
	m.board = &board
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.applyResize(msg)
	return m, nil
}

func (m *Model) applyResize(msg tea.WindowSizeMsg) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	gameCfg := m.gameConfig()
	m.screen.Resize(gameCfg.ScreenW, gameCfg.ScreenH)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(gameCfg.ScreenW, gameCfg.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(gameCfg)
		m.gameState = m.game.State()
	}
}

// restart begins a new session with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.sessionID = uuid.New()
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.logger.Debug("session restarted", "session", m.sessionID, "seed", m.config.Seed)
}

// handleTick runs one simulation step and schedules the next tick.
func (m Model) handleTick(_ TickMsg) (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if len(result.Popped) > 0 {
		m.logger.Debug("popped", "ids", result.Popped, "score", m.gameState.Score)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished session. Failures are logged, not fatal.
func (m *Model) saveScore() {
	m.logger.Info("field cleared", "session", m.sessionID, "score", m.gameState.Score, "ticks", m.gameState.Ticks)
	if m.opts.Store == nil || m.gameState.Score == 0 {
		return
	}

	_, err := m.opts.Store.SaveScore(storage.Result{
		SessionID: m.sessionID,
		GameID:    m.game.ID(),
		Player:    m.opts.Player,
		Score:     m.gameState.Score,
		Ticks:     m.gameState.Ticks,
	})
	if err != nil {
		m.logger.Error("could not save score", "err", err)
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ShotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".bubblepop", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)
	helpStyle := m.render.lg.NewStyle().Foreground(lipgloss.Color("241"))
	return m.render.RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Session returns the id of the current session.
func (m Model) Session() uuid.UUID {
	return m.sessionID
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program for game in the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
