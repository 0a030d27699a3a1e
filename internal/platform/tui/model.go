package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

// Env is what every screen of a session shares.
type Env struct {
	Services registry.Services
	History  *storage.Store // nil disables score history and the scoreboard
}

func (e Env) withDefaults() Env {
	e.Services = e.Services.WithDefaults()
	return e
}

// Model is the Bubble Tea model for one running game.
type Model struct {
	game       registry.Game
	env        Env
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	gameState  core.GameState
	recorded   bool // result of the current round already saved
	embedded   bool // inside a session: Back returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for game. The game is reset by Init.
func NewModel(game registry.Game, env Env, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		env:    env.withDefaults(),
		screen: core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// boardHeight leaves the last row for the help line.
func boardHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init starts the round and the redraw ticker.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.Stop()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.game.Stop()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.config.Seed = 0
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.game.Handle(a)
	}
	return m, nil
}

// handleTick samples the engine and records a finished round once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.gameState = m.game.State()

	next := tickCmd(m.config.FPS)
	if m.gameState.GameOver && !m.recorded {
		m.recorded = true
		return m, tea.Batch(next, m.recordCmd(m.gameState))
	}
	return m, next
}

// recordCmd saves the score to the history and publishes the result.
// Both are best effort.
func (m Model) recordCmd(gs core.GameState) tea.Cmd {
	gameID := m.game.ID()
	env := m.env
	return func() tea.Msg {
		logger := env.Services.Logger

		if env.History != nil && gs.Score > 0 {
			if _, err := env.History.SaveScore(gameID, gs.Score); err != nil {
				logger.Warn("cannot save score", "game", gameID, "error", err)
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		err := env.Services.Results.Publish(ctx, core.Result{
			GameID:   gameID,
			Score:    gs.Score,
			Outcome:  gs.Outcome,
			Winner:   gs.Winner,
			Finished: time.Now().UTC(),
		})
		if err != nil {
			logger.Warn("cannot publish result", "game", gameID, "error", err)
		}
		return nil
	}
}

// saveScreenshot writes the current frame as text under ~/.arcade/screenshots.
func (m Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir, err := storage.ExpandHome(filepath.Join("~", ".arcade", "screenshots"))
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err == nil {
		name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
		err = os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
	}
	if err != nil {
		m.env.Services.Logger.Warn("cannot save screenshot", "error", err)
	}
}

// View renders the current snapshot and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// IsQuitting reports whether the user asked to leave the arcade.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the user quits or ctx ends.
func Run(ctx context.Context, game registry.Game, env Env, cfg core.RuntimeConfig) error {
	defer game.Stop()

	p := tea.NewProgram(
		NewModel(game, env, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
