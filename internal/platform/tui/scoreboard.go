package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/games/memory"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

const (
	historyLimit   = 50
	recordsWidth   = 28 // best and victories panel
	wideScoreboard = 76
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	bestStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevGame, k.NextGame, k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		NextGame: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev game")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// gameRecord is everything the scoreboard shows for one game.
type gameRecord struct {
	history []storage.ScoreEntry
	best    int
	wins    []storage.Counter // victory counters, memory only
}

// loadRecord reads a game's history and stored counters. Failures are
// logged and leave the affected part empty.
func loadRecord(env Env, gameID string) gameRecord {
	var rec gameRecord
	logger := env.Services.Logger

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if env.History != nil {
		history, err := env.History.TopScores(gameID, historyLimit)
		if err != nil {
			logger.Warn("cannot load scores", "game", gameID, "error", err)
		}
		rec.history = history
	}

	best, err := env.Services.Scores.HighScore(ctx, core.HighScoreKey(gameID))
	if err != nil {
		logger.Warn("cannot load high score", "game", gameID, "error", err)
	}
	rec.best = best

	if gameID == memory.ID && env.History != nil {
		all, err := env.History.AllVictories(ctx)
		if err != nil {
			logger.Warn("cannot load victories", "game", gameID, "error", err)
		}
		prefix := env.Services.Config.Memory.GameName + "_"
		for _, c := range all {
			if strings.HasPrefix(c.Key, prefix) {
				rec.wins = append(rec.wins, storage.Counter{Key: strings.TrimPrefix(c.Key, prefix), Value: c.Value})
			}
		}
	}
	return rec
}

// ScoreboardModel shows per-game history, the stored best and, for
// Memory, the head-to-head victory counters.
type ScoreboardModel struct {
	env      Env
	games    []registry.GameInfo
	selected int
	records  map[string]gameRecord
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates the scoreboard and loads the first game.
func NewScoreboardModel(env Env, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		env:     env.withDefaults(),
		games:   registry.List(),
		records: make(map[string]gameRecord),
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = newScoreTable(width, height)
	m.selectGame(0)
	return m
}

func newScoreTable(width, height int) table.Model {
	dateW := 14
	if width >= wideScoreboard {
		dateW = 20
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Played", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(core.Max(height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// selectGame moves to game i, loading its record the first time.
func (m *ScoreboardModel) selectGame(i int) {
	if len(m.games) == 0 {
		return
	}
	m.selected = core.Mod(i, len(m.games))
	id := m.games[m.selected].ID
	rec, ok := m.records[id]
	if !ok {
		rec = loadRecord(m.env, id)
		m.records[id] = rec
	}

	rows := make([]table.Row, len(rec.history))
	for i, e := range rec.history {
		rows[i] = table.Row{strconv.Itoa(i + 1), strconv.Itoa(e.Score), e.CreatedAt.Local().Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) current() (registry.GameInfo, gameRecord) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, gameRecord{}
	}
	g := m.games[m.selected]
	return g, m.records[g.ID]
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.selectGame(m.selected + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.selectGame(m.selected - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.width, m.height)
		m.selectGame(m.selected)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	game, rec := m.current()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("S C O R E S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	history := emptyStyle.Render(fmt.Sprintf("No %s rounds recorded yet.", game.Title))
	if len(rec.history) > 0 {
		history = m.table.View()
	}
	historyPanel := panelStyle.Render(history)
	recordsPanel := panelStyle.Width(recordsWidth).Render(recordsView(rec))

	if m.width >= wideScoreboard {
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, historyPanel, " ", recordsPanel), m.width))
	} else {
		b.WriteString(centerText(lipgloss.JoinVertical(lipgloss.Left, recordsPanel, historyPanel), m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(menuHintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the game strip, collapsing to "< title >" when too wide.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return emptyStyle.Render("no games registered")
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.selected {
			parts[i] = activeTabStyle.Render(g.Title)
		} else {
			parts[i] = tabStyle.Render(g.Title)
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(strip) > m.width-2 {
		return activeTabStyle.Render("< " + m.games[m.selected].Title + " >")
	}
	return strip
}

func recordsView(rec gameRecord) string {
	var b strings.Builder
	if rec.best > 0 {
		b.WriteString(bestStyle.Render(fmt.Sprintf("Best  %d", rec.best)))
	} else {
		b.WriteString(emptyStyle.Render("No best yet"))
	}
	if len(rec.history) > 0 {
		total := 0
		for _, e := range rec.history {
			total += e.Score
		}
		fmt.Fprintf(&b, "\nTop %d avg  %.1f", len(rec.history), float64(total)/float64(len(rec.history)))
	}
	if len(rec.wins) > 0 {
		b.WriteString("\n\nVictories")
		for _, w := range rec.wins {
			fmt.Fprintf(&b, "\n%-20s %3d", strings.Replace(w.Key, "vs", " vs ", 1), w.Value)
		}
	}
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(ctx context.Context, env Env, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(env, width, height), tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return false, nil
		}
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
