package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/games/memory"
)

// MemorySelection is what the Memory mode picker returns.
type MemorySelection struct {
	TwoPlayer bool
	Tier      int // 1-based starting tier, one player only
}

// Apply writes the selection into the memory section of cfg.
func (s MemorySelection) Apply(cfg *config.MemoryConfig) {
	cfg.TwoPlayer = s.TwoPlayer
	if s.Tier > 0 {
		cfg.StartTier = s.Tier
	}
}

var memoryModes = []string{
	"One player",
	"Two players",
	"Select tier...",
}

// MemoryModeModel lets users choose between one and two players, and the
// starting tier of a one player run.
type MemoryModeModel struct {
	cursor       int
	tierCursor   int
	inTierSelect bool
	width        int
	height       int
	keys         KeyMap
	selection    MemorySelection
	choosing     bool
	quitting     bool
	back         bool
}

// NewMemoryModeModel creates the picker.
func NewMemoryModeModel(width, height int) MemoryModeModel {
	return MemoryModeModel{
		width:    width,
		height:   height,
		keys:     DefaultKeyMap(),
		choosing: true,
	}
}

// Init initializes the model.
func (m MemoryModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MemoryModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keys.MenuAction(msg)
		if m.inTierSelect {
			return m.handleTierKey(action)
		}
		return m.handleModeKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MemoryModeModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = core.Min(m.cursor+1, len(memoryModes)-1)
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			return m.choose(MemorySelection{})
		case 1:
			return m.choose(MemorySelection{TwoPlayer: true})
		default:
			m.inTierSelect = true
			m.tierCursor = 0
		}
	}
	return m, nil
}

func (m MemoryModeModel) handleTierKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.inTierSelect = false
	case MenuActionUp:
		m.tierCursor = core.Max(m.tierCursor-1, 0)
	case MenuActionDown:
		m.tierCursor = core.Min(m.tierCursor+1, len(memory.Tiers)-1)
	case MenuActionSelect:
		return m.choose(MemorySelection{Tier: m.tierCursor + 1})
	}
	return m, nil
}

func (m MemoryModeModel) choose(s MemorySelection) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = s
	return m, tea.Quit
}

// View renders the mode or tier list.
func (m MemoryModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	if m.inTierSelect {
		b.WriteString(centerText(menuTitleStyle.Render("SELECT TIER"), m.width))
		b.WriteString("\n\n")
		for i, size := range memory.Tiers {
			line := fmt.Sprintf("%2d. %dx%d, %d pairs", i+1, size.Cols, size.Rows, size.Rows*size.Cols/2)
			b.WriteString(centerText(menuLine(line, i == m.tierCursor), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText(menuTitleStyle.Render("M E M O R Y"), m.width))
		b.WriteString("\n\n")
		for i, mode := range memoryModes {
			b.WriteString(centerText(menuLine(mode, i == m.cursor), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("enter select • esc back • q quit"), m.width))
	return b.String()
}

func menuLine(text string, selected bool) string {
	if selected {
		return menuCursor.Render(fmt.Sprintf("> %-20s", text))
	}
	return menuItemStyle.Render(fmt.Sprintf("  %-20s", text))
}

// Selected returns the selection, or nil if the picker was left.
func (m MemoryModeModel) Selected() *MemorySelection {
	if m.choosing || m.quitting || m.back {
		return nil
	}
	return &m.selection
}

// RunMemoryModeSelector shows the picker. A nil selection means the user
// backed out.
func RunMemoryModeSelector(ctx context.Context, cfg core.RuntimeConfig) (*MemorySelection, error) {
	p := tea.NewProgram(NewMemoryModeModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil, nil
		}
		return nil, err
	}

	m, ok := finalModel.(MemoryModeModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
