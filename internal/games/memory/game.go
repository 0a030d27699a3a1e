// Package memory implements the card-pair matching game for one player
// (tier progression) or two players (turn-based, victory counters).
package memory

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/games/kit"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// ID is the registry and storage identifier.
const ID = "memory"

func init() {
	registry.Register(ID, func(svc registry.Services) registry.Game {
		return New(svc)
	})
}

// Game runs memory rounds. It has no tick loop: taps drive the state and
// timers settle revealed pairs.
type Game struct {
	svc    registry.Services
	cfg    config.MemoryConfig
	state  *engine.Cell[State]
	timers *engine.Timers

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a game. Reset deals the first grid.
func New(svc registry.Services) *Game {
	svc = svc.WithDefaults()
	cfg := svc.Config.Memory
	rng := rand.New(rand.NewSource(1))
	g := &Game{
		svc:    svc,
		cfg:    cfg,
		timers: engine.NewTimers(svc.Clock),
		rng:    rng,
	}
	g.state = engine.NewCell(NewRound(cfg.StartTier-1, cfg.TwoPlayer, g.players(), rng))
	return g
}

func (g *Game) players() [2]string {
	p := [2]string{"Player 1", "Player 2"}
	for i := 0; i < len(g.cfg.Players) && i < 2; i++ {
		p[i] = g.cfg.Players[i]
	}
	return p
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return "Memory" }

// Reset cancels pending resolutions and deals the starting tier again.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.timers.CancelAll()

	g.mu.Lock()
	g.rng = rand.New(rand.NewSource(kit.Seed(cfg)))
	round := NewRound(g.cfg.StartTier-1, g.cfg.TwoPlayer, g.players(), g.rng)
	g.mu.Unlock()

	if round.TwoPlayer {
		round.Victories = g.headToHead(round.Players)
	}
	g.state.Store(round)
}

// headToHead loads how often each player has beaten the other.
func (g *Game) headToHead(p [2]string) [2]int {
	return [2]int{
		kit.LoadVictories(g.svc.Wins, g.svc.Logger, core.VictoryKey(g.cfg.GameName, p[0], p[1])),
		kit.LoadVictories(g.svc.Wins, g.svc.Logger, core.VictoryKey(g.cfg.GameName, p[1], p[0])),
	}
}

// Stop cancels pending resolutions.
func (g *Game) Stop() {
	g.timers.CancelAll()
}

// Tap reveals cell i and, on the second card, schedules the resolution.
func (g *Game) Tap(i int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var before State
	next := g.state.Update(func(s State) State {
		before = s
		return Tap(s, i)
	})
	if before.Busy || !next.Busy {
		return
	}

	delay := g.cfg.MismatchDelay
	if IsMatch(next) {
		delay = g.cfg.MatchDelay
	}
	g.timers.After(delay, g.resolve)
}

func (g *Game) resolve() {
	next := g.state.Update(Resolve)

	switch next.Status {
	case StatusLevelCleared:
		g.timers.After(g.cfg.LevelPause, g.nextTier)
	case StatusWon:
		key := core.VictoryKey(g.cfg.GameName, next.Winner, Opponent(next))
		if n := kit.AddVictory(g.svc.Wins, g.svc.Logger, key); n > 0 {
			g.state.Update(func(s State) State {
				s.Victories[winnerIndex(s)] = n
				return s
			})
		}
	}
}

func winnerIndex(s State) int {
	if s.Winner == s.Players[1] {
		return 1
	}
	return 0
}

func (g *Game) nextTier() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state.Update(func(s State) State {
		if s.Status != StatusLevelCleared {
			return s
		}
		return NewRound(s.Tier+1, false, s.Players, g.rng)
	})
}

// Handle moves the cursor with arrows and taps it with Confirm.
func (g *Game) Handle(a core.Action) {
	if d, ok := a.Direction(); ok {
		g.state.Update(func(s State) State { return MoveCursor(s, d) })
		return
	}
	if a == core.ActionConfirm {
		g.Tap(g.state.Load().Cursor)
	}
}

// Current returns the latest snapshot.
func (g *Game) Current() State {
	return g.state.Load()
}

func (g *Game) Snapshot() any { return g.state.Load() }

func (g *Game) Watch(buf int) (<-chan any, func()) {
	return engine.Watch(g.state, buf)
}

// Timers exposes pending resolutions for inspection.
func (g *Game) Timers() *engine.Timers {
	return g.timers
}

func (g *Game) State() core.GameState {
	s := g.state.Load()
	gs := core.GameState{
		Score:    core.Max(Pairs(s, 1), Pairs(s, 2)),
		GameOver: s.GameOver,
		Status:   string(s.Status),
	}
	switch s.Status {
	case StatusWon:
		gs.Outcome = s.Winner + " wins"
		gs.Winner = s.Winner
	case StatusDraw:
		gs.Outcome = "Draw"
	case StatusComplete:
		gs.Outcome = fmt.Sprintf("All tiers cleared in %d moves", s.Moves)
	}
	return gs
}

const cellW = 4

// Render draws the card grid and the turn or move counter.
func (g *Game) Render(dst *core.Screen) {
	s := g.state.Load()

	left := fmt.Sprintf("Memory  Level %d/%d", s.Tier+1, len(Tiers))
	right := fmt.Sprintf("Moves: %d", s.Moves)
	if s.TwoPlayer {
		left = fmt.Sprintf("Memory  Turn: %s  Wins %d-%d", s.Players[s.CurrentPlayer-1], s.Victories[0], s.Victories[1])
		right = fmt.Sprintf("%s %d : %d %s", s.Players[0], Pairs(s, 1), Pairs(s, 2), s.Players[1])
	}
	kit.HUD(dst, left, right)

	b, ok := kit.Layout(dst, s.Size.Cols, s.Size.Rows, cellW)
	if !ok {
		kit.TooSmall(dst, kit.Need(s.Size.Cols, s.Size.Rows, cellW))
		return
	}
	b.Frame(dst, core.ColorGray)

	for i, v := range s.Grid {
		p := core.Pt(i%s.Size.Cols, i/s.Size.Cols)
		label, color := " ▒▒ ", core.ColorGray
		switch {
		case s.Matched[i]:
			label = fmt.Sprintf(" %2d ", v)
			color = core.ColorGreen
			if s.MatchedBy[i] == 2 {
				color = core.ColorRed
			}
		case s.Revealed[i]:
			label, color = fmt.Sprintf(" %2d ", v), core.ColorBrightWhite
		}
		if i == s.Cursor {
			label = "[" + label[1:len(label)-1] + "]"
		}
		b.Text(dst, p, label, color)
	}

	switch s.Status {
	case StatusLevelCleared:
		kit.Overlay(dst, "Level cleared!", "Next grid coming up")
	case StatusComplete:
		kit.Overlay(dst, "All levels cleared!", fmt.Sprintf("Moves: %d", s.Moves))
	case StatusWon:
		kit.Overlay(dst, s.Winner+" wins!", fmt.Sprintf("Victories over %s: %d", Opponent(s), s.Victories[winnerIndex(s)]))
	case StatusDraw:
		kit.Overlay(dst, "Draw", "Press R to play again")
	}
}
