// Package snake implements a wraparound Snake on a square board.
package snake

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/games/kit"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// ID is the registry and storage identifier.
const ID = "snake"

func init() {
	registry.Register(ID, func(svc registry.Services) registry.Game {
		return New(svc)
	})
}

// Game runs Snake rounds on a fixed-delay loop.
type Game struct {
	svc   registry.Services
	rules Rules
	state *engine.Cell[State]
	loop  *engine.Loop

	mu      sync.Mutex
	pending core.Point
	rng     *rand.Rand
}

// New creates a stopped game. Reset starts a round.
func New(svc registry.Services) *Game {
	svc = svc.WithDefaults()
	rules := RulesFrom(svc.Config.Snake)
	g := &Game{
		svc:     svc,
		rules:   rules,
		state:   engine.NewCell(Initial(rules, 0)),
		pending: core.DirRight,
		rng:     rand.New(rand.NewSource(1)),
	}
	g.loop = engine.NewLoop(svc.Clock, g.interval, g.Step)
	return g
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return "Snake" }

// Reset starts a fresh round with the stored high score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loop.Stop()

	initial := Initial(g.rules, kit.LoadHighScore(g.svc.Scores, g.svc.Logger, ID))

	g.mu.Lock()
	g.pending = initial.Direction
	g.rng = rand.New(rand.NewSource(kit.Seed(cfg)))
	g.mu.Unlock()

	g.state.Store(initial)
	g.loop.Start()
}

// Stop halts the loop.
func (g *Game) Stop() {
	g.loop.Stop()
}

// SetDirection queues a direction for the next tick. The exact opposite
// of the current direction is rejected.
func (g *Game) SetDirection(d core.Point) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if d == g.state.Load().Direction.Neg() {
		return
	}
	g.pending = d
}

// Handle maps arrow actions onto SetDirection.
func (g *Game) Handle(a core.Action) {
	if d, ok := a.Direction(); ok {
		g.SetDirection(d)
	}
}

func (g *Game) interval() time.Duration {
	return g.state.Load().Interval
}

// Step runs one tick. The loop calls it; tests may call it directly.
func (g *Game) Step() {
	g.mu.Lock()
	dir := g.pending
	rng := g.rng
	g.mu.Unlock()

	if g.state.Load().GameOver {
		return
	}

	var before State
	next := g.state.Update(func(s State) State {
		before = s
		return Tick(s, dir, g.rules, rng)
	})

	if next.GameOver && next.HighScore > before.HighScore {
		kit.SaveHighScore(g.svc.Scores, g.svc.Logger, ID, next.HighScore)
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

// Loop exposes the tick loop for inspection.
func (g *Game) Loop() *engine.Loop {
	return g.loop
}

// State returns the platform summary.
func (g *Game) State() core.GameState {
	s := g.state.Load()
	gs := core.GameState{
		Score:     s.Score,
		HighScore: core.Max(s.HighScore, s.Score),
		GameOver:  s.GameOver,
		Status:    string(s.Status),
	}
	if s.GameOver {
		gs.Outcome = fmt.Sprintf("Length %d", len(s.Body))
	}
	return gs
}

// Render draws the board, HUD and game-over overlay.
func (g *Game) Render(dst *core.Screen) {
	s := g.state.Load()

	kit.HUD(dst, "Snake",
		fmt.Sprintf("Score: %d  Best: %d  Speed: %d", s.Score, core.Max(s.HighScore, s.Score), s.Speed.Milliseconds()))

	b, ok := kit.Layout(dst, g.rules.BoardSize, g.rules.BoardSize, 2)
	if !ok {
		kit.TooSmall(dst, kit.Need(g.rules.BoardSize, g.rules.BoardSize, 2))
		return
	}
	b.Frame(dst, core.ColorGray)

	b.Set(dst, s.Food, '●', core.ColorRed)
	for i := len(s.Body) - 1; i >= 0; i-- {
		if i == 0 {
			b.Set(dst, s.Body[i], '█', core.ColorBrightGreen)
		} else {
			b.Set(dst, s.Body[i], '▓', core.ColorGreen)
		}
	}

	if s.GameOver {
		kit.Overlay(dst, "Game Over", "Press R to restart")
	}
}
