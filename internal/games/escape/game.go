// Package escape implements Escape: steer a light around a wraparound
// board, collect sparks and keep away from the shadows chasing it.
package escape

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
const ID = "escape"

func init() {
	registry.Register(ID, func(svc registry.Services) registry.Game {
		return New(svc)
	})
}

// Game runs Escape rounds on a fixed-delay loop.
type Game struct {
	svc   registry.Services
	rules Rules
	state *engine.Cell[State]
	loop  *engine.Loop

	mu  sync.Mutex
	dir core.Point
	rng *rand.Rand
}

// New creates a stopped game. Reset starts a round.
func New(svc registry.Services) *Game {
	svc = svc.WithDefaults()
	g := &Game{
		svc:   svc,
		rules: RulesFrom(svc.Config.Escape),
		state: engine.NewCell(Initial(0)),
		dir:   core.DirRight,
		rng:   rand.New(rand.NewSource(1)),
	}
	g.loop = engine.NewLoop(svc.Clock, func() time.Duration { return g.rules.Tick }, g.Step)
	return g
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return "Escape" }

// Reset starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loop.Stop()

	initial := Initial(kit.LoadHighScore(g.svc.Scores, g.svc.Logger, ID))

	g.mu.Lock()
	g.dir = core.DirRight
	g.rng = rand.New(rand.NewSource(kit.Seed(cfg)))
	g.mu.Unlock()

	g.state.Store(initial)
	g.loop.Start()
}

// Stop halts the loop.
func (g *Game) Stop() {
	g.loop.Stop()
}

// SetDirection changes the light's heading. Any direction is accepted,
// reversal included.
func (g *Game) SetDirection(d core.Point) {
	g.mu.Lock()
	g.dir = d
	g.mu.Unlock()
}

func (g *Game) Handle(a core.Action) {
	if d, ok := a.Direction(); ok {
		g.SetDirection(d)
	}
}

// Step runs one tick.
func (g *Game) Step() {
	g.mu.Lock()
	dir, rng := g.dir, g.rng
	g.mu.Unlock()

	var before State
	next := g.state.Update(func(s State) State {
		before = s
		return Tick(s, dir, g.rules, rng)
	})

	if next.GameOver && !before.GameOver && next.HighScore > before.HighScore {
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

func (g *Game) State() core.GameState {
	s := g.state.Load()
	gs := core.GameState{
		Score:     s.Score,
		HighScore: core.Max(s.HighScore, s.Score),
		GameOver:  s.GameOver,
		Status:    string(s.Status),
	}
	if s.GameOver {
		gs.Outcome = fmt.Sprintf("Caught after %d moves", s.Ticks)
	}
	return gs
}

// Render draws the board, HUD and game-over overlay.
func (g *Game) Render(dst *core.Screen) {
	s := g.state.Load()
	size := g.rules.BoardSize

	kit.HUD(dst, "Escape", fmt.Sprintf("Score: %d  Best: %d  Shadows: %d",
		s.Score, core.Max(s.HighScore, s.Score), len(s.Shadows)))

	b, ok := kit.Layout(dst, size, size, 2)
	if !ok {
		kit.TooSmall(dst, kit.Need(size, size, 2))
		return
	}
	b.Frame(dst, core.ColorGray)

	for _, p := range s.Sparks {
		b.Set(dst, p, '✦', core.ColorBrightYellow)
	}
	for _, p := range s.Shadows {
		b.Set(dst, p, '▒', core.ColorGray)
	}
	b.Set(dst, s.Light, '●', core.ColorBrightCyan)

	if s.GameOver {
		kit.Overlay(dst, fmt.Sprintf("Caught! Score: %d", s.Score), "Press R to restart")
	}
}
