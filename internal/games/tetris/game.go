// Package tetris implements falling-block Tetris with line clearing.
package tetris

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
const ID = "tetris"

func init() {
	registry.Register(ID, func(svc registry.Services) registry.Game {
		return New(svc)
	})
}

// Game runs Tetris rounds. Player moves are applied immediately; gravity
// runs on the loop.
type Game struct {
	svc   registry.Services
	rules Rules
	state *engine.Cell[State]
	loop  *engine.Loop

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a stopped game. Reset starts a round.
func New(svc registry.Services) *Game {
	svc = svc.WithDefaults()
	rules := RulesFrom(svc.Config.Tetris)
	rng := rand.New(rand.NewSource(1))
	g := &Game{
		svc:   svc,
		rules: rules,
		state: engine.NewCell(Initial(rules, 0, rng)),
		rng:   rng,
	}
	g.loop = engine.NewLoop(svc.Clock, func() time.Duration { return g.rules.Tick }, g.Step)
	return g
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return "Tetris" }

// Reset starts a fresh round with the stored high score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loop.Stop()

	high := kit.LoadHighScore(g.svc.Scores, g.svc.Logger, ID)

	g.mu.Lock()
	g.rng = rand.New(rand.NewSource(kit.Seed(cfg)))
	initial := Initial(g.rules, high, g.rng)
	g.mu.Unlock()

	g.state.Store(initial)
	g.loop.Start()
}

// Stop halts the loop.
func (g *Game) Stop() {
	g.loop.Stop()
}

// Step applies gravity once.
func (g *Game) Step() {
	g.commit(func(s State, rng *rand.Rand) State {
		return Tick(s, g.rules, rng)
	})
}

// Move applies a player move.
func (g *Game) Move(m Move) {
	g.commit(func(s State, rng *rand.Rand) State {
		return Apply(s, m, g.rules, rng)
	})
}

// commit runs a transition under the engine mutex so gravity and player
// moves share the RNG safely, then persists a beaten high score.
func (g *Game) commit(fn func(State, *rand.Rand) State) {
	g.mu.Lock()
	var before State
	next := g.state.Update(func(s State) State {
		before = s
		return fn(s, g.rng)
	})
	g.mu.Unlock()

	if next.GameOver && !before.GameOver && next.HighScore > before.HighScore {
		kit.SaveHighScore(g.svc.Scores, g.svc.Logger, ID, next.HighScore)
	}
}

// Handle maps Left/Right to moves, Down/Confirm to drop and
// Up/Secondary to rotate.
func (g *Game) Handle(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.Move(MoveLeft)
	case core.ActionRight:
		g.Move(MoveRight)
	case core.ActionDown, core.ActionConfirm:
		g.Move(MoveDrop)
	case core.ActionUp, core.ActionSecondary:
		g.Move(MoveRotate)
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
		gs.Outcome = fmt.Sprintf("%d lines", s.Lines)
	}
	return gs
}

// Render draws the well and the falling piece.
func (g *Game) Render(dst *core.Screen) {
	s := g.state.Load()

	kit.HUD(dst, "Tetris", fmt.Sprintf("Score: %d  Lines: %d  Best: %d", s.Score, s.Lines, core.Max(s.HighScore, s.Score)))

	b, ok := kit.Layout(dst, g.rules.Cols, g.rules.Rows, 2)
	if !ok {
		kit.TooSmall(dst, kit.Need(g.rules.Cols, g.rules.Rows, 2))
		return
	}
	b.Frame(dst, core.ColorGray)

	for r, row := range s.Board {
		for c, color := range row {
			if color != Empty {
				b.Set(dst, core.Pt(c, r), '█', color)
			} else {
				b.Text(dst, core.Pt(c, r), " .", core.ColorGray)
			}
		}
	}
	if !s.GameOver {
		for _, c := range s.Piece.Blocks() {
			b.Set(dst, core.Pt(c.Col, c.Row), '█', s.Piece.Color)
		}
	}

	if s.GameOver {
		kit.Overlay(dst, "Game Over", "Press R to restart")
	}
}
