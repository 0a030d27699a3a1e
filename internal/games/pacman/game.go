// Package pacman implements a single-maze Pac-Man with four ghost
// strategies and timed power-ups.
package pacman

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
const ID = "pacman"

func init() {
	registry.Register(ID, func(svc registry.Services) registry.Game {
		return New(svc)
	})
}

// Game runs Pac-Man rounds. Invulnerability and ghost vulnerability expire
// through timers that Reset cancels.
type Game struct {
	svc    registry.Services
	rules  Rules
	maze   *Maze
	state  *engine.Cell[State]
	loop   *engine.Loop
	timers *engine.Timers

	mu   sync.Mutex
	move core.Point
	rng  *rand.Rand
}

// New creates a stopped game. Reset starts a round.
func New(svc registry.Services) *Game {
	svc = svc.WithDefaults()
	maze := DefaultMaze()
	g := &Game{
		svc:    svc,
		rules:  RulesFrom(svc.Config.Pacman),
		maze:   maze,
		state:  engine.NewCell(Initial(maze)),
		timers: engine.NewTimers(svc.Clock),
		rng:    rand.New(rand.NewSource(1)),
	}
	g.loop = engine.NewLoop(svc.Clock, func() time.Duration { return g.rules.Tick }, g.Step)
	return g
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return "Pac-Man" }

// Reset starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loop.Stop()
	g.timers.CancelAll()

	g.mu.Lock()
	g.move = core.DirRight
	g.rng = rand.New(rand.NewSource(kit.Seed(cfg)))
	g.mu.Unlock()

	g.state.Store(Initial(g.maze))
	g.timers.After(g.rules.Invulnerable, func() {
		g.state.Update(func(s State) State {
			s.Invulnerable = false
			return s
		})
	})
	g.loop.Start()
}

// Stop halts the loop and pending timers.
func (g *Game) Stop() {
	g.loop.Stop()
	g.timers.CancelAll()
}

// SetMove sets the direction Pac-Man tries to move each tick. Any
// direction is accepted, including reversal.
func (g *Game) SetMove(d core.Point) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.move = d
}

func (g *Game) Handle(a core.Action) {
	if d, ok := a.Direction(); ok {
		g.SetMove(d)
	}
}

// Step runs one tick. The loop calls it; tests may call it directly.
func (g *Game) Step() {
	g.mu.Lock()
	move := g.move
	rng := g.rng
	g.mu.Unlock()

	if g.state.Load().GameOver {
		return
	}

	var before State
	next := g.state.Update(func(s State) State {
		before = s
		return Tick(s, move, g.maze, g.rules, rng)
	})

	if PelletEaten(before, next) {
		g.timers.After(g.rules.GhostsVulnerable, func() {
			g.state.Update(func(s State) State {
				s.GhostsVulnerable = false
				return s
			})
		})
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

// Timers exposes the pending timed effects for inspection.
func (g *Game) Timers() *engine.Timers {
	return g.timers
}

func (g *Game) State() core.GameState {
	s := g.state.Load()
	gs := core.GameState{
		Score:    s.Score,
		GameOver: s.GameOver,
		Status:   string(s.Status),
	}
	switch s.Status {
	case StatusCaught:
		gs.Outcome = "Caught by a ghost"
	case StatusCleared:
		gs.Outcome = "Maze cleared"
	}
	return gs
}

var ghostColors = [...]core.Color{core.ColorRed, core.ColorMagenta, core.ColorCyan, core.ColorOrange}

// Render draws the maze, items, ghosts and Pac-Man.
func (g *Game) Render(dst *core.Screen) {
	s := g.state.Load()

	status := ""
	if s.Invulnerable {
		status = "  SAFE"
	}
	if s.GhostsVulnerable {
		status += "  POWER"
	}
	kit.HUD(dst, "Pac-Man"+status, fmt.Sprintf("Score: %d  Food: %d", s.Score, len(s.Food)+len(s.Pellets)))

	b, ok := kit.Layout(dst, BoardSize, BoardSize, 2)
	if !ok {
		kit.TooSmall(dst, kit.Need(BoardSize, BoardSize, 2))
		return
	}
	b.Frame(dst, core.ColorGray)

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			p := core.Pt(x, y)
			switch {
			case g.maze.Wall(p):
				b.Set(dst, p, '█', core.ColorBlue)
			case g.maze.Entry(p):
				b.Set(dst, p, '═', core.ColorGray)
			}
		}
	}
	for _, p := range s.Food {
		b.Text(dst, p, " ·", core.ColorWhite)
	}
	for _, p := range s.Pellets {
		b.Text(dst, p, " ●", core.ColorBrightYellow)
	}
	for i, gh := range s.Ghosts {
		c := ghostColors[i%len(ghostColors)]
		if s.GhostsVulnerable {
			c = core.ColorBrightBlue
		}
		b.Text(dst, gh.Pos, "ᗣ ", c)
	}
	pacColor := core.ColorBrightYellow
	if s.Invulnerable {
		pacColor = core.ColorBrightWhite
	}
	b.Text(dst, s.Pac, "ᗧ ", pacColor)

	switch s.Status {
	case StatusCaught:
		kit.Overlay(dst, "Game Over", "Press R to restart")
	case StatusCleared:
		kit.Overlay(dst, "Maze Cleared!", fmt.Sprintf("Final Score: %d", s.Score))
	}
}
