// Package tictactoe implements two-player Tic-Tac-Toe on one screen.
package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/games/kit"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// ID is the registry and storage identifier.
const ID = "tictactoe"

func init() {
	registry.Register(ID, func(svc registry.Services) registry.Game {
		return New(svc)
	})
}

// Game holds a Tic-Tac-Toe round. Moves are applied as they arrive.
type Game struct {
	state *engine.Cell[State]
}

// New creates a game with an empty board.
func New(registry.Services) *Game {
	return &Game{state: engine.NewCell(Initial())}
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return "Tic-Tac-Toe" }

// Reset clears the board.
func (g *Game) Reset(core.RuntimeConfig) {
	g.state.Store(Initial())
}

// Stop is a no-op; the game has no background work.
func (g *Game) Stop() {}

// Play marks square i for the player to move.
func (g *Game) Play(i int) {
	g.state.Update(func(s State) State { return PlayMove(s, i) })
}

// Handle moves the cursor over the 3x3 grid and plays on Confirm.
func (g *Game) Handle(a core.Action) {
	if d, ok := a.Direction(); ok {
		g.state.Update(func(s State) State {
			row := core.Clamp(s.Cursor/3+d.Y, 0, 2)
			col := core.Clamp(s.Cursor%3+d.X, 0, 2)
			s.Cursor = row*3 + col
			return s
		})
		return
	}
	if a == core.ActionConfirm {
		g.Play(g.state.Load().Cursor)
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

func (g *Game) State() core.GameState {
	s := g.state.Load()
	gs := core.GameState{GameOver: s.GameOver, Status: string(s.Status)}
	switch s.Status {
	case StatusWon:
		gs.Outcome = string(s.Winner) + " wins"
		gs.Winner = string(s.Winner)
	case StatusDraw:
		gs.Outcome = "Draw"
	}
	return gs
}

// Render draws the grid with the cursor and highlights a winning line.
func (g *Game) Render(dst *core.Screen) {
	s := g.state.Load()

	kit.HUD(dst, "Tic-Tac-Toe", fmt.Sprintf("To move: %s", s.Player))

	const cw, ch = 7, 3
	w, h := 3*cw+4, 3*ch+4
	if dst.Width() < w || dst.Height() < h+kit.HUDHeight {
		kit.TooSmall(dst, core.Pt(w, h+kit.HUDHeight))
		return
	}
	ox := (dst.Width() - w) / 2
	oy := kit.HUDHeight + (dst.Height()-kit.HUDHeight-h)/2

	dst.DrawBox(core.NewRect(ox, oy, w, h), core.ColorGray)
	for i, m := range s.Board {
		x := ox + 1 + (i%3)*(cw+1)
		y := oy + 1 + (i/3)*(ch+1)

		color := core.ColorWhite
		switch {
		case s.Status == StatusWon && (i == s.Line[0] || i == s.Line[1] || i == s.Line[2]):
			color = core.ColorBrightGreen
		case m == X:
			color = core.ColorBrightCyan
		case m == O:
			color = core.ColorBrightMagenta
		}

		label := "   "
		if m != None {
			label = " " + string(m) + " "
		}
		if i == s.Cursor && !s.GameOver {
			label = "[" + label[1:2] + "]"
		}
		dst.DrawTextColored(x+(cw-3)/2, y+ch/2, label, color)

		if i%3 < 2 {
			for dy := 0; dy < ch; dy++ {
				dst.SetColored(x+cw, y+dy, '│', core.ColorGray)
			}
		}
		if i/3 < 2 {
			for dx := 0; dx < cw; dx++ {
				dst.SetColored(x+dx, y+ch, '─', core.ColorGray)
			}
		}
	}

	switch s.Status {
	case StatusWon:
		kit.Overlay(dst, string(s.Winner)+" wins!", "Press R to play again")
	case StatusDraw:
		kit.Overlay(dst, "Draw", "Press R to play again")
	}
}
