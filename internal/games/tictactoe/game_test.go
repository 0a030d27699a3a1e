package tictactoe

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

func TestHandleMovesCursorAndPlays(t *testing.T) {
	g := New(registry.Services{})
	g.Reset(core.RuntimeConfig{})

	for _, a := range []core.Action{core.ActionUp, core.ActionLeft, core.ActionLeft, core.ActionConfirm} {
		g.Handle(a)
	}

	s := g.Current()
	if s.Cursor != 0 {
		t.Errorf("cursor = %d, expected clamped to 0", s.Cursor)
	}
	if s.Board[0] != X || s.Player != O {
		t.Errorf("board[0] = %q player = %q", s.Board[0], s.Player)
	}
}

func TestStateReportsOutcome(t *testing.T) {
	g := New(registry.Services{})
	for _, i := range []int{0, 1, 3, 4, 6} {
		g.Play(i)
	}

	gs := g.State()
	if !gs.GameOver || gs.Outcome != "X wins" {
		t.Errorf("state = %+v, expected X wins", gs)
	}

	g.Reset(core.RuntimeConfig{})
	if g.State().GameOver || g.Current().Board != [9]Mark{} {
		t.Error("reset should clear the board")
	}
}

func TestRender(t *testing.T) {
	g := New(registry.Services{})
	g.Play(4)

	scr := core.NewScreen(core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH)
	g.Render(scr)
	if !strings.Contains(scr.String(), "X") || !strings.Contains(scr.Row(0), "To move: O") {
		t.Errorf("render missing marks or HUD:\n%s", scr.String())
	}

	small := core.NewScreen(20, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Need") {
		t.Error("small screen should show the size hint")
	}
}
