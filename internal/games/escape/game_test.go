package escape

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

func newTestGame(t *testing.T, store *core.MemStore) *Game {
	t.Helper()
	g := New(registry.Services{
		Scores: store,
		Wins:   store,
		Clock:  engine.NewManualClock(time.Unix(0, 0)),
	})
	g.Reset(core.RuntimeConfig{Seed: 3})
	g.Loop().Stop()
	t.Cleanup(g.Stop)
	return g
}

func TestReverseDirectionAccepted(t *testing.T) {
	g := newTestGame(t, core.NewMemStore())

	g.Handle(core.ActionLeft)
	g.Step()

	if got := g.Current().Light; got != core.Pt(9, 10) {
		t.Errorf("light = %v, expected (9,10)", got)
	}
}

func TestHighScoreSavedWhenCaught(t *testing.T) {
	store := core.NewMemStore()
	g := newTestGame(t, store)

	s := g.Current()
	s.Sparks = []core.Point{core.Pt(11, 10)}
	s.Shadows = []core.Point{core.Pt(12, 10)}
	g.state.Store(s)
	g.Step()

	if !g.State().GameOver {
		t.Fatal("expected the round to end")
	}
	best, err := store.HighScore(context.Background(), core.HighScoreKey(ID))
	if err != nil || best != 10 {
		t.Errorf("stored high score = %d (%v), expected 10", best, err)
	}

	g.Reset(core.RuntimeConfig{Seed: 3})
	g.Loop().Stop()
	if s := g.Current(); s.GameOver || s.HighScore != 10 || s.Score != 0 {
		t.Errorf("after reset: %+v", s)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, core.NewMemStore())

	dst := core.NewScreen(80, 30)
	g.Render(dst)
	out := dst.String()
	if !strings.Contains(out, "●") || !strings.Contains(out, "✦") {
		t.Errorf("render missing light or sparks:\n%s", out)
	}
	if !strings.Contains(dst.Row(0), "Escape") {
		t.Errorf("HUD = %q", dst.Row(0))
	}
}
