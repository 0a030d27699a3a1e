package escape

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// quietRules never spawns shadows in practice.
func quietRules() Rules {
	r := RulesFrom(config.Default().Escape)
	r.ShadowOdds = 1 << 30
	return r
}

func TestInitialState(t *testing.T) {
	s := Initial(3)

	if s.Light != core.Pt(10, 10) || len(s.Shadows) != 0 {
		t.Errorf("light = %v shadows = %v", s.Light, s.Shadows)
	}
	if len(s.Sparks) != 2 || s.Sparks[0] != core.Pt(5, 5) || s.Sparks[1] != core.Pt(15, 15) {
		t.Errorf("sparks = %v", s.Sparks)
	}
	if s.HighScore != 3 || s.Status != StatusPlaying {
		t.Errorf("unexpected start values: %+v", s)
	}
}

func TestLightWraps(t *testing.T) {
	tests := []struct {
		name     string
		from     core.Point
		dir      core.Point
		expected core.Point
	}{
		{"right edge", core.Pt(19, 10), core.DirRight, core.Pt(0, 10)},
		{"left edge", core.Pt(0, 10), core.DirLeft, core.Pt(19, 10)},
		{"top edge", core.Pt(3, 0), core.DirUp, core.Pt(3, 19)},
		{"bottom edge", core.Pt(3, 19), core.DirDown, core.Pt(3, 0)},
	}

	rng := rand.New(rand.NewSource(1))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Initial(0)
			s.Light = tc.from
			if got := Tick(s, tc.dir, quietRules(), rng).Light; got != tc.expected {
				t.Errorf("light = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestShadowsStepTowardNewLight(t *testing.T) {
	s := Initial(0)
	s.Shadows = []core.Point{core.Pt(0, 0), core.Pt(11, 18), core.Pt(14, 10)}

	next := Tick(s, core.DirRight, quietRules(), rand.New(rand.NewSource(1)))

	expected := []core.Point{core.Pt(1, 1), core.Pt(11, 17), core.Pt(13, 10)}
	for i, want := range expected {
		if next.Shadows[i] != want {
			t.Errorf("shadow %d = %v, expected %v", i, next.Shadows[i], want)
		}
	}
	if s.Shadows[0] != core.Pt(0, 0) {
		t.Error("tick must not modify the previous snapshot")
	}
}

func TestSparkCollected(t *testing.T) {
	s := Initial(0)
	s.Light = core.Pt(4, 5)

	next := Tick(s, core.DirRight, quietRules(), rand.New(rand.NewSource(1)))

	if next.Score != 10 {
		t.Errorf("score = %d, expected 10", next.Score)
	}
	if len(next.Sparks) != 1 || next.Sparks[0] != core.Pt(15, 15) {
		t.Errorf("sparks = %v, expected [(15,15)]", next.Sparks)
	}
}

func TestShadowSpawns(t *testing.T) {
	r := quietRules()
	r.ShadowOdds = 1
	rng := rand.New(rand.NewSource(5))

	s := Initial(0)
	for i := 0; i < 3 && !s.GameOver; i++ {
		s = Tick(s, core.DirRight, r, rng)
	}

	if len(s.Shadows) == 0 {
		t.Fatal("expected shadows with odds of one")
	}
	for _, p := range s.Shadows {
		if !p.In(r.BoardSize, r.BoardSize) {
			t.Errorf("shadow %v off board", p)
		}
	}
}

func TestCaughtEndsRound(t *testing.T) {
	s := Initial(5)
	s.Sparks = []core.Point{core.Pt(11, 10)}
	s.Shadows = []core.Point{core.Pt(12, 10)}

	next := Tick(s, core.DirRight, quietRules(), rand.New(rand.NewSource(1)))

	if !next.GameOver || next.Status != StatusCaught {
		t.Fatalf("status = %s, expected caught", next.Status)
	}
	if next.Score != 10 || next.HighScore != 10 {
		t.Errorf("score = %d high = %d, expected 10/10", next.Score, next.HighScore)
	}

	again := Tick(next, core.DirRight, quietRules(), rand.New(rand.NewSource(1)))
	if again.Light != next.Light || again.Ticks != next.Ticks {
		t.Error("finished round should not advance")
	}
}
