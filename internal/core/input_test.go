package core

import "testing"

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Point
		ok     bool
	}{
		{ActionUp, Pt(0, -1), true},
		{ActionDown, Pt(0, 1), true},
		{ActionLeft, Pt(-1, 0), true},
		{ActionRight, Pt(1, 0), true},
		{ActionConfirm, Point{}, false},
		{ActionNone, Point{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.Direction()
			if dir != tc.dir || ok != tc.ok {
				t.Errorf("Direction() = %v, %v; expected %v, %v", dir, ok, tc.dir, tc.ok)
			}
		})
	}
}

func TestStorageKeys(t *testing.T) {
	if got := HighScoreKey("snake"); got != "high_score_snake" {
		t.Errorf("HighScoreKey = %q", got)
	}
	if got := VictoryKey("Memoria", "Ana", "Bia"); got != "Memoria_AnavsBia" {
		t.Errorf("VictoryKey = %q", got)
	}
}

func TestShadeWraps(t *testing.T) {
	if Shade(0) != ColorShadeBase {
		t.Errorf("Shade(0) = %d", Shade(0))
	}
	if Shade(ShadeCount) != Shade(0) {
		t.Error("Shade should wrap around")
	}
	if !Shade(18).IsShade() || ColorRed.IsShade() {
		t.Error("IsShade mismatch")
	}
}
