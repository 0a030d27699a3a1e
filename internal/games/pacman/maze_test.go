package pacman

import (
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func TestDefaultMazeSets(t *testing.T) {
	m := DefaultMaze()

	if len(m.Food) != 278 {
		t.Errorf("food = %d, expected 278", len(m.Food))
	}
	if len(m.walls) != 278 {
		t.Errorf("walls = %d, expected 278", len(m.walls))
	}
	if len(m.Homes) != 8 || len(m.entry) != 2 {
		t.Errorf("homes = %d, entries = %d", len(m.Homes), len(m.entry))
	}
	if m.Homes[0] != core.Pt(10, 11) || m.Homes[3] != core.Pt(13, 11) {
		t.Errorf("home order = %v", m.Homes)
	}

	pellets := []core.Point{
		core.Pt(2, 3), core.Pt(21, 3), core.Pt(10, 4), core.Pt(13, 4),
		core.Pt(0, 18), core.Pt(23, 18), core.Pt(6, 21), core.Pt(17, 21),
	}
	if len(m.Pellets) != len(pellets) {
		t.Fatalf("pellets = %v", m.Pellets)
	}
	for i, p := range pellets {
		if m.Pellets[i] != p {
			t.Errorf("pellet %d = %v, expected %v", i, m.Pellets[i], p)
		}
	}
}

func TestMazeAccess(t *testing.T) {
	m := DefaultMaze()

	tests := []struct {
		name          string
		p             core.Point
		player, ghost bool
	}{
		{"open food cell", core.Pt(13, 18), true, true},
		{"wall", core.Pt(12, 17), false, false},
		{"home", core.Pt(11, 11), false, true},
		{"entry", core.Pt(11, 10), false, true},
		{"off board", core.Pt(-1, 0), false, false},
		{"empty cell", core.Pt(8, 21), true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.PlayerCanEnter(tc.p); got != tc.player {
				t.Errorf("PlayerCanEnter(%v) = %v, expected %v", tc.p, got, tc.player)
			}
			if got := m.GhostCanEnter(tc.p); got != tc.ghost {
				t.Errorf("GhostCanEnter(%v) = %v, expected %v", tc.p, got, tc.ghost)
			}
		})
	}
}
