package tetris

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func testRules() Rules {
	return RulesFrom(config.Default().Tetris)
}

func stateWith(p Piece) State {
	r := testRules()
	return State{Board: NewBoard(r.Rows, r.Cols), Piece: p, Status: StatusPlaying}
}

func sortedBlocks(p Piece) []Cell {
	b := p.Blocks()
	out := b[:]
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func TestShapesHaveDistinctColors(t *testing.T) {
	if len(Shapes) != 19 {
		t.Fatalf("shapes = %d, expected 19", len(Shapes))
	}
	seen := make(map[core.Color]bool)
	for i := range Shapes {
		c := NewPiece(i).Color
		if c == Empty || seen[c] {
			t.Errorf("shape %d has color %d, expected a unique non-empty color", i, c)
		}
		seen[c] = true
	}
}

func TestClearFullLines(t *testing.T) {
	b := NewBoard(4, 3)
	b[1][0] = core.ColorRed
	for c := 0; c < 3; c++ {
		b[2][c] = core.ColorBlue
		b[3][c] = core.ColorGreen
	}
	b[3][1] = Empty

	out, n := b.ClearFullLines()
	if n != 1 {
		t.Fatalf("cleared = %d, expected 1", n)
	}
	if len(out) != 4 {
		t.Fatalf("rows = %d, expected 4", len(out))
	}
	for c := 0; c < 3; c++ {
		if out[0][c] != Empty {
			t.Errorf("new top row not empty at col %d", c)
		}
	}
	if out[2][0] != core.ColorRed {
		t.Errorf("row with red block should shift down to row 2")
	}
	if out[3][0] != core.ColorGreen || out[3][1] != Empty {
		t.Errorf("partial bottom row should stay in place: %v", out[3])
	}
	if b[2][0] != core.ColorBlue {
		t.Error("input board modified")
	}
}

func TestGravityMovesOneRow(t *testing.T) {
	s := stateWith(NewPiece(2))
	next := Tick(s, testRules(), rand.New(rand.NewSource(1)))

	if next.Piece.Anchor != (Cell{Row: 1, Col: 5}) {
		t.Errorf("anchor = %+v, expected (1,5)", next.Piece.Anchor)
	}
	if s.Piece.Anchor != Spawn {
		t.Error("previous snapshot modified")
	}
}

func TestLockClearsLineAndScores(t *testing.T) {
	r := testRules()
	s := stateWith(NewPiece(1).Moved(r.Rows-1, 0)) // horizontal bar on the floor, cols 5..8
	board := NewBoard(r.Rows, r.Cols)
	for c := 0; c < r.Cols; c++ {
		if c < 5 || c > 8 {
			board[r.Rows-1][c] = core.ColorRed
		}
	}
	board[r.Rows-2][0] = core.ColorBlue
	s.Board = board

	next := Tick(s, r, rand.New(rand.NewSource(1)))

	if next.GameOver {
		t.Fatal("unexpected game over")
	}
	if next.Score != 5 || next.Lines != 1 {
		t.Errorf("score = %d lines = %d, expected 5 and 1", next.Score, next.Lines)
	}
	if next.Board[r.Rows-1][0] != core.ColorBlue {
		t.Error("rows above the cleared line should shift down")
	}
	if next.Piece.Anchor != Spawn {
		t.Errorf("new piece anchor = %+v, expected spawn", next.Piece.Anchor)
	}
}

func TestSidewaysCollisionIgnored(t *testing.T) {
	r := testRules()
	s := stateWith(NewPiece(0).Moved(3, -5)) // vertical bar at column 0

	next := Apply(s, MoveLeft, r, rand.New(rand.NewSource(1)))
	if next.Piece != s.Piece {
		t.Errorf("blocked move changed the piece: %+v", next.Piece)
	}

	next = Apply(s, MoveRight, r, rand.New(rand.NewSource(1)))
	if next.Piece.Anchor.Col != 1 {
		t.Errorf("right move anchor col = %d, expected 1", next.Piece.Anchor.Col)
	}
}

func TestDropMovesDownOrLocks(t *testing.T) {
	r := testRules()
	s := stateWith(NewPiece(2))

	next := Apply(s, MoveDrop, r, rand.New(rand.NewSource(1)))
	if next.Piece.Anchor.Row != 1 {
		t.Errorf("drop anchor row = %d, expected 1", next.Piece.Anchor.Row)
	}

	floor := stateWith(NewPiece(2).Moved(r.Rows-2, 0))
	locked := Apply(floor, MoveDrop, r, rand.New(rand.NewSource(1)))
	if locked.Board[r.Rows-1][5] == Empty || locked.Board[r.Rows-2][6] == Empty {
		t.Error("drop against the floor should lock the piece")
	}
	if locked.Piece.Anchor != Spawn {
		t.Error("a new piece should spawn after locking")
	}
}

func TestRotate(t *testing.T) {
	r := testRules()

	s := stateWith(NewPiece(0).Moved(5, 0)) // vertical bar at (5,5)
	next := Apply(s, MoveRotate, r, rand.New(rand.NewSource(1)))
	want := []Cell{{6, 4}, {6, 5}, {6, 6}, {6, 7}}
	got := sortedBlocks(next.Piece)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rotated blocks = %v, expected %v", got, want)
		}
	}

	tests := []struct {
		name  string
		piece Piece
	}{
		{"against left wall", NewPiece(0).Moved(5, -5)},
		{"above the top", NewPiece(1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := stateWith(tc.piece)
			next := Apply(s, MoveRotate, r, rand.New(rand.NewSource(1)))
			if next.Piece != s.Piece {
				t.Errorf("blocked rotation changed the piece: %v", sortedBlocks(next.Piece))
			}
		})
	}
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	r := testRules()
	s := stateWith(NewPiece(2)) // square at the spawn anchor
	s.Board[2][5] = core.ColorRed
	s.Score = 40
	s.HighScore = 10

	over := Tick(s, r, rand.New(rand.NewSource(1)))
	if !over.GameOver || over.Status != StatusGameOver {
		t.Fatal("expected game over when the locked shape blocks the spawn")
	}
	if over.HighScore != 40 {
		t.Errorf("high score = %d, expected 40", over.HighScore)
	}
	if over.Board[0][5] == Empty {
		t.Error("locked piece should be on the board")
	}

	after := Apply(over, MoveLeft, r, rand.New(rand.NewSource(1)))
	after = Tick(after, r, rand.New(rand.NewSource(1)))
	if after.Piece != over.Piece || after.Ticks != over.Ticks {
		t.Error("state changed after game over")
	}
}
