package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Empty marks a free board cell.
const Empty = core.ColorDefault

// Status is the round status carried in every snapshot.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
)

// Move is a player intent.
type Move int

const (
	MoveLeft Move = iota
	MoveRight
	MoveDrop
	MoveRotate
)

// Rules are the tuning values a round runs with.
type Rules struct {
	Rows, Cols int
	Tick       time.Duration
	LinePoints int
}

// RulesFrom converts the tetris section of the config.
func RulesFrom(c config.TetrisConfig) Rules {
	return Rules{Rows: c.Rows, Cols: c.Cols, Tick: c.Tick, LinePoints: c.LinePoints}
}

// Board is a grid of colors indexed [row][col]. Committed boards are never
// modified; every change copies.
type Board [][]core.Color

// NewBoard returns an empty rows x cols board.
func NewBoard(rows, cols int) Board {
	b := make(Board, rows)
	for r := range b {
		b[r] = make([]core.Color, cols)
	}
	return b
}

func (b Board) clone() Board {
	out := make(Board, len(b))
	for r := range b {
		out[r] = append([]core.Color(nil), b[r]...)
	}
	return out
}

// Collides reports whether p overlaps a filled cell or leaves the board.
func (b Board) Collides(p Piece) bool {
	cols := len(b[0])
	for _, c := range p.Blocks() {
		if c.Row < 0 || c.Row >= len(b) || c.Col < 0 || c.Col >= cols {
			return true
		}
		if b[c.Row][c.Col] != Empty {
			return true
		}
	}
	return false
}

// withPiece returns a copy of b with p written in.
func (b Board) withPiece(p Piece) Board {
	out := b.clone()
	for _, c := range p.Blocks() {
		out[c.Row][c.Col] = p.Color
	}
	return out
}

// ClearFullLines drops every full row, shifting the rest down. It returns
// the new board and the number of rows removed.
func (b Board) ClearFullLines() (Board, int) {
	cols := len(b[0])
	kept := make(Board, 0, len(b))
	for _, row := range b {
		full := true
		for _, c := range row {
			if c == Empty {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, row)
		}
	}

	cleared := len(b) - len(kept)
	out := make(Board, 0, len(b))
	for i := 0; i < cleared; i++ {
		out = append(out, make([]core.Color, cols))
	}
	return append(out, kept...), cleared
}

// State is an immutable snapshot of a round.
type State struct {
	Board     Board  `json:"board"`
	Piece     Piece  `json:"piece"`
	Score     int    `json:"score"`
	Lines     int    `json:"lines"`
	HighScore int    `json:"high_score"`
	Status    Status `json:"status"`
	GameOver  bool   `json:"game_over"`
	Ticks     uint64 `json:"ticks"`
}

// Initial returns an empty board with a random first piece.
func Initial(r Rules, highScore int, rng *rand.Rand) State {
	return State{
		Board:     NewBoard(r.Rows, r.Cols),
		Piece:     NewPiece(rng.Intn(len(Shapes))),
		HighScore: highScore,
		Status:    StatusPlaying,
	}
}

// Tick applies gravity: the piece falls one row or locks.
func Tick(s State, r Rules, rng *rand.Rand) State {
	if s.GameOver {
		return s
	}
	s.Ticks++
	down := s.Piece.Moved(1, 0)
	if s.Board.Collides(down) {
		return lock(s, r, rng)
	}
	s.Piece = down
	return s
}

// Apply handles a player move. Blocked sideways moves and rotations are
// ignored; a blocked drop locks the piece like gravity does.
func Apply(s State, m Move, r Rules, rng *rand.Rand) State {
	if s.GameOver {
		return s
	}

	var cand Piece
	switch m {
	case MoveLeft:
		cand = s.Piece.Moved(0, -1)
	case MoveRight:
		cand = s.Piece.Moved(0, 1)
	case MoveDrop:
		cand = s.Piece.Moved(1, 0)
		if s.Board.Collides(cand) {
			return lock(s, r, rng)
		}
	case MoveRotate:
		cand = s.Piece.Rotated()
	default:
		return s
	}

	if s.Board.Collides(cand) {
		return s
	}
	s.Piece = cand
	return s
}

// lock writes the piece into the board. The round ends when the locked
// shape would not fit at the spawn anchor of the updated board; otherwise
// a new piece spawns and full rows are cleared.
func lock(s State, r Rules, rng *rand.Rand) State {
	board := s.Board.withPiece(s.Piece)

	atSpawn := s.Piece
	atSpawn.Anchor = Spawn
	if board.Collides(atSpawn) {
		s.Board = board
		s.GameOver = true
		s.Status = StatusGameOver
		s.HighScore = core.Max(s.HighScore, s.Score)
		return s
	}

	s.Piece = NewPiece(rng.Intn(len(Shapes)))
	cleared, n := board.ClearFullLines()
	s.Board = cleared
	s.Lines += n
	s.Score += r.LinePoints * n
	return s
}
