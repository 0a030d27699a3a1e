package memory

import (
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// NoChoice marks an empty selection slot.
const NoChoice = -1

// Status is the round status carried in every snapshot.
type Status string

const (
	StatusPlaying      Status = "playing"
	StatusLevelCleared Status = "level_cleared" // one player, next tier pending
	StatusComplete     Status = "complete"      // one player, last tier cleared
	StatusWon          Status = "won"
	StatusDraw         Status = "draw"
)

// Size is a grid shape in rows and columns.
type Size struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Tiers is the one-player progression.
var Tiers = []Size{
	{4, 3}, {4, 4}, {5, 4}, {6, 4}, {6, 5}, {6, 6}, {7, 6}, {8, 6},
}

// State is an immutable snapshot of a round. Slices and the map are
// copied whenever a transition changes them.
type State struct {
	Tier      int         `json:"tier"` // index into Tiers
	Size      Size        `json:"size"`
	Grid      []int       `json:"grid"`
	Revealed  []bool      `json:"revealed"`
	Matched   []bool      `json:"matched"`
	MatchedBy map[int]int `json:"matched_by"` // cell index -> player id
	First     int         `json:"first"`
	Second    int         `json:"second"`
	Busy      bool        `json:"busy"`

	TwoPlayer     bool      `json:"two_player"`
	Players       [2]string `json:"players"`
	CurrentPlayer int       `json:"current_player"` // 1 or 2
	Moves         int       `json:"moves"`
	Cursor        int       `json:"cursor"`

	Status    Status `json:"status"`
	Winner    string `json:"winner,omitempty"`
	Victories [2]int `json:"victories"` // stored head-to-head wins of each player over the other
	GameOver  bool   `json:"game_over"`
}

// NewGrid returns values 1..n/2, each twice, shuffled.
func NewGrid(n int, rng *rand.Rand) []int {
	grid := make([]int, 0, n)
	for v := 1; v <= n/2; v++ {
		grid = append(grid, v, v)
	}
	rng.Shuffle(len(grid), func(i, j int) { grid[i], grid[j] = grid[j], grid[i] })
	return grid
}

// NewRound deals a fresh grid for tier.
func NewRound(tier int, twoPlayer bool, players [2]string, rng *rand.Rand) State {
	tier = core.Clamp(tier, 0, len(Tiers)-1)
	size := Tiers[tier]
	n := size.Rows * size.Cols
	return State{
		Tier:          tier,
		Size:          size,
		Grid:          NewGrid(n, rng),
		Revealed:      make([]bool, n),
		Matched:       make([]bool, n),
		MatchedBy:     map[int]int{},
		First:         NoChoice,
		Second:        NoChoice,
		TwoPlayer:     twoPlayer,
		Players:       players,
		CurrentPlayer: 1,
		Status:        StatusPlaying,
	}
}

// Tap reveals cell i. Taps on revealed or matched cells, while a pair is
// resolving, or after the round ended are ignored. The second tap of a
// pair sets Busy; the caller then schedules Resolve.
func Tap(s State, i int) State {
	if s.Status != StatusPlaying || s.Busy || i < 0 || i >= len(s.Grid) {
		return s
	}
	if s.Revealed[i] || s.Matched[i] {
		return s
	}

	revealed := append([]bool(nil), s.Revealed...)
	revealed[i] = true
	s.Revealed = revealed

	if s.First == NoChoice {
		s.First = i
		return s
	}
	s.Second = i
	s.Busy = true
	return s
}

// IsMatch reports whether the two chosen cells hold the same value.
func IsMatch(s State) bool {
	return s.First != NoChoice && s.Second != NoChoice && s.Grid[s.First] == s.Grid[s.Second]
}

// Resolve settles a pending pair: a match is credited to the current
// player, a mismatch is hidden again and passes the turn in two-player
// mode. It then checks for the end of the round.
func Resolve(s State) State {
	if !s.Busy {
		return s
	}
	a, b := s.First, s.Second

	if IsMatch(s) {
		matched := append([]bool(nil), s.Matched...)
		matched[a], matched[b] = true, true
		s.Matched = matched

		by := make(map[int]int, len(s.MatchedBy)+2)
		for k, v := range s.MatchedBy {
			by[k] = v
		}
		by[a], by[b] = s.CurrentPlayer, s.CurrentPlayer
		s.MatchedBy = by
	} else {
		revealed := append([]bool(nil), s.Revealed...)
		revealed[a], revealed[b] = false, false
		s.Revealed = revealed
		if s.TwoPlayer {
			s.CurrentPlayer = 3 - s.CurrentPlayer
		}
	}

	s.First, s.Second = NoChoice, NoChoice
	s.Busy = false
	if !s.TwoPlayer {
		s.Moves++
	}
	return finish(s)
}

// Pairs returns how many pairs player has matched.
func Pairs(s State, player int) int {
	n := 0
	for _, p := range s.MatchedBy {
		if p == player {
			n++
		}
	}
	return n / 2
}

func finish(s State) State {
	for _, m := range s.Matched {
		if !m {
			return s
		}
	}

	if !s.TwoPlayer {
		if s.Tier == len(Tiers)-1 {
			s.Status = StatusComplete
			s.GameOver = true
		} else {
			s.Status = StatusLevelCleared
		}
		return s
	}

	p1, p2 := Pairs(s, 1), Pairs(s, 2)
	switch {
	case p1 > p2:
		s.Status, s.Winner = StatusWon, s.Players[0]
	case p2 > p1:
		s.Status, s.Winner = StatusWon, s.Players[1]
	default:
		s.Status = StatusDraw
	}
	s.GameOver = true
	return s
}

// Opponent returns the player who lost to s.Winner.
func Opponent(s State) string {
	if s.Winner == s.Players[0] {
		return s.Players[1]
	}
	return s.Players[0]
}

// MoveCursor shifts the cursor by d, clamped to the grid.
func MoveCursor(s State, d core.Point) State {
	row, col := s.Cursor/s.Size.Cols, s.Cursor%s.Size.Cols
	row = core.Clamp(row+d.Y, 0, s.Size.Rows-1)
	col = core.Clamp(col+d.X, 0, s.Size.Cols-1)
	s.Cursor = row*s.Size.Cols + col
	return s
}
