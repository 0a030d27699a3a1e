package tictactoe

// Mark is the content of a square.
type Mark string

const (
	None Mark = ""
	X    Mark = "X"
	O    Mark = "O"
)

// Status is the round status carried in every snapshot.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

// lines are the eight winning triples.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// State is an immutable snapshot of a round.
type State struct {
	Board    [9]Mark `json:"board"`
	Player   Mark    `json:"player"` // to move
	Winner   Mark    `json:"winner,omitempty"`
	Line     [3]int  `json:"line"` // winning triple, valid when Status is won
	Cursor   int     `json:"cursor"`
	Status   Status  `json:"status"`
	GameOver bool    `json:"game_over"`
}

// Initial returns an empty board with X to move.
func Initial() State {
	return State{Player: X, Cursor: 4, Status: StatusPlaying}
}

// PlayMove puts the current player's mark on square i. Moves on an
// occupied square or after the round ended are ignored.
func PlayMove(s State, i int) State {
	if s.GameOver || i < 0 || i >= len(s.Board) || s.Board[i] != None {
		return s
	}

	s.Board[i] = s.Player
	if line, ok := winningLine(s.Board, s.Player); ok {
		s.Winner = s.Player
		s.Line = line
		s.Status = StatusWon
		s.GameOver = true
		return s
	}
	if full(s.Board) {
		s.Status = StatusDraw
		s.GameOver = true
		return s
	}

	if s.Player == X {
		s.Player = O
	} else {
		s.Player = X
	}
	return s
}

func winningLine(b [9]Mark, m Mark) ([3]int, bool) {
	for _, l := range lines {
		if b[l[0]] == m && b[l[1]] == m && b[l[2]] == m {
			return l, true
		}
	}
	return [3]int{}, false
}

func full(b [9]Mark) bool {
	for _, m := range b {
		if m == None {
			return false
		}
	}
	return true
}
