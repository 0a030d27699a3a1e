package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Status is the round status carried in every snapshot.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
)

// Rules are the tuning values a round runs with.
type Rules struct {
	BoardSize       int
	InitialInterval time.Duration
	MinInterval     time.Duration
	SpeedFactor     float64
	InitialLength   int
	FoodPoints      int
}

// RulesFrom converts the snake section of the config.
func RulesFrom(c config.SnakeConfig) Rules {
	return Rules{
		BoardSize:       c.BoardSize,
		InitialInterval: c.InitialInterval,
		MinInterval:     c.MinInterval,
		SpeedFactor:     c.SpeedFactor,
		InitialLength:   c.InitialLength,
		FoodPoints:      c.FoodPoints,
	}
}

// State is an immutable snapshot of a round. Body is never modified after
// the snapshot is committed; Tick builds a new slice.
type State struct {
	Body         []core.Point  `json:"body"` // head first
	TargetLength int           `json:"target_length"`
	Direction    core.Point    `json:"direction"`
	Food         core.Point    `json:"food"`
	Interval     time.Duration `json:"interval"`
	Speed        time.Duration `json:"speed"` // initial interval minus current
	Score        int           `json:"score"`
	HighScore    int           `json:"high_score"`
	Status       Status        `json:"status"`
	GameOver     bool          `json:"game_over"`
	Ticks        uint64        `json:"ticks"`
}

// Head returns the first body segment.
func (s State) Head() core.Point {
	return s.Body[0]
}

// Initial returns the start-of-round snapshot.
func Initial(r Rules, highScore int) State {
	return State{
		Body:         []core.Point{core.Pt(7, 7)},
		TargetLength: r.InitialLength,
		Direction:    core.DirRight,
		Food:         core.Pt(5, 5),
		Interval:     r.InitialInterval,
		HighScore:    highScore,
		Status:       StatusPlaying,
	}
}

// Tick advances s one step in direction dir.
//
// A head landing on the current body ends the round and leaves every other
// field as it was. Food respawns anywhere on the board, including under the
// snake.
func Tick(s State, dir core.Point, r Rules, rng *rand.Rand) State {
	if s.GameOver {
		return s
	}

	head := s.Head().Add(dir).Wrap(r.BoardSize)
	if core.Contains(s.Body, head) {
		s.GameOver = true
		s.Status = StatusGameOver
		s.HighScore = core.Max(s.HighScore, s.Score)
		return s
	}

	next := s
	next.Direction = dir
	next.Ticks++

	if head == s.Food {
		next.TargetLength++
		next.Interval = speedUp(s.Interval, r)
		next.Speed = r.InitialInterval - next.Interval
		next.Food = core.Pt(rng.Intn(r.BoardSize), rng.Intn(r.BoardSize))
		next.Score += r.FoodPoints
	}

	keep := core.Min(len(s.Body), next.TargetLength-1)
	body := make([]core.Point, 0, keep+1)
	body = append(body, head)
	body = append(body, s.Body[:keep]...)
	next.Body = body

	return next
}

// speedUp shortens the tick interval after a meal, truncating to whole
// milliseconds and never going below the floor.
func speedUp(d time.Duration, r Rules) time.Duration {
	ms := core.Max(int(float64(d.Milliseconds())*r.SpeedFactor), int(r.MinInterval.Milliseconds()))
	return time.Duration(ms) * time.Millisecond
}
