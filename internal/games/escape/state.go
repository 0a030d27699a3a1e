package escape

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Status is the round status carried in every snapshot.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusCaught  Status = "caught"
)

// Rules are the tuning values a round runs with.
type Rules struct {
	BoardSize   int
	Tick        time.Duration
	SparkPoints int
	ShadowOdds  int
}

// RulesFrom converts the escape section of the config.
func RulesFrom(c config.EscapeConfig) Rules {
	return Rules{
		BoardSize:   c.BoardSize,
		Tick:        c.Tick,
		SparkPoints: c.SparkPoints,
		ShadowOdds:  c.ShadowOdds,
	}
}

// State is an immutable snapshot of a round.
type State struct {
	Light     core.Point   `json:"light"`
	Shadows   []core.Point `json:"shadows"`
	Sparks    []core.Point `json:"sparks"`
	Score     int          `json:"score"`
	HighScore int          `json:"high_score"`
	Status    Status       `json:"status"`
	GameOver  bool         `json:"game_over"`
	Ticks     uint64       `json:"ticks"`
}

// Initial returns the start-of-round snapshot.
func Initial(highScore int) State {
	return State{
		Light:     core.Pt(10, 10),
		Shadows:   []core.Point{},
		Sparks:    []core.Point{core.Pt(5, 5), core.Pt(15, 15)},
		HighScore: highScore,
		Status:    StatusPlaying,
	}
}

// Tick moves the light one cell in dir, then every shadow one cell toward
// the light's new position, then maybe spawns a shadow. A shadow sharing
// the light's cell ends the round.
func Tick(s State, dir core.Point, r Rules, rng *rand.Rand) State {
	if s.GameOver {
		return s
	}

	light := s.Light.Add(dir).Wrap(r.BoardSize)

	shadows := make([]core.Point, 0, len(s.Shadows)+1)
	for _, sh := range s.Shadows {
		step := core.Pt(core.Clamp(light.X-sh.X, -1, 1), core.Clamp(light.Y-sh.Y, -1, 1))
		shadows = append(shadows, sh.Add(step).Wrap(r.BoardSize))
	}
	if rng.Intn(r.ShadowOdds) == 0 {
		shadows = append(shadows, core.Pt(rng.Intn(r.BoardSize), rng.Intn(r.BoardSize)))
	}

	sparks := core.Without(s.Sparks, light)
	if len(sparks) < len(s.Sparks) {
		s.Score += r.SparkPoints
	}

	s.Light = light
	s.Shadows = shadows
	s.Sparks = sparks
	s.Ticks++
	if core.Contains(shadows, light) {
		s.Status = StatusCaught
		s.GameOver = true
		s.HighScore = core.Max(s.HighScore, s.Score)
	}
	return s
}
