package pacman

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
	StatusCleared Status = "cleared"
)

// Rules are the tuning values a round runs with.
type Rules struct {
	Tick             time.Duration
	Invulnerable     time.Duration
	GhostsVulnerable time.Duration
	FoodPoints       int
	PelletPoints     int
	WanderChase      float64 // probability a wandering ghost chases
}

// RulesFrom converts the pacman section of the config.
func RulesFrom(c config.PacmanConfig) Rules {
	return Rules{
		Tick:             c.Tick,
		Invulnerable:     c.Invulnerable,
		GhostsVulnerable: c.GhostsVulnerable,
		FoodPoints:       c.FoodPoints,
		PelletPoints:     c.PelletPoints,
		WanderChase:      c.WanderChase,
	}
}

// State is an immutable snapshot of a round.
type State struct {
	Pac              core.Point   `json:"pac"`
	Ghosts           []Ghost      `json:"ghosts"`
	Food             []core.Point `json:"food"`
	Pellets          []core.Point `json:"pellets"`
	Score            int          `json:"score"`
	Invulnerable     bool         `json:"invulnerable"`
	GhostsVulnerable bool         `json:"ghosts_vulnerable"`
	Status           Status       `json:"status"`
	GameOver         bool         `json:"game_over"`
	Ticks            uint64       `json:"ticks"`
}

// PacStart is Pac-Man's spawn cell.
var PacStart = core.Pt(12, 18)

// Initial returns the start-of-round snapshot for m. Pac-Man starts
// invulnerable; the engine clears the flag after Rules.Invulnerable.
func Initial(m *Maze) State {
	last := BoardSize - 1
	return State{
		Pac: PacStart,
		Ghosts: []Ghost{
			{Pos: core.Pt(0, 0), Strategy: Chase},
			{Pos: core.Pt(last, 0), Strategy: Ambush},
			{Pos: core.Pt(0, last), Strategy: Relay},
			{Pos: core.Pt(last, last), Strategy: Wander},
		},
		Food:         append([]core.Point(nil), m.Food...),
		Pellets:      append([]core.Point(nil), m.Pellets...),
		Invulnerable: true,
		Status:       StatusPlaying,
	}
}

// Tick advances s one step with Pac-Man trying to move by move.
//
// Ghosts move after Pac-Man and target his new cell. A ghost landing on
// that cell while Pac-Man is not invulnerable ends the round with Pac-Man
// left on his previous cell; vulnerable ghosts are not captured.
func Tick(s State, move core.Point, m *Maze, r Rules, rng *rand.Rand) State {
	if s.GameOver {
		return s
	}

	next := s
	next.Ticks++

	pac := s.Pac
	if cand := s.Pac.Add(move); m.PlayerCanEnter(cand) {
		pac = cand
	}

	switch {
	case core.Contains(s.Food, pac):
		next.Food = core.Without(s.Food, pac)
		next.Score += r.FoodPoints
	case core.Contains(s.Pellets, pac):
		next.Pellets = core.Without(s.Pellets, pac)
		next.Score += r.PelletPoints
		next.GhostsVulnerable = true
	}

	ghosts := make([]Ghost, len(s.Ghosts))
	for i, g := range s.Ghosts {
		g.Pos = moveGhost(i, g, pac, s.GhostsVulnerable, m, r, rng)
		ghosts[i] = g
	}
	next.Ghosts = ghosts

	caught := false
	if !s.Invulnerable {
		for _, g := range ghosts {
			if g.Pos == pac {
				caught = true
				break
			}
		}
	}

	switch {
	case caught:
		next.GameOver = true
		next.Status = StatusCaught
	case len(next.Food) == 0 && len(next.Pellets) == 0:
		next.Pac = pac
		next.GameOver = true
		next.Status = StatusCleared
	default:
		next.Pac = pac
	}
	return next
}

// PelletEaten reports whether the transition from prev to next consumed a
// power pellet.
func PelletEaten(prev, next State) bool {
	return len(next.Pellets) < len(prev.Pellets)
}
