package pacman

import (
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Strategy selects how a ghost picks its target cell.
type Strategy int

const (
	// Chase heads straight for Pac-Man.
	Chase Strategy = iota
	// Ambush aims two strides past Pac-Man along the ghost-to-Pac-Man line.
	Ambush
	// Relay aims at the midpoint of Pac-Man and the cell right of the ghost.
	Relay
	// Wander chases most of the time and otherwise takes a random step.
	Wander
)

var strategyNames = [...]string{"chase", "ambush", "relay", "wander"}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}
	return strategyNames[s]
}

// MarshalText encodes the strategy by name for spectators.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Ghost is one pursuer.
type Ghost struct {
	Pos      core.Point `json:"pos"`
	Strategy Strategy   `json:"strategy"`
}

// target returns where g heads this tick when ghosts are not vulnerable.
func (g Ghost) target(pac core.Point) core.Point {
	switch g.Strategy {
	case Ambush:
		return pac.Add(pac.Sub(g.Pos).Scale(2))
	case Relay:
		ref := g.Pos.Add(core.DirRight)
		return core.Pt((pac.X+ref.X)/2, (pac.Y+ref.Y)/2)
	default:
		return pac
	}
}

// moveGhost returns the next cell of ghost i.
func moveGhost(i int, g Ghost, pac core.Point, vulnerable bool, m *Maze, r Rules, rng *rand.Rand) core.Point {
	if vulnerable {
		return greedyStep(g.Pos, m.Homes[i%len(m.Homes)], m, rng)
	}
	if g.Strategy == Wander && rng.Float64() >= r.WanderChase {
		return randomStep(g.Pos, m, rng)
	}
	return greedyStep(g.Pos, g.target(pac), m, rng)
}

func legalNeighbors(p core.Point, m *Maze) []core.Point {
	out := make([]core.Point, 0, 4)
	for _, n := range p.Neighbors() {
		if m.GhostCanEnter(n) {
			out = append(out, n)
		}
	}
	return out
}

// greedyStep moves one cell toward target by Manhattan distance, keeping
// the first candidate on ties. A ghost with no legal neighbor stays put.
func greedyStep(pos, target core.Point, m *Maze, rng *rand.Rand) core.Point {
	moves := legalNeighbors(pos, m)
	if len(moves) == 0 {
		return pos
	}

	best := moves[0]
	for _, mv := range moves[1:] {
		if mv.Manhattan(target) < best.Manhattan(target) {
			best = mv
		}
	}

	if best == pos {
		alternatives := core.Without(moves, pos)
		if len(alternatives) > 0 {
			return alternatives[rng.Intn(len(alternatives))]
		}
	}
	return best
}

func randomStep(pos core.Point, m *Maze, rng *rand.Rand) core.Point {
	moves := legalNeighbors(pos, m)
	if len(moves) == 0 {
		return pos
	}
	return moves[rng.Intn(len(moves))]
}
