package pacman

import (
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// BoardSize is the width and height of the maze.
const BoardSize = 24

// layout is the maze, one string per row.
//
//	# wall   . food   o pellet   H ghost home   = home entry
var layout = [BoardSize]string{
	"........................",
	".###.###.######.###.###.",
	"...#.#.....##.....#.#...",
	"##o#.#.###.##.###.#.#o##",
	"##.#.#.###o##o###.#.#.##",
	"........................",
	"##.###.#.######.#.###.##",
	".......#...##...#.......",
	"######.###.##.###.######",
	"######.#........#.######",
	"######.#.##==##.#.######",
	"######.#.#HHHH#.#.######",
	".........#HHHH#.........",
	"######.#.######.#.######",
	"######.#........#.######",
	"######.#.######.#.######",
	"...........##...........",
	".#####.###.##.###.#####.",
	"o....#............#....o",
	"##.#.#.#.######.#.#.#.##",
	"##.#.#.#...##...#.#.#.##",
	"...#..o# #.##.# #o..#...",
	".###.#####.##.#####.###.",
	"........................",
}

// Maze holds the static sets of a layout. It is never mutated after
// parsing; edible items live in State.
type Maze struct {
	walls map[core.Point]bool
	home  map[core.Point]bool
	entry map[core.Point]bool

	Homes   []core.Point // in row-major order
	Food    []core.Point
	Pellets []core.Point
}

// ParseMaze reads a layout of equal-length rows.
func ParseMaze(rows []string) *Maze {
	m := &Maze{
		walls: make(map[core.Point]bool),
		home:  make(map[core.Point]bool),
		entry: make(map[core.Point]bool),
	}
	for y, row := range rows {
		for x, ch := range row {
			p := core.Pt(x, y)
			switch ch {
			case '#':
				m.walls[p] = true
			case '.':
				m.Food = append(m.Food, p)
			case 'o':
				m.Pellets = append(m.Pellets, p)
			case 'H':
				m.home[p] = true
				m.Homes = append(m.Homes, p)
			case '=':
				m.entry[p] = true
			}
		}
	}
	return m
}

// DefaultMaze parses the built-in layout.
func DefaultMaze() *Maze {
	return ParseMaze(layout[:])
}

// Wall reports whether p is a wall cell.
func (m *Maze) Wall(p core.Point) bool { return m.walls[p] }

// Home reports whether p is inside the ghost home.
func (m *Maze) Home(p core.Point) bool { return m.home[p] }

// Entry reports whether p is a home entry cell.
func (m *Maze) Entry(p core.Point) bool { return m.entry[p] }

// PlayerCanEnter reports whether Pac-Man may stand on p.
func (m *Maze) PlayerCanEnter(p core.Point) bool {
	return p.In(BoardSize, BoardSize) && !m.walls[p] && !m.home[p] && !m.entry[p]
}

// GhostCanEnter reports whether a ghost may stand on p. Ghosts may cross
// the home and its entry.
func (m *Maze) GhostCanEnter(p core.Point) bool {
	return p.In(BoardSize, BoardSize) && !m.walls[p]
}
