package tetris

import (
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Cell is a board position as (row, col).
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Shape is four block offsets relative to a piece's anchor.
type Shape [4]Cell

// Piece is a shape anchored on the board with its color.
type Piece struct {
	Shape  Shape      `json:"shape"`
	Anchor Cell       `json:"anchor"`
	Color  core.Color `json:"color"`
}

// Blocks returns the absolute board cells the piece covers.
func (p Piece) Blocks() [4]Cell {
	var out [4]Cell
	for i, o := range p.Shape {
		out[i] = Cell{Row: p.Anchor.Row + o.Row, Col: p.Anchor.Col + o.Col}
	}
	return out
}

// Moved returns p shifted by dr rows and dc columns.
func (p Piece) Moved(dr, dc int) Piece {
	p.Anchor = Cell{Row: p.Anchor.Row + dr, Col: p.Anchor.Col + dc}
	return p
}

// Rotated returns p turned 90 degrees clockwise around the integer
// centroid of its offsets.
func (p Piece) Rotated() Piece {
	var sr, sc int
	for _, o := range p.Shape {
		sr += o.Row
		sc += o.Col
	}
	cx, cy := sr/len(p.Shape), sc/len(p.Shape)

	var s Shape
	for i, o := range p.Shape {
		s[i] = Cell{Row: -(o.Col - cy) + cx, Col: (o.Row - cx) + cy}
	}
	p.Shape = s
	return p
}

// Shapes lists every spawnable shape; Shapes[i] is drawn in core.Shade(i).
var Shapes = [...]Shape{
	{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	{{0, 1}, {1, 1}, {1, 0}, {2, 1}},
	{{0, 0}, {1, 0}, {1, 1}, {2, 0}},
	{{0, 0}, {0, 1}, {1, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {0, 1}, {1, 2}},
	{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
	{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
	{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
	{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
	{{1, 0}, {1, 1}, {1, 2}, {0, 2}},
	{{1, 0}, {0, 0}, {0, 1}, {0, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
	{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	{{1, 0}, {1, 1}, {0, 1}, {0, 2}},
}

// Spawn is the anchor of every new piece.
var Spawn = Cell{Row: 0, Col: 5}

// NewPiece returns shape i at the spawn anchor.
func NewPiece(i int) Piece {
	return Piece{Shape: Shapes[i], Anchor: Spawn, Color: core.Shade(i)}
}
