// Package kit holds the drawing and bookkeeping helpers shared by the game
// engines.
package kit

import (
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// HUDHeight is the number of screen rows used by HUD.
const HUDHeight = 2

// HUD draws a status line with left and right aligned text and a separator.
func HUD(dst *core.Screen, left, right string) {
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorYellow)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// Overlay draws a boxed two-line message in the middle of the screen.
func Overlay(dst *core.Screen, line1, line2 string) {
	w := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		for x := r.X + 1; x < r.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(r, core.ColorBrightWhite)
	dst.DrawTextCentered(r.Y+1, line1)
	dst.DrawTextCentered(r.Y+3, line2)
}

// TooSmall renders the resize hint used when a board does not fit.
func TooSmall(dst *core.Screen, need core.Point) {
	Overlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", need.X, need.Y))
}

// Board maps board cells to screen positions. Each cell is CellW
// characters wide and one row tall, inside a one-character frame.
type Board struct {
	X, Y       int // screen position of cell (0,0)
	Cols, Rows int
	CellW      int
}

// Layout centers a cols x rows board below the HUD. ok is false when the
// screen cannot hold it.
func Layout(dst *core.Screen, cols, rows, cellW int) (b Board, ok bool) {
	need := Need(cols, rows, cellW)
	b = Board{Cols: cols, Rows: rows, CellW: cellW}
	b.X = (dst.Width() - cols*cellW) / 2
	b.Y = HUDHeight + 1
	return b, dst.Width() >= need.X && dst.Height() >= need.Y
}

// Need returns the screen size required by a board.
func Need(cols, rows, cellW int) core.Point {
	return core.Pt(cols*cellW+2, rows+HUDHeight+2)
}

// Frame draws the border around the board.
func (b Board) Frame(dst *core.Screen, c core.Color) {
	dst.DrawBox(core.NewRect(b.X-1, b.Y-1, b.Cols*b.CellW+2, b.Rows+2), c)
}

// Set draws glyph at board cell p. The glyph is repeated or clipped to
// the cell width.
func (b Board) Set(dst *core.Screen, p core.Point, glyph rune, c core.Color) {
	for i := 0; i < b.CellW; i++ {
		dst.SetColored(b.X+p.X*b.CellW+i, b.Y+p.Y, glyph, c)
	}
}

// Text writes s starting at board cell p.
func (b Board) Text(dst *core.Screen, p core.Point, s string, c core.Color) {
	dst.DrawTextColored(b.X+p.X*b.CellW, b.Y+p.Y, s, c)
}
