// Package core provides fundamental types shared by every engine and by the
// presentation layer. It has no external dependencies so game logic stays
// pure and testable.
package core

// Point is a board cell (column X, row Y). The same type doubles as a
// movement vector.
type Point struct {
	X, Y int
}

// Unit direction vectors.
var (
	DirUp    = Point{0, -1}
	DirDown  = Point{0, 1}
	DirLeft  = Point{-1, 0}
	DirRight = Point{1, 0}
)

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k int) Point {
	return Point{p.X * k, p.Y * k}
}

// Neg returns the opposite vector.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Wrap maps p onto a size x size torus.
func (p Point) Wrap(size int) Point {
	return Point{Mod(p.X, size), Mod(p.Y, size)}
}

// In reports whether p lies on a w x h board.
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Neighbors returns the four orthogonal neighbors in the order
// right, left, down, up.
func (p Point) Neighbors() [4]Point {
	return [4]Point{
		{p.X + 1, p.Y},
		{p.X - 1, p.Y},
		{p.X, p.Y + 1},
		{p.X, p.Y - 1},
	}
}

// Contains reports whether q is an element of pts.
func Contains(pts []Point, q Point) bool {
	for _, p := range pts {
		if p == q {
			return true
		}
	}
	return false
}

// Without returns a new slice holding pts minus every occurrence of q.
// The input slice is left untouched.
func Without(pts []Point, q Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if p != q {
			out = append(out, p)
		}
	}
	return out
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Mod is the non-negative remainder of a / n.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
