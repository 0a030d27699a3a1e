package core

import "testing"

func TestPointWrap(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		size     int
		expected Point
	}{
		{"inside", Pt(3, 4), 24, Pt(3, 4)},
		{"off right edge", Pt(24, 5), 24, Pt(0, 5)},
		{"off left edge", Pt(-1, 5), 24, Pt(23, 5)},
		{"off bottom edge", Pt(5, 24), 24, Pt(5, 0)},
		{"off top edge", Pt(5, -1), 24, Pt(5, 23)},
		{"far negative", Pt(-25, -49), 24, Pt(23, 23)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Wrap(tc.size); got != tc.expected {
				t.Errorf("Wrap(%v, %d) = %v, expected %v", tc.p, tc.size, got, tc.expected)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, -2)
	q := Pt(1, 5)

	if got := p.Add(q); got != Pt(4, 3) {
		t.Errorf("Add = %v, expected (4,3)", got)
	}
	if got := p.Sub(q); got != Pt(2, -7) {
		t.Errorf("Sub = %v, expected (2,-7)", got)
	}
	if got := q.Scale(2); got != Pt(2, 10) {
		t.Errorf("Scale = %v, expected (2,10)", got)
	}
	if got := DirLeft.Neg(); got != DirRight {
		t.Errorf("Neg(left) = %v, expected right", got)
	}
	if got := p.Manhattan(q); got != 9 {
		t.Errorf("Manhattan = %d, expected 9", got)
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		p        Point
		expected bool
	}{
		{Pt(0, 0), true},
		{Pt(9, 19), true},
		{Pt(10, 0), false},
		{Pt(0, 20), false},
		{Pt(-1, 3), false},
	}

	for _, tc := range tests {
		if got := tc.p.In(10, 20); got != tc.expected {
			t.Errorf("%v.In(10, 20) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestNeighborsOrder(t *testing.T) {
	n := Pt(5, 5).Neighbors()
	expected := [4]Point{Pt(6, 5), Pt(4, 5), Pt(5, 6), Pt(5, 4)}
	if n != expected {
		t.Errorf("Neighbors = %v, expected %v", n, expected)
	}
}

func TestWithoutLeavesInputUntouched(t *testing.T) {
	pts := []Point{Pt(1, 1), Pt(2, 2), Pt(1, 1)}
	out := Without(pts, Pt(1, 1))

	if len(out) != 1 || out[0] != Pt(2, 2) {
		t.Errorf("Without = %v, expected [(2,2)]", out)
	}
	if len(pts) != 3 || pts[0] != Pt(1, 1) {
		t.Errorf("input mutated: %v", pts)
	}
	if !Contains(pts, Pt(2, 2)) || Contains(out, Pt(1, 1)) {
		t.Error("Contains disagrees with Without")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside top", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{-3, -1, 1, -1},
		{3, -1, 1, 1},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestModAbs(t *testing.T) {
	if Mod(-1, 24) != 23 {
		t.Errorf("Mod(-1, 24) = %d, expected 23", Mod(-1, 24))
	}
	if Mod(48, 24) != 0 {
		t.Errorf("Mod(48, 24) = %d, expected 0", Mod(48, 24))
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs mismatch")
	}
}
