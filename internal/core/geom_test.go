package core

import "testing"

func TestRect(t *testing.T) {
	// A play area below a two-row HUD.
	r := NewRect(1, 2, 8, 5)

	if r.Right() != 9 || r.Bottom() != 7 {
		t.Errorf("edges = (%d, %d), expected (9, 7)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 5 || cy != 4 {
		t.Errorf("Center() = (%d, %d), expected (5, 4)", cx, cy)
	}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 1, 2, true},
		{"bottom-right cell", 8, 6, true},
		{"hud row", 4, 1, false},
		{"border column", 0, 3, false},
		{"right edge is exclusive", 9, 3, false},
		{"bottom edge is exclusive", 4, 7, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCellMapRoundTrip(t *testing.T) {
	m := CellMap{Area: NewRect(0, 2, 50, 20), CellW: 10, CellH: 20}

	w, h := m.ViewportSize()
	if w != 500 || h != 400 {
		t.Fatalf("ViewportSize() = (%v, %v), expected (500, 400)", w, h)
	}

	tests := []struct {
		col, row int
		x, y     float64
	}{
		{0, 2, 5, 10},
		{12, 2, 125, 10},
		{49, 21, 495, 390},
	}

	for _, tc := range tests {
		x, y := m.CellToPixel(tc.col, tc.row)
		if x != tc.x || y != tc.y {
			t.Errorf("CellToPixel(%d, %d) = (%v, %v), expected (%v, %v)", tc.col, tc.row, x, y, tc.x, tc.y)
		}
		col, row := m.PixelToCell(x, y)
		if col != tc.col || row != tc.row {
			t.Errorf("PixelToCell(%v, %v) = (%d, %d), expected (%d, %d)", x, y, col, row, tc.col, tc.row)
		}
	}
}

func TestCellMapOutsideArea(t *testing.T) {
	m := CellMap{Area: NewRect(0, 2, 50, 20), CellW: 10, CellH: 20}

	// The HUD row above the area maps above the viewport.
	_, y := m.CellToPixel(5, 0)
	if y >= 0 {
		t.Errorf("cell above the area should map to negative y, got %v", y)
	}

	// Negative pixels floor towards the row above.
	_, row := m.PixelToCell(5, -1)
	if row != 1 {
		t.Errorf("PixelToCell(_, -1) row = %d, expected 1", row)
	}
}

func TestCellMapPixelRect(t *testing.T) {
	m := CellMap{Area: NewRect(0, 0, 50, 20), CellW: 10, CellH: 20}

	r := m.PixelRect(100, 100, 40)
	if r != NewRect(10, 5, 4, 2) {
		t.Errorf("PixelRect(100, 100, 40) = %+v", r)
	}

	small := m.PixelRect(0, 0, 1)
	if small.W != 1 || small.H != 1 {
		t.Errorf("tiny squares should still cover one cell, got %+v", small)
	}
}
