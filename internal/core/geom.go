// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle of terminal cells.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CellMap converts between a rectangle of terminal cells and a pixel viewport
// whose origin is the rectangle's top-left corner.
type CellMap struct {
	Area  Rect    // cells covered by the viewport
	CellW float64 // pixels per cell horizontally
	CellH float64 // pixels per cell vertically
}

// ViewportSize returns the viewport dimensions in pixels.
func (m CellMap) ViewportSize() (float64, float64) {
	return float64(m.Area.W) * m.CellW, float64(m.Area.H) * m.CellH
}

// CellToPixel returns the pixel at the centre of a screen cell, relative to
// the viewport origin. Cells outside the area map outside the viewport.
func (m CellMap) CellToPixel(col, row int) (float64, float64) {
	x := (float64(col-m.Area.X) + 0.5) * m.CellW
	y := (float64(row-m.Area.Y) + 0.5) * m.CellH
	return x, y
}

// PixelToCell returns the screen cell containing a viewport pixel.
func (m CellMap) PixelToCell(x, y float64) (int, int) {
	col := m.Area.X + floorDiv(x, m.CellW)
	row := m.Area.Y + floorDiv(y, m.CellH)
	return col, row
}

// PixelRect returns the cells covered by a pixel-space square.
// At least one cell is covered so small shapes stay visible.
func (m CellMap) PixelRect(x, y, size float64) Rect {
	col, row := m.PixelToCell(x, y)
	endCol, endRow := m.PixelToCell(x+size, y+size)
	w := max(1, endCol-col)
	h := max(1, endRow-row)
	return NewRect(col, row, w, h)
}

func floorDiv(v, unit float64) int {
	if unit <= 0 {
		return 0
	}
	q := v / unit
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}
