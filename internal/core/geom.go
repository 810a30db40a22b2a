// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a cell coordinate on the board.
type Point struct {
	X, Y int
}

// Add returns the point translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Rect represents an axis-aligned box of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Grid is the square playing field. Cells run from (0, 0) to (Size-1, Size-1).
type Grid struct {
	Size int
}

// NewGrid creates a square grid with size cells per side.
func NewGrid(size int) Grid {
	return Grid{Size: size}
}

// Bounds returns the grid as a rectangle anchored at the origin.
func (g Grid) Bounds() Rect {
	return NewRect(0, 0, g.Size, g.Size)
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return g.Bounds().Contains(p.X, p.Y)
}
