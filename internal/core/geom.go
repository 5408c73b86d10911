// Package core provides fundamental types and utilities shared by the game
// logic and the frontends. It has no external dependencies (especially no
// Bubble Tea or Ebiten) so scenes and rules stay pure and testable.
package core

// Rect is an axis-aligned rectangle on the logical cell grid.
// Buttons and the answer box are laid out and hit-tested with it.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w×h rectangle horizontally centered on cx with its
// top edge at y.
func CenteredRect(cx, y, w, h int) Rect {
	return Rect{X: cx - w/2, Y: y, W: w, H: h}
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

// Center returns the center cell of the rectangle. Even sizes round
// toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
