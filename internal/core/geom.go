// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
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

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the point offset by the given direction.
func (p Point) Add(d Dir) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Chebyshev returns the king-move distance between two points.
func (p Point) Chebyshev(o Point) int {
	return Max(Abs(p.X-o.X), Abs(p.Y-o.Y))
}

// Dir is a unit step on the grid.
type Dir struct {
	DX, DY int
}

// Cardinal directions.
var (
	DirUp    = Dir{DX: 0, DY: -1}
	DirDown  = Dir{DX: 0, DY: 1}
	DirLeft  = Dir{DX: -1, DY: 0}
	DirRight = Dir{DX: 1, DY: 0}
)

// Cardinals returns the four directions in a fixed order (right, left, down, up).
func Cardinals() []Dir {
	return []Dir{DirRight, DirLeft, DirDown, DirUp}
}

// IsZero reports whether the direction is the null step.
func (d Dir) IsZero() bool {
	return d.DX == 0 && d.DY == 0
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
