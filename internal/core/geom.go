// Package core provides fundamental types and utilities for the arcade
// runtime. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Vec2 is a 2-D position or velocity in screen units.
// Y grows downward, matching terminal rows.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Circle is a circular hitbox.
type Circle struct {
	Center Vec2
	Radius float64
}

// Overlaps reports whether two circles overlap.
// Touching circles (distance exactly equal to the radius sum) do not count
// as overlapping; the comparison is strict. Squared distances avoid sqrt.
func (c Circle) Overlaps(o Circle) bool {
	dx := c.Center.X - o.Center.X
	dy := c.Center.Y - o.Center.Y
	sum := c.Radius + o.Radius
	return dx*dx+dy*dy < sum*sum
}

// Rect represents an axis-aligned box used for HUD layout.
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
