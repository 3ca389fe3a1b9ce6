// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal platform. It has no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in terminal cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned box in world units.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Intersects returns true if the two boxes overlap.
// Boxes that only share an edge do not overlap.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.X+other.W || other.X >= r.X+r.W {
		return false
	}
	if r.Y >= other.Y+other.H || other.Y >= r.Y+r.H {
		return false
	}
	return true
}

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector length.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector of v, or the zero vector if v is zero.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Distance returns the distance between two points.
func Distance(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// FromAngle returns the unit vector pointing at angle (radians, screen
// coordinates: 0 is +X, positive angles turn towards +Y).
func FromAngle(rad float64) Vec {
	return Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// CirclesOverlap reports whether two circles overlap (strictly).
func CirclesOverlap(a Vec, ra float64, b Vec, rb float64) bool {
	return Distance(a, b) < ra+rb
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
