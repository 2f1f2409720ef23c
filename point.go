package geom

import "fmt"

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// NewPoint creates a new point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Origin returns the origin point (0, 0).
func Origin() Point {
	return Point{0, 0}
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Scale returns p * factor.
func (p Point) Scale(factor float64) Point {
	return Point{p.X * factor, p.Y * factor}
}

// String returns the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
