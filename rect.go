package geom

import (
	"fmt"
	"math"
)

// Rect is the native axis-aligned rectangle, an origin (the lower-left
// corner) plus a size. Unlike Frame it carries no mutation policy; its
// accessors are plain reads.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect creates a rectangle from its four coordinates.
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		Origin: Point{X: x, Y: y},
		Size:   Size{Width: width, Height: height},
	}
}

// RectFromPoints creates a rectangle spanning two corner points. The
// result is canonical: the origin is the minimum corner and the extents
// are non-negative.
func RectFromPoints(p1, p2 Point) Rect {
	return NewRect(
		math.Min(p1.X, p2.X),
		math.Min(p1.Y, p2.Y),
		math.Abs(p2.X-p1.X),
		math.Abs(p2.Y-p1.Y),
	)
}

// MinX returns the left edge X coordinate.
func (r Rect) MinX() float64 {
	return r.Origin.X
}

// MinY returns the bottom edge Y coordinate.
func (r Rect) MinY() float64 {
	return r.Origin.Y
}

// MaxX returns the right edge X coordinate.
func (r Rect) MaxX() float64 {
	return r.Origin.X + r.Size.Width
}

// MaxY returns the top edge Y coordinate.
func (r Rect) MaxY() float64 {
	return r.Origin.Y + r.Size.Height
}

// Left is an alias for MinX.
func (r Rect) Left() float64 {
	return r.MinX()
}

// Right is an alias for MaxX.
func (r Rect) Right() float64 {
	return r.MaxX()
}

// Bottom is an alias for MinY.
func (r Rect) Bottom() float64 {
	return r.MinY()
}

// Top is an alias for MaxY.
func (r Rect) Top() float64 {
	return r.MaxY()
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{
		X: r.Origin.X + r.Size.Width/2,
		Y: r.Origin.Y + r.Size.Height/2,
	}
}

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point {
	return Point{r.MinX(), r.MinY()}
}

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point {
	return Point{r.MaxX(), r.MinY()}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{r.MinX(), r.MaxY()}
}

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point {
	return Point{r.MaxX(), r.MaxY()}
}

// Area returns width * height.
func (r Rect) Area() float64 {
	return r.Size.Width * r.Size.Height
}

// IsEmpty returns true if either extent is zero or negative.
func (r Rect) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// Canon returns a copy with non-negative extents, swapping edges as
// needed so the origin is the minimum corner.
func (r Rect) Canon() Rect {
	c := r
	if c.Size.Width < 0 {
		c.Origin.X += c.Size.Width
		c.Size.Width = -c.Size.Width
	}
	if c.Size.Height < 0 {
		c.Origin.Y += c.Size.Height
		c.Size.Height = -c.Size.Height
	}
	return c
}

// Offset returns the rectangle moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return NewRect(r.Origin.X+dx, r.Origin.Y+dy, r.Size.Width, r.Size.Height)
}

// Inset returns the rectangle shrunk by amount on all sides.
func (r Rect) Inset(amount float64) Rect {
	return NewRect(
		r.Origin.X+amount,
		r.Origin.Y+amount,
		r.Size.Width-2*amount,
		r.Size.Height-2*amount,
	)
}

// Outset returns the rectangle grown by amount on all sides.
func (r Rect) Outset(amount float64) Rect {
	return r.Inset(-amount)
}

// String returns the rectangle as "(x, y; width x height)".
func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g; %g x %g)", r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}
