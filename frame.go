// Package geom provides rectangle and positioning primitives for a
// lower-left-origin (Cartesian, y-up) 2D coordinate system.
//
// The central type is Frame, a mutable rectangle stored as an origin and
// an extent. Embedding a Frame in a concrete type gives that type the full
// derived-property surface (edges, center, native Rect conversion) with no
// extra code.
package geom

import (
	"fmt"
	"math"
)

// Unplaced returns the sentinel coordinate meaning "position not yet
// assigned". Constructors that leave a coordinate unspecified store this
// value rather than zero, so layout code can tell "not placed" apart from
// "placed at zero".
func Unplaced() float64 {
	return math.Inf(1)
}

// Frame is a mutable rectangle in a lower-left-origin coordinate system.
// X, Y, Width and Height are the sole stored state; every other property
// is derived from them. No constraint keeps Width or Height non-negative,
// and negative extents change how the edge setters behave (see SetRight).
type Frame struct {
	X, Y          float64 // Lower-left corner
	Width, Height float64
}

// NewFrame creates a frame from its four stored fields. Inputs are taken
// as-is: negative, infinite and NaN values are all legal and propagate
// through derived properties by ordinary floating-point arithmetic.
func NewFrame(x, y, width, height float64) Frame {
	return Frame{X: x, Y: y, Width: width, Height: height}
}

// UnplacedFrame creates an empty frame with no assigned position.
func UnplacedFrame() Frame {
	return NewFrame(Unplaced(), Unplaced(), 0, 0)
}

// FrameWithOrigin creates an empty frame positioned at origin.
func FrameWithOrigin(origin Point) Frame {
	return NewFrame(origin.X, origin.Y, 0, 0)
}

// FrameWithSize creates a frame of the given size with no assigned position.
func FrameWithSize(size Size) Frame {
	return NewFrame(Unplaced(), Unplaced(), size.Width, size.Height)
}

// FrameAt creates a frame with the given origin and size.
func FrameAt(origin Point, size Size) Frame {
	return NewFrame(origin.X, origin.Y, size.Width, size.Height)
}

// FrameWithX creates an empty frame with only its x coordinate assigned.
func FrameWithX(x float64) Frame {
	return NewFrame(x, Unplaced(), 0, 0)
}

// FrameWithY creates an empty frame with only its y coordinate assigned.
func FrameWithY(y float64) Frame {
	return NewFrame(Unplaced(), y, 0, 0)
}

// FrameWithWidth creates an unplaced frame with only its width assigned.
func FrameWithWidth(width float64) Frame {
	return NewFrame(Unplaced(), Unplaced(), width, 0)
}

// FrameWithHeight creates an unplaced frame with only its height assigned.
func FrameWithHeight(height float64) Frame {
	return NewFrame(Unplaced(), Unplaced(), 0, height)
}

// FrameOf creates a frame from a native rectangle. The copy is lossless:
// origin and size map field-for-field.
func FrameOf(r Rect) Frame {
	return NewFrame(r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}

// Framed is satisfied by any type that carries a mutable Frame.
// Embedding a Frame is enough: the promoted Bounds method returns the
// embedded frame. The method is deliberately not named Frame, which the
// embedded field would shadow.
type Framed interface {
	Bounds() *Frame
}

// Bounds returns the frame itself, satisfying Framed.
func (f *Frame) Bounds() *Frame {
	return f
}

// IsPlaced reports whether both coordinates have been assigned, i.e.
// neither still holds the Unplaced sentinel.
func (f Frame) IsPlaced() bool {
	return !math.IsInf(f.X, 1) && !math.IsInf(f.Y, 1)
}

// Origin returns the lower-left corner (X, Y).
func (f Frame) Origin() Point {
	return Point{f.X, f.Y}
}

// SetOrigin sets X and Y from the point's coordinates.
func (f *Frame) SetOrigin(origin Point) {
	f.X = origin.X
	f.Y = origin.Y
}

// Size returns the extent (Width, Height).
func (f Frame) Size() Size {
	return Size{f.Width, f.Height}
}

// SetSize sets Width and Height from the size's components.
func (f *Frame) SetSize(size Size) {
	f.Width = size.Width
	f.Height = size.Height
}

// Left returns the left edge X coordinate. Left is an alias for X.
func (f Frame) Left() float64 {
	return f.X
}

// SetLeft sets X.
func (f *Frame) SetLeft(v float64) {
	f.X = v
}

// Bottom returns the bottom edge Y coordinate. Bottom is an alias for Y.
func (f Frame) Bottom() float64 {
	return f.Y
}

// SetBottom sets Y.
func (f *Frame) SetBottom(v float64) {
	f.Y = v
}

// Right returns the right edge X coordinate, X + Width.
func (f Frame) Right() float64 {
	return f.X + f.Width
}

// SetRight moves the right edge to v. With a strictly positive width the
// frame slides: X becomes v - Width and the width is preserved. With a
// zero or negative width the frame grows from its anchor instead: X is
// preserved and Width becomes v - X.
func (f *Frame) SetRight(v float64) {
	setEdge(&f.X, &f.Width, v, false)
}

// Top returns the top edge Y coordinate, Y + Height.
func (f Frame) Top() float64 {
	return f.Y + f.Height
}

// SetTop moves the top edge to v, with the same slide-or-grow behavior
// as SetRight applied to Y and Height.
func (f *Frame) SetTop(v float64) {
	setEdge(&f.Y, &f.Height, v, false)
}

// MinX returns the smallest stored X coordinate. MinX is an alias for X.
func (f Frame) MinX() float64 {
	return f.X
}

// MinY returns the smallest stored Y coordinate. MinY is an alias for Y.
func (f Frame) MinY() float64 {
	return f.Y
}

// MaxX is an alias for Right.
func (f Frame) MaxX() float64 {
	return f.Right()
}

// MaxY is an alias for Top.
func (f Frame) MaxY() float64 {
	return f.Top()
}

// CenterX returns the horizontal center, X + Width/2.
func (f Frame) CenterX() float64 {
	return f.X + f.Width/2
}

// SetCenterX moves the horizontal center to v. With a strictly positive
// width X becomes v - Width/2 and the width is preserved; with a zero or
// negative width X is preserved and Width becomes (v - X) * 2.
func (f *Frame) SetCenterX(v float64) {
	setEdge(&f.X, &f.Width, v, true)
}

// CenterY returns the vertical center, Y + Height/2.
func (f Frame) CenterY() float64 {
	return f.Y + f.Height/2
}

// SetCenterY moves the vertical center to v, with the same behavior as
// SetCenterX applied to Y and Height.
func (f *Frame) SetCenterY(v float64) {
	setEdge(&f.Y, &f.Height, v, true)
}

// Center returns the center point.
func (f Frame) Center() Point {
	return Point{f.CenterX(), f.CenterY()}
}

// SetCenter moves the center to p, one axis at a time through SetCenterX
// and SetCenterY.
func (f *Frame) SetCenter(p Point) {
	f.SetCenterX(p.X)
	f.SetCenterY(p.Y)
}

// Rect returns the frame as a native rectangle. The copy is lossless:
// origin and size map field-for-field, with no coordinate flip.
func (f Frame) Rect() Rect {
	return Rect{
		Origin: Point{f.X, f.Y},
		Size:   Size{f.Width, f.Height},
	}
}

// Offset moves the frame by (dx, dy), preserving its size.
func (f *Frame) Offset(dx, dy float64) {
	f.X += dx
	f.Y += dy
}

// String returns the frame as "(x, y; width x height)".
func (f Frame) String() string {
	return fmt.Sprintf("(%g, %g; %g x %g)", f.X, f.Y, f.Width, f.Height)
}

// setEdge writes a derived coordinate that depends on one anchor field and
// one extent field. A strictly positive extent slides the anchor and keeps
// the extent; a zero or negative extent stays anchored and absorbs the
// change into the extent. half selects the center form, where the extent
// contributes at half scale.
func setEdge(anchor, extent *float64, v float64, half bool) {
	if *extent > 0 {
		if half {
			*anchor = v - *extent/2
		} else {
			*anchor = v - *extent
		}
		return
	}
	if half {
		*extent = (v - *anchor) * 2
	} else {
		*extent = v - *anchor
	}
}
