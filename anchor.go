package geom

// Anchor represents a reference position within a rectangle.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

// AnchorPoint returns the point at the anchor position of the rectangle.
func (r Rect) AnchorPoint(anchor Anchor) Point {
	var x, y float64

	switch anchor {
	case AnchorTopLeft, AnchorMiddleLeft, AnchorBottomLeft:
		x = r.MinX()
	case AnchorTopCenter, AnchorMiddleCenter, AnchorBottomCenter:
		x = r.MinX() + r.Size.Width/2
	case AnchorTopRight, AnchorMiddleRight, AnchorBottomRight:
		x = r.MaxX()
	}

	switch anchor {
	case AnchorTopLeft, AnchorTopCenter, AnchorTopRight:
		y = r.MaxY()
	case AnchorMiddleLeft, AnchorMiddleCenter, AnchorMiddleRight:
		y = r.MinY() + r.Size.Height/2
	case AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight:
		y = r.MinY()
	}

	return Point{x, y}
}

// PinFrame creates a frame of the given size whose anchor position sits
// at the given point.
func PinFrame(size Size, at Point, anchor Anchor) Frame {
	var x, y float64

	switch anchor {
	case AnchorTopLeft, AnchorMiddleLeft, AnchorBottomLeft:
		x = at.X
	case AnchorTopCenter, AnchorMiddleCenter, AnchorBottomCenter:
		x = at.X - size.Width/2
	case AnchorTopRight, AnchorMiddleRight, AnchorBottomRight:
		x = at.X - size.Width
	}

	switch anchor {
	case AnchorTopLeft, AnchorTopCenter, AnchorTopRight:
		y = at.Y - size.Height
	case AnchorMiddleLeft, AnchorMiddleCenter, AnchorMiddleRight:
		y = at.Y - size.Height/2
	case AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight:
		y = at.Y
	}

	return NewFrame(x, y, size.Width, size.Height)
}

// CenterIn moves the frame so its center coincides with the rectangle's
// center, preserving the frame's size.
func (f *Frame) CenterIn(r Rect) {
	f.X = r.Origin.X + (r.Size.Width-f.Width)/2
	f.Y = r.Origin.Y + (r.Size.Height-f.Height)/2
}
