package geom

// EdgeInsets represents spacing applied inward from each edge of a
// rectangle.
type EdgeInsets struct {
	Top, Right, Bottom, Left float64
}

// NewEdgeInsets creates new edge insets.
func NewEdgeInsets(top, right, bottom, left float64) EdgeInsets {
	return EdgeInsets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// UniformInsets creates insets with the same value on all sides.
func UniformInsets(value float64) EdgeInsets {
	return EdgeInsets{value, value, value, value}
}

// SymmetricInsets creates insets with vertical and horizontal values.
func SymmetricInsets(vertical, horizontal float64) EdgeInsets {
	return EdgeInsets{vertical, horizontal, vertical, horizontal}
}

// Horizontal returns left + right.
func (in EdgeInsets) Horizontal() float64 {
	return in.Left + in.Right
}

// Vertical returns top + bottom.
func (in EdgeInsets) Vertical() float64 {
	return in.Top + in.Bottom
}

// Apply returns the rectangle shrunk by the insets.
func (in EdgeInsets) Apply(r Rect) Rect {
	return NewRect(
		r.Origin.X+in.Left,
		r.Origin.Y+in.Bottom,
		r.Size.Width-in.Horizontal(),
		r.Size.Height-in.Vertical(),
	)
}

// InsetBy shrinks the frame in place by the insets.
func (f *Frame) InsetBy(in EdgeInsets) {
	f.X += in.Left
	f.Y += in.Bottom
	f.Width -= in.Horizontal()
	f.Height -= in.Vertical()
}
