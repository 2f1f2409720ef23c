package geom

import "fmt"

// Size represents 2D dimensions.
type Size struct {
	Width, Height float64
}

// NewSize creates a new size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Scale returns a scaled size.
func (s Size) Scale(factor float64) Size {
	return Size{
		Width:  s.Width * factor,
		Height: s.Height * factor,
	}
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// IsLandscape returns true if width > height.
func (s Size) IsLandscape() bool {
	return s.Width > s.Height
}

// IsPortrait returns true if height > width.
func (s Size) IsPortrait() bool {
	return s.Height > s.Width
}

// Landscape returns the size in landscape orientation.
func (s Size) Landscape() Size {
	if s.Width < s.Height {
		return Size{s.Height, s.Width}
	}
	return s
}

// Portrait returns the size in portrait orientation.
func (s Size) Portrait() Size {
	if s.Width > s.Height {
		return Size{s.Height, s.Width}
	}
	return s
}

// AspectRatio returns width/height.
func (s Size) AspectRatio() float64 {
	if s.Height == 0 {
		return 0
	}
	return s.Width / s.Height
}

// String returns the size as "width x height".
func (s Size) String() string {
	return fmt.Sprintf("%g x %g", s.Width, s.Height)
}
