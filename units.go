package geom

// Unit represents a measurement unit, expressed in points per unit.
type Unit float64

const (
	// Points - the base unit (1/72 inch)
	Pt Unit = 1
	// Inches
	In Unit = 72
	// Centimeters
	Cm Unit = 72 / 2.54
	// Millimeters
	Mm Unit = 72 / 25.4
	// Pixels at 96 DPI
	Px Unit = 72.0 / 96
)

// ToPoints converts a value in the given unit to points.
func ToPoints(value float64, unit Unit) float64 {
	return value * float64(unit)
}

// FromPoints converts points to the given unit.
func FromPoints(points float64, unit Unit) float64 {
	return points / float64(unit)
}

// Convert converts a value between two units.
func Convert(value float64, from, to Unit) float64 {
	return FromPoints(ToPoints(value, from), to)
}
