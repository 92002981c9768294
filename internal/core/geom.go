package core

// Falling targets live in a normalized field: x and y both run 0..100,
// with y starting negative (above the visible field) and y > 100 meaning
// the target escaped past the bottom boundary. The platform maps field
// coordinates to screen cells at render time.

// FieldMax is the extent of the normalized play field on both axes.
const FieldMax = 100.0

// FieldToCell converts a normalized field coordinate to a cell index on an
// axis of the given size in cells.
func FieldToCell(v float64, cells int) int {
	if cells <= 0 {
		return 0
	}
	return Clamp(int(v/FieldMax*float64(cells)), 0, cells-1)
}

// CellToField converts a cell index back to the normalized field coordinate
// of the cell's center.
func CellToField(cell, cells int) float64 {
	if cells <= 0 {
		return 0
	}
	return (float64(cell) + 0.5) / float64(cells) * FieldMax
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
