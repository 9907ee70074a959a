package core

// Bounds represents the axis-aligned arena centered on the origin
type Bounds struct {
	HalfWidth, HalfHeight float64
}

// BoundsFromSize builds arena bounds from full width and height
func BoundsFromSize(width, height float64) Bounds {
	return Bounds{HalfWidth: width / 2, HalfHeight: height / 2}
}

// Contains checks if point is inside or on the arena edge
func (b Bounds) Contains(x, y float64) bool {
	return x >= -b.HalfWidth && x <= b.HalfWidth && y >= -b.HalfHeight && y <= b.HalfHeight
}
