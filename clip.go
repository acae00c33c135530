package demofx

// ClipRegion is an axis-aligned rectangle constraining which buffer
// coordinates may be read or written. MaxX and MaxY are exclusive,
// matching slice-length semantics, and Inside and Outside are exact
// logical complements of each other at every coordinate.
type ClipRegion struct {
	MinX, MinY int
	MaxX, MaxY int // exclusive
}

// NewClipRegion creates a clip region. Callers must ensure minX <= maxX
// and minY <= maxY; a degenerate region contains no points.
func NewClipRegion(minX, minY, maxX, maxY int) ClipRegion {
	return ClipRegion{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Inside reports whether (x, y) lies within the region.
func (r ClipRegion) Inside(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Outside reports whether (x, y) lies outside the region. It is the
// exact complement of Inside.
func (r ClipRegion) Outside(x, y int) bool {
	return !r.Inside(x, y)
}

// Empty reports whether the region contains no points.
func (r ClipRegion) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Intersect returns the intersection of two regions. The result may be
// empty.
func (r ClipRegion) Intersect(o ClipRegion) ClipRegion {
	out := ClipRegion{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
	if out.Empty() {
		return ClipRegion{}
	}
	return out
}

// Width returns the horizontal extent of the region.
func (r ClipRegion) Width() int {
	if r.MaxX < r.MinX {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the vertical extent of the region.
func (r ClipRegion) Height() int {
	if r.MaxY < r.MinY {
		return 0
	}
	return r.MaxY - r.MinY
}
