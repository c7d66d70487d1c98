package geom

// ArenaBounds describes the symmetric rectangular play area centered at the
// world origin. Immutable for a session.
type ArenaBounds struct {
	HalfWidth  float64
	HalfHeight float64
}

// Corners returns the four arena corners. The enumeration order is stable;
// portal indices and fallback corners depend on it.
func (b ArenaBounds) Corners() [4]Point {
	return [4]Point{
		{X: b.HalfWidth, Y: b.HalfHeight},
		{X: -b.HalfWidth, Y: b.HalfHeight},
		{X: -b.HalfWidth, Y: -b.HalfHeight},
		{X: b.HalfWidth, Y: -b.HalfHeight},
	}
}

// Contains reports whether p lies inside the bounds (edges inclusive).
func (b ArenaBounds) Contains(p Point) bool {
	return p.X >= -b.HalfWidth && p.X <= b.HalfWidth &&
		p.Y >= -b.HalfHeight && p.Y <= b.HalfHeight
}

// Clamp returns p moved to the nearest point inside the bounds.
func (b ArenaBounds) Clamp(p Point) Point {
	return Point{
		X: clamp(p.X, -b.HalfWidth, b.HalfWidth),
		Y: clamp(p.Y, -b.HalfHeight, b.HalfHeight),
	}
}

// Shrink pulls every wall inward by margin. ok is false when the margin
// would invert the rectangle; callers fall back to the full bounds.
func (b ArenaBounds) Shrink(margin float64) (ArenaBounds, bool) {
	s := ArenaBounds{
		HalfWidth:  b.HalfWidth - margin,
		HalfHeight: b.HalfHeight - margin,
	}
	if s.HalfWidth <= 0 || s.HalfHeight <= 0 {
		return b, false
	}
	return s, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
