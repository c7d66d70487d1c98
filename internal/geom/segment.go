package geom

// PointSegmentDistance returns the distance from p to the segment [a, b].
// Degenerate segments (a == b) collapse to point distance.
func PointSegmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < 1e-12 {
		return p.DistanceTo(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.DistanceTo(a.Add(ab.Scale(t)))
}

// PointPolylineDistance returns the minimum distance from p to any segment
// of the polyline. A single-vertex polyline degenerates to point distance;
// an empty one returns +Inf semantics via a very large value so it never
// wins a nearest-polyline comparison.
func PointPolylineDistance(p Point, polyline []Point) float64 {
	switch len(polyline) {
	case 0:
		return maxDistance
	case 1:
		return p.DistanceTo(polyline[0])
	}
	best := PointSegmentDistance(p, polyline[0], polyline[1])
	for i := 2; i < len(polyline); i++ {
		if d := PointSegmentDistance(p, polyline[i-1], polyline[i]); d < best {
			best = d
		}
	}
	return best
}

const maxDistance = 1e18
