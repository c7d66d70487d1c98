package geom

import "math"

// Point is a 2D coordinate on the arena plane. X/Y here map to world X/Z;
// the vertical world axis only appears in Point3.
type Point struct {
	X float64
	Y float64
}

// Point3 is a full world coordinate (Y is height).
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// At3 lifts a plane point to world space at the given height.
func (p Point) At3(height float64) Point3 {
	return Point3{X: p.X, Y: height, Z: p.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the Euclidean length of p as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Normalized returns p scaled to unit length. ok is false when p is too
// short to carry a direction; callers substitute their own fallback.
func (p Point) Normalized() (Point, bool) {
	l := p.Length()
	if l < 1e-9 {
		return Point{}, false
	}
	return Point{X: p.X / l, Y: p.Y / l}, true
}
