package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalized(t *testing.T) {
	tests := []struct {
		name   string
		in     Point
		want   Point
		wantOK bool
	}{
		{"unit x", Point{X: 5, Y: 0}, Point{X: 1, Y: 0}, true},
		{"diagonal", Point{X: 3, Y: 4}, Point{X: 0.6, Y: 0.8}, true},
		{"negative", Point{X: 0, Y: -2}, Point{X: 0, Y: -1}, true},
		{"zero vector", Point{}, Point{}, false},
		{"sub-epsilon", Point{X: 1e-12, Y: 1e-12}, Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Normalized()
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.InDelta(t, tt.want.X, got.X, 1e-9)
				assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
				assert.InDelta(t, 1.0, got.Length(), 1e-9)
			}
		})
	}
}

func TestBoundsClamp(t *testing.T) {
	b := ArenaBounds{HalfWidth: 25, HalfHeight: 10}

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside unchanged", Point{X: 3, Y: -4}, Point{X: 3, Y: -4}},
		{"right overflow", Point{X: 30, Y: 0}, Point{X: 25, Y: 0}},
		{"both overflow", Point{X: -40, Y: 99}, Point{X: -25, Y: 10}},
		{"on edge", Point{X: 25, Y: -10}, Point{X: 25, Y: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Clamp(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, b.Contains(got))
		})
	}
}

func TestBoundsShrink(t *testing.T) {
	b := ArenaBounds{HalfWidth: 25, HalfHeight: 25}

	s, ok := b.Shrink(4)
	assert.True(t, ok)
	assert.Equal(t, ArenaBounds{HalfWidth: 21, HalfHeight: 21}, s)

	// Margin larger than the half extent inverts the rectangle.
	s, ok = b.Shrink(30)
	assert.False(t, ok)
	assert.Equal(t, b, s, "failed shrink returns the full bounds")
}

func TestPointSegmentDistance(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 0}

	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"above middle", Point{X: 5, Y: 3}, 3},
		{"beyond end", Point{X: 14, Y: 3}, 5},
		{"before start", Point{X: -3, Y: 4}, 5},
		{"on segment", Point{X: 7, Y: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PointSegmentDistance(tt.p, a, b), 1e-9)
		})
	}

	t.Run("degenerate segment", func(t *testing.T) {
		assert.InDelta(t, 5.0, PointSegmentDistance(Point{X: 3, Y: 4}, a, a), 1e-9)
	})
}

func TestPointPolylineDistance(t *testing.T) {
	// L-shaped path: (0,0) -> (10,0) -> (10,10).
	poly := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	assert.InDelta(t, 2.0, PointPolylineDistance(Point{X: 5, Y: 2}, poly), 1e-9)
	assert.InDelta(t, 3.0, PointPolylineDistance(Point{X: 13, Y: 5}, poly), 1e-9)
	assert.InDelta(t, math.Sqrt(2), PointPolylineDistance(Point{X: 11, Y: 11}, poly), 1e-9)

	assert.Equal(t, maxDistance, PointPolylineDistance(Point{}, nil))
	assert.InDelta(t, 5.0, PointPolylineDistance(Point{X: 3, Y: 4}, []Point{{X: 0, Y: 0}}), 1e-9)
}
