package lane

import "github.com/Patrick74531/minigame-sub000/internal/geom"

// PortalConfig carries the tunables for portal resolution. DistanceFactor
// is constrained to [0.3, 1.0]; EdgeMargin is ignored when it would invert
// the arena rectangle.
type PortalConfig struct {
	EdgeMargin     float64
	DistanceFactor float64
}

const (
	minDistanceFactor = 0.3
	maxDistanceFactor = 1.0

	// Travel distances at or below this are treated as degenerate and
	// trigger the raw-corner fallback.
	degenerateDistance = 0.01
)

// ResolvePortals computes the three spawn portals for the given base
// position. The corner nearest the base is discarded so no portal opens
// next to the player's structure; the remaining three corner directions
// are ray-cast against the margin-shrunk arena rectangle and share the
// minimum exit distance, so all portals end up equidistant from the base.
//
// Degenerate input (base on a corner, ray with no positive exit) falls
// back to the three raw corner points. Same inputs always yield the same
// portals.
func ResolvePortals(base geom.Point, bounds geom.ArenaBounds, cfg PortalConfig) [Count]geom.Point {
	corners := farCorners(base, bounds)

	var dirs [Count]geom.Point
	for i, c := range corners {
		d, ok := c.Sub(base).Normalized()
		if !ok {
			// Base sits on a corner; no usable direction.
			return corners
		}
		dirs[i] = d
	}

	shrunk, _ := bounds.Shrink(cfg.EdgeMargin)

	shared := maxDistance
	for _, d := range dirs {
		t, ok := rayExitDistance(base, d, shrunk)
		if !ok || t <= degenerateDistance {
			return corners
		}
		if t < shared {
			shared = t
		}
	}
	shared *= clampFactor(cfg.DistanceFactor)

	var portals [Count]geom.Point
	for i, d := range dirs {
		portals[i] = base.Add(d.Scale(shared))
	}
	return portals
}

// farCorners returns the three arena corners that survive discarding the
// one nearest to base, preserving the bounds enumeration order.
func farCorners(base geom.Point, bounds geom.ArenaBounds) [Count]geom.Point {
	corners := bounds.Corners()

	nearest := 0
	nearestDist := base.DistanceTo(corners[0])
	for i := 1; i < len(corners); i++ {
		if d := base.DistanceTo(corners[i]); d < nearestDist {
			nearest = i
			nearestDist = d
		}
	}

	var far [Count]geom.Point
	j := 0
	for i, c := range corners {
		if i == nearest {
			continue
		}
		far[j] = c
		j++
	}
	return far
}

// rayExitDistance returns the maximum travel along dir from origin before
// leaving the rectangle: per axis, t = (exitPlane - origin) / dir toward
// the plane on the direction's side, keeping the minimum positive t.
// ok is false when neither axis yields a positive exit.
func rayExitDistance(origin, dir geom.Point, bounds geom.ArenaBounds) (float64, bool) {
	best := maxDistance
	found := false

	if dir.X != 0 {
		plane := bounds.HalfWidth
		if dir.X < 0 {
			plane = -bounds.HalfWidth
		}
		if t := (plane - origin.X) / dir.X; t > 0 {
			best = t
			found = true
		}
	}
	if dir.Y != 0 {
		plane := bounds.HalfHeight
		if dir.Y < 0 {
			plane = -bounds.HalfHeight
		}
		if t := (plane - origin.Y) / dir.Y; t > 0 && t < best {
			best = t
			found = true
		}
	}
	return best, found
}

func clampFactor(f float64) float64 {
	if f < minDistanceFactor {
		return minDistanceFactor
	}
	if f > maxDistanceFactor {
		return maxDistanceFactor
	}
	return f
}

const maxDistance = 1e18
