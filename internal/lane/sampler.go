package lane

import (
	"math"
	"math/rand/v2"

	"github.com/Patrick74531/minigame-sub000/internal/geom"
	"github.com/Patrick74531/minigame-sub000/internal/model"
)

// FocusHeight is the fixed height of lane focus points above the arena
// plane.
const FocusHeight = 1.5

// Fraction of the jitter radius a spawn may drift toward the base before
// it is pushed back out.
const jitterApproachSlack = 0.2

// SampleSpawnPosition returns a spawn coordinate for the lane: the
// assigned portal jittered uniformly within a disk of jitterRadius and
// clamped to the arena bounds. When base is non-nil the sample is kept at
// least portalDistance - 0.2*jitterRadius away from it by projecting back
// out along the base-to-portal direction.
//
// An absent or empty routing falls back to the first enumeration corner.
func SampleSpawnPosition(l Lane, r *Routing, jitterRadius float64, bounds geom.ArenaBounds, base *geom.Point) geom.Point {
	portal, ok := r.PortalFor(l)
	if !ok {
		portal = bounds.Corners()[0]
	}
	if jitterRadius <= 0 {
		return portal
	}

	// Area-uniform disk sample; sqrt on the radius avoids clustering at
	// the portal center.
	angle := rand.Float64() * 2 * math.Pi
	radius := math.Sqrt(rand.Float64()) * jitterRadius
	sample := portal.Add(geom.Point{
		X: math.Cos(angle) * radius,
		Y: math.Sin(angle) * radius,
	})

	if base != nil {
		if dir, ok := portal.Sub(*base).Normalized(); ok {
			minDist := base.DistanceTo(portal) - jitterRadius*jitterApproachSlack
			if base.DistanceTo(sample) < minDist {
				sample = base.Add(dir.Scale(minDist))
			}
		}
	}

	return bounds.Clamp(sample)
}

// UnlockFocus returns the guidance point for a newly unlocked lane: the
// portal pulled inward along the lane's escape direction by inwardOffset,
// clamped to bounds, at FocusHeight.
func UnlockFocus(l Lane, r *Routing, bounds geom.ArenaBounds, inwardOffset float64) geom.Point3 {
	portal, ok := r.PortalFor(l)
	if !ok {
		portal = bounds.Corners()[0]
	}
	focus := portal
	if ok {
		focus = portal.Sub(r.Direction[l].Scale(inwardOffset))
	}
	return bounds.Clamp(focus).At3(FocusHeight)
}

// UnlockPadFocus returns the focus point for the locked building pad on
// the target lane nearest to the base, classifying each pad by its
// nearest lane polyline. ok is false when no locked pad sits on that
// lane; callers fall back to UnlockFocus.
func UnlockPadFocus(
	l Lane,
	pads []model.BuildingPad,
	lockedTypes map[string]bool,
	polylines map[Lane][]geom.Point,
	bounds geom.ArenaBounds,
	base geom.Point,
) (geom.Point3, bool) {
	var best geom.Point
	bestDist := maxDistance
	found := false

	for _, pad := range pads {
		if !lockedTypes[pad.Type] {
			continue
		}
		pos := pad.Position()
		if ClassifyLane(pos, polylines) != l {
			continue
		}
		if d := base.DistanceTo(pos); d < bestDist {
			best = pos
			bestDist = d
			found = true
		}
	}

	if !found {
		return geom.Point3{}, false
	}
	return bounds.Clamp(best).At3(FocusHeight), true
}
