package lane

import "github.com/Patrick74531/minigame-sub000/internal/geom"

// Routing is the bijection from lane to portal plus the true geometric
// escape direction from the base toward each assigned portal. With three
// or more portals the PortalIndex values are pairwise distinct.
type Routing struct {
	// Portals is the candidate set the indices refer to.
	Portals []geom.Point
	// PortalIndex maps lane -> index into Portals.
	PortalIndex [Count]int
	// Direction maps lane -> unit vector from base toward its portal.
	Direction [Count]geom.Point
}

// PortalFor returns the portal assigned to l. ok is false when the
// routing carries no portals at all.
func (r *Routing) PortalFor(l Lane) (geom.Point, bool) {
	if r == nil || len(r.Portals) == 0 {
		return geom.Point{}, false
	}
	idx := r.PortalIndex[l]
	if idx < 0 || idx >= len(r.Portals) {
		return geom.Point{}, false
	}
	return r.Portals[idx], true
}

// Score weight that lets portal distance break exact angular ties without
// ever overriding the directional term.
const tieBreakWeight = 1e-6

// RoutePortals assigns each portal to exactly one lane by greedy
// directional matching: lanes claim portals in priority order (Mid, Top,
// Bottom), each taking the still-unassigned portal whose base-relative
// direction best matches the lane's canonical direction. A portal that
// coincides with the base scores with the Mid canonical direction.
//
// With fewer than three portals the pool is not drained, so lanes may
// share a portal; this is the documented degraded mode, not an error.
func RoutePortals(base geom.Point, portals []geom.Point) Routing {
	r := Routing{Portals: portals}
	if len(portals) == 0 {
		return r
	}

	drainPool := len(portals) >= Count
	taken := make([]bool, len(portals))

	for _, l := range assignOrder {
		canonical := canonicalDirection[l]

		bestIdx := -1
		bestScore := 0.0
		for i, p := range portals {
			if drainPool && taken[i] {
				continue
			}
			dir, ok := p.Sub(base).Normalized()
			if !ok {
				dir = canonicalDirection[Mid]
			}
			score := dir.Dot(canonical) + tieBreakWeight*base.DistanceTo(p)
			if bestIdx < 0 || score > bestScore {
				bestIdx = i
				bestScore = score
			}
		}

		taken[bestIdx] = true
		r.PortalIndex[l] = bestIdx

		dir, ok := portals[bestIdx].Sub(base).Normalized()
		if !ok {
			dir = canonicalDirection[Mid]
		}
		r.Direction[l] = dir
	}
	return r
}
