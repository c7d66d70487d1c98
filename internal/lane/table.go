package lane

import (
	"github.com/Patrick74531/minigame-sub000/internal/geom"
	"github.com/Patrick74531/minigame-sub000/internal/model"
)

// Settings bundles the numeric tunables consumed by the geometry queries.
type Settings struct {
	EdgeMargin        float64
	DistanceFactor    float64
	JitterRadius      float64
	InwardFocusOffset float64
	Unlock            UnlockSchedule
}

// RoutingTable is the immutable product of portal resolution and lane
// routing for one (base, bounds) pair. Built once when the arena is
// established; every method is a read-only query, safe for concurrent
// use.
type RoutingTable struct {
	base      geom.Point
	bounds    geom.ArenaBounds
	settings  Settings
	routing   Routing
	polylines map[Lane][]geom.Point
}

// NewRoutingTable resolves portals and routes them to lanes. polylines
// may be nil, in which case each lane's reference path defaults to the
// straight base-to-portal segment.
func NewRoutingTable(base geom.Point, bounds geom.ArenaBounds, s Settings, polylines map[Lane][]geom.Point) *RoutingTable {
	portals := ResolvePortals(base, bounds, PortalConfig{
		EdgeMargin:     s.EdgeMargin,
		DistanceFactor: s.DistanceFactor,
	})
	routing := RoutePortals(base, portals[:])

	if polylines == nil {
		polylines = make(map[Lane][]geom.Point, Count)
		for l := Lane(0); l < Count; l++ {
			portal, _ := routing.PortalFor(l)
			polylines[l] = []geom.Point{portal, base}
		}
	}

	return &RoutingTable{
		base:      base,
		bounds:    bounds,
		settings:  s,
		routing:   routing,
		polylines: polylines,
	}
}

// Base returns the defended base position.
func (t *RoutingTable) Base() geom.Point { return t.base }

// Bounds returns the arena bounds.
func (t *RoutingTable) Bounds() geom.ArenaBounds { return t.bounds }

// Portals returns the routed portal set.
func (t *RoutingTable) Portals() []geom.Point { return t.routing.Portals }

// Routing returns the lane-to-portal assignment.
func (t *RoutingTable) Routing() Routing { return t.routing }

// ActivePortalCount returns how many portals are unlocked at waveNumber.
func (t *RoutingTable) ActivePortalCount(waveNumber int) int {
	return ActivePortalCount(waveNumber, len(t.routing.Portals), t.settings.Unlock)
}

// ActiveLanes returns the lanes whose portal is unlocked at waveNumber,
// in Top, Mid, Bottom order. Grows monotonically with the wave number
// because portal order is stable.
func (t *RoutingTable) ActiveLanes(waveNumber int) []Lane {
	active := t.ActivePortalCount(waveNumber)
	lanes := make([]Lane, 0, Count)
	for l := Lane(0); l < Count; l++ {
		if t.routing.PortalIndex[l] < active {
			lanes = append(lanes, l)
		}
	}
	return lanes
}

// ClassifyLane returns the lane whose reference path is nearest to p.
func (t *RoutingTable) ClassifyLane(p geom.Point) Lane {
	return ClassifyLane(p, t.polylines)
}

// LaneByPortalRank returns the flank label of the given portal among the
// portals active at waveNumber.
func (t *RoutingTable) LaneByPortalRank(waveNumber, portalIndex int) Flank {
	return LaneByPortalRank(waveNumber, t.routing.Portals, portalIndex, t.settings.Unlock)
}

// SampleSpawnPosition returns a jittered, bounds-clamped spawn coordinate
// on the lane, kept away from the base per the configured jitter radius.
func (t *RoutingTable) SampleSpawnPosition(l Lane) geom.Point {
	base := t.base
	return SampleSpawnPosition(l, &t.routing, t.settings.JitterRadius, t.bounds, &base)
}

// UnlockFocus returns the camera/guidance point for a newly unlocked lane.
func (t *RoutingTable) UnlockFocus(l Lane) geom.Point3 {
	return UnlockFocus(l, &t.routing, t.bounds, t.settings.InwardFocusOffset)
}

// UnlockPadFocus returns the focus point for the nearest locked building
// pad on the lane, preferred over the raw portal focus when ok.
func (t *RoutingTable) UnlockPadFocus(l Lane, pads []model.BuildingPad, lockedTypes map[string]bool) (geom.Point3, bool) {
	return UnlockPadFocus(l, pads, lockedTypes, t.polylines, t.bounds, t.base)
}
