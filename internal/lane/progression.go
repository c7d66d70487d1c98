package lane

import (
	"sort"

	"github.com/Patrick74531/minigame-sub000/internal/geom"
)

// UnlockSchedule holds the wave thresholds at which the second and third
// portals open. Wave3 must be greater than Wave2; config validation
// enforces that before the schedule reaches this package.
type UnlockSchedule struct {
	Wave2 int
	Wave3 int
}

// ActivePortalCount returns how many portals are unlocked at the given
// wave: one before Wave2, two from Wave2, three from Wave3, clamped to
// totalPortals. Monotonically non-decreasing in waveNumber.
func ActivePortalCount(waveNumber, totalPortals int, s UnlockSchedule) int {
	if totalPortals <= 0 {
		return 0
	}
	count := 1
	if waveNumber >= s.Wave2 {
		count = 2
	}
	if waveNumber >= s.Wave3 {
		count = 3
	}
	if count > totalPortals {
		count = totalPortals
	}
	return count
}

// ClassifyLane returns the lane whose polyline is nearest to p, measured
// as the minimum point-to-segment distance over every segment. Ties keep
// the earlier lane in the Mid, Top, Bottom evaluation order. Lanes with
// no polyline never win.
func ClassifyLane(p geom.Point, polylines map[Lane][]geom.Point) Lane {
	best := Mid
	bestDist := maxDistance
	for _, l := range classifyOrder {
		if d := geom.PointPolylineDistance(p, polylines[l]); d < bestDist {
			best = l
			bestDist = d
		}
	}
	return best
}

// LaneByPortalRank maps the portal at portalIndex to its left/center/right
// flank among the currently active portals, ranked by position (x, then
// y). A single active portal is the center; two split into left and
// right. An index outside the active subset is ranked against the full
// portal list so UI callers always get a stable label.
func LaneByPortalRank(waveNumber int, portals []geom.Point, portalIndex int, s UnlockSchedule) Flank {
	if portalIndex < 0 || portalIndex >= len(portals) {
		return FlankCenter
	}

	active := ActivePortalCount(waveNumber, len(portals), s)
	if portalIndex >= active {
		active = len(portals)
	}

	ranked := make([]int, active)
	for i := range ranked {
		ranked[i] = i
	}
	sort.Slice(ranked, func(a, b int) bool {
		pa, pb := portals[ranked[a]], portals[ranked[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		return pa.Y < pb.Y
	})

	rank := 0
	for i, idx := range ranked {
		if idx == portalIndex {
			rank = i
			break
		}
	}

	switch active {
	case 1:
		return FlankCenter
	case 2:
		if rank == 0 {
			return FlankLeft
		}
		return FlankRight
	default:
		switch rank {
		case 0:
			return FlankLeft
		case len(ranked) - 1:
			return FlankRight
		default:
			return FlankCenter
		}
	}
}
