package lane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Patrick74531/minigame-sub000/internal/geom"
	"github.com/Patrick74531/minigame-sub000/internal/model"
)

func TestSampleSpawnPosition_ZeroJitterReturnsPortal(t *testing.T) {
	base := geom.Point{}
	portals := []geom.Point{{X: 20, Y: 0}, {X: 14, Y: 14}, {X: 0, Y: 20}}
	r := RoutePortals(base, portals)
	bounds := geom.ArenaBounds{HalfWidth: 25, HalfHeight: 25}

	for l := Lane(0); l < Count; l++ {
		portal, ok := r.PortalFor(l)
		require.True(t, ok)
		assert.Equal(t, portal, SampleSpawnPosition(l, &r, 0, bounds, &base))
	}
}

func TestSampleSpawnPosition_JitterInvariants(t *testing.T) {
	bounds := geom.ArenaBounds{HalfWidth: 25, HalfHeight: 25}
	base := geom.Point{}
	portals := []geom.Point{{X: 20, Y: 0}, {X: 14, Y: 14}, {X: 0, Y: 20}}
	r := RoutePortals(base, portals)

	const jitter = 1.2
	portal, ok := r.PortalFor(Top)
	require.True(t, ok)
	require.Equal(t, geom.Point{X: 20, Y: 0}, portal)

	// Samples never drift closer to the base than the portal distance
	// minus the allowed slack, and never leave the arena.
	minDist := base.DistanceTo(portal) - jitter*jitterApproachSlack

	for i := 0; i < 10000; i++ {
		sample := SampleSpawnPosition(Top, &r, jitter, bounds, &base)
		assert.True(t, bounds.Contains(sample), "sample %d outside bounds: %+v", i, sample)
		assert.GreaterOrEqual(t, base.DistanceTo(sample), minDist-1e-9, "sample %d too close to base", i)
		assert.LessOrEqual(t, portal.DistanceTo(sample), jitter+1e-9, "sample %d outside jitter disk", i)
	}
}

func TestSampleSpawnPosition_NoBaseStillClamped(t *testing.T) {
	// Portal near the wall: jitter alone could leave the arena, the
	// clamp keeps every sample inside.
	bounds := geom.ArenaBounds{HalfWidth: 25, HalfHeight: 25}
	base := geom.Point{}
	portals := []geom.Point{{X: 24.9, Y: 0}, {X: 0, Y: 24.9}, {X: -24.9, Y: 0}}
	r := RoutePortals(base, portals)

	for i := 0; i < 1000; i++ {
		sample := SampleSpawnPosition(Top, &r, 2.0, bounds, nil)
		assert.True(t, bounds.Contains(sample), "sample %d outside bounds: %+v", i, sample)
	}
}

func TestSampleSpawnPosition_MissingRoutingFallsBackToCorner(t *testing.T) {
	bounds := geom.ArenaBounds{HalfWidth: 25, HalfHeight: 25}

	got := SampleSpawnPosition(Mid, nil, 0, bounds, nil)
	assert.Equal(t, geom.Point{X: 25, Y: 25}, got)

	empty := &Routing{}
	got = SampleSpawnPosition(Mid, empty, 0, bounds, nil)
	assert.Equal(t, geom.Point{X: 25, Y: 25}, got)
}

func TestUnlockFocus(t *testing.T) {
	base := geom.Point{}
	portals := []geom.Point{{X: 20, Y: 0}, {X: 14, Y: 14}, {X: 0, Y: 20}}
	r := RoutePortals(base, portals)
	bounds := geom.ArenaBounds{HalfWidth: 25, HalfHeight: 25}

	focus := UnlockFocus(Top, &r, bounds, 3)

	// Pulled inward from the portal along the escape direction, at the
	// fixed focus height.
	assert.InDelta(t, 17, focus.X, 1e-9)
	assert.InDelta(t, FocusHeight, focus.Y, 1e-9)
	assert.InDelta(t, 0, focus.Z, 1e-9)
}

func TestUnlockFocus_ClampedToBounds(t *testing.T) {
	base := geom.Point{}
	portals := []geom.Point{{X: 20, Y: 0}, {X: 14, Y: 14}, {X: 0, Y: 20}}
	r := RoutePortals(base, portals)
	bounds := geom.ArenaBounds{HalfWidth: 25, HalfHeight: 25}

	// A negative inward offset pushes past the wall; the clamp brings
	// the focus back to the boundary.
	focus := UnlockFocus(Top, &r, bounds, -20)
	assert.InDelta(t, 25, focus.X, 1e-9)
	assert.InDelta(t, 0, focus.Z, 1e-9)
}

func TestUnlockPadFocus(t *testing.T) {
	bounds := geom.ArenaBounds{HalfWidth: 25, HalfHeight: 25}
	base := geom.Point{}
	polylines := map[Lane][]geom.Point{
		Top:    {{X: 0, Y: 0}, {X: 20, Y: 0}},
		Mid:    {{X: 0, Y: 0}, {X: 15, Y: 15}},
		Bottom: {{X: 0, Y: 0}, {X: 0, Y: 20}},
	}
	pads := []model.BuildingPad{
		{Type: "barracks", X: 18, Z: 1},
		{Type: "barracks", X: 9, Z: -1},
		{Type: "tower", X: 12, Z: 0},
		{Type: "barracks", X: 1, Z: 15},
	}
	locked := map[string]bool{"barracks": true}

	t.Run("nearest locked pad on lane", func(t *testing.T) {
		focus, ok := UnlockPadFocus(Top, pads, locked, polylines, bounds, base)
		require.True(t, ok)
		// The tower pad is nearer but not locked; of the two locked
		// barracks pads on the Top lane the (9,-1) one is closest.
		assert.InDelta(t, 9, focus.X, 1e-9)
		assert.InDelta(t, -1, focus.Z, 1e-9)
		assert.InDelta(t, FocusHeight, focus.Y, 1e-9)
	})

	t.Run("pad on another lane", func(t *testing.T) {
		focus, ok := UnlockPadFocus(Bottom, pads, locked, polylines, bounds, base)
		require.True(t, ok)
		assert.InDelta(t, 1, focus.X, 1e-9)
		assert.InDelta(t, 15, focus.Z, 1e-9)
	})

	t.Run("no locked pad on lane", func(t *testing.T) {
		_, ok := UnlockPadFocus(Mid, pads, locked, polylines, bounds, base)
		assert.False(t, ok)
	})

	t.Run("nothing locked", func(t *testing.T) {
		_, ok := UnlockPadFocus(Top, pads, map[string]bool{}, polylines, bounds, base)
		assert.False(t, ok)
	})
}
