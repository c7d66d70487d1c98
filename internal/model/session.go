package model

import (
	"time"

	"github.com/Patrick74531/minigame-sub000/internal/geom"
)

// ArenaSession is the persisted record of one arena's resolved geometry:
// the base position, half extents, the three portals and the lane
// assignment in Top/Mid/Bottom order. Written once when the session is
// established and read back by reconnect flows.
type ArenaSession struct {
	ID          string
	Base        geom.Point
	HalfWidth   float64
	HalfHeight  float64
	Portals     [3]geom.Point
	LanePortals [3]int
	CreatedAt   time.Time
}

// Bounds returns the session's arena bounds.
func (s *ArenaSession) Bounds() geom.ArenaBounds {
	return geom.ArenaBounds{HalfWidth: s.HalfWidth, HalfHeight: s.HalfHeight}
}
