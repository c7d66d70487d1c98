// Package lane computes enemy entry geometry for a wave encounter: portal
// points on the arena boundary, the bijective portal-to-lane assignment,
// the per-wave unlock gate, and jittered spawn placement. Everything here
// is pure math over value types; nothing blocks or performs I/O.
package lane

import "github.com/Patrick74531/minigame-sub000/internal/geom"

// Lane is one of the three fixed attack routes.
type Lane int

const (
	Top Lane = iota
	Mid
	Bottom

	// Count is the number of lanes; fixed for the game's lifetime.
	Count = 3
)

// String returns the lane name.
func (l Lane) String() string {
	switch l {
	case Top:
		return "top"
	case Mid:
		return "mid"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// Flank is the positional left/center/right label used by UI callouts,
// distinct from the Top/Mid/Bottom route naming.
type Flank int

const (
	FlankLeft Flank = iota
	FlankCenter
	FlankRight
)

// String returns the flank name.
func (f Flank) String() string {
	switch f {
	case FlankLeft:
		return "left"
	case FlankCenter:
		return "center"
	case FlankRight:
		return "right"
	}
	return "unknown"
}

// Canonical target directions per lane. Mid sits on the diagonal bisector
// between the other two.
var canonicalDirection = [Count]geom.Point{
	Top:    {X: 1, Y: 0},
	Mid:    {X: 0.7071067811865476, Y: 0.7071067811865476},
	Bottom: {X: 0, Y: 1},
}

// assignOrder is the fixed priority in which lanes claim portals.
var assignOrder = [Count]Lane{Mid, Top, Bottom}

// classifyOrder is the evaluation (and tie-break) order for nearest-path
// lane classification.
var classifyOrder = [Count]Lane{Mid, Top, Bottom}

// CanonicalDirection returns the lane's canonical unit target direction.
func CanonicalDirection(l Lane) geom.Point {
	return canonicalDirection[l]
}
