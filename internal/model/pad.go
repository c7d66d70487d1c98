package model

import "github.com/Patrick74531/minigame-sub000/internal/geom"

// BuildingPad is a fixed construction slot supplied by the building
// placement subsystem. X/Z are world coordinates on the arena plane.
type BuildingPad struct {
	Type string
	X    float64
	Z    float64
}

// Position returns the pad location on the arena plane.
func (p BuildingPad) Position() geom.Point {
	return geom.Point{X: p.X, Y: p.Z}
}
