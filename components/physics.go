package components

import (
	"github.com/automoto/slingfort/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()

// SpaceData is the simulation context shared by every system of one level.
type SpaceData struct {
	World *physics.World

	// Bounds holds the dead zones around the playfield. Its coordinates are
	// shifted by Offset so that the area left of and above the playfield stays
	// inside the grid.
	Bounds    *resolv.Space
	Offset    float64
	Width     float64 // Extent of Bounds
	Height    float64
	DeadZones []*resolv.Object
}

var Space = donburi.NewComponentType[SpaceData]()
