package factory

import (
	"github.com/automoto/slingfort/archetypes"
	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the physics world and the bounds space for a playfield
// of width x height, with dead zones past both horizontal edges.
func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	world := physics.NewWorld(physics.Options{
		Gravity:            physics.Vector{Y: cfg.Physics.Gravity},
		Damping:            cfg.Physics.Damping,
		Iterations:         cfg.Physics.Iterations,
		SleepTimeThreshold: cfg.Physics.SleepTimeThreshold,
		IdleSpeedThreshold: cfg.Physics.IdleSpeedThreshold,
		CollisionSlop:      cfg.Physics.CollisionSlop,
		DragMaxForce:       cfg.Drag.MaxForce,
		DragErrorBias:      cfg.Drag.ErrorBias,
	})

	pad := cfg.Playfield.BoundsPadding
	cell := cfg.Playfield.CellSize
	components.Space.SetValue(space, components.SpaceData{
		World:  world,
		Bounds: resolv.NewSpace(width+2*pad, height+2*pad, cell, cell),
		Offset: float64(pad),
		Width:  float64(width + 2*pad),
		Height: float64(height + 2*pad),
	})

	margin := cfg.Playfield.OffscreenMargin
	zoneW := float64(pad) - margin
	zoneH := float64(height + 2*pad)
	CreateDeadZone(ecs, -float64(pad), -float64(pad), zoneW, zoneH)
	CreateDeadZone(ecs, float64(width)+margin, -float64(pad), zoneW, zoneH)

	return space
}
