package factory

import (
	"github.com/automoto/slingfort/archetypes"
	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTarget(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	return SpawnEntity(ecs, archetypes.Target,
		components.EntityData{
			Kind:   components.KindTarget,
			Shape:  components.ShapeCircle,
			Radius: cfg.Target.Radius,
			Color:  cfg.Target.Color,
		},
		physics.BodySpec{
			Shape:      physics.ShapeCircle,
			Radius:     cfg.Target.Radius,
			Position:   physics.Vector{X: x, Y: y},
			Density:    cfg.Target.Density,
			Friction:   cfg.Target.Friction,
			Elasticity: cfg.Target.Elasticity,
		},
	)
}
