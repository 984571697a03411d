package factory

import (
	"github.com/automoto/slingfort/archetypes"
	"github.com/automoto/slingfort/assets"
	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBlock(ecs *ecs.ECS, b assets.BlockSpawn) *donburi.Entry {
	return SpawnEntity(ecs, archetypes.Block,
		components.EntityData{
			Kind:    components.KindBlock,
			Shape:   components.ShapeRectangle,
			Width:   b.Width,
			Height:  b.Height,
			Color:   cfg.Block.Color,
			Outline: cfg.Block.Outline,
		},
		physics.BodySpec{
			Shape:      physics.ShapePolygon,
			Vertices:   physics.Box(b.Width, b.Height),
			Position:   physics.Vector{X: b.X, Y: b.Y},
			Angle:      b.Angle,
			Density:    cfg.Block.Density,
			Friction:   cfg.Block.Friction,
			Elasticity: cfg.Block.Elasticity,
		},
	)
}
