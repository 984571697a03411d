package factory

import (
	"github.com/automoto/slingfort/archetypes"
	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates the static floor along the bottom of the playfield. It
// is twice the playfield width so rolling bodies stay supported near the edges.
func CreateGround(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	w := width * 2
	h := cfg.Ground.Height
	return SpawnEntity(ecs, archetypes.Ground,
		components.EntityData{
			Kind:   components.KindGround,
			Shape:  components.ShapeRectangle,
			Width:  w,
			Height: h,
			Color:  cfg.Ground.Color,
		},
		physics.BodySpec{
			Shape:      physics.ShapePolygon,
			Vertices:   physics.Box(w, h),
			Position:   physics.Vector{X: width / 2, Y: height - h/2},
			Friction:   cfg.Ground.Friction,
			Elasticity: cfg.Ground.Elasticity,
			Static:     true,
		},
	)
}
