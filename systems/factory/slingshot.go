package factory

import (
	"github.com/automoto/slingfort/archetypes"
	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSlingshot creates an empty slingshot anchored at x, y.
func CreateSlingshot(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	slingshot := archetypes.Slingshot.Spawn(ecs)
	components.Slingshot.SetValue(slingshot, components.SlingshotData{
		Anchor:     physics.Vector{X: x, Y: y},
		Trajectory: make([]physics.Vector, cfg.Trajectory.Points),
	})
	return slingshot
}
