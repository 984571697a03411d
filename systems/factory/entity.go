package factory

import (
	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type spawner interface {
	Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry
}

// DamageThreshold is the impact (speed * mass) a body of the given mass survives.
func DamageThreshold(mass float64) float64 {
	return mass * cfg.Entity.DamageThresholdScalar
}

// SpawnEntity creates an entity from archetype a and inserts its body, built
// from spec, into the level's physics world.
func SpawnEntity(ecs *ecs.ECS, a spawner, data components.EntityData, spec physics.BodySpec) *donburi.Entry {
	entry := a.Spawn(ecs)

	spaceEntry := components.Space.MustFirst(ecs.World)
	world := components.Space.Get(spaceEntry).World

	body := world.CreateBody(spec)
	body.Owner = entry.Entity()
	body.DamageThreshold = DamageThreshold(body.Mass())

	components.Entity.SetValue(entry, data)
	components.Body.SetValue(entry, components.BodyData{Body: body})

	return entry
}
