package archetypes

import (
	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Projectile = newArchetype(
		tags.Projectile,
		components.Entity,
		components.Body,
	)
	Block = newArchetype(
		tags.Block,
		components.Entity,
		components.Body,
	)
	Target = newArchetype(
		tags.Target,
		components.Entity,
		components.Body,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Entity,
		components.Body,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Fortress = newArchetype(
		components.Fortress,
	)
	Queue = newArchetype(
		components.Queue,
	)
	Slingshot = newArchetype(
		components.Slingshot,
	)
	Overlay = newArchetype(
		components.Overlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
