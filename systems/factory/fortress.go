package factory

import (
	"github.com/automoto/slingfort/archetypes"
	"github.com/automoto/slingfort/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFortress creates the structure that owns the given blocks and targets.
func CreateFortress(ecs *ecs.ECS, entities []*donburi.Entry) *donburi.Entry {
	fortress := archetypes.Fortress.Spawn(ecs)
	components.Fortress.SetValue(fortress, components.FortressData{
		Entities: entities,
		Queued:   make(map[donburi.Entity]struct{}),
	})
	return fortress
}
