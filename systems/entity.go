package systems

import (
	"github.com/automoto/slingfort/components"
	"github.com/automoto/slingfort/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MarkForRemoval flags entry to leave the world on its next TickEntity.
func MarkForRemoval(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	components.Entity.Get(entry).MarkedForRemoval = true
}

// TickEntity removes a marked entity: its body leaves the physics world, then
// the entry leaves ecs. It reports whether this call did the removal.
func TickEntity(ecs *ecs.ECS, entry *donburi.Entry) bool {
	if entry == nil || !entry.Valid() {
		return false
	}
	e := components.Entity.Get(entry)
	if !e.MarkedForRemoval || e.Removed {
		return false
	}
	e.Removed = true

	if world := physicsWorld(ecs); world != nil {
		world.Remove(components.Body.Get(entry).Body)
	}
	ecs.World.Remove(entry.Entity())
	return true
}

// CloneBody returns a detached description of body for prediction. The result
// must never be added to the live world.
func CloneBody(body *physics.Body) physics.BodySpec {
	return body.Spec()
}

// IsOfKind reports whether body belongs to a live entity of the given kind.
func IsOfKind(world donburi.World, body *physics.Body, kind components.EntityKind) bool {
	if body == nil || !world.Valid(body.Owner) {
		return false
	}
	entry := world.Entry(body.Owner)
	if !entry.HasComponent(components.Entity) {
		return false
	}
	return components.Entity.Get(entry).Kind == kind
}

// ownerOf returns the entry owning body, or nil once it is gone.
func ownerOf(world donburi.World, body *physics.Body) *donburi.Entry {
	if body == nil || !world.Valid(body.Owner) {
		return nil
	}
	return world.Entry(body.Owner)
}

func bodyOf(entry *donburi.Entry) *physics.Body {
	return components.Body.Get(entry).Body
}

func physicsWorld(ecs *ecs.ECS) *physics.World {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(spaceEntry).World
}
