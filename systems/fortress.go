package systems

import (
	"github.com/automoto/slingfort/components"
	"github.com/automoto/slingfort/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnCollisionStart applies the damage of the pairs that began this tick. Each
// side of a pair damages the other when its impact exceeds the other's
// threshold. Damaged entities are removed right away.
func OnCollisionStart(ecs *ecs.ECS, pairs []physics.Pair) {
	entry, ok := components.Fortress.First(ecs.World)
	if !ok || len(pairs) == 0 {
		return
	}
	f := components.Fortress.Get(entry)

	for _, p := range pairs {
		f.Collisions++
		if impact(p.A, p.SpeedA) > p.B.DamageThreshold {
			queueDamage(ecs, f, p.B)
		}
		if impact(p.B, p.SpeedB) > p.A.DamageThreshold {
			queueDamage(ecs, f, p.A)
		}
	}

	if world := physicsWorld(ecs); world != nil {
		world.WakeAll()
	}

	for _, damaged := range f.DamageQueue {
		MarkForRemoval(damaged)
		if TickEntity(ecs, damaged) {
			f.Destroyed++
		}
	}
	f.DamageQueue = f.DamageQueue[:0]
	clear(f.Queued)
}

// impact is speed * mass. Static bodies never move, so they hit with nothing.
func impact(b *physics.Body, speed float64) float64 {
	if b.Static() {
		return 0
	}
	return speed * b.Mass()
}

func queueDamage(ecs *ecs.ECS, f *components.FortressData, b *physics.Body) {
	owner := ownerOf(ecs.World, b)
	if owner == nil {
		return
	}
	if _, queued := f.Queued[owner.Entity()]; queued {
		return
	}
	if f.Queued == nil {
		f.Queued = make(map[donburi.Entity]struct{})
	}
	f.Queued[owner.Entity()] = struct{}{}
	f.DamageQueue = append(f.DamageQueue, owner)
}

// UpdateFortress applies this tick's collisions, removes marked entities and
// marks the ones that left the playfield. Removed entries are dropped from
// the fortress.
func UpdateFortress(ecs *ecs.ECS) {
	entry, ok := components.Fortress.First(ecs.World)
	if !ok {
		return
	}
	if world := physicsWorld(ecs); world != nil {
		OnCollisionStart(ecs, world.Collisions())
	}

	f := components.Fortress.Get(entry)
	kept := f.Entities[:0]
	for _, e := range f.Entities {
		TickEntity(ecs, e)
		if !e.Valid() {
			continue
		}
		if OffPlayfield(ecs, bodyOf(e)) {
			MarkForRemoval(e)
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(f.Entities); i++ {
		f.Entities[i] = nil
	}
	f.Entities = kept
}

// RemainingTargets counts the fortress targets still standing.
func RemainingTargets(ecs *ecs.ECS) int {
	return countKind(ecs, components.KindTarget)
}

// RemainingBlocks counts the fortress blocks still standing.
func RemainingBlocks(ecs *ecs.ECS) int {
	return countKind(ecs, components.KindBlock)
}

func countKind(ecs *ecs.ECS, kind components.EntityKind) int {
	entry, ok := components.Fortress.First(ecs.World)
	if !ok {
		return 0
	}
	n := 0
	for _, e := range components.Fortress.Get(entry).Entities {
		if e.Valid() && components.Entity.Get(e).Kind == kind {
			n++
		}
	}
	return n
}
