package systems

import (
	"testing"

	"github.com/automoto/slingfort/assets"
	"github.com/automoto/slingfort/components"
	"github.com/automoto/slingfort/physics"
	"github.com/automoto/slingfort/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newLevel(t *testing.T, index int) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	if err := SetupLevel(e, index); err != nil {
		t.Fatalf("setup level %d: %v", index, err)
	}
	return e
}

// newArena is an empty playfield with a fortress built from the given blocks.
func newArena(t *testing.T, blocks ...assets.BlockSpawn) (*ecs.ECS, []*donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 2000, 720)
	var entries []*donburi.Entry
	for _, b := range blocks {
		entries = append(entries, factory.CreateBlock(e, b))
	}
	factory.CreateFortress(e, entries)
	return e, entries
}

func block(x, y float64) assets.BlockSpawn {
	return assets.BlockSpawn{X: x, Y: y, Width: 35, Height: 110}
}

func slingshot(e *ecs.ECS) *components.SlingshotData {
	return components.Slingshot.Get(components.Slingshot.MustFirst(e.World))
}

func queue(e *ecs.ECS) *components.QueueData {
	return components.Queue.Get(components.Queue.MustFirst(e.World))
}

func hasBody(e *ecs.ECS, b *physics.Body) bool {
	for _, other := range physicsWorld(e).Bodies() {
		if other == b {
			return true
		}
	}
	return false
}
