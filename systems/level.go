package systems

import (
	"fmt"
	"log"

	"github.com/automoto/slingfort/components"
	"github.com/automoto/slingfort/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// SetupLevel builds level index into ecs and loads the first projectile.
func SetupLevel(ecs *ecs.ECS, index int) error {
	level, err := factory.CreateLevel(ecs, index)
	if err != nil {
		return err
	}
	data := components.Level.Get(level)
	if err := Load(ecs, data.Layout.Slingshot.Projectile); err != nil {
		return fmt.Errorf("setup level %d: %w", index, err)
	}
	log.Printf("level %d loaded from %s: %d blocks, %d targets, %d queued",
		index, data.Layout.Name, len(data.Layout.Blocks), len(data.Layout.Targets), len(data.Layout.Queue))
	return nil
}

// CurrentLevel returns the index of the level in ecs, or 0 if none was set up.
func CurrentLevel(ecs *ecs.ECS) int {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Level.Get(entry).Index
}

// ClearLevel takes every body out of the physics world.
func ClearLevel(ecs *ecs.ECS) {
	if world := physicsWorld(ecs); world != nil {
		world.Clear()
	}
}
