package systems

import (
	cfg "github.com/automoto/slingfort/config"
	"github.com/yohamta/donburi/ecs"
)

// Step advances gameplay by one tick: physics, then the fortress, then the
// slingshot, then the queue. Input must already be sampled.
func Step(ecs *ecs.ECS) error {
	if world := physicsWorld(ecs); world != nil {
		world.Step(1 / float64(cfg.Physics.TicksPerSecond))
	}
	UpdateFortress(ecs)
	if err := UpdateSlingshot(ecs); err != nil {
		return err
	}
	UpdateQueue(ecs)
	return nil
}

// HasWon reports whether every target is gone.
func HasWon(ecs *ecs.ECS) bool {
	return RemainingTargets(ecs) == 0
}

// HasLost reports whether no projectile is left to throw.
func HasLost(ecs *ecs.ECS) bool {
	return IsExhausted(ecs)
}
