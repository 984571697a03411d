package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/physics"
	"github.com/automoto/slingfort/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Load spawns a projectile of kind at the anchor and ties it to the sling.
func Load(ecs *ecs.ECS, kind cfg.ProjectileKind) error {
	entry, ok := components.Slingshot.First(ecs.World)
	if !ok {
		return fmt.Errorf("load %s: no slingshot in level", kind)
	}
	s := components.Slingshot.Get(entry)
	if loadedProjectile(s) != nil {
		return fmt.Errorf("load %s: %w", kind, ErrAlreadyLoaded)
	}
	world := physicsWorld(ecs)
	if world == nil {
		return fmt.Errorf("load %s: no physics world", kind)
	}

	projectile := factory.CreateProjectile(ecs, kind, s.Anchor.X, s.Anchor.Y)
	s.Projectile = projectile
	s.Sling = world.AttachSpring(bodyOf(projectile), s.Anchor, cfg.Slingshot.Stiffness, cfg.Slingshot.Damping)
	s.IsAiming = false
	s.WasReleased = false
	s.WasLaunched = false
	s.TrajectoryLen = 0
	s.LoadedCount++
	return nil
}

// UpdateSlingshot handles aiming, launch, unload and reload for one tick.
func UpdateSlingshot(ecs *ecs.ECS) error {
	entry, ok := components.Slingshot.First(ecs.World)
	if !ok {
		return nil
	}
	world := physicsWorld(ecs)
	if world == nil {
		return nil
	}
	s := components.Slingshot.Get(entry)
	input := getOrCreateInput(ecs)

	world.MovePointer(input.Pointer, input.PointerDown)
	handleDrag(ecs, s, world.DragEvents())

	if projectile := loadedProjectile(s); projectile != nil {
		body := bodyOf(projectile)
		if !s.WasLaunched && s.WasReleased && launchReady(s.Anchor, input.Pointer, body.Position()) {
			launch(s, body)
		}
		if s.WasLaunched && (atRest(body) || OffPlayfield(ecs, body)) {
			MarkForRemoval(projectile)
			TickEntity(ecs, projectile)
			unload(s)
		}
	} else if s.Projectile != nil {
		// Destroyed by a collision.
		unload(s)
	}

	if projectile := loadedProjectile(s); projectile != nil && s.IsAiming {
		PredictTrajectory(world, s, bodyOf(projectile))
	} else {
		s.TrajectoryLen = 0
	}

	if s.Projectile == nil {
		return reload(ecs)
	}
	return nil
}

func handleDrag(ecs *ecs.ECS, s *components.SlingshotData, events []physics.DragEvent) {
	for _, ev := range events {
		projectile := loadedProjectile(s)
		if projectile == nil || s.WasLaunched || ev.Body != bodyOf(projectile) {
			continue
		}
		if !IsOfKind(ecs.World, ev.Body, components.KindProjectile) {
			continue
		}
		switch ev.Kind {
		case physics.DragStart:
			s.IsAiming = true
			s.WasReleased = false
		case physics.DragEnd:
			s.IsAiming = false
			s.WasReleased = true
		}
	}
}

// launchReady reports whether a released projectile has swung past the anchor,
// away from where the pointer let go of it.
func launchReady(anchor, pointer, projectile physics.Vector) bool {
	eps := cfg.Slingshot.LaunchEpsilon
	return (pointer.X < anchor.X && projectile.X > anchor.X+eps) ||
		(pointer.X > anchor.X && projectile.X < anchor.X-eps)
}

func launch(s *components.SlingshotData, body *physics.Body) {
	s.Sling.Detach()
	s.Sling = nil
	s.WasReleased = false
	s.WasLaunched = true
	body.SetGrabbable(false)
	v := body.Velocity()
	log.Printf("projectile %d launched at %.0f px/s", s.LoadedCount, v.Length())
}

func atRest(body *physics.Body) bool {
	if body.IsSleeping() {
		return true
	}
	return body.Speed() < cfg.Projectile.RestLinearSpeed &&
		math.Abs(body.AngularVelocity()) < cfg.Projectile.RestAngularSpeed
}

func unload(s *components.SlingshotData) {
	s.Sling.Detach()
	s.Sling = nil
	s.Projectile = nil
	s.IsAiming = false
	s.WasReleased = false
	s.WasLaunched = false
	s.TrajectoryLen = 0
}

func reload(ecs *ecs.ECS) error {
	entry, ok := components.Queue.First(ecs.World)
	if !ok {
		return nil
	}
	q := components.Queue.Get(entry)
	if !HasNext(q) {
		return nil
	}
	kind, err := Next(q)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	if err := Load(ecs, kind); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	return nil
}

// loadedProjectile returns the projectile in the slot, or nil if the slot is
// empty or its entity is gone.
func loadedProjectile(s *components.SlingshotData) *donburi.Entry {
	if s.Projectile == nil || !s.Projectile.Valid() {
		return nil
	}
	return s.Projectile
}
