package factory

import (
	"log"

	"github.com/automoto/slingfort/archetypes"
	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProjectileType returns the configuration for kind, falling back to the default kind.
func ProjectileType(kind cfg.ProjectileKind) cfg.ProjectileTypeConfig {
	t, ok := cfg.Projectile.Types[kind]
	if !ok {
		log.Printf("unknown projectile kind %q, using %q", kind, cfg.Projectile.Default)
		t = cfg.Projectile.Types[cfg.Projectile.Default]
	}
	return t
}

func CreateProjectile(ecs *ecs.ECS, kind cfg.ProjectileKind, x, y float64) *donburi.Entry {
	t := ProjectileType(kind)
	return SpawnEntity(ecs, archetypes.Projectile,
		components.EntityData{
			Kind:   components.KindProjectile,
			Shape:  components.ShapeCircle,
			Radius: t.Radius,
			Color:  t.Color,
		},
		physics.BodySpec{
			Shape:      physics.ShapeCircle,
			Radius:     t.Radius,
			Position:   physics.Vector{X: x, Y: y},
			Density:    t.Density,
			Friction:   t.Friction,
			Elasticity: t.Elasticity,
			Group:      cfg.Projectile.Group,
			Grabbable:  true,
		},
	)
}
