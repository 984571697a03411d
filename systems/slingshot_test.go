package systems

import (
	"errors"
	"testing"

	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/physics"
)

func TestLoadWhenLoadedFails(t *testing.T) {
	e := newLevel(t, 1)
	s := slingshot(e)
	first := s.Projectile
	waiting := len(queue(e).Kinds)

	err := Load(e, cfg.ProjectileRed)
	if !errors.Is(err, ErrAlreadyLoaded) {
		t.Fatalf("err = %v, want ErrAlreadyLoaded", err)
	}
	if s.Projectile != first || len(queue(e).Kinds) != waiting {
		t.Fatalf("failed load changed state")
	}
	if s.State() != components.SlingshotLoaded {
		t.Fatalf("state = %s, want loaded", s.State())
	}
}

func TestLaunchReady(t *testing.T) {
	anchor := physics.Vector{X: 300, Y: 500}
	tests := []struct {
		name       string
		pointer    float64
		projectile float64
		want       bool
	}{
		{"pulled left, not yet past", 150, 302, false},
		{"pulled left, past anchor", 150, 304, true},
		{"pulled right, past anchor", 450, 296, true},
		{"pulled right, not yet past", 450, 298, false},
		{"released on the anchor", 300, 400, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := launchReady(anchor, physics.Vector{X: tt.pointer, Y: 500}, physics.Vector{X: tt.projectile, Y: 500})
			if got != tt.want {
				t.Fatalf("launchReady = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDragAimReleaseLaunch(t *testing.T) {
	e := newLevel(t, 1)
	s := slingshot(e)
	input := GetInput(e)
	projectile := s.Projectile

	input.Pointer = s.Anchor
	input.PointerDown = true
	if err := UpdateSlingshot(e); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !s.IsAiming || s.WasReleased {
		t.Fatalf("drag on loaded projectile: aiming=%v released=%v", s.IsAiming, s.WasReleased)
	}

	input.Pointer = s.Anchor.Add(physics.Vector{X: -150, Y: 30})
	for i := 0; i < 30; i++ {
		if err := Step(e); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if x := bodyOf(projectile).Position().X; x >= s.Anchor.X {
		t.Fatalf("projectile not pulled back, x=%v", x)
	}
	if s.TrajectoryLen != cfg.Trajectory.Points {
		t.Fatalf("trajectory has %d points while aiming", s.TrajectoryLen)
	}

	input.PointerDown = false
	if err := UpdateSlingshot(e); err != nil {
		t.Fatalf("update: %v", err)
	}
	if s.IsAiming || !s.WasReleased {
		t.Fatalf("release: aiming=%v released=%v", s.IsAiming, s.WasReleased)
	}
	if s.TrajectoryLen != 0 {
		t.Fatalf("trajectory kept after release")
	}

	for i := 0; i < 60 && !s.WasLaunched; i++ {
		if err := Step(e); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if s.State() != components.SlingshotLaunched {
		t.Fatalf("state = %s, want launched", s.State())
	}
	if s.Sling != nil {
		t.Fatalf("sling still attached after launch")
	}
	if v := bodyOf(projectile).Velocity(); v.X <= 0 {
		t.Fatalf("launched projectile moving left: %v", v)
	}
}

func TestUnload(t *testing.T) {
	tests := []struct {
		name  string
		place func(b *physics.Body)
	}{
		{"at rest", func(b *physics.Body) {
			b.SetVelocity(physics.Vector{})
		}},
		{"off the left edge", func(b *physics.Body) {
			b.SetPosition(physics.Vector{X: -200, Y: 300})
			b.SetVelocity(physics.Vector{X: -400})
		}},
		{"off the right edge", func(b *physics.Body) {
			b.SetPosition(physics.Vector{X: 2200, Y: 300})
			b.SetVelocity(physics.Vector{X: 400})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLevel(t, 1)
			s := slingshot(e)
			old := s.Projectile
			body := bodyOf(old)

			launch(s, body)
			tt.place(body)
			if err := UpdateSlingshot(e); err != nil {
				t.Fatalf("update: %v", err)
			}

			if old.Valid() || hasBody(e, body) {
				t.Fatalf("unloaded projectile still alive")
			}
			if s.Projectile == nil || s.Projectile == old || s.State() != components.SlingshotLoaded {
				t.Fatalf("slingshot not reloaded: %s", s.State())
			}
			if len(queue(e).Kinds) != 1 {
				t.Fatalf("queue has %d kinds, want 1", len(queue(e).Kinds))
			}
		})
	}
}

func TestFlyingProjectileStaysLoaded(t *testing.T) {
	e := newLevel(t, 1)
	s := slingshot(e)
	body := bodyOf(s.Projectile)

	launch(s, body)
	body.SetVelocity(physics.Vector{X: 800, Y: -300})
	if err := UpdateSlingshot(e); err != nil {
		t.Fatalf("update: %v", err)
	}

	if s.State() != components.SlingshotLaunched {
		t.Fatalf("state = %s, want launched", s.State())
	}
}

func TestProjectileConservation(t *testing.T) {
	e := newLevel(t, 2)
	s := slingshot(e)
	total := 1 + len(queue(e).Kinds)
	spent := 0

	for i := 0; i < 20 && !IsExhausted(e); i++ {
		loaded := 0
		if loadedProjectile(s) != nil {
			loaded = 1
		}
		if got := len(queue(e).Kinds) + loaded + spent; got != total {
			t.Fatalf("tick %d: queue+loaded+spent = %d, want %d", i, got, total)
		}

		// Destroy the loaded projectile and let the slingshot reload.
		MarkForRemoval(s.Projectile)
		TickEntity(e, s.Projectile)
		spent++
		if err := UpdateSlingshot(e); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	if !IsExhausted(e) {
		t.Fatalf("supply not exhausted")
	}
	if spent != total || s.LoadedCount != total {
		t.Fatalf("spent %d loaded %d, want %d", spent, s.LoadedCount, total)
	}
	if _, err := Next(queue(e)); !errors.Is(err, ErrEmptyQueue) {
		t.Fatalf("Next on empty queue: %v", err)
	}
	if !HasLost(e) {
		t.Fatalf("exhausted supply is not a loss")
	}
}

func TestPredictTrajectoryLeavesBodyAlone(t *testing.T) {
	e := newLevel(t, 1)
	s := slingshot(e)
	body := bodyOf(s.Projectile)
	world := physicsWorld(e)
	world.Step(1.0 / 60)

	body.SetPosition(s.Anchor.Add(physics.Vector{X: -100, Y: 50}))
	body.SetVelocity(physics.Vector{X: 5, Y: 5})
	pos, vel := body.Position(), body.Velocity()

	for i := 0; i < 3; i++ {
		PredictTrajectory(world, s, body)
		if s.TrajectoryLen != cfg.Trajectory.Points || len(s.Trajectory) != cfg.Trajectory.Points {
			t.Fatalf("trajectory length %d/%d, want %d", s.TrajectoryLen, len(s.Trajectory), cfg.Trajectory.Points)
		}
	}

	if body.Position() != pos || body.Velocity() != vel {
		t.Fatalf("live body moved: pos %v -> %v, vel %v -> %v", pos, body.Position(), vel, body.Velocity())
	}
	first, last := s.Trajectory[0], s.Trajectory[len(s.Trajectory)-1]
	if first.X <= pos.X || last.X <= first.X {
		t.Fatalf("trajectory does not head past the anchor: %v .. %v", first, last)
	}
	if first.Y >= pos.Y {
		t.Fatalf("trajectory does not start upward: %v from %v", first, pos)
	}
}
