package components

import (
	"github.com/automoto/slingfort/physics"
	"github.com/yohamta/donburi"
)

// SlingshotState is the launcher's position in its load/launch cycle.
type SlingshotState int

const (
	SlingshotEmpty SlingshotState = iota
	SlingshotLoaded
	SlingshotAiming
	SlingshotLaunched
)

func (s SlingshotState) String() string {
	switch s {
	case SlingshotEmpty:
		return "empty"
	case SlingshotLoaded:
		return "loaded"
	case SlingshotAiming:
		return "aiming"
	case SlingshotLaunched:
		return "launched"
	}
	return "unknown"
}

type SlingshotData struct {
	Projectile *donburi.Entry // nil when empty
	Anchor     physics.Vector
	Sling      *physics.Spring // nil once launched

	IsAiming    bool
	WasReleased bool
	WasLaunched bool

	// Trajectory has a fixed length; only the first TrajectoryLen points are
	// meaningful, and only while aiming.
	Trajectory    []physics.Vector
	TrajectoryLen int

	// Projectiles loaded since the level started.
	LoadedCount int
}

// State derives the cycle position from the slot and flags.
func (s *SlingshotData) State() SlingshotState {
	switch {
	case s.Projectile == nil:
		return SlingshotEmpty
	case s.WasLaunched:
		return SlingshotLaunched
	case s.IsAiming:
		return SlingshotAiming
	}
	return SlingshotLoaded
}

var Slingshot = donburi.NewComponentType[SlingshotData]()
