package components

import (
	"github.com/yohamta/donburi"
)

// FortressData owns the destructible entities of a level.
type FortressData struct {
	Entities []*donburi.Entry

	// Damage queued during the current tick. Queued guards against the same
	// entity being queued twice.
	DamageQueue []*donburi.Entry
	Queued      map[donburi.Entity]struct{}

	// Counters for the debug overlay.
	Collisions int
	Destroyed  int
}

var Fortress = donburi.NewComponentType[FortressData]()
