package components

import (
	"github.com/automoto/slingfort/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// QueueSlot is where one waiting projectile is drawn. Tween moves it to a new
// slot when the queue advances.
type QueueSlot struct {
	Kind  config.ProjectileKind
	X     float64
	FromX float64
	ToX   float64
	Tween *gween.Tween
}

// QueueData is the FIFO of projectile kinds waiting for the slingshot.
type QueueData struct {
	Kinds []config.ProjectileKind
	Slots []QueueSlot
	// Length seen by the last UpdateQueue.
	SeenLen int
}

var Queue = donburi.NewComponentType[QueueData]()
