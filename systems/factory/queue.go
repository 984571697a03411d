package factory

import (
	"github.com/automoto/slingfort/archetypes"
	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// QueueSlotX is the x of the i-th waiting projectile behind the anchor.
func QueueSlotX(anchorX float64, i int) float64 {
	return anchorX - cfg.Queue.SlotOffsetX - float64(i)*cfg.Queue.SlotSpacing
}

func CreateQueue(ecs *ecs.ECS, kinds []cfg.ProjectileKind, anchorX float64) *donburi.Entry {
	queue := archetypes.Queue.Spawn(ecs)

	data := components.QueueData{
		Kinds:   append([]cfg.ProjectileKind(nil), kinds...),
		SeenLen: len(kinds),
	}
	for i, kind := range kinds {
		x := QueueSlotX(anchorX, i)
		data.Slots = append(data.Slots, components.QueueSlot{Kind: kind, X: x, FromX: x, ToX: x})
	}
	components.Queue.SetValue(queue, data)

	return queue
}
