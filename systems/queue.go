package systems

import (
	"math"

	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func HasNext(q *components.QueueData) bool {
	return len(q.Kinds) > 0
}

// Next removes and returns the head of the queue.
func Next(q *components.QueueData) (cfg.ProjectileKind, error) {
	if !HasNext(q) {
		return "", ErrEmptyQueue
	}
	kind := q.Kinds[0]
	q.Kinds = q.Kinds[1:]
	return kind, nil
}

// IsExhausted reports whether no projectile is left, neither waiting nor loaded.
func IsExhausted(ecs *ecs.ECS) bool {
	if entry, ok := components.Queue.First(ecs.World); ok && HasNext(components.Queue.Get(entry)) {
		return false
	}
	if entry, ok := components.Slingshot.First(ecs.World); ok && loadedProjectile(components.Slingshot.Get(entry)) != nil {
		return false
	}
	return true
}

// UpdateQueue moves waiting projectiles forward after one was taken.
func UpdateQueue(ecs *ecs.ECS) {
	entry, ok := components.Queue.First(ecs.World)
	if !ok {
		return
	}
	q := components.Queue.Get(entry)

	if len(q.Kinds) != q.SeenLen {
		anchorX := cfg.Slingshot.AnchorX
		if s, ok := components.Slingshot.First(ecs.World); ok {
			anchorX = components.Slingshot.Get(s).Anchor.X
		}
		retargetQueue(q, anchorX)
	}

	dt := float32(1) / float32(cfg.Physics.TicksPerSecond)
	for i := range q.Slots {
		slot := &q.Slots[i]
		if slot.Tween == nil {
			continue
		}
		x, finished := slot.Tween.Update(dt)
		slot.X = float64(x)
		if finished {
			slot.X = slot.ToX
			slot.Tween = nil
		}
	}
}

// retargetQueue rebuilds the slots for the current kinds. Kinds are only taken
// from the front, so the slot that held kind i now holds kind i-shift.
func retargetQueue(q *components.QueueData, anchorX float64) {
	shift := q.SeenLen - len(q.Kinds)
	old := q.Slots
	slots := make([]components.QueueSlot, len(q.Kinds))
	for i, kind := range q.Kinds {
		to := factory.QueueSlotX(anchorX, i)
		from := to
		if j := i + shift; shift > 0 && j < len(old) {
			from = old[j].X
		}
		slots[i] = components.QueueSlot{Kind: kind, X: from, FromX: from, ToX: to}
		if from != to {
			slots[i].Tween = gween.New(float32(from), float32(to), cfg.Queue.HopDuration, ease.OutQuad)
		}
	}
	q.Slots = slots
	q.SeenLen = len(q.Kinds)
}

// QueueSlotHop is the vertical offset of a slot mid-hop, negative is up.
func QueueSlotHop(slot components.QueueSlot) float64 {
	if slot.Tween == nil || slot.ToX == slot.FromX {
		return 0
	}
	progress := clamp((slot.X-slot.FromX)/(slot.ToX-slot.FromX), 0, 1)
	return -cfg.Queue.HopHeight * math.Sin(math.Pi*progress)
}
