package factory

import (
	"github.com/automoto/slingfort/components"
	"github.com/automoto/slingfort/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible zone, in playfield coordinates, that
// culls any entity touching it.
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *resolv.Object {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	obj := resolv.NewObject(x+space.Offset, y+space.Offset, w, h, tags.ResolvDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Bounds.Add(obj)
	space.DeadZones = append(space.DeadZones, obj)

	return obj
}
