package systems

import (
	"math"

	"github.com/automoto/slingfort/components"
	"github.com/automoto/slingfort/physics"
	"github.com/automoto/slingfort/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// OffPlayfield reports whether body has crossed into a dead zone past either
// horizontal edge of the playfield.
func OffPlayfield(ecs *ecs.ECS, body *physics.Body) bool {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return false
	}
	space := components.Space.Get(spaceEntry)

	minX, minY, maxX, maxY := body.Bounds()
	// Keep the probe inside the grid so it is registered in some cell.
	x := clamp(minX+space.Offset, 0, space.Width-1)
	y := clamp(minY+space.Offset, 0, space.Height-1)
	w := math.Max(1, math.Min(maxX-minX, space.Width-x))
	h := math.Max(1, math.Min(maxY-minY, space.Height-y))

	probe := resolv.NewObject(x, y, w, h, tags.ResolvProbe)
	probe.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Bounds.Add(probe)
	defer space.Bounds.Remove(probe)

	return probe.Check(0, 0, tags.ResolvDeadZone) != nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
