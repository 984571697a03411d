package systems

import (
	"fmt"

	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/fonts"
	"github.com/automoto/slingfort/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, b := range space.World.Bodies() {
		c := cfg.Debug.BodyColor
		if b.IsSleeping() {
			c = cfg.Debug.SleepColor
		}
		if b.Kind() == physics.ShapeCircle {
			p := b.Position()
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(b.Radius()), 1, c, false)
		} else {
			strokePolygon(screen, b, 1, c)
		}
	}

	lines := []string{fmt.Sprintf("TPS: %.0f", ebiten.ActualTPS())}
	if entry, ok := components.Fortress.First(ecs.World); ok {
		f := components.Fortress.Get(entry)
		lines = append(lines,
			fmt.Sprintf("Collisions: %d", f.Collisions),
			fmt.Sprintf("Destroyed: %d", f.Destroyed))
	}
	if entry, ok := components.Slingshot.First(ecs.World); ok {
		s := components.Slingshot.Get(entry)
		lines = append(lines,
			fmt.Sprintf("Slingshot: %s", s.State()),
			fmt.Sprintf("Loaded: %d", s.LoadedCount))
	}
	face := fonts.Small.Get()
	x := cfg.C.Width - 220
	for i, line := range lines {
		text.Draw(screen, line, face, x, cfg.HUD.Y+i*cfg.HUD.LineHeight, cfg.White)
	}
}
