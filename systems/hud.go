package systems

import (
	"fmt"

	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// HUDCounts are the numbers shown in the top-left corner.
type HUDCounts struct {
	Level       int
	Projectiles int // Waiting plus loaded
	Blocks      int
	Targets     int
	Bodies      int // Dynamic bodies in the physics world
}

func CountHUD(ecs *ecs.ECS) HUDCounts {
	c := HUDCounts{
		Level:   CurrentLevel(ecs),
		Blocks:  RemainingBlocks(ecs),
		Targets: RemainingTargets(ecs),
	}
	if entry, ok := components.Queue.First(ecs.World); ok {
		c.Projectiles = len(components.Queue.Get(entry).Kinds)
	}
	if entry, ok := components.Slingshot.First(ecs.World); ok && loadedProjectile(components.Slingshot.Get(entry)) != nil {
		c.Projectiles++
	}
	if world := physicsWorld(ecs); world != nil {
		for _, b := range world.Bodies() {
			if !b.Static() {
				c.Bodies++
			}
		}
	}
	return c
}

// DrawHUD renders the level counters.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	c := CountHUD(ecs)
	lines := []string{
		fmt.Sprintf("Level %d", c.Level),
		fmt.Sprintf("Projectiles: %d", c.Projectiles),
		fmt.Sprintf("Blocks: %d", c.Blocks),
		fmt.Sprintf("Targets: %d", c.Targets),
		fmt.Sprintf("Bodies: %d", c.Bodies),
	}
	face := fonts.Regular.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, cfg.HUD.X, cfg.HUD.Y+i*cfg.HUD.LineHeight, cfg.HUD.TextColor)
	}
}
