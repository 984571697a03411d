package factory

import (
	"github.com/automoto/slingfort/archetypes"
	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOverlay creates a full-screen message whose title drops in from above.
func CreateOverlay(ecs *ecs.ECS, c cfg.OverlayConfig, title string) *donburi.Entry {
	overlay := archetypes.Overlay.Spawn(ecs)
	components.Overlay.SetValue(overlay, components.OverlayData{
		Title:  title,
		Hint:   c.Hint,
		TitleY: c.TitleStartY,
		Drop:   gween.New(c.TitleStartY, c.TitleY, c.DropDuration, ease.OutBounce),
	})
	return overlay
}
