package systems

import (
	"image/color"

	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlay advances the title drop.
func UpdateOverlay(ecs *ecs.ECS) {
	components.Overlay.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Overlay.Get(e)
		if o.Drop == nil {
			return
		}
		y, finished := o.Drop.Update(float32(1) / float32(cfg.Physics.TicksPerSecond))
		o.TitleY = y
		if finished {
			o.Drop = nil
		}
	})
}

// NewDrawOverlay returns a renderer for overlays styled by c.
func NewDrawOverlay(c cfg.OverlayConfig) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		entry, ok := components.Overlay.First(ecs.World)
		if !ok {
			return
		}
		o := components.Overlay.Get(entry)

		w, h := float32(cfg.C.Width), float32(cfg.C.Height)
		vector.FillRect(screen, 0, 0, w, h, c.BackgroundColor, false)

		drawCentered(screen, o.Title, fonts.Title, int(o.TitleY), c.TitleColor)
		if o.Drop == nil {
			drawCentered(screen, o.Hint, fonts.Regular, c.HintY, c.HintColor)
		}
	}
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, y int, clr color.Color) {
	face := name.Get()
	bounds := text.BoundString(face, s)
	x := (cfg.C.Width - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}
