package systems

import (
	"image/color"
	"math"

	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/physics"
	"github.com/automoto/slingfort/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pixel is stretched and rotated to draw rectangles.
var pixel *ebiten.Image
var rectDrawOp = &ebiten.DrawImageOptions{}
var vertexBuf []physics.Vector

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)
}

// DrawGround renders the static floor.
func DrawGround(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		drawEntity(screen, e)
	})
}

// DrawFortress renders every entity the fortress still owns.
func DrawFortress(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fortress.First(ecs.World)
	if !ok {
		return
	}
	for _, e := range components.Fortress.Get(entry).Entities {
		if e.Valid() {
			drawEntity(screen, e)
		}
	}
}

// DrawSlingshot renders the posts, the bands while loaded, the aim preview and
// the loaded or flying projectile.
func DrawSlingshot(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Slingshot.First(ecs.World)
	if !ok {
		return
	}
	s := components.Slingshot.Get(entry)
	ax, ay := float32(s.Anchor.X), float32(s.Anchor.Y)
	postW := float32(cfg.Slingshot.PostWidth)
	groundY := float32(cfg.C.Height) - float32(cfg.Ground.Height)

	vector.FillRect(screen, ax-postW/2, ay, postW, groundY-ay, cfg.Slingshot.PostColor, false)

	projectile := loadedProjectile(s)
	if projectile != nil && s.Sling.Attached() {
		p := bodyOf(projectile).Position()
		vector.StrokeLine(screen, ax, ay, float32(p.X), float32(p.Y), cfg.Slingshot.BandWidth, cfg.Slingshot.BandColor, true)
	}

	for i := 0; i < s.TrajectoryLen; i++ {
		pt := s.Trajectory[i]
		vector.FillCircle(screen, float32(pt.X), float32(pt.Y), cfg.Trajectory.PointRadius, cfg.Trajectory.Color, true)
	}

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		drawEntity(screen, e)
	})
}

// DrawQueue renders the projectiles waiting on the ground behind the slingshot.
func DrawQueue(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Queue.First(ecs.World)
	if !ok {
		return
	}
	groundY := float64(cfg.C.Height) - cfg.Ground.Height
	for _, slot := range components.Queue.Get(entry).Slots {
		t, ok := cfg.Projectile.Types[slot.Kind]
		if !ok {
			continue
		}
		y := groundY - t.Radius + QueueSlotHop(slot)
		vector.FillCircle(screen, float32(slot.X), float32(y), float32(t.Radius), t.Color, true)
	}
}

func drawEntity(screen *ebiten.Image, e *donburi.Entry) {
	data := components.Entity.Get(e)
	body := bodyOf(e)
	p := body.Position()

	switch data.Shape {
	case components.ShapeCircle:
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(data.Radius), data.Color, true)
		// Spoke so rotation is visible
		dx, dy := math.Cos(body.Angle())*data.Radius, math.Sin(body.Angle())*data.Radius
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(p.X+dx), float32(p.Y+dy), 2, cfg.DarkGray, true)
	case components.ShapeRectangle:
		if pixel == nil {
			pixel = ebiten.NewImage(1, 1)
			pixel.Fill(color.White)
		}
		rectDrawOp.GeoM.Reset()
		rectDrawOp.GeoM.Scale(data.Width, data.Height)
		rectDrawOp.GeoM.Translate(-data.Width/2, -data.Height/2)
		rectDrawOp.GeoM.Rotate(body.Angle())
		rectDrawOp.GeoM.Translate(p.X, p.Y)
		rectDrawOp.ColorScale.Reset()
		rectDrawOp.ColorScale.ScaleWithColor(data.Color)
		screen.DrawImage(pixel, rectDrawOp)
		if data.Outline.A > 0 {
			strokePolygon(screen, body, 2, data.Outline)
		}
	}
}

func strokePolygon(screen *ebiten.Image, body *physics.Body, width float32, clr color.Color) {
	vertexBuf = body.WorldVertices(vertexBuf)
	for i, a := range vertexBuf {
		b := vertexBuf[(i+1)%len(vertexBuf)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}
