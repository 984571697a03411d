package scenes

import (
	"fmt"

	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/systems"
	"github.com/automoto/slingfort/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// overlay is a message screen left by pressing confirm.
type overlay struct {
	sm     *StateMachine
	ecs    *ecs.ECS
	config cfg.OverlayConfig
	level  int
	input  func(*ecs.ECS)
}

func (o *overlay) enter(params Params, title string) {
	o.level = params.Level()
	o.ecs = ecs.NewECS(donburi.NewWorld())

	o.ecs.AddSystem(o.input)
	o.ecs.AddSystem(systems.UpdateOverlay)

	o.ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	o.ecs.AddRenderer(cfg.Default, systems.NewDrawOverlay(o.config))

	factory.CreateOverlay(o.ecs, o.config, title)
}

// confirmed runs one tick and reports whether confirm was pressed.
func (o *overlay) confirmed() bool {
	o.ecs.Update()
	return systems.GetAction(systems.GetInput(o.ecs), cfg.ActionConfirm).JustPressed
}

func (o *overlay) Draw(screen *ebiten.Image) {
	if o.ecs == nil {
		return
	}
	o.ecs.Draw(screen)
}

func (o *overlay) Exit() {
	o.ecs = nil
}

// Victory congratulates the player and moves on to the next level.
type Victory struct {
	overlay
}

func NewVictory(sm *StateMachine) *Victory {
	return &Victory{overlay{sm: sm, config: cfg.Victory, input: systems.UpdateInput}}
}

func (v *Victory) Enter(params Params) error {
	v.enter(params, fmt.Sprintf(v.config.Title, params.Level()))
	return nil
}

func (v *Victory) Update() error {
	if v.confirmed() {
		return v.sm.Change(PhasePlay, Params{ParamLevel: v.level + 1})
	}
	return nil
}

// Defeat ends the run. Confirm starts over from the first level.
type Defeat struct {
	overlay
}

func NewDefeat(sm *StateMachine) *Defeat {
	return &Defeat{overlay{sm: sm, config: cfg.Defeat, input: systems.UpdateInput}}
}

func (d *Defeat) Enter(params Params) error {
	d.enter(params, d.config.Title)
	return nil
}

func (d *Defeat) Update() error {
	if d.confirmed() {
		return d.sm.Change(PhasePlay, nil)
	}
	return nil
}
