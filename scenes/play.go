package scenes

import (
	"fmt"

	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Play runs one level until every target is gone or the projectiles run out.
type Play struct {
	sm    *StateMachine
	ecs   *ecs.ECS
	level int

	// input samples the devices at the top of each tick.
	input func(*ecs.ECS)
}

func NewPlay(sm *StateMachine) *Play {
	return &Play{sm: sm, input: systems.UpdateInput}
}

func (p *Play) Enter(params Params) error {
	p.level = params.Level()

	if stage := params.Stage(); stage != nil {
		p.ecs = stage
		if level := systems.CurrentLevel(stage); level > 0 {
			p.level = level
		}
	} else {
		p.ecs = ecs.NewECS(donburi.NewWorld())
		if err := systems.SetupLevel(p.ecs, p.level); err != nil {
			return err
		}
	}

	p.ecs.AddSystem(p.input)
	p.ecs.AddSystem(systems.UpdateDebug)

	p.ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	p.ecs.AddRenderer(cfg.Default, systems.DrawGround)
	p.ecs.AddRenderer(cfg.Default, systems.DrawFortress)
	p.ecs.AddRenderer(cfg.Default, systems.DrawQueue)
	p.ecs.AddRenderer(cfg.Default, systems.DrawSlingshot)
	p.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	p.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	return nil
}

func (p *Play) Update() error {
	// Input and debug toggle
	p.ecs.Update()

	if systems.GetAction(systems.GetInput(p.ecs), cfg.ActionRestart).JustPressed {
		return p.sm.Change(PhasePlay, Params{ParamLevel: p.level})
	}

	if err := systems.Step(p.ecs); err != nil {
		return fmt.Errorf("level %d: %w", p.level, err)
	}

	switch {
	case systems.HasWon(p.ecs):
		return p.sm.Change(PhaseVictory, Params{ParamLevel: p.level})
	case systems.HasLost(p.ecs):
		return p.sm.Change(PhaseDefeat, nil)
	}
	return nil
}

func (p *Play) Draw(screen *ebiten.Image) {
	if p.ecs == nil {
		return
	}
	p.ecs.Draw(screen)
}

// Exit disposes every body of the level.
func (p *Play) Exit() {
	if p.ecs == nil {
		return
	}
	systems.ClearLevel(p.ecs)
	p.ecs = nil
}

// Level returns the index of the level being played.
func (p *Play) Level() int {
	return p.level
}

// Stage returns the running level, nil outside the phase.
func (p *Play) Stage() *ecs.ECS {
	return p.ecs
}
