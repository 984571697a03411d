package scenes

import (
	"errors"
	"testing"

	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type recordingPhase struct {
	name   string
	log    *[]string
	params Params
}

func (p *recordingPhase) Enter(params Params) error {
	p.params = params
	*p.log = append(*p.log, "enter "+p.name)
	return nil
}

func (p *recordingPhase) Update() error { return nil }
func (p *recordingPhase) Draw(screen *ebiten.Image) {}
func (p *recordingPhase) Exit() { *p.log = append(*p.log, "exit "+p.name) }

func TestChangeUnknownPhase(t *testing.T) {
	sm := NewStateMachine()
	if err := sm.Change("menu", nil); !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("err = %v, want ErrInvalidPhase", err)
	}
	if sm.Current() != "" {
		t.Fatalf("current = %q after failed change", sm.Current())
	}
}

func TestChangeExitsThenEnters(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	a := &recordingPhase{name: "a", log: &log}
	b := &recordingPhase{name: "b", log: &log}
	sm.Add("a", a)
	sm.Add("b", b)

	if err := sm.Change("a", nil); err != nil {
		t.Fatalf("change a: %v", err)
	}
	if err := sm.Change("b", Params{ParamLevel: 4}); err != nil {
		t.Fatalf("change b: %v", err)
	}

	want := []string{"enter a", "exit a", "enter b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
	if sm.Current() != "b" || b.params.Level() != 4 {
		t.Fatalf("current %q level %d", sm.Current(), b.params.Level())
	}
}

func TestParamsLevel(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   int
	}{
		{"nil", nil, 1},
		{"set", Params{ParamLevel: 3}, 3},
		{"wrong type", Params{ParamLevel: "3"}, 1},
		{"zero", Params{ParamLevel: 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Level(); got != tt.want {
				t.Fatalf("Level() = %d, want %d", got, tt.want)
			}
		})
	}
}

// newGame wires the three phases with input sampling replaced by press.
func newGame(press *[cfg.ActionCount]bool) (*StateMachine, *Play, *Victory, *Defeat) {
	input := func(e *ecs.ECS) {
		in := systems.GetInput(e)
		in.Previous = in.Current
		in.Current = *press
	}
	sm := NewStateMachine()
	play, victory, defeat := NewPlay(sm), NewVictory(sm), NewDefeat(sm)
	play.input, victory.input, defeat.input = input, input, input
	sm.Add(PhasePlay, play)
	sm.Add(PhaseVictory, victory)
	sm.Add(PhaseDefeat, defeat)
	return sm, play, victory, defeat
}

func TestPlayDefaultsToFirstLevel(t *testing.T) {
	var press [cfg.ActionCount]bool
	sm, play, _, _ := newGame(&press)

	if err := sm.Change(PhasePlay, nil); err != nil {
		t.Fatalf("enter play: %v", err)
	}
	if play.Level() != 1 || systems.CurrentLevel(play.Stage()) != 1 {
		t.Fatalf("level = %d, want 1", play.Level())
	}
	if err := sm.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if sm.Current() != PhasePlay {
		t.Fatalf("phase = %s after one quiet tick", sm.Current())
	}
}

func TestPlayWinGoesToVictory(t *testing.T) {
	var press [cfg.ActionCount]bool
	sm, play, victory, _ := newGame(&press)
	if err := sm.Change(PhasePlay, Params{ParamLevel: 2}); err != nil {
		t.Fatalf("enter play: %v", err)
	}

	stage := play.Stage()
	f := components.Fortress.Get(components.Fortress.MustFirst(stage.World))
	for _, entry := range f.Entities {
		if components.Entity.Get(entry).Kind == components.KindTarget {
			systems.MarkForRemoval(entry)
		}
	}
	if err := sm.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}

	if sm.Current() != PhaseVictory || victory.level != 2 {
		t.Fatalf("phase %s level %d, want victory 2", sm.Current(), victory.level)
	}
	if play.Stage() != nil {
		t.Fatalf("play not disposed on exit")
	}
}

func TestPlayLoseGoesToDefeat(t *testing.T) {
	var press [cfg.ActionCount]bool
	sm, play, _, _ := newGame(&press)
	if err := sm.Change(PhasePlay, nil); err != nil {
		t.Fatalf("enter play: %v", err)
	}

	stage := play.Stage()
	q := components.Queue.Get(components.Queue.MustFirst(stage.World))
	q.Kinds = nil
	s := components.Slingshot.Get(components.Slingshot.MustFirst(stage.World))
	systems.MarkForRemoval(s.Projectile)
	systems.TickEntity(stage, s.Projectile)

	if err := sm.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if sm.Current() != PhaseDefeat {
		t.Fatalf("phase = %s, want defeat", sm.Current())
	}
}

func TestVictoryConfirmPlaysNextLevel(t *testing.T) {
	var press [cfg.ActionCount]bool
	sm, play, _, _ := newGame(&press)
	if err := sm.Change(PhaseVictory, Params{ParamLevel: 2}); err != nil {
		t.Fatalf("enter victory: %v", err)
	}

	if err := sm.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if sm.Current() != PhaseVictory {
		t.Fatalf("left victory without confirm")
	}

	press[cfg.ActionConfirm] = true
	if err := sm.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if sm.Current() != PhasePlay || play.Level() != 3 {
		t.Fatalf("phase %s level %d, want play 3", sm.Current(), play.Level())
	}
}

func TestDefeatConfirmRestartsFirstLevel(t *testing.T) {
	var press [cfg.ActionCount]bool
	sm, play, _, _ := newGame(&press)
	if err := sm.Change(PhaseDefeat, Params{ParamLevel: 3}); err != nil {
		t.Fatalf("enter defeat: %v", err)
	}

	press[cfg.ActionConfirm] = true
	if err := sm.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if sm.Current() != PhasePlay || play.Level() != 1 {
		t.Fatalf("phase %s level %d, want play 1", sm.Current(), play.Level())
	}
}

func TestPlayAdoptsStage(t *testing.T) {
	var press [cfg.ActionCount]bool
	sm, play, _, _ := newGame(&press)

	stage := ecs.NewECS(donburi.NewWorld())
	if err := systems.SetupLevel(stage, 3); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := sm.Change(PhasePlay, Params{ParamStage: stage}); err != nil {
		t.Fatalf("enter play: %v", err)
	}

	if play.Stage() != stage || play.Level() != 3 {
		t.Fatalf("stage not adopted, level %d", play.Level())
	}
}

func TestRestartReloadsLevel(t *testing.T) {
	var press [cfg.ActionCount]bool
	sm, play, _, _ := newGame(&press)
	if err := sm.Change(PhasePlay, Params{ParamLevel: 2}); err != nil {
		t.Fatalf("enter play: %v", err)
	}
	first := play.Stage()

	press[cfg.ActionRestart] = true
	if err := sm.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if play.Stage() == first || play.Level() != 2 || sm.Current() != PhasePlay {
		t.Fatalf("restart did not rebuild level 2")
	}
}
