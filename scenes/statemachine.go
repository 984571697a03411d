package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ErrInvalidPhase is returned when changing to a phase that was never added.
var ErrInvalidPhase = errors.New("invalid phase")

// Phase names
const (
	PhasePlay    = "play"
	PhaseVictory = "victory"
	PhaseDefeat  = "defeat"
)

// Params keys
const (
	ParamLevel = "level" // int, 1-based
	ParamStage = "stage" // *ecs.ECS with a level already set up
)

// Params is passed to the phase being entered.
type Params map[string]any

// Level returns the requested level, 1 when absent.
func (p Params) Level() int {
	if level, ok := p[ParamLevel].(int); ok && level > 0 {
		return level
	}
	return 1
}

// Stage returns a pre-built level, if any.
func (p Params) Stage() *ecs.ECS {
	stage, _ := p[ParamStage].(*ecs.ECS)
	return stage
}

type Phase interface {
	Enter(params Params) error
	Update() error
	Draw(screen *ebiten.Image)
}

// Exiter is implemented by phases that clean up when left.
type Exiter interface {
	Exit()
}

// StateMachine runs exactly one phase at a time.
type StateMachine struct {
	phases  map[string]Phase
	current Phase
	name    string
}

func NewStateMachine() *StateMachine {
	return &StateMachine{phases: make(map[string]Phase)}
}

func (sm *StateMachine) Add(name string, phase Phase) {
	sm.phases[name] = phase
}

// Change exits the current phase, then enters the named one with params.
func (sm *StateMachine) Change(name string, params Params) error {
	next, ok := sm.phases[name]
	if !ok {
		return fmt.Errorf("change to %q: %w", name, ErrInvalidPhase)
	}
	if exiter, ok := sm.current.(Exiter); ok {
		exiter.Exit()
	}
	sm.current = next
	sm.name = name
	log.Printf("phase %s %v", name, params)
	if err := next.Enter(params); err != nil {
		return fmt.Errorf("enter %s: %w", name, err)
	}
	return nil
}

// Current returns the name of the active phase.
func (sm *StateMachine) Current() string {
	return sm.name
}

func (sm *StateMachine) Update() error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update()
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if sm.current == nil {
		return
	}
	sm.current.Draw(screen)
}
