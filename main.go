package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/fonts"
	"github.com/automoto/slingfort/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

type Game struct {
	phases *scenes.StateMachine
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	sm := scenes.NewStateMachine()
	sm.Add(scenes.PhasePlay, scenes.NewPlay(sm))
	sm.Add(scenes.PhaseVictory, scenes.NewVictory(sm))
	sm.Add(scenes.PhaseDefeat, scenes.NewDefeat(sm))

	if err := sm.Change(scenes.PhasePlay, scenes.Params{scenes.ParamLevel: config.Debug.StartLevel}); err != nil {
		return nil, err
	}
	return &Game{phases: sm}, nil
}

func (g *Game) Update() error {
	return g.phases.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.phases.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	flag.IntVar(&config.Debug.StartLevel, "level", config.Debug.StartLevel, "level to start on")
	flag.BoolVar(&config.Debug.Enabled, "debug", config.Debug.Enabled, "draw body outlines and counters (toggle with F1)")
	flag.StringVar(&config.Debug.Profile, "profile", "", `write a "cpu" or "mem" profile to the working directory`)
	flag.Parse()

	var stopProfile func()
	switch config.Debug.Profile {
	case "":
	case "cpu":
		stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop
	case "mem":
		stopProfile = profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop
	default:
		log.Fatal(fmt.Errorf("unknown profile mode %q", config.Debug.Profile))
	}

	ebiten.SetWindowSize(int(float64(config.C.Width)*config.Window.Scale), int(float64(config.C.Height)*config.Window.Scale))
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetTPS(config.Physics.TicksPerSecond)

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	err = ebiten.RunGame(game)
	if stopProfile != nil {
		stopProfile()
	}
	if err != nil {
		log.Fatal(err)
	}
}
