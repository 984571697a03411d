package components

import (
	"github.com/automoto/slingfort/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	// Index is the level number the player sees, starting at 1. It can be
	// past the last layout, in which case Layout is the last one.
	Index  int
	Layout *assets.Level
}

var Level = donburi.NewComponentType[LevelData]()
