package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData drives the Victory and Defeat screens.
type OverlayData struct {
	Title  string
	Hint   string
	TitleY float32
	Drop   *gween.Tween
}

var Overlay = donburi.NewComponentType[OverlayData]()
