package tags

import "github.com/yohamta/donburi"

var (
	Projectile = donburi.NewTag().SetName("Projectile")
	Block      = donburi.NewTag().SetName("Block")
	Target     = donburi.NewTag().SetName("Target")
	Ground     = donburi.NewTag().SetName("Ground")
)

// Resolv tags for the playfield bounds space
const (
	ResolvDeadZone = "deadzone"
	ResolvProbe    = "probe"
)
