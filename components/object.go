package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// EntityKind is what an entity is in gameplay terms.
type EntityKind int

const (
	KindProjectile EntityKind = iota
	KindBlock
	KindTarget
	KindGround
)

func (k EntityKind) String() string {
	switch k {
	case KindProjectile:
		return "projectile"
	case KindBlock:
		return "block"
	case KindTarget:
		return "target"
	case KindGround:
		return "ground"
	}
	return "unknown"
}

// ShapeKind selects which geometry fields of EntityData apply.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRectangle
)

// EntityData wraps one physics body (see Body) with its gameplay state.
type EntityData struct {
	Kind  EntityKind
	Shape ShapeKind

	Radius float64 // ShapeCircle
	Width  float64 // ShapeRectangle
	Height float64

	Color   color.RGBA
	Outline color.RGBA

	MarkedForRemoval bool
	Removed          bool
}

var Entity = donburi.NewComponentType[EntityData]()
