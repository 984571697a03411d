package factory

import (
	"fmt"

	"github.com/automoto/slingfort/archetypes"
	"github.com/automoto/slingfort/assets"
	"github.com/automoto/slingfort/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds level index (1-based) into ecs: space, ground, fortress,
// queue and an empty slingshot.
func CreateLevel(ecs *ecs.ECS, index int) (*donburi.Entry, error) {
	layout, err := assets.LevelAt(index)
	if err != nil {
		return nil, fmt.Errorf("create level %d: %w", index, err)
	}
	return CreateLevelFromLayout(ecs, index, layout), nil
}

func CreateLevelFromLayout(ecs *ecs.ECS, index int, layout *assets.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Index:  index,
		Layout: layout,
	})

	CreateSpace(ecs, layout.Width, layout.Height)
	CreateGround(ecs, float64(layout.Width), float64(layout.Height))

	entities := make([]*donburi.Entry, 0, len(layout.Blocks)+len(layout.Targets))
	for _, b := range layout.Blocks {
		entities = append(entities, CreateBlock(ecs, b))
	}
	for _, t := range layout.Targets {
		entities = append(entities, CreateTarget(ecs, t.X, t.Y))
	}
	CreateFortress(ecs, entities)

	CreateQueue(ecs, layout.Queue, layout.Slingshot.X)
	CreateSlingshot(ecs, layout.Slingshot.X, layout.Slingshot.Y)

	return level
}
