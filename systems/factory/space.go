package factory

import (
	"github.com/automoto/flybird/archetypes"
	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spaceCellSize = 16

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateSceneSpace sizes the collision space so pipes are registered from the
// moment they spawn just past the right edge of the view.
func CreateSceneSpace(ecs *ecs.ECS) *donburi.Entry {
	width := 2*cfg.C.Width + int(cfg.Pipes.Width)
	if w := int(2 * cfg.Floor.Width); w > width {
		width = w
	}
	return CreateSpace(ecs, width, cfg.C.Height, spaceCellSize, spaceCellSize)
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
