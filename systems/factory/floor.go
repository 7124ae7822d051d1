package factory

import (
	"github.com/automoto/flybird/archetypes"
	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/automoto/flybird/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateFloor(ecs *ecs.ECS, x float64) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)

	w, h := cfg.Floor.Width, cfg.Floor.Height
	obj := resolv.NewObject(x, float64(cfg.C.Height)-h, w, h, tags.ResolvSolid, tags.ResolvFloor)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = floor
	components.Object.SetValue(floor, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Sprite.SetValue(floor, components.SpriteData{Texture: cfg.TextureFloor})
	components.Scroll.SetValue(floor, components.ScrollData{Step: cfg.Scroll.Step, Wrap: true})

	return floor
}

// CreateFloors lays two floor segments side by side starting at x = 0.
func CreateFloors(ecs *ecs.ECS) (*donburi.Entry, *donburi.Entry) {
	return CreateFloor(ecs, 0), CreateFloor(ecs, cfg.Floor.Width)
}
