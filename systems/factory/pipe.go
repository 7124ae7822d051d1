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

func CreatePipe(ecs *ecs.ECS, x, y, w, h float64, top bool) *donburi.Entry {
	pipe := archetypes.Pipe.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid, tags.ResolvPipe)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = pipe
	components.Object.SetValue(pipe, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	texture := cfg.TextureBottomPipe
	if top {
		texture = cfg.TextureTopPipe
	}
	components.Sprite.SetValue(pipe, components.SpriteData{Texture: texture})
	components.Pipe.SetValue(pipe, components.PipeData{Top: top})
	components.Scroll.SetValue(pipe, components.ScrollData{Step: cfg.Scroll.Step})

	return pipe
}

// CreatePipePair places a top pipe hanging from the top edge and a bottom
// pipe standing on the floor, both just past the right edge of the view.
// A pipe with no height is not created.
func CreatePipePair(ecs *ecs.ECS, width, topHeight, bottomHeight float64) (top, bottom *donburi.Entry) {
	x := float64(cfg.C.Width)
	if topHeight > 0 {
		top = CreatePipe(ecs, x, 0, width, topHeight, true)
	}
	if bottomHeight > 0 {
		y := float64(cfg.C.Height) - cfg.Floor.Height - bottomHeight
		bottom = CreatePipe(ecs, x, y, width, bottomHeight, false)
	}
	return top, bottom
}
