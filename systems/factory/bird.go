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

// BirdStart returns the top-left corner that centres the bird in the scene.
func BirdStart() (float64, float64) {
	x := float64(cfg.C.Width)*0.5 - cfg.Bird.Width*0.5
	y := float64(cfg.C.Height)*0.5 - cfg.Bird.Height*0.5
	return x, y
}

func CreateBird(ecs *ecs.ECS) *donburi.Entry {
	bird := archetypes.Bird.Spawn(ecs)

	x, y := BirdStart()
	w, h := cfg.Bird.Width, cfg.Bird.Height
	obj := resolv.NewObject(x, y, w, h, tags.ResolvBird)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = bird
	components.Object.SetValue(bird, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Physics.SetValue(bird, components.NewBody(w, h,
		cfg.CategoryBird, cfg.CategoryPipe|cfg.CategoryFloor))

	animData := GenerateAnimations(cfg.BirdAnimations, cfg.Bird.FrameTime)
	components.Animation.Set(bird, animData)

	return bird
}
