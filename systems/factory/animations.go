package factory

import (
	"github.com/automoto/flybird/assets/animations"
	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
)

// GenerateAnimations builds the AnimationData for a set of definitions.
// Definitions without a speed use frameTime seconds per frame.
func GenerateAnimations(defs map[string]cfg.AnimationDef, frameTime float64) *components.AnimationData {
	if len(defs) == 0 {
		panic("No animation definitions given")
	}

	animData := &components.AnimationData{
		Frames:     make(map[string][]cfg.TextureID),
		Animations: make(map[string]*animations.Animation),
	}

	for key, def := range defs {
		speed := def.Speed
		if speed <= 0 {
			speed = float32(frameTime * float64(cfg.C.TPS))
		}
		animData.Frames[key] = def.Frames
		animData.Animations[key] = animations.NewAnimation(len(def.Frames), speed)
	}

	return animData
}
