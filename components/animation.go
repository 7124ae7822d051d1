package components

import (
	"github.com/automoto/flybird/assets/animations"
	"github.com/automoto/flybird/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentKey       string
	Frames           map[string][]config.TextureID
	Animations       map[string]*animations.Animation
}

// SetAnimation switches to the animation stored under key and restarts it.
// Unknown keys clear the current animation.
func (a *AnimationData) SetAnimation(key string) {
	anim, ok := a.Animations[key]
	if !ok {
		a.CurrentAnimation = nil
		a.CurrentKey = key
		return
	}
	a.CurrentAnimation = anim
	a.CurrentKey = key
	a.CurrentAnimation.Play()
}

// Texture returns the texture of the current frame, or "" when nothing is set.
func (a *AnimationData) Texture() config.TextureID {
	if a.CurrentAnimation == nil {
		return ""
	}
	frames := a.Frames[a.CurrentKey]
	if len(frames) == 0 {
		return ""
	}
	return frames[a.CurrentAnimation.Frame()%len(frames)]
}

var Animation = donburi.NewComponentType[AnimationData]()
