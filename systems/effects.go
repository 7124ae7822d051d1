package systems

import (
	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances time-driven visuals: sprite animations and label
// slides.
func UpdateEffects(ecs *ecs.ECS) {
	updateAnimations(ecs)
	UpdateLabels(ecs)
}

func updateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

// UpdateLabels keeps the meters label in sync and steps any label slide.
// Finishing the game-over slide unlocks interaction.
func UpdateLabels(ecs *ecs.ECS) {
	game := GetGame(ecs)
	dt := float32(1) / float32(cfg.C.TPS)

	eachLabel(ecs, func(l *components.LabelData) {
		if l.Kind == components.LabelMeters && game != nil {
			l.Text = MetersText(game.Meters)
		}

		if l.Slide == nil {
			return
		}
		current, finished := l.Slide.Update(dt)
		l.Y = l.SlideFrom + float64(current)
		if finished {
			l.Slide = nil
			if l.Kind == components.LabelGameOver && game != nil {
				game.InteractionLocked = false
			}
		}
	})
}
