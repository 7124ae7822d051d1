package systems

import (
	"github.com/automoto/flybird/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity for dynamic bodies. Static bodies keep
// their speed at zero.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if !physics.Dynamic {
			physics.SpeedY = 0
			return
		}

		physics.SpeedY += physics.Gravity
		if physics.MaxSpeed > 0 && physics.SpeedY > physics.MaxSpeed {
			physics.SpeedY = physics.MaxSpeed
		}
	})
}
