package systems

import (
	"github.com/automoto/flybird/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every collision object in the space cells it
// now covers.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
