package systems

import (
	"github.com/automoto/flybird/components"
	"github.com/automoto/flybird/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MoveScene shifts every scrolling entity left by its step. A floor that
// has fully left the view is placed right after the rightmost floor and a
// pipe whose right edge is left of the view is removed.
func MoveScene(ecs *ecs.ECS) {
	var floors []*components.ObjectData
	var expired []*donburi.Entry

	components.Scroll.Each(ecs.World, func(e *donburi.Entry) {
		scroll := components.Scroll.Get(e)
		obj := components.Object.Get(e)
		obj.X -= scroll.Step
		if scroll.Wrap {
			floors = append(floors, obj)
		}
	})

	for _, floor := range floors {
		if floor.X >= -floor.W {
			continue
		}
		var rightmost *components.ObjectData
		for _, other := range floors {
			if other == floor {
				continue
			}
			if rightmost == nil || other.X > rightmost.X {
				rightmost = other
			}
		}
		if rightmost != nil {
			floor.X = rightmost.Right()
		} else {
			floor.X += 2 * floor.W
		}
	}

	tags.Pipe.Each(ecs.World, func(e *donburi.Entry) {
		if components.Object.Get(e).Right() < 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		removeEntry(ecs, e)
	}

	components.Scroll.Each(ecs.World, func(e *donburi.Entry) {
		components.Object.Get(e).Update()
	})
}

// removeAllPipes destroys every obstacle along with its collision object.
func removeAllPipes(ecs *ecs.ECS) {
	var pipes []*donburi.Entry
	tags.Pipe.Each(ecs.World, func(e *donburi.Entry) {
		pipes = append(pipes, e)
	})
	for _, e := range pipes {
		removeEntry(ecs, e)
	}
}

func removeEntry(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

// CountPipes returns the number of obstacle entities in the world.
func CountPipes(ecs *ecs.ECS) int {
	n := 0
	tags.Pipe.Each(ecs.World, func(*donburi.Entry) { n++ })
	return n
}
