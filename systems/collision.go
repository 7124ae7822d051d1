package systems

import (
	"math"

	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/automoto/flybird/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves dynamic bodies by their speed, stops them on
// solids and at the scene edge, then reports newly started contacts.
func UpdateCollisions(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if !physics.Dynamic {
			return
		}
		obj := components.Object.Get(e)

		var touched uint32
		if hit := resolveObjectVerticalCollision(physics, obj); hit != nil {
			touched |= categoryOf(hit)
		}
		clampToSceneEdge(physics, obj)
		obj.Update()

		touched |= overlappingCategories(obj)
		began := touched &^ physics.Touching
		physics.Touching = touched

		for bit := uint32(1); bit != 0 && bit <= began; bit <<= 1 {
			if began&bit != 0 && physics.ContactMask&bit != 0 {
				HandleContact(ecs, bit)
			}
		}
	})
}

// resolveObjectVerticalCollision moves the object by its vertical speed,
// stopping flush against the first solid in the way. It returns that solid.
func resolveObjectVerticalCollision(physics *components.PhysicsData, obj *components.ObjectData) *resolv.Object {
	dy := physics.SpeedY
	if dy == 0 {
		return nil
	}

	checkDistance := dy
	if dy > 0 {
		checkDistance++
	} else {
		checkDistance--
	}

	check := obj.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		obj.Y += dy
		return nil
	}

	var hit *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		// only solids in the same column can block vertical movement
		if obj.X >= solid.X+solid.W || obj.X+obj.W <= solid.X {
			continue
		}
		if dy > 0 && solid.Y >= obj.Y+obj.H {
			if limit := solid.Y - (obj.Y + obj.H); limit <= dy {
				dy, hit = limit, solid
			}
		} else if dy < 0 && solid.Y+solid.H <= obj.Y {
			if limit := solid.Y + solid.H - obj.Y; limit >= dy {
				dy, hit = limit, solid
			}
		}
	}

	if hit != nil {
		physics.SpeedY = 0
	}
	obj.Y += dy
	return hit
}

// clampToSceneEdge keeps the body inside the scene's edge loop. The edge
// stops the body but is never reported as a contact.
func clampToSceneEdge(physics *components.PhysicsData, obj *components.ObjectData) {
	if obj.Y < 0 {
		obj.Y = 0
		physics.SpeedY = math.Max(physics.SpeedY, 0)
	}
	if bottom := float64(cfg.C.Height); obj.Y+obj.H > bottom {
		obj.Y = bottom - obj.H
		physics.SpeedY = math.Min(physics.SpeedY, 0)
	}
}

// overlappingCategories returns the categories of every solid the object
// overlaps or rests against.
func overlappingCategories(obj *components.ObjectData) uint32 {
	var mask uint32
	for _, dy := range []float64{-1, 1} {
		check := obj.Check(0, dy, tags.ResolvSolid)
		if check == nil {
			continue
		}
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if obj.Touches(solid) {
				mask |= categoryOf(solid)
			}
		}
	}
	return mask
}

func categoryOf(obj *resolv.Object) uint32 {
	switch {
	case obj.HasTags(tags.ResolvPipe):
		return cfg.CategoryPipe
	case obj.HasTags(tags.ResolvFloor):
		return cfg.CategoryFloor
	}
	return 0
}
