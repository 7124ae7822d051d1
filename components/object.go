package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Right returns the x coordinate of the object's right edge.
func (o *ObjectData) Right() float64 {
	return o.X + o.W
}

// Touches reports whether the two boxes overlap or share an edge.
func (o *ObjectData) Touches(other *resolv.Object) bool {
	return o.X <= other.X+other.W && o.X+o.W >= other.X &&
		o.Y <= other.Y+other.H && o.Y+o.H >= other.Y
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
