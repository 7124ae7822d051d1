package components

import "github.com/yohamta/donburi"

// ScrollData marks an entity that the scene loop shifts left every tick.
type ScrollData struct {
	Step float64
	Wrap bool // floors wrap behind their partner, pipes are removed
}

var Scroll = donburi.NewComponentType[ScrollData]()

type PipeData struct {
	Top bool
}

var Pipe = donburi.NewComponentType[PipeData]()
