package tags

import "github.com/yohamta/donburi"

var (
	Bird  = donburi.NewTag().SetName("Bird")
	Pipe  = donburi.NewTag().SetName("Pipe")
	Floor = donburi.NewTag().SetName("Floor")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvBird  = "bird"
	ResolvPipe  = "pipe"
	ResolvFloor = "floor"
)
