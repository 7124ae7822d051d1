package components

import (
	"math/rand"

	"github.com/automoto/flybird/config"
	"github.com/yohamta/donburi"
)

// GameData is the singleton holding the controller state.
type GameData struct {
	Status            config.GameStatus
	Meters            int
	Seed              int64
	Rng               *rand.Rand
	Spawning          bool
	SpawnTimer        int // ticks until the next pipe pair
	InteractionLocked bool
	PipesSpawned      int
}

var Game = donburi.NewComponentType[GameData]()

// DebugData toggles the collision overlay.
type DebugData struct {
	ShowHitboxes bool
}

var Debug = donburi.NewComponentType[DebugData]()
