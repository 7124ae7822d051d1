package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/flybird/archetypes"
	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the controller singleton. A zero seed is replaced by
// the current time.
func CreateGame(ecs *ecs.ECS, seed int64) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	components.Game.SetValue(game, components.GameData{
		Status: cfg.StatusIdle,
		Seed:   seed,
		Rng:    rand.New(rand.NewSource(seed)),
	})
	components.Debug.SetValue(game, components.DebugData{ShowHitboxes: cfg.Debug.ShowHitboxes})

	return game
}

// CreateWorld populates an empty ECS with every entity of the scene.
func CreateWorld(ecs *ecs.ECS, seed int64) {
	CreateSceneSpace(ecs)
	CreateGame(ecs, seed)
	CreateFloors(ecs)
	CreateBird(ecs)
	CreateLabels(ecs)
}
