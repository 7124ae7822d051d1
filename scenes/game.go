package scenes

import (
	"sync"

	"github.com/automoto/flybird/assets"
	cfg "github.com/automoto/flybird/config"
	"github.com/automoto/flybird/systems"
	"github.com/automoto/flybird/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene is the single play field: the bird, the scrolling floor and
// the obstacle pairs.
type GameScene struct {
	ecs  *ecs.ECS
	seed int64
	once sync.Once
}

func NewGameScene(seed int64) *GameScene {
	return &GameScene{seed: seed}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	if gs.ecs == nil {
		screen.Fill(cfg.Labels.BackgroundColor)
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	// Generate textures up front so the first frames don't stall
	assets.PreloadAllTextures()

	gs.ecs = NewWorld(gs.seed)
	game := systems.GetGame(gs.ecs)
	log.Info("scene ready", "seed", game.Seed, "size", []int{cfg.C.Width, cfg.C.Height})
}

// NewWorld builds the ECS with every system, renderer and entity, already
// shuffled into the idle state.
func NewWorld(seed int64) *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateGame)
	ecs.AddSystem(systems.UpdateSpawner)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateEffects)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawPipes)
	ecs.AddRenderer(cfg.Default, systems.DrawFloors)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawLabels)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawDebug)

	factory.CreateWorld(ecs, seed)
	systems.Shuffle(ecs)

	return ecs
}
