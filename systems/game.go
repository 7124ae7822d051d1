package systems

import (
	"fmt"

	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/automoto/flybird/systems/factory"
	"github.com/automoto/flybird/tags"
	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetGame returns the controller singleton, or nil before the world is built.
func GetGame(ecs *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}

func getBird(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Bird.First(ecs.World)
}

// UpdateGame is the per-tick controller hook: it reacts to taps, counts
// meters while running and scrolls the scene until the game is over.
func UpdateGame(ecs *ecs.ECS) {
	game := GetGame(ecs)
	if game == nil {
		return
	}

	if GetAction(getOrCreateInput(ecs), cfg.ActionTap).JustPressed {
		HandleTap(ecs)
	}

	if game.Status == cfg.StatusRunning {
		game.Meters++
	}
	if game.Status != cfg.StatusOver {
		MoveScene(ecs)
	}
}

// HandleTap advances the state machine for a single tap. Taps are dropped
// while interaction is locked.
func HandleTap(ecs *ecs.ECS) {
	game := GetGame(ecs)
	if game == nil || game.InteractionLocked {
		return
	}

	switch game.Status {
	case cfg.StatusIdle:
		StartGame(ecs)
	case cfg.StatusRunning:
		if bird, ok := getBird(ecs); ok {
			components.Physics.Get(bird).ApplyImpulse(cfg.Bird.FlapImpulse)
		}
	case cfg.StatusOver:
		Shuffle(ecs)
	}
}

// Shuffle resets the scene to the idle state.
func Shuffle(ecs *ecs.ECS) {
	game := GetGame(ecs)
	if game == nil {
		return
	}
	prev := game.Status

	game.Status = cfg.StatusIdle
	game.Meters = 0
	game.InteractionLocked = false
	stopSpawner(game)

	eachLabel(ecs, func(l *components.LabelData) {
		switch l.Kind {
		case components.LabelStart:
			l.Visible = true
		case components.LabelGameOver:
			l.Visible = false
			l.Slide = nil
		}
	})

	removeAllPipes(ecs)

	if bird, ok := getBird(ecs); ok {
		obj := components.Object.Get(bird)
		obj.X, obj.Y = factory.BirdStart()
		obj.Update()

		physics := components.Physics.Get(bird)
		physics.Dynamic = false
		physics.SpeedY = 0
		physics.Touching = 0

		birdStartFly(bird)
	}

	log.Debug("shuffle", "from", prev, "seed", game.Seed)
}

// StartGame moves from idle to running.
func StartGame(ecs *ecs.ECS) {
	game := GetGame(ecs)
	if game == nil || game.Status != cfg.StatusIdle {
		return
	}

	game.Status = cfg.StatusRunning
	eachLabel(ecs, func(l *components.LabelData) {
		if l.Kind == components.LabelStart {
			l.Visible = false
		}
	})

	if bird, ok := getBird(ecs); ok {
		components.Physics.Get(bird).Dynamic = true
	}

	startSpawner(game)
	log.Debug("game started", "first_spawn_ticks", game.SpawnTimer)
}

// GameOver ends a running game. Input stays locked until the game-over
// label has finished sliding into place.
func GameOver(ecs *ecs.ECS) {
	game := GetGame(ecs)
	if game == nil || game.Status != cfg.StatusRunning {
		return
	}

	game.Status = cfg.StatusOver
	game.InteractionLocked = true
	stopSpawner(game)

	if bird, ok := getBird(ecs); ok {
		birdStopFly(bird)
	}

	h := float64(cfg.C.Height)
	eachLabel(ecs, func(l *components.LabelData) {
		if l.Kind != components.LabelGameOver {
			return
		}
		l.Visible = true
		l.SlideFrom = 0
		l.Y = 0
		l.Slide = gween.New(0, float32(h*0.5), float32(cfg.Labels.OverSlideTime), ease.Linear)
	})

	log.Debug("game over", "meters", game.Meters, "pipes", game.PipesSpawned)
}

// HandleContact is called when the bird starts touching a body of the given
// category. Only a running game reacts to it.
func HandleContact(ecs *ecs.ECS, category uint32) {
	game := GetGame(ecs)
	if game == nil || game.Status != cfg.StatusRunning {
		return
	}
	if category == cfg.CategoryPipe || category == cfg.CategoryFloor {
		GameOver(ecs)
	}
}

// MetersText formats the distance label.
func MetersText(meters int) string {
	return fmt.Sprintf(cfg.Labels.MetersFormat, meters)
}

func birdStartFly(bird *donburi.Entry) {
	if !bird.HasComponent(components.Animation) {
		return
	}
	components.Animation.Get(bird).SetAnimation(cfg.ActionFly)
}

func birdStopFly(bird *donburi.Entry) {
	if !bird.HasComponent(components.Animation) {
		return
	}
	if anim := components.Animation.Get(bird).CurrentAnimation; anim != nil {
		anim.Stop()
	}
}

func eachLabel(ecs *ecs.ECS, fn func(l *components.LabelData)) {
	components.Label.Each(ecs.World, func(e *donburi.Entry) {
		fn(components.Label.Get(e))
	})
}
