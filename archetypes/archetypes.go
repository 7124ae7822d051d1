package archetypes

import (
	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/automoto/flybird/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Game = newArchetype(
		components.Game,
		components.Input,
		components.Debug,
	)
	Space = newArchetype(
		components.Space,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Object,
		components.Sprite,
		components.Scroll,
	)
	Bird = newArchetype(
		tags.Bird,
		components.Object,
		components.Animation,
		components.Physics,
	)
	Pipe = newArchetype(
		tags.Pipe,
		components.Pipe,
		components.Object,
		components.Sprite,
		components.Scroll,
	)
	Label = newArchetype(
		components.Label,
	).onLayer(cfg.LayerHUD)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      cfg.Default,
		components: cs,
	}
}

func (a *archetype) onLayer(layer ecs.LayerID) *archetype {
	a.layer = layer
	return a
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
