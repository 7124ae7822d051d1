package game

import (
	"fmt"
	"image"

	"github.com/automoto/flybird/config"
	"github.com/automoto/flybird/fonts"
	"github.com/automoto/flybird/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene Scene) {
	g.scene = scene
}

// NewGame loads the label fonts and opens the play scene. A zero seed picks
// one from the clock.
func NewGame(seed int64) (*Game, error) {
	if err := fonts.LoadDefaults(
		config.Labels.StartFontSize,
		config.Labels.OverFontSize,
		config.Labels.MetersFontSize,
	); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.ChangeScene(scenes.NewGameScene(seed))

	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}
