package systems

import (
	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLabels renders every visible label centred on its X.
func DrawLabels(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Label.Each(ecs.World, func(e *donburi.Entry) {
		l := components.Label.Get(e)
		if !l.Visible || l.Text == "" {
			return
		}

		face := l.Font.Get()
		bounds := text.BoundString(face, l.Text)
		x := int(l.X) - bounds.Dx()/2
		y := int(l.Y)
		if l.Top {
			y -= bounds.Min.Y
		}
		text.Draw(screen, l.Text, face, x, y, cfg.Labels.TextColor)
	})
}
