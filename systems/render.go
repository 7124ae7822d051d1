package systems

import (
	"math"

	"github.com/automoto/flybird/assets"
	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/automoto/flybird/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Labels.BackgroundColor)
}

// DrawPipes stretches the pipe body over the full height and caps the open end.
func DrawPipes(ecs *ecs.ECS, screen *ebiten.Image) {
	body := assets.GetTexture(cfg.TexturePipeBody)

	tags.Pipe.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if o.X > float64(cfg.C.Width) || o.Right() < 0 || o.H <= 0 {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.GeoM.Scale(o.W/float64(body.Bounds().Dx()), o.H)
		drawOp.GeoM.Translate(o.X, o.Y)
		screen.DrawImage(body, drawOp)

		sprite := components.Sprite.Get(e)
		capImg := assets.GetTexture(sprite.Texture)
		capH := math.Min(o.H, float64(capImg.Bounds().Dy()))
		capY := o.Y
		if components.Pipe.Get(e).Top {
			capY = o.Y + o.H - capH
		}

		drawOp.GeoM.Reset()
		drawOp.GeoM.Scale(o.W/float64(capImg.Bounds().Dx()), capH/float64(capImg.Bounds().Dy()))
		drawOp.GeoM.Translate(o.X, capY)
		screen.DrawImage(capImg, drawOp)
	})
}

// DrawFloors draws each floor segment that intersects the view.
func DrawFloors(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Floor.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if o.X > float64(cfg.C.Width) || o.Right() < 0 {
			return
		}
		drawSprite(screen, components.Sprite.Get(e).Texture, o)
	})
}

// DrawAnimated renders entities with an Animation component at their current frame.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		texture := components.Animation.Get(e).Texture()
		if texture == "" {
			return
		}
		drawSprite(screen, texture, components.Object.Get(e))
	})
}

func drawSprite(screen *ebiten.Image, texture cfg.TextureID, o *components.ObjectData) {
	img := assets.GetTexture(texture)
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(o.W/float64(img.Bounds().Dx()), o.H/float64(img.Bounds().Dy()))
	drawOp.GeoM.Translate(math.Round(o.X), math.Round(o.Y))
	screen.DrawImage(img, drawOp)
}
