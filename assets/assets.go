package assets

import (
	"fmt"
	"image/color"

	"github.com/automoto/flybird/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// generator paints a texture from scratch. The game ships without image
// files, so every texture is drawn the first time it is requested.
type generator func() *ebiten.Image

type TextureLoader struct {
	cache      map[config.TextureID]*ebiten.Image
	generators map[config.TextureID]generator
}

func NewTextureLoader() *TextureLoader {
	l := &TextureLoader{
		cache: make(map[config.TextureID]*ebiten.Image),
	}
	l.generators = map[config.TextureID]generator{
		config.TexturePlayer1:    func() *ebiten.Image { return newBirdFrame(-4) },
		config.TexturePlayer2:    func() *ebiten.Image { return newBirdFrame(0) },
		config.TexturePlayer3:    func() *ebiten.Image { return newBirdFrame(4) },
		config.TextureFloor:      newFloor,
		config.TextureTopPipe:    func() *ebiten.Image { return newPipeCap(false) },
		config.TextureBottomPipe: func() *ebiten.Image { return newPipeCap(true) },
		config.TexturePipeBody:   newPipeBody,
	}
	return l
}

func (l *TextureLoader) MustLoadTexture(id config.TextureID) *ebiten.Image {
	if img, ok := l.cache[id]; ok {
		return img
	}

	gen, ok := l.generators[id]
	if !ok {
		panic(fmt.Sprintf("No texture generator for %s", id))
	}

	img := gen()
	l.cache[id] = img

	return img
}

var (
	textureLoader = NewTextureLoader()
)

func GetTexture(id config.TextureID) *ebiten.Image {
	return textureLoader.MustLoadTexture(id)
}

// PreloadAllTextures generates every texture up front so the first frames
// don't stall on texture uploads (noticeable on WASM and mobile).
func PreloadAllTextures() {
	for id := range textureLoader.generators {
		_ = GetTexture(id)
	}
}

// newBirdFrame draws the bird with its wing shifted vertically by wingOffset.
func newBirdFrame(wingOffset float32) *ebiten.Image {
	w, h := float32(config.Bird.Width), float32(config.Bird.Height)
	img := ebiten.NewImage(int(w), int(h))

	cx, cy := w*0.45, h*0.5
	r := h * 0.46
	vector.FillCircle(img, cx, cy, r, config.BirdYellow, true)
	vector.FillCircle(img, cx+1, cy+r*0.35, r*0.6, color.RGBA{R: 252, G: 232, B: 140, A: 255}, true)

	// eye
	vector.FillCircle(img, w*0.68, h*0.32, h*0.17, config.White, true)
	vector.FillCircle(img, w*0.72, h*0.32, h*0.07, config.Black, true)

	// beak
	vector.FillRect(img, w*0.74, h*0.5, w*0.26, h*0.12, config.BirdOrange, false)
	vector.FillRect(img, w*0.74, h*0.62, w*0.22, h*0.1, color.RGBA{R: 200, G: 90, B: 20, A: 255}, false)

	// wing
	vector.FillCircle(img, w*0.26, cy+wingOffset, h*0.2, color.RGBA{R: 255, G: 245, B: 210, A: 255}, true)

	return img
}

const floorStripe = 12

func newFloor() *ebiten.Image {
	w, h := float32(config.Floor.Width), float32(config.Floor.Height)
	img := ebiten.NewImage(int(w), int(h))
	img.Fill(config.Sand)

	grass := float32(14)
	vector.FillRect(img, 0, 0, w, 2, config.GrassDark, false)
	vector.FillRect(img, 0, 2, w, grass, config.Grass, false)
	for x := float32(0); x < w; x += floorStripe * 2 {
		vector.FillRect(img, x, 2, floorStripe, grass, config.GrassDark, false)
	}
	vector.FillRect(img, 0, grass+2, w, 3, color.RGBA{R: 200, G: 170, B: 90, A: 255}, false)

	return img
}

// newPipeBody returns a one pixel tall slice that is stretched to the pipe height.
func newPipeBody() *ebiten.Image {
	w := float32(config.Pipes.Width)
	img := ebiten.NewImage(int(w), 1)
	img.Fill(config.PipeGreen)

	vector.FillRect(img, 0, 0, 2, 1, config.PipeDark, false)
	vector.FillRect(img, w*0.15, 0, w*0.12, 1, config.PipeLight, false)
	vector.FillRect(img, w*0.7, 0, w*0.2, 1, config.PipeDark, false)
	vector.FillRect(img, w-2, 0, 2, 1, config.PipeDark, false)

	return img
}

// newPipeCap draws the rim drawn at the open end of a pipe. The rim line sits
// at the top of the cap for bottom pipes and at the bottom for top pipes.
func newPipeCap(rimOnTop bool) *ebiten.Image {
	w, h := float32(config.Pipes.Width), float32(config.Pipes.CapHeight)
	img := ebiten.NewImage(int(w), int(h))
	img.Fill(config.PipeGreen)

	vector.FillRect(img, w*0.1, 0, w*0.14, h, config.PipeLight, false)
	vector.FillRect(img, w*0.72, 0, w*0.2, h, config.PipeDark, false)
	vector.StrokeRect(img, 1, 1, w-2, h-2, 2, config.PipeDark, false)
	if rimOnTop {
		vector.FillRect(img, 0, 0, w, 3, config.PipeDark, false)
	} else {
		vector.FillRect(img, 0, h-3, w, 3, config.PipeDark, false)
	}

	return img
}
