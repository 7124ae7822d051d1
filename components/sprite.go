package components

import (
	"github.com/automoto/flybird/config"
	"github.com/yohamta/donburi"
)

// SpriteData names the texture drawn over an entity's collision box.
type SpriteData struct {
	Texture config.TextureID
}

var Sprite = donburi.NewComponentType[SpriteData]()
