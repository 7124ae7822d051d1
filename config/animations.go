package config

// TextureID names a procedurally generated texture
type TextureID string

const (
	TexturePlayer1    TextureID = "player1"
	TexturePlayer2    TextureID = "player2"
	TexturePlayer3    TextureID = "player3"
	TextureFloor      TextureID = "floor"
	TextureTopPipe    TextureID = "topPipe"
	TextureBottomPipe TextureID = "bottomPipe"
	TexturePipeBody   TextureID = "pipeBody"
)

// AnimationDef lists the textures of a looping animation in play order.
type AnimationDef struct {
	Frames []TextureID
	Speed  float32 // ticks per frame
}

// ActionFly is the key of the bird's flap animation.
const ActionFly = "fly"

// BirdAnimations maps an animation key to its definition. Speeds are filled
// in from Bird.FrameTime when the bird is created.
var BirdAnimations = map[string]AnimationDef{
	ActionFly: {
		Frames: []TextureID{TexturePlayer1, TexturePlayer2, TexturePlayer3, TexturePlayer2},
	},
}
