package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionTap
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents every way a single action can be triggered
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
	Touch                  bool // any active touch counts
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionTap: {
				Keys:         []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
				Touch: true,
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
