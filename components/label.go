package components

import (
	"github.com/automoto/flybird/fonts"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type LabelKind int

const (
	LabelStart LabelKind = iota
	LabelGameOver
	LabelMeters
)

// LabelData is a line of text centred horizontally on X. Y is the top of
// the text box when Top is set and its baseline otherwise.
type LabelData struct {
	Kind    LabelKind
	Text    string
	Font    fonts.FontName
	X, Y    float64
	Top     bool
	Visible bool

	// Slide moves the label down from SlideFrom; nil when at rest.
	Slide     *gween.Tween
	SlideFrom float64
}

var Label = donburi.NewComponentType[LabelData]()
