package factory

import (
	"fmt"

	"github.com/automoto/flybird/archetypes"
	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/automoto/flybird/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLabel(ecs *ecs.ECS, data components.LabelData) *donburi.Entry {
	label := archetypes.Label.Spawn(ecs)
	components.Label.SetValue(label, data)
	return label
}

func CreateLabels(ecs *ecs.ECS) {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	CreateLabel(ecs, components.LabelData{
		Kind: components.LabelStart,
		Text: cfg.Labels.StartText,
		Font: fonts.Regular,
		X:    w * 0.5,
		Y:    h * (1 - cfg.Labels.StartHeightPct),
	})
	CreateLabel(ecs, components.LabelData{
		Kind: components.LabelGameOver,
		Text: cfg.Labels.OverText,
		Font: fonts.Title,
		X:    w * 0.5,
	})
	CreateLabel(ecs, components.LabelData{
		Kind:    components.LabelMeters,
		Text:    fmt.Sprintf(cfg.Labels.MetersFormat, 0),
		Font:    fonts.Meters,
		X:       w * 0.5,
		Top:     true,
		Visible: true,
	})
}
