package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/automoto/flybird/tags"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug flips the collision overlay on the toggle action.
func UpdateDebug(ecs *ecs.ECS) {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		return
	}
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		debug := components.Debug.Get(entry)
		debug.ShowHitboxes = !debug.ShowHitboxes
		log.Debug("debug overlay", "enabled", debug.ShowHitboxes)
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Debug.First(ecs.World)
	if !ok || !components.Debug.Get(entry).ShowHitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := cfg.Cyan
		if obj.HasTags(tags.ResolvPipe) {
			c = color.RGBA{0, 255, 0, 255}
		} else if obj.HasTags(tags.ResolvFloor) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvBird) {
			c = cfg.Red
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	if game := GetGame(ecs); game != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s seed:%d pipes:%d next:%d",
			game.Status, game.Seed, CountPipes(ecs), game.SpawnTimer), 4, cfg.C.Height-16)
	}
}
