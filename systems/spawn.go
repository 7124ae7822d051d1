package systems

import (
	"math/rand"

	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/automoto/flybird/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// PipeLayout describes one obstacle pair. Heights are in pixels and add up
// to the playable height above the floor.
type PipeLayout struct {
	Gap    float64
	Top    float64
	Bottom float64
}

// RandomPipeLayout picks a gap of at least GapBirdHeights bird heights plus
// up to one more bird height, then splits the remaining height at random.
func RandomPipeLayout(rng *rand.Rand) PipeLayout {
	height := float64(cfg.C.Height) - cfg.Floor.Height
	birdH := cfg.Bird.Height

	gap := cfg.Pipes.GapBirdHeights * birdH
	if n := int(birdH); n > 0 {
		gap += float64(rng.Intn(n))
	}
	gap = clamp(gap, 0, height)

	top := 0.0
	if n := int(height - gap); n > 0 {
		top = float64(rng.Intn(n))
	}

	bottom := height - gap - top
	if bottom < 0 {
		bottom = 0
	}

	return PipeLayout{Gap: gap, Top: top, Bottom: bottom}
}

// CreateRandomPipes spawns one obstacle pair at the right edge of the view.
func CreateRandomPipes(ecs *ecs.ECS) PipeLayout {
	game := GetGame(ecs)
	if game == nil {
		return PipeLayout{}
	}

	layout := RandomPipeLayout(game.Rng)
	factory.CreatePipePair(ecs, cfg.Pipes.Width, layout.Top, layout.Bottom)
	game.PipesSpawned++

	log.Debug("pipes spawned", "gap", layout.Gap, "top", layout.Top, "bottom", layout.Bottom)
	return layout
}

// UpdateSpawner runs the repeating wait-then-spawn timer while it is active.
func UpdateSpawner(ecs *ecs.ECS) {
	game := GetGame(ecs)
	if game == nil || !game.Spawning {
		return
	}

	game.SpawnTimer--
	if game.SpawnTimer > 0 {
		return
	}

	CreateRandomPipes(ecs)
	game.SpawnTimer = nextSpawnWait(game.Rng)
}

// nextSpawnWait returns a wait in ticks drawn uniformly from the spawn window.
func nextSpawnWait(rng *rand.Rand) int {
	lo := cfg.Pipes.SpawnWait - cfg.Pipes.SpawnRange/2
	ticks := cfg.Seconds(lo + rng.Float64()*cfg.Pipes.SpawnRange)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

func startSpawner(game *components.GameData) {
	game.Spawning = true
	game.SpawnTimer = nextSpawnWait(game.Rng)
}

func stopSpawner(game *components.GameData) {
	game.Spawning = false
	game.SpawnTimer = 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
