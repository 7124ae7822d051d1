package systems

import (
	"math"
	"testing"

	"github.com/automoto/flybird/components"
	cfg "github.com/automoto/flybird/config"
	"github.com/automoto/flybird/systems/factory"
	"github.com/automoto/flybird/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestWorld(t *testing.T, seed int64) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateWorld(e, seed)
	Shuffle(e)
	return e
}

// step runs one tick of the update systems with the given actions held.
func step(e *ecs.ECS, held ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		input.Current[a] = true
	}

	UpdateDebug(e)
	UpdateGame(e)
	UpdateSpawner(e)
	UpdateObjects(e)
	UpdatePhysics(e)
	UpdateCollisions(e)
	UpdateEffects(e)
}

// tap releases then presses the tap action so it registers as a new press.
func tap(e *ecs.ECS) {
	step(e)
	step(e, cfg.ActionTap)
}

func birdOf(t *testing.T, e *ecs.ECS) (*components.ObjectData, *components.PhysicsData) {
	t.Helper()
	bird, ok := tags.Bird.First(e.World)
	if !ok {
		t.Fatal("no bird in world")
	}
	return components.Object.Get(bird), components.Physics.Get(bird)
}

func labelOf(t *testing.T, e *ecs.ECS, kind components.LabelKind) *components.LabelData {
	t.Helper()
	var found *components.LabelData
	eachLabel(e, func(l *components.LabelData) {
		if l.Kind == kind {
			found = l
		}
	})
	if found == nil {
		t.Fatalf("no label of kind %d", kind)
	}
	return found
}

func TestShuffleEntersIdle(t *testing.T) {
	e := newTestWorld(t, 1)
	game := GetGame(e)

	if game.Status != cfg.StatusIdle {
		t.Fatalf("status = %s, want idle", game.Status)
	}
	if game.Meters != 0 {
		t.Errorf("meters = %d, want 0", game.Meters)
	}
	if !labelOf(t, e, components.LabelStart).Visible {
		t.Error("start label should be visible")
	}
	if labelOf(t, e, components.LabelGameOver).Visible {
		t.Error("game-over label should be hidden")
	}

	obj, physics := birdOf(t, e)
	wantX, wantY := factory.BirdStart()
	if obj.X != wantX || obj.Y != wantY {
		t.Errorf("bird at (%v, %v), want (%v, %v)", obj.X, obj.Y, wantX, wantY)
	}
	if physics.Dynamic {
		t.Error("bird body should be static while idle")
	}

	bird, _ := tags.Bird.First(e.World)
	anim := components.Animation.Get(bird)
	if anim.CurrentKey != cfg.ActionFly || anim.CurrentAnimation == nil || !anim.CurrentAnimation.Playing {
		t.Errorf("flap animation not playing: key=%q", anim.CurrentKey)
	}
}

func TestIdleBirdDoesNotFall(t *testing.T) {
	e := newTestWorld(t, 1)
	obj, _ := birdOf(t, e)
	y := obj.Y

	for i := 0; i < 120; i++ {
		step(e)
	}

	if obj.Y != y {
		t.Errorf("idle bird moved from %v to %v", y, obj.Y)
	}
	if GetGame(e).Meters != 0 {
		t.Errorf("meters counted while idle: %d", GetGame(e).Meters)
	}
}

func TestTapStartsGame(t *testing.T) {
	e := newTestWorld(t, 1)
	tap(e)
	game := GetGame(e)

	if game.Status != cfg.StatusRunning {
		t.Fatalf("status = %s, want running", game.Status)
	}
	if labelOf(t, e, components.LabelStart).Visible {
		t.Error("start label should be hidden once running")
	}
	if _, physics := birdOf(t, e); !physics.Dynamic {
		t.Error("bird body should be dynamic once running")
	}
	if !game.Spawning {
		t.Fatal("spawn timer not started")
	}
	// one tick of the wait has already elapsed
	lo, hi := cfg.Seconds(3.0)-1, cfg.Seconds(4.0)-1
	if game.SpawnTimer < lo || game.SpawnTimer > hi {
		t.Errorf("spawn timer = %d, want within [%d, %d]", game.SpawnTimer, lo, hi)
	}
	if game.Meters != 1 {
		t.Errorf("meters = %d, want 1 after the starting tick", game.Meters)
	}
}

func TestHeldTapOnlyCountsOnce(t *testing.T) {
	e := newTestWorld(t, 1)
	tap(e)
	_, physics := birdOf(t, e)

	step(e, cfg.ActionTap)
	if physics.SpeedY < 0 {
		t.Errorf("holding tap applied another impulse: speed %v", physics.SpeedY)
	}
}

func TestTapWhileRunningAppliesImpulse(t *testing.T) {
	e := newTestWorld(t, 1)
	StartGame(e)
	_, physics := birdOf(t, e)
	physics.SpeedY = 0

	HandleTap(e)

	mass := cfg.Bird.Width * cfg.Bird.Height / (cfg.Physics.PointsPerMeter * cfg.Physics.PointsPerMeter)
	want := -cfg.Bird.FlapImpulse / mass / float64(cfg.C.TPS)
	if math.Abs(physics.SpeedY-want) > 1e-9 {
		t.Errorf("speed after impulse = %v, want %v", physics.SpeedY, want)
	}
	if GetGame(e).Status != cfg.StatusRunning {
		t.Errorf("status = %s, want running", GetGame(e).Status)
	}
}

func TestMetersCountWhileRunning(t *testing.T) {
	e := newTestWorld(t, 1)
	tap(e)
	for i := 0; i < 9; i++ {
		step(e)
	}

	game := GetGame(e)
	if game.Meters != 10 {
		t.Fatalf("meters = %d, want 10", game.Meters)
	}
	if got := labelOf(t, e, components.LabelMeters).Text; got != "meters:10" {
		t.Errorf("meters label = %q, want meters:10", got)
	}
}

func TestContactEndsRunningGame(t *testing.T) {
	e := newTestWorld(t, 1)
	StartGame(e)

	HandleContact(e, cfg.CategoryPipe)
	game := GetGame(e)

	if game.Status != cfg.StatusOver {
		t.Fatalf("status = %s, want over", game.Status)
	}
	if !game.InteractionLocked {
		t.Error("input should be locked during the game-over slide")
	}
	if game.Spawning {
		t.Error("spawn timer should stop on game over")
	}

	over := labelOf(t, e, components.LabelGameOver)
	if !over.Visible || over.Slide == nil || over.Y != 0 {
		t.Errorf("game-over label not sliding from the top edge: %+v", over)
	}

	bird, _ := tags.Bird.First(e.World)
	if components.Animation.Get(bird).CurrentAnimation.Playing {
		t.Error("flap animation should stop on game over")
	}
}

func TestContactIgnoredUnlessRunning(t *testing.T) {
	e := newTestWorld(t, 1)
	game := GetGame(e)

	HandleContact(e, cfg.CategoryFloor)
	if game.Status != cfg.StatusIdle {
		t.Fatalf("contact while idle changed status to %s", game.Status)
	}

	StartGame(e)
	HandleContact(e, cfg.CategoryEdge)
	if game.Status != cfg.StatusRunning {
		t.Fatalf("edge contact changed status to %s", game.Status)
	}

	HandleContact(e, cfg.CategoryFloor)
	metersAtOver := game.Meters
	HandleContact(e, cfg.CategoryPipe)
	if game.Status != cfg.StatusOver || game.Meters != metersAtOver {
		t.Errorf("second contact while over was not ignored: status %s", game.Status)
	}
}

func TestBirdFallsOntoFloor(t *testing.T) {
	e := newTestWorld(t, 1)
	tap(e)

	game := GetGame(e)
	for i := 0; i < 300 && game.Status == cfg.StatusRunning; i++ {
		step(e)
	}
	if game.Status != cfg.StatusOver {
		t.Fatalf("status = %s, want over after falling", game.Status)
	}
	if CountPipes(e) != 0 {
		t.Fatalf("bird should reach the floor before the first pipe, got %d pipes", CountPipes(e))
	}

	obj, physics := birdOf(t, e)
	floorTop := float64(cfg.C.Height) - cfg.Floor.Height
	if math.Abs(obj.Y+obj.H-floorTop) > 1e-6 {
		t.Errorf("bird bottom = %v, want resting on floor at %v", obj.Y+obj.H, floorTop)
	}
	if physics.Touching&cfg.CategoryFloor == 0 {
		t.Error("floor contact not recorded")
	}

	// the scene freezes once the game is over
	meters := game.Meters
	floor, _ := tags.Floor.First(e.World)
	floorX := components.Object.Get(floor).X
	for i := 0; i < 10; i++ {
		step(e)
	}
	if game.Meters != meters {
		t.Errorf("meters kept counting after game over: %d -> %d", meters, game.Meters)
	}
	if components.Object.Get(floor).X != floorX {
		t.Error("floor kept scrolling after game over")
	}
}

func TestPipeContactEndsGame(t *testing.T) {
	e := newTestWorld(t, 1)
	StartGame(e)
	obj, _ := birdOf(t, e)

	// a pipe one step away from the bird's right edge, covering it vertically
	factory.CreatePipe(e, obj.Right()+0.5, obj.Y-100, cfg.Pipes.Width, 300, true)
	step(e)

	if GetGame(e).Status != cfg.StatusOver {
		t.Fatalf("status = %s, want over after hitting a pipe", GetGame(e).Status)
	}
	if _, physics := birdOf(t, e); physics.Touching&cfg.CategoryPipe == 0 {
		t.Error("pipe contact not recorded")
	}
}

func TestTopEdgeStopsBirdWithoutEndingGame(t *testing.T) {
	e := newTestWorld(t, 1)
	StartGame(e)
	obj, physics := birdOf(t, e)
	obj.Y = 2
	obj.Update()
	physics.SpeedY = -10

	step(e)

	if obj.Y != 0 {
		t.Errorf("bird y = %v, want clamped to 0", obj.Y)
	}
	if physics.SpeedY < 0 {
		t.Errorf("upward speed not cleared at the edge: %v", physics.SpeedY)
	}
	if GetGame(e).Status != cfg.StatusRunning {
		t.Errorf("edge ended the game: %s", GetGame(e).Status)
	}
}

func TestGameOverLocksInputUntilSlideEnds(t *testing.T) {
	e := newTestWorld(t, 1)
	StartGame(e)
	factory.CreatePipePair(e, cfg.Pipes.Width, 100, 100)
	GameOver(e)
	game := GetGame(e)

	tap(e)
	if game.Status != cfg.StatusOver {
		t.Fatalf("tap during the slide restarted the game: %s", game.Status)
	}

	over := labelOf(t, e, components.LabelGameOver)
	for i := 0; i < cfg.Seconds(cfg.Labels.OverSlideTime)+2 && game.InteractionLocked; i++ {
		step(e)
	}
	if game.InteractionLocked {
		t.Fatal("input still locked after the slide")
	}
	if want := float64(cfg.C.Height) * 0.5; math.Abs(over.Y-want) > 1e-3 {
		t.Errorf("game-over label y = %v, want %v", over.Y, want)
	}

	tap(e)
	if game.Status != cfg.StatusIdle {
		t.Fatalf("status = %s, want idle after tapping on game over", game.Status)
	}
	if CountPipes(e) != 0 {
		t.Errorf("pipes left after shuffle: %d", CountPipes(e))
	}
	if over.Visible {
		t.Error("game-over label still visible after shuffle")
	}
	obj, physics := birdOf(t, e)
	if x, y := factory.BirdStart(); obj.X != x || obj.Y != y || physics.Dynamic {
		t.Errorf("bird not reset: (%v, %v) dynamic=%v", obj.X, obj.Y, physics.Dynamic)
	}
}

func TestDebugToggle(t *testing.T) {
	e := newTestWorld(t, 1)
	entry, _ := components.Debug.First(e.World)
	debug := components.Debug.Get(entry)

	step(e, cfg.ActionToggleDebug)
	if !debug.ShowHitboxes {
		t.Fatal("overlay not enabled")
	}
	step(e, cfg.ActionToggleDebug)
	if !debug.ShowHitboxes {
		t.Fatal("holding the key toggled the overlay again")
	}
	step(e)
	step(e, cfg.ActionToggleDebug)
	if debug.ShowHitboxes {
		t.Fatal("overlay not disabled")
	}
}

func TestSeededDeterminism(t *testing.T) {
	run := func() (int, int, float64, cfg.GameStatus) {
		e := newTestWorld(t, 42)
		for i := 0; i < 1500; i++ {
			if i%18 == 0 {
				step(e, cfg.ActionTap)
			} else {
				step(e)
			}
		}
		game := GetGame(e)
		obj, _ := birdOf(t, e)
		return game.Meters, game.PipesSpawned, obj.Y, game.Status
	}

	m1, p1, y1, s1 := run()
	m2, p2, y2, s2 := run()
	if m1 != m2 || p1 != p2 || y1 != y2 || s1 != s2 {
		t.Errorf("runs differ: (%d, %d, %v, %s) vs (%d, %d, %v, %s)", m1, p1, y1, s1, m2, p2, y2, s2)
	}
}
