package config

import (
	"errors"
	"fmt"
	"image/color"
)

// ScreenConfig holds the logical scene size and tick rate
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// PhysicsConfig contains the values used to emulate engine physics bodies.
// Forces are expressed in metres and seconds and converted to pixels per tick.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`          // m/s^2, pulls toward the floor
	PointsPerMeter float64 `yaml:"points_per_meter"` // scene points in one metre
	Density        float64 `yaml:"density"`          // kg per square metre of body
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`   // px/tick, 0 = unbounded
}

// BirdConfig contains player body configuration
type BirdConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FlapImpulse float64 `yaml:"flap_impulse"` // N*s applied upward on tap
	FrameTime   float64 `yaml:"frame_time"`   // seconds per flap frame
}

// FloorConfig contains the ground strip dimensions
type FloorConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PipeConfig contains obstacle generation values
type PipeConfig struct {
	Width          float64 `yaml:"width"`
	GapBirdHeights float64 `yaml:"gap_bird_heights"` // minimum gap in bird heights
	SpawnWait      float64 `yaml:"spawn_wait"`       // mean seconds between pairs
	SpawnRange     float64 `yaml:"spawn_range"`      // total width of the random wait window
	CapHeight      float64 `yaml:"cap_height"`
}

// ScrollConfig controls the per-tick scene movement
type ScrollConfig struct {
	Step float64 `yaml:"step"` // px moved left per tick
}

// LabelConfig contains the on-screen text configuration
type LabelConfig struct {
	StartText       string     `yaml:"start_text"`
	OverText        string     `yaml:"over_text"`
	MetersFormat    string     `yaml:"meters_format"`
	StartHeightPct  float64    `yaml:"start_height_pct"` // fraction of scene height measured from the bottom
	OverSlideTime   float64    `yaml:"over_slide_time"`  // seconds
	StartFontSize   float64    `yaml:"start_font_size"`
	OverFontSize    float64    `yaml:"over_font_size"`
	MetersFontSize  float64    `yaml:"meters_font_size"`
	TextColor       color.RGBA `yaml:"text_color"`
	BackgroundColor color.RGBA `yaml:"background_color"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool `yaml:"show_hitboxes"`
}

// Global configuration instances
var C *ScreenConfig
var Physics PhysicsConfig
var Bird BirdConfig
var Floor FloorConfig
var Pipes PipeConfig
var Scroll ScrollConfig
var Labels LabelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Sky        = color.RGBA{R: 80, G: 192, B: 203, A: 255}
	PipeGreen  = color.RGBA{R: 115, G: 191, B: 46, A: 255}
	PipeDark   = color.RGBA{R: 84, G: 128, B: 36, A: 255}
	PipeLight  = color.RGBA{R: 156, G: 230, B: 89, A: 255}
	Sand       = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	Grass      = color.RGBA{R: 115, G: 191, B: 46, A: 255}
	GrassDark  = color.RGBA{R: 84, G: 128, B: 36, A: 255}
	BirdYellow = color.RGBA{R: 250, G: 200, B: 40, A: 255}
	BirdOrange = color.RGBA{R: 240, G: 120, B: 30, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &ScreenConfig{
		Width:  320,
		Height: 568,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:        9.8,
		PointsPerMeter: 150,
		Density:        1.0,
		MaxFallSpeed:   0,
	}

	Bird = BirdConfig{
		Width:       34,
		Height:      24,
		FlapImpulse: 20,
		FrameTime:   0.15,
	}

	Floor = FloorConfig{
		Width:  336,
		Height: 112,
	}

	Pipes = PipeConfig{
		Width:          60,
		GapBirdHeights: 2.5,
		SpawnWait:      3.5,
		SpawnRange:     1.0,
		CapHeight:      24,
	}

	Scroll = ScrollConfig{
		Step: 1,
	}

	Labels = LabelConfig{
		StartText:       "Tap to start the game",
		OverText:        "Game Over",
		MetersFormat:    "meters:%d",
		StartHeightPct:  0.6,
		OverSlideTime:   0.5,
		StartFontSize:   20,
		OverFontSize:    32,
		MetersFontSize:  32,
		TextColor:       White,
		BackgroundColor: Sky,
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
	}
}

// Seconds converts a duration in seconds to whole ticks at the configured TPS.
func Seconds(s float64) int {
	return int(s*float64(C.TPS) + 0.5)
}

// Validate reports every configuration value the game cannot run with.
func Validate() error {
	var errs []error
	if C.Width <= 0 || C.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", C.Width, C.Height))
	}
	if C.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", C.TPS))
	}
	if Physics.PointsPerMeter <= 0 || Physics.Density <= 0 {
		errs = append(errs, errors.New("points_per_meter and density must be positive"))
	}
	if Physics.MaxFallSpeed < 0 {
		errs = append(errs, fmt.Errorf("max_fall_speed must not be negative, got %v", Physics.MaxFallSpeed))
	}
	if Bird.Width <= 0 || Bird.Height <= 0 {
		errs = append(errs, fmt.Errorf("bird size must be positive, got %vx%v", Bird.Width, Bird.Height))
	}
	if Bird.FrameTime <= 0 {
		errs = append(errs, fmt.Errorf("bird frame_time must be positive, got %v", Bird.FrameTime))
	}
	if Floor.Width <= 0 || Floor.Height < 0 {
		errs = append(errs, fmt.Errorf("floor size is invalid: %vx%v", Floor.Width, Floor.Height))
	}
	if Floor.Height >= float64(C.Height) {
		errs = append(errs, fmt.Errorf("floor height %v leaves no room in a %d high scene", Floor.Height, C.Height))
	}
	if Pipes.Width <= 0 {
		errs = append(errs, fmt.Errorf("pipe width must be positive, got %v", Pipes.Width))
	}
	if Pipes.GapBirdHeights < 0 {
		errs = append(errs, fmt.Errorf("gap_bird_heights must not be negative, got %v", Pipes.GapBirdHeights))
	}
	if Pipes.SpawnRange < 0 || Pipes.SpawnWait-Pipes.SpawnRange/2 <= 0 {
		errs = append(errs, fmt.Errorf("spawn window [%v, %v] must be positive",
			Pipes.SpawnWait-Pipes.SpawnRange/2, Pipes.SpawnWait+Pipes.SpawnRange/2))
	}
	if Scroll.Step < 0 {
		errs = append(errs, fmt.Errorf("scroll step must not be negative, got %v", Scroll.Step))
	}
	return errors.Join(errs...)
}
