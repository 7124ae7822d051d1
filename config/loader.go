package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a configuration override. Missing sections
// keep their current values.
type File struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Physics PhysicsConfig `yaml:"physics"`
	Bird    BirdConfig    `yaml:"bird"`
	Floor   FloorConfig   `yaml:"floor"`
	Pipes   PipeConfig    `yaml:"pipes"`
	Scroll  ScrollConfig  `yaml:"scroll"`
	Labels  LabelConfig   `yaml:"labels"`
	Debug   DebugConfig   `yaml:"debug"`
}

// Current snapshots the active globals.
func Current() File {
	return File{
		Screen:  *C,
		Physics: Physics,
		Bird:    Bird,
		Floor:   Floor,
		Pipes:   Pipes,
		Scroll:  Scroll,
		Labels:  Labels,
		Debug:   Debug,
	}
}

// Apply replaces the active globals with f.
func Apply(f File) {
	screen := f.Screen
	C = &screen
	Physics = f.Physics
	Bird = f.Bird
	Floor = f.Floor
	Pipes = f.Pipes
	Scroll = f.Scroll
	Labels = f.Labels
	Debug = f.Debug
}

// Parse overlays the YAML document in data on top of the active globals,
// validates the result and applies it. On error the globals are unchanged.
func Parse(data []byte) error {
	prev := Current()
	next := prev
	if err := yaml.Unmarshal(data, &next); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	Apply(next)
	if err := Validate(); err != nil {
		Apply(prev)
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load applies the first configuration file found and returns its path, or
// "" when the built-in defaults are used.
// Search order: customPath -> ~/.flybird/config.yaml -> ./configs/flybird.yaml
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Parse(data); err != nil {
			return "", fmt.Errorf("%s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "flybird.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Warn("could not read config", "path", path, "error", err)
			}
			continue
		}
		if err := Parse(data); err != nil {
			log.Warn("ignoring config", "path", path, "error", err)
			continue
		}
		return path, nil
	}

	return "", nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flybird", filename)
}
