// flybird is a one-button scrolling flyer: tap to keep the bird in the air
// and slip it through the gaps between the pipes.
//
// Usage:
//
//	flybird [flags]
//
// Flags:
//
//	--config <path>     - YAML overrides (default: ~/.flybird/config.yaml, then ./configs/flybird.yaml)
//	--seed <value>      - RNG seed for reproducible pipe layouts (0 = time based)
//	--debug             - Start with the collision overlay on and debug logging
//	--scale <n>         - Window scale factor
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/automoto/flybird/config"
	"github.com/automoto/flybird/game"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagSeed     int64
	flagDebug    bool
	flagScale    float64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "flybird",
	Short:         "FlyBird - keep the bird in the air",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show hitboxes and log at debug level")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	if err := setupLogger(); err != nil {
		return err
	}

	path, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagDebug {
		config.Debug.ShowHitboxes = true
	}
	if flagScale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", flagScale)
	}

	g, err := game.NewGame(flagSeed)
	if err != nil {
		return err
	}

	log.Info("starting flybird", "config", path, "seed", flagSeed, "tps", config.C.TPS)

	ebiten.SetWindowTitle("FlyBird")
	ebiten.SetWindowSize(int(float64(config.C.Width)*flagScale), int(float64(config.C.Height)*flagScale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func setupLogger() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	if flagDebug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flybird",
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}
