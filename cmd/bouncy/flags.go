package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fabiodan/bouncy-colors/internal/config"
)

var (
	dataDir     string
	configFile  string
	preset      string
	seed        int64
	numBodies   int
	width       float64
	height      float64
	radius      float64
	speed       float64
	tolerance   float64
	maxAttempts int
	ticks       int
	frameRate   int
	theme       string
)

// addSimFlags registers the flags shared by every command that builds a
// simulation.
func addSimFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().IntVar(&numBodies, "bodies", d.Bodies, "number of bodies")
	cmd.Flags().Float64Var(&width, "width", d.Width, "arena width")
	cmd.Flags().Float64Var(&height, "height", d.Height, "arena height")
	cmd.Flags().Float64Var(&radius, "radius", d.Radius, "body radius")
	cmd.Flags().Float64Var(&speed, "speed", d.Speed, "initial speed of every body")
	cmd.Flags().Float64Var(&tolerance, "tolerance", d.Tolerance, "click hit tolerance")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", d.MaxAttempts, "placement attempts per body")
	cmd.Flags().IntVar(&ticks, "ticks", d.Ticks, "ticks to simulate")
	cmd.Flags().IntVar(&frameRate, "fps", d.FPS, "frame rate")
	cmd.Flags().StringVar(&theme, "theme", d.Theme, "colour theme")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order. A zero seed is replaced by the current time.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("bodies") {
		cfg.Bodies = numBodies
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("radius") {
		cfg.Radius = radius
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance = tolerance
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = maxAttempts
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
