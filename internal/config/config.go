package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/fabiodan/bouncy-colors/internal/physics"
)

const (
	DefaultTicks = 600
	DefaultFPS   = 60
	DefaultTheme = "classic"
)

type Config struct {
	Bodies      int     `yaml:"bodies" toml:"bodies" json:"bodies"`
	Width       float64 `yaml:"width" toml:"width" json:"width"`
	Height      float64 `yaml:"height" toml:"height" json:"height"`
	Radius      float64 `yaml:"radius" toml:"radius" json:"radius"`
	Speed       float64 `yaml:"speed" toml:"speed" json:"speed"`
	Tolerance   float64 `yaml:"tolerance" toml:"tolerance" json:"tolerance"`
	MaxAttempts int     `yaml:"max_attempts" toml:"max_attempts" json:"max_attempts"`
	Seed        int64   `yaml:"seed" toml:"seed" json:"seed"`
	Ticks       int     `yaml:"ticks" toml:"ticks" json:"ticks"`
	FPS         int     `yaml:"fps" toml:"fps" json:"fps"`
	Theme       string  `yaml:"theme" toml:"theme" json:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Bodies:      physics.DefaultCount,
		Width:       physics.DefaultWidth,
		Height:      physics.DefaultHeight,
		Radius:      physics.DefaultRadius,
		Speed:       physics.DefaultSpeed,
		Tolerance:   physics.DefaultTolerance,
		MaxAttempts: physics.DefaultMaxAttempts,
		Ticks:       DefaultTicks,
		FPS:         DefaultFPS,
		Theme:       DefaultTheme,
	}
}

// Load reads a YAML or TOML file on top of the defaults. The format is
// picked by extension; anything other than .toml is parsed as YAML.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver is Load with base in place of the defaults. base is not
// modified.
func LoadOver(path string, base *Config) (*Config, error) {
	cfg := *base
	if isTOML(path) {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return err
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Params converts the file-level settings into simulation parameters.
func (c *Config) Params() physics.Params {
	return physics.Params{
		Count:       c.Bodies,
		Arena:       physics.Arena{Width: c.Width, Height: c.Height},
		Radius:      c.Radius,
		Speed:       c.Speed,
		Tolerance:   c.Tolerance,
		MaxAttempts: c.MaxAttempts,
	}
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Ticks < 0 {
		return &physics.ConfigError{Field: "ticks", Value: float64(c.Ticks), Reason: "must not be negative"}
	}
	if c.FPS <= 0 {
		return &physics.ConfigError{Field: "fps", Value: float64(c.FPS), Reason: "must be positive"}
	}
	return nil
}
