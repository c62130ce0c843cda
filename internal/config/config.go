package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/oceanfft/internal/ocean"
)

const (
	DefaultResolution = 256
	DefaultPatchSize  = 150.0
	DefaultWindX      = 60.0
	DefaultWindY      = 30.0
	DefaultChoppiness = 1.5
	DefaultDt         = 0.016
	DefaultTicks      = 600
)

type Config struct {
	Resolution int        `yaml:"resolution"`
	PatchSize  float64    `yaml:"patch_size"`
	Wind       WindConfig `yaml:"wind"`
	Choppiness float64    `yaml:"choppiness"`
	Dt         float64    `yaml:"dt"`
	Ticks      int        `yaml:"ticks"`
	Seed       int64      `yaml:"seed"`
}

type WindConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Resolution: DefaultResolution,
		PatchSize:  DefaultPatchSize,
		Wind:       WindConfig{X: DefaultWindX, Y: DefaultWindY},
		Choppiness: DefaultChoppiness,
		Dt:         DefaultDt,
		Ticks:      DefaultTicks,
		Seed:       1,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Resolution < 2 || c.Resolution&(c.Resolution-1) != 0 {
		return fmt.Errorf("resolution %d is not a power of two", c.Resolution)
	}
	if c.PatchSize <= 0 {
		return fmt.Errorf("patch size %g must be positive", c.PatchSize)
	}
	if c.Dt < 0 {
		return fmt.Errorf("dt %g must not be negative", c.Dt)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("ticks %d must not be negative", c.Ticks)
	}
	return nil
}

func (c *Config) ToOcean() ocean.Config {
	return ocean.Config{
		Resolution: c.Resolution,
		PatchSize:  c.PatchSize,
		WindX:      c.Wind.X,
		WindY:      c.Wind.Y,
		Choppiness: c.Choppiness,
		Seed:       c.Seed,
	}
}
