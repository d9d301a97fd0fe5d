package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Generator names accepted in Config.Generator.
const (
	GeneratorFlat  = "flat"
	GeneratorNoise = "noise"
)

// Config is the fixed configuration record injected at startup.
type Config struct {
	ChunkSize      int `yaml:"chunk_size"`
	RenderDistance int `yaml:"render_distance"` // in chunks
	SearchRadius   int `yaml:"search_radius"`   // chunks scanned by targeting

	CapsuleRadius float32 `yaml:"capsule_radius"`
	CapsuleHeight float32 `yaml:"capsule_height"`
	EyeHeight     float32 `yaml:"eye_height"`

	BaseSpeed        float32 `yaml:"base_speed"`
	SprintMultiplier float32 `yaml:"sprint_multiplier"`
	Gravity          float32 `yaml:"gravity"`
	JumpSpeed        float32 `yaml:"jump_speed"`
	FloorHeight      float32 `yaml:"floor_height"` // hard floor against falling through ungenerated space
	Reach            float32 `yaml:"reach"`

	TickRate  int    `yaml:"tick_rate"` // ticks per second
	Generator string `yaml:"generator"`
	Seed      int64  `yaml:"seed"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		ChunkSize:        16,
		RenderDistance:   2,
		SearchRadius:     1,
		CapsuleRadius:    0.35,
		CapsuleHeight:    1.8,
		EyeHeight:        1.6,
		BaseSpeed:        5,
		SprintMultiplier: 1.8,
		Gravity:          30,
		JumpSpeed:        9,
		FloorHeight:      -10,
		Reach:            8,
		TickRate:         60,
		Generator:        GeneratorFlat,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return Parse(b)
}

// Parse decodes YAML over the defaults, then normalizes and validates.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config.yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config.yaml: %w", err)
	}
	return cfg, nil
}

// Normalize fills derived fields and canonicalizes names.
func (c *Config) Normalize() {
	c.Generator = strings.ToLower(strings.TrimSpace(c.Generator))
	if c.Generator == "" {
		c.Generator = GeneratorFlat
	}
	if c.EyeHeight <= 0 || c.EyeHeight > c.CapsuleHeight {
		c.EyeHeight = c.CapsuleHeight * 0.9
	}
	if c.TickRate <= 0 {
		c.TickRate = 60
	}
}

// Validate checks the invariants of the configuration record.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return errors.Errorf("chunk_size must be > 0, got %d", c.ChunkSize)
	}
	if c.RenderDistance < 0 {
		return errors.Errorf("render_distance must be >= 0, got %d", c.RenderDistance)
	}
	if c.SearchRadius < 0 {
		return errors.Errorf("search_radius must be >= 0, got %d", c.SearchRadius)
	}
	if c.CapsuleRadius <= 0 {
		return errors.Errorf("capsule_radius must be > 0, got %g", c.CapsuleRadius)
	}
	if c.CapsuleHeight <= c.CapsuleRadius {
		return errors.Errorf("capsule_height (%g) must exceed capsule_radius (%g)", c.CapsuleHeight, c.CapsuleRadius)
	}
	if c.BaseSpeed < 0 || c.SprintMultiplier <= 0 {
		return errors.Errorf("base_speed must be >= 0 and sprint_multiplier > 0, got %g/%g", c.BaseSpeed, c.SprintMultiplier)
	}
	if c.Gravity < 0 || c.JumpSpeed < 0 {
		return errors.Errorf("gravity and jump_speed must be >= 0, got %g/%g", c.Gravity, c.JumpSpeed)
	}
	if c.Reach <= 0 {
		return errors.Errorf("reach must be > 0, got %g", c.Reach)
	}
	switch c.Generator {
	case GeneratorFlat, GeneratorNoise:
	default:
		return errors.Wrapf(errUnknownGenerator, "generator %q", c.Generator)
	}
	return nil
}

var errUnknownGenerator = errors.New("unknown generator")

// IsUnknownGenerator reports whether err was caused by an unsupported generator name.
func IsUnknownGenerator(err error) bool {
	return errors.Is(err, errUnknownGenerator)
}
