package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitlab/internal/orbit"
)

const (
	DefaultWidth     = 800.0
	DefaultHeight    = 600.0
	DefaultTimeScale = 1.0
	DefaultFrameRate = 60
)

type Config struct {
	G            float64 `yaml:"g"`
	BaseTimeStep float64 `yaml:"base_time_step"`
	TailLength   int     `yaml:"tail_length"`
	TimeScale    float64 `yaml:"time_scale"`

	Viewport ViewportConfig `yaml:"viewport"`
	Anchor   AnchorConfig   `yaml:"anchor"`
	Spawn    SpawnConfig    `yaml:"spawn"`

	// Satellites pre-spawned at startup, each orbit-seeded against the
	// anchor like an interactive click.
	Satellites []SatelliteConfig `yaml:"satellites,omitempty"`

	Seed      int64 `yaml:"seed"`
	FrameRate int   `yaml:"frame_rate"`
}

type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AnchorConfig struct {
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
}

type SpawnConfig struct {
	MinMass      float64 `yaml:"min_mass"`
	MaxMass      float64 `yaml:"max_mass"`
	MinRadius    float64 `yaml:"min_radius"`
	MaxRadius    float64 `yaml:"max_radius"`
	OrbitFactor  float64 `yaml:"orbit_factor"`
	MinTimeScale float64 `yaml:"min_time_scale"`
	MaxTimeScale float64 `yaml:"max_time_scale"`
}

// SatelliteConfig places a startup satellite by polar offset from the
// anchor: distance in simulation units, angle in degrees.
type SatelliteConfig struct {
	Distance float64 `yaml:"distance"`
	Angle    float64 `yaml:"angle"`
}

func DefaultConfig() *Config {
	return &Config{
		G:            orbit.DefaultG,
		BaseTimeStep: orbit.DefaultBaseTimeStep,
		TailLength:   orbit.DefaultTailLength,
		TimeScale:    DefaultTimeScale,
		Viewport: ViewportConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Anchor: AnchorConfig{
			Mass:   orbit.DefaultAnchorMass,
			Radius: orbit.DefaultAnchorRadius,
		},
		Spawn: SpawnConfig{
			MinMass:      orbit.DefaultMinMass,
			MaxMass:      orbit.DefaultMaxMass,
			MinRadius:    orbit.DefaultMinRadius,
			MaxRadius:    orbit.DefaultMaxRadius,
			OrbitFactor:  orbit.DefaultOrbitFactor,
			MinTimeScale: orbit.DefaultMinTimeScale,
			MaxTimeScale: orbit.DefaultMaxTimeScale,
		},
		FrameRate: DefaultFrameRate,
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
	if err := cfg.Validate(); err != nil {
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

// Validate rejects constants the engine cannot run with. Time-scale and
// viewport sanity is the caller's concern beyond these basics.
func (c *Config) Validate() error {
	if c.G <= 0 {
		return fmt.Errorf("g must be positive, got %f", c.G)
	}
	if c.BaseTimeStep <= 0 {
		return fmt.Errorf("base_time_step must be positive, got %f", c.BaseTimeStep)
	}
	if c.TailLength <= 0 {
		return fmt.Errorf("tail_length must be positive, got %d", c.TailLength)
	}
	if c.Anchor.Mass <= 0 || c.Anchor.Radius <= 0 {
		return fmt.Errorf("anchor mass and radius must be positive")
	}
	if c.Spawn.MinMass <= 0 || c.Spawn.MaxMass < c.Spawn.MinMass {
		return fmt.Errorf("spawn mass range [%f,%f) is invalid", c.Spawn.MinMass, c.Spawn.MaxMass)
	}
	if c.Spawn.MinRadius <= 0 || c.Spawn.MaxRadius < c.Spawn.MinRadius {
		return fmt.Errorf("spawn radius range [%f,%f) is invalid", c.Spawn.MinRadius, c.Spawn.MaxRadius)
	}
	if c.Spawn.MinTimeScale <= 0 || c.Spawn.MaxTimeScale < c.Spawn.MinTimeScale {
		return fmt.Errorf("time scale bounds [%f,%f] are invalid", c.Spawn.MinTimeScale, c.Spawn.MaxTimeScale)
	}
	return nil
}

// Engine builds an orbit.Engine carrying this configuration's constants,
// seeded with cfg.Seed (or the supplied fallback when Seed is zero).
func (c *Config) Engine(fallbackSeed int64) *orbit.Engine {
	seed := c.Seed
	if seed == 0 {
		seed = fallbackSeed
	}
	e := orbit.NewEngine(seed)
	e.G = c.G
	e.BaseTimeStep = c.BaseTimeStep
	e.TailLength = c.TailLength
	e.AnchorMass = c.Anchor.Mass
	e.AnchorRadius = c.Anchor.Radius
	e.MinMass = c.Spawn.MinMass
	e.MaxMass = c.Spawn.MaxMass
	e.MinRadius = c.Spawn.MinRadius
	e.MaxRadius = c.Spawn.MaxRadius
	e.OrbitFactor = c.Spawn.OrbitFactor
	e.MinTimeScale = c.Spawn.MinTimeScale
	e.MaxTimeScale = c.Spawn.MaxTimeScale
	return e
}

// InitialState builds the configured starting state: anchor centered in
// the viewport, then each configured satellite spawned through the
// engine's own seeding path.
func (c *Config) InitialState(e *orbit.Engine) orbit.State {
	s := e.Initialize(c.Viewport.Width, c.Viewport.Height)
	center := s.Bodies[0].Pos
	for _, sat := range c.Satellites {
		p := center.Add(orbit.FromAngle(sat.Angle*math.Pi/180, sat.Distance))
		s = e.SpawnAt(s, p.X, p.Y)
	}
	return s
}
