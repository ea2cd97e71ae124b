package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

type Config struct {
	// World Dimensions (initial window size, the world follows the window afterwards)
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	Population int    `json:"population"`
	Seed       uint64 `json:"seed"` // 0 draws a random seed at every spawn

	// Perception Radii
	Range              float64 `json:"range"`              // How far can they see?
	SeparationDistance float64 `json:"separationDistance"` // Personal space radius

	// Steering weights, all zero disables flocking
	CohesionWeight   float64 `json:"cohesionWeight"`
	SeparationWeight float64 `json:"separationWeight"`
	AlignmentWeight  float64 `json:"alignmentWeight"`

	// Kinematics
	Speed       float64 `json:"speed"` // pixels per second
	Size        float64 `json:"size"`  // sprite size in pixels
	SpawnExtent float64 `json:"spawnExtent"`

	// Frame timing
	TimeScale float64 `json:"timeScale"`

	// Visualization
	DisplayPerceptionRange bool `json:"displayPerceptionRange"`
	DisplaySeparationRange bool `json:"displaySeparationRange"`

	LogLevel string `json:"logLevel"`
}

func DefaultConfig() *Config {
	p := flock.DefaultParameters()
	return &Config{
		WorldWidth:         800,
		WorldHeight:        600,
		Population:         p.Population,
		Range:              p.Range,
		SeparationDistance: p.SeparationDistance,
		CohesionWeight:     p.CohesionWeight,
		SeparationWeight:   p.SeparationWeight,
		AlignmentWeight:    p.AlignmentWeight,
		Speed:              p.Speed,
		Size:               p.Size,
		SpawnExtent:        p.SpawnExtent,
		TimeScale:          1.0,
		LogLevel:           "info",
	}
}

// Parameters maps the configuration onto the flock constants.
func (c *Config) Parameters() flock.Parameters {
	return flock.Parameters{
		Population:         c.Population,
		Range:              c.Range,
		SeparationDistance: c.SeparationDistance,
		CohesionWeight:     c.CohesionWeight,
		SeparationWeight:   c.SeparationWeight,
		AlignmentWeight:    c.AlignmentWeight,
		Speed:              c.Speed,
		Size:               c.Size,
		SpawnExtent:        c.SpawnExtent,
	}
}

// Extent returns the initial world extent.
func (c *Config) Extent() geometry.Extent {
	return geometry.NewExtent(c.WorldWidth, c.WorldHeight)
}

// Validate checks the values a schema cannot express on its own.
func (c *Config) Validate() error {
	if err := c.Extent().Validate(); err != nil {
		return fmt.Errorf("invalid world size: %w", err)
	}
	if err := c.Parameters().Validate(); err != nil {
		return err
	}
	if c.TimeScale < 0 {
		return fmt.Errorf("time scale %.2f must not be negative", c.TimeScale)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
