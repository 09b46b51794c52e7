// Package config holds the tunable game rules and their YAML overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/kebab-arena/parameter"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

type Arena struct {
	Radius      float64 `yaml:"radius"`
	GrillX      float64 `yaml:"grill_x"`
	GrillZ      float64 `yaml:"grill_z"`
	GrillRadius float64 `yaml:"grill_radius"`
	GrillMargin float64 `yaml:"grill_margin"`
}

type Player struct {
	StartX  float64 `yaml:"start_x"`
	StartZ  float64 `yaml:"start_z"`
	Speed   float64 `yaml:"speed"`
	Turbo   float64 `yaml:"turbo"`
	Damping float64 `yaml:"damping"`
}

type Ingredients struct {
	Count        int      `yaml:"count"`
	SpawnInner   float64  `yaml:"spawn_inner"`
	SpawnOuter   float64  `yaml:"spawn_outer"`
	PickupRadius float64  `yaml:"pickup_radius"`
	SpinRate     float64  `yaml:"spin_rate"`
	Colors       []string `yaml:"colors"`
}

type Round struct {
	Duration       int `yaml:"duration"`
	MaxCarry       int `yaml:"max_carry"`
	PickupPoints   int `yaml:"pickup_points"`
	DeliveryPoints int `yaml:"delivery_points"`
}

type Frame struct {
	MaxDelta float64 `yaml:"max_delta"`
}

type Camera struct {
	Height      float64 `yaml:"height"`
	Distance    float64 `yaml:"distance"`
	Pitch       float64 `yaml:"pitch"`
	FocalFactor float64 `yaml:"focal_factor"`
	NearPlane   float64 `yaml:"near_plane"`
	Smoothing   float64 `yaml:"smoothing"`
}

type Terminal struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	HoldInitial   time.Duration `yaml:"hold_initial"`
	HoldRepeat    time.Duration `yaml:"hold_repeat"`
}

// Config is the complete set of rules for a session
type Config struct {
	Arena       Arena       `yaml:"arena"`
	Player      Player      `yaml:"player"`
	Ingredients Ingredients `yaml:"ingredients"`
	Round       Round       `yaml:"round"`
	Frame       Frame       `yaml:"frame"`
	Camera      Camera      `yaml:"camera"`
	Terminal    Terminal    `yaml:"terminal"`

	// Bindings overrides action -> key names, an empty list unbinds the action
	Bindings map[string][]string `yaml:"bindings"`
}

// Default returns the stock rules
func Default() *Config {
	return &Config{
		Arena: Arena{
			Radius:      parameter.ArenaRadius,
			GrillX:      parameter.GrillX,
			GrillZ:      parameter.GrillZ,
			GrillRadius: parameter.GrillRadius,
			GrillMargin: parameter.GrillMargin,
		},
		Player: Player{
			StartX:  parameter.PlayerStartX,
			StartZ:  parameter.PlayerStartZ,
			Speed:   parameter.PlayerSpeed,
			Turbo:   parameter.PlayerTurbo,
			Damping: parameter.PlayerDamping,
		},
		Ingredients: Ingredients{
			Count:        parameter.IngredientCount,
			SpawnInner:   parameter.IngredientSpawnInner,
			SpawnOuter:   parameter.IngredientSpawnOuter,
			PickupRadius: parameter.IngredientPickupRadius,
			SpinRate:     parameter.IngredientSpinRate,
			Colors:       append([]string(nil), parameter.IngredientColors...),
		},
		Round: Round{
			Duration:       parameter.RoundDuration,
			MaxCarry:       parameter.MaxCarry,
			PickupPoints:   parameter.PickupPoints,
			DeliveryPoints: parameter.DeliveryPointsPerItem,
		},
		Frame: Frame{
			MaxDelta: parameter.MaxFrameDelta,
		},
		Camera: Camera{
			Height:      parameter.CameraHeight,
			Distance:    parameter.CameraDistance,
			Pitch:       parameter.CameraPitch,
			FocalFactor: parameter.CameraFocalFactor,
			NearPlane:   parameter.CameraNearPlane,
			Smoothing:   parameter.CameraSmoothing,
		},
		Terminal: Terminal{
			FrameInterval: parameter.TerminalFrameInterval,
			HoldInitial:   parameter.KeyHoldInitial,
			HoldRepeat:    parameter.KeyHoldRepeat,
		},
	}
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a YAML file, empty path returns defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the rules can produce a playable round
func (c *Config) Validate() error {
	switch {
	case c.Arena.Radius <= 0:
		return fmt.Errorf("%w: arena radius must be positive, got %v", ErrInvalidConfig, c.Arena.Radius)
	case c.Arena.GrillRadius <= 0:
		return fmt.Errorf("%w: grill radius must be positive, got %v", ErrInvalidConfig, c.Arena.GrillRadius)
	case c.Ingredients.Count < 0:
		return fmt.Errorf("%w: ingredient count must not be negative, got %d", ErrInvalidConfig, c.Ingredients.Count)
	case c.Ingredients.SpawnInner < 0 || c.Ingredients.SpawnInner >= c.Ingredients.SpawnOuter:
		return fmt.Errorf("%w: spawn ring [%v, %v) is empty", ErrInvalidConfig, c.Ingredients.SpawnInner, c.Ingredients.SpawnOuter)
	case c.Ingredients.SpawnOuter > c.Arena.Radius:
		return fmt.Errorf("%w: spawn ring outer %v exceeds arena radius %v", ErrInvalidConfig, c.Ingredients.SpawnOuter, c.Arena.Radius)
	case c.Ingredients.PickupRadius <= 0:
		return fmt.Errorf("%w: pickup radius must be positive, got %v", ErrInvalidConfig, c.Ingredients.PickupRadius)
	case len(c.Ingredients.Colors) == 0:
		return fmt.Errorf("%w: at least one ingredient color required", ErrInvalidConfig)
	case c.Round.Duration <= 0:
		return fmt.Errorf("%w: round duration must be positive, got %d", ErrInvalidConfig, c.Round.Duration)
	case c.Round.MaxCarry < 1:
		return fmt.Errorf("%w: max carry must be at least 1, got %d", ErrInvalidConfig, c.Round.MaxCarry)
	case c.Round.PickupPoints < 0 || c.Round.DeliveryPoints < 0:
		return fmt.Errorf("%w: points must not be negative", ErrInvalidConfig)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed must be positive, got %v", ErrInvalidConfig, c.Player.Speed)
	case c.Player.Turbo <= 0:
		return fmt.Errorf("%w: turbo multiplier must be positive, got %v", ErrInvalidConfig, c.Player.Turbo)
	case c.Player.Damping < 0 || c.Player.Damping >= 1:
		return fmt.Errorf("%w: damping must be in [0, 1), got %v", ErrInvalidConfig, c.Player.Damping)
	case c.Frame.MaxDelta <= 0:
		return fmt.Errorf("%w: max frame delta must be positive, got %v", ErrInvalidConfig, c.Frame.MaxDelta)
	case c.Camera.NearPlane <= 0:
		return fmt.Errorf("%w: near plane must be positive, got %v", ErrInvalidConfig, c.Camera.NearPlane)
	case c.Terminal.FrameInterval <= 0:
		return fmt.Errorf("%w: terminal frame interval must be positive", ErrInvalidConfig)
	case c.Terminal.HoldInitial <= 0 || c.Terminal.HoldRepeat <= 0:
		return fmt.Errorf("%w: key hold windows must be positive, got %v and %v",
			ErrInvalidConfig, c.Terminal.HoldInitial, c.Terminal.HoldRepeat)
	}
	for _, hex := range c.Ingredients.Colors {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: ingredient color %q: %v", ErrInvalidConfig, hex, err)
		}
	}
	return nil
}
