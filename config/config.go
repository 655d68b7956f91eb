// Package config loads the bridge configuration file. Every field has a
// default matching the original tool, so a missing file is not an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	InvertX   bool `yaml:"invert_x"`
	InvertY   bool `yaml:"invert_y"`
	InvertZ   bool `yaml:"invert_z"`
	InvertYaw bool `yaml:"invert_yaw"`
	SwapYZ    bool `yaml:"swap_y_z"`

	Move AxisTuning `yaml:"move"`
	Zoom AxisTuning `yaml:"zoom"`

	Mode ModeConfig `yaml:"mode"`

	// Axes overrides the default axis-name to chord mapping, e.g.
	// move_left: A. Buttons overrides the default button-index to chord
	// mapping, e.g. 8: Space.
	Axes    map[string]string `yaml:"axes"`
	Buttons map[int]string    `yaml:"buttons"`

	Device DeviceConfig `yaml:"device"`
}

// AxisTuning controls how an analog axis becomes key events.
type AxisTuning struct {
	PressMs       float64 `yaml:"press_ms"`
	MinHz         float64 `yaml:"min_hz"`
	MaxHz         float64 `yaml:"max_hz"`
	Deadzone      float64 `yaml:"deadzone"`
	HoldThreshold float64 `yaml:"hold_threshold"`
	EmaAlpha      float64 `yaml:"ema_alpha"`
}

type ModeConfig struct {
	SyncWithCapsLockLED  bool `yaml:"sync_with_capslock_led"`
	StartInCharacterMode bool `yaml:"start_in_character_mode"`
}

type DeviceConfig struct {
	Path string `yaml:"path"`
}

// Defaults returns the configuration the original tool ships with.
func Defaults() *Config {
	return &Config{
		InvertX:   false,
		InvertY:   true,
		InvertZ:   true,
		InvertYaw: true,
		SwapYZ:    false,
		Move: AxisTuning{
			PressMs:       20,
			MinHz:         15,
			MaxHz:         30,
			Deadzone:      0.001,
			HoldThreshold: 0.40,
			EmaAlpha:      0.3,
		},
		Zoom: AxisTuning{
			PressMs:       10,
			MinHz:         8,
			MaxHz:         18,
			Deadzone:      0.001,
			HoldThreshold: 0.5,
			EmaAlpha:      0.3,
		},
		Mode: ModeConfig{
			SyncWithCapsLockLED:  true,
			StartInCharacterMode: false,
		},
	}
}

// Load reads path over the defaults. A missing file returns the defaults
// unchanged; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for _, t := range []struct {
		name   string
		tuning AxisTuning
	}{{"move", c.Move}, {"zoom", c.Zoom}} {
		if t.tuning.Deadzone < 0 || t.tuning.Deadzone >= 1 {
			return fmt.Errorf("%s.deadzone must be in [0, 1)", t.name)
		}
		if t.tuning.HoldThreshold <= t.tuning.Deadzone || t.tuning.HoldThreshold > 1 {
			return fmt.Errorf("%s.hold_threshold must be in (deadzone, 1]", t.name)
		}
		if t.tuning.MinHz <= 0 || t.tuning.MaxHz < t.tuning.MinHz {
			return fmt.Errorf("%s: need 0 < min_hz <= max_hz", t.name)
		}
		if t.tuning.EmaAlpha <= 0 || t.tuning.EmaAlpha > 1 {
			return fmt.Errorf("%s.ema_alpha must be in (0, 1]", t.name)
		}
		if t.tuning.PressMs <= 0 {
			return fmt.Errorf("%s.press_ms must be positive", t.name)
		}
	}
	return nil
}
