package folio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// baseZoom is the unzoomed level. Panning is only possible above it and the
// pan offset is reset whenever zoom is set at or below it.
const baseZoom = 100.0

// Config holds the engine's tunables. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// SwipeThreshold is the horizontal travel a single-pointer gesture must
	// exceed to count as a swipe.
	SwipeThreshold float64 `yaml:"swipe_threshold" koanf:"swipe_threshold"`

	ZoomMin  float64 `yaml:"zoom_min" koanf:"zoom_min"`
	ZoomMax  float64 `yaml:"zoom_max" koanf:"zoom_max"`
	ZoomStep float64 `yaml:"zoom_step" koanf:"zoom_step"`

	// TurnSwapMillis is when the page index changes after a turn starts;
	// TurnEndMillis is when the turn returns to idle.
	TurnSwapMillis int `yaml:"turn_swap_ms" koanf:"turn_swap_ms"`
	TurnEndMillis  int `yaml:"turn_end_ms" koanf:"turn_end_ms"`

	HideControlsMillis int `yaml:"hide_controls_ms" koanf:"hide_controls_ms"`
	FadeMillis         int `yaml:"fade_ms" koanf:"fade_ms"`

	Sound      bool `yaml:"sound" koanf:"sound"`
	SampleRate int  `yaml:"sample_rate" koanf:"sample_rate"`
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		SwipeThreshold:     50,
		ZoomMin:            25,
		ZoomMax:            300,
		ZoomStep:           25,
		TurnSwapMillis:     175,
		TurnEndMillis:      350,
		HideControlsMillis: 3000,
		FadeMillis:         200,
		Sound:              true,
		SampleRate:         44100,
	}
}

// LoadConfig reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*). A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// FOLIO_SWIPE_THRESHOLD -> swipe_threshold, etc.
	if err := k.Load(env.Provider("FOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
	}), nil); err != nil {
		return cfg, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Save writes the configuration to the given YAML file path.
func (c Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c Config) Validate() error {
	if c.SwipeThreshold < 0 {
		return fmt.Errorf("swipe_threshold must be non-negative")
	}
	if c.ZoomMin <= 0 || c.ZoomMin > baseZoom {
		return fmt.Errorf("zoom_min %v must be in (0, %v]", c.ZoomMin, baseZoom)
	}
	if c.ZoomMax < baseZoom {
		return fmt.Errorf("zoom_max %v must be at least %v", c.ZoomMax, baseZoom)
	}
	if c.ZoomStep <= 0 {
		return fmt.Errorf("zoom_step must be positive")
	}
	if c.TurnSwapMillis <= 0 || c.TurnEndMillis <= c.TurnSwapMillis {
		return fmt.Errorf("turn timings must satisfy 0 < turn_swap_ms (%d) < turn_end_ms (%d)",
			c.TurnSwapMillis, c.TurnEndMillis)
	}
	if c.HideControlsMillis <= 0 {
		return fmt.Errorf("hide_controls_ms must be positive")
	}
	if c.FadeMillis < 0 {
		return fmt.Errorf("fade_ms must be non-negative")
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive")
	}
	return nil
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
