package folio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestConfigSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	want := DefaultConfig()
	want.ZoomMax = 400
	want.SwipeThreshold = 80
	want.Sound = false
	if err := want.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("hide_controls_ms: 5000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HideControlsMillis != 5000 {
		t.Errorf("HideControlsMillis = %d, want 5000", cfg.HideControlsMillis)
	}
	if cfg.TurnSwapMillis != 175 {
		t.Errorf("TurnSwapMillis = %d, want default 175", cfg.TurnSwapMillis)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_ZOOM_STEP", "10")
	t.Setenv("FOLIO_SOUND", "false")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ZoomStep != 10 {
		t.Errorf("ZoomStep = %v, want 10", cfg.ZoomStep)
	}
	if cfg.Sound {
		t.Error("Sound = true, want env override to false")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("zoom_min: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"negative swipe", func(c *Config) { c.SwipeThreshold = -1 }, false},
		{"zero min zoom", func(c *Config) { c.ZoomMin = 0 }, false},
		{"min above base", func(c *Config) { c.ZoomMin = 150 }, false},
		{"max below base", func(c *Config) { c.ZoomMax = 90 }, false},
		{"zero step", func(c *Config) { c.ZoomStep = 0 }, false},
		{"swap after end", func(c *Config) { c.TurnSwapMillis = 400 }, false},
		{"zero swap", func(c *Config) { c.TurnSwapMillis = 0 }, false},
		{"zero hide delay", func(c *Config) { c.HideControlsMillis = 0 }, false},
		{"negative fade", func(c *Config) { c.FadeMillis = -1 }, false},
		{"no fade", func(c *Config) { c.FadeMillis = 0 }, true},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
