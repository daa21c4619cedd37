package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-drift/internal/grid"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded YAML = %+v\nhard-coded = %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drift.yaml")
	data := []byte(`
grid:
  rows: 30
  columns: 12
engine:
  policy: clamp
driver:
  interval: 50ms
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Rows != 30 || cfg.Grid.Columns != 12 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if cfg.Engine.Policy != "clamp" {
		t.Errorf("policy = %q", cfg.Engine.Policy)
	}
	if cfg.Driver.Interval != 50*time.Millisecond {
		t.Errorf("interval = %v", cfg.Driver.Interval)
	}
	// Keys missing from the file keep their defaults
	if cfg.Seed.Pattern != "center" || cfg.Tilt.SweepDegrees != 6 {
		t.Errorf("partial file lost defaults: %+v", cfg)
	}

	rc := cfg.Runtime()
	if rc.Rows != 30 || rc.Columns != 12 || rc.Policy != "clamp" || rc.Interval != 50*time.Millisecond {
		t.Errorf("Runtime() = %+v", rc)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  rows: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, grid.ErrInvalidDimension) {
		t.Errorf("zero rows error = %v, want ErrInvalidDimension", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("without files Load() = %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "drift.yaml"), []byte("grid:\n  rows: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Grid.Rows != 5 {
		t.Errorf("local config not used, rows = %d", cfg.Grid.Rows)
	}

	// User config wins over local
	if err := os.MkdirAll(filepath.Join(home, ".drift"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".drift", "config.yaml"), []byte("grid:\n  rows: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Grid.Rows != 7 {
		t.Errorf("user config not preferred, rows = %d", cfg.Grid.Rows)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero columns", func(c *Config) { c.Grid.Columns = 0 }},
		{"unknown policy", func(c *Config) { c.Engine.Policy = "wrap" }},
		{"empty pattern", func(c *Config) { c.Seed.Pattern = "" }},
		{"negative density", func(c *Config) { c.Seed.Density = -0.1 }},
		{"density above one", func(c *Config) { c.Seed.Density = 1.1 }},
		{"zero interval", func(c *Config) { c.Driver.Interval = 0 }},
		{"negative dead zone", func(c *Config) { c.Tilt.DeadZone = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}
