package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/hichamlamine/game-of-life/model"
	"github.com/hichamlamine/game-of-life/rules"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"width": 30,
		"height": 20,
		"tick_rate": 4.5,
		"seed_count": 12,
		"initial_run_state": "paused",
		"boundary": "symmetric",
		"seed": 42,
		"patterns": [{"name": "glider", "x": 3, "y": 4}]
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 30 || cfg.Height != 20 || cfg.TickRate != 4.5 || cfg.SeedCount != 12 || cfg.Seed != 42 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.InitialRunState != model.Paused {
		t.Fatalf("InitialRunState = %v", cfg.InitialRunState)
	}
	if cfg.Boundary != rules.BoundarySymmetric {
		t.Fatalf("Boundary = %v", cfg.Boundary)
	}
	if len(cfg.Patterns) != 1 || cfg.Patterns[0] != (Placement{Name: "glider", X: 3, Y: 4}) {
		t.Fatalf("Patterns = %+v", cfg.Patterns)
	}
	// fields absent from the file keep their defaults
	if cfg.CellSize != DefaultConfig().CellSize {
		t.Fatalf("CellSize = %d", cfg.CellSize)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
	if cfg.Width != DefaultConfig().Width {
		t.Fatal("missing file should return defaults")
	}

	if _, err := LoadConfig(writeConfig(t, `{"boundary": "toroidal"}`)); err == nil {
		t.Fatal("expected error for unknown boundary")
	}
	if _, err := LoadConfig(writeConfig(t, `{"width": `)); err == nil {
		t.Fatal("expected error for malformed json")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, model.ErrInvalidDimension},
		{"negative height", func(c *Config) { c.Height = -3 }, model.ErrInvalidDimension},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, model.ErrInvalidArgument},
		{"negative seed count", func(c *Config) { c.SeedCount = -1 }, model.ErrInvalidArgument},
		{"unknown boundary", func(c *Config) { c.Boundary = rules.Boundary(7) }, model.ErrInvalidArgument},
		{"unknown run state", func(c *Config) { c.InitialRunState = model.RunState(-1) }, model.ErrInvalidArgument},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }, model.ErrInvalidArgument},
		{"unknown pattern", func(c *Config) { c.Patterns = []Placement{{Name: "spaceship"}} }, model.ErrInvalidArgument},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tt.want) {
			t.Fatalf("%s: Validate() = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestBindOverridesValues(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-width", "12", "-tick-rate", "2", "-initial-run-state", "paused", "-boundary", "symmetric", "-seed", "9"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 12 || cfg.TickRate != 2 || cfg.Seed != 9 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.InitialRunState != model.Paused || cfg.Boundary != rules.BoundarySymmetric {
		t.Fatalf("enum flags not applied: %v %v", cfg.InitialRunState, cfg.Boundary)
	}
	if cfg.Height != DefaultConfig().Height {
		t.Fatal("unset flags must keep their value")
	}
}
