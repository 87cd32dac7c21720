package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "railgrid.yaml")
	body := []byte("grid:\n  side: 12\ngame:\n  scenario: crossing\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Grid.Side != 12 {
		t.Errorf("Grid.Side = %d, want 12", cfg.Grid.Side)
	}
	if cfg.Game.Scenario != "crossing" {
		t.Errorf("Game.Scenario = %q, want crossing", cfg.Game.Scenario)
	}
	// Omitted sections fall back to defaults via Normalize.
	if cfg.Trains.Capacity != DefaultConfig().Trains.Capacity {
		t.Errorf("Trains.Capacity = %d, want default", cfg.Trains.Capacity)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestNormalizeClampsInvalidValues(t *testing.T) {
	cfg := Config{}
	cfg.Grid.Side = 1
	cfg.Trains.DriveSpeed = -3
	cfg.Game.TickRate = 100000
	cfg.Normalize()

	def := DefaultConfig()
	if cfg.Grid.Side != def.Grid.Side {
		t.Errorf("Grid.Side = %d, want default %d", cfg.Grid.Side, def.Grid.Side)
	}
	if cfg.Trains.DriveSpeed != def.Trains.DriveSpeed {
		t.Errorf("DriveSpeed = %v, want default %v", cfg.Trains.DriveSpeed, def.Trains.DriveSpeed)
	}
	if cfg.Game.TickRate != def.Game.TickRate {
		t.Errorf("TickRate = %d, want default %d", cfg.Game.TickRate, def.Game.TickRate)
	}
}
