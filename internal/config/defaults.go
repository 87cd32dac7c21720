package config

import (
	_ "embed"
)

//go:embed defaults/railgrid.yaml
var defaultRailgridYAML []byte

// DefaultConfig returns the default simulator configuration.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Side: 60,
		},
		Trains: TrainsConfig{
			Capacity:    22,
			DriveSpeed:  1.6,
			LoadSpeed:   0.4,
			UnloadSpeed: 0.4,
		},
		Game: GameConfig{
			Scenario: "loop",
			TickRate: 60,
			Seed:     0,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultRailgridYAML
}
