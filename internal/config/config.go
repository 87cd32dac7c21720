// Package config provides YAML-based configuration loading for the
// rail simulator.
package config

// Config contains all tunable parameters for a simulator session.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Trains TrainsConfig `yaml:"trains"`
	Game   GameConfig   `yaml:"game"`
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Side int `yaml:"side"` // cells per edge of the square grid
}

// TrainsConfig defines the train pool and motion speeds.
type TrainsConfig struct {
	Capacity    int     `yaml:"capacity"`
	DriveSpeed  float64 `yaml:"drive_speed"` // cells per second
	LoadSpeed   float64 `yaml:"load_speed"`  // progress per second while loading
	UnloadSpeed float64 `yaml:"unload_speed"`
}

// GameConfig defines session-level options.
type GameConfig struct {
	Scenario string `yaml:"scenario"` // starting layout name
	TickRate int    `yaml:"tick_rate"`
	Seed     int64  `yaml:"seed"` // 0 = derive from clock
}

// Normalize clamps out-of-range values back to sane defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Grid.Side < 4 {
		c.Grid.Side = def.Grid.Side
	}
	if c.Trains.Capacity < 1 {
		c.Trains.Capacity = def.Trains.Capacity
	}
	if c.Trains.DriveSpeed <= 0 {
		c.Trains.DriveSpeed = def.Trains.DriveSpeed
	}
	if c.Trains.LoadSpeed <= 0 {
		c.Trains.LoadSpeed = def.Trains.LoadSpeed
	}
	if c.Trains.UnloadSpeed <= 0 {
		c.Trains.UnloadSpeed = def.Trains.UnloadSpeed
	}
	if c.Game.Scenario == "" {
		c.Game.Scenario = def.Game.Scenario
	}
	if c.Game.TickRate < 1 || c.Game.TickRate > 240 {
		c.Game.TickRate = def.Game.TickRate
	}
}
