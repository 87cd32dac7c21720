package core

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The platform fills it from terminal size and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for procedural scenarios
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in the platform layer
	}
}

// SimStatus summarizes the simulation for the platform HUD and for
// session persistence.
type SimStatus struct {
	Tick        uint64 // Frames simulated since reset
	Trains      int    // Trains currently simulated (non-disabled)
	Blocked     int    // Trains currently in the blocked state
	Painted     int    // Connections committed by the brush since reset
	Bulldozed   int    // Cells cleared since reset
	BlockEvents int    // Driving-to-blocked transitions since reset
}
