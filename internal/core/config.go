package core

// RuntimeConfig contains configuration passed to a simulation at initialization.
// The tick rate fixes the time step; the seed makes damage rolls reproducible.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time
	}
}

// Dt returns the fixed time step in seconds.
// Falls back to 60 ticks per second when TickRate is not positive.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
