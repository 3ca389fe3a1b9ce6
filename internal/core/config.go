package core

import "time"

// RuntimeConfig is what the host hands an engine at creation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; the host replaces 0 with a time-based seed
}

// DefaultConfig returns an 80x24, 60 tick/s config with no seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickInterval is the wall-clock time between ticks. Non-positive rates
// fall back to 60 ticks per second.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}
