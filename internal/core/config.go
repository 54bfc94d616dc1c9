package core

import "time"

// TickInterval is the fixed render tick. The simulation advances once every
// few ticks; see the animation clock in the game package.
const TickInterval = 50 * time.Millisecond

// RuntimeConfig contains per-run settings that are not persisted.
type RuntimeConfig struct {
	ScreenW int   // Viewport width in frontend units (terminal columns or pixels)
	ScreenH int   // Viewport height in frontend units
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// ResolveSeed returns cfg.Seed, or a time-based seed when it is zero.
func (cfg RuntimeConfig) ResolveSeed() int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}
