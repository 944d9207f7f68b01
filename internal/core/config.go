package core

import "time"

// RuntimeConfig contains configuration passed to a session at start.
// Sessions use this to size the playfield and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Scheduler ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the externally visible status of a running session.
type GameState struct {
	Year      int  // Current in-game year
	Destroyed int  // Debris destroyed by projectiles
	GameOver  bool // Whether the ship has been hit
	Tasks     int  // Live tasks in the scheduler
}
