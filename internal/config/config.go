// Package config provides YAML/TOML game configuration loading and the
// difficulty clock that maps in-game years to debris spawn pacing.
package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// GameConfig contains all tunable parameters of the game.
type GameConfig struct {
	TickRate   int              `yaml:"tick_rate" toml:"tick_rate"`
	Stars      StarsConfig      `yaml:"stars" toml:"stars"`
	Ship       ShipConfig       `yaml:"ship" toml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Debris     DebrisConfig     `yaml:"debris" toml:"debris"`
	Clock      ClockConfig      `yaml:"clock" toml:"clock"`
	Difficulty []SpawnStep      `yaml:"difficulty" toml:"difficulty"`
	Phrases    []Phrase         `yaml:"phrases" toml:"phrases"`
}

// StarsConfig defines the blinking background.
type StarsConfig struct {
	Count       int    `yaml:"count" toml:"count"`
	Symbols     string `yaml:"symbols" toml:"symbols"`
	MinDimTicks int    `yaml:"min_dim_ticks" toml:"min_dim_ticks"`
	MaxDimTicks int    `yaml:"max_dim_ticks" toml:"max_dim_ticks"`
}

// ShipConfig defines the inertial movement of the ship.
type ShipConfig struct {
	RowSpeedLimit    float64 `yaml:"row_speed_limit" toml:"row_speed_limit"`
	ColumnSpeedLimit float64 `yaml:"column_speed_limit" toml:"column_speed_limit"`
	Fading           float64 `yaml:"fading" toml:"fading"`             // Velocity kept per tick, 0..1
	Acceleration     float64 `yaml:"acceleration" toml:"acceleration"` // Peak speed-up per tick
	FrameHoldTicks   int     `yaml:"frame_hold_ticks" toml:"frame_hold_ticks"`
}

// ProjectileConfig defines the plasma gun shot.
type ProjectileConfig struct {
	RowSpeed    float64 `yaml:"row_speed" toml:"row_speed"`
	ColumnSpeed float64 `yaml:"column_speed" toml:"column_speed"`
}

// DebrisConfig defines falling garbage.
type DebrisConfig struct {
	MinSpeed float64 `yaml:"min_speed" toml:"min_speed"` // Rows per tick
	MaxSpeed float64 `yaml:"max_speed" toml:"max_speed"`
}

// ClockConfig defines how in-game years pass.
type ClockConfig struct {
	StartYear       int `yaml:"start_year" toml:"start_year"`
	TicksPerYear    int `yaml:"ticks_per_year" toml:"ticks_per_year"`
	UnlockYear      int `yaml:"unlock_year" toml:"unlock_year"` // Year the plasma gun becomes available
	PhraseHoldTicks int `yaml:"phrase_hold_ticks" toml:"phrase_hold_ticks"`
}

// SpawnStep sets the spawn delay from a given year onward.
// A delay of zero or less pauses spawning.
type SpawnStep struct {
	FromYear int `yaml:"from_year" toml:"from_year"`
	Delay    int `yaml:"delay" toml:"delay"` // Ticks between two debris
}

// Phrase is a narrative line shown when the clock reaches Year.
type Phrase struct {
	Year int    `yaml:"year" toml:"year"`
	Text string `yaml:"text" toml:"text"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartYearForPreset returns the first in-game year for a preset.
// Harder presets skip the quiet early decades.
func StartYearForPreset(preset DifficultyPreset, base int) int {
	switch preset {
	case DifficultyNormal:
		return max(base, 1969)
	case DifficultyHard:
		return max(base, 1995)
	default:
		return base
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, preset)
	}
	cfg.Clock.StartYear = StartYearForPreset(preset, cfg.Clock.StartYear)
	return nil
}

// Validate checks the config for values the game cannot run with.
func (c *GameConfig) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}
	if c.Stars.Count < 0 {
		return fmt.Errorf("%w: stars.count must not be negative", ErrInvalidConfig)
	}
	if c.Stars.Count > 0 && c.Stars.Symbols == "" {
		return fmt.Errorf("%w: stars.symbols must not be empty", ErrInvalidConfig)
	}
	if c.Stars.MinDimTicks < 1 || c.Stars.MaxDimTicks < c.Stars.MinDimTicks {
		return fmt.Errorf("%w: stars dim ticks must satisfy 1 <= min <= max", ErrInvalidConfig)
	}
	if c.Ship.RowSpeedLimit <= 0 || c.Ship.ColumnSpeedLimit <= 0 {
		return fmt.Errorf("%w: ship speed limits must be positive", ErrInvalidConfig)
	}
	if c.Ship.Fading < 0 || c.Ship.Fading > 1 {
		return fmt.Errorf("%w: ship.fading must be within [0, 1], got %v", ErrInvalidConfig, c.Ship.Fading)
	}
	if c.Ship.Acceleration <= 0 {
		return fmt.Errorf("%w: ship.acceleration must be positive", ErrInvalidConfig)
	}
	if c.Ship.FrameHoldTicks < 1 {
		return fmt.Errorf("%w: ship.frame_hold_ticks must be at least 1", ErrInvalidConfig)
	}
	if c.Projectile.RowSpeed == 0 && c.Projectile.ColumnSpeed == 0 {
		return fmt.Errorf("%w: projectile must move", ErrInvalidConfig)
	}
	if c.Debris.MinSpeed <= 0 || c.Debris.MaxSpeed < c.Debris.MinSpeed {
		return fmt.Errorf("%w: debris speeds must satisfy 0 < min <= max", ErrInvalidConfig)
	}
	if c.Clock.TicksPerYear < 1 {
		return fmt.Errorf("%w: clock.ticks_per_year must be at least 1", ErrInvalidConfig)
	}
	if c.Clock.PhraseHoldTicks < 1 {
		return fmt.Errorf("%w: clock.phrase_hold_ticks must be at least 1", ErrInvalidConfig)
	}
	return validateSteps(c.Difficulty)
}

// PhraseFor returns the narrative line for a year, if any.
func (c *GameConfig) PhraseFor(year int) (string, bool) {
	for _, p := range c.Phrases {
		if p.Year == year {
			return p.Text, true
		}
	}
	return "", false
}

// validateSteps enforces monotonic difficulty: years ascend, paused steps
// only precede the first active one, and active delays never grow.
func validateSteps(steps []SpawnStep) error {
	if len(steps) == 0 {
		return fmt.Errorf("%w: %w: no steps", ErrInvalidConfig, ErrInvalidDifficulty)
	}
	sorted := sort.SliceIsSorted(steps, func(i, j int) bool {
		return steps[i].FromYear < steps[j].FromYear
	})
	if !sorted {
		return fmt.Errorf("%w: %w: years must ascend", ErrInvalidConfig, ErrInvalidDifficulty)
	}

	active := false
	prev := 0
	for i, s := range steps {
		if i > 0 && s.FromYear == steps[i-1].FromYear {
			return fmt.Errorf("%w: %w: duplicate year %d", ErrInvalidConfig, ErrInvalidDifficulty, s.FromYear)
		}
		if s.Delay <= 0 {
			if active {
				return fmt.Errorf("%w: %w: spawning paused again in %d", ErrInvalidConfig, ErrInvalidDifficulty, s.FromYear)
			}
			continue
		}
		if active && s.Delay > prev {
			return fmt.Errorf("%w: %w: delay grows from %d to %d in %d",
				ErrInvalidConfig, ErrInvalidDifficulty, prev, s.Delay, s.FromYear)
		}
		active = true
		prev = s.Delay
	}
	return nil
}
