package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/game.yaml and is used if the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		TickRate: 10,
		Stars: StarsConfig{
			Count:       100,
			Symbols:     "+*.:",
			MinDimTicks: 10,
			MaxDimTicks: 30,
		},
		Ship: ShipConfig{
			RowSpeedLimit:    2,
			ColumnSpeedLimit: 2,
			Fading:           0.8,
			Acceleration:     0.75,
			FrameHoldTicks:   2,
		},
		Projectile: ProjectileConfig{
			RowSpeed:    -1,
			ColumnSpeed: 0,
		},
		Debris: DebrisConfig{
			MinSpeed: 0.3,
			MaxSpeed: 0.7,
		},
		Clock: ClockConfig{
			StartYear:       1957,
			TicksPerYear:    15,
			UnlockYear:      2020,
			PhraseHoldTicks: 15,
		},
		Difficulty: []SpawnStep{
			{FromYear: 1957, Delay: 0},
			{FromYear: 1961, Delay: 20},
			{FromYear: 1969, Delay: 14},
			{FromYear: 1981, Delay: 10},
			{FromYear: 1995, Delay: 8},
			{FromYear: 2010, Delay: 6},
			{FromYear: 2020, Delay: 2},
		},
		Phrases: []Phrase{
			{Year: 1957, Text: "First Sputnik"},
			{Year: 1961, Text: "Gagarin flew!"},
			{Year: 1969, Text: "Armstrong got on the moon!"},
			{Year: 1971, Text: "First orbital space station Salute-1"},
			{Year: 1981, Text: "Flight of the Shuttle Columbia"},
			{Year: 1998, Text: "ISS start building"},
			{Year: 2011, Text: "Messenger launch to Mercury"},
			{Year: 2020, Text: "Take the plasma gun! Shoot the garbage!"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
