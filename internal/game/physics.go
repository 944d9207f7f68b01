package game

import (
	"math"

	"github.com/vovakirdan/space-debris/internal/config"
)

// snapSpeed is the speed below which an axis comes to rest.
const snapSpeed = 0.1

// Velocity is the ship's speed in cells per tick.
type Velocity struct {
	Row float64
	Col float64
}

// UpdateVelocity applies one tick of fading and thrust. rowDir and colDir are
// -1, 0 or 1. Speed never exceeds the configured limits and decays toward
// zero without crossing it when no direction is held.
func UpdateVelocity(v Velocity, rowDir, colDir int, ship config.ShipConfig) Velocity {
	return Velocity{
		Row: axisSpeed(v.Row, rowDir, ship.RowSpeedLimit, ship.Fading, ship.Acceleration),
		Col: axisSpeed(v.Col, colDir, ship.ColumnSpeedLimit, ship.Fading, ship.Acceleration),
	}
}

func axisSpeed(speed float64, dir int, limit, fading, accel float64) float64 {
	speed *= fading
	if dir != 0 && limit > 0 {
		// Thrust weakens as the ship approaches its limit.
		delta := math.Cos(speed/limit) * accel
		if dir > 0 {
			speed += delta
		} else {
			speed -= delta
		}
		speed = math.Max(-limit, math.Min(limit, speed))
	}
	if math.Abs(speed) < snapSpeed {
		return 0
	}
	return speed
}
