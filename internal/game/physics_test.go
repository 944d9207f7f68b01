package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/space-debris/internal/config"
)

func testShipConfig() config.ShipConfig {
	return config.ShipConfig{
		RowSpeedLimit:    2,
		ColumnSpeedLimit: 2,
		Fading:           0.8,
		Acceleration:     0.75,
		FrameHoldTicks:   2,
	}
}

func TestUpdateVelocityThrustReachesLimit(t *testing.T) {
	tests := []struct {
		name string
		dir  int
		want float64
	}{
		{"down", 1, 2},
		{"up", -1, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Velocity
			for i := 0; i < 20; i++ {
				v = UpdateVelocity(v, tt.dir, 0, testShipConfig())
				if math.Abs(v.Row) > 2 {
					t.Fatalf("step %d: speed %v exceeds limit", i, v.Row)
				}
				if v.Col != 0 {
					t.Fatalf("step %d: idle axis moved to %v", i, v.Col)
				}
			}
			if v.Row != tt.want {
				t.Errorf("speed after thrust = %v, expected %v", v.Row, tt.want)
			}
		})
	}
}

func TestUpdateVelocityDecaysWithoutOvershoot(t *testing.T) {
	for _, start := range []float64{2, -2, 0.5, -0.15} {
		v := Velocity{Row: start, Col: start}
		prev := math.Abs(start)
		stopped := false
		for i := 0; i < 50; i++ {
			v = UpdateVelocity(v, 0, 0, testShipConfig())
			if v.Row*start < 0 || v.Col*start < 0 {
				t.Fatalf("start %v: speed crossed zero to %+v", start, v)
			}
			if math.Abs(v.Row) > prev {
				t.Fatalf("start %v: speed grew from %v to %v", start, prev, v.Row)
			}
			prev = math.Abs(v.Row)
			if v.Row == 0 && v.Col == 0 {
				stopped = true
				break
			}
		}
		if !stopped {
			t.Errorf("start %v: ship never came to rest, speed %+v", start, v)
		}
	}
}

func TestUpdateVelocityReverseThrust(t *testing.T) {
	v := Velocity{Col: 2}
	for i := 0; i < 20; i++ {
		v = UpdateVelocity(v, 0, -1, testShipConfig())
	}
	if v.Col != -2 {
		t.Errorf("speed after reversing = %v, expected -2", v.Col)
	}
}
