package game

import (
	"testing"

	"github.com/vovakirdan/space-debris/internal/config"
	"github.com/vovakirdan/space-debris/internal/core"
)

func newTestShip(env *testEnv, row, col int) (*ShipFrame, *SpaceshipControl) {
	holder := NewShipFrame(testShip[0])
	ctrl := NewSpaceshipControl(env.Env, holder, testGameOver, testShipConfig(),
		config.ProjectileConfig{RowSpeed: -1}, row, col)
	return holder, ctrl
}

func TestSpaceshipClampsToPlayfield(t *testing.T) {
	tests := []struct {
		name    string
		press   core.Controls
		wantRow int
		wantCol int
	}{
		{"up", core.Controls{Row: -1}, 1, 10},
		{"down", core.Controls{Row: 1}, 20 - 3 - 1, 10},
		{"left", core.Controls{Col: -1}, 8, 1},
		{"right", core.Controls{Col: 1}, 8, 40 - 4 - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, 20, 40, 1957)
			env.Input = &scriptedInput{script: repeat(tt.press, 30)}
			_, ctrl := newTestShip(env, 8, 10)
			env.sched.Add(ctrl)

			env.ticks(30)

			row, col := ctrl.Position()
			if row != tt.wantRow || col != tt.wantCol {
				t.Errorf("Position() = (%d,%d), expected (%d,%d)", row, col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestSpaceshipComesToRest(t *testing.T) {
	env := newTestEnv(t, 20, 40, 1957)
	env.Input = &scriptedInput{script: repeat(core.Controls{Col: 1}, 3)}
	_, ctrl := newTestShip(env, 8, 10)
	env.sched.Add(ctrl)

	env.ticks(40)
	if v := ctrl.Velocity(); v != (Velocity{}) {
		t.Errorf("Velocity() = %+v after releasing keys, expected rest", v)
	}
	_, col := ctrl.Position()
	env.ticks(5)
	if _, after := ctrl.Position(); after != col {
		t.Errorf("ship drifted from column %d to %d while at rest", col, after)
	}
}

func TestSpaceshipFiringUnlock(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		wantTasks int
	}{
		{"locked", 1990, 1},
		{"unlocked", 2020, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, 20, 40, tt.year)
			env.Input = &scriptedInput{script: []core.Controls{{Fire: true}}}
			_, ctrl := newTestShip(env, 10, 10)
			env.sched.Add(ctrl)

			env.ticks(1)
			if env.sched.Len() != tt.wantTasks {
				t.Fatalf("Len() = %d after firing, expected %d", env.sched.Len(), tt.wantTasks)
			}
			env.ticks(1)
			wantAlerts := tt.wantTasks - 1
			if env.alerts.Count() != wantAlerts {
				t.Errorf("alerts = %d, expected %d", env.alerts.Count(), wantAlerts)
			}
			if env.Stats.Fired != wantAlerts {
				t.Errorf("Fired = %d, expected %d", env.Stats.Fired, wantAlerts)
			}
			if tt.wantTasks == 2 && len(env.surface.draws(flashSymbol)) != 1 {
				t.Errorf("expected one muzzle flash at the ship's nose")
			}
		})
	}
}

func TestSpaceshipCollisionEndsGame(t *testing.T) {
	env := newTestEnv(t, 20, 40, 1957)
	holder, ctrl := newTestShip(env, 10, 10)
	anim := NewSpaceshipAnimate(holder, testShip, 2)
	env.sched.Add(anim, ctrl)
	env.Registry.Add(core.NewRect(11, 11, 1, 1))

	env.ticks(1)
	if !env.Stats.GameOver || env.Stats.FinalYear != 1957 {
		t.Fatalf("Stats = %+v, expected game over in 1957", *env.Stats)
	}
	if !holder.Retired() {
		t.Error("ship frame should be retired")
	}
	if len(env.surface.draws(testGameOver.Text)) != 0 {
		t.Error("banner must not run in the tick that spawned it")
	}

	env.ticks(1)
	if env.sched.Len() != 1 {
		t.Fatalf("Len() = %d, expected only the banner left", env.sched.Len())
	}

	env.ticks(3)
	banners := env.surface.draws(testGameOver.Text)
	if len(banners) != 4 {
		t.Fatalf("banner drawn %d times, expected once per tick (4)", len(banners))
	}
	for i, op := range banners {
		if op.tick != i+2 {
			t.Errorf("banner draw %d on tick %d, expected %d", i, op.tick, i+2)
		}
		// 20x40 surface, 2x4 banner centred on (10, 20).
		if op.row != 9 || op.col != 18 {
			t.Errorf("banner at (%d,%d), expected (9,18)", op.row, op.col)
		}
	}
}

func TestSpaceshipAnimateHoldsFrames(t *testing.T) {
	holder := NewShipFrame(testShip[0])
	anim := NewSpaceshipAnimate(holder, testShip, 2)

	var names []string
	for i := 0; i < 6; i++ {
		if anim.Step(nil) {
			t.Fatalf("animation completed on step %d", i)
		}
		names = append(names, holder.Current().Name)
	}
	want := []string{"ship_1", "ship_1", "ship_2", "ship_2", "ship_1", "ship_1"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("frame on step %d = %s, expected %s", i, names[i], want[i])
		}
	}

	holder.Retire()
	if !anim.Step(nil) {
		t.Error("animation should complete once the frame is retired")
	}
}
