package game

import (
	"testing"

	"github.com/vovakirdan/space-debris/internal/core"
)

// runUntilDone ticks until d completes and returns the completing tick.
func runUntilDone(t *testing.T, env *testEnv, limit int) int {
	t.Helper()
	for tick := 1; tick <= limit; tick++ {
		if !env.sched.Tick() {
			return tick
		}
	}
	t.Fatalf("debris still alive after %d ticks", limit)
	return 0
}

func TestDebrisFallsPastBottom(t *testing.T) {
	env := newTestEnv(t, 6, 20, 1961)
	other := env.Registry.Add(core.NewRect(0, 0, 1, 1))
	d := NewDebris(env.Env, 5, testDebris, testExplosion, 1)
	env.sched.Add(d)

	env.ticks(1)
	if env.Registry.Len() != 2 {
		t.Fatalf("Registry.Len() = %d after first step, expected 2", env.Registry.Len())
	}
	got, ok := env.Registry.Get(d.ID())
	if !ok || got.Box != core.NewRect(1, 5, 2, 3) {
		t.Errorf("obstacle = %+v, %v; expected box at row 1", got, ok)
	}

	env.ticks(1)
	if got, _ := env.Registry.Get(d.ID()); got.Box.Row != 2 {
		t.Errorf("obstacle row = %d after second step, expected 2", got.Box.Row)
	}

	// Rows 3, 4 and 5, then row 6 is past the bottom.
	if done := runUntilDone(t, env, 10) + 2; done != 6 {
		t.Errorf("debris completed on tick %d, expected 6", done)
	}
	if _, ok := env.Registry.Get(d.ID()); ok {
		t.Error("debris still registered after leaving the playfield")
	}
	if _, ok := env.Registry.Get(other); !ok || env.Registry.Len() != 1 {
		t.Error("removing debris touched another obstacle")
	}
	if env.Stats.Destroyed != 0 || env.alerts.Count() != 0 {
		t.Errorf("Destroyed = %d, alerts = %d; expected none", env.Stats.Destroyed, env.alerts.Count())
	}
}

func TestDebrisExplodesOnMark(t *testing.T) {
	env := newTestEnv(t, 20, 20, 2020)
	d := NewDebris(env.Env, 5, testDebris, testExplosion, 0.5)
	env.sched.Add(d)

	env.ticks(1)
	env.Registry.MarkHit(d.ID())

	env.ticks(1)
	if _, ok := env.Registry.Get(d.ID()); ok {
		t.Fatal("debris should leave the registry as soon as it is hit")
	}
	if env.Registry.IsHit(d.ID()) {
		t.Error("mark should be consumed")
	}
	if env.Stats.Destroyed != 1 || env.alerts.Count() != 1 {
		t.Errorf("Destroyed = %d, alerts = %d; expected 1 and 1", env.Stats.Destroyed, env.alerts.Count())
	}
	if len(env.surface.draws(testExplosion[0].Text)) != 1 {
		t.Error("first explosion frame should be drawn on the hit tick")
	}

	// Two frames, each drawn then erased, then one final step.
	if done := runUntilDone(t, env, 10) + 2; done != 6 {
		t.Errorf("debris completed on tick %d, expected 6", done)
	}
	if env.Registry.Len() != 0 {
		t.Errorf("Registry.Len() = %d, expected 0", env.Registry.Len())
	}
	if env.Stats.Destroyed != 1 {
		t.Errorf("Destroyed = %d, expected exactly 1", env.Stats.Destroyed)
	}
	if env.surface.Pending(2, 5).Rune != ' ' {
		t.Error("explosion should be erased before the task completes")
	}
}

func TestDebrisColumnClamped(t *testing.T) {
	env := newTestEnv(t, 10, 20, 2020)
	if d := NewDebris(env.Env, 50, testDebris, nil, 1); d.col != 18 {
		t.Errorf("col = %d, expected 18", d.col)
	}
	if d := NewDebris(env.Env, -4, testDebris, nil, 1); d.col != 1 {
		t.Errorf("col = %d, expected 1", d.col)
	}
}
