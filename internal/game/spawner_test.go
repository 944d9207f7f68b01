package game

import (
	"testing"

	"github.com/vovakirdan/space-debris/internal/assets"
	"github.com/vovakirdan/space-debris/internal/config"
)

func TestGarbageSpawnerPausedEra(t *testing.T) {
	env := newTestEnv(t, 60, 60, 1957)
	env.sched.Add(NewGarbageSpawner(env.Env, []assets.Frame{testDebris}, testExplosion, config.DebrisConfig{MinSpeed: 0.3, MaxSpeed: 0.7}))

	env.ticks(100)
	if env.sched.Len() != 1 {
		t.Fatalf("Len() = %d in 1957, expected no debris", env.sched.Len())
	}

	for env.Clock.Year() < 1961 {
		env.Clock.advance()
	}
	// Delay 20: armed on the first tick, launched on the 21st.
	env.ticks(20)
	if env.sched.Len() != 1 {
		t.Fatalf("Len() = %d after 20 ticks, expected the first debris still pending", env.sched.Len())
	}
	env.ticks(1)
	if env.sched.Len() != 2 {
		t.Fatalf("Len() = %d after 21 ticks, expected one debris", env.sched.Len())
	}
	env.ticks(20)
	if env.sched.Len() != 3 {
		t.Errorf("Len() = %d after 41 ticks, expected two debris", env.sched.Len())
	}
}

func TestGarbageSpawnerDebrisWithinBounds(t *testing.T) {
	env := newTestEnv(t, 40, 30, 2020)
	speeds := config.DebrisConfig{MinSpeed: 0.3, MaxSpeed: 0.7}
	g := NewGarbageSpawner(env.Env, []assets.Frame{testDebris}, testExplosion, speeds)

	for i := 0; i < 50; i++ {
		d := g.launch()
		if d.col < 1 || d.col > 28 {
			t.Fatalf("debris column %d outside the playfield", d.col)
		}
		if d.speed < speeds.MinSpeed || d.speed > speeds.MaxSpeed {
			t.Fatalf("debris speed %v outside [%v, %v]", d.speed, speeds.MinSpeed, speeds.MaxSpeed)
		}
	}
}
