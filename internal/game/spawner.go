package game

import (
	"github.com/vovakirdan/space-debris/internal/assets"
	"github.com/vovakirdan/space-debris/internal/config"
	"github.com/vovakirdan/space-debris/internal/sched"
)

// GarbageSpawner launches debris at the pace set by the difficulty clock for
// the current year. While the clock reports no delay it only waits, checking
// again every tick. It never completes.
type GarbageSpawner struct {
	env       *Env
	sprites   []assets.Frame
	explosion []assets.Frame
	speed     config.DebrisConfig

	armed bool
	wait  wait
}

// NewGarbageSpawner creates the spawner. sprites must not be empty.
func NewGarbageSpawner(env *Env, sprites, explosion []assets.Frame, speed config.DebrisConfig) *GarbageSpawner {
	return &GarbageSpawner{env: env, sprites: sprites, explosion: explosion, speed: speed}
}

// Step implements sched.Task.
func (g *GarbageSpawner) Step(sp sched.Spawner) bool {
	if g.armed {
		if g.wait.pending() {
			return false
		}
		g.armed = false
		sp.Spawn(g.launch())
	}

	delay := g.env.Difficulty.SpawnDelay(g.env.Clock.Year())
	if delay <= 0 {
		return false
	}
	g.armed = true
	g.wait.hold(delay)
	return false
}

func (g *GarbageSpawner) launch() *Debris {
	rnd := g.env.Rand
	_, maxCol := g.env.Surface.Bounds()
	col := 1 + rnd.Intn(max(maxCol-2, 1))
	sprite := g.sprites[rnd.Intn(len(g.sprites))]
	speed := g.speed.MinSpeed
	if g.speed.MaxSpeed > g.speed.MinSpeed {
		speed += rnd.Float64() * (g.speed.MaxSpeed - g.speed.MinSpeed)
	}
	return NewDebris(g.env, col, sprite, g.explosion, speed)
}
