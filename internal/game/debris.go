package game

import (
	"github.com/vovakirdan/space-debris/internal/assets"
	"github.com/vovakirdan/space-debris/internal/core"
	"github.com/vovakirdan/space-debris/internal/entity"
	"github.com/vovakirdan/space-debris/internal/sched"
)

// Debris is a piece of space garbage falling from the top of the playfield.
// It owns one obstacle in the registry from its first step until it either
// falls past the bottom or is destroyed; both paths release it exactly once.
type Debris struct {
	env       *Env
	frame     assets.Frame
	explosion []assets.Frame
	row       float64
	col       int
	speed     float64

	id         entity.ID
	started    bool
	registered bool

	drawn    bool
	drawnRow int

	boom *explosion
}

// NewDebris creates debris whose left edge is at col, falling speed rows per
// tick. The column is clamped into the playfield.
func NewDebris(env *Env, col int, frame assets.Frame, explosion []assets.Frame, speed float64) *Debris {
	_, maxCol := env.Surface.Bounds()
	return &Debris{
		env:       env,
		frame:     frame,
		explosion: explosion,
		row:       1,
		col:       core.Clamp(col, 1, max(maxCol-2, 1)),
		speed:     speed,
	}
}

// ID returns the registry id, valid after the first step.
func (d *Debris) ID() entity.ID {
	return d.id
}

// Step implements sched.Task.
func (d *Debris) Step(_ sched.Spawner) bool {
	done := d.step()
	if done {
		d.release()
	}
	return done
}

func (d *Debris) step() bool {
	if d.boom != nil {
		return d.boom.step()
	}

	if !d.started {
		d.started = true
		d.id = d.env.Registry.Add(d.box())
		d.registered = true
	} else {
		if d.drawn {
			d.env.Surface.Erase(d.drawnRow, d.col, d.frame.Text)
			d.drawn = false
		}
		d.row += d.speed
		d.env.Registry.Move(d.id, core.Round(d.row), d.col)
	}

	maxRow, _ := d.env.Surface.Bounds()
	if core.Round(d.row) >= maxRow {
		return true
	}

	if d.env.Registry.ConsumeHit(d.id) {
		d.release()
		d.env.Stats.Destroyed++
		d.env.Alert.Alert()
		d.env.Logger.Debug("debris destroyed", "id", d.id, "sprite", d.frame.Name, "year", d.env.Clock.Year())
		centerRow, centerCol := d.box().Center()
		d.boom = newExplosion(d.env.Surface, d.explosion, centerRow, centerCol)
		return d.boom.step()
	}

	row := core.Round(d.row)
	d.env.Surface.Draw(row, d.col, d.frame.Text, core.StyleNormal)
	d.drawn, d.drawnRow = true, row
	return false
}

func (d *Debris) box() core.Rect {
	return core.NewRect(core.Round(d.row), d.col, d.frame.Rows, d.frame.Cols)
}

// release removes the obstacle; later calls are no-ops.
func (d *Debris) release() {
	if d.registered {
		d.env.Registry.Remove(d.id)
		d.registered = false
	}
}

// explosion plays its frames centred on a cell. Each frame is drawn on one
// step and erased on the next.
type explosion struct {
	surface core.Surface
	frames  []assets.Frame
	row     int
	col     int
	next    int
}

func newExplosion(surface core.Surface, frames []assets.Frame, centerRow, centerCol int) *explosion {
	e := &explosion{surface: surface, frames: frames, row: centerRow, col: centerCol}
	if len(frames) > 0 {
		e.row -= frames[0].Rows / 2
		e.col -= frames[0].Cols / 2
	}
	return e
}

func (e *explosion) step() bool {
	if e.next >= 2*len(e.frames) {
		return true
	}
	frame := e.frames[e.next/2]
	if e.next%2 == 0 {
		e.surface.Draw(e.row, e.col, frame.Text, core.StyleNormal)
	} else {
		e.surface.Erase(e.row, e.col, frame.Text)
	}
	e.next++
	return false
}
