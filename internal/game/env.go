// Package game implements the tasks that make up a run: blinking stars, the
// player's ship, projectiles, falling debris, the year clock and banners.
//
// Each task is an explicit state machine. One call to Step advances it to its
// next suspension point, which always follows a visible change or one tick of
// waiting. Delays are expressed in ticks, never in wall-clock time.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-debris/internal/audio"
	"github.com/vovakirdan/space-debris/internal/config"
	"github.com/vovakirdan/space-debris/internal/core"
	"github.com/vovakirdan/space-debris/internal/entity"
)

// Env is the state shared by all tasks of one session.
type Env struct {
	Surface    core.Surface
	Input      core.InputSource
	Registry   *entity.Registry
	Clock      *Clock
	Difficulty *config.DifficultyClock
	Alert      audio.Alerter
	Rand       *rand.Rand
	Stats      *Stats
	Logger     *log.Logger
}

// withDefaults fills optional collaborators so tasks never check for nil.
func (e *Env) withDefaults() *Env {
	if e.Input == nil {
		e.Input = core.NoInput{}
	}
	if e.Registry == nil {
		e.Registry = entity.NewRegistry()
	}
	if e.Alert == nil {
		e.Alert = audio.Nop{}
	}
	if e.Rand == nil {
		e.Rand = rand.New(rand.NewSource(1))
	}
	if e.Stats == nil {
		e.Stats = &Stats{}
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	return e
}

// Clock is the in-game year. Only YearCounter advances it; everything else
// reads it.
type Clock struct {
	year int
}

// NewClock creates a clock starting at year.
func NewClock(year int) *Clock {
	return &Clock{year: year}
}

// Year returns the current in-game year.
func (c *Clock) Year() int {
	return c.year
}

func (c *Clock) advance() {
	c.year++
}

// Stats collects the outcome of a run.
type Stats struct {
	Destroyed int  // Debris destroyed by projectiles
	Fired     int  // Projectiles launched
	GameOver  bool // The ship was hit
	FinalYear int  // Year of the collision
}

// wait counts the resumptions a task still sits out before its next action.
type wait int

// hold makes the current resumption the first of n; the next action
// happens n resumptions later.
func (w *wait) hold(n int) {
	*w = wait(max(n-1, 0))
}

// pending consumes one resumption of the wait and reports whether the task
// must keep waiting.
func (w *wait) pending() bool {
	if *w > 0 {
		*w--
		return true
	}
	return false
}
