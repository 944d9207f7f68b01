// Package sched implements the cooperative task scheduler that drives the game.
//
// Every tick the scheduler resumes each live task exactly once, in insertion
// order. Tasks spawned during a sweep are buffered and join the live set only
// after the sweep, so a task never runs in the tick that created it. Completed
// tasks are evicted after the sweep and are never resumed again. The scheduler
// returns when no task is left alive.
package sched

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Task is a resumable unit of game logic.
type Task interface {
	// Step advances the task to its next suspension point.
	// It returns true once the task has finished; it is not resumed again.
	Step(sp Spawner) (done bool)
}

// Spawner lets a running task hand new tasks to the scheduler.
type Spawner interface {
	Spawn(t Task)
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func(sp Spawner) bool

// Step implements Task.
func (f TaskFunc) Step(sp Spawner) bool { return f(sp) }

// Flusher publishes a finished tick, typically a render surface.
type Flusher interface {
	Flush()
}

// Scheduler owns the live task list.
type Scheduler struct {
	live     []Task
	pending  []Task
	sweep    []Task
	flusher  Flusher
	logger   *log.Logger
	ticks    int
	sweeping bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithFlusher flushes f once after every tick.
func WithFlusher(f Flusher) Option {
	return func(s *Scheduler) { s.flusher = f }
}

// WithLogger sets the logger used for population changes.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// New creates an empty scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends tasks to the live set. Outside a sweep they run on the next
// tick; during a sweep Add behaves like Spawn.
func (s *Scheduler) Add(tasks ...Task) {
	if s.sweeping {
		s.pending = append(s.pending, tasks...)
		return
	}
	s.live = append(s.live, tasks...)
}

// Spawn implements Spawner. The task joins the live set after the current
// sweep and is first resumed on the following tick.
func (s *Scheduler) Spawn(t Task) {
	if t == nil {
		return
	}
	s.pending = append(s.pending, t)
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	return len(s.live)
}

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() int {
	return s.ticks
}

// Tick performs one sweep over the live tasks and flushes the surface.
// It reports whether any task is still alive afterwards.
func (s *Scheduler) Tick() bool {
	// Snapshot so the sweep is not affected by tasks added mid-iteration.
	s.sweep = append(s.sweep[:0], s.live...)
	s.sweeping = true

	kept := s.live[:0]
	completed := 0
	for _, t := range s.sweep {
		if t.Step(s) {
			completed++
			continue
		}
		kept = append(kept, t)
	}
	s.sweeping = false

	// Drop references held by the snapshot and by the tail of the old slice.
	clear(s.sweep)
	for i := len(kept); i < len(s.live); i++ {
		s.live[i] = nil
	}

	spawned := len(s.pending)
	kept = append(kept, s.pending...)
	clear(s.pending)
	s.pending = s.pending[:0]
	s.live = kept
	s.ticks++

	if s.logger != nil && (spawned > 0 || completed > 0) {
		s.logger.Debug("task population changed",
			"tick", s.ticks,
			"spawned", spawned,
			"completed", completed,
			"live", len(s.live),
		)
	}

	if s.flusher != nil {
		s.flusher.Flush()
	}
	return len(s.live) > 0
}

// Run ticks at a fixed interval until every task has completed or ctx is
// cancelled. It returns nil when the live set empties and ctx.Err() otherwise.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	if len(s.live) == 0 && len(s.pending) == 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if !s.Tick() {
			if s.logger != nil {
				s.logger.Info("all tasks completed", "ticks", s.ticks)
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
