package config

import (
	"errors"
	"sort"
)

// ErrInvalidDifficulty reports a spawn table that is not monotonic.
var ErrInvalidDifficulty = errors.New("difficulty table is not monotonic")

// DifficultyClock maps the in-game year to debris pacing and weapon unlocks.
type DifficultyClock struct {
	steps      []SpawnStep
	unlockYear int
}

// NewDifficultyClock creates a clock from a validated spawn table.
func NewDifficultyClock(steps []SpawnStep, unlockYear int) (*DifficultyClock, error) {
	if err := validateSteps(steps); err != nil {
		return nil, err
	}
	sorted := append([]SpawnStep(nil), steps...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FromYear < sorted[j].FromYear })
	return &DifficultyClock{steps: sorted, unlockYear: unlockYear}, nil
}

// SpawnDelay returns the number of ticks between two debris in the given
// year. Zero means spawning is paused for that era.
func (d *DifficultyClock) SpawnDelay(year int) int {
	// Index of the first step starting after year.
	i := sort.Search(len(d.steps), func(i int) bool { return d.steps[i].FromYear > year })
	if i == 0 {
		return 0
	}
	if delay := d.steps[i-1].Delay; delay > 0 {
		return delay
	}
	return 0
}

// FiringUnlocked reports whether the plasma gun is available in year.
func (d *DifficultyClock) FiringUnlocked(year int) bool {
	return year >= d.unlockYear
}

// UnlockYear returns the year the plasma gun becomes available.
func (d *DifficultyClock) UnlockYear() int {
	return d.unlockYear
}

// FirstActiveYear returns the earliest year with spawning enabled.
func (d *DifficultyClock) FirstActiveYear() (int, bool) {
	for _, s := range d.steps {
		if s.Delay > 0 {
			return s.FromYear, true
		}
	}
	return 0, false
}
