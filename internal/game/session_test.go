package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/space-debris/internal/config"
	"github.com/vovakirdan/space-debris/internal/core"
)

func newTestSession(t *testing.T, seed int64) (*Session, *core.Canvas) {
	t.Helper()
	canvas := core.NewCanvas(24, 80, true)
	s, err := NewSession(Options{
		Config:  config.DefaultGameConfig(),
		Surface: canvas,
		Seed:    seed,
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s, canvas
}

func TestNewSessionPopulation(t *testing.T) {
	s, _ := newTestSession(t, 42)

	cfg := config.DefaultGameConfig()
	want := core.GameState{Year: 1957, Tasks: cfg.Stars.Count + 5}
	if got := s.State(); got != want {
		t.Errorf("State() = %+v, expected %+v", got, want)
	}
	if s.Seed() != 42 {
		t.Errorf("Seed() = %d, expected 42", s.Seed())
	}
	if s.TickInterval() != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 100ms", s.TickInterval())
	}
}

func TestNewSessionErrors(t *testing.T) {
	if _, err := NewSession(Options{Config: config.DefaultGameConfig()}); !errors.Is(err, ErrNoSurface) {
		t.Errorf("error = %v, expected ErrNoSurface", err)
	}

	cfg := config.DefaultGameConfig()
	cfg.Difficulty = []config.SpawnStep{{FromYear: 1957, Delay: 5}, {FromYear: 1960, Delay: 9}}
	_, err := NewSession(Options{Config: cfg, Surface: core.NewCanvas(24, 80, true)})
	if !errors.Is(err, config.ErrInvalidDifficulty) {
		t.Errorf("error = %v, expected ErrInvalidDifficulty", err)
	}
}

func TestSessionDeterministicWithSeed(t *testing.T) {
	a, canvasA := newTestSession(t, 99)
	b, canvasB := newTestSession(t, 99)

	for i := 0; i < 300; i++ {
		a.Tick()
		b.Tick()
	}
	if a.State() != b.State() {
		t.Errorf("states differ: %+v vs %+v", a.State(), b.State())
	}
	if canvasA.String() != canvasB.String() {
		t.Error("same seed produced different screens")
	}
	// A year passes on ticks 16, 31, ... 286.
	if a.State().Year != 1976 {
		t.Errorf("Year = %d after 300 ticks, expected 1976", a.State().Year)
	}
}

func TestSessionRunStopsOnCancel(t *testing.T) {
	s, _ := newTestSession(t, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := s.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, expected deadline exceeded", err)
	}
	if s.Ticks() == 0 {
		t.Error("Run() should tick at least once")
	}
}
