package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-debris/internal/assets"
	"github.com/vovakirdan/space-debris/internal/audio"
	"github.com/vovakirdan/space-debris/internal/config"
	"github.com/vovakirdan/space-debris/internal/core"
	"github.com/vovakirdan/space-debris/internal/entity"
	"github.com/vovakirdan/space-debris/internal/sched"
)

// ErrNoSurface is returned when a session is created without a surface.
var ErrNoSurface = errors.New("game: no surface")

// Options configures a new session.
type Options struct {
	Config  config.GameConfig
	Assets  *assets.Pack
	Surface core.Surface
	Input   core.InputSource // Optional, defaults to no input
	Alert   audio.Alerter    // Optional, defaults to silence
	Seed    int64            // 0 means seed from the current time
	Logger  *log.Logger      // Optional
}

// Session is one run of the game: the scheduler plus the state its tasks
// share.
type Session struct {
	cfg   config.GameConfig
	env   *Env
	sched *sched.Scheduler
	ship  *SpaceshipControl
	seed  int64
}

// NewSession validates the options and schedules the initial population:
// stars, the ship animation and control, the garbage spawner, the year
// counter and the year banner, in that order.
func NewSession(opts Options) (*Session, error) {
	if opts.Surface == nil {
		return nil, ErrNoSurface
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	pack := opts.Assets
	if pack == nil {
		var err error
		if pack, err = assets.LoadEmbedded(); err != nil {
			return nil, fmt.Errorf("game: load sprites: %w", err)
		}
	}
	if len(pack.Ship) == 0 || len(pack.Debris) == 0 {
		return nil, fmt.Errorf("game: %w", assets.ErrMissingFrames)
	}
	difficulty, err := config.NewDifficultyClock(opts.Config.Difficulty, opts.Config.Clock.UnlockYear)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	env := (&Env{
		Surface:    opts.Surface,
		Input:      opts.Input,
		Registry:   entity.NewRegistry(),
		Clock:      NewClock(opts.Config.Clock.StartYear),
		Difficulty: difficulty,
		Alert:      opts.Alert,
		Rand:       rand.New(rand.NewSource(seed)),
		Stats:      &Stats{},
		Logger:     logger,
	}).withDefaults()

	s := &Session{
		cfg:   opts.Config,
		env:   env,
		sched: sched.New(sched.WithFlusher(opts.Surface), sched.WithLogger(logger)),
		seed:  seed,
	}
	s.populate(pack)
	logger.Info("session started", "seed", seed, "year", env.Clock.Year(), "tasks", s.sched.Len())
	return s, nil
}

func (s *Session) populate(pack *assets.Pack) {
	env, cfg := s.env, s.cfg
	rows, cols := env.Surface.Bounds()

	symbols := []rune(cfg.Stars.Symbols)
	for i := 0; i < cfg.Stars.Count && len(symbols) > 0; i++ {
		row := 1 + env.Rand.Intn(max(rows-2, 1))
		col := 1 + env.Rand.Intn(max(cols-2, 1))
		symbol := string(symbols[env.Rand.Intn(len(symbols))])
		dim := cfg.Stars.MinDimTicks + env.Rand.Intn(cfg.Stars.MaxDimTicks-cfg.Stars.MinDimTicks+1)
		s.sched.Add(NewStarBlink(env.Surface, row, col, symbol, dim))
	}

	holder := NewShipFrame(pack.Ship[0])
	s.ship = NewSpaceshipControl(env, holder, pack.GameOver, cfg.Ship, cfg.Projectile, rows/2, cols/2)
	s.sched.Add(
		NewSpaceshipAnimate(holder, pack.Ship, cfg.Ship.FrameHoldTicks),
		s.ship,
		NewGarbageSpawner(env, pack.Debris, pack.Explosion, cfg.Debris),
		NewYearCounter(env.Clock, cfg.Clock.TicksPerYear),
		NewPhraseBanner(env.Surface, env.Clock, cfg.PhraseFor, cfg.Clock.PhraseHoldTicks),
	)
}

// Tick advances the game by one tick. It returns false once no task is left.
func (s *Session) Tick() bool {
	return s.sched.Tick()
}

// Run ticks at the configured rate until ctx is cancelled or no task is
// left.
func (s *Session) Run(ctx context.Context) error {
	return s.sched.Run(ctx, s.TickInterval())
}

// TickInterval returns the wall-clock duration of one tick.
func (s *Session) TickInterval() time.Duration {
	return core.RuntimeConfig{TickRate: s.cfg.TickRate}.TickInterval()
}

// State returns the visible status of the run.
func (s *Session) State() core.GameState {
	return core.GameState{
		Year:      s.env.Clock.Year(),
		Destroyed: s.env.Stats.Destroyed,
		GameOver:  s.env.Stats.GameOver,
		Tasks:     s.sched.Len(),
	}
}

// Stats returns a copy of the run statistics.
func (s *Session) Stats() Stats {
	return *s.env.Stats
}

// StartYear returns the year the run began in.
func (s *Session) StartYear() int {
	return s.cfg.Clock.StartYear
}

// Seed returns the seed of the session's random source.
func (s *Session) Seed() int64 {
	return s.seed
}

// Ticks returns the number of completed ticks.
func (s *Session) Ticks() int {
	return s.sched.Ticks()
}

// Registry exposes the obstacle registry.
func (s *Session) Registry() *entity.Registry {
	return s.env.Registry
}

// Factory creates a session drawing on surface. Frontends call it once per
// game so that restarts get a fresh playfield.
type Factory func(surface core.Surface, input core.InputSource, alert audio.Alerter) (*Session, error)

// NewFactory returns a Factory that builds sessions from fixed settings.
// A zero seed gives every session its own time-based seed.
func NewFactory(cfg config.GameConfig, pack *assets.Pack, seed int64, logger *log.Logger) Factory {
	return func(surface core.Surface, input core.InputSource, alert audio.Alerter) (*Session, error) {
		return NewSession(Options{
			Config:  cfg,
			Assets:  pack,
			Surface: surface,
			Input:   input,
			Alert:   alert,
			Seed:    seed,
			Logger:  logger,
		})
	}
}
