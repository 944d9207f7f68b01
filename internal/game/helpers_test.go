package game

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-debris/internal/assets"
	"github.com/vovakirdan/space-debris/internal/audio"
	"github.com/vovakirdan/space-debris/internal/config"
	"github.com/vovakirdan/space-debris/internal/core"
	"github.com/vovakirdan/space-debris/internal/entity"
	"github.com/vovakirdan/space-debris/internal/sched"
)

type surfaceOp struct {
	erase bool
	row   int
	col   int
	text  string
	style core.Style
	tick  int
}

// recordingSurface is a canvas that remembers every draw and erase.
type recordingSurface struct {
	*core.Canvas
	ops  []surfaceOp
	tick int
}

func newRecordingSurface(rows, cols int) *recordingSurface {
	return &recordingSurface{Canvas: core.NewCanvas(rows, cols, true), tick: 1}
}

func (s *recordingSurface) Draw(row, col int, text string, style core.Style) {
	s.ops = append(s.ops, surfaceOp{row: row, col: col, text: text, style: style, tick: s.tick})
	s.Canvas.Draw(row, col, text, style)
}

func (s *recordingSurface) Erase(row, col int, text string) {
	s.ops = append(s.ops, surfaceOp{erase: true, row: row, col: col, text: text, tick: s.tick})
	s.Canvas.Erase(row, col, text)
}

func (s *recordingSurface) Flush() {
	s.Canvas.Flush()
	s.tick++
}

// draws returns the draw operations of text, in order.
func (s *recordingSurface) draws(text string) []surfaceOp {
	var out []surfaceOp
	for _, op := range s.ops {
		if !op.erase && op.text == text {
			out = append(out, op)
		}
	}
	return out
}

// scriptedInput replays one Controls value per poll, then goes idle.
type scriptedInput struct {
	script []core.Controls
}

func (in *scriptedInput) Poll() core.Controls {
	if len(in.script) == 0 {
		return core.Controls{}
	}
	c := in.script[0]
	in.script = in.script[1:]
	return c
}

func repeat(c core.Controls, n int) []core.Controls {
	out := make([]core.Controls, n)
	for i := range out {
		out[i] = c
	}
	return out
}

type testEnv struct {
	*Env
	surface *recordingSurface
	alerts  *audio.Counter
	sched   *sched.Scheduler
}

func newTestEnv(t *testing.T, rows, cols, year int) *testEnv {
	t.Helper()
	cfg := config.DefaultGameConfig()
	difficulty, err := config.NewDifficultyClock(cfg.Difficulty, cfg.Clock.UnlockYear)
	if err != nil {
		t.Fatalf("NewDifficultyClock() error = %v", err)
	}
	surface := newRecordingSurface(rows, cols)
	alerts := &audio.Counter{}
	env := &Env{
		Surface:    surface,
		Registry:   entity.NewRegistry(),
		Clock:      NewClock(year),
		Difficulty: difficulty,
		Alert:      alerts,
		Rand:       rand.New(rand.NewSource(7)),
		Stats:      &Stats{},
		Logger:     log.New(io.Discard),
	}
	return &testEnv{
		Env:     env.withDefaults(),
		surface: surface,
		alerts:  alerts,
		sched:   sched.New(sched.WithFlusher(surface)),
	}
}

func (e *testEnv) ticks(n int) {
	for i := 0; i < n; i++ {
		e.sched.Tick()
	}
}

var (
	testShip = []assets.Frame{
		assets.NewFrame("ship_1", "  .\n /|\\\n |_|"),
		assets.NewFrame("ship_2", "  .\n /|\\\n |=|"),
	}
	testDebris    = assets.NewFrame("trash", "###\n###")
	testGameOver  = assets.NewFrame("game_over", "GAME\nOVER")
	testExplosion = []assets.Frame{
		assets.NewFrame("boom_1", " * \n***"),
		assets.NewFrame("boom_2", "( )\n(_)"),
	}
)
