package game

import (
	"github.com/vovakirdan/space-debris/internal/core"
	"github.com/vovakirdan/space-debris/internal/sched"
)

// Blink phase durations after the dim phase, in ticks.
const (
	starNormalTicks = 3
	starBoldTicks   = 5
)

type starPhase struct {
	style core.Style
	ticks int
}

// StarBlink cycles one background star through dim, normal, bold and
// normal again. It never completes.
type StarBlink struct {
	surface core.Surface
	row     int
	col     int
	symbol  string
	phases  [4]starPhase
	next    int
	wait    wait
}

// NewStarBlink creates a star at (row, col) that stays dim for dimTicks.
func NewStarBlink(surface core.Surface, row, col int, symbol string, dimTicks int) *StarBlink {
	return &StarBlink{
		surface: surface,
		row:     row,
		col:     col,
		symbol:  symbol,
		phases: [4]starPhase{
			{core.StyleDim, max(dimTicks, 1)},
			{core.StyleNormal, starNormalTicks},
			{core.StyleBold, starBoldTicks},
			{core.StyleNormal, starNormalTicks},
		},
	}
}

// Step implements sched.Task.
func (s *StarBlink) Step(_ sched.Spawner) bool {
	if s.wait.pending() {
		return false
	}
	p := s.phases[s.next]
	s.surface.Draw(s.row, s.col, s.symbol, p.style)
	s.wait.hold(p.ticks)
	s.next = (s.next + 1) % len(s.phases)
	return false
}
