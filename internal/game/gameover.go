package game

import (
	"github.com/vovakirdan/space-debris/internal/assets"
	"github.com/vovakirdan/space-debris/internal/core"
	"github.com/vovakirdan/space-debris/internal/sched"
)

// GameOverBanner redraws the game over sprite centred on a cell every tick.
// It never completes, so the playfield keeps animating after the ship is
// gone.
type GameOverBanner struct {
	surface core.Surface
	frame   assets.Frame
	row     int
	col     int
}

// NewGameOverBanner creates a banner centred on (centerRow, centerCol).
func NewGameOverBanner(surface core.Surface, frame assets.Frame, centerRow, centerCol int) *GameOverBanner {
	return &GameOverBanner{
		surface: surface,
		frame:   frame,
		row:     centerRow - frame.Rows/2,
		col:     centerCol - frame.Cols/2,
	}
}

// Step implements sched.Task.
func (b *GameOverBanner) Step(_ sched.Spawner) bool {
	b.surface.Draw(b.row, b.col, b.frame.Text, core.StyleBold)
	return false
}
