package game

import (
	"github.com/vovakirdan/space-debris/internal/core"
	"github.com/vovakirdan/space-debris/internal/sched"
)

const (
	flashSymbol  = "*"
	muzzleSymbol = "O"
)

func shotSymbol(rowSpeed, colSpeed float64) string {
	switch {
	case colSpeed == 0:
		return "|"
	case rowSpeed == 0:
		return "-"
	}
	return "/"
}

type projectilePhase uint8

const (
	phaseFlash projectilePhase = iota
	phaseMuzzle
	phaseFlight
)

// Projectile is a plasma shot. It shows a two-tick muzzle flash, then flies
// in a straight line until it leaves the playfield or hits an obstacle. On a
// hit it marks the obstacle in the registry and completes.
type Projectile struct {
	env      *Env
	row, col float64
	rowSpeed float64
	colSpeed float64
	symbol   string
	phase    projectilePhase

	drawnRow int
	drawnCol int
	drawnTxt string
}

// NewProjectile creates a shot fired from (row, col).
func NewProjectile(env *Env, row, col int, rowSpeed, colSpeed float64) *Projectile {
	return &Projectile{
		env:      env,
		row:      float64(row),
		col:      float64(col),
		rowSpeed: rowSpeed,
		colSpeed: colSpeed,
		symbol:   shotSymbol(rowSpeed, colSpeed),
	}
}

// Step implements sched.Task.
func (p *Projectile) Step(_ sched.Spawner) bool {
	surface := p.env.Surface
	switch p.phase {
	case phaseFlash:
		p.env.Alert.Alert()
		p.draw(flashSymbol)
		p.phase = phaseMuzzle
		return false
	case phaseMuzzle:
		surface.Erase(p.drawnRow, p.drawnCol, p.drawnTxt)
		p.draw(muzzleSymbol)
		p.phase = phaseFlight
		return false
	}

	surface.Erase(p.drawnRow, p.drawnCol, p.drawnTxt)
	p.row += p.rowSpeed
	p.col += p.colSpeed

	maxRow, maxCol := surface.Bounds()
	if p.row <= 0 || p.row >= float64(maxRow-1) || p.col <= 0 || p.col >= float64(maxCol-1) {
		return true
	}

	row, col := core.Round(p.row), core.Round(p.col)
	if o, hit := p.env.Registry.Collides(core.NewRect(row, col, 1, 1)); hit {
		p.env.Registry.MarkHit(o.ID)
		return true
	}
	p.draw(p.symbol)
	return false
}

func (p *Projectile) draw(symbol string) {
	row, col := core.Round(p.row), core.Round(p.col)
	p.env.Surface.Draw(row, col, symbol, core.StyleNormal)
	p.drawnRow, p.drawnCol, p.drawnTxt = row, col, symbol
}

// Position returns the cell the shot occupies.
func (p *Projectile) Position() (row, col int) {
	return core.Round(p.row), core.Round(p.col)
}
