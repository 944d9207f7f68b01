package game

import (
	"github.com/vovakirdan/space-debris/internal/assets"
	"github.com/vovakirdan/space-debris/internal/config"
	"github.com/vovakirdan/space-debris/internal/core"
	"github.com/vovakirdan/space-debris/internal/sched"
)

// ShipFrame is the sprite currently shown for the ship. SpaceshipAnimate
// writes it and SpaceshipControl reads it.
type ShipFrame struct {
	frame   assets.Frame
	retired bool
}

// NewShipFrame creates a holder showing first.
func NewShipFrame(first assets.Frame) *ShipFrame {
	return &ShipFrame{frame: first}
}

// Current returns the frame to draw this tick.
func (f *ShipFrame) Current() assets.Frame {
	return f.frame
}

// Retire stops the animation once the ship is gone.
func (f *ShipFrame) Retire() {
	f.retired = true
}

// Retired reports whether the ship has been destroyed.
func (f *ShipFrame) Retired() bool {
	return f.retired
}

// SpaceshipAnimate rotates the ship sprites, holding each for a fixed number
// of ticks. It completes after the ship frame is retired.
type SpaceshipAnimate struct {
	holder *ShipFrame
	frames []assets.Frame
	hold   int
	next   int
	wait   wait
}

// NewSpaceshipAnimate creates the animation task. frames must not be empty.
func NewSpaceshipAnimate(holder *ShipFrame, frames []assets.Frame, holdTicks int) *SpaceshipAnimate {
	return &SpaceshipAnimate{holder: holder, frames: frames, hold: max(holdTicks, 1)}
}

// Step implements sched.Task.
func (a *SpaceshipAnimate) Step(_ sched.Spawner) bool {
	if a.holder.Retired() {
		return true
	}
	if a.wait.pending() {
		return false
	}
	a.holder.frame = a.frames[a.next]
	a.next = (a.next + 1) % len(a.frames)
	a.wait.hold(a.hold)
	return false
}

// SpaceshipControl moves the ship from player input, fires the plasma gun
// once it is unlocked and ends the game on a collision with debris.
type SpaceshipControl struct {
	env        *Env
	holder     *ShipFrame
	gameOver   assets.Frame
	ship       config.ShipConfig
	projectile config.ProjectileConfig

	row, col float64
	vel      Velocity

	drawn    bool
	drawnRow int
	drawnCol int
	drawnTxt string
}

// NewSpaceshipControl places the ship with its top-left corner at (row, col).
func NewSpaceshipControl(env *Env, holder *ShipFrame, gameOver assets.Frame, ship config.ShipConfig, projectile config.ProjectileConfig, row, col int) *SpaceshipControl {
	return &SpaceshipControl{
		env:        env,
		holder:     holder,
		gameOver:   gameOver,
		ship:       ship,
		projectile: projectile,
		row:        float64(row),
		col:        float64(col),
	}
}

// Position returns the cell of the ship's top-left corner.
func (c *SpaceshipControl) Position() (row, col int) {
	return core.Round(c.row), core.Round(c.col)
}

// Velocity returns the current speed.
func (c *SpaceshipControl) Velocity() Velocity {
	return c.vel
}

// Step implements sched.Task.
func (c *SpaceshipControl) Step(sp sched.Spawner) bool {
	surface := c.env.Surface
	if c.drawn {
		surface.Erase(c.drawnRow, c.drawnCol, c.drawnTxt)
		c.drawn = false
	}

	in := c.env.Input.Poll()
	c.vel = UpdateVelocity(c.vel, in.Row, in.Col, c.ship)

	frame := c.holder.Current()
	maxRow, maxCol := surface.Bounds()
	// Keep the whole sprite inside the border.
	c.row = core.ClampF(c.row+c.vel.Row, 1, float64(max(maxRow-frame.Rows-1, 1)))
	c.col = core.ClampF(c.col+c.vel.Col, 1, float64(max(maxCol-frame.Cols-1, 1)))
	row, col := c.Position()

	if in.Fire && c.env.Difficulty.FiringUnlocked(c.env.Clock.Year()) {
		sp.Spawn(NewProjectile(c.env, row, col+frame.Cols/2, c.projectile.RowSpeed, c.projectile.ColumnSpeed))
		c.env.Stats.Fired++
	}

	if _, hit := c.env.Registry.Collides(core.NewRect(row, col, frame.Rows, frame.Cols)); hit {
		sp.Spawn(NewGameOverBanner(surface, c.gameOver, maxRow/2, maxCol/2))
		c.holder.Retire()
		c.env.Stats.GameOver = true
		c.env.Stats.FinalYear = c.env.Clock.Year()
		c.env.Logger.Info("ship destroyed", "year", c.env.Clock.Year(), "destroyed", c.env.Stats.Destroyed)
		return true
	}

	surface.Draw(row, col, frame.Text, core.StyleNormal)
	c.drawn, c.drawnRow, c.drawnCol, c.drawnTxt = true, row, col, frame.Text
	return false
}
