package core

// Style is the display attribute of a drawn cell.
type Style uint8

const (
	StyleNormal Style = iota
	StyleDim
	StyleBold
)

// String returns a human-readable name for the style.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleDim:
		return "dim"
	case StyleBold:
		return "bold"
	default:
		return "unknown"
	}
}

// Surface is the display a task paints on.
// Text may span several lines; spaces are transparent and never overwrite
// what is already on the surface. Cells outside the bounds are clipped.
type Surface interface {
	// Draw paints text with its top-left corner at (row, col).
	Draw(row, col int, text string, style Style)

	// Erase blanks every non-space cell that text would cover at (row, col).
	Erase(row, col int, text string)

	// Flush publishes everything drawn since the previous flush.
	Flush()

	// Bounds returns the number of rows and columns of the surface.
	Bounds() (rows, cols int)
}

// Controls is the player input sampled for one tick.
type Controls struct {
	Row  int  // -1 up, 0 none, 1 down
	Col  int  // -1 left, 0 none, 1 right
	Fire bool // Fire requested
}

// Idle reports whether no input was given.
func (c Controls) Idle() bool {
	return c.Row == 0 && c.Col == 0 && !c.Fire
}

// InputSource is polled once per tick by the ship; it never blocks.
type InputSource interface {
	Poll() Controls
}

// InputBuffer accumulates key presses between ticks.
// The last direction pressed on each axis wins; fire latches until polled.
type InputBuffer struct {
	pending Controls
}

// Press records one directional or fire key.
func (b *InputBuffer) Press(row, col int, fire bool) {
	if row != 0 {
		b.pending.Row = Clamp(row, -1, 1)
	}
	if col != 0 {
		b.pending.Col = Clamp(col, -1, 1)
	}
	if fire {
		b.pending.Fire = true
	}
}

// Poll returns the accumulated controls and clears the buffer.
func (b *InputBuffer) Poll() Controls {
	c := b.pending
	b.pending = Controls{}
	return c
}

// NoInput is an InputSource that never reports any key.
type NoInput struct{}

// Poll implements InputSource.
func (NoInput) Poll() Controls { return Controls{} }
