// Package term runs the game directly on a tcell screen, without Bubble Tea.
// The scheduler drives the frame rate and input is read on its own goroutine.
package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-debris/internal/core"
)

var cellStyles = map[core.Style]tcell.Style{
	core.StyleNormal: tcell.StyleDefault,
	core.StyleDim:    tcell.StyleDefault.Dim(true),
	core.StyleBold:   tcell.StyleDefault.Bold(true),
}

// Screen is a core.Surface backed by a tcell screen.
// Tasks paint on a canvas; Flush copies it to the terminal.
type Screen struct {
	screen tcell.Screen
	canvas *core.Canvas
}

// NewScreen wraps an initialised tcell screen, using its current size.
func NewScreen(screen tcell.Screen) *Screen {
	cols, rows := screen.Size()
	return &Screen{screen: screen, canvas: core.NewCanvas(rows, cols, true)}
}

// Draw implements core.Surface.
func (s *Screen) Draw(row, col int, text string, style core.Style) {
	s.canvas.Draw(row, col, text, style)
}

// Erase implements core.Surface.
func (s *Screen) Erase(row, col int, text string) {
	s.canvas.Erase(row, col, text)
}

// Bounds implements core.Surface.
func (s *Screen) Bounds() (rows, cols int) {
	return s.canvas.Bounds()
}

// Flush implements core.Surface.
func (s *Screen) Flush() {
	s.canvas.Flush()
	rows, cols := s.canvas.Bounds()
	for y := range rows {
		for x := range cols {
			cell := s.canvas.At(y, x)
			s.screen.SetContent(x, y, cell.Rune, nil, cellStyles[cell.Style])
		}
	}
	s.screen.Show()
}

// Canvas returns the canvas behind the screen.
func (s *Screen) Canvas() *core.Canvas {
	return s.canvas
}

// Input collects key events from the event goroutine for the ship.
type Input struct {
	mu  sync.Mutex
	buf core.InputBuffer
}

// Poll implements core.InputSource.
func (in *Input) Poll() core.Controls {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.buf.Poll()
}

// Handle records a key event. It returns true for a quit request.
func (in *Input) Handle(ev tcell.Event) (quit bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		in.buf.Press(-1, 0, false)
	case tcell.KeyDown:
		in.buf.Press(1, 0, false)
	case tcell.KeyLeft:
		in.buf.Press(0, -1, false)
	case tcell.KeyRight:
		in.buf.Press(0, 1, false)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return true
		case 'w', 'k':
			in.buf.Press(-1, 0, false)
		case 's', 'j':
			in.buf.Press(1, 0, false)
		case 'a', 'h':
			in.buf.Press(0, -1, false)
		case 'd', 'l':
			in.buf.Press(0, 1, false)
		case ' ':
			in.buf.Press(0, 0, true)
		}
	}
	return false
}

// Beeper rings the terminal bell through tcell.
type Beeper struct {
	screen tcell.Screen
}

// NewBeeper creates a bell alerter for screen.
func NewBeeper(screen tcell.Screen) *Beeper {
	return &Beeper{screen: screen}
}

// Alert implements audio.Alerter.
func (b *Beeper) Alert() {
	//nolint:errcheck // A missing bell is not worth stopping the game
	b.screen.Beep()
}
