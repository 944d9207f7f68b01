package core

import "strings"

// Cell is a single styled character of a Canvas.
type Cell struct {
	Rune  rune
	Style Style
}

var blank = Cell{Rune: ' ', Style: StyleNormal}

// Canvas is an in-memory Surface. Tasks draw into the back buffer; Flush
// copies it to the front buffer that frontends read from, so a frontend
// always sees a whole tick.
type Canvas struct {
	rows   int
	cols   int
	back   [][]Cell
	front  [][]Cell
	border bool
}

// NewCanvas creates a blank canvas. With border set, a frame is redrawn
// around the playfield on every flush.
func NewCanvas(rows, cols int, border bool) *Canvas {
	c := &Canvas{rows: rows, cols: cols, border: border}
	c.back = allocate(rows, cols)
	c.front = allocate(rows, cols)
	return c
}

func allocate(rows, cols int) [][]Cell {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = blank
		}
	}
	return cells
}

// Bounds implements Surface.
func (c *Canvas) Bounds() (rows, cols int) {
	return c.rows, c.cols
}

// Draw implements Surface.
func (c *Canvas) Draw(row, col int, text string, style Style) {
	c.paint(row, col, text, style, false)
}

// Erase implements Surface.
func (c *Canvas) Erase(row, col int, text string) {
	c.paint(row, col, text, StyleNormal, true)
}

func (c *Canvas) paint(row, col int, text string, style Style, erase bool) {
	for dy, line := range strings.Split(text, "\n") {
		y := row + dy
		if y < 0 {
			continue
		}
		if y >= c.rows {
			break
		}
		x := col - 1
		for _, r := range line {
			x++
			if x < 0 || r == ' ' || r == '\r' {
				continue
			}
			if x >= c.cols {
				break
			}
			if erase {
				c.back[y][x] = blank
			} else {
				c.back[y][x] = Cell{Rune: r, Style: style}
			}
		}
	}
}

// Flush implements Surface.
func (c *Canvas) Flush() {
	if c.border {
		c.drawBorder()
	}
	for r := range c.back {
		copy(c.front[r], c.back[r])
	}
}

func (c *Canvas) drawBorder() {
	if c.rows < 2 || c.cols < 2 {
		return
	}
	edge := func(row, col int, r rune) { c.back[row][col] = Cell{Rune: r} }
	for x := 1; x < c.cols-1; x++ {
		edge(0, x, '─')
		edge(c.rows-1, x, '─')
	}
	for y := 1; y < c.rows-1; y++ {
		edge(y, 0, '│')
		edge(y, c.cols-1, '│')
	}
	edge(0, 0, '┌')
	edge(0, c.cols-1, '┐')
	edge(c.rows-1, 0, '└')
	edge(c.rows-1, c.cols-1, '┘')
}

// At returns the flushed cell at (row, col); blank when out of bounds.
func (c *Canvas) At(row, col int) Cell {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return blank
	}
	return c.front[row][col]
}

// Pending returns the cell at (row, col) of the back buffer.
func (c *Canvas) Pending(row, col int) Cell {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return blank
	}
	return c.back[row][col]
}

// Row returns the flushed row as plain text.
func (c *Canvas) Row(row int) string {
	if row < 0 || row >= c.rows {
		return strings.Repeat(" ", c.cols)
	}
	var sb strings.Builder
	for _, cell := range c.front[row] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String converts the flushed buffer to text, one line per row.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.rows*c.cols + c.rows)
	for r := 0; r < c.rows; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(c.Row(r))
	}
	return sb.String()
}
