// Package core provides the playfield primitives shared by the scheduler,
// the tasks and the frontends. It has no terminal dependencies so that task
// logic stays pure and testable.
package core

import (
	"math"
	"strings"
)

// Rect is an axis-aligned bounding box in screen cells.
// Row grows downward, Col grows to the right.
type Rect struct {
	Row, Col   int // Top-left corner
	Rows, Cols int // Height and width
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(row, col, rows, cols int) Rect {
	return Rect{Row: row, Col: col, Rows: rows, Cols: cols}
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int {
	return r.Row + r.Rows
}

// Right returns the first column right of the rectangle.
func (r Rect) Right() int {
	return r.Col + r.Cols
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Rows <= 0 || r.Cols <= 0
}

// Intersects returns true if the two rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.Col >= other.Right() || other.Col >= r.Right() {
		return false
	}
	if r.Row >= other.Bottom() || other.Row >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (row, col) is inside the rectangle.
func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Bottom() && col >= r.Col && col < r.Right()
}

// Center returns the centre cell of the rectangle.
func (r Rect) Center() (row, col int) {
	return r.Row + r.Rows/2, r.Col + r.Cols/2
}

// FrameSize returns the bounding box of a multi-line text frame:
// the number of lines and the widest line, in runes.
func FrameSize(text string) (rows, cols int) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for _, line := range lines {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}
	return len(lines), cols
}

// Round converts a sub-cell coordinate to the nearest screen cell.
func Round(v float64) int {
	return int(math.Round(v))
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
