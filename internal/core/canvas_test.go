package core

import (
	"strings"
	"testing"
)

func TestCanvasDrawIsTransparentAndClipped(t *testing.T) {
	c := NewCanvas(5, 10, false)

	c.Draw(1, 1, "XXX", StyleNormal)
	c.Draw(1, 1, "a b", StyleBold)
	c.Flush()

	if got := c.Row(1); got != " aXb      " {
		t.Errorf("Row(1) = %q, spaces should not overwrite", got)
	}
	if c.At(1, 1).Style != StyleBold {
		t.Errorf("At(1, 1).Style = %v, expected bold", c.At(1, 1).Style)
	}

	// Out of bounds must not panic
	c.Draw(-3, -3, "####\n####\n####\n####", StyleNormal)
	c.Draw(4, 8, "long text", StyleNormal)
	c.Flush()

	if c.At(0, 0).Rune != '#' {
		t.Errorf("At(0, 0) = %q, expected the visible part of a clipped frame", c.At(0, 0).Rune)
	}
	if got := c.Row(4); !strings.HasSuffix(got, "lo") {
		t.Errorf("Row(4) = %q, expected clipped text at the right edge", got)
	}
}

func TestCanvasEraseOnlyCoversFrameCells(t *testing.T) {
	c := NewCanvas(3, 6, false)
	c.Draw(0, 0, "abcdef", StyleNormal)
	c.Erase(0, 1, "x x")
	c.Flush()

	if got := c.Row(0); got != "a c ef" {
		t.Errorf("Row(0) = %q, expected %q", got, "a c ef")
	}
}

func TestCanvasFlushPublishesWholeTick(t *testing.T) {
	c := NewCanvas(3, 3, false)
	c.Draw(1, 1, "*", StyleDim)

	if c.At(1, 1).Rune != ' ' {
		t.Error("Draw should not be visible before Flush")
	}
	if c.Pending(1, 1).Rune != '*' {
		t.Error("Pending should expose the back buffer")
	}

	c.Flush()
	if c.At(1, 1) != (Cell{Rune: '*', Style: StyleDim}) {
		t.Errorf("At(1, 1) = %+v after Flush", c.At(1, 1))
	}
}

func TestCanvasBorder(t *testing.T) {
	c := NewCanvas(4, 5, true)
	c.Flush()

	want := []string{"┌───┐", "│   │", "│   │", "└───┘"}
	for i, line := range want {
		if got := c.Row(i); got != line {
			t.Errorf("Row(%d) = %q, expected %q", i, got, line)
		}
	}

	// Erasing over the border is repaired by the next flush
	c.Erase(0, 0, "#####")
	c.Flush()
	if got := c.Row(0); got != want[0] {
		t.Errorf("border not redrawn: %q", got)
	}

	rows, cols := c.Bounds()
	if rows != 4 || cols != 5 {
		t.Errorf("Bounds() = (%d, %d), expected (4, 5)", rows, cols)
	}
}

func TestInputBuffer(t *testing.T) {
	var b InputBuffer

	if !b.Poll().Idle() {
		t.Fatal("empty buffer should poll idle")
	}

	b.Press(-1, 0, false)
	b.Press(0, 1, false)
	b.Press(1, 0, false)
	b.Press(0, 0, true)

	got := b.Poll()
	want := Controls{Row: 1, Col: 1, Fire: true}
	if got != want {
		t.Errorf("Poll() = %+v, expected %+v", got, want)
	}
	if !b.Poll().Idle() {
		t.Error("Poll should clear the buffer")
	}
}
