package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "adjacent rows (no overlap)",
			a:        NewRect(0, 0, 3, 3),
			b:        NewRect(3, 0, 3, 3),
			expected: false,
		},
		{
			name:     "adjacent columns (no overlap)",
			a:        NewRect(0, 0, 3, 3),
			b:        NewRect(0, 3, 3, 3),
			expected: false,
		},
		{
			name:     "single cell inside",
			a:        NewRect(0, 4, 3, 5),
			b:        NewRect(2, 6, 1, 1),
			expected: true,
		},
		{
			name:     "corner cell overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "empty rect never collides",
			a:        NewRect(0, 0, 0, 10),
			b:        NewRect(0, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() is not symmetric: got %v", got)
			}
		})
	}
}

func TestRectContainsAndCenter(t *testing.T) {
	r := NewRect(2, 4, 3, 6)

	if !r.Contains(2, 4) || !r.Contains(4, 9) {
		t.Error("Contains should include both corners")
	}
	if r.Contains(5, 4) || r.Contains(2, 10) {
		t.Error("Contains should exclude the bottom and right edges")
	}

	row, col := r.Center()
	if row != 3 || col != 7 {
		t.Errorf("Center() = (%d, %d), expected (3, 7)", row, col)
	}
}

func TestFrameSize(t *testing.T) {
	tests := []struct {
		text       string
		rows, cols int
	}{
		{"*", 1, 1},
		{"  .  \n /|\\ \n", 2, 5},
		{"ab\nabcd\nabc", 3, 4},
		{"é\nüü", 2, 2},
	}

	for _, tc := range tests {
		rows, cols := FrameSize(tc.text)
		if rows != tc.rows || cols != tc.cols {
			t.Errorf("FrameSize(%q) = (%d, %d), expected (%d, %d)", tc.text, rows, cols, tc.rows, tc.cols)
		}
	}
}

func TestRoundAndClamp(t *testing.T) {
	if Round(2.5) != 3 || Round(-0.4) != 0 || Round(4.49) != 4 {
		t.Error("Round should pick the nearest cell")
	}
	if Clamp(5, 1, 3) != 3 || Clamp(-1, 1, 3) != 1 || Clamp(2, 1, 3) != 2 {
		t.Error("Clamp returned a value outside the range")
	}
	if ClampF(2.5, -2, 2) != 2 || ClampF(-3, -2, 2) != -2 {
		t.Error("ClampF returned a value outside the range")
	}
}
