package core

import "testing"

// The pause button as drawn on an 80-column screen: "Pause" with one cell
// of padding on each side, one row tall.
func TestRectContainsButton(t *testing.T) {
	btn := NewRect(36, 0, 7, 1)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"label start", 37, 0, true},
		{"left padding", 36, 0, true},
		{"right padding", 42, 0, true},
		{"past right edge", 43, 0, false},
		{"before left edge", 35, 0, false},
		{"row below", 39, 1, false},
		{"above screen", 39, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := btn.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(4, 2, 9, 3)

	if r.Right() != 13 || r.Bottom() != 5 {
		t.Errorf("Right(), Bottom() = %d, %d, expected 13, 5", r.Right(), r.Bottom())
	}

	// The center must be a hit, it is where the pause key taps.
	cx, cy := r.Center()
	if cx != 8 || cy != 3 || !r.Contains(cx, cy) {
		t.Errorf("Center() = (%d, %d), expected (8, 3) inside the rect", cx, cy)
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{NewRect(0, 0, 1, 1), false},
		{NewRect(0, 0, 0, 1), true},
		{NewRect(0, 0, 3, 0), true},
		{NewRect(5, 5, -2, 4), true},
	}

	for _, tc := range tests {
		if got := tc.r.Empty(); got != tc.want {
			t.Errorf("%+v.Empty() = %v, expected %v", tc.r, got, tc.want)
		}
		if tc.want && tc.r.Contains(tc.r.X, tc.r.Y) {
			t.Errorf("empty %+v contains its corner", tc.r)
		}
	}
}
