package core

import "testing"

func TestRectContains(t *testing.T) {
	// A 24×3 button centered on column 45 of a 90-column grid.
	r := CenteredRect(45, 11, 24, 3)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"label cell", 45, 12, true},
		{"top-left corner", 33, 11, true},
		{"bottom-right cell", 56, 13, true},
		{"right edge is exclusive", 57, 12, false},
		{"bottom edge is exclusive", 45, 14, false},
		{"left of button", 32, 12, false},
		{"above button", 45, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(6, 11, 5, 3)

	if r.Right() != 11 || r.Bottom() != 14 {
		t.Errorf("Right/Bottom = %d/%d, want 11/14", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 8 || cy != 12 {
		t.Errorf("Center() = (%d, %d), want (8, 12)", cx, cy)
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		cx, w int
		x     int
	}{
		{40, 24, 28},
		{45, 16, 37},
		{45, 5, 43},
	}
	for _, tt := range tests {
		r := CenteredRect(tt.cx, 5, tt.w, 3)
		if r.X != tt.x || r.Y != 5 || r.W != tt.w || r.H != 3 {
			t.Errorf("CenteredRect(%d, 5, %d, 3) = %+v, want X=%d", tt.cx, tt.w, r, tt.x)
		}
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{NewRect(0, 0, 1, 1), false},
		{NewRect(3, 3, 0, 2), true},
		{NewRect(3, 3, 2, -1), true},
	}
	for _, tt := range tests {
		if got := tt.r.Empty(); got != tt.want {
			t.Errorf("%+v.Empty() = %v, want %v", tt.r, got, tt.want)
		}
	}
	if NewRect(0, 0, 0, 5).Contains(0, 0) {
		t.Error("empty rect contains a point")
	}
}
