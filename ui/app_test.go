package ui

import "testing"

func TestExitStatusAfter(t *testing.T) {
	tests := []struct {
		name          string
		gtkStatus     int
		persistFailed bool
		expected      int
	}{
		{"clean run", 0, false, 0},
		{"persist failed", 0, true, 1},
		{"gtk error wins", 2, false, 2},
		{"gtk error with persist failure", 2, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitStatusAfter(tt.gtkStatus, tt.persistFailed); got != tt.expected {
				t.Errorf("exitStatusAfter(%d, %v) = %d, want %d",
					tt.gtkStatus, tt.persistFailed, got, tt.expected)
			}
		})
	}
}
