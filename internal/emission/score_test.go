package emission

import "testing"

func TestPoints(t *testing.T) {
	cases := []struct {
		activityType string
		want         int
	}{
		{"bike", 5},
		{"walk", 5},
		{"bus", 3},
		{"train", 3},
		{"car", 0},
		{"flight", 0},
		{"grid_electricity", 0},
		{"unknown_type", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := Points(tc.activityType); got != tc.want {
			t.Errorf("Points(%q) = %d, want %d", tc.activityType, got, tc.want)
		}
	}
}
