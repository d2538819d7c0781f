package physics

import "testing"

func TestIsStrike(t *testing.T) {
	const r = 0.0366
	const eps = 1e-9
	edge := HalfPlateWidth + r

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"zone_centre", 0, 0.8, true},
		{"far_outside", 0.5, 0.8, false},
		{"inside_width_edge", edge - eps, 0.8, true},
		{"outside_width_edge", edge + eps, 0.8, false},
		{"inside_width_edge_left", -(edge - eps), 0.8, true},
		{"outside_width_edge_left", -(edge + eps), 0.8, false},
		{"ball_clips_top", 0, StrikeZoneTop + r - eps, true},
		{"above_top", 0, StrikeZoneTop + r + eps, false},
		{"ball_clips_bottom", 0, StrikeZoneBottom - r + eps, true},
		{"below_bottom", 0, StrikeZoneBottom - r - eps, false},
		{"corner_outside", edge + eps, StrikeZoneTop + r + eps, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStrike(tt.x, tt.y, r); got != tt.want {
				t.Errorf("IsStrike(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestIsStrikeExpandsByRadius(t *testing.T) {
	// Centre outside the bare zone but the ball still touches it.
	x := HalfPlateWidth + 0.02
	if !IsStrike(x, 0.8, 0.0366) {
		t.Error("ball overlapping the zone edge should be a strike")
	}
	if IsStrike(x, 0.8, 0) {
		t.Error("a point outside the zone with zero radius should be a ball")
	}
}
