package physics

import "math"

// IsStrike reports whether a ball of the given radius crossing the judgment
// plane at (x, y) touches the strike zone. The zone is expanded by the ball
// radius on every side, so a ball whose edge clips the zone is a strike.
func IsStrike(x, y, ballRadius float64) bool {
	return math.Abs(x) <= HalfPlateWidth+ballRadius &&
		y >= StrikeZoneBottom-ballRadius &&
		y <= StrikeZoneTop+ballRadius
}
