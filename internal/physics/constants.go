package physics

import "math"

// Field geometry and strike-zone dimensions, in metres.
// These MUST match the values the frontend uses to draw the plate and zone.
const (
	MoundToPlate     = 18.44 // release to home plate (60.5 ft)
	HalfPlateWidth   = 0.22
	StrikeZoneBottom = 0.5
	StrikeZoneTop    = 1.1

	rpmToRadPerSec = 2 * math.Pi / 60
	degToRad       = math.Pi / 180
)

// JudgmentPlaneZ is the z-coordinate at which a pitch is judged.
const JudgmentPlaneZ = -MoundToPlate
