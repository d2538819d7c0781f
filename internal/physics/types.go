package physics

import "math"

// BallProperties are the physical constants of the ball for one run.
type BallProperties struct {
	Mass            float64 `json:"mass"`             // kg
	Radius          float64 `json:"radius"`           // m
	DragCoefficient float64 `json:"drag_coefficient"` // C_d
	LiftCoefficient float64 `json:"lift_coefficient"` // C_L
}

// CrossSection returns the frontal area π·r².
func (b BallProperties) CrossSection() float64 {
	return math.Pi * b.Radius * b.Radius
}

// LaunchAngle is the release direction in degrees.
type LaunchAngle struct {
	Horizontal float64 `json:"horizontal"`
	Vertical   float64 `json:"vertical"`
}

// InitialConditions fully describe the ball at t=0.
type InitialConditions struct {
	Speed        float64     `json:"speed"` // m/s
	Angle        LaunchAngle `json:"angle"`
	Spin         Vector3     `json:"spin"`          // rpm per axis: x backspin/topspin, y side break, z bullet spin
	ReleasePoint Vector3     `json:"release_point"` // m
}

// EnvironmentConditions are constant for the duration of a run.
type EnvironmentConditions struct {
	Gravity     float64 `json:"gravity"`     // m/s²
	Temperature float64 `json:"temperature"` // °C
	Pressure    float64 `json:"pressure"`    // hPa
	Humidity    float64 `json:"humidity"`    // %
	Wind        Vector3 `json:"wind"`        // m/s, carried but not applied to the force model
}

// AirDensity derives ρ for these conditions.
func (e EnvironmentConditions) AirDensity() float64 {
	return AirDensity(e.Temperature, e.Pressure, e.Humidity)
}

// PitchParameters is the sole input to a simulation run.
type PitchParameters struct {
	Ball        BallProperties        `json:"ball"`
	Initial     InitialConditions     `json:"initial"`
	Environment EnvironmentConditions `json:"environment"`
}

// SimulationState is the driver's working state while stepping. Spin is
// carried unchanged; no spin decay is modelled.
type SimulationState struct {
	Position Vector3 `json:"position"`
	Velocity Vector3 `json:"velocity"`
	Spin     Vector3 `json:"spin"`
	Time     float64 `json:"time"`
}

// TrajectoryPoint is one recorded sample. Forces is set only when force
// recording was requested.
type TrajectoryPoint struct {
	Position Vector3         `json:"position"`
	Forces   *ForceBreakdown `json:"forces,omitempty"`
}

// SimulationResult is the immutable output of one run.
type SimulationResult struct {
	Trajectory      []TrajectoryPoint `json:"trajectory"`
	FlightTime      float64           `json:"flight_time"`
	MaxHeight       float64           `json:"max_height"`
	FinalPosition   Vector3           `json:"final_position"`
	FinalVelocity   Vector3           `json:"final_velocity"`
	PlateHeight     float64           `json:"plate_height"`
	HorizontalBreak float64           `json:"horizontal_break"`
	VerticalDrop    float64           `json:"vertical_drop"`
	ReachedPlate    bool              `json:"reached_plate"`
	IsStrike        bool              `json:"is_strike"`
}
