package presets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pitchlab/backend/internal/physics"
)

// Baseline ball and field values. These match the frontend defaults.
const (
	BaseballMass    = 0.145  // kg
	BaseballRadius  = 0.0366 // m
	DragCoefficient = 0.4
	LiftCoefficient = 1.0
	ReleaseHeight   = 2.0 // m
)

var ErrUnknownPitchType = errors.New("unknown pitch type")

// PitchType names a preset.
type PitchType string

const (
	Fastball    PitchType = "fastball"
	Curveball   PitchType = "curveball"
	Slider      PitchType = "slider"
	Changeup    PitchType = "changeup"
	Knuckleball PitchType = "knuckleball"
)

// Preset is a named, fully specified pitch.
type Preset struct {
	Type        PitchType               `json:"type"`
	Description string                  `json:"description"`
	Params      physics.PitchParameters `json:"params"`
}

type pitchDef struct {
	speed       float64
	angle       physics.LaunchAngle
	spin        physics.Vector3 // rpm
	description string
}

// Spin x is backspin (+) or topspin (-), y is side spin.
var pitchDefs = map[PitchType]pitchDef{
	Fastball: {
		speed: 40, angle: physics.LaunchAngle{Vertical: -2}, spin: physics.Vector3{X: 2400},
		description: "The fastest pitch. Backspin keeps it from dropping as much.",
	},
	Curveball: {
		speed: 30, angle: physics.LaunchAngle{Vertical: 6}, spin: physics.Vector3{X: -2800},
		description: "A breaking ball with a large drop driven by topspin.",
	},
	Slider: {
		speed: 35, angle: physics.LaunchAngle{Horizontal: 1, Vertical: -1}, spin: physics.Vector3{X: 1500, Y: 500},
		description: "A breaking ball with strong lateral movement away from the batter.",
	},
	Changeup: {
		speed: 32, angle: physics.LaunchAngle{Vertical: 0.5}, spin: physics.Vector3{X: 1200},
		description: "Thrown with a fastball motion but slower, to upset the batter's timing.",
	},
	Knuckleball: {
		speed: 28, angle: physics.LaunchAngle{Vertical: 4}, spin: physics.Vector3{X: 10, Y: 10, Z: 10},
		description: "Almost no spin, so the flight is erratic.",
	},
}

// DefaultBall is a regulation baseball.
func DefaultBall() physics.BallProperties {
	return physics.BallProperties{
		Mass:            BaseballMass,
		Radius:          BaseballRadius,
		DragCoefficient: DragCoefficient,
		LiftCoefficient: LiftCoefficient,
	}
}

// DefaultEnvironment is a standard sea-level day.
func DefaultEnvironment() physics.EnvironmentConditions {
	return physics.EnvironmentConditions{
		Gravity:     9.81,
		Temperature: 20,
		Pressure:    1013.25,
		Humidity:    50,
	}
}

// DefaultParameters is the pitch the UI loads on first visit.
func DefaultParameters() physics.PitchParameters {
	return physics.PitchParameters{
		Ball: DefaultBall(),
		Initial: physics.InitialConditions{
			Speed:        35,
			Spin:         physics.Vector3{X: 2000},
			ReleasePoint: physics.Vector3{Y: ReleaseHeight},
		},
		Environment: DefaultEnvironment(),
	}
}

// Get returns the preset for name.
func Get(name PitchType) (Preset, error) {
	s, ok := pitchDefs[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPitchType, name)
	}

	return Preset{
		Type:        name,
		Description: s.description,
		Params: physics.PitchParameters{
			Ball: DefaultBall(),
			Initial: physics.InitialConditions{
				Speed:        s.speed,
				Angle:        s.angle,
				Spin:         s.spin,
				ReleasePoint: physics.Vector3{Y: ReleaseHeight},
			},
			Environment: DefaultEnvironment(),
		},
	}, nil
}

// Names returns every preset name in a stable order.
func Names() []PitchType {
	names := make([]PitchType, 0, len(pitchDefs))
	for n := range pitchDefs {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// All returns every preset, ordered by name.
func All() []Preset {
	names := Names()
	out := make([]Preset, 0, len(names))
	for _, n := range names {
		p, _ := Get(n)
		out = append(out, p)
	}
	return out
}

// ThrowPowerSpeed maps the simple-mode power slider (1-10) to a launch speed.
func ThrowPowerSpeed(power int) float64 {
	if power < 1 {
		power = 1
	}
	if power > 10 {
		power = 10
	}
	return 20 + float64(power)*3
}

// FromSimpleInputs returns the preset for name with its speed replaced by the
// simple-mode power mapping.
func FromSimpleInputs(name PitchType, power int) (physics.PitchParameters, error) {
	p, err := Get(name)
	if err != nil {
		return physics.PitchParameters{}, err
	}
	p.Params.Initial.Speed = ThrowPowerSpeed(power)
	return p.Params, nil
}
