package physics

import (
	"math"
	"slices"
)

// Options are collaborator-supplied run settings. The engine has no built-in
// defaults; see config.Config.SimulationOptions for the service defaults.
type Options struct {
	Dt           float64 `json:"dt"`       // s
	MaxTime      float64 `json:"max_time"` // s
	Scheme       Scheme  `json:"scheme"`
	RecordForces bool    `json:"record_forces"`
	// NaturalAim rotates the horizontal launch angle so that a zero input
	// angle aims from the release point at plate centre.
	NaturalAim bool `json:"natural_aim"`
}

// Simulator steps a single pitch. A Simulator is not safe for concurrent use;
// independent runs should each use their own.
type Simulator struct {
	params    PitchParameters
	opts      Options
	integrate Integrator
	rho       float64

	state      SimulationState
	steps      int
	trajectory []TrajectoryPoint
	maxHeight  float64

	reachedPlate bool
	plateX       float64
	plateHeight  float64

	done bool
}

// NewSimulator validates the inputs, builds the launch state and records the
// release point as the first sample.
func NewSimulator(params PitchParameters, opts Options) (*Simulator, error) {
	if err := validate(params, opts); err != nil {
		return nil, err
	}

	release := params.Initial.ReleasePoint
	s := &Simulator{
		params:    params,
		opts:      opts,
		integrate: opts.Scheme.Integrator(),
		rho:       params.Environment.AirDensity(),
		state: SimulationState{
			Position: release,
			Velocity: LaunchVelocity(params.Initial, opts.NaturalAim),
			Spin:     params.Initial.Spin,
		},
		maxHeight:   release.Y,
		plateHeight: release.Y,
	}

	s.trajectory = append(s.trajectory, s.sample(s.state.Position, s.state.Velocity))
	s.done = !s.running()

	return s, nil
}

// Simulate runs a pitch to termination.
func Simulate(params PitchParameters, opts Options) (SimulationResult, error) {
	sim, err := NewSimulator(params, opts)
	if err != nil {
		return SimulationResult{}, err
	}
	for sim.Step() {
	}
	return sim.Result(), nil
}

// LaunchVelocity decomposes the launch speed and angles into a velocity
// vector. With naturalAim the aim correction towards plate centre is computed
// from the release offset first, then the input horizontal angle is added.
func LaunchVelocity(initial InitialConditions, naturalAim bool) Vector3 {
	h := initial.Angle.Horizontal * degToRad
	vert := initial.Angle.Vertical * degToRad

	if naturalAim {
		dx := 0 - initial.ReleasePoint.X
		dz := JudgmentPlaneZ - initial.ReleasePoint.Z
		h = math.Atan2(dx, -dz) + h
	}

	v := initial.Speed
	return Vector3{
		X: v * math.Sin(h) * math.Cos(vert),
		Y: v * math.Sin(vert),
		Z: -v * math.Cos(h) * math.Cos(vert),
	}
}

// Step performs one integration step. It returns false, without stepping,
// once the run has terminated.
func (s *Simulator) Step() bool {
	if s.done {
		return false
	}

	pos, vel := s.integrate(s.state.Position, s.state.Velocity, s.state.Time, s.opts.Dt, s.derivative)
	s.steps++
	s.state.Position = pos
	s.state.Velocity = vel
	s.state.Time = float64(s.steps) * s.opts.Dt

	s.trajectory = append(s.trajectory, s.sample(pos, vel))

	if pos.Y > s.maxHeight {
		s.maxHeight = pos.Y
	}

	// First sample at or past the plate wins; later samples never overwrite it.
	if !s.reachedPlate && pos.Z <= JudgmentPlaneZ {
		s.reachedPlate = true
		s.plateX = pos.X
		s.plateHeight = pos.Y
	}

	s.done = !s.running()
	return true
}

// Done reports whether the run has terminated.
func (s *Simulator) Done() bool {
	return s.done
}

// State returns the current working state.
func (s *Simulator) State() SimulationState {
	return s.state
}

// Last returns the most recently recorded sample.
func (s *Simulator) Last() TrajectoryPoint {
	return s.trajectory[len(s.trajectory)-1]
}

// Samples returns the number of recorded samples.
func (s *Simulator) Samples() int {
	return len(s.trajectory)
}

// Result assembles the summary from the samples recorded so far. The
// classification uses the plate crossing, not the final position.
func (s *Simulator) Result() SimulationResult {
	release := s.params.Initial.ReleasePoint

	return SimulationResult{
		Trajectory:      slices.Clone(s.trajectory),
		FlightTime:      s.state.Time,
		MaxHeight:       s.maxHeight,
		FinalPosition:   s.state.Position,
		FinalVelocity:   s.state.Velocity,
		PlateHeight:     s.plateHeight,
		HorizontalBreak: s.plateX - release.X,
		VerticalDrop:    release.Y - s.plateHeight,
		ReachedPlate:    s.reachedPlate,
		IsStrike:        s.reachedPlate && IsStrike(s.plateX, s.plateHeight, s.params.Ball.Radius),
	}
}

// running is the loop guard: below the time limit and above the ground.
// A sample below y=0 is kept as computed, not clamped.
func (s *Simulator) running() bool {
	return s.state.Time < s.opts.MaxTime && s.state.Position.Y > 0
}

func (s *Simulator) derivative(_, velocity Vector3, _ float64) (Vector3, Vector3) {
	force := TotalForce(velocity, s.state.Spin, s.params.Ball, s.params.Environment.Gravity, s.rho)
	return velocity, Acceleration(force, s.params.Ball.Mass)
}

func (s *Simulator) sample(position, velocity Vector3) TrajectoryPoint {
	p := TrajectoryPoint{Position: position}
	if s.opts.RecordForces {
		f := Forces(velocity, s.state.Spin, s.params.Ball, s.params.Environment.Gravity, s.rho)
		p.Forces = &f
	}
	return p
}

func validate(params PitchParameters, opts Options) error {
	switch {
	case !isFinite(opts.Dt) || opts.Dt <= 0:
		return &ConfigError{Field: "dt", Reason: "must be a positive finite number"}
	case !isFinite(opts.MaxTime) || opts.MaxTime <= 0:
		return &ConfigError{Field: "max_time", Reason: "must be a positive finite number"}
	case opts.Scheme.Integrator() == nil:
		return &ConfigError{Field: "scheme", Reason: "unknown integration scheme " + opts.Scheme.String()}
	}

	ball := params.Ball
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"ball.mass", ball.Mass},
		{"ball.radius", ball.Radius},
		{"ball.drag_coefficient", ball.DragCoefficient},
		{"ball.lift_coefficient", ball.LiftCoefficient},
		{"initial.speed", params.Initial.Speed},
		{"initial.angle.horizontal", params.Initial.Angle.Horizontal},
		{"initial.angle.vertical", params.Initial.Angle.Vertical},
		{"environment.gravity", params.Environment.Gravity},
		{"environment.temperature", params.Environment.Temperature},
		{"environment.pressure", params.Environment.Pressure},
		{"environment.humidity", params.Environment.Humidity},
	} {
		if !isFinite(f.value) {
			return &ConfigError{Field: f.name, Reason: "must be finite"}
		}
	}

	switch {
	case !params.Initial.Spin.IsFinite():
		return &ConfigError{Field: "initial.spin", Reason: "must be finite"}
	case !params.Initial.ReleasePoint.IsFinite():
		return &ConfigError{Field: "initial.release_point", Reason: "must be finite"}
	case !params.Environment.Wind.IsFinite():
		return &ConfigError{Field: "environment.wind", Reason: "must be finite"}
	case ball.Mass <= 0:
		return &ConfigError{Field: "ball.mass", Reason: "must be greater than zero"}
	}

	// Zero pressure or a temperature at absolute zero give a NaN or infinite
	// density even though every input is finite.
	if rho := params.Environment.AirDensity(); !isFinite(rho) || rho <= 0 {
		return &ConfigError{Field: "environment.pressure", Reason: "must give a positive air density"}
	}

	return nil
}
