package physics

import (
	"fmt"
	"strings"
)

// Derivative maps (position, velocity, time) to (dPosition/dt, dVelocity/dt).
type Derivative func(position, velocity Vector3, t float64) (dPos, dVel Vector3)

// Integrator advances (position, velocity) by one fixed step dt.
type Integrator func(position, velocity Vector3, t, dt float64, f Derivative) (Vector3, Vector3)

// EulerStep is the explicit Euler scheme. Local error O(dt²).
func EulerStep(position, velocity Vector3, t, dt float64, f Derivative) (Vector3, Vector3) {
	dPos, dVel := f(position, velocity, t)

	return position.Add(dPos.Scale(dt)), velocity.Add(dVel.Scale(dt))
}

// RK4Step is the classical fourth-order Runge-Kutta scheme.
func RK4Step(position, velocity Vector3, t, dt float64, f Derivative) (Vector3, Vector3) {
	half := dt / 2

	k1p, k1v := f(position, velocity, t)
	k2p, k2v := f(position.Add(k1p.Scale(half)), velocity.Add(k1v.Scale(half)), t+half)
	k3p, k3v := f(position.Add(k2p.Scale(half)), velocity.Add(k2v.Scale(half)), t+half)
	k4p, k4v := f(position.Add(k3p.Scale(dt)), velocity.Add(k3v.Scale(dt)), t+dt)

	dPos := k1p.Add(k2p.Scale(2)).Add(k3p.Scale(2)).Add(k4p).Scale(dt / 6)
	dVel := k1v.Add(k2v.Scale(2)).Add(k3v.Scale(2)).Add(k4v).Scale(dt / 6)

	return position.Add(dPos), velocity.Add(dVel)
}

// Scheme selects the integrator for a run.
type Scheme int

const (
	SchemeEuler Scheme = iota
	SchemeRK4
)

// Integrator returns the step function for the scheme, or nil if unknown.
func (s Scheme) Integrator() Integrator {
	switch s {
	case SchemeEuler:
		return EulerStep
	case SchemeRK4:
		return RK4Step
	}
	return nil
}

func (s Scheme) String() string {
	switch s {
	case SchemeEuler:
		return "euler"
	case SchemeRK4:
		return "rk4"
	}
	return fmt.Sprintf("scheme(%d)", int(s))
}

// ParseScheme accepts "euler" or "rk4" (case-insensitive).
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "euler":
		return SchemeEuler, nil
	case "rk4":
		return SchemeRK4, nil
	}
	return SchemeEuler, &ConfigError{Field: "scheme", Reason: fmt.Sprintf("unknown integration scheme %q", s)}
}

func (s Scheme) MarshalText() ([]byte, error) {
	if s.Integrator() == nil {
		return nil, &ConfigError{Field: "scheme", Reason: fmt.Sprintf("unknown integration scheme %d", int(s))}
	}
	return []byte(s.String()), nil
}

func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
