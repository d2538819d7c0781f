package physics

// ForceBreakdown holds the instantaneous force components acting on the ball, in N.
type ForceBreakdown struct {
	Gravity Vector3 `json:"gravity"`
	Drag    Vector3 `json:"drag"`
	Magnus  Vector3 `json:"magnus"`
}

// Total returns gravity + drag + magnus.
func (f ForceBreakdown) Total() Vector3 {
	return f.Gravity.Add(f.Drag).Add(f.Magnus)
}

// Gravity returns the weight force (0, -m·g, 0).
func Gravity(mass, g float64) Vector3 {
	return Vector3{X: 0, Y: -mass * g, Z: 0}
}

// Drag returns 0.5·ρ·C_d·A·|v|² directed against the velocity.
func Drag(velocity Vector3, ball BallProperties, airDensity float64) Vector3 {
	speed := velocity.Length()
	if speed == 0 {
		return Vector3{}
	}

	magnitude := 0.5 * airDensity * ball.DragCoefficient * ball.CrossSection() * speed * speed
	return velocity.Normalize().Scale(-magnitude)
}

// Magnus returns the spin-induced lift force.
//
// The magnitude 0.5·C_L·ρ·A·|v|·(r·ω) is linear in speed rather than the
// physical quadratic form; presets and UI tuning are calibrated against it.
// Spin is in rpm.
func Magnus(velocity, spin Vector3, ball BallProperties, airDensity float64) Vector3 {
	speed := velocity.Length()
	if speed == 0 {
		return Vector3{}
	}

	omega := spin.Scale(rpmToRadPerSec)
	spinRate := omega.Length()
	if spinRate == 0 {
		return Vector3{}
	}

	direction := omega.Normalize().Cross(velocity.Normalize()).Normalize()
	magnitude := 0.5 * ball.LiftCoefficient * airDensity * ball.CrossSection() * speed * (ball.Radius * spinRate)

	return direction.Scale(magnitude)
}

// Forces computes every force component for the given velocity and spin.
func Forces(velocity, spin Vector3, ball BallProperties, g, airDensity float64) ForceBreakdown {
	return ForceBreakdown{
		Gravity: Gravity(ball.Mass, g),
		Drag:    Drag(velocity, ball, airDensity),
		Magnus:  Magnus(velocity, spin, ball, airDensity),
	}
}

// TotalForce returns the vector sum of gravity, drag and Magnus.
func TotalForce(velocity, spin Vector3, ball BallProperties, g, airDensity float64) Vector3 {
	return Forces(velocity, spin, ball, g, airDensity).Total()
}

// Acceleration returns F/m. The caller guarantees mass > 0.
func Acceleration(force Vector3, mass float64) Vector3 {
	return force.Div(mass)
}
