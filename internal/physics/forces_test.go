package physics

import (
	"math"
	"testing"
)

var testBall = BallProperties{Mass: 0.145, Radius: 0.0366, DragCoefficient: 0.4, LiftCoefficient: 1.0}

func TestGravity(t *testing.T) {
	g := Gravity(0.145, 9.81)
	if g.X != 0 || g.Z != 0 {
		t.Errorf("gravity has horizontal components: %v", g)
	}
	if !almostEqual(g.Y, -1.42245, 1e-9) {
		t.Errorf("gravity Y = %v", g.Y)
	}
	if math.Abs(Gravity(0.2, 9.81).Y) <= math.Abs(Gravity(0.1, 9.81).Y) {
		t.Error("heavier ball should weigh more")
	}
	if math.Abs(Gravity(0.145, 9.83).Y) <= math.Abs(Gravity(0.145, 9.78).Y) {
		t.Error("stronger g should weigh more")
	}
}

func TestZeroSpeedForces(t *testing.T) {
	if d := Drag(Vector3{}, testBall, 1.225); d != (Vector3{}) {
		t.Errorf("Drag(zero) = %v", d)
	}
	if m := Magnus(Vector3{}, Vector3{2400, 100, -30}, testBall, 1.225); m != (Vector3{}) {
		t.Errorf("Magnus(zero velocity) = %v", m)
	}
	if m := Magnus(Vector3{3, -1, -40}, Vector3{}, testBall, 1.225); m != (Vector3{}) {
		t.Errorf("Magnus(zero spin) = %v", m)
	}
}

func TestDragOpposesVelocity(t *testing.T) {
	d := Drag(Vector3{0, 0, -40}, testBall, 1.225)
	if d.Z <= 0 {
		t.Errorf("drag should point +Z for a ball moving -Z, got %v", d)
	}
	if d.X != 0 || d.Y != 0 {
		t.Errorf("drag has off-axis components: %v", d)
	}

	v := Vector3{3, -4, -35}
	d = Drag(v, testBall, 1.2)
	if cos := d.Normalize().Dot(v.Normalize()); !almostEqual(cos, -1, 1e-12) {
		t.Errorf("drag not antiparallel to velocity, cos=%v", cos)
	}
}

func TestDragScalesWithSpeedSquared(t *testing.T) {
	slow := Drag(Vector3{0, 0, -20}, testBall, 1.225).Length()
	fast := Drag(Vector3{0, 0, -40}, testBall, 1.225).Length()
	if !almostEqual(fast/slow, 4, 1e-12) {
		t.Errorf("doubling speed scaled drag by %v, expected 4", fast/slow)
	}

	expected := 0.5 * 1.225 * 0.4 * math.Pi * 0.0366 * 0.0366 * 400
	if !almostEqual(slow, expected, 1e-12) {
		t.Errorf("drag magnitude = %v, expected %v", slow, expected)
	}
}

func TestDragScalesWithDensity(t *testing.T) {
	v := Vector3{0, 0, -40}
	if Drag(v, testBall, 1.5).Length() <= Drag(v, testBall, 1.0).Length() {
		t.Error("denser air should increase drag")
	}
}

func TestMagnusBackspinLifts(t *testing.T) {
	m := Magnus(Vector3{0, 0, -40}, Vector3{2400, 0, 0}, testBall, 1.225)
	if m.Y <= 0 {
		t.Errorf("backspin should produce upward force, got %v", m)
	}
	if !almostEqual(m.X, 0, 1e-12) || !almostEqual(m.Z, 0, 1e-12) {
		t.Errorf("pure backspin produced off-axis force %v", m)
	}
}

func TestMagnusIsLinearInSpeed(t *testing.T) {
	spin := Vector3{2400, 0, 0}
	slow := Magnus(Vector3{0, 0, -20}, spin, testBall, 1.225).Length()
	fast := Magnus(Vector3{0, 0, -40}, spin, testBall, 1.225).Length()
	if !almostEqual(fast/slow, 2, 1e-12) {
		t.Errorf("doubling speed scaled Magnus by %v, expected 2", fast/slow)
	}

	omega := 2400 * 2 * math.Pi / 60
	expected := 0.5 * 1.0 * 1.225 * math.Pi * 0.0366 * 0.0366 * 20 * (0.0366 * omega)
	if !almostEqual(slow, expected, 1e-12) {
		t.Errorf("Magnus magnitude = %v, expected %v", slow, expected)
	}
}

func TestMagnusGrowsWithSpin(t *testing.T) {
	v := Vector3{0, 0, -40}
	low := Magnus(v, Vector3{1200, 0, 0}, testBall, 1.225)
	high := Magnus(v, Vector3{2400, 0, 0}, testBall, 1.225)
	if math.Abs(high.Y) <= math.Abs(low.Y) {
		t.Errorf("more spin should increase Magnus: low=%v high=%v", low, high)
	}
}

func TestMagnusParallelSpinIsZero(t *testing.T) {
	// Pure bullet spin along the direction of travel produces no lift.
	m := Magnus(Vector3{0, 0, -40}, Vector3{0, 0, 1500}, testBall, 1.225)
	if m.Length() > 1e-12 {
		t.Errorf("gyro spin produced force %v", m)
	}
}

func TestTotalForceAndAcceleration(t *testing.T) {
	v := Vector3{1, 2, -35}
	spin := Vector3{2000, 300, 0}
	f := Forces(v, spin, testBall, 9.81, 1.2)

	total := TotalForce(v, spin, testBall, 9.81, 1.2)
	expected := Gravity(testBall.Mass, 9.81).Add(Drag(v, testBall, 1.2)).Add(Magnus(v, spin, testBall, 1.2))
	if total != expected || f.Total() != expected {
		t.Errorf("TotalForce = %v, breakdown total %v, expected %v", total, f.Total(), expected)
	}

	a := Acceleration(total, testBall.Mass)
	if !vecAlmostEqual(a.Scale(testBall.Mass), total, 1e-12) {
		t.Errorf("Acceleration·m = %v, expected %v", a.Scale(testBall.Mass), total)
	}
}
