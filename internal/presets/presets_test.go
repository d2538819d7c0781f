package presets

import (
	"errors"
	"testing"

	"github.com/pitchlab/backend/internal/physics"
)

func TestAllPresetsAreStrikes(t *testing.T) {
	for _, scheme := range []physics.Scheme{physics.SchemeEuler, physics.SchemeRK4} {
		opts := physics.Options{Dt: 0.01, MaxTime: 5, Scheme: scheme, NaturalAim: true}

		for _, p := range All() {
			t.Run(scheme.String()+"/"+string(p.Type), func(t *testing.T) {
				res, err := physics.Simulate(p.Params, opts)
				if err != nil {
					t.Fatalf("Simulate: %v", err)
				}
				if !res.ReachedPlate {
					t.Fatalf("never reached the plate (flight %.2fs)", res.FlightTime)
				}
				if !res.IsStrike {
					t.Errorf("crossed at height %.3f, break %.3f: expected a strike", res.PlateHeight, res.HorizontalBreak)
				}
				if p.Description == "" {
					t.Error("missing description")
				}
			})
		}
	}
}

func TestPresetsBreakAsDescribed(t *testing.T) {
	opts := physics.Options{Dt: 0.01, MaxTime: 5, NaturalAim: true}
	drop := func(name PitchType) float64 {
		p, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		res, err := physics.Simulate(p.Params, opts)
		if err != nil {
			t.Fatalf("Simulate(%s): %v", name, err)
		}
		return res.VerticalDrop
	}

	// Topspin adds to gravity, so the curveball drops further than the fastball.
	if drop(Curveball) <= drop(Fastball) {
		t.Errorf("curveball drop %.3f should exceed fastball drop %.3f", drop(Curveball), drop(Fastball))
	}
}

func TestPresetsUseDefaultBallAndEnvironment(t *testing.T) {
	for _, p := range All() {
		if p.Params.Ball != DefaultBall() {
			t.Errorf("%s ball = %+v", p.Type, p.Params.Ball)
		}
		if p.Params.Environment != DefaultEnvironment() {
			t.Errorf("%s environment = %+v", p.Type, p.Params.Environment)
		}
		if p.Params.Initial.ReleasePoint != (physics.Vector3{Y: ReleaseHeight}) {
			t.Errorf("%s release = %v", p.Type, p.Params.Initial.ReleasePoint)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("eephus"); !errors.Is(err, ErrUnknownPitchType) {
		t.Errorf("expected ErrUnknownPitchType, got %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 5 {
		t.Fatalf("expected 5 presets, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestThrowPowerSpeed(t *testing.T) {
	tests := []struct {
		power int
		want  float64
	}{
		{1, 23}, {5, 35}, {10, 50}, {0, 23}, {15, 50},
	}
	for _, tt := range tests {
		if got := ThrowPowerSpeed(tt.power); got != tt.want {
			t.Errorf("ThrowPowerSpeed(%d) = %v, expected %v", tt.power, got, tt.want)
		}
	}

	p, err := FromSimpleInputs(Slider, 4)
	if err != nil {
		t.Fatalf("FromSimpleInputs: %v", err)
	}
	if p.Initial.Speed != 32 {
		t.Errorf("speed = %v, expected 32", p.Initial.Speed)
	}
}

func TestDefaultParametersAreReferencePitch(t *testing.T) {
	p := DefaultParameters()
	if p.Initial.Speed != 35 || p.Initial.ReleasePoint != (physics.Vector3{Y: 2}) {
		t.Errorf("unexpected defaults: %+v", p.Initial)
	}
	if p.Environment.Temperature != 20 || p.Environment.Pressure != 1013.25 || p.Environment.Humidity != 50 {
		t.Errorf("unexpected environment: %+v", p.Environment)
	}
}
