// Package compare lines up two simulation runs side by side.
package compare

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/pitchlab/backend/internal/physics"
)

// ErrNoForces is returned when a force comparison is requested for a run that
// was simulated without force recording.
var ErrNoForces = errors.New("run has no recorded forces")

// Metric is one row of the summary table.
type Metric struct {
	Name string  `json:"name"`
	Unit string  `json:"unit,omitempty"`
	A    float64 `json:"a"`
	B    float64 `json:"b"`
	Diff float64 `json:"diff"` // B - A
}

// Comparison is the summary of two runs.
type Comparison struct {
	Metrics []Metric `json:"metrics"`
	StrikeA bool     `json:"strike_a"`
	StrikeB bool     `json:"strike_b"`
}

// Compare builds the summary table for runs a and b.
func Compare(a, b physics.SimulationResult) Comparison {
	row := func(name, unit string, va, vb float64) Metric {
		return Metric{Name: name, Unit: unit, A: va, B: vb, Diff: vb - va}
	}

	return Comparison{
		Metrics: []Metric{
			row("flight_time", "s", a.FlightTime, b.FlightTime),
			row("max_height", "m", a.MaxHeight, b.MaxHeight),
			row("plate_height", "m", a.PlateHeight, b.PlateHeight),
			row("horizontal_break", "m", a.HorizontalBreak, b.HorizontalBreak),
			row("vertical_drop", "m", a.VerticalDrop, b.VerticalDrop),
			row("final_speed", "m/s", a.FinalVelocity.Length(), b.FinalVelocity.Length()),
		},
		StrikeA: a.IsStrike,
		StrikeB: b.IsStrike,
	}
}

// VectorDiff compares one force vector between two runs.
type VectorDiff struct {
	A             physics.Vector3 `json:"a"`
	B             physics.Vector3 `json:"b"`
	Diff          physics.Vector3 `json:"diff"`
	MagnitudeA    float64         `json:"magnitude_a"`
	MagnitudeB    float64         `json:"magnitude_b"`
	MagnitudeDiff float64         `json:"magnitude_diff"`
}

func vectorDiff(a, b physics.Vector3) VectorDiff {
	return VectorDiff{
		A:             a,
		B:             b,
		Diff:          b.Sub(a),
		MagnitudeA:    a.Length(),
		MagnitudeB:    b.Length(),
		MagnitudeDiff: b.Length() - a.Length(),
	}
}

// ForceComparison is the force table at one replay index.
type ForceComparison struct {
	IndexA  int        `json:"index_a"`
	IndexB  int        `json:"index_b"`
	Gravity VectorDiff `json:"gravity"`
	Drag    VectorDiff `json:"drag"`
	Magnus  VectorDiff `json:"magnus"`
}

// ForcesAt compares the recorded forces at sample index. Runs of different
// length are clamped to their last sample, so a replay scrubber past the end
// of the shorter run keeps showing its final forces.
func ForcesAt(a, b physics.SimulationResult, index int) (ForceComparison, error) {
	ia, fa, err := forcesAt(a, index)
	if err != nil {
		return ForceComparison{}, err
	}
	ib, fb, err := forcesAt(b, index)
	if err != nil {
		return ForceComparison{}, err
	}

	return ForceComparison{
		IndexA:  ia,
		IndexB:  ib,
		Gravity: vectorDiff(fa.Gravity, fb.Gravity),
		Drag:    vectorDiff(fa.Drag, fb.Drag),
		Magnus:  vectorDiff(fa.Magnus, fb.Magnus),
	}, nil
}

func forcesAt(r physics.SimulationResult, index int) (int, physics.ForceBreakdown, error) {
	if len(r.Trajectory) == 0 {
		return 0, physics.ForceBreakdown{}, ErrNoForces
	}
	i := min(max(index, 0), len(r.Trajectory)-1)
	f := r.Trajectory[i].Forces
	if f == nil {
		return i, physics.ForceBreakdown{}, ErrNoForces
	}
	return i, *f, nil
}

// RunPair simulates a and b concurrently with the same options.
func RunPair(ctx context.Context, a, b physics.PitchParameters, opts physics.Options) (physics.SimulationResult, physics.SimulationResult, error) {
	var ra, rb physics.SimulationResult

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ra, err = run(ctx, a, opts)
		return err
	})
	g.Go(func() error {
		var err error
		rb, err = run(ctx, b, opts)
		return err
	})

	if err := g.Wait(); err != nil {
		return physics.SimulationResult{}, physics.SimulationResult{}, err
	}
	return ra, rb, nil
}

// run checks for cancellation between steps; the engine itself has no abort hook.
func run(ctx context.Context, params physics.PitchParameters, opts physics.Options) (physics.SimulationResult, error) {
	sim, err := physics.NewSimulator(params, opts)
	if err != nil {
		return physics.SimulationResult{}, err
	}
	for sim.Step() {
		if err := ctx.Err(); err != nil {
			return physics.SimulationResult{}, err
		}
	}
	return sim.Result(), nil
}
