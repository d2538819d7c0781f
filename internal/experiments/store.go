// Package experiments keeps the most recent simulation runs so the UI can
// reload or compare them later.
package experiments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pitchlab/backend/internal/physics"
)

// DefaultMax is the number of experiments kept when no limit is configured.
const DefaultMax = 10

var ErrNotFound = errors.New("experiment not found")

// Experiment is one saved run.
type Experiment struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	CreatedAt time.Time                `json:"created_at"`
	Params    physics.PitchParameters  `json:"params"`
	Result    physics.SimulationResult `json:"result"`
}

// Store is a bounded, newest-first collection of experiments. Saving beyond
// the limit evicts the oldest entry.
type Store interface {
	Save(ctx context.Context, name string, params physics.PitchParameters, result physics.SimulationResult) (Experiment, error)
	List(ctx context.Context) ([]Experiment, error)
	Get(ctx context.Context, id string) (Experiment, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

func newExperiment(now time.Time, name string, params physics.PitchParameters, result physics.SimulationResult) Experiment {
	if name == "" {
		name = "Experiment " + now.Format(time.RFC3339)
	}
	return Experiment{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		Params:    params,
		Result:    result,
	}
}

func normalizeMax(limit int) int {
	if limit <= 0 {
		return DefaultMax
	}
	return limit
}
