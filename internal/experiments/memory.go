package experiments

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/pitchlab/backend/internal/physics"
)

// MemoryStore keeps experiments in process memory. Used when no Redis URL is
// configured and in tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Experiment // newest first
	max   int
	now   func() time.Time
}

// NewMemoryStore creates a store holding at most limit experiments.
func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{max: normalizeMax(limit), now: time.Now}
}

func (s *MemoryStore) Save(ctx context.Context, name string, params physics.PitchParameters, result physics.SimulationResult) (Experiment, error) {
	e := newExperiment(s.now().UTC(), name, params, result)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.Insert(s.items, 0, e)
	if len(s.items) > s.max {
		s.items = s.items[:s.max]
	}
	return e, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Experiment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Experiment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.items {
		if e.ID == id {
			return e, nil
		}
	}
	return Experiment{}, ErrNotFound
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.items, func(e Experiment) bool { return e.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

func (s *MemoryStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}
