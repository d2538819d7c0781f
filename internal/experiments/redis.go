package experiments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pitchlab/backend/internal/physics"
)

// DefaultRedisKey is the list holding serialized experiments, newest at the head.
const DefaultRedisKey = "pitchlab:experiments"

// RedisStore keeps experiments as JSON documents in a capped Redis list.
type RedisStore struct {
	rdb *redis.Client
	key string
	max int
	ttl time.Duration
	now func() time.Time
}

// NewRedisStore creates a store on rdb. A zero ttl keeps the list forever;
// otherwise every save refreshes its expiry.
func NewRedisStore(rdb *redis.Client, key string, limit int, ttl time.Duration) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{rdb: rdb, key: key, max: normalizeMax(limit), ttl: ttl, now: time.Now}
}

func (s *RedisStore) Save(ctx context.Context, name string, params physics.PitchParameters, result physics.SimulationResult) (Experiment, error) {
	e := newExperiment(s.now().UTC(), name, params, result)
	data, err := json.Marshal(e)
	if err != nil {
		return Experiment{}, fmt.Errorf("marshal experiment: %w", err)
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, s.key, data)
		pipe.LTrim(ctx, s.key, 0, int64(s.max-1))
		if s.ttl > 0 {
			pipe.Expire(ctx, s.key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return Experiment{}, fmt.Errorf("save experiment: %w", err)
	}
	return e, nil
}

func (s *RedisStore) List(ctx context.Context) ([]Experiment, error) {
	items, _, err := s.load(ctx)
	return items, err
}

func (s *RedisStore) Get(ctx context.Context, id string) (Experiment, error) {
	items, _, err := s.load(ctx)
	if err != nil {
		return Experiment{}, err
	}
	for _, e := range items {
		if e.ID == id {
			return e, nil
		}
	}
	return Experiment{}, ErrNotFound
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	items, raw, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i, e := range items {
		if e.ID != id {
			continue
		}
		n, err := s.rdb.LRem(ctx, s.key, 1, raw[i]).Result()
		if err != nil {
			return fmt.Errorf("delete experiment: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	}
	return ErrNotFound
}

func (s *RedisStore) DeleteAll(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear experiments: %w", err)
	}
	return nil
}

func (s *RedisStore) Count(ctx context.Context) (int, error) {
	n, err := s.rdb.LLen(ctx, s.key).Result()
	if err != nil {
		return 0, fmt.Errorf("count experiments: %w", err)
	}
	return int(n), nil
}

// load returns decoded experiments alongside their raw list entries. Entries
// that fail to decode are skipped.
func (s *RedisStore) load(ctx context.Context) ([]Experiment, []string, error) {
	raw, err := s.rdb.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, nil, fmt.Errorf("list experiments: %w", err)
	}

	items := make([]Experiment, 0, len(raw))
	kept := make([]string, 0, len(raw))
	for _, r := range raw {
		var e Experiment
		if err := json.Unmarshal([]byte(r), &e); err != nil {
			log.Printf("[EXPERIMENTS] skipping invalid entry in %s: %v", s.key, err)
			continue
		}
		items = append(items, e)
		kept = append(kept, r)
	}
	return items, kept, nil
}
