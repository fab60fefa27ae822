package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/tramway/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Journal implements ports.TransitionJournal on Redis.
// Each tram's trail is a list under a prefixed key, trimmed to a cap on
// every append.
type Journal struct {
	client *backend.Client
	prefix string
	cap    int64
}

// Option configures the journal.
type Option func(*Journal)

// WithPrefix sets the key prefix for trails.
func WithPrefix(prefix string) Option {
	return func(j *Journal) {
		j.prefix = prefix
	}
}

// WithCap overrides the per-tram record cap. Zero or negative means
// unbounded.
func WithCap(n int) Option {
	return func(j *Journal) {
		j.cap = int64(n)
	}
}

// New creates a Redis journal with its own client.
func New(address, password string, db int, opts ...Option) *Journal {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis journal from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Journal {
	j := &Journal{
		client: client,
		prefix: "tramway:journal:",
		cap:    512,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *Journal) key(tramID string) string {
	return j.prefix + tramID
}

// Append stores the record at the end of the tram's trail.
func (j *Journal) Append(ctx context.Context, rec domain.TransitionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	pipe := j.client.Pipeline()
	pipe.RPush(ctx, j.key(rec.TramID), data)
	if j.cap > 0 {
		pipe.LTrim(ctx, j.key(rec.TramID), -j.cap, -1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append to redis: %w", err)
	}
	return nil
}

// Tail returns up to limit of the most recent records, oldest first.
func (j *Journal) Tail(ctx context.Context, tramID string, limit int) ([]domain.TransitionRecord, error) {
	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}

	vals, err := j.client.LRange(ctx, j.key(tramID), start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read trail from redis: %w", err)
	}

	out := make([]domain.TransitionRecord, 0, len(vals))
	for _, val := range vals {
		var rec domain.TransitionRecord
		if err := json.Unmarshal([]byte(val), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Clear drops the trail for the tram.
func (j *Journal) Clear(ctx context.Context, tramID string) error {
	return j.client.Del(ctx, j.key(tramID)).Err()
}

// Close closes the redis client.
func (j *Journal) Close() error {
	return j.client.Close()
}
