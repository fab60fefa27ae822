package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/tramway/pkg/adapters/redis"
	"github.com/aretw0/tramway/pkg/domain"
	"github.com/aretw0/tramway/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T, opts ...redis.Option) *redis.Journal {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...)
}

func TestRedisJournal_Contract(t *testing.T) {
	journal := newTestJournal(t)
	ports.RunJournalContract(t, journal)
}

func TestRedisJournal_Cap(t *testing.T) {
	ctx := context.Background()
	journal := newTestJournal(t, redis.WithCap(2))

	for _, event := range []domain.Event{domain.EventPowerOn, domain.EventMove, domain.EventStop} {
		require.NoError(t, journal.Append(ctx, domain.TransitionRecord{
			TramID: "t1",
			Event:  event,
			At:     time.Now().UTC(),
		}))
	}

	tail, err := journal.Tail(ctx, "t1", 0)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	require.Equal(t, domain.EventMove, tail[0].Event)
	require.Equal(t, domain.EventStop, tail[1].Event)
}
