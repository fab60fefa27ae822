package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/tramway/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunJournalContract runs a suite of tests verifying that a
// TransitionJournal implementation adheres to the interface contract.
// Adapters call this from their own tests so every backend answers the
// same questions the same way.
func RunJournalContract(t *testing.T, journal TransitionJournal) {
	ctx := context.Background()
	tramID := "contract-tram-" + time.Now().Format("20060102150405")

	record := func(event domain.Event, from, to domain.State, accepted bool, passengers int) domain.TransitionRecord {
		return domain.TransitionRecord{
			TramID:     tramID,
			Event:      event,
			From:       from,
			To:         to,
			Accepted:   accepted,
			Passengers: passengers,
			At:         time.Now().UTC(),
		}
	}

	t.Run("Append and Tail preserve order", func(t *testing.T) {
		require.NoError(t, journal.Clear(ctx, tramID))

		require.NoError(t, journal.Append(ctx, record(domain.EventPowerOn, domain.StateIdle, domain.StateReady, true, 0)))
		require.NoError(t, journal.Append(ctx, record(domain.EventMove, domain.StateReady, domain.StateMoving, true, 0)))
		require.NoError(t, journal.Append(ctx, record(domain.EventOpenDoors, domain.StateMoving, domain.StateMoving, false, 0)))

		tail, err := journal.Tail(ctx, tramID, 0)
		require.NoError(t, err)
		require.Len(t, tail, 3)

		assert.Equal(t, domain.EventPowerOn, tail[0].Event)
		assert.Equal(t, domain.EventMove, tail[1].Event)
		assert.Equal(t, domain.EventOpenDoors, tail[2].Event)
		assert.False(t, tail[2].Accepted)
		assert.Equal(t, tramID, tail[0].TramID)
	})

	t.Run("Tail honors limit, keeping the newest", func(t *testing.T) {
		tail, err := journal.Tail(ctx, tramID, 2)
		require.NoError(t, err)
		require.Len(t, tail, 2)
		assert.Equal(t, domain.EventMove, tail[0].Event)
		assert.Equal(t, domain.EventOpenDoors, tail[1].Event)
	})

	t.Run("Unknown tram yields empty tail", func(t *testing.T) {
		tail, err := journal.Tail(ctx, "never-created-"+tramID, 10)
		require.NoError(t, err)
		assert.Empty(t, tail)
	})

	t.Run("Clear drops the trail", func(t *testing.T) {
		require.NoError(t, journal.Clear(ctx, tramID))

		tail, err := journal.Tail(ctx, tramID, 0)
		require.NoError(t, err)
		assert.Empty(t, tail)
	})

	t.Run("Trails are isolated per tram", func(t *testing.T) {
		other := tramID + "-b"
		defer func() {
			_ = journal.Clear(ctx, tramID)
			_ = journal.Clear(ctx, other)
		}()

		require.NoError(t, journal.Append(ctx, record(domain.EventPowerOn, domain.StateIdle, domain.StateReady, true, 0)))

		rec := record(domain.EventPowerOn, domain.StateIdle, domain.StateReady, true, 0)
		rec.TramID = other
		require.NoError(t, journal.Append(ctx, rec))

		tail, err := journal.Tail(ctx, tramID, 0)
		require.NoError(t, err)
		require.Len(t, tail, 1)
		assert.Equal(t, tramID, tail[0].TramID)
	})
}
