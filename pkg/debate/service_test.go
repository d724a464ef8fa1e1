package debate

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/billing"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/personality"
	"github.com/roundtable-ai/roundtable/pkg/tokens"
)

func newService(t *testing.T, store *memStore, ledger *billing.MemoryLedger) *Service {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	reg, err := personality.NewRegistry("", logger)
	require.NoError(t, err)

	client := echoClient(`{"consensus": true, "reasoning": "agreed"}`)
	executor := NewExecutor(client, reg, &tokens.FixedCounter{Tokens: 5}, logger)
	engine := NewEngine(executor, logger)
	if ledger == nil {
		ledger = billing.NewMemoryLedger()
	}
	return NewService(store, &fakeUsage{}, ledger, engine, NewRegistry(), reg, logger)
}

func createRequest() *models.CreateDebateRequest {
	return &models.CreateDebateRequest{
		Question:      "What is 2+2?",
		Provider:      "mock",
		Model:         "echo",
		Personalities: []string{"analyst", "skeptic"},
		MaxRounds:     2,
	}
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a pending debate", func(t *testing.T) {
		store := newMemStore()
		svc := newService(t, store, nil)

		d, err := svc.Create(ctx, "u1", createRequest())
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, d.Status)
		assert.Equal(t, "u1", d.UserID)
	})

	t.Run("rejects unknown personalities", func(t *testing.T) {
		svc := newService(t, newMemStore(), nil)
		req := createRequest()
		req.Personalities = []string{"analyst", "time-traveler"}

		_, err := svc.Create(ctx, "u1", req)
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("rejects insufficient credits", func(t *testing.T) {
		ledger := billing.NewMemoryLedger()
		ledger.SetBalance("u1", decimal.Zero)
		svc := newService(t, newMemStore(), ledger)

		_, err := svc.Create(ctx, "u1", createRequest())
		var credErr *billing.InsufficientCreditsError
		require.ErrorAs(t, err, &credErr)
	})
}

func TestServiceOwnership(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newService(t, store, nil)

	d, err := svc.Create(ctx, "u1", createRequest())
	require.NoError(t, err)

	t.Run("foreign debates read as not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "intruder", d.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)

		err = svc.Cancel(ctx, "intruder", d.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)

		err = svc.Delete(ctx, "intruder", d.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("owner reads transcript", func(t *testing.T) {
		detail, err := svc.Get(ctx, "u1", d.ID)
		require.NoError(t, err)
		assert.Equal(t, d.ID, detail.ID)
	})
}

func TestServiceStartStream(t *testing.T) {
	ctx := context.Background()

	t.Run("runs a pending debate to completion", func(t *testing.T) {
		store := newMemStore()
		svc := newService(t, store, nil)
		d, err := svc.Create(ctx, "u1", createRequest())
		require.NoError(t, err)

		var last string
		err = svc.StartStream(ctx, "u1", d.ID, func(env *Envelope) error {
			last = env.Type
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, EventDebateCompleted, last)
		assert.Zero(t, svc.registry.ActiveCount())

		stored, err := store.GetDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, stored.Status)
	})

	t.Run("refuses non-pending debates", func(t *testing.T) {
		store := newMemStore()
		svc := newService(t, store, nil)
		d, err := svc.Create(ctx, "u1", createRequest())
		require.NoError(t, err)
		require.NoError(t, svc.StartStream(ctx, "u1", d.ID, func(*Envelope) error { return nil }))

		err = svc.StartStream(ctx, "u1", d.ID, func(*Envelope) error { return nil })
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestServiceCancelAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel voids a pending debate", func(t *testing.T) {
		store := newMemStore()
		svc := newService(t, store, nil)
		d, err := svc.Create(ctx, "u1", createRequest())
		require.NoError(t, err)

		require.NoError(t, svc.Cancel(ctx, "u1", d.ID))
		stored, err := store.GetDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, stored.Status)

		// Terminal debates cannot be cancelled again.
		assert.ErrorIs(t, svc.Cancel(ctx, "u1", d.ID), ErrInvalidStatus)
	})

	t.Run("delete removes terminal debates", func(t *testing.T) {
		store := newMemStore()
		svc := newService(t, store, nil)
		d, err := svc.Create(ctx, "u1", createRequest())
		require.NoError(t, err)
		require.NoError(t, svc.Cancel(ctx, "u1", d.ID))

		require.NoError(t, svc.Delete(ctx, "u1", d.ID))
		_, err = store.GetDebate(ctx, d.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestCancelRegistry(t *testing.T) {
	r := NewRegistry()

	_, cancel := context.WithCancelCause(context.Background())
	require.NoError(t, r.Register("d1", cancel))
	assert.Equal(t, 1, r.ActiveCount())

	t.Run("double registration fails", func(t *testing.T) {
		assert.ErrorIs(t, r.Register("d1", cancel), ErrAlreadyRunning)
	})

	t.Run("cancel signals and reports presence", func(t *testing.T) {
		ctx2, cancel2 := context.WithCancelCause(context.Background())
		require.NoError(t, r.Register("d2", cancel2))
		assert.True(t, r.Cancel("d2"))
		assert.ErrorIs(t, context.Cause(ctx2), ErrCancelled)
		assert.False(t, r.Cancel("missing"))
	})

	t.Run("unregister clears the slot", func(t *testing.T) {
		r.Unregister("d1")
		assert.False(t, r.Cancel("d1"))
	})
}
