package cleanup

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entdebate "github.com/roundtable-ai/roundtable/ent/debate"
	"github.com/roundtable-ai/roundtable/ent/usagerecord"
	"github.com/roundtable-ai/roundtable/pkg/config"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/services"
	testdb "github.com/roundtable-ai/roundtable/test/database"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testSettings() models.DebateSettings {
	return models.DebateSettings{
		Personalities:    []string{"analyst", "skeptic"},
		MaxRounds:        3,
		Temperature:      0.7,
		IncludeSynthesis: true,
	}
}

func TestService_PurgesOldTerminalDebates(t *testing.T) {
	client := testdb.NewTestClient(t)
	debateService := services.NewDebateService(client.Client)
	ctx := context.Background()

	create := func(question string) *models.Debate {
		d, err := debateService.CreateDebate(ctx, "user-1", question, "anthropic", "claude-sonnet-4", testSettings())
		require.NoError(t, err)
		return d
	}
	backdate := func(id string, status entdebate.Status, age time.Duration) {
		err := client.Debate.UpdateOneID(id).
			SetStatus(status).
			SetUpdatedAt(time.Now().UTC().Add(-age)).
			Exec(ctx)
		require.NoError(t, err)
	}

	oldCompleted := create("old completed")
	oldActive := create("old but still active")
	recentCompleted := create("recent completed")

	backdate(oldCompleted.ID, entdebate.StatusCompleted, 400*24*time.Hour)
	backdate(oldActive.ID, entdebate.StatusActive, 400*24*time.Hour)
	backdate(recentCompleted.ID, entdebate.StatusCompleted, 24*time.Hour)

	cfg := &config.RetentionConfig{
		DebateRetentionDays: 365,
		CleanupInterval:     time.Hour,
	}
	svc := NewService(cfg, debateService, testLogger())
	svc.purge(ctx)

	_, err := debateService.GetDebate(ctx, oldCompleted.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	for _, id := range []string{oldActive.ID, recentCompleted.ID} {
		_, err := debateService.GetDebate(ctx, id)
		assert.NoError(t, err)
	}
}

func TestService_UsageRecordsSurvivePurge(t *testing.T) {
	client := testdb.NewTestClient(t)
	debateService := services.NewDebateService(client.Client)
	ctx := context.Background()

	d, err := debateService.CreateDebate(ctx, "user-1", "q", "anthropic", "claude-sonnet-4", testSettings())
	require.NoError(t, err)

	_, err = client.UsageRecord.Create().
		SetID("record-1").
		SetUserID("user-1").
		SetDebateID(d.ID).
		SetProvider("anthropic").
		SetModel("claude-sonnet-4").
		SetInputTokens(100).
		SetOutputTokens(50).
		SetTotalTokens(150).
		SetCost(decimal.RequireFromString("0.00105")).
		SetOperation(usagerecord.OperationDebateResponse).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, client.Debate.UpdateOneID(d.ID).
		SetStatus(entdebate.StatusCompleted).
		SetUpdatedAt(time.Now().UTC().Add(-400*24*time.Hour)).
		Exec(ctx))

	cfg := &config.RetentionConfig{DebateRetentionDays: 365, CleanupInterval: time.Hour}
	NewService(cfg, debateService, testLogger()).purge(ctx)

	_, err = debateService.GetDebate(ctx, d.ID)
	require.ErrorIs(t, err, models.ErrNotFound)

	count, err := client.UsageRecord.Query().
		Where(usagerecord.DebateID(d.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// stubPurger counts purge invocations for loop tests.
type stubPurger struct {
	calls atomic.Int64
	days  atomic.Int64
}

func (p *stubPurger) PurgeOldDebates(_ context.Context, retentionDays int) (int, error) {
	p.calls.Add(1)
	p.days.Store(int64(retentionDays))
	return 0, nil
}

func TestService_StartStop(t *testing.T) {
	purger := &stubPurger{}
	cfg := &config.RetentionConfig{
		DebateRetentionDays: 90,
		CleanupInterval:     10 * time.Millisecond,
	}
	svc := NewService(cfg, purger, testLogger())

	svc.Start(context.Background())
	require.Eventually(t, func() bool {
		return purger.calls.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond, "expected the startup purge plus at least one tick")
	svc.Stop()

	assert.Equal(t, int64(90), purger.days.Load())

	// Stop is idempotent and Start after Stop is a no-op guard, not a crash.
	svc.Stop()
}
