package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/pricing"
	testdb "github.com/roundtable-ai/roundtable/test/database"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fixedCatalog serves a known price list so costs are exact.
type fixedCatalog map[string]pricing.ModelPricing

func (c fixedCatalog) Fetch(context.Context) (map[string]pricing.ModelPricing, error) {
	return c, nil
}

func newTestResolver(t *testing.T) *pricing.Resolver {
	t.Helper()
	return pricing.NewResolver(testLogger(), pricing.WithCatalog(fixedCatalog{
		"anthropic/claude-sonnet-4": {
			InputPerMillion:  decimal.RequireFromString("3"),
			OutputPerMillion: decimal.RequireFromString("15"),
			Source:           pricing.SourceCatalog,
		},
		"openai/gpt-4o": {
			InputPerMillion:       decimal.RequireFromString("2.5"),
			OutputPerMillion:      decimal.RequireFromString("10"),
			CachedInputPerMillion: decimal.RequireFromString("1.25"),
			Source:                pricing.SourceCatalog,
		},
	}))
}

// timeInPast returns a fixed instant well before any record in these tests.
func timeInPast(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)
}

func TestUsageService_Record(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUsageService(client.Client, newTestResolver(t), testLogger())
	ctx := context.Background()

	t.Run("prices the call and persists the record", func(t *testing.T) {
		round := 2
		cost, err := service.Record(ctx, "user-1", models.UsageInput{
			DebateID:     "debate-1",
			Provider:     "anthropic",
			Model:        "claude-sonnet-4",
			InputTokens:  100,
			OutputTokens: 50,
			Operation:    models.OperationDebateResponse,
			Personality:  "analyst",
			RoundNumber:  &round,
		})
		require.NoError(t, err)
		// 100 * 3/1M + 50 * 15/1M
		assert.True(t, cost.Equal(decimal.RequireFromString("0.00105")), "got %s", cost)

		records, err := service.History(ctx, "user-1", 10, 0, models.TimeRange{})
		require.NoError(t, err)
		require.Len(t, records, 1)
		rec := records[0]
		assert.Equal(t, "debate-1", rec.DebateID)
		assert.Equal(t, int64(150), rec.TotalTokens)
		assert.Equal(t, "debate_response", string(rec.Operation))
		assert.Equal(t, "analyst", rec.Personality)
		require.NotNil(t, rec.RoundNumber)
		assert.Equal(t, 2, *rec.RoundNumber)
		assert.False(t, rec.Estimated)
		assert.True(t, rec.Cost.Equal(cost))
	})

	t.Run("cached tokens billed at the cached input rate", func(t *testing.T) {
		cost, err := service.Record(ctx, "user-cached", models.UsageInput{
			DebateID:     "debate-cached",
			Provider:     "openai",
			Model:        "gpt-4o",
			InputTokens:  1000,
			OutputTokens: 100,
			CachedTokens: 2000,
			Operation:    models.OperationDebateResponse,
		})
		require.NoError(t, err)
		// 1000 * 2.5/1M + 100 * 10/1M + 2000 * 1.25/1M
		assert.True(t, cost.Equal(decimal.RequireFromString("0.006")), "got %s", cost)

		records, err := service.History(ctx, "user-cached", 10, 0, models.TimeRange{})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, int64(2000), records[0].CachedTokens)
	})

	t.Run("marks estimated token counts", func(t *testing.T) {
		_, err := service.Record(ctx, "user-2", models.UsageInput{
			DebateID:     "debate-2",
			Provider:     "ollama",
			Model:        "qwen2.5-7b",
			InputTokens:  10,
			OutputTokens: 5,
			Operation:    models.OperationConsensusCheck,
			Estimated:    true,
		})
		require.NoError(t, err)

		records, err := service.History(ctx, "user-2", 10, 0, models.TimeRange{})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].Estimated)
		assert.Empty(t, records[0].Personality)
		assert.Nil(t, records[0].RoundNumber)
	})

	t.Run("write survives a cancelled request context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.Record(cancelled, "user-3", models.UsageInput{
			DebateID:     "debate-3",
			Provider:     "anthropic",
			Model:        "claude-sonnet-4",
			InputTokens:  1,
			OutputTokens: 1,
			Operation:    models.OperationSynthesis,
		})
		require.NoError(t, err)

		records, err := service.History(ctx, "user-3", 10, 0, models.TimeRange{})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

func TestUsageService_Estimate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUsageService(client.Client, newTestResolver(t), testLogger())

	est := service.Estimate(context.Background(), "openai", "gpt-4o", 1_000_000, 100_000)
	assert.True(t, est.InputCost.Equal(decimal.RequireFromString("2.5")), "got %s", est.InputCost)
	assert.True(t, est.OutputCost.Equal(decimal.RequireFromString("1")), "got %s", est.OutputCost)
	assert.True(t, est.TotalCost.Equal(decimal.RequireFromString("3.5")))
	assert.Equal(t, int64(1_000_000), est.InputTokens)
}

func TestUsageService_Summary(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUsageService(client.Client, newTestResolver(t), testLogger())
	ctx := context.Background()

	record := func(provider, model string, in, out int64, op models.Operation) {
		t.Helper()
		_, err := service.Record(ctx, "user-1", models.UsageInput{
			DebateID:     "debate-1",
			Provider:     provider,
			Model:        model,
			InputTokens:  in,
			OutputTokens: out,
			Operation:    op,
		})
		require.NoError(t, err)
	}
	record("anthropic", "claude-sonnet-4", 1000, 500, models.OperationDebateResponse)
	record("anthropic", "claude-sonnet-4", 2000, 1000, models.OperationDebateResponse)
	record("openai", "gpt-4o", 4000, 2000, models.OperationSynthesis)
	// Another user's spend must not leak in.
	_, err := service.Record(ctx, "user-2", models.UsageInput{
		DebateID:     "debate-9",
		Provider:     "openai",
		Model:        "gpt-4o",
		InputTokens:  99999,
		OutputTokens: 99999,
		Operation:    models.OperationDebateResponse,
	})
	require.NoError(t, err)

	t.Run("defaults to the current calendar month", func(t *testing.T) {
		summary, err := service.Summary(ctx, "user-1", models.TimeRange{})
		require.NoError(t, err)
		assert.Equal(t, int64(7000), summary.InputTokens)
		assert.Equal(t, int64(3500), summary.OutputTokens)
		assert.Equal(t, int64(10500), summary.TotalTokens)

		// anthropic: 3000*3/1M + 1500*15/1M = 0.0315
		// openai:    4000*2.5/1M + 2000*10/1M = 0.03
		assert.True(t, summary.ByProvider["anthropic"].Equal(decimal.RequireFromString("0.0315")), "got %s", summary.ByProvider["anthropic"])
		assert.True(t, summary.ByProvider["openai"].Equal(decimal.RequireFromString("0.03")), "got %s", summary.ByProvider["openai"])
		assert.True(t, summary.TotalCost.Equal(decimal.RequireFromString("0.0615")), "got %s", summary.TotalCost)

		assert.True(t, summary.ByOperation["debate_response"].Equal(decimal.RequireFromString("0.0315")))
		assert.True(t, summary.ByOperation["synthesis"].Equal(decimal.RequireFromString("0.03")))
	})

	t.Run("range outside the records is empty", func(t *testing.T) {
		past := models.CurrentMonthUTC(timeInPast(t))
		summary, err := service.Summary(ctx, "user-1", past)
		require.NoError(t, err)
		assert.Zero(t, summary.TotalTokens)
		assert.True(t, summary.TotalCost.IsZero())
		assert.Empty(t, summary.ByProvider)
	})
}

func TestUsageService_History(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUsageService(client.Client, newTestResolver(t), testLogger())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		// Distinct created_at timestamps for a stable sort.
		time.Sleep(2 * time.Millisecond)
		_, err := service.Record(ctx, "user-1", models.UsageInput{
			DebateID:     "debate-1",
			Provider:     "anthropic",
			Model:        "claude-sonnet-4",
			InputTokens:  int64(i + 1),
			OutputTokens: 1,
			Operation:    models.OperationDebateResponse,
		})
		require.NoError(t, err)
	}

	t.Run("most recent first with paging", func(t *testing.T) {
		records, err := service.History(ctx, "user-1", 2, 0, models.TimeRange{})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, int64(5), records[0].InputTokens)
		assert.Equal(t, int64(4), records[1].InputTokens)

		records, err = service.History(ctx, "user-1", 2, 4, models.TimeRange{})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, int64(1), records[0].InputTokens)
	})

	t.Run("range filter applies", func(t *testing.T) {
		past := models.CurrentMonthUTC(timeInPast(t))
		records, err := service.History(ctx, "user-1", 10, 0, past)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
