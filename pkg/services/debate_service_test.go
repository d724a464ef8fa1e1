package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/models"
	testdb "github.com/roundtable-ai/roundtable/test/database"
)

func testSettings() models.DebateSettings {
	return models.DebateSettings{
		Personalities:    []string{"analyst", "skeptic"},
		MaxRounds:        3,
		Temperature:      0.7,
		IncludeSynthesis: true,
	}
}

func createTestDebate(t *testing.T, svc *DebateService, userID, question string) *models.Debate {
	t.Helper()
	// Distinct created_at timestamps for a stable list order.
	time.Sleep(2 * time.Millisecond)
	d, err := svc.CreateDebate(context.Background(), userID, question, "anthropic", "claude-sonnet-4", testSettings())
	require.NoError(t, err)
	return d
}

func TestDebateService_CreateDebate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client)
	ctx := context.Background()

	t.Run("creates pending debate with settings round-trip", func(t *testing.T) {
		d := createTestDebate(t, service, "user-1", "Should we rewrite the billing system?")
		assert.NotEmpty(t, d.ID)
		assert.Equal(t, "user-1", d.UserID)
		assert.Equal(t, models.StatusPending, d.Status)
		assert.Equal(t, 0, d.CurrentRound)
		assert.True(t, d.TotalCost.IsZero())
		assert.Equal(t, []string{"analyst", "skeptic"}, d.Settings.Personalities)
		assert.Equal(t, 3, d.Settings.MaxRounds)
		assert.InDelta(t, 0.7, d.Settings.Temperature, 0.0001)
		assert.True(t, d.Settings.IncludeSynthesis)

		got, err := service.GetDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, d.ID, got.ID)
		assert.Equal(t, d.Settings, got.Settings)
	})

	t.Run("missing debate reads as not found", func(t *testing.T) {
		_, err := service.GetDebate(ctx, "no-such-debate")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestDebateService_Transcript(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client)
	ctx := context.Background()

	d := createTestDebate(t, service, "user-1", "Is eventual consistency acceptable here?")

	round1, err := service.SaveRound(ctx, d.ID, 1)
	require.NoError(t, err)

	t.Run("round advances current_round", func(t *testing.T) {
		got, err := service.GetDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.CurrentRound)
	})

	t.Run("duplicate round number is rejected", func(t *testing.T) {
		_, err := service.SaveRound(ctx, d.ID, 1)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	// Save out of declared order; detail must come back index-ordered.
	_, err = service.SaveResponse(ctx, &models.PersonalityResponse{
		RoundID:       round1,
		Personality:   "skeptic",
		ResponseIndex: 1,
		Thinking:      "is the premise even sound",
		Answer:        "No, reads would go stale.",
		InputTokens:   120,
		OutputTokens:  80,
		Cost:          decimal.RequireFromString("0.001200"),
	})
	require.NoError(t, err)
	_, err = service.SaveResponse(ctx, &models.PersonalityResponse{
		RoundID:       round1,
		Personality:   "analyst",
		ResponseIndex: 0,
		Answer:        "Yes, for the read path.",
		InputTokens:   100,
		OutputTokens:  60,
		Cost:          decimal.RequireFromString("0.000900"),
	})
	require.NoError(t, err)

	t.Run("duplicate response index is rejected", func(t *testing.T) {
		_, err := service.SaveResponse(ctx, &models.PersonalityResponse{
			RoundID:       round1,
			Personality:   "analyst",
			ResponseIndex: 0,
			Answer:        "again",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	round2, err := service.SaveRound(ctx, d.ID, 2)
	require.NoError(t, err)
	_, err = service.SaveResponse(ctx, &models.PersonalityResponse{
		RoundID:       round2,
		Personality:   "analyst",
		ResponseIndex: 0,
		Answer:        "Still yes.",
	})
	require.NoError(t, err)

	syn, err := service.SaveSynthesis(ctx, &models.Synthesis{
		DebateID:     d.ID,
		Content:      "Use eventual consistency on reads, strong writes.",
		InputTokens:  300,
		OutputTokens: 150,
		Cost:         decimal.RequireFromString("0.002100"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, syn.ID)

	t.Run("one synthesis per debate", func(t *testing.T) {
		_, err := service.SaveSynthesis(ctx, &models.Synthesis{
			DebateID: d.ID,
			Content:  "second opinion",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("detail returns ordered rounds and responses", func(t *testing.T) {
		detail, err := service.GetDebateDetail(ctx, d.ID)
		require.NoError(t, err)
		require.Len(t, detail.Rounds, 2)
		assert.Equal(t, 1, detail.Rounds[0].RoundNumber)
		assert.Equal(t, 2, detail.Rounds[1].RoundNumber)

		require.Len(t, detail.Rounds[0].Responses, 2)
		assert.Equal(t, "analyst", detail.Rounds[0].Responses[0].Personality)
		assert.Equal(t, "skeptic", detail.Rounds[0].Responses[1].Personality)
		assert.Equal(t, "is the premise even sound", detail.Rounds[0].Responses[1].Thinking)
		assert.Empty(t, detail.Rounds[0].Responses[0].Thinking)

		require.NotNil(t, detail.Synthesis)
		assert.Equal(t, syn.ID, detail.Synthesis.ID)
		assert.True(t, detail.Synthesis.Cost.Equal(decimal.RequireFromString("0.002100")))
	})
}

func TestDebateService_ListDebates(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client)
	ctx := context.Background()

	first := createTestDebate(t, service, "user-1", "Should we adopt Kubernetes for batch jobs?")
	second := createTestDebate(t, service, "user-1", "Is a monorepo right for this team?")
	third := createTestDebate(t, service, "user-1", "Do we need a message broker at this scale?")
	createTestDebate(t, service, "user-2", "Someone else's debate")

	require.NoError(t, service.UpdateStatus(ctx, second.ID, models.StatusCancelled, ""))

	t.Run("pages newest first, scoped to owner", func(t *testing.T) {
		list, err := service.ListDebates(ctx, "user-1", models.ListDebatesParams{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, list.Total)
		require.Len(t, list.Debates, 2)
		assert.Equal(t, third.ID, list.Debates[0].ID)
		assert.Equal(t, second.ID, list.Debates[1].ID)

		list, err = service.ListDebates(ctx, "user-1", models.ListDebatesParams{Page: 2, PageSize: 2})
		require.NoError(t, err)
		require.Len(t, list.Debates, 1)
		assert.Equal(t, first.ID, list.Debates[0].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		list, err := service.ListDebates(ctx, "user-1", models.ListDebatesParams{Page: 1, PageSize: 10, Status: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, 1, list.Total)
		require.Len(t, list.Debates, 1)
		assert.Equal(t, second.ID, list.Debates[0].ID)
	})

	t.Run("full-text search on the question", func(t *testing.T) {
		list, err := service.ListDebates(ctx, "user-1", models.ListDebatesParams{Page: 1, PageSize: 10, Search: "kubernetes"})
		require.NoError(t, err)
		assert.Equal(t, 1, list.Total)
		require.Len(t, list.Debates, 1)
		assert.Equal(t, first.ID, list.Debates[0].ID)
	})
}

func TestDebateService_UpdateStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client)
	ctx := context.Background()

	d := createTestDebate(t, service, "user-1", "status transitions")

	t.Run("activation stamps started_at", func(t *testing.T) {
		require.NoError(t, service.UpdateStatus(ctx, d.ID, models.StatusActive, ""))
		got, err := service.GetDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusActive, got.Status)
		require.NotNil(t, got.StartedAt)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("failure stamps completed_at and error message", func(t *testing.T) {
		require.NoError(t, service.UpdateStatus(ctx, d.ID, models.StatusFailed, "provider: boom"))
		got, err := service.GetDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusFailed, got.Status)
		require.NotNil(t, got.CompletedAt)
		assert.Equal(t, "provider: boom", got.ErrorMessage)
	})

	t.Run("missing debate reads as not found", func(t *testing.T) {
		err := service.UpdateStatus(ctx, "no-such-debate", models.StatusActive, "")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("terminal write survives a cancelled request context", func(t *testing.T) {
		d2 := createTestDebate(t, service, "user-1", "detached write")
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, service.UpdateStatus(cancelled, d2.ID, models.StatusCancelled, ""))
		got, err := service.GetDebate(ctx, d2.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, got.Status)
	})
}

func TestDebateService_UpdateTotals(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client)
	ctx := context.Background()

	d := createTestDebate(t, service, "user-1", "running totals")

	total, err := service.UpdateTotals(ctx, d.ID, 100, 50, decimal.RequireFromString("0.001000"))
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("0.001000")))

	total, err = service.UpdateTotals(ctx, d.ID, 40, 10, decimal.RequireFromString("0.000250"))
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("0.001250")), "got %s", total)

	got, err := service.GetDebate(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(140), got.InputTokens)
	assert.Equal(t, int64(60), got.OutputTokens)
	assert.True(t, got.TotalCost.Equal(decimal.RequireFromString("0.001250")))

	_, err = service.UpdateTotals(ctx, "no-such-debate", 1, 1, decimal.Zero)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDebateService_DeleteDebate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client)
	usage := NewUsageService(client.Client, newTestResolver(t), testLogger())
	ctx := context.Background()

	d := createTestDebate(t, service, "user-1", "cascade semantics")
	roundID, err := service.SaveRound(ctx, d.ID, 1)
	require.NoError(t, err)
	_, err = service.SaveResponse(ctx, &models.PersonalityResponse{
		RoundID:       roundID,
		Personality:   "analyst",
		ResponseIndex: 0,
		Answer:        "short-lived",
	})
	require.NoError(t, err)
	_, err = service.SaveSynthesis(ctx, &models.Synthesis{DebateID: d.ID, Content: "gone soon"})
	require.NoError(t, err)

	_, err = usage.Record(ctx, "user-1", models.UsageInput{
		DebateID:     d.ID,
		Provider:     "anthropic",
		Model:        "claude-sonnet-4",
		InputTokens:  100,
		OutputTokens: 50,
		Operation:    models.OperationDebateResponse,
		Personality:  "analyst",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteDebate(ctx, d.ID))

	t.Run("transcript rows cascade", func(t *testing.T) {
		_, err := service.GetDebate(ctx, d.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)

		rounds, err := client.DebateRound.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, rounds)

		responses, err := client.PersonalityResponse.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, responses)

		syntheses, err := client.DebateSynthesis.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, syntheses)
	})

	t.Run("usage records survive deletion", func(t *testing.T) {
		records, err := usage.History(ctx, "user-1", 10, 0, models.TimeRange{})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, d.ID, records[0].DebateID)
	})

	t.Run("deleting again reads as not found", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteDebate(ctx, d.ID), models.ErrNotFound)
	})
}

func TestDebateService_RecoverOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client)
	ctx := context.Background()

	active := createTestDebate(t, service, "user-1", "left running by a dead process")
	require.NoError(t, service.UpdateStatus(ctx, active.ID, models.StatusActive, ""))
	pending := createTestDebate(t, service, "user-1", "still waiting")
	done := createTestDebate(t, service, "user-1", "already finished")
	require.NoError(t, service.UpdateStatus(ctx, done.ID, models.StatusCompleted, ""))

	n, err := service.RecoverOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := service.GetDebate(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, got.Status)
	assert.Equal(t, "orphaned at startup", got.ErrorMessage)
	require.NotNil(t, got.CompletedAt)

	// Untouched debates keep their states.
	got, err = service.GetDebate(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	got, err = service.GetDebate(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
}
