package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/ent"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

func TestUsageSummary(t *testing.T) {
	t.Run("default range", func(t *testing.T) {
		var gotRng models.TimeRange
		router := newTestRouter(t, &stubDebates{}, &stubUsage{
			summaryFn: func(_ context.Context, userID string, rng models.TimeRange) (*models.UsageSummary, error) {
				assert.Equal(t, testUserID, userID)
				gotRng = rng
				return &models.UsageSummary{
					TotalTokens: 10500,
					TotalCost:   decimal.RequireFromString("0.0615"),
				}, nil
			},
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/usage/summary", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, gotRng.IsZero())
		body := decodeBody(t, w)
		assert.Equal(t, float64(10500), body["total_tokens"])
		assert.Equal(t, "0.0615", body["total_cost"])
	})

	t.Run("explicit range", func(t *testing.T) {
		var gotRng models.TimeRange
		router := newTestRouter(t, &stubDebates{}, &stubUsage{
			summaryFn: func(_ context.Context, _ string, rng models.TimeRange) (*models.UsageSummary, error) {
				gotRng = rng
				return &models.UsageSummary{}, nil
			},
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodGet,
			"/api/v1/usage/summary?from=2026-01-01T00:00:00Z&to=2026-02-01T00:00:00Z", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), gotRng.From.UTC())
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), gotRng.To.UTC())
	})

	t.Run("bad timestamp", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{}, &stubUsage{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/usage/summary?from=yesterday", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUsageHistory(t *testing.T) {
	var gotLimit, gotOffset int
	router := newTestRouter(t, &stubDebates{}, &stubUsage{
		historyFn: func(_ context.Context, _ string, limit, offset int, _ models.TimeRange) ([]*ent.UsageRecord, error) {
			gotLimit, gotOffset = limit, offset
			return []*ent.UsageRecord{
				{ID: "record-1", Provider: "anthropic", Model: "claude-sonnet-4"},
				{ID: "record-2", Provider: "openai", Model: "gpt-4o"},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/usage/history?limit=2&offset=4", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, gotLimit)
	assert.Equal(t, 4, gotOffset)
	assert.Len(t, decodeBody(t, w)["records"], 2)
}

func TestListPersonalities(t *testing.T) {
	router := newTestRouter(t, &stubDebates{}, &stubUsage{})

	t.Run("full list includes system personalities", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/personalities", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["personalities"], "analyst")
		assert.Contains(t, body["personalities"], "synthesizer")
		assert.Contains(t, body["personalities"], "consensus_check")
	})

	t.Run("debate list excludes system personalities", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/personalities/debate", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["personalities"], "analyst")
		assert.NotContains(t, body["personalities"], "synthesizer")
		assert.NotContains(t, body["personalities"], "consensus_check")
	})
}
