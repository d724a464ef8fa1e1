package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/billing"
	"github.com/roundtable-ai/roundtable/pkg/debate"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

func TestCreateDebate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		var gotReq *models.CreateDebateRequest
		router := newTestRouter(t, &stubDebates{
			createFn: func(_ context.Context, userID string, req *models.CreateDebateRequest) (*models.Debate, error) {
				gotReq = req
				return &models.Debate{
					ID:       "debate-1",
					UserID:   userID,
					Question: req.Question,
					Status:   models.StatusPending,
				}, nil
			},
		}, &stubUsage{})

		body := `{"question":"Should we adopt Kubernetes?","provider":"anthropic","model":"claude-sonnet-4","personalities":["analyst","skeptic"]}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/debates", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "debate-1", decodeBody(t, w)["id"])
		require.NotNil(t, gotReq)
		assert.Equal(t, []string{"analyst", "skeptic"}, gotReq.Personalities)
	})

	t.Run("malformed body", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{}, &stubUsage{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/debates", strings.NewReader("{not json")))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			createFn: func(context.Context, string, *models.CreateDebateRequest) (*models.Debate, error) {
				return nil, models.NewValidationError("question", "must not be empty")
			},
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/debates", strings.NewReader(`{"question":""}`)))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, decodeBody(t, w)["error"], "question")
	})

	t.Run("insufficient credits", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			createFn: func(context.Context, string, *models.CreateDebateRequest) (*models.Debate, error) {
				return nil, &billing.InsufficientCreditsError{
					Required:  decimal.RequireFromString("0.05"),
					Available: decimal.RequireFromString("0.01"),
				}
			},
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/debates", strings.NewReader(`{"question":"q"}`)))

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["error"], "insufficient credits")
		assert.Equal(t, "0.05", body["required"])
		assert.Equal(t, "0.01", body["available"])
		assert.Equal(t, "0.04", body["shortfall"])
	})
}

func TestGetDebate(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			getFn: func(_ context.Context, userID, debateID string) (*models.DebateDetail, error) {
				assert.Equal(t, testUserID, userID)
				assert.Equal(t, "debate-1", debateID)
				return &models.DebateDetail{
					Debate: models.Debate{ID: "debate-1", Status: models.StatusCompleted},
					Rounds: []models.Round{{RoundNumber: 1}},
				}, nil
			},
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/debates/debate-1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "completed", body["status"])
		assert.Len(t, body["rounds"], 1)
	})

	t.Run("not found", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			getFn: func(context.Context, string, string) (*models.DebateDetail, error) {
				return nil, models.ErrNotFound
			},
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/debates/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListDebates(t *testing.T) {
	var gotParams models.ListDebatesParams
	router := newTestRouter(t, &stubDebates{
		listFn: func(_ context.Context, _ string, params models.ListDebatesParams) (*models.DebateList, error) {
			gotParams = params
			return &models.DebateList{
				Debates:  []models.Debate{{ID: "debate-1"}, {ID: "debate-2"}},
				Total:    7,
				Page:     params.Page,
				PageSize: 2,
			}, nil
		},
	}, &stubUsage{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet,
		"/api/v1/debates?page=2&page_size=2&status=completed&search=kubernetes", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ListDebatesParams{
		Page:     2,
		PageSize: 2,
		Status:   "completed",
		Search:   "kubernetes",
	}, gotParams)
	body := decodeBody(t, w)
	assert.Equal(t, float64(7), body["total"])
	assert.Len(t, body["debates"], 2)
}

func TestCancelDebate(t *testing.T) {
	t.Run("running debate", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			cancelFn: func(_ context.Context, _, debateID string) error {
				assert.Equal(t, "debate-1", debateID)
				return nil
			},
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/debates/debate-1/cancel", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "cancelled", decodeBody(t, w)["status"])
	})

	t.Run("terminal debate conflicts", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			cancelFn: func(context.Context, string, string) error {
				return debate.ErrInvalidStatus
			},
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/v1/debates/debate-1/cancel", nil))
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDeleteDebate(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			deleteFn: func(context.Context, string, string) error { return nil },
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodDelete, "/api/v1/debates/debate-1", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("active debate conflicts", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			deleteFn: func(context.Context, string, string) error {
				return debate.ErrInvalidStatus
			},
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodDelete, "/api/v1/debates/debate-1", nil))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("foreign debate is not found", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			deleteFn: func(context.Context, string, string) error {
				return models.ErrNotFound
			},
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodDelete, "/api/v1/debates/debate-1", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
