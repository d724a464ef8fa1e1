package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/debate"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

func TestStreamDebate(t *testing.T) {
	t.Run("relays envelopes as SSE frames", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			streamFn: func(_ context.Context, userID, debateID string, emit debate.EmitFunc) error {
				assert.Equal(t, testUserID, userID)
				assert.Equal(t, "debate-1", debateID)
				for _, typ := range []string{
					debate.EventDebateStarted,
					debate.EventAnswerChunk,
					debate.EventDebateCompleted,
				} {
					if err := emit(&debate.Envelope{
						Type:      typ,
						DebateID:  debateID,
						Timestamp: time.Now().UTC(),
						Content:   "chunk",
					}); err != nil {
						return err
					}
				}
				return nil
			},
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/debates/debate-1/stream", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "event:debate_started")
		assert.Contains(t, body, "event:answer_chunk")
		assert.Contains(t, body, "event:debate_completed")
		assert.Contains(t, body, `"debate_id":"debate-1"`)
	})

	t.Run("pre-stream error renders as JSON", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			streamFn: func(context.Context, string, string, debate.EmitFunc) error {
				return models.ErrNotFound
			},
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/debates/nope/stream", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})

	t.Run("second stream conflicts", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			streamFn: func(context.Context, string, string, debate.EmitFunc) error {
				return debate.ErrAlreadyRunning
			},
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/debates/debate-1/stream", nil))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("mid-stream failure leaves the stream as-is", func(t *testing.T) {
		router := newTestRouter(t, &stubDebates{
			streamFn: func(_ context.Context, _, debateID string, emit debate.EmitFunc) error {
				if err := emit(&debate.Envelope{
					Type:      debate.EventDebateStarted,
					DebateID:  debateID,
					Timestamp: time.Now().UTC(),
				}); err != nil {
					return err
				}
				return context.Canceled
			},
		}, &stubUsage{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/v1/debates/debate-1/stream", nil))

		// Headers already went out with the first frame; no JSON error may
		// be appended after it.
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.NotContains(t, w.Body.String(), "internal server error")
	})
}
