package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/roundtable-ai/roundtable/pkg/debate"
)

// pingInterval keeps idle SSE connections alive through proxies.
const pingInterval = 15 * time.Second

// sseWriter serializes event frames from the debate stream and the ping
// loop onto one connection. Headers go out with the first frame, so
// pre-stream errors can still render as plain JSON.
type sseWriter struct {
	c *gin.Context

	mu      sync.Mutex
	started bool
	failed  bool
}

func (w *sseWriter) writeFrame(event string, data any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.failed {
		return http.ErrAbortHandler
	}
	if !w.started {
		w.started = true
		header := w.c.Writer.Header()
		header.Set("Content-Type", "text/event-stream")
		header.Set("Cache-Control", "no-cache")
		header.Set("Connection", "keep-alive")
		header.Set("X-Accel-Buffering", "no")
		w.c.Writer.WriteHeader(http.StatusOK)
	}
	if err := sse.Encode(w.c.Writer, sse.Event{Event: event, Data: data}); err != nil {
		w.failed = true
		return err
	}
	w.c.Writer.Flush()
	return nil
}

func (w *sseWriter) ping() {
	// Pings only keep an open stream alive; they never open one.
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()
	if !started {
		return
	}
	_ = w.writeFrame("ping", gin.H{"ts": time.Now().UTC().Format(time.RFC3339)})
}

func (w *sseWriter) wroteAnything() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.started
}

// StreamDebate handles GET /api/v1/debates/:id/stream. It runs the debate
// and relays every envelope as an SSE frame; closing the connection cancels
// the debate.
func (s *Server) StreamDebate(c *gin.Context) {
	w := &sseWriter{c: c}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				w.ping()
			}
		}
	}()

	err := s.debates.StartStream(c.Request.Context(), userID(c), c.Param("id"), func(env *debate.Envelope) error {
		return w.writeFrame(env.Type, env)
	})
	close(done)

	if err != nil && !w.wroteAnything() {
		// The stream never opened, so a plain error response is still
		// possible (unknown debate, wrong owner, not pending).
		s.renderServiceError(c, err)
	}
}
