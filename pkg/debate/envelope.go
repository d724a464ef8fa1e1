package debate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// Client-facing event types carried in Envelope.Type.
const (
	EventDebateStarted        = "debate_started"
	EventDebateCompleted      = "debate_completed"
	EventDebateFailed         = "debate_failed"
	EventRoundStarted         = "round_started"
	EventRoundCompleted       = "round_completed"
	EventPersonalityStarted   = "personality_started"
	EventThinkingChunk        = "thinking_chunk"
	EventAnswerChunk          = "answer_chunk"
	EventPersonalityCompleted = "personality_completed"
	EventSynthesisStarted     = "synthesis_started"
	EventSynthesisChunk       = "synthesis_chunk"
	EventSynthesisCompleted   = "synthesis_completed"
	EventProgressUpdate       = "progress_update"
	EventCostUpdate           = "cost_update"
	EventError                = "error"
)

// Envelope is the transport DTO written to the SSE stream. It is never
// persisted.
type Envelope struct {
	Type        string                      `json:"type"`
	DebateID    string                      `json:"debate_id"`
	Timestamp   time.Time                   `json:"timestamp"`
	RoundNumber int                         `json:"round_number,omitempty"`
	Personality string                      `json:"personality,omitempty"`
	Content     string                      `json:"content,omitempty"`
	Response    *models.PersonalityResponse `json:"response,omitempty"`
	Synthesis   *models.Synthesis           `json:"synthesis,omitempty"`
	Progress    map[string]any              `json:"progress,omitempty"`
	TotalCost   *decimal.Decimal            `json:"total_cost,omitempty"`
	Error       string                      `json:"error,omitempty"`
}

// Terminal reports whether the envelope ends the stream for the client. The
// first terminal envelope a client receives is authoritative; repository
// state reflects the last write.
func (e *Envelope) Terminal() bool {
	return e.Type == EventDebateCompleted || e.Type == EventDebateFailed
}
