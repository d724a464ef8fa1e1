package debate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/personality"
)

// EmitFunc delivers one envelope to the client. An error means the client is
// gone; the mapper keeps persisting regardless, since the transcript must
// survive the stream.
type EmitFunc func(*Envelope) error

// Mapper consumes the engine's event stream, performs every persistence side
// effect, and re-emits client-shaped envelopes. It is the only writer to the
// repository while a debate is live. Persistence always precedes the event
// that announces it, so the transcript is durable the moment the client is
// told about it.
type Mapper struct {
	store  Store
	usage  UsageRecorder
	logger *slog.Logger

	debate *models.Debate
	emit   EmitFunc

	// Per-debate streaming context.
	currentRound   int
	currentRoundID string
	emitFailed     bool
}

// NewMapper creates a mapper for one live debate.
func NewMapper(store Store, usage UsageRecorder, d *models.Debate, emit EmitFunc, logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{
		store:  store,
		usage:  usage,
		logger: logger.With(slog.String("debate_id", d.ID)),
		debate: d,
		emit:   emit,
	}
}

// Run consumes the sink until it is drained. Terminal persistence uses a
// context detached from ctx so a cancelled debate still lands in storage.
func (m *Mapper) Run(ctx context.Context, sink *Sink) error {
	// Detached for writes that must survive cancellation.
	writeCtx := context.WithoutCancel(ctx)

	for {
		ev, ok := sink.Next(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				// Consumer side cancelled while the producer is still live;
				// record the cancellation so the debate is not orphaned.
				m.terminate(writeCtx, models.StatusCancelled, "cancelled")
				return err
			}
			return nil
		}
		if err := m.handle(writeCtx, ev); err != nil {
			// Repository failure: the stream cannot continue truthfully.
			m.logger.Error("persistence failed during stream", slog.String("error", err.Error()))
			m.terminate(writeCtx, models.StatusFailed, fmt.Sprintf("repository: %v", err))
			return err
		}
	}
}

func (m *Mapper) handle(ctx context.Context, ev Event) error {
	switch e := ev.(type) {
	case DebateStartedEvent:
		if err := m.store.UpdateStatus(ctx, m.debate.ID, models.StatusActive, ""); err != nil {
			return err
		}
		m.send(&Envelope{Type: EventDebateStarted})

	case RoundStartedEvent:
		roundID, err := m.store.SaveRound(ctx, m.debate.ID, e.Round)
		if err != nil {
			return err
		}
		m.currentRound = e.Round
		m.currentRoundID = roundID
		m.send(&Envelope{Type: EventRoundStarted, RoundNumber: e.Round})

	case RoundCompletedEvent:
		m.send(&Envelope{Type: EventRoundCompleted, RoundNumber: e.Round})

	case PersonalityStartedEvent:
		m.send(&Envelope{Type: EventPersonalityStarted, RoundNumber: e.Round, Personality: e.Personality})

	case TokenEvent:
		eventType := EventAnswerChunk
		if e.Personality == personality.Synthesizer {
			eventType = EventSynthesisChunk
		}
		m.send(&Envelope{Type: eventType, RoundNumber: m.currentRound, Personality: e.Personality, Content: e.Content})

	case PersonalityCompletedEvent:
		return m.completePersonality(ctx, e)

	case ConsensusCheckStartedEvent:
		m.send(&Envelope{Type: EventProgressUpdate, RoundNumber: e.Round, Progress: map[string]any{
			"phase":   "consensus_check",
			"round":   e.Round,
			"skipped": e.Skipped,
		}})

	case ConsensusCheckedEvent:
		return m.completeConsensus(ctx, e)

	case SynthesisStartedEvent:
		m.send(&Envelope{Type: EventSynthesisStarted})

	case SynthesisCompletedEvent:
		return m.completeSynthesis(ctx, e)

	case DebateCompletedEvent:
		if err := m.store.UpdateStatus(ctx, m.debate.ID, models.StatusCompleted, ""); err != nil {
			return err
		}
		cost := m.debate.TotalCost
		m.send(&Envelope{Type: EventDebateCompleted, TotalCost: &cost})

	case DebateFailedEvent:
		status := models.StatusFailed
		if e.Cancelled {
			status = models.StatusCancelled
		}
		if err := m.store.UpdateStatus(ctx, m.debate.ID, status, e.Reason); err != nil {
			m.logger.Error("failed to persist terminal status", slog.String("error", err.Error()))
		}
		m.send(&Envelope{Type: EventError, Error: e.Reason})
		m.send(&Envelope{Type: EventDebateFailed, Error: e.Reason})
	}
	return nil
}

// completePersonality splits the turn into thinking and answer, records
// usage, persists the response, then announces it followed by the running
// cost.
func (m *Mapper) completePersonality(ctx context.Context, e PersonalityCompletedEvent) error {
	thinking, answer := splitThinking(e.FullText)

	round := e.Round
	cost, err := m.usage.Record(ctx, m.debate.UserID, models.UsageInput{
		DebateID:     m.debate.ID,
		Provider:     m.debate.Provider,
		Model:        m.debate.Model,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		CachedTokens: e.CachedTokens,
		Operation:    models.OperationDebateResponse,
		Personality:  e.Personality,
		RoundNumber:  &round,
		Estimated:    e.Estimated,
	})
	if err != nil {
		return err
	}

	resp, err := m.store.SaveResponse(ctx, &models.PersonalityResponse{
		RoundID:       m.currentRoundID,
		Personality:   e.Personality,
		ResponseIndex: e.ResponseIndex,
		Thinking:      thinking,
		Answer:        answer,
		InputTokens:   e.InputTokens,
		OutputTokens:  e.OutputTokens,
		Cost:          cost,
	})
	if err != nil {
		return err
	}

	total, err := m.store.UpdateTotals(ctx, m.debate.ID, e.InputTokens, e.OutputTokens, cost)
	if err != nil {
		return err
	}
	m.debate.TotalCost = total

	m.send(&Envelope{
		Type:        EventPersonalityCompleted,
		RoundNumber: e.Round,
		Personality: e.Personality,
		Response:    resp,
	})
	m.send(&Envelope{Type: EventCostUpdate, TotalCost: &total})
	return nil
}

// completeConsensus records the judge's usage and reports the verdict as a
// progress update.
func (m *Mapper) completeConsensus(ctx context.Context, e ConsensusCheckedEvent) error {
	round := e.Round
	cost, err := m.usage.Record(ctx, m.debate.UserID, models.UsageInput{
		DebateID:     m.debate.ID,
		Provider:     m.debate.Provider,
		Model:        m.debate.Model,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		Operation:    models.OperationConsensusCheck,
		RoundNumber:  &round,
		Estimated:    e.Estimated,
	})
	if err != nil {
		return err
	}
	total, err := m.store.UpdateTotals(ctx, m.debate.ID, e.InputTokens, e.OutputTokens, cost)
	if err != nil {
		return err
	}
	m.debate.TotalCost = total

	m.send(&Envelope{Type: EventProgressUpdate, RoundNumber: e.Round, Progress: map[string]any{
		"phase":     "consensus_result",
		"round":     e.Round,
		"consensus": e.Reached,
		"reasoning": e.Reasoning,
	}})
	return nil
}

// completeSynthesis mirrors personality completion for the synthesizer turn.
func (m *Mapper) completeSynthesis(ctx context.Context, e SynthesisCompletedEvent) error {
	cost, err := m.usage.Record(ctx, m.debate.UserID, models.UsageInput{
		DebateID:     m.debate.ID,
		Provider:     m.debate.Provider,
		Model:        m.debate.Model,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		Operation:    models.OperationSynthesis,
		Estimated:    e.Estimated,
	})
	if err != nil {
		return err
	}

	syn, err := m.store.SaveSynthesis(ctx, &models.Synthesis{
		DebateID:     m.debate.ID,
		Content:      strings.TrimSpace(e.FullText),
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		Cost:         cost,
	})
	if err != nil {
		return err
	}

	total, err := m.store.UpdateTotals(ctx, m.debate.ID, e.InputTokens, e.OutputTokens, cost)
	if err != nil {
		return err
	}
	m.debate.TotalCost = total

	m.send(&Envelope{Type: EventSynthesisCompleted, Synthesis: syn})
	m.send(&Envelope{Type: EventCostUpdate, TotalCost: &total})
	return nil
}

// terminate force-persists a terminal status and tells the client, used when
// the consumer dies or persistence breaks mid-stream.
func (m *Mapper) terminate(ctx context.Context, status models.DebateStatus, reason string) {
	if err := m.store.UpdateStatus(ctx, m.debate.ID, status, reason); err != nil {
		m.logger.Error("failed to persist terminal status", slog.String("error", err.Error()))
	}
	m.send(&Envelope{Type: EventError, Error: reason})
	m.send(&Envelope{Type: EventDebateFailed, Error: reason})
}

// send stamps and delivers one envelope. After the first delivery failure
// the client is considered gone and further sends are skipped.
func (m *Mapper) send(env *Envelope) {
	if m.emitFailed || m.emit == nil {
		return
	}
	env.DebateID = m.debate.ID
	env.Timestamp = time.Now().UTC()
	if err := m.emit(env); err != nil {
		m.emitFailed = true
		m.logger.Debug("client stopped consuming stream", slog.String("error", err.Error()))
	}
}
