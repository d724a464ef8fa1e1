package debate

import (
	"context"
	"errors"
	"log/slog"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// Engine drives a debate through its state machine:
// start → debate_round → check_consensus → (debate_round | synthesize) → end.
// It produces internal events into the sink; all persistence happens in the
// mapper consuming the other end.
type Engine struct {
	executor *Executor
	logger   *slog.Logger
}

// NewEngine creates an engine over the given executor.
func NewEngine(executor *Executor, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{executor: executor, logger: logger}
}

// Run executes the debate to a terminal event and closes the sink. The
// returned error mirrors the terminal event for the caller's logging;
// clients learn the outcome from the stream.
func (e *Engine) Run(ctx context.Context, d *models.Debate, sink *Sink) error {
	defer sink.Close()

	logger := e.logger.With(
		slog.String("debate_id", d.ID),
		slog.String("provider", d.Provider),
		slog.String("model", d.Model))

	maxRounds := d.Settings.MaxRounds
	sink.Send(DebateStartedEvent{})
	logger.Info("debate started",
		slog.Int("max_rounds", maxRounds),
		slog.Int("personalities", len(d.Settings.Personalities)))

	var (
		rounds    []map[string]string
		reasoning string
	)

	for n := 1; ; n++ {
		sink.Send(RoundStartedEvent{Round: n})

		var prev map[string]string
		if len(rounds) > 0 {
			prev = rounds[len(rounds)-1]
		}
		round, err := e.executor.runRound(ctx, d, n, prev, sink)
		if err != nil {
			return e.fail(sink, logger, err)
		}
		rounds = append(rounds, round)
		sink.Send(RoundCompletedEvent{Round: n})

		// After round N: synthesize iff consensus reached or N ≥ max_rounds.
		if n >= maxRounds {
			logger.Info("round limit reached", slog.Int("rounds", n))
			break
		}
		if n == 1 {
			// Round 1 never has anything to converge from.
			sink.Send(ConsensusCheckStartedEvent{Round: n, Skipped: true})
			continue
		}

		sink.Send(ConsensusCheckStartedEvent{Round: n})
		verdict := e.executor.runConsensus(ctx, d, round)
		if err := ctx.Err(); err != nil {
			return e.fail(sink, logger, err)
		}
		sink.Send(ConsensusCheckedEvent{
			Round:        n,
			Reached:      verdict.Reached,
			Reasoning:    verdict.Reasoning,
			InputTokens:  verdict.InputTokens,
			OutputTokens: verdict.OutputTokens,
			Estimated:    verdict.Estimated,
		})
		if verdict.Reached {
			reasoning = verdict.Reasoning
			logger.Info("consensus reached", slog.Int("round", n))
			break
		}
	}

	if d.Settings.IncludeSynthesis {
		sink.Send(SynthesisStartedEvent{})
		res, err := e.executor.runSynthesis(ctx, d, rounds, reasoning, sink)
		if err != nil {
			return e.fail(sink, logger, err)
		}
		sink.Send(SynthesisCompletedEvent{
			FullText:     res.fullText,
			InputTokens:  res.inputTokens,
			OutputTokens: res.outputTokens,
			Estimated:    res.estimated,
		})
	}

	sink.Send(DebateCompletedEvent{})
	logger.Info("debate completed", slog.Int("rounds", len(rounds)))
	return nil
}

// fail emits the terminal failure event. Cancellation is distinguished so
// the repository records status cancelled rather than failed.
func (e *Engine) fail(sink *Sink, logger *slog.Logger, err error) error {
	cancelled := errors.Is(err, context.Canceled) || errors.Is(err, ErrCancelled)
	reason := err.Error()
	if cancelled {
		reason = "cancelled"
		logger.Info("debate cancelled")
	} else {
		logger.Error("debate failed", slog.String("error", reason))
	}
	sink.Send(DebateFailedEvent{Reason: reason, Cancelled: cancelled})
	if cancelled {
		return ErrCancelled
	}
	return err
}
