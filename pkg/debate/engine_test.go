package debate

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

// echoClient answers "four" to debate turns, a fixed verdict to consensus
// calls, and "the answer is four" to synthesis.
func echoClient(verdict string) *routingClient {
	return &routingClient{
		respond: func(call int, cfg llm.ModelConfig, system, user string) []llm.Chunk {
			switch {
			case isConsensusCall(user):
				return llm.TextStream(verdict, 20, 10)
			case isSynthesisCall(user):
				return llm.TextStream("the answer is four", 30, 5)
			default:
				return llm.TextStream("four", 10, 1)
			}
		},
	}
}

func TestDebateRoundLimit(t *testing.T) {
	h := newHarness(t, echoClient(`{"consensus": false, "reasoning": "still apart"}`), defaultSettings(2))
	engErr, mapErr := h.run(context.Background())
	require.NoError(t, engErr)
	require.NoError(t, mapErr)

	types := h.types()

	t.Run("stream opens and closes correctly", func(t *testing.T) {
		require.NotEmpty(t, types)
		assert.Equal(t, EventDebateStarted, types[0])
		assert.Equal(t, EventDebateCompleted, types[len(types)-1])
	})

	t.Run("two rounds, consensus skipped after round 1", func(t *testing.T) {
		assert.Equal(t, 2, countType(types, EventRoundStarted))
		assert.Equal(t, 2, countType(types, EventRoundCompleted))
		assert.Equal(t, 1, countType(types, EventProgressUpdate))
		assert.Equal(t, 1, countType(types, EventSynthesisStarted))
		assert.Equal(t, 1, countType(types, EventSynthesisCompleted))
	})

	t.Run("cost update follows every completion", func(t *testing.T) {
		// 4 personality turns + 1 synthesis.
		assert.Equal(t, 5, countType(types, EventCostUpdate))
	})

	t.Run("persisted transcript is complete", func(t *testing.T) {
		assert.Len(t, h.store.rounds, 2)
		total := 0
		for _, responses := range h.store.responses {
			total += len(responses)
		}
		assert.Equal(t, 4, total)
		require.Contains(t, h.store.synthesis, "d1")
		assert.Equal(t, "the answer is four", h.store.synthesis["d1"].Content)
	})

	t.Run("debate is completed with non-zero totals", func(t *testing.T) {
		d, err := h.store.GetDebate(context.Background(), "d1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, d.Status)
		assert.Positive(t, d.InputTokens)
		assert.Positive(t, d.OutputTokens)
		assert.True(t, d.TotalCost.IsPositive())
		assert.NotNil(t, d.StartedAt)
		assert.NotNil(t, d.CompletedAt)
	})

	t.Run("personality ordering holds per stream", func(t *testing.T) {
		started := map[string]bool{}
		for _, env := range h.envelopes {
			switch env.Type {
			case EventPersonalityStarted:
				started[env.Personality] = true
			case EventAnswerChunk:
				assert.True(t, started[env.Personality], "chunk before personality_started for %s", env.Personality)
			}
		}
	})
}

func TestDebateEarlyConsensus(t *testing.T) {
	h := newHarness(t, echoClient(`{"consensus": true, "reasoning": "agreed"}`), defaultSettings(5))
	engErr, mapErr := h.run(context.Background())
	require.NoError(t, engErr)
	require.NoError(t, mapErr)

	types := h.types()
	assert.Equal(t, 2, countType(types, EventRoundCompleted), "consensus on round 2 must stop the debate")
	assert.Equal(t, 1, countType(types, EventSynthesisCompleted))
	assert.Equal(t, EventDebateCompleted, types[len(types)-1])

	for _, env := range h.envelopes {
		assert.LessOrEqual(t, env.RoundNumber, 2, "no round 3 events may appear")
	}

	t.Run("check and result are distinct progress phases", func(t *testing.T) {
		var phases []string
		for _, env := range h.envelopes {
			if env.Type == EventProgressUpdate {
				phases = append(phases, env.Progress["phase"].(string))
			}
		}
		// Round 1 announces a skipped check; round 2 announces the check and
		// then its verdict.
		require.Equal(t, []string{"consensus_check", "consensus_check", "consensus_result"}, phases)

		for _, env := range h.envelopes {
			if env.Type != EventProgressUpdate {
				continue
			}
			switch env.RoundNumber {
			case 1:
				assert.Equal(t, true, env.Progress["skipped"])
			case 2:
				if env.Progress["phase"] == "consensus_result" {
					assert.Equal(t, true, env.Progress["consensus"])
					assert.Equal(t, "agreed", env.Progress["reasoning"])
				} else {
					assert.Equal(t, false, env.Progress["skipped"])
				}
			}
		}
	})
}

func TestDebateSingleRoundNeverChecksConsensus(t *testing.T) {
	client := echoClient(`{"consensus": false, "reasoning": "n/a"}`)
	h := newHarness(t, client, defaultSettings(1))
	engErr, mapErr := h.run(context.Background())
	require.NoError(t, engErr)
	require.NoError(t, mapErr)

	types := h.types()
	assert.Equal(t, 1, countType(types, EventRoundCompleted))
	assert.Zero(t, countType(types, EventProgressUpdate), "max_rounds=1 never runs the judge")
	assert.Equal(t, 1, countType(types, EventSynthesisCompleted))

	// 2 personalities + 1 synthesis; no judge call.
	assert.Equal(t, 3, client.calls)
}

func TestDebateForcedNonConsensusTerminates(t *testing.T) {
	h := newHarness(t, echoClient(`{"consensus": false, "reasoning": "never"}`), defaultSettings(10))
	engErr, mapErr := h.run(context.Background())
	require.NoError(t, engErr)
	require.NoError(t, mapErr)

	types := h.types()
	assert.Equal(t, 10, countType(types, EventRoundCompleted))
	assert.Equal(t, EventDebateCompleted, types[len(types)-1])
}

func TestDebateProviderFailure(t *testing.T) {
	var failOnce sync.Once
	client := &routingClient{
		respond: func(call int, cfg llm.ModelConfig, system, user string) []llm.Chunk {
			failed := false
			failOnce.Do(func() { failed = true })
			if failed {
				return []llm.Chunk{&llm.ErrorChunk{Provider: "mock", Message: "upstream exploded"}}
			}
			return llm.TextStream("four", 10, 1)
		},
	}

	h := newHarness(t, client, defaultSettings(3))
	engErr, _ := h.run(context.Background())
	require.Error(t, engErr)

	var provErr *llm.ProviderError
	assert.ErrorAs(t, engErr, &provErr)

	types := h.types()
	assert.Equal(t, EventDebateFailed, types[len(types)-1])
	assert.Equal(t, 1, countType(types, EventError))

	d, err := h.store.GetDebate(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, d.Status)
	assert.Contains(t, d.ErrorMessage, "upstream exploded")
}

func TestDebateCancellationMidRound(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := echoClient(`{"consensus": false, "reasoning": "no"}`)
	h := newHarness(t, client, defaultSettings(5))

	// Cancel as soon as the first personality starts.
	var once sync.Once
	orig := h.mapper.emit
	h.mapper.emit = func(env *Envelope) error {
		if env.Type == EventPersonalityStarted {
			once.Do(cancel)
		}
		return orig(env)
	}

	engErr, _ := h.run(ctx)
	require.Error(t, engErr)
	assert.True(t, errors.Is(engErr, ErrCancelled) || errors.Is(engErr, context.Canceled))

	d, err := h.store.GetDebate(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, d.Status)

	// In-flight responses are either fully persisted or absent.
	for _, responses := range h.store.responses {
		for _, resp := range responses {
			assert.NotEmpty(t, resp.Answer)
			assert.NotEmpty(t, resp.ID)
		}
	}
}

func TestDebateRepositoryFailure(t *testing.T) {
	h := newHarness(t, echoClient(`{"consensus": false, "reasoning": "no"}`), defaultSettings(2))
	h.store.failSaveResponse = true

	_, mapErr := h.run(context.Background())
	require.Error(t, mapErr)

	d, err := h.store.GetDebate(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, d.Status)
	assert.Contains(t, d.ErrorMessage, "repository")
}

func TestStreamedChunksMatchPersistedResponse(t *testing.T) {
	// One personality thinks out loud; the stream carries the raw body while
	// persistence splits it.
	client := &routingClient{
		respond: func(call int, cfg llm.ModelConfig, system, user string) []llm.Chunk {
			switch {
			case isSynthesisCall(user):
				return llm.TextStream("done", 5, 1)
			default:
				return []llm.Chunk{
					&llm.TextChunk{Content: "<think>hmm, arith"},
					&llm.TextChunk{Content: "metic</think>four"},
					&llm.UsageChunk{InputTokens: 10, OutputTokens: 8},
				}
			}
		},
	}

	settings := defaultSettings(1)
	settings.Personalities = []string{"analyst"}
	h := newHarness(t, client, settings)
	engErr, mapErr := h.run(context.Background())
	require.NoError(t, engErr)
	require.NoError(t, mapErr)

	var streamed strings.Builder
	for _, env := range h.envelopes {
		if env.Type == EventAnswerChunk && env.Personality == "analyst" {
			streamed.WriteString(env.Content)
		}
	}

	var resp *models.PersonalityResponse
	for _, responses := range h.store.responses {
		for _, r := range responses {
			if r.Personality == "analyst" {
				resp = r
			}
		}
	}
	require.NotNil(t, resp)
	assert.Equal(t, "hmm, arithmetic", resp.Thinking)
	assert.Equal(t, "four", resp.Answer)
	// The streamed bytes contain exactly the persisted thinking and answer.
	assert.Contains(t, streamed.String(), resp.Thinking)
	assert.Contains(t, streamed.String(), resp.Answer)
	assert.False(t, resp.Cost.IsNegative())
}
