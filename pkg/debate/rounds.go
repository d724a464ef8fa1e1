package debate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/personality"
	"github.com/roundtable-ai/roundtable/pkg/tokens"
)

const (
	// personalityTimeout caps one personality turn.
	personalityTimeout = 120 * time.Second

	// synthesisTimeout caps the synthesizer turn, which reads the whole
	// transcript.
	synthesisTimeout = 240 * time.Second
)

// turnResult is the outcome of a single streamed turn.
type turnResult struct {
	personality  string
	fullText     string
	inputTokens  int64
	outputTokens int64
	cachedTokens int64
	estimated    bool
}

// Executor runs the parallel personality fan-out for one round and the
// single-stream consensus and synthesis turns.
type Executor struct {
	client        llm.Client
	personalities *personality.Registry
	counter       tokens.Counter
	logger        *slog.Logger
}

// NewExecutor creates a round executor.
func NewExecutor(client llm.Client, reg *personality.Registry, counter tokens.Counter, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		client:        client,
		personalities: reg,
		counter:       counter,
		logger:        logger,
	}
}

// runRound fans out every personality in parallel and returns the completed
// round as personality → full text. Any turn failure cancels the remaining
// turns and fails the round.
func (e *Executor) runRound(ctx context.Context, d *models.Debate, roundNumber int, prevRound map[string]string, sink *Sink) (map[string]string, error) {
	names := d.Settings.Personalities
	userMessage := roundPrompt(d.Question, names, prevRound)

	configs, err := e.modelConfigs(d, len(names))
	if err != nil {
		return nil, err
	}

	results := make([]turnResult, len(names))
	g, gctx := errgroup.WithContext(ctx)

	for i, name := range names {
		prompt, err := e.personalities.Prompt(name)
		if err != nil {
			return nil, err
		}

		cfg := configs[i]
		index := i
		g.Go(func() error {
			sink.Send(PersonalityStartedEvent{Round: roundNumber, Personality: name})

			res, err := e.streamTurn(gctx, cfg, name, prompt, userMessage, personalityTimeout, sink)
			if err != nil {
				return fmt.Errorf("personality %s: %w", name, err)
			}

			results[index] = res
			sink.Send(PersonalityCompletedEvent{
				Round:         roundNumber,
				Personality:   name,
				ResponseIndex: index,
				FullText:      res.fullText,
				InputTokens:   res.inputTokens,
				OutputTokens:  res.outputTokens,
				CachedTokens:  res.cachedTokens,
				Estimated:     res.estimated,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	round := make(map[string]string, len(names))
	for _, res := range results {
		round[res.personality] = res.fullText
	}
	return round, nil
}

// modelConfigs builds one ModelConfig per participant. Providers that need a
// distinct instance per parallel stream get suffix indices assigned per
// provider type, restarting at 1 for each distinct provider in the round.
func (e *Executor) modelConfigs(d *models.Debate, n int) ([]llm.ModelConfig, error) {
	provider := llm.ProviderType(d.Provider)
	settings, err := llm.SettingsFor(provider)
	if err != nil {
		return nil, err
	}

	nextSuffix := map[llm.ProviderType]int{}
	configs := make([]llm.ModelConfig, n)
	for i := range configs {
		cfg := llm.ModelConfig{
			Provider:    provider,
			Model:       d.Model,
			Temperature: d.Settings.Temperature,
			BaseURL:     d.Settings.BaseURL,
		}
		if settings.SupportsInstanceSuffix {
			nextSuffix[provider]++
			cfg.InstanceSuffix = nextSuffix[provider]
		}
		configs[i] = cfg
	}
	return configs, nil
}

// streamTurn runs one provider stream to completion, forwarding each delta
// to the sink tagged with the personality. Token accounting prefers the
// provider's usage report; otherwise the local counter fills in, flagged
// estimated.
func (e *Executor) streamTurn(ctx context.Context, cfg llm.ModelConfig, name, systemPrompt, userMessage string, timeout time.Duration, sink *Sink) (turnResult, error) {
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chunks, err := e.client.StreamChat(tctx, cfg, systemPrompt, userMessage)
	if err != nil {
		return turnResult{}, err
	}

	var (
		text  strings.Builder
		usage *llm.UsageChunk
	)
	for chunk := range chunks {
		switch c := chunk.(type) {
		case *llm.TextChunk:
			text.WriteString(c.Content)
			if sink != nil {
				sink.Send(TokenEvent{Personality: name, Content: c.Content})
			}
		case *llm.UsageChunk:
			usage = c
		case *llm.ErrorChunk:
			if errors.Is(tctx.Err(), context.DeadlineExceeded) {
				return turnResult{}, &llm.ProviderError{
					Provider: c.Provider,
					Message:  fmt.Sprintf("turn exceeded %s", timeout),
				}
			}
			if ctx.Err() != nil {
				return turnResult{}, ctx.Err()
			}
			return turnResult{}, &llm.ProviderError{Provider: c.Provider, Message: c.Message}
		}
	}
	if err := tctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return turnResult{}, &llm.ProviderError{
				Provider: string(cfg.Provider),
				Message:  fmt.Sprintf("turn exceeded %s", timeout),
			}
		}
		return turnResult{}, ctx.Err()
	}

	res := turnResult{personality: name, fullText: text.String()}
	if usage != nil {
		res.inputTokens = usage.InputTokens
		res.outputTokens = usage.OutputTokens
		res.cachedTokens = usage.CachedTokens
	} else {
		res.inputTokens = int64(e.counter.Count(cfg.Model, systemPrompt) + e.counter.Count(cfg.Model, userMessage))
		res.outputTokens = int64(e.counter.Count(cfg.Model, res.fullText))
		res.estimated = true
	}
	return res, nil
}
