package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	anyllmlib "github.com/mozilla-ai/any-llm-go"
	"github.com/mozilla-ai/any-llm-go/providers"
	"github.com/mozilla-ai/any-llm-go/providers/anthropic"
	"github.com/mozilla-ai/any-llm-go/providers/gemini"
	"github.com/mozilla-ai/any-llm-go/providers/ollama"
	anyllmoai "github.com/mozilla-ai/any-llm-go/providers/openai"
)

// AnyLLMClient implements Client on top of github.com/mozilla-ai/any-llm-go.
// Anthropic and Gemini use their native back-ends; everything else speaks the
// OpenAI-compatible protocol against the provider's base URL.
type AnyLLMClient struct {
	logger *slog.Logger

	mu       sync.Mutex
	backends map[string]anyllmlib.Provider
}

// NewAnyLLMClient creates a client that lazily constructs one back-end per
// provider/base-URL pair and reuses it across calls.
func NewAnyLLMClient(logger *slog.Logger) *AnyLLMClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnyLLMClient{
		logger:   logger,
		backends: make(map[string]anyllmlib.Provider),
	}
}

// StreamChat implements Client.
func (c *AnyLLMClient) StreamChat(ctx context.Context, cfg ModelConfig, systemPrompt, userMessage string) (<-chan Chunk, error) {
	backend, err := c.backendFor(cfg)
	if err != nil {
		return nil, err
	}

	params := buildParams(cfg, systemPrompt, userMessage)
	backendChunks, backendErrs := backend.CompletionStream(ctx, params)

	out := make(chan Chunk, 32)
	go relayStream(ctx, string(cfg.Provider), backendChunks, backendErrs, out)

	return out, nil
}

// relayStream forwards back-end chunks to out, translating content deltas
// into TextChunks. Providers report token accounting on a final chunk whose
// Choices slice is empty; that usage is captured and emitted as the terminal
// UsageChunk once the stream drains cleanly.
func relayStream(ctx context.Context, provider string, backendChunks <-chan providers.ChatCompletionChunk, backendErrs <-chan error, out chan<- Chunk) {
	defer close(out)

	var usage *UsageChunk
	for chunk := range backendChunks {
		if chunk.Usage != nil {
			usage = &UsageChunk{
				InputTokens:  int64(chunk.Usage.PromptTokens),
				OutputTokens: int64(chunk.Usage.CompletionTokens),
			}
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		content := chunk.Choices[0].Delta.Content
		if content == "" {
			continue
		}
		select {
		case out <- &TextChunk{Content: content}:
		case <-ctx.Done():
			return
		}
	}

	// Back-end errors surface after the chunk channel is drained.
	if err := <-backendErrs; err != nil {
		msg := err.Error()
		if ctx.Err() != nil {
			msg = ctx.Err().Error()
		}
		select {
		case out <- &ErrorChunk{Provider: provider, Message: msg}:
		case <-ctx.Done():
		}
		return
	}

	if usage != nil {
		select {
		case out <- usage:
		case <-ctx.Done():
		}
	}
}

// backendFor returns a cached back-end for the provider/base-URL pair,
// constructing it on first use. API keys are validated here, before any
// network I/O.
func (c *AnyLLMClient) backendFor(cfg ModelConfig) (anyllmlib.Provider, error) {
	settings, err := SettingsFor(cfg.Provider)
	if err != nil {
		return nil, err
	}

	apiKey, err := resolveAPIKey(cfg.Provider, settings)
	if err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = settings.DefaultBaseURL
	}

	cacheKey := string(cfg.Provider) + "|" + baseURL

	c.mu.Lock()
	defer c.mu.Unlock()

	if backend, ok := c.backends[cacheKey]; ok {
		return backend, nil
	}

	backend, err := createBackend(cfg.Provider, apiKey, baseURL)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("created LLM backend",
		slog.String("provider", string(cfg.Provider)),
		slog.String("base_url", baseURL))

	c.backends[cacheKey] = backend
	return backend, nil
}

// createBackend builds the any-llm-go provider for one back-end family.
// OpenAI-compatible providers (xAI, OpenRouter, vLLM, LM Studio) share the
// OpenAI back-end pointed at their own base URL.
func createBackend(p ProviderType, apiKey, baseURL string) (anyllmlib.Provider, error) {
	var opts []anyllmlib.Option
	if apiKey != "" {
		opts = append(opts, anyllmlib.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		opts = append(opts, anyllmlib.WithBaseURL(baseURL))
	}

	switch p {
	case ProviderAnthropic:
		return anthropic.New(opts...)
	case ProviderGoogle:
		return gemini.New(opts...)
	case ProviderOllama:
		return ollama.New(opts...)
	case ProviderOpenAI, ProviderXAI, ProviderOpenRouter, ProviderVLLM, ProviderLMStudio:
		return anyllmoai.New(opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, p)
	}
}

// buildParams converts a ModelConfig plus prompts into completion params.
// The instance suffix yields "model:N" so back-ends that serve one stream
// per loaded model (LM Studio) can run a round in parallel.
func buildParams(cfg ModelConfig, systemPrompt, userMessage string) anyllmlib.CompletionParams {
	model := cfg.Model
	if cfg.InstanceSuffix > 0 {
		model = fmt.Sprintf("%s:%d", strings.TrimSpace(model), cfg.InstanceSuffix)
	}

	messages := []anyllmlib.Message{
		{Role: anyllmlib.RoleSystem, Content: systemPrompt},
		{Role: "user", Content: userMessage},
	}

	params := anyllmlib.CompletionParams{
		Model:    model,
		Messages: messages,
	}
	if cfg.Temperature != 0 {
		t := cfg.Temperature
		params.Temperature = &t
	}
	if cfg.MaxTokens > 0 {
		mt := cfg.MaxTokens
		params.MaxTokens = &mt
	}
	return params
}
