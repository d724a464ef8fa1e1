// Package llm provides a uniform streaming chat interface over heterogeneous
// LLM back-ends. Providers differ in wire protocol (OpenAI-compatible,
// Anthropic, Gemini) but every implementation exposes the same finite,
// non-restartable chunk stream.
package llm

import (
	"context"
)

// Client is the streaming chat interface every provider implements.
type Client interface {
	// StreamChat sends a single system+user exchange and returns a stream of
	// chunks. The returned channel is closed when the stream completes.
	// Errors are delivered as ErrorChunk values in the channel; the terminal
	// UsageChunk carries token accounting when the back-end reports it.
	StreamChat(ctx context.Context, cfg ModelConfig, systemPrompt, userMessage string) (<-chan Chunk, error)
}

// ModelConfig selects the back-end and model for one streaming call.
type ModelConfig struct {
	Provider    ProviderType
	Model       string
	Temperature float64
	MaxTokens   int

	// BaseURL overrides the provider's default endpoint (self-hosted
	// back-ends: Ollama, vLLM, LM Studio).
	BaseURL string

	// InstanceSuffix is appended to the model name for providers that need a
	// distinct instance per parallel stream (LM Studio). Zero means no suffix.
	InstanceSuffix int
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText  ChunkType = "text"
	ChunkTypeUsage ChunkType = "usage"
	ChunkTypeError ChunkType = "error"
)

// TextChunk is a chunk of the model's text response.
type TextChunk struct{ Content string }

// UsageChunk reports token consumption for the call. It is emitted at most
// once, immediately before the channel closes.
type UsageChunk struct {
	InputTokens  int64
	OutputTokens int64
	CachedTokens int64
}

// ErrorChunk signals an error from the provider. The stream ends after it.
type ErrorChunk struct {
	Provider string
	Message  string
}

func (c *TextChunk) chunkType() ChunkType  { return ChunkTypeText }
func (c *UsageChunk) chunkType() ChunkType { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType { return ChunkTypeError }
