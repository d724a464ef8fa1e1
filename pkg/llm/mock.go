package llm

import (
	"context"
	"sync"
)

// StreamCall records a single invocation of MockClient.StreamChat.
type StreamCall struct {
	Config       ModelConfig
	SystemPrompt string
	UserMessage  string
}

// MockClient is a test double for Client. Responses are scripted per call:
// Script entries are consumed in order; when the script runs out, Default is
// replayed. Zero value streams nothing and closes immediately.
//
// All fields must be set before first use; call records are safe to read
// after the streams complete.
type MockClient struct {
	mu sync.Mutex

	// Script holds per-call chunk sequences, consumed in invocation order.
	Script [][]Chunk

	// Default is replayed for calls beyond the end of Script.
	Default []Chunk

	// Err, if non-nil, is returned from StreamChat instead of a channel.
	Err error

	// Calls records every invocation in order.
	Calls []StreamCall
}

// StreamChat implements Client.
func (m *MockClient) StreamChat(ctx context.Context, cfg ModelConfig, systemPrompt, userMessage string) (<-chan Chunk, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, StreamCall{Config: cfg, SystemPrompt: systemPrompt, UserMessage: userMessage})
	if m.Err != nil {
		err := m.Err
		m.mu.Unlock()
		return nil, err
	}
	var chunks []Chunk
	if len(m.Script) > 0 {
		chunks = m.Script[0]
		m.Script = m.Script[1:]
	} else {
		chunks = m.Default
	}
	m.mu.Unlock()

	ch := make(chan Chunk, len(chunks)+1)
	go func() {
		defer close(ch)
		for _, c := range chunks {
			select {
			case <-ctx.Done():
				return
			case ch <- c:
			}
		}
	}()
	return ch, nil
}

// TextStream is a convenience builder for a scripted response: the text is
// emitted as one TextChunk followed by a UsageChunk.
func TextStream(text string, inputTokens, outputTokens int64) []Chunk {
	return []Chunk{
		&TextChunk{Content: text},
		&UsageChunk{InputTokens: inputTokens, OutputTokens: outputTokens},
	}
}
