// Package tokens estimates token counts for prompt text using real
// tokenizer vocabularies. Estimates feed cost projections and fill in usage
// when a provider does not report it; they are flagged as estimated
// downstream.
package tokens

import (
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for model/text pairs.
type Counter interface {
	// Count returns the number of tokens text encodes to under the
	// tokenizer matching model. Empty text is 0 tokens.
	Count(model, text string) int
}

const encoderCacheSize = 8

// TiktokenCounter implements Counter with BPE vocabularies from
// tiktoken-go. Encoder handles are expensive to build, so they are kept in a
// small LRU keyed by encoding name.
type TiktokenCounter struct {
	mu       sync.Mutex
	encoders *lru.Cache[string, *tiktoken.Tiktoken]
}

// NewTiktokenCounter creates a counter with an empty encoder cache.
func NewTiktokenCounter() *TiktokenCounter {
	cache, _ := lru.New[string, *tiktoken.Tiktoken](encoderCacheSize)
	return &TiktokenCounter{encoders: cache}
}

// Count implements Counter.
func (c *TiktokenCounter) Count(model, text string) int {
	if text == "" {
		return 0
	}
	enc := c.encoderFor(model)
	if enc == nil {
		// No vocabulary could be loaded; byte-pair vocabularies average a
		// little under one token per word, so words is the closest cheap bound.
		return len(strings.Fields(text))
	}
	return len(enc.Encode(text, nil, nil))
}

func (c *TiktokenCounter) encoderFor(model string) *tiktoken.Tiktoken {
	name := encodingNameFor(model)

	c.mu.Lock()
	defer c.mu.Unlock()

	if enc, ok := c.encoders.Get(name); ok {
		return enc
	}
	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil
	}
	c.encoders.Add(name, enc)
	return enc
}

// encodingNameFor maps a model name to a tokenizer vocabulary. Non-OpenAI
// models do not publish tiktoken vocabularies, so the closest modern BPE is
// used; counts for those are approximate but far better than a character
// heuristic.
func encodingNameFor(model string) string {
	lower := strings.ToLower(model)
	// Composite "provider/model" names (OpenRouter) match on the model part.
	if i := strings.LastIndex(lower, "/"); i >= 0 {
		lower = lower[i+1:]
	}
	switch {
	case strings.HasPrefix(lower, "gpt-4o"),
		strings.HasPrefix(lower, "gpt-4.1"),
		strings.HasPrefix(lower, "gpt-5"),
		strings.HasPrefix(lower, "o1"),
		strings.HasPrefix(lower, "o3"),
		strings.HasPrefix(lower, "o4"):
		return "o200k_base"
	case strings.HasPrefix(lower, "gpt-4"),
		strings.HasPrefix(lower, "gpt-3.5"):
		return "cl100k_base"
	default:
		return "o200k_base"
	}
}

// FixedCounter is a Counter test double returning a constant per call.
type FixedCounter struct {
	Tokens int
}

// Count implements Counter.
func (f *FixedCounter) Count(model, text string) int {
	if text == "" {
		return 0
	}
	return f.Tokens
}
