package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodingNameFor(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{"gpt-4o", "o200k_base"},
		{"gpt-4o-mini", "o200k_base"},
		{"o3-mini", "o200k_base"},
		{"gpt-4-turbo", "cl100k_base"},
		{"gpt-3.5-turbo", "cl100k_base"},
		{"claude-sonnet-4", "o200k_base"},
		{"gemini-2.0-flash", "o200k_base"},
		{"openai/gpt-4-turbo", "cl100k_base"},
		{"anthropic/claude-3-opus", "o200k_base"},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, encodingNameFor(tt.model))
		})
	}
}

func TestTiktokenCounter(t *testing.T) {
	c := NewTiktokenCounter()

	t.Run("empty text is zero tokens", func(t *testing.T) {
		assert.Equal(t, 0, c.Count("gpt-4o", ""))
	})

	t.Run("counts grow with text", func(t *testing.T) {
		short := c.Count("gpt-4o", "hello world")
		long := c.Count("gpt-4o", "hello world, this is a much longer sentence about debate orchestration")
		assert.Greater(t, short, 0)
		assert.Greater(t, long, short)
	})

	t.Run("encoder handle is cached", func(t *testing.T) {
		c.Count("gpt-4o", "warm the cache")
		_, ok := c.encoders.Get("o200k_base")
		assert.True(t, ok)
	})

	t.Run("same vocabulary gives same count", func(t *testing.T) {
		a := c.Count("gpt-4o", "deterministic input")
		b := c.Count("o3-mini", "deterministic input")
		assert.Equal(t, a, b)
	})
}

func TestFixedCounter(t *testing.T) {
	f := &FixedCounter{Tokens: 7}
	assert.Equal(t, 7, f.Count("any", "text"))
	assert.Equal(t, 0, f.Count("any", ""))
}
