package debate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitThinking(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantThinking string
		wantAnswer   string
	}{
		{"no think block", "just an answer", "", "just an answer"},
		{"leading think block", "<think>hmm</think>four", "hmm", "four"},
		{"embedded think block", "X <think>Y</think> Z", "Y", "X Z"},
		{"unclosed tag is answer", "before <think>dangling", "", "before <think>dangling"},
		{"empty body", "", "", ""},
		{"whitespace trimmed", "  <think> pondering </think>  42  ", "pondering", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thinking, answer := splitThinking(tt.body)
			assert.Equal(t, tt.wantThinking, thinking)
			assert.Equal(t, tt.wantAnswer, answer)
		})
	}

	t.Run("idempotent on its own output", func(t *testing.T) {
		_, answer := splitThinking("X <think>Y</think> Z")
		thinking2, answer2 := splitThinking(answer)
		assert.Empty(t, thinking2)
		assert.Equal(t, answer, answer2)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcde"+truncationMarker, truncate("abcdefgh", 5))
	// Multi-byte runes are never split.
	assert.Equal(t, "héllø"+truncationMarker, truncate("héllø wörld", 5))
}

func TestRoundPrompt(t *testing.T) {
	personalities := []string{"analyst", "skeptic"}

	t.Run("first round is the bare question", func(t *testing.T) {
		assert.Equal(t, "Q?", roundPrompt("Q?", personalities, nil))
	})

	t.Run("later rounds quote only the previous round", func(t *testing.T) {
		prev := map[string]string{"analyst": "it is four", "skeptic": "prove it"}
		prompt := roundPrompt("Q?", personalities, prev)
		assert.Contains(t, prompt, "[analyst]:\nit is four")
		assert.Contains(t, prompt, "[skeptic]:\nprove it")
		// Declared order is preserved.
		assert.Less(t, strings.Index(prompt, "[analyst]"), strings.Index(prompt, "[skeptic]"))
	})

	t.Run("oversized responses are truncated with a marker", func(t *testing.T) {
		prev := map[string]string{"analyst": strings.Repeat("a", prevResponseBudget+100)}
		prompt := roundPrompt("Q?", personalities, prev)
		assert.Contains(t, prompt, truncationMarker)
		assert.NotContains(t, prompt, strings.Repeat("a", prevResponseBudget+1))
	})
}

func TestSynthesisPrompt(t *testing.T) {
	rounds := []map[string]string{
		{"analyst": "round one answer"},
		{"analyst": strings.Repeat("b", synthesisResponseBudget+50)},
	}
	prompt := synthesisPrompt("Q?", []string{"analyst"}, rounds, "all agreed")

	assert.Contains(t, prompt, "Round 1:")
	assert.Contains(t, prompt, "Round 2:")
	assert.Contains(t, prompt, "round one answer")
	assert.Contains(t, prompt, "all agreed")
	assert.NotContains(t, prompt, strings.Repeat("b", synthesisResponseBudget+1))
}
