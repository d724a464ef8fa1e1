package debate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVerdict(t *testing.T) {
	t.Run("bare JSON object", func(t *testing.T) {
		v := parseVerdict(`{"consensus": true, "reasoning": "agreed"}`)
		assert.True(t, v.Reached)
		assert.Equal(t, "agreed", v.Reasoning)
	})

	t.Run("JSON wrapped in prose and fences", func(t *testing.T) {
		v := parseVerdict("Sure! Here is my verdict:\n```json\n{\"consensus\": false, \"reasoning\": \"still split\"}\n```")
		assert.False(t, v.Reached)
		assert.Equal(t, "still split", v.Reasoning)
	})

	t.Run("no JSON quotes the response back", func(t *testing.T) {
		v := parseVerdict("I cannot decide.")
		assert.False(t, v.Reached)
		assert.Equal(t, "Could not parse: I cannot decide.", v.Reasoning)
	})

	t.Run("malformed JSON quotes the response back", func(t *testing.T) {
		v := parseVerdict(`{"consensus": maybe}`)
		assert.False(t, v.Reached)
		assert.Equal(t, `Could not parse: {"consensus": maybe}`, v.Reasoning)
	})

	t.Run("long unparseable output is truncated", func(t *testing.T) {
		v := parseVerdict(strings.Repeat("x", 1000))
		assert.False(t, v.Reached)
		assert.Len(t, v.Reasoning, len("Could not parse: ")+verdictExcerptLen+len("..."))
	})

	t.Run("empty response is non-consensus", func(t *testing.T) {
		v := parseVerdict("")
		assert.False(t, v.Reached)
	})
}
