package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *CreateDebateRequest {
	return &CreateDebateRequest{
		Question:      "What is the best way to cache tokenizer handles?",
		Provider:      "openai",
		Model:         "gpt-4o",
		Personalities: []string{"optimist", "skeptic"},
	}
}

func TestCreateDebateRequestValidate(t *testing.T) {
	t.Run("valid request applies defaults", func(t *testing.T) {
		req := validRequest()
		require.NoError(t, req.Validate())
		assert.Equal(t, DefaultMaxRounds, req.MaxRounds)

		settings := req.Settings()
		assert.True(t, settings.IncludeSynthesis)
		assert.Equal(t, []string{"optimist", "skeptic"}, settings.Personalities)
	})

	t.Run("question at limit accepted, over limit rejected", func(t *testing.T) {
		req := validRequest()
		req.Question = strings.Repeat("q", MaxQuestionLength)
		assert.NoError(t, req.Validate())

		req = validRequest()
		req.Question = strings.Repeat("q", MaxQuestionLength+1)
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "question", vErr.Field)
	})

	t.Run("question length counts characters, not bytes", func(t *testing.T) {
		// Three bytes per rune; at the limit in characters this is well
		// past the limit in bytes and must still be accepted.
		req := validRequest()
		req.Question = strings.Repeat("問", MaxQuestionLength)
		assert.NoError(t, req.Validate())

		req = validRequest()
		req.Question = strings.Repeat("問", MaxQuestionLength+1)
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "question", vErr.Field)
	})

	t.Run("empty personality list rejected", func(t *testing.T) {
		req := validRequest()
		req.Personalities = nil
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "personalities", vErr.Field)
	})

	t.Run("system personalities cannot debate", func(t *testing.T) {
		req := validRequest()
		req.Personalities = []string{"optimist", "consensus_check"}
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
	})

	t.Run("duplicate personalities rejected", func(t *testing.T) {
		req := validRequest()
		req.Personalities = []string{"optimist", "optimist"}
		assert.Error(t, req.Validate())
	})

	t.Run("unknown provider rejected", func(t *testing.T) {
		req := validRequest()
		req.Provider = "smoke-signals"
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "provider", vErr.Field)
	})

	t.Run("max_rounds bounds", func(t *testing.T) {
		req := validRequest()
		req.MaxRounds = MaxRoundsCap
		assert.NoError(t, req.Validate())

		req = validRequest()
		req.MaxRounds = MaxRoundsCap + 1
		assert.Error(t, req.Validate())

		req = validRequest()
		req.MaxRounds = -1
		assert.Error(t, req.Validate())
	})

	t.Run("temperature bounds", func(t *testing.T) {
		req := validRequest()
		req.Temperature = 2.0
		assert.NoError(t, req.Validate())

		req = validRequest()
		req.Temperature = 2.1
		assert.Error(t, req.Validate())
	})
}

func TestCurrentMonthUTC(t *testing.T) {
	now := time.Date(2026, time.March, 15, 23, 30, 0, 0, time.FixedZone("UTC+9", 9*3600))
	r := CurrentMonthUTC(now)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), r.To)
}

func TestListDebatesParamsNormalize(t *testing.T) {
	p := ListDebatesParams{}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)

	p = ListDebatesParams{Page: 3, PageSize: 500}
	p.Normalize()
	assert.Equal(t, 100, p.PageSize)
}
