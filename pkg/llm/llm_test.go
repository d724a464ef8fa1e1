package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/mozilla-ai/any-llm-go/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsFor(t *testing.T) {
	t.Run("known provider", func(t *testing.T) {
		s, err := SettingsFor(ProviderOpenRouter)
		require.NoError(t, err)
		assert.True(t, s.APIKeyRequired)
		assert.Equal(t, "OPENROUTER_API_KEY", s.APIKeyEnv)
		assert.Equal(t, "https://openrouter.ai/api/v1", s.DefaultBaseURL)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := SettingsFor(ProviderType("carrier-pigeon"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownProvider)
	})

	t.Run("lmstudio supports instance suffix", func(t *testing.T) {
		s, err := SettingsFor(ProviderLMStudio)
		require.NoError(t, err)
		assert.True(t, s.SupportsInstanceSuffix)
		assert.False(t, s.APIKeyRequired)
	})
}

func TestResolveAPIKey(t *testing.T) {
	t.Run("missing required key is a config error", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		s, err := SettingsFor(ProviderOpenAI)
		require.NoError(t, err)

		_, err = resolveAPIKey(ProviderOpenAI, s)
		require.Error(t, err)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "openai", cfgErr.Provider)
		assert.Contains(t, cfgErr.Reason, "OPENAI_API_KEY")
	})

	t.Run("optional key may be blank", func(t *testing.T) {
		t.Setenv("OLLAMA_API_KEY", "")
		s, err := SettingsFor(ProviderOllama)
		require.NoError(t, err)

		key, err := resolveAPIKey(ProviderOllama, s)
		require.NoError(t, err)
		assert.Empty(t, key)
	})

	t.Run("key read from environment", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
		s, err := SettingsFor(ProviderAnthropic)
		require.NoError(t, err)

		key, err := resolveAPIKey(ProviderAnthropic, s)
		require.NoError(t, err)
		assert.Equal(t, "sk-ant-test", key)
	})
}

func TestBuildParams(t *testing.T) {
	t.Run("system and user messages", func(t *testing.T) {
		params := buildParams(ModelConfig{Model: "gpt-4o"}, "you are terse", "hello")
		require.Len(t, params.Messages, 2)
		assert.Equal(t, "you are terse", params.Messages[0].Content)
		assert.Equal(t, "hello", params.Messages[1].Content)
		assert.Equal(t, "gpt-4o", params.Model)
		assert.Nil(t, params.Temperature)
		assert.Nil(t, params.MaxTokens)
	})

	t.Run("instance suffix appended to model", func(t *testing.T) {
		params := buildParams(ModelConfig{Model: "qwen2.5-7b", InstanceSuffix: 2}, "s", "u")
		assert.Equal(t, "qwen2.5-7b:2", params.Model)
	})

	t.Run("temperature and max tokens are pointers", func(t *testing.T) {
		params := buildParams(ModelConfig{Model: "m", Temperature: 0.7, MaxTokens: 1024}, "s", "u")
		require.NotNil(t, params.Temperature)
		assert.InDelta(t, 0.7, *params.Temperature, 1e-9)
		require.NotNil(t, params.MaxTokens)
		assert.Equal(t, 1024, *params.MaxTokens)
	})
}

func TestAnyLLMClientMissingKey(t *testing.T) {
	t.Setenv("XAI_API_KEY", "")
	c := NewAnyLLMClient(nil)

	_, err := c.StreamChat(context.Background(), ModelConfig{Provider: ProviderXAI, Model: "grok-3"}, "s", "u")
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestRelayStream(t *testing.T) {
	relay := func(ctx context.Context, chunks []providers.ChatCompletionChunk, streamErr error) []Chunk {
		backendChunks := make(chan providers.ChatCompletionChunk, len(chunks))
		for _, c := range chunks {
			backendChunks <- c
		}
		close(backendChunks)
		backendErrs := make(chan error, 1)
		backendErrs <- streamErr

		out := make(chan Chunk, 8)
		go relayStream(ctx, "openai", backendChunks, backendErrs, out)

		var got []Chunk
		for c := range out {
			got = append(got, c)
		}
		return got
	}

	t.Run("usage on a choiceless final chunk becomes the terminal UsageChunk", func(t *testing.T) {
		got := relay(context.Background(), []providers.ChatCompletionChunk{
			{Usage: &providers.Usage{PromptTokens: 12, CompletionTokens: 7}},
		}, nil)

		require.Len(t, got, 1)
		usage, ok := got[0].(*UsageChunk)
		require.True(t, ok)
		assert.Equal(t, int64(12), usage.InputTokens)
		assert.Equal(t, int64(7), usage.OutputTokens)
	})

	t.Run("backend error yields an ErrorChunk and suppresses usage", func(t *testing.T) {
		got := relay(context.Background(), []providers.ChatCompletionChunk{
			{Usage: &providers.Usage{PromptTokens: 3, CompletionTokens: 1}},
		}, errors.New("rate limited"))

		require.Len(t, got, 1)
		errChunk, ok := got[0].(*ErrorChunk)
		require.True(t, ok)
		assert.Equal(t, "openai", errChunk.Provider)
		assert.Contains(t, errChunk.Message, "rate limited")
	})

	t.Run("no usage reported closes the stream without a UsageChunk", func(t *testing.T) {
		got := relay(context.Background(), nil, nil)
		assert.Empty(t, got)
	})
}

func TestMockClient(t *testing.T) {
	t.Run("scripted streams consumed in order", func(t *testing.T) {
		m := &MockClient{
			Script: [][]Chunk{
				TextStream("first", 10, 2),
				TextStream("second", 12, 3),
			},
			Default: []Chunk{&TextChunk{Content: "fallback"}},
		}

		collect := func() []Chunk {
			ch, err := m.StreamChat(context.Background(), ModelConfig{Provider: ProviderMock, Model: "echo"}, "s", "u")
			require.NoError(t, err)
			var got []Chunk
			for c := range ch {
				got = append(got, c)
			}
			return got
		}

		first := collect()
		require.Len(t, first, 2)
		assert.Equal(t, "first", first[0].(*TextChunk).Content)
		usage := first[1].(*UsageChunk)
		assert.Equal(t, int64(10), usage.InputTokens)
		assert.Equal(t, int64(2), usage.OutputTokens)

		second := collect()
		require.Len(t, second, 2)
		assert.Equal(t, "second", second[0].(*TextChunk).Content)

		third := collect()
		require.Len(t, third, 1)
		assert.Equal(t, "fallback", third[0].(*TextChunk).Content)

		assert.Len(t, m.Calls, 3)
		assert.Equal(t, "u", m.Calls[0].UserMessage)
	})

	t.Run("chunk types are distinguishable", func(t *testing.T) {
		var c Chunk = &ErrorChunk{Provider: "mock", Message: "boom"}
		assert.Equal(t, ChunkTypeError, c.chunkType())
		c = &TextChunk{Content: "x"}
		assert.Equal(t, ChunkTypeText, c.chunkType())
		c = &UsageChunk{}
		assert.Equal(t, ChunkTypeUsage, c.chunkType())
	})
}
