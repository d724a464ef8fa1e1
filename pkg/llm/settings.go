package llm

import (
	"fmt"
	"os"
)

// ProviderType enumerates the supported LLM back-ends.
type ProviderType string

const (
	ProviderOpenAI     ProviderType = "openai"
	ProviderAnthropic  ProviderType = "anthropic"
	ProviderGoogle     ProviderType = "google"
	ProviderXAI        ProviderType = "xai"
	ProviderOpenRouter ProviderType = "openrouter"
	ProviderOllama     ProviderType = "ollama"
	ProviderVLLM       ProviderType = "vllm"
	ProviderLMStudio   ProviderType = "lmstudio"
	ProviderMock       ProviderType = "mock"
)

// ProviderSettings is the fixed per-provider configuration record.
type ProviderSettings struct {
	// DefaultBaseURL is used when the debate does not override the endpoint.
	// Empty means the SDK default for that provider.
	DefaultBaseURL string

	// APIKeyRequired providers fail with a ConfigError before any network
	// I/O when the key environment variable is blank.
	APIKeyRequired bool

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string

	// DefaultHeaders are attribution headers sent with catalog requests
	// (OpenRouter asks routers to identify themselves).
	DefaultHeaders map[string]string

	// SupportsInstanceSuffix marks providers that need a distinct model
	// instance per parallel stream within a round.
	SupportsInstanceSuffix bool
}

var providerSettings = map[ProviderType]ProviderSettings{
	ProviderOpenAI: {
		APIKeyRequired: true,
		APIKeyEnv:      "OPENAI_API_KEY",
	},
	ProviderAnthropic: {
		APIKeyRequired: true,
		APIKeyEnv:      "ANTHROPIC_API_KEY",
	},
	ProviderGoogle: {
		APIKeyRequired: true,
		APIKeyEnv:      "GOOGLE_API_KEY",
	},
	ProviderXAI: {
		DefaultBaseURL: "https://api.x.ai/v1",
		APIKeyRequired: true,
		APIKeyEnv:      "XAI_API_KEY",
	},
	ProviderOpenRouter: {
		DefaultBaseURL: "https://openrouter.ai/api/v1",
		APIKeyRequired: true,
		APIKeyEnv:      "OPENROUTER_API_KEY",
		DefaultHeaders: map[string]string{
			"HTTP-Referer": "https://github.com/roundtable-ai/roundtable",
			"X-Title":      "Roundtable",
		},
	},
	ProviderOllama: {
		DefaultBaseURL: "http://localhost:11434",
		APIKeyRequired: false,
		APIKeyEnv:      "OLLAMA_API_KEY",
	},
	ProviderVLLM: {
		DefaultBaseURL: "http://localhost:8000/v1",
		APIKeyRequired: false,
		APIKeyEnv:      "VLLM_API_KEY",
	},
	ProviderLMStudio: {
		DefaultBaseURL:         "http://localhost:1234/v1",
		APIKeyRequired:         false,
		APIKeyEnv:              "LMSTUDIO_API_KEY",
		SupportsInstanceSuffix: true,
	},
	ProviderMock: {},
}

// SettingsFor returns the fixed settings record for a provider type.
func SettingsFor(p ProviderType) (ProviderSettings, error) {
	s, ok := providerSettings[p]
	if !ok {
		return ProviderSettings{}, fmt.Errorf("%w: %s", ErrUnknownProvider, p)
	}
	return s, nil
}

// KnownProvider reports whether p is a supported provider type.
func KnownProvider(p ProviderType) bool {
	_, ok := providerSettings[p]
	return ok
}

// resolveAPIKey returns the provider's API key from the environment, or a
// ConfigError when the provider requires one and it is blank. Checked before
// any network I/O.
func resolveAPIKey(p ProviderType, s ProviderSettings) (string, error) {
	key := os.Getenv(s.APIKeyEnv)
	if s.APIKeyRequired && key == "" {
		return "", &ConfigError{
			Provider: string(p),
			Reason:   fmt.Sprintf("%s is not set", s.APIKeyEnv),
		}
	}
	return key, nil
}
