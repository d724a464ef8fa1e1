package llm

import (
	"errors"
	"fmt"
)

// ErrUnknownProvider is returned for provider tags outside the supported set.
var ErrUnknownProvider = errors.New("unknown provider type")

// ConfigError reports a provider misconfiguration (typically a missing API
// key). It is raised before any network I/O.
type ConfigError struct {
	Provider string
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("provider %s misconfigured: %s", e.Provider, e.Reason)
}

// ProviderError wraps an upstream stream failure. It carries the provider
// name and the raw message; Source distinguishes repository failures
// reported through the same channel.
type ProviderError struct {
	Provider string
	Source   string // "provider" (default) or "repository"
	Message  string
}

func (e *ProviderError) Error() string {
	src := e.Source
	if src == "" {
		src = "provider"
	}
	return fmt.Sprintf("%s %s: %s", src, e.Provider, e.Message)
}
