// Package models holds the request/response DTOs shared by the API surface
// and the service layer. Nothing here touches persistence.
package models

import (
	"strings"
	"unicode/utf8"

	"github.com/roundtable-ai/roundtable/pkg/llm"
)

const (
	// MaxQuestionLength is the inclusive upper bound on question size.
	MaxQuestionLength = 10_000

	// DefaultMaxRounds applies when a request leaves max_rounds unset.
	DefaultMaxRounds = 3

	// MaxRoundsCap is the inclusive upper bound on max_rounds.
	MaxRoundsCap = 10
)

// DebateSettings is the per-debate configuration persisted in the settings
// column and threaded through the engine.
type DebateSettings struct {
	Personalities    []string `json:"personalities"`
	MaxRounds        int      `json:"max_rounds"`
	Temperature      float64  `json:"temperature,omitempty"`
	IncludeSynthesis bool     `json:"include_synthesis"`
	BaseURL          string   `json:"base_url,omitempty"`
}

// CreateDebateRequest is the body of POST /debates.
type CreateDebateRequest struct {
	Question         string   `json:"question"`
	Provider         string   `json:"provider"`
	Model            string   `json:"model"`
	Personalities    []string `json:"personalities"`
	MaxRounds        int      `json:"max_rounds,omitempty"`
	Temperature      float64  `json:"temperature,omitempty"`
	IncludeSynthesis *bool    `json:"include_synthesis,omitempty"`
	BaseURL          string   `json:"base_url,omitempty"`
}

// systemPersonalities never participate in debate rounds.
var systemPersonalities = map[string]struct{}{
	"consensus_check": {},
	"synthesizer":     {},
}

// IsSystemPersonality reports whether name is reserved for internal turns.
func IsSystemPersonality(name string) bool {
	_, ok := systemPersonalities[name]
	return ok
}

// Validate checks the request and applies defaults in place. It returns a
// *ValidationError describing the first violation found.
func (r *CreateDebateRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return NewValidationError("question", "must not be empty")
	}
	if n := utf8.RuneCountInString(r.Question); n > MaxQuestionLength {
		return NewValidationError("question", "must be at most %d characters, got %d", MaxQuestionLength, n)
	}
	if !llm.KnownProvider(llm.ProviderType(r.Provider)) {
		return NewValidationError("provider", "unknown provider %q", r.Provider)
	}
	if strings.TrimSpace(r.Model) == "" {
		return NewValidationError("model", "must not be empty")
	}
	if len(r.Personalities) == 0 {
		return NewValidationError("personalities", "at least one personality is required")
	}
	seen := make(map[string]struct{}, len(r.Personalities))
	for _, p := range r.Personalities {
		if strings.TrimSpace(p) == "" {
			return NewValidationError("personalities", "personality names must not be empty")
		}
		if IsSystemPersonality(p) {
			return NewValidationError("personalities", "%q is a system personality and cannot debate", p)
		}
		if _, dup := seen[p]; dup {
			return NewValidationError("personalities", "duplicate personality %q", p)
		}
		seen[p] = struct{}{}
	}
	if r.MaxRounds == 0 {
		r.MaxRounds = DefaultMaxRounds
	}
	if r.MaxRounds < 1 || r.MaxRounds > MaxRoundsCap {
		return NewValidationError("max_rounds", "must be between 1 and %d, got %d", MaxRoundsCap, r.MaxRounds)
	}
	if r.Temperature < 0 || r.Temperature > 2 {
		return NewValidationError("temperature", "must be between 0.0 and 2.0, got %g", r.Temperature)
	}
	return nil
}

// Settings converts a validated request into persisted settings.
func (r *CreateDebateRequest) Settings() DebateSettings {
	include := true
	if r.IncludeSynthesis != nil {
		include = *r.IncludeSynthesis
	}
	return DebateSettings{
		Personalities:    r.Personalities,
		MaxRounds:        r.MaxRounds,
		Temperature:      r.Temperature,
		IncludeSynthesis: include,
		BaseURL:          r.BaseURL,
	}
}

// ListDebatesParams filters and pages GET /debates.
type ListDebatesParams struct {
	Page     int
	PageSize int
	Status   string
	Search   string
}

// Normalize applies paging defaults and caps.
func (p *ListDebatesParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}
