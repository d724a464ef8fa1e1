package config

import (
	"errors"
	"fmt"

	"github.com/roundtable-ai/roundtable/pkg/llm"
)

// Validator performs validation on loaded configuration
type Validator struct {
	cfg *Config
}

// NewValidator creates a new configuration validator
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates the whole configuration and returns all problems at
// once, so a bad config surfaces everything in one run.
func (v *Validator) ValidateAll() error {
	var errs []error

	errs = append(errs, v.validateServer()...)
	errs = append(errs, v.validateProviders()...)
	errs = append(errs, v.validateRetention()...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}
	return nil
}

func (v *Validator) validateServer() []error {
	var errs []error
	s := v.cfg.Server
	if s == nil {
		return []error{NewValidationError("server", "server", "", ErrMissingRequiredField)}
	}
	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, NewValidationError("server", "server", "port",
			fmt.Errorf("%w: %d", ErrInvalidValue, s.Port)))
	}
	return errs
}

// validateProviders fails fast on provider names the LLM layer does not
// know, instead of failing on the first debate request.
func (v *Validator) validateProviders() []error {
	var errs []error
	if v.cfg.ProviderRegistry == nil {
		return nil
	}
	for _, name := range v.cfg.ProviderRegistry.Names() {
		if !llm.KnownProvider(llm.ProviderType(name)) {
			errs = append(errs, NewValidationError("provider", name, "",
				fmt.Errorf("%w: unknown provider type", ErrInvalidValue)))
		}
	}
	return errs
}

func (v *Validator) validateRetention() []error {
	var errs []error
	r := v.cfg.Retention
	if r == nil {
		return nil
	}
	if r.DebateRetentionDays <= 0 {
		errs = append(errs, NewValidationError("retention", "retention", "debate_retention_days",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, r.DebateRetentionDays)))
	}
	if r.CleanupInterval <= 0 {
		errs = append(errs, NewValidationError("retention", "retention", "cleanup_interval",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, r.CleanupInterval)))
	}
	return errs
}
