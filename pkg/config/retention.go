package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// DebateRetentionDays is how many days to keep terminal debates before
	// deleting them (rounds, responses, and synthesis cascade; usage records
	// stay).
	DebateRetentionDays int `yaml:"debate_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		DebateRetentionDays: 365,
		CleanupInterval:     12 * time.Hour,
	}
}
