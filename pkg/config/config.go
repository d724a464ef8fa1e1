package config

// Config is the umbrella configuration object that encapsulates
// all settings and registries for the debate service.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// HTTP server settings
	Server *ServerConfig

	// Supabase-backed authentication settings
	Auth *AuthConfig

	// Personality prompt loading
	Personalities *PersonalitiesConfig

	// Debate execution defaults
	Debate *DebateDefaults

	// Data retention and cleanup
	Retention *RetentionConfig

	// Provider overrides keyed by provider name
	ProviderRegistry *ProviderRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Providers int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.ProviderRegistry != nil {
		s.Providers = c.ProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetProvider retrieves a provider configuration by name.
// This is a convenience method that wraps ProviderRegistry.Get().
func (c *Config) GetProvider(name string) (*ProviderConfig, error) {
	return c.ProviderRegistry.Get(name)
}
