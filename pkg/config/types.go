package config

import "fmt"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host the listener binds to
	Host string `yaml:"host"`

	// Port the listener binds to
	Port int `yaml:"port"`

	// CORSOrigins are the allowed browser origins. Empty means same-origin
	// only.
	CORSOrigins []string `yaml:"cors_origins"`
}

// Addr returns the host:port pair for net.Listen.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AuthConfig holds Supabase JWT verification settings. Tokens are verified
// locally against the project's JWT secret; no call to Supabase is made per
// request.
type AuthConfig struct {
	// SupabaseURL is the project URL, used for issuer checks
	SupabaseURL string `yaml:"supabase_url"`

	// JWTSecretEnv names the environment variable holding the JWT secret
	JWTSecretEnv string `yaml:"jwt_secret_env"`
}

// PersonalitiesConfig controls where personality prompts load from.
type PersonalitiesConfig struct {
	// Dir holds .md/.txt prompt files overriding the built-ins. Empty means
	// built-ins only.
	Dir string `yaml:"dir"`
}

// DebateDefaults are server-side defaults applied when a request omits them.
type DebateDefaults struct {
	MaxRounds   int     `yaml:"max_rounds"`
	Temperature float64 `yaml:"temperature"`
}
