package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// configFileName is the single YAML file the service reads.
const configFileName = "roundtable.yaml"

// RoundtableYAMLConfig represents the complete roundtable.yaml file structure
type RoundtableYAMLConfig struct {
	Server        *ServerConfig             `yaml:"server"`
	Auth          *AuthConfig               `yaml:"auth"`
	Personalities *PersonalitiesConfig      `yaml:"personalities"`
	Debate        *DebateYAMLConfig         `yaml:"debate"`
	Retention     *RetentionYAMLConfig      `yaml:"retention"`
	Providers     map[string]ProviderConfig `yaml:"providers"`
}

// DebateYAMLConfig holds debate execution defaults from YAML.
type DebateYAMLConfig struct {
	MaxRounds   int     `yaml:"max_rounds,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
}

// RetentionYAMLConfig holds retention settings from YAML.
type RetentionYAMLConfig struct {
	DebateRetentionDays int    `yaml:"debate_retention_days,omitempty"`
	CleanupInterval     string `yaml:"cleanup_interval,omitempty"` // Parsed to time.Duration
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load roundtable.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Apply built-in defaults for unset values
//  5. Build the provider registry
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"providers", stats.Providers)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	yamlCfg, err := loader.loadRoundtableYAML()
	if err != nil {
		return nil, NewLoadError(configFileName, err)
	}

	server := yamlCfg.Server
	if server == nil {
		server = &ServerConfig{}
	}
	if server.Host == "" {
		server.Host = "0.0.0.0"
	}
	if server.Port == 0 {
		server.Port = 8080
	}

	auth := yamlCfg.Auth
	if auth == nil {
		auth = &AuthConfig{}
	}
	if auth.JWTSecretEnv == "" {
		auth.JWTSecretEnv = "SUPABASE_JWT_SECRET"
	}

	personalities := yamlCfg.Personalities
	if personalities == nil {
		personalities = &PersonalitiesConfig{}
	}

	debate := resolveDebateDefaults(yamlCfg.Debate)
	retention := resolveRetentionConfig(yamlCfg.Retention)

	providers := make(map[string]*ProviderConfig, len(yamlCfg.Providers))
	for name, p := range yamlCfg.Providers {
		cp := p
		providers[name] = &cp
	}

	return &Config{
		configDir:        configDir,
		Server:           server,
		Auth:             auth,
		Personalities:    personalities,
		Debate:           debate,
		Retention:        retention,
		ProviderRegistry: NewProviderRegistry(providers),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadRoundtableYAML() (*RoundtableYAMLConfig, error) {
	var config RoundtableYAMLConfig

	// Initialize maps to avoid nil maps
	config.Providers = make(map[string]ProviderConfig)

	if err := l.loadYAML(configFileName, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// resolveDebateDefaults resolves debate defaults from YAML, applying built-ins.
func resolveDebateDefaults(d *DebateYAMLConfig) *DebateDefaults {
	cfg := &DebateDefaults{
		MaxRounds:   3,
		Temperature: 0.7,
	}
	if d == nil {
		return cfg
	}
	if d.MaxRounds > 0 {
		cfg.MaxRounds = d.MaxRounds
	}
	if d.Temperature > 0 {
		cfg.Temperature = d.Temperature
	}
	return cfg
}

// resolveRetentionConfig resolves retention configuration from YAML, applying defaults.
func resolveRetentionConfig(r *RetentionYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if r == nil {
		return cfg
	}

	if r.DebateRetentionDays > 0 {
		cfg.DebateRetentionDays = r.DebateRetentionDays
	}
	if r.CleanupInterval != "" {
		if d, err := time.ParseDuration(r.CleanupInterval); err == nil {
			cfg.CleanupInterval = d
		} else {
			slog.Warn("Invalid cleanup_interval in retention config, using default",
				"value", r.CleanupInterval,
				"default", cfg.CleanupInterval,
				"error", err)
		}
	}

	return cfg
}
