package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "roundtable.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("full config", func(t *testing.T) {
		dir := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
  cors_origins:
    - https://app.example.com
auth:
  supabase_url: https://project.supabase.co
  jwt_secret_env: MY_JWT_SECRET
personalities:
  dir: /etc/roundtable/personalities
debate:
  max_rounds: 5
  temperature: 0.4
retention:
  debate_retention_days: 90
  cleanup_interval: 6h
providers:
  openrouter:
    default_model: anthropic/claude-sonnet-4
  ollama:
    base_url: http://ollama.internal:11434
`)
		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
		assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.CORSOrigins)
		assert.Equal(t, "https://project.supabase.co", cfg.Auth.SupabaseURL)
		assert.Equal(t, "MY_JWT_SECRET", cfg.Auth.JWTSecretEnv)
		assert.Equal(t, "/etc/roundtable/personalities", cfg.Personalities.Dir)
		assert.Equal(t, 5, cfg.Debate.MaxRounds)
		assert.InDelta(t, 0.4, cfg.Debate.Temperature, 0.0001)
		assert.Equal(t, 90, cfg.Retention.DebateRetentionDays)
		assert.Equal(t, 6*time.Hour, cfg.Retention.CleanupInterval)

		p, err := cfg.GetProvider("ollama")
		require.NoError(t, err)
		assert.Equal(t, "http://ollama.internal:11434", p.BaseURL)
		assert.Equal(t, 2, cfg.Stats().Providers)
	})

	t.Run("defaults fill unset values", func(t *testing.T) {
		dir := writeConfig(t, `
server:
  port: 8080
`)
		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, "SUPABASE_JWT_SECRET", cfg.Auth.JWTSecretEnv)
		assert.Equal(t, 3, cfg.Debate.MaxRounds)
		assert.Equal(t, 365, cfg.Retention.DebateRetentionDays)
		assert.Equal(t, 12*time.Hour, cfg.Retention.CleanupInterval)
		assert.Empty(t, cfg.Personalities.Dir)
	})

	t.Run("environment expansion", func(t *testing.T) {
		t.Setenv("TEST_SUPABASE_URL", "https://env.supabase.co")
		dir := writeConfig(t, `
auth:
  supabase_url: "{{.TEST_SUPABASE_URL}}"
`)
		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, "https://env.supabase.co", cfg.Auth.SupabaseURL)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Initialize(ctx, t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := writeConfig(t, "server: [not: a: mapping")
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("unknown provider fails validation", func(t *testing.T) {
		dir := writeConfig(t, `
providers:
  not-a-real-provider: {}
`)
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "not-a-real-provider")
	})

	t.Run("bad port fails validation", func(t *testing.T) {
		dir := writeConfig(t, `
server:
  port: 70000
`)
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("invalid cleanup interval falls back to default", func(t *testing.T) {
		dir := writeConfig(t, `
retention:
  cleanup_interval: not-a-duration
`)
		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, 12*time.Hour, cfg.Retention.CleanupInterval)
	})
}
