package personality

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBuiltins(t *testing.T) {
	r, err := NewRegistry("", slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	t.Run("system personalities always present", func(t *testing.T) {
		assert.True(t, r.Has(ConsensusCheck))
		assert.True(t, r.Has(Synthesizer))
	})

	t.Run("debate list excludes system personalities", func(t *testing.T) {
		debate := r.Debate()
		assert.NotContains(t, debate, ConsensusCheck)
		assert.NotContains(t, debate, Synthesizer)
		assert.Contains(t, debate, "skeptic")
	})

	t.Run("unknown personality errors", func(t *testing.T) {
		_, err := r.Prompt("nonexistent")
		assert.Error(t, err)
	})
}

func TestRegistryFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "historian.md"), []byte("You argue from historical precedent.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skeptic.md"), []byte("Custom skeptic prompt."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.md"), []byte("   \n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("{}"), 0o644))

	r, err := NewRegistry(dir, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	t.Run("files define personalities", func(t *testing.T) {
		prompt, err := r.Prompt("historian")
		require.NoError(t, err)
		assert.Equal(t, "You argue from historical precedent.", prompt)
	})

	t.Run("files override built-ins", func(t *testing.T) {
		prompt, err := r.Prompt("skeptic")
		require.NoError(t, err)
		assert.Equal(t, "Custom skeptic prompt.", prompt)
	})

	t.Run("empty and non-prompt files are skipped", func(t *testing.T) {
		assert.False(t, r.Has("empty"))
		assert.False(t, r.Has("notes"))
	})

	t.Run("missing directory errors", func(t *testing.T) {
		_, err := NewRegistry(filepath.Join(dir, "missing"), slog.New(slog.DiscardHandler))
		assert.Error(t, err)
	})
}
