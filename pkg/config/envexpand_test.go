package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Run("expands set variables", func(t *testing.T) {
		t.Setenv("EXPAND_TEST_KEY", "secret-value")
		out := ExpandEnv([]byte(`api_key: "{{.EXPAND_TEST_KEY}}"`))
		assert.Equal(t, `api_key: "secret-value"`, string(out))
	})

	t.Run("missing variables expand to empty", func(t *testing.T) {
		out := ExpandEnv([]byte(`api_key: "{{.EXPAND_TEST_DEFINITELY_UNSET}}"`))
		assert.Equal(t, `api_key: ""`, string(out))
	})

	t.Run("dollar signs pass through untouched", func(t *testing.T) {
		in := []byte(`pattern: "^secret.*$"` + "\n" + `password: "p@ss$word"`)
		out := ExpandEnv(in)
		assert.Equal(t, string(in), string(out))
	})

	t.Run("malformed template returns input unchanged", func(t *testing.T) {
		in := []byte(`value: "{{.UNCLOSED"`)
		out := ExpandEnv(in)
		assert.Equal(t, string(in), string(out))
	})

	t.Run("multiple variables in one line", func(t *testing.T) {
		t.Setenv("EXPAND_TEST_HOST", "db.internal")
		t.Setenv("EXPAND_TEST_PORT", "5432")
		out := ExpandEnv([]byte(`addr: "{{.EXPAND_TEST_HOST}}:{{.EXPAND_TEST_PORT}}"`))
		assert.Equal(t, `addr: "db.internal:5432"`, string(out))
	})
}
