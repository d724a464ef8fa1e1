package pricing

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCost(t *testing.T) {
	p := ModelPricing{
		InputPerMillion:  decimal.RequireFromString("2.50"),
		OutputPerMillion: decimal.RequireFromString("10.00"),
	}

	t.Run("cost scales with token counts", func(t *testing.T) {
		cost := CalculateCost(p, 1_000_000, 1_000_000, 0)
		assert.True(t, cost.Equal(decimal.RequireFromString("12.50")), "got %s", cost)
	})

	t.Run("zero tokens cost nothing", func(t *testing.T) {
		assert.True(t, CalculateCost(p, 0, 0, 0).IsZero())
	})

	t.Run("no float drift on small counts", func(t *testing.T) {
		cost := CalculateCost(p, 123, 456, 0)
		// 123*2.50/1M + 456*10.00/1M = 0.0003075 + 0.00456
		assert.True(t, cost.Equal(decimal.RequireFromString("0.0048675")), "got %s", cost)
	})

	t.Run("cached tokens billed at the cached rate", func(t *testing.T) {
		cp := p
		cp.CachedInputPerMillion = decimal.RequireFromString("1.25")
		cost := CalculateCost(cp, 1_000_000, 0, 1_000_000)
		assert.True(t, cost.Equal(decimal.RequireFromString("3.75")), "got %s", cost)
	})

	t.Run("cached term omitted without a cached rate", func(t *testing.T) {
		cost := CalculateCost(p, 1_000_000, 0, 1_000_000)
		assert.True(t, cost.Equal(decimal.RequireFromString("2.50")), "got %s", cost)
	})
}

func TestLookupCatalog(t *testing.T) {
	catalog := map[string]ModelPricing{
		"openai/gpt-4o":             {Source: SourceCatalog, InputPerMillion: decimal.NewFromInt(2)},
		"anthropic/claude-sonnet-4": {Source: SourceCatalog, InputPerMillion: decimal.NewFromInt(3)},
	}

	t.Run("composite id", func(t *testing.T) {
		p, ok := lookupCatalog(catalog, "openai", "gpt-4o")
		require.True(t, ok)
		assert.True(t, p.InputPerMillion.Equal(decimal.NewFromInt(2)))
	})

	t.Run("bare name matches any provider", func(t *testing.T) {
		_, ok := lookupCatalog(catalog, "openrouter", "claude-sonnet-4")
		assert.True(t, ok)
	})

	t.Run("versioned model matches by prefix", func(t *testing.T) {
		_, ok := lookupCatalog(catalog, "openai", "gpt-4o-2024-11-20")
		assert.True(t, ok)
	})

	t.Run("unknown model misses", func(t *testing.T) {
		_, ok := lookupCatalog(catalog, "openai", "unobtainium-9000")
		assert.False(t, ok)
	})
}

func newTestCatalogServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		require.Equal(t, "/models", r.URL.Path)
		resp := map[string]any{
			"data": []map[string]any{
				{"id": "openai/gpt-4o", "pricing": map[string]string{"prompt": "0.0000025", "completion": "0.00001"}},
				{"id": "openrouter/auto", "pricing": map[string]string{"prompt": "-1", "completion": "-1"}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestOpenRouterCatalogFetch(t *testing.T) {
	srv := newTestCatalogServer(t, nil)
	defer srv.Close()

	prices, err := NewCatalogWithURL(srv.URL).Fetch(context.Background())
	require.NoError(t, err)

	p, ok := prices["openai/gpt-4o"]
	require.True(t, ok)
	assert.True(t, p.InputPerMillion.Equal(decimal.RequireFromString("2.5")), "got %s", p.InputPerMillion)
	assert.True(t, p.OutputPerMillion.Equal(decimal.RequireFromString("10")), "got %s", p.OutputPerMillion)
	assert.Equal(t, SourceCatalog, p.Source)

	_, ok = prices["openrouter/auto"]
	assert.False(t, ok, "dynamic routing entries must be skipped")
}

func TestResolver(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("catalog hit", func(t *testing.T) {
		srv := newTestCatalogServer(t, nil)
		defer srv.Close()

		r := NewResolver(logger, WithCatalog(NewCatalogWithURL(srv.URL)))
		p := r.Resolve(context.Background(), "openai", "gpt-4o")
		assert.Equal(t, SourceCatalog, p.Source)
		assert.True(t, p.InputPerMillion.Equal(decimal.RequireFromString("2.5")))
	})

	t.Run("catalog cached within TTL", func(t *testing.T) {
		var hits atomic.Int64
		srv := newTestCatalogServer(t, &hits)
		defer srv.Close()

		r := NewResolver(logger, WithCatalog(NewCatalogWithURL(srv.URL)))
		for i := 0; i < 5; i++ {
			r.Resolve(context.Background(), "openai", "gpt-4o")
		}
		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("catalog refetched after TTL", func(t *testing.T) {
		var hits atomic.Int64
		srv := newTestCatalogServer(t, &hits)
		defer srv.Close()

		now := time.Now()
		r := NewResolver(logger,
			WithCatalog(NewCatalogWithURL(srv.URL)),
			WithClock(func() time.Time { return now }))

		r.Resolve(context.Background(), "openai", "gpt-4o")
		now = now.Add(catalogTTL + time.Minute)
		r.Resolve(context.Background(), "openai", "gpt-4o")
		assert.Equal(t, int64(2), hits.Load())
	})

	t.Run("static table when catalog unreachable", func(t *testing.T) {
		r := NewResolver(logger, WithCatalog(NewCatalogWithURL("http://127.0.0.1:1")))
		p := r.Resolve(context.Background(), "anthropic", "claude-sonnet-4")
		assert.Equal(t, SourceStatic, p.Source)
		assert.True(t, p.InputPerMillion.Equal(decimal.RequireFromString("3.00")))
	})

	t.Run("default for unknown model, never fails", func(t *testing.T) {
		r := NewResolver(logger, WithCatalog(NewCatalogWithURL("http://127.0.0.1:1")))
		p := r.Resolve(context.Background(), "mock", "unobtainium-9000")
		assert.Equal(t, SourceDefault, p.Source)
		assert.True(t, p.InputPerMillion.Equal(decimal.NewFromInt(5)))
		assert.True(t, p.OutputPerMillion.Equal(decimal.NewFromInt(15)))
	})
}
