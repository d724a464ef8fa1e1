package pricing

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const catalogTTL = time.Hour

// Resolver answers price lookups. Resolution order: dynamic catalog (exact,
// then prefix), static table, conservative default. Resolve never fails —
// worst case it returns the default price.
type Resolver struct {
	catalog CatalogSource
	static  map[string]ModelPricing
	logger  *slog.Logger
	now     func() time.Time

	group singleflight.Group

	mu        sync.RWMutex
	prices    map[string]ModelPricing
	fetchedAt time.Time
	warned    map[string]struct{}
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithCatalog replaces the catalog source.
func WithCatalog(src CatalogSource) ResolverOption {
	return func(r *Resolver) { r.catalog = src }
}

// WithStaticTable replaces the built-in static price table.
func WithStaticTable(table map[string]ModelPricing) ResolverOption {
	return func(r *Resolver) { r.static = table }
}

// WithClock replaces the time source. Used by tests to expire the cache.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) { r.now = now }
}

// NewResolver creates a Resolver backed by the OpenRouter catalog and the
// built-in static table.
func NewResolver(logger *slog.Logger, opts ...ResolverOption) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Resolver{
		catalog: NewOpenRouterCatalog(),
		static:  staticPricing,
		logger:  logger,
		now:     time.Now,
		warned:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the price for a provider/model pair. The catalog is
// refreshed at most once per TTL window; concurrent refreshes collapse into
// one fetch. A stale catalog keeps serving if the refresh fails.
func (r *Resolver) Resolve(ctx context.Context, provider, model string) ModelPricing {
	catalog := r.freshCatalog(ctx)

	if p, ok := lookupCatalog(catalog, provider, model); ok {
		return p
	}
	if p, ok := lookupTable(r.static, model); ok {
		return p
	}

	r.warnOnce(provider, model)
	return defaultPricing
}

// freshCatalog returns the cached catalog, refreshing it when the TTL has
// elapsed.
func (r *Resolver) freshCatalog(ctx context.Context) map[string]ModelPricing {
	r.mu.RLock()
	prices, fetchedAt := r.prices, r.fetchedAt
	r.mu.RUnlock()

	if prices != nil && r.now().Sub(fetchedAt) < catalogTTL {
		return prices
	}

	refreshed, err, _ := r.group.Do("catalog", func() (interface{}, error) {
		fetched, err := r.catalog.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.prices = fetched
		r.fetchedAt = r.now()
		r.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		r.logger.Warn("model catalog refresh failed, using fallback prices",
			slog.String("error", err.Error()))
		// Stale data beats no data.
		return prices
	}
	return refreshed.(map[string]ModelPricing)
}

func (r *Resolver) warnOnce(provider, model string) {
	key := provider + "/" + model
	r.mu.Lock()
	_, seen := r.warned[key]
	if !seen {
		r.warned[key] = struct{}{}
	}
	r.mu.Unlock()
	if !seen {
		r.logger.Warn("no price found for model, using default pricing",
			slog.String("provider", provider),
			slog.String("model", model),
			slog.String("input_per_million", defaultPricing.InputPerMillion.String()),
			slog.String("output_per_million", defaultPricing.OutputPerMillion.String()))
	}
}

// lookupCatalog searches the catalog: exact id, composite "provider/model",
// bare-name match, then prefix in either direction (longest bare name wins,
// so "gpt-4o" prefers "gpt-4o" over "gpt-4o-mini-2024").
func lookupCatalog(catalog map[string]ModelPricing, provider, model string) (ModelPricing, bool) {
	if len(catalog) == 0 || model == "" {
		return ModelPricing{}, false
	}
	if p, ok := catalog[model]; ok {
		return p, true
	}
	if p, ok := catalog[provider+"/"+model]; ok {
		return p, true
	}

	var best ModelPricing
	bestLen := -1
	for id, p := range catalog {
		bare := bareModel(id)
		switch {
		case bare == model:
			return p, true
		case strings.HasPrefix(bare, model) || strings.HasPrefix(model, bare):
			if len(bare) > bestLen {
				best, bestLen = p, len(bare)
			}
		}
	}
	if bestLen >= 0 {
		return best, true
	}
	return ModelPricing{}, false
}

// lookupTable searches a bare-name table exactly, then by prefix in either
// direction.
func lookupTable(table map[string]ModelPricing, model string) (ModelPricing, bool) {
	bare := bareModel(model)
	if p, ok := table[bare]; ok {
		return p, true
	}
	var best ModelPricing
	bestLen := -1
	for name, p := range table {
		if strings.HasPrefix(bare, name) || strings.HasPrefix(name, bare) {
			if len(name) > bestLen {
				best, bestLen = p, len(name)
			}
		}
	}
	if bestLen >= 0 {
		return best, true
	}
	return ModelPricing{}, false
}

// bareModel strips a catalog id down to the model name after the last slash.
func bareModel(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}
