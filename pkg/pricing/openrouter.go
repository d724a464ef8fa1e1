package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roundtable-ai/roundtable/pkg/llm"
)

const catalogTimeout = 10 * time.Second

// CatalogSource fetches model prices from a dynamic catalog.
type CatalogSource interface {
	// Fetch returns prices keyed by catalog model id (e.g. "openai/gpt-4o").
	Fetch(ctx context.Context) (map[string]ModelPricing, error)
}

// OpenRouterCatalog fetches the OpenRouter model catalog. OpenRouter lists
// prices in USD per token; they are converted to per-million on ingest.
type OpenRouterCatalog struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
}

// NewOpenRouterCatalog creates a catalog client against the default
// OpenRouter endpoint.
func NewOpenRouterCatalog() *OpenRouterCatalog {
	settings, _ := llm.SettingsFor(llm.ProviderOpenRouter)
	return &OpenRouterCatalog{
		baseURL:    settings.DefaultBaseURL,
		headers:    settings.DefaultHeaders,
		httpClient: &http.Client{Timeout: catalogTimeout},
	}
}

// NewCatalogWithURL creates a catalog client against a custom endpoint.
// Used by tests against an httptest server.
func NewCatalogWithURL(baseURL string) *OpenRouterCatalog {
	return &OpenRouterCatalog{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: catalogTimeout},
	}
}

type catalogResponse struct {
	Data []struct {
		ID      string `json:"id"`
		Pricing struct {
			Prompt         string `json:"prompt"`
			Completion     string `json:"completion"`
			InputCacheRead string `json:"input_cache_read"`
		} `json:"pricing"`
	} `json:"data"`
}

// Fetch implements CatalogSource. The catalog does not require an API key.
func (c *OpenRouterCatalog) Fetch(ctx context.Context) (map[string]ModelPricing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch model catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model catalog returned %d", resp.StatusCode)
	}

	var parsed catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode model catalog: %w", err)
	}

	prices := make(map[string]ModelPricing, len(parsed.Data))
	for _, m := range parsed.Data {
		in, err := decimal.NewFromString(m.Pricing.Prompt)
		if err != nil {
			continue
		}
		out, err := decimal.NewFromString(m.Pricing.Completion)
		if err != nil {
			continue
		}
		// Negative prices mark dynamic routing entries; skip them.
		if in.IsNegative() || out.IsNegative() {
			continue
		}
		p := ModelPricing{
			InputPerMillion:  in.Mul(million),
			OutputPerMillion: out.Mul(million),
			Source:           SourceCatalog,
		}
		// Not every model publishes a cache-read rate; absence leaves the
		// cached term unbilled.
		if cached, err := decimal.NewFromString(m.Pricing.InputCacheRead); err == nil && cached.IsPositive() {
			p.CachedInputPerMillion = cached.Mul(million)
		}
		prices[m.ID] = p
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("model catalog is empty")
	}
	return prices, nil
}
