// Package pricing resolves per-token prices for LLM models and computes call
// costs. Prices come from the OpenRouter model catalog when reachable, a
// static table otherwise, and a conservative default as the last resort. All
// money math uses fixed-precision decimals.
package pricing

import (
	"github.com/shopspring/decimal"
)

// PriceSource identifies where a resolved price came from.
type PriceSource string

const (
	SourceCatalog PriceSource = "catalog"
	SourceStatic  PriceSource = "static"
	SourceDefault PriceSource = "default"
)

// ModelPricing holds USD prices per million tokens for one model.
// CachedInputPerMillion is zero when the source does not publish a cached
// input rate; cached tokens are then not billed separately.
type ModelPricing struct {
	InputPerMillion       decimal.Decimal
	OutputPerMillion      decimal.Decimal
	CachedInputPerMillion decimal.Decimal
	Source                PriceSource
}

var million = decimal.NewFromInt(1_000_000)

// Default prices applied when neither the catalog nor the static table knows
// the model. Deliberately above typical frontier pricing so unknown models
// never under-bill.
var defaultPricing = ModelPricing{
	InputPerMillion:  decimal.NewFromInt(5),
	OutputPerMillion: decimal.NewFromInt(15),
	Source:           SourceDefault,
}

// CalculateCost returns the USD cost of a call:
// input*in/1M + output*out/1M + cached*cachedIn/1M, computed in decimal.
// The cached term is omitted when no cached tokens were reported or the
// model has no cached input rate.
func CalculateCost(p ModelPricing, inputTokens, outputTokens, cachedTokens int64) decimal.Decimal {
	in := p.InputPerMillion.Mul(decimal.NewFromInt(inputTokens)).Div(million)
	out := p.OutputPerMillion.Mul(decimal.NewFromInt(outputTokens)).Div(million)
	cost := in.Add(out)
	if cachedTokens > 0 && p.CachedInputPerMillion.IsPositive() {
		cost = cost.Add(p.CachedInputPerMillion.Mul(decimal.NewFromInt(cachedTokens)).Div(million))
	}
	return cost
}
