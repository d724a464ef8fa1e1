package pricing

import "github.com/shopspring/decimal"

func perMillion(in, out string) ModelPricing {
	return ModelPricing{
		InputPerMillion:  decimal.RequireFromString(in),
		OutputPerMillion: decimal.RequireFromString(out),
		Source:           SourceStatic,
	}
}

// perMillionCached adds the provider's published cached input rate.
func perMillionCached(in, out, cached string) ModelPricing {
	p := perMillion(in, out)
	p.CachedInputPerMillion = decimal.RequireFromString(cached)
	return p
}

// staticPricing is the offline price table, USD per million tokens. Used when
// the catalog is unreachable or does not list the model. Keys are bare model
// names; composite catalog ids are normalized before lookup.
var staticPricing = map[string]ModelPricing{
	// OpenAI (cached input billed at half the input rate)
	"gpt-4o":        perMillionCached("2.50", "10.00", "1.25"),
	"gpt-4o-mini":   perMillionCached("0.15", "0.60", "0.075"),
	"gpt-4.1":       perMillionCached("2.00", "8.00", "0.50"),
	"gpt-4.1-mini":  perMillionCached("0.40", "1.60", "0.10"),
	"gpt-4-turbo":   perMillion("10.00", "30.00"),
	"gpt-3.5-turbo": perMillion("0.50", "1.50"),
	"o3":            perMillionCached("2.00", "8.00", "0.50"),
	"o3-mini":       perMillionCached("1.10", "4.40", "0.55"),
	"o4-mini":       perMillionCached("1.10", "4.40", "0.275"),

	// Anthropic (cache reads billed at a tenth of the input rate)
	"claude-opus-4":     perMillionCached("15.00", "75.00", "1.50"),
	"claude-sonnet-4":   perMillionCached("3.00", "15.00", "0.30"),
	"claude-3-7-sonnet": perMillionCached("3.00", "15.00", "0.30"),
	"claude-3-5-sonnet": perMillionCached("3.00", "15.00", "0.30"),
	"claude-3-5-haiku":  perMillionCached("0.80", "4.00", "0.08"),
	"claude-3-opus":     perMillionCached("15.00", "75.00", "1.50"),
	"claude-3-haiku":    perMillionCached("0.25", "1.25", "0.03"),

	// Google
	"gemini-2.5-pro":   perMillionCached("1.25", "10.00", "0.31"),
	"gemini-2.5-flash": perMillionCached("0.30", "2.50", "0.075"),
	"gemini-2.0-flash": perMillion("0.10", "0.40"),
	"gemini-1.5-pro":   perMillion("1.25", "5.00"),
	"gemini-1.5-flash": perMillion("0.075", "0.30"),

	// xAI
	"grok-3":      perMillion("3.00", "15.00"),
	"grok-3-mini": perMillion("0.30", "0.50"),

	// Common self-hosted models cost nothing per token.
	"llama-3.1-8b": perMillion("0", "0"),
	"qwen2.5-7b":   perMillion("0", "0"),
}
