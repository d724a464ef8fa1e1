package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation tags the kind of priced LLM call a usage record covers.
type Operation string

const (
	OperationDebateResponse Operation = "debate_response"
	OperationSynthesis      Operation = "synthesis"
	OperationConsensusCheck Operation = "consensus_check"
)

// UsageInput is the caller-supplied part of a usage record. Cost, id, and
// timestamps are filled in on record.
type UsageInput struct {
	DebateID     string
	Provider     string
	Model        string
	InputTokens  int64
	OutputTokens int64
	CachedTokens int64
	Operation    Operation
	Personality  string
	RoundNumber  *int
	Estimated    bool
}

// CostEstimate is a side-effect-free price projection.
type CostEstimate struct {
	Provider         string          `json:"provider"`
	Model            string          `json:"model"`
	InputTokens      int64           `json:"input_tokens"`
	OutputTokens     int64           `json:"output_tokens"`
	InputPerMillion  decimal.Decimal `json:"input_per_million"`
	OutputPerMillion decimal.Decimal `json:"output_per_million"`
	InputCost        decimal.Decimal `json:"input_cost"`
	OutputCost       decimal.Decimal `json:"output_cost"`
	TotalCost        decimal.Decimal `json:"total_cost"`
}

// TimeRange bounds a usage query. Zero values mean "current calendar month
// in UTC".
type TimeRange struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether the range was left unset.
func (r TimeRange) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// CurrentMonthUTC returns the half-open range covering the current calendar
// month in UTC.
func CurrentMonthUTC(now time.Time) TimeRange {
	now = now.UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return TimeRange{From: from, To: from.AddDate(0, 1, 0)}
}

// UsageSummary aggregates a user's spend over a period.
type UsageSummary struct {
	From         time.Time                  `json:"from"`
	To           time.Time                  `json:"to"`
	InputTokens  int64                      `json:"input_tokens"`
	OutputTokens int64                      `json:"output_tokens"`
	TotalTokens  int64                      `json:"total_tokens"`
	TotalCost    decimal.Decimal            `json:"total_cost"`
	ByProvider   map[string]decimal.Decimal `json:"by_provider"`
	ByOperation  map[string]decimal.Decimal `json:"by_operation"`
}
