package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/roundtable-ai/roundtable/ent"
	entusage "github.com/roundtable-ai/roundtable/ent/usagerecord"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/pricing"
)

// UsageService prices LLM calls and maintains the append-only usage ledger.
type UsageService struct {
	client   *ent.Client
	resolver *pricing.Resolver
	logger   *slog.Logger
	now      func() time.Time
}

// NewUsageService creates a new UsageService.
func NewUsageService(client *ent.Client, resolver *pricing.Resolver, logger *slog.Logger) *UsageService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UsageService{
		client:   client,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// Record computes the call's cost and appends an immutable usage record.
// Uses a detached timeout context: usage must land even when the request
// that produced it has been cancelled.
func (s *UsageService) Record(httpCtx context.Context, userID string, in models.UsageInput) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(httpCtx), writeTimeout)
	defer cancel()

	price := s.resolver.Resolve(ctx, in.Provider, in.Model)
	cost := pricing.CalculateCost(price, in.InputTokens, in.OutputTokens, in.CachedTokens)

	builder := s.client.UsageRecord.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetDebateID(in.DebateID).
		SetProvider(in.Provider).
		SetModel(in.Model).
		SetInputTokens(in.InputTokens).
		SetOutputTokens(in.OutputTokens).
		SetCachedTokens(in.CachedTokens).
		SetTotalTokens(in.InputTokens + in.OutputTokens).
		SetCost(cost).
		SetOperation(entusage.Operation(in.Operation)).
		SetEstimated(in.Estimated)
	if in.Personality != "" {
		builder.SetPersonality(in.Personality)
	}
	if in.RoundNumber != nil {
		builder.SetRoundNumber(*in.RoundNumber)
	}

	if _, err := builder.Save(ctx); err != nil {
		return decimal.Zero, fmt.Errorf("failed to record usage: %w", err)
	}
	return cost, nil
}

// Estimate projects the cost of a call without side effects.
func (s *UsageService) Estimate(ctx context.Context, provider, model string, inputTokens, outputTokens int64) models.CostEstimate {
	price := s.resolver.Resolve(ctx, provider, model)
	inputCost := pricing.CalculateCost(price, inputTokens, 0, 0)
	outputCost := pricing.CalculateCost(price, 0, outputTokens, 0)
	return models.CostEstimate{
		Provider:         provider,
		Model:            model,
		InputTokens:      inputTokens,
		OutputTokens:     outputTokens,
		InputPerMillion:  price.InputPerMillion,
		OutputPerMillion: price.OutputPerMillion,
		InputCost:        inputCost,
		OutputCost:       outputCost,
		TotalCost:        inputCost.Add(outputCost),
	}
}

// Summary aggregates a user's spend over a range. A zero range defaults to
// the current calendar month in UTC.
func (s *UsageService) Summary(ctx context.Context, userID string, rng models.TimeRange) (*models.UsageSummary, error) {
	if rng.IsZero() {
		rng = models.CurrentMonthUTC(s.now())
	}

	rows, err := s.client.UsageRecord.Query().
		Where(
			entusage.UserID(userID),
			entusage.CreatedAtGTE(rng.From),
			entusage.CreatedAtLT(rng.To),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage records: %w", err)
	}

	summary := &models.UsageSummary{
		From:        rng.From,
		To:          rng.To,
		TotalCost:   decimal.Zero,
		ByProvider:  make(map[string]decimal.Decimal),
		ByOperation: make(map[string]decimal.Decimal),
	}
	for _, row := range rows {
		summary.InputTokens += row.InputTokens
		summary.OutputTokens += row.OutputTokens
		summary.TotalTokens += row.TotalTokens
		summary.TotalCost = summary.TotalCost.Add(row.Cost)
		summary.ByProvider[row.Provider] = summary.ByProvider[row.Provider].Add(row.Cost)
		op := string(row.Operation)
		summary.ByOperation[op] = summary.ByOperation[op].Add(row.Cost)
	}
	return summary, nil
}

// History returns a user's usage records, most recent first.
func (s *UsageService) History(ctx context.Context, userID string, limit, offset int, rng models.TimeRange) ([]*ent.UsageRecord, error) {
	if limit < 1 {
		limit = 50
	}
	q := s.client.UsageRecord.Query().
		Where(entusage.UserID(userID))
	if !rng.IsZero() {
		q = q.Where(
			entusage.CreatedAtGTE(rng.From),
			entusage.CreatedAtLT(rng.To),
		)
	}
	rows, err := q.
		Order(ent.Desc(entusage.FieldCreatedAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage history: %w", err)
	}
	return rows, nil
}
