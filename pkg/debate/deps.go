package debate

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// Store is the persistence surface the streaming pipeline writes through.
// The mapper is the only component that calls it while a debate is live.
type Store interface {
	GetDebate(ctx context.Context, id string) (*models.Debate, error)

	// UpdateStatus moves a debate along pending → active → terminal.
	// Activation stamps started_at; terminal states stamp completed_at.
	UpdateStatus(ctx context.Context, id string, status models.DebateStatus, errMsg string) error

	// UpdateTotals adds token and cost deltas to the running totals and
	// returns the new total cost.
	UpdateTotals(ctx context.Context, id string, inputTokens, outputTokens int64, cost decimal.Decimal) (decimal.Decimal, error)

	// SaveRound creates the round row and returns its id.
	SaveRound(ctx context.Context, debateID string, roundNumber int) (string, error)

	// SaveResponse persists one personality response, filling id and
	// created_at.
	SaveResponse(ctx context.Context, resp *models.PersonalityResponse) (*models.PersonalityResponse, error)

	// SaveSynthesis persists the final answer, filling id and created_at.
	SaveSynthesis(ctx context.Context, syn *models.Synthesis) (*models.Synthesis, error)
}

// Repository extends Store with the request/response operations of the
// service façade.
type Repository interface {
	Store

	CreateDebate(ctx context.Context, userID string, question string, provider, model string, settings models.DebateSettings) (*models.Debate, error)
	GetDebateDetail(ctx context.Context, id string) (*models.DebateDetail, error)
	ListDebates(ctx context.Context, userID string, params models.ListDebatesParams) (*models.DebateList, error)
	DeleteDebate(ctx context.Context, id string) error
}

// UsageRecorder prices and persists token usage.
type UsageRecorder interface {
	// Record fills in cost via the pricing resolver, appends the record, and
	// returns the computed cost.
	Record(ctx context.Context, userID string, in models.UsageInput) (decimal.Decimal, error)

	// Estimate projects cost without side effects.
	Estimate(ctx context.Context, provider, model string, inputTokens, outputTokens int64) models.CostEstimate
}
