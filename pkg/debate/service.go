package debate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roundtable-ai/roundtable/pkg/billing"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/personality"
)

// Estimation constants for the credit pre-check: max_rounds × personalities
// turns, each assumed to read and write this many tokens.
const (
	estimatedInputPerTurn  = 1000
	estimatedOutputPerTurn = 500
)

// Service is the debate façade: request-scoped operations plus stream
// orchestration. Ownership checks yield ErrNotFound, never an access-denied
// signal, so foreign debate ids are indistinguishable from absent ones.
type Service struct {
	repo          Repository
	usage         UsageRecorder
	credits       billing.CreditChecker
	engine        *Engine
	registry      *Registry
	personalities *personality.Registry
	logger        *slog.Logger
}

// NewService wires the façade.
func NewService(repo Repository, usage UsageRecorder, credits billing.CreditChecker, engine *Engine, registry *Registry, personalities *personality.Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:          repo,
		usage:         usage,
		credits:       credits,
		engine:        engine,
		registry:      registry,
		personalities: personalities,
		logger:        logger,
	}
}

// Create validates the request, pre-checks credits against a worst-case
// estimate, and persists a pending debate.
func (s *Service) Create(ctx context.Context, userID string, req *models.CreateDebateRequest) (*models.Debate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	for _, name := range req.Personalities {
		if !s.personalities.Has(name) {
			return nil, models.NewValidationError("personalities", "unknown personality %q", name)
		}
	}

	turns := int64(req.MaxRounds * len(req.Personalities))
	estimate := s.usage.Estimate(ctx, req.Provider, req.Model,
		turns*estimatedInputPerTurn,
		(turns+1)*estimatedOutputPerTurn) // +1 for the synthesis turn
	if err := s.credits.Check(ctx, userID, estimate.TotalCost); err != nil {
		return nil, err
	}

	d, err := s.repo.CreateDebate(ctx, userID, req.Question, req.Provider, req.Model, req.Settings())
	if err != nil {
		return nil, fmt.Errorf("create debate: %w", err)
	}
	s.logger.Info("debate created",
		slog.String("debate_id", d.ID),
		slog.String("provider", d.Provider),
		slog.String("model", d.Model),
		slog.Int("personalities", len(req.Personalities)))
	return d, nil
}

// Get returns a debate with its full transcript.
func (s *Service) Get(ctx context.Context, userID, debateID string) (*models.DebateDetail, error) {
	detail, err := s.repo.GetDebateDetail(ctx, debateID)
	if err != nil {
		return nil, err
	}
	if detail.UserID != userID {
		return nil, models.ErrNotFound
	}
	return detail, nil
}

// List returns a page of the user's debates, most recent first.
func (s *Service) List(ctx context.Context, userID string, params models.ListDebatesParams) (*models.DebateList, error) {
	params.Normalize()
	return s.repo.ListDebates(ctx, userID, params)
}

// Cancel stops a running debate or voids a pending one.
func (s *Service) Cancel(ctx context.Context, userID, debateID string) error {
	d, err := s.owned(ctx, userID, debateID)
	if err != nil {
		return err
	}
	if d.Status.Terminal() {
		return ErrInvalidStatus
	}
	if s.registry.Cancel(debateID) {
		// The live execution persists its own terminal state.
		return nil
	}
	// Not running anywhere: flip it directly.
	return s.repo.UpdateStatus(ctx, debateID, models.StatusCancelled, "cancelled")
}

// Delete removes a debate and its transcript. Usage records survive. A live
// debate cannot be deleted.
func (s *Service) Delete(ctx context.Context, userID, debateID string) error {
	d, err := s.owned(ctx, userID, debateID)
	if err != nil {
		return err
	}
	if d.Status == models.StatusActive {
		return ErrInvalidStatus
	}
	return s.repo.DeleteDebate(ctx, debateID)
}

// StartStream executes a pending debate, delivering envelopes through emit
// until a terminal event. It blocks for the debate's lifetime; ctx
// cancellation (client disconnect) cancels the debate.
func (s *Service) StartStream(ctx context.Context, userID, debateID string, emit EmitFunc) error {
	d, err := s.owned(ctx, userID, debateID)
	if err != nil {
		return err
	}
	if d.Status != models.StatusPending {
		return ErrInvalidStatus
	}

	runCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	if err := s.registry.Register(debateID, cancel); err != nil {
		return err
	}
	defer s.registry.Unregister(debateID)

	sink := NewSink(func() { cancel(ErrCancelled) })
	mapper := NewMapper(s.repo, s.usage, d, emit, s.logger)

	engineDone := make(chan error, 1)
	go func() {
		engineDone <- s.engine.Run(runCtx, d, sink)
	}()

	// The mapper reads under the parent ctx: if the client disconnects it
	// still flushes terminal persistence via its detached write context.
	mapErr := mapper.Run(runCtx, sink)
	engErr := <-engineDone

	if err := s.credits.Deduct(context.WithoutCancel(ctx), userID, d.TotalCost); err != nil {
		s.logger.Error("credit settlement failed",
			slog.String("debate_id", debateID),
			slog.String("error", err.Error()))
	}

	if engErr != nil {
		return engErr
	}
	return mapErr
}

// owned fetches a debate and enforces ownership as ErrNotFound.
func (s *Service) owned(ctx context.Context, userID, debateID string) (*models.Debate, error) {
	d, err := s.repo.GetDebate(ctx, debateID)
	if err != nil {
		return nil, err
	}
	if d.UserID != userID {
		return nil, models.ErrNotFound
	}
	return d, nil
}
