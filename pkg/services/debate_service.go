// Package services implements the persistence layer over the generated ent
// client. DebateService satisfies the orchestration engine's Repository
// interface; UsageService satisfies its UsageRecorder.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/roundtable-ai/roundtable/ent"
	entdebate "github.com/roundtable-ai/roundtable/ent/debate"
	entround "github.com/roundtable-ai/roundtable/ent/debateround"
	entsynthesis "github.com/roundtable-ai/roundtable/ent/debatesynthesis"
	entresponse "github.com/roundtable-ai/roundtable/ent/personalityresponse"
	"github.com/roundtable-ai/roundtable/pkg/models"
)

// writeTimeout bounds critical writes that must survive request
// cancellation.
const writeTimeout = 10 * time.Second

// DebateService manages debate transcripts in Postgres.
type DebateService struct {
	client *ent.Client
}

// NewDebateService creates a new DebateService.
func NewDebateService(client *ent.Client) *DebateService {
	return &DebateService{client: client}
}

// CreateDebate persists a pending debate.
func (s *DebateService) CreateDebate(ctx context.Context, userID, question, provider, model string, settings models.DebateSettings) (*models.Debate, error) {
	settingsMap, err := settingsToMap(settings)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}

	row, err := s.client.Debate.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetQuestion(question).
		SetProvider(provider).
		SetModel(model).
		SetSettings(settingsMap).
		SetStatus(entdebate.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create debate: %w", err)
	}
	return debateFromRow(row)
}

// GetDebate returns one debate row.
func (s *DebateService) GetDebate(ctx context.Context, id string) (*models.Debate, error) {
	row, err := s.client.Debate.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get debate: %w", err)
	}
	return debateFromRow(row)
}

// GetDebateDetail returns a debate with rounds (in round order) and their
// responses (in declared personality order), plus the synthesis if present.
func (s *DebateService) GetDebateDetail(ctx context.Context, id string) (*models.DebateDetail, error) {
	d, err := s.GetDebate(ctx, id)
	if err != nil {
		return nil, err
	}

	rounds, err := s.client.DebateRound.Query().
		Where(entround.DebateID(id)).
		Order(ent.Asc(entround.FieldRoundNumber)).
		WithResponses(func(q *ent.PersonalityResponseQuery) {
			q.Order(ent.Asc(entresponse.FieldResponseIndex))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rounds: %w", err)
	}

	detail := &models.DebateDetail{Debate: *d}
	for _, r := range rounds {
		round := models.Round{
			ID:          r.ID,
			DebateID:    r.DebateID,
			RoundNumber: r.RoundNumber,
			CreatedAt:   r.CreatedAt,
		}
		for _, resp := range r.Edges.Responses {
			round.Responses = append(round.Responses, responseFromRow(resp))
		}
		detail.Rounds = append(detail.Rounds, round)
	}

	syn, err := s.client.DebateSynthesis.Query().
		Where(entsynthesis.DebateID(id)).
		Only(ctx)
	switch {
	case err == nil:
		detail.Synthesis = &models.Synthesis{
			ID:           syn.ID,
			DebateID:     syn.DebateID,
			Content:      syn.Content,
			InputTokens:  syn.InputTokens,
			OutputTokens: syn.OutputTokens,
			Cost:         syn.Cost,
			CreatedAt:    syn.CreatedAt,
		}
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to load synthesis: %w", err)
	}
	return detail, nil
}

// ListDebates returns one page of a user's debates, most recent first.
func (s *DebateService) ListDebates(ctx context.Context, userID string, params models.ListDebatesParams) (*models.DebateList, error) {
	q := s.client.Debate.Query().Where(entdebate.UserID(userID))
	if params.Status != "" {
		q = q.Where(entdebate.StatusEQ(entdebate.Status(params.Status)))
	}
	if params.Search != "" {
		// Full-text search over the question, backed by a GIN index.
		q = q.Where(func(s *sql.Selector) {
			s.Where(sql.P(func(b *sql.Builder) {
				b.WriteString("to_tsvector('english', question) @@ plainto_tsquery(")
				b.Arg(params.Search)
				b.WriteString(")")
			}))
		})
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count debates: %w", err)
	}

	rows, err := q.
		Order(ent.Desc(entdebate.FieldCreatedAt)).
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list debates: %w", err)
	}

	list := &models.DebateList{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}
	for _, row := range rows {
		d, err := debateFromRow(row)
		if err != nil {
			return nil, err
		}
		list.Debates = append(list.Debates, *d)
	}
	return list, nil
}

// UpdateStatus transitions a debate, stamping started_at on activation and
// completed_at on terminal states. Uses a detached timeout context so
// terminal writes survive request cancellation.
func (s *DebateService) UpdateStatus(httpCtx context.Context, id string, status models.DebateStatus, errMsg string) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(httpCtx), writeTimeout)
	defer cancel()

	upd := s.client.Debate.UpdateOneID(id).
		SetStatus(entdebate.Status(status))
	now := time.Now().UTC()
	switch {
	case status == models.StatusActive:
		upd.SetStartedAt(now)
	case status.Terminal():
		upd.SetCompletedAt(now)
	}
	if errMsg != "" {
		upd.SetErrorMessage(errMsg)
	}
	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return models.ErrNotFound
		}
		return fmt.Errorf("failed to update debate status: %w", err)
	}
	return nil
}

// UpdateTotals adds token and cost deltas to the running totals and returns
// the new total cost. Runs in a transaction so concurrent turn completions
// never lose an increment.
func (s *DebateService) UpdateTotals(httpCtx context.Context, id string, inputTokens, outputTokens int64, cost decimal.Decimal) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(httpCtx), writeTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Debate.Query().
		Where(entdebate.ID(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return decimal.Zero, models.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to lock debate: %w", err)
	}

	newCost := row.TotalCost.Add(cost)
	if _, err := tx.Debate.UpdateOneID(id).
		SetTotalInputTokens(row.TotalInputTokens + inputTokens).
		SetTotalOutputTokens(row.TotalOutputTokens + outputTokens).
		SetTotalCost(newCost).
		Save(ctx); err != nil {
		return decimal.Zero, fmt.Errorf("failed to update totals: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return decimal.Zero, fmt.Errorf("failed to commit totals: %w", err)
	}
	return newCost, nil
}

// SaveRound creates the round row and advances current_round.
func (s *DebateService) SaveRound(httpCtx context.Context, debateID string, roundNumber int) (string, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(httpCtx), writeTimeout)
	defer cancel()

	id := uuid.New().String()
	if _, err := s.client.DebateRound.Create().
		SetID(id).
		SetDebateID(debateID).
		SetRoundNumber(roundNumber).
		Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return "", ErrAlreadyExists
		}
		return "", fmt.Errorf("failed to create round: %w", err)
	}

	if _, err := s.client.Debate.UpdateOneID(debateID).
		SetCurrentRound(roundNumber).
		Save(ctx); err != nil {
		return "", fmt.Errorf("failed to advance current round: %w", err)
	}
	return id, nil
}

// SaveResponse persists one personality response.
func (s *DebateService) SaveResponse(httpCtx context.Context, resp *models.PersonalityResponse) (*models.PersonalityResponse, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(httpCtx), writeTimeout)
	defer cancel()

	builder := s.client.PersonalityResponse.Create().
		SetID(uuid.New().String()).
		SetRoundID(resp.RoundID).
		SetPersonality(resp.Personality).
		SetResponseIndex(resp.ResponseIndex).
		SetAnswer(resp.Answer).
		SetInputTokens(resp.InputTokens).
		SetOutputTokens(resp.OutputTokens).
		SetCost(resp.Cost)
	if resp.Thinking != "" {
		builder.SetThinking(resp.Thinking)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to save response: %w", err)
	}
	saved := responseFromRow(row)
	return &saved, nil
}

// SaveSynthesis persists the final answer.
func (s *DebateService) SaveSynthesis(httpCtx context.Context, syn *models.Synthesis) (*models.Synthesis, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(httpCtx), writeTimeout)
	defer cancel()

	row, err := s.client.DebateSynthesis.Create().
		SetID(uuid.New().String()).
		SetDebateID(syn.DebateID).
		SetContent(syn.Content).
		SetInputTokens(syn.InputTokens).
		SetOutputTokens(syn.OutputTokens).
		SetCost(syn.Cost).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to save synthesis: %w", err)
	}
	return &models.Synthesis{
		ID:           row.ID,
		DebateID:     row.DebateID,
		Content:      row.Content,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		Cost:         row.Cost,
		CreatedAt:    row.CreatedAt,
	}, nil
}

// DeleteDebate removes a debate; rounds, responses, and synthesis cascade at
// the database level. Usage records carry no foreign key and are untouched.
func (s *DebateService) DeleteDebate(ctx context.Context, id string) error {
	if err := s.client.Debate.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return models.ErrNotFound
		}
		return fmt.Errorf("failed to delete debate: %w", err)
	}
	return nil
}

// RecoverOrphans marks debates left active by a previous process as failed.
// Called once at startup, before the server accepts work.
func (s *DebateService) RecoverOrphans(ctx context.Context) (int, error) {
	n, err := s.client.Debate.Update().
		Where(entdebate.StatusEQ(entdebate.StatusActive)).
		SetStatus(entdebate.StatusFailed).
		SetErrorMessage("orphaned at startup").
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover orphaned debates: %w", err)
	}
	return n, nil
}

// PurgeOldDebates deletes terminal debates whose last update is older than
// retentionDays. Transcripts cascade with the debate rows; usage records are
// untouched.
func (s *DebateService) PurgeOldDebates(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	n, err := s.client.Debate.Delete().
		Where(
			entdebate.StatusIn(entdebate.StatusCompleted, entdebate.StatusFailed, entdebate.StatusCancelled),
			entdebate.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old debates: %w", err)
	}
	return n, nil
}

// settingsToMap round-trips typed settings into the JSON column shape.
func settingsToMap(settings models.DebateSettings) (map[string]interface{}, error) {
	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func settingsFromMap(in map[string]interface{}) (models.DebateSettings, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return models.DebateSettings{}, err
	}
	var settings models.DebateSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.DebateSettings{}, err
	}
	return settings, nil
}

func debateFromRow(row *ent.Debate) (*models.Debate, error) {
	settings, err := settingsFromMap(row.Settings)
	if err != nil {
		return nil, fmt.Errorf("unmarshal settings for debate %s: %w", row.ID, err)
	}
	d := &models.Debate{
		ID:           row.ID,
		UserID:       row.UserID,
		Question:     row.Question,
		Provider:     row.Provider,
		Model:        row.Model,
		Settings:     settings,
		Status:       models.DebateStatus(row.Status),
		CurrentRound: row.CurrentRound,
		InputTokens:  row.TotalInputTokens,
		OutputTokens: row.TotalOutputTokens,
		TotalCost:    row.TotalCost,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
	}
	if row.ErrorMessage != nil {
		d.ErrorMessage = *row.ErrorMessage
	}
	return d, nil
}

func responseFromRow(row *ent.PersonalityResponse) models.PersonalityResponse {
	resp := models.PersonalityResponse{
		ID:            row.ID,
		RoundID:       row.RoundID,
		Personality:   row.Personality,
		ResponseIndex: row.ResponseIndex,
		Answer:        row.Answer,
		InputTokens:   row.InputTokens,
		OutputTokens:  row.OutputTokens,
		Cost:          row.Cost,
		CreatedAt:     row.CreatedAt,
	}
	if row.Thinking != nil {
		resp.Thinking = *row.Thinking
	}
	return resp
}
