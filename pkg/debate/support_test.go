package debate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/personality"
	"github.com/roundtable-ai/roundtable/pkg/tokens"
)

// routingClient is an llm.Client that picks a response by inspecting the
// prompts, so parallel fan-out stays deterministic regardless of goroutine
// scheduling.
type routingClient struct {
	mu sync.Mutex

	// respond returns the chunks for one call.
	respond func(call int, cfg llm.ModelConfig, system, user string) []llm.Chunk

	calls int
}

func (r *routingClient) StreamChat(ctx context.Context, cfg llm.ModelConfig, system, user string) (<-chan llm.Chunk, error) {
	r.mu.Lock()
	r.calls++
	chunks := r.respond(r.calls, cfg, system, user)
	r.mu.Unlock()

	ch := make(chan llm.Chunk, len(chunks))
	go func() {
		defer close(ch)
		for _, c := range chunks {
			select {
			case <-ctx.Done():
				return
			case ch <- c:
			}
		}
	}()
	return ch, nil
}

func isConsensusCall(user string) bool {
	return strings.Contains(user, "Have the participants reached consensus?")
}

func isSynthesisCall(user string) bool {
	return strings.Contains(user, "Produce the final integrated answer.")
}

// memStore is an in-memory Repository for engine and service tests.
type memStore struct {
	mu        sync.Mutex
	debates   map[string]*models.Debate
	rounds    []*models.Round
	responses map[string][]*models.PersonalityResponse
	synthesis map[string]*models.Synthesis
	statuses  []models.DebateStatus
	nextID    int

	// failSaveResponse injects a repository fault.
	failSaveResponse bool
}

func newMemStore() *memStore {
	return &memStore{
		debates:   make(map[string]*models.Debate),
		responses: make(map[string][]*models.PersonalityResponse),
		synthesis: make(map[string]*models.Synthesis),
	}
}

func (s *memStore) add(d *models.Debate) *models.Debate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debates[d.ID] = d
	return d
}

func (s *memStore) GetDebate(ctx context.Context, id string) (*models.Debate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.debates[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (s *memStore) UpdateStatus(ctx context.Context, id string, status models.DebateStatus, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.debates[id]
	if !ok {
		return models.ErrNotFound
	}
	d.Status = status
	d.ErrorMessage = errMsg
	now := time.Now().UTC()
	switch {
	case status == models.StatusActive:
		d.StartedAt = &now
	case status.Terminal():
		d.CompletedAt = &now
	}
	s.statuses = append(s.statuses, status)
	return nil
}

func (s *memStore) UpdateTotals(ctx context.Context, id string, in, out int64, cost decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.debates[id]
	if !ok {
		return decimal.Zero, models.ErrNotFound
	}
	d.InputTokens += in
	d.OutputTokens += out
	d.TotalCost = d.TotalCost.Add(cost)
	return d.TotalCost, nil
}

func (s *memStore) SaveRound(ctx context.Context, debateID string, roundNumber int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := fmt.Sprintf("round-%d", s.nextID)
	s.rounds = append(s.rounds, &models.Round{ID: id, DebateID: debateID, RoundNumber: roundNumber})
	if d, ok := s.debates[debateID]; ok {
		d.CurrentRound = roundNumber
	}
	return id, nil
}

func (s *memStore) SaveResponse(ctx context.Context, resp *models.PersonalityResponse) (*models.PersonalityResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSaveResponse {
		return nil, fmt.Errorf("connection reset")
	}
	s.nextID++
	resp.ID = fmt.Sprintf("resp-%d", s.nextID)
	resp.CreatedAt = time.Now().UTC()
	s.responses[resp.RoundID] = append(s.responses[resp.RoundID], resp)
	return resp, nil
}

func (s *memStore) SaveSynthesis(ctx context.Context, syn *models.Synthesis) (*models.Synthesis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	syn.ID = fmt.Sprintf("syn-%d", s.nextID)
	syn.CreatedAt = time.Now().UTC()
	s.synthesis[syn.DebateID] = syn
	return syn, nil
}

func (s *memStore) CreateDebate(ctx context.Context, userID, question, provider, model string, settings models.DebateSettings) (*models.Debate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	d := &models.Debate{
		ID:        fmt.Sprintf("debate-%d", s.nextID),
		UserID:    userID,
		Question:  question,
		Provider:  provider,
		Model:     model,
		Settings:  settings,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	s.debates[d.ID] = d
	return d, nil
}

func (s *memStore) GetDebateDetail(ctx context.Context, id string) (*models.DebateDetail, error) {
	d, err := s.GetDebate(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	detail := &models.DebateDetail{Debate: *d}
	for _, r := range s.rounds {
		if r.DebateID != id {
			continue
		}
		round := *r
		for _, resp := range s.responses[r.ID] {
			round.Responses = append(round.Responses, *resp)
		}
		detail.Rounds = append(detail.Rounds, round)
	}
	if syn, ok := s.synthesis[id]; ok {
		detail.Synthesis = syn
	}
	return detail, nil
}

func (s *memStore) ListDebates(ctx context.Context, userID string, params models.ListDebatesParams) (*models.DebateList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := &models.DebateList{Page: params.Page, PageSize: params.PageSize}
	for _, d := range s.debates {
		if d.UserID == userID {
			list.Debates = append(list.Debates, *d)
			list.Total++
		}
	}
	return list, nil
}

func (s *memStore) DeleteDebate(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.debates[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.debates, id)
	return nil
}

// fakeUsage prices every token pair at a flat rate and remembers records.
type fakeUsage struct {
	mu      sync.Mutex
	records []models.UsageInput
}

func (u *fakeUsage) Record(ctx context.Context, userID string, in models.UsageInput) (decimal.Decimal, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.records = append(u.records, in)
	return flatCost(in.InputTokens, in.OutputTokens), nil
}

func (u *fakeUsage) Estimate(ctx context.Context, provider, model string, in, out int64) models.CostEstimate {
	return models.CostEstimate{
		Provider: provider, Model: model,
		InputTokens: in, OutputTokens: out,
		TotalCost: flatCost(in, out),
	}
}

func flatCost(in, out int64) decimal.Decimal {
	// 1.00 per 1M input, 2.00 per 1M output.
	return decimal.NewFromInt(in).Add(decimal.NewFromInt(out).Mul(decimal.NewFromInt(2))).
		Div(decimal.NewFromInt(1_000_000))
}

// harness bundles the pieces of a streaming debate test.
type harness struct {
	store     *memStore
	usage     *fakeUsage
	debate    *models.Debate
	sink      *Sink
	mapper    *Mapper
	engine    *Engine
	envelopes []*Envelope
	mu        sync.Mutex
}

func newHarness(t *testing.T, client llm.Client, settings models.DebateSettings) *harness {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	reg, err := personality.NewRegistry("", logger)
	require.NoError(t, err)

	h := &harness{
		store: newMemStore(),
		usage: &fakeUsage{},
	}
	h.debate = h.store.add(&models.Debate{
		ID:       "d1",
		UserID:   "u1",
		Question: "What is 2+2?",
		Provider: "mock",
		Model:    "echo",
		Settings: settings,
		Status:   models.StatusPending,
	})

	executor := NewExecutor(client, reg, &tokens.FixedCounter{Tokens: 5}, logger)
	h.engine = NewEngine(executor, logger)
	h.sink = NewSink(nil)
	h.mapper = NewMapper(h.store, h.usage, h.debate, h.record, logger)
	return h
}

func (h *harness) record(env *Envelope) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.envelopes = append(h.envelopes, env)
	return nil
}

// run drives engine and mapper to completion.
func (h *harness) run(ctx context.Context) (engineErr, mapperErr error) {
	done := make(chan error, 1)
	go func() { done <- h.engine.Run(ctx, h.debate, h.sink) }()
	mapperErr = h.mapper.Run(ctx, h.sink)
	engineErr = <-done
	return engineErr, mapperErr
}

// types returns the envelope type sequence.
func (h *harness) types() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.envelopes))
	for i, env := range h.envelopes {
		out[i] = env.Type
	}
	return out
}

func countType(types []string, want string) int {
	n := 0
	for _, tp := range types {
		if tp == want {
			n++
		}
	}
	return n
}

func defaultSettings(maxRounds int) models.DebateSettings {
	return models.DebateSettings{
		Personalities:    []string{"analyst", "skeptic"},
		MaxRounds:        maxRounds,
		IncludeSynthesis: true,
	}
}
