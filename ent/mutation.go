// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/roundtable-ai/roundtable/ent/debate"
	"github.com/roundtable-ai/roundtable/ent/debateround"
	"github.com/roundtable-ai/roundtable/ent/debatesynthesis"
	"github.com/roundtable-ai/roundtable/ent/personalityresponse"
	"github.com/roundtable-ai/roundtable/ent/predicate"
	"github.com/roundtable-ai/roundtable/ent/usagerecord"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDebate              = "Debate"
	TypeDebateRound         = "DebateRound"
	TypeDebateSynthesis     = "DebateSynthesis"
	TypePersonalityResponse = "PersonalityResponse"
	TypeUsageRecord         = "UsageRecord"
)

// DebateMutation represents an operation that mutates the Debate nodes in the graph.
type DebateMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	user_id                *string
	question               *string
	provider               *string
	model                  *string
	settings               *map[string]interface{}
	status                 *debate.Status
	current_round          *int
	addcurrent_round       *int
	total_input_tokens     *int64
	addtotal_input_tokens  *int64
	total_output_tokens    *int64
	addtotal_output_tokens *int64
	total_cost             *decimal.Decimal
	addtotal_cost          *decimal.Decimal
	created_at             *time.Time
	updated_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	error_message          *string
	clearedFields          map[string]struct{}
	rounds                 map[string]struct{}
	removedrounds          map[string]struct{}
	clearedrounds          bool
	synthesis              *string
	clearedsynthesis       bool
	done                   bool
	oldValue               func(context.Context) (*Debate, error)
	predicates             []predicate.Debate
}

var _ ent.Mutation = (*DebateMutation)(nil)

// debateOption allows management of the mutation configuration using functional options.
type debateOption func(*DebateMutation)

// newDebateMutation creates new mutation for the Debate entity.
func newDebateMutation(c config, op Op, opts ...debateOption) *DebateMutation {
	m := &DebateMutation{
		config:        c,
		op:            op,
		typ:           TypeDebate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDebateID sets the ID field of the mutation.
func withDebateID(id string) debateOption {
	return func(m *DebateMutation) {
		var (
			err   error
			once  sync.Once
			value *Debate
		)
		m.oldValue = func(ctx context.Context) (*Debate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Debate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDebate sets the old Debate of the mutation.
func withDebate(node *Debate) debateOption {
	return func(m *DebateMutation) {
		m.oldValue = func(context.Context) (*Debate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DebateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DebateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Debate entities.
func (m *DebateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DebateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DebateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Debate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DebateMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DebateMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DebateMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestion sets the "question" field.
func (m *DebateMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *DebateMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *DebateMutation) ResetQuestion() {
	m.question = nil
}

// SetProvider sets the "provider" field.
func (m *DebateMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *DebateMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *DebateMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *DebateMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *DebateMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *DebateMutation) ResetModel() {
	m.model = nil
}

// SetSettings sets the "settings" field.
func (m *DebateMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *DebateMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ResetSettings resets all changes to the "settings" field.
func (m *DebateMutation) ResetSettings() {
	m.settings = nil
}

// SetStatus sets the "status" field.
func (m *DebateMutation) SetStatus(d debate.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DebateMutation) Status() (r debate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldStatus(ctx context.Context) (v debate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DebateMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentRound sets the "current_round" field.
func (m *DebateMutation) SetCurrentRound(i int) {
	m.current_round = &i
	m.addcurrent_round = nil
}

// CurrentRound returns the value of the "current_round" field in the mutation.
func (m *DebateMutation) CurrentRound() (r int, exists bool) {
	v := m.current_round
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentRound returns the old "current_round" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldCurrentRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentRound: %w", err)
	}
	return oldValue.CurrentRound, nil
}

// AddCurrentRound adds i to the "current_round" field.
func (m *DebateMutation) AddCurrentRound(i int) {
	if m.addcurrent_round != nil {
		*m.addcurrent_round += i
	} else {
		m.addcurrent_round = &i
	}
}

// AddedCurrentRound returns the value that was added to the "current_round" field in this mutation.
func (m *DebateMutation) AddedCurrentRound() (r int, exists bool) {
	v := m.addcurrent_round
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentRound resets all changes to the "current_round" field.
func (m *DebateMutation) ResetCurrentRound() {
	m.current_round = nil
	m.addcurrent_round = nil
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (m *DebateMutation) SetTotalInputTokens(i int64) {
	m.total_input_tokens = &i
	m.addtotal_input_tokens = nil
}

// TotalInputTokens returns the value of the "total_input_tokens" field in the mutation.
func (m *DebateMutation) TotalInputTokens() (r int64, exists bool) {
	v := m.total_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalInputTokens returns the old "total_input_tokens" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldTotalInputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalInputTokens: %w", err)
	}
	return oldValue.TotalInputTokens, nil
}

// AddTotalInputTokens adds i to the "total_input_tokens" field.
func (m *DebateMutation) AddTotalInputTokens(i int64) {
	if m.addtotal_input_tokens != nil {
		*m.addtotal_input_tokens += i
	} else {
		m.addtotal_input_tokens = &i
	}
}

// AddedTotalInputTokens returns the value that was added to the "total_input_tokens" field in this mutation.
func (m *DebateMutation) AddedTotalInputTokens() (r int64, exists bool) {
	v := m.addtotal_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalInputTokens resets all changes to the "total_input_tokens" field.
func (m *DebateMutation) ResetTotalInputTokens() {
	m.total_input_tokens = nil
	m.addtotal_input_tokens = nil
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (m *DebateMutation) SetTotalOutputTokens(i int64) {
	m.total_output_tokens = &i
	m.addtotal_output_tokens = nil
}

// TotalOutputTokens returns the value of the "total_output_tokens" field in the mutation.
func (m *DebateMutation) TotalOutputTokens() (r int64, exists bool) {
	v := m.total_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalOutputTokens returns the old "total_output_tokens" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldTotalOutputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalOutputTokens: %w", err)
	}
	return oldValue.TotalOutputTokens, nil
}

// AddTotalOutputTokens adds i to the "total_output_tokens" field.
func (m *DebateMutation) AddTotalOutputTokens(i int64) {
	if m.addtotal_output_tokens != nil {
		*m.addtotal_output_tokens += i
	} else {
		m.addtotal_output_tokens = &i
	}
}

// AddedTotalOutputTokens returns the value that was added to the "total_output_tokens" field in this mutation.
func (m *DebateMutation) AddedTotalOutputTokens() (r int64, exists bool) {
	v := m.addtotal_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalOutputTokens resets all changes to the "total_output_tokens" field.
func (m *DebateMutation) ResetTotalOutputTokens() {
	m.total_output_tokens = nil
	m.addtotal_output_tokens = nil
}

// SetTotalCost sets the "total_cost" field.
func (m *DebateMutation) SetTotalCost(d decimal.Decimal) {
	m.total_cost = &d
	m.addtotal_cost = nil
}

// TotalCost returns the value of the "total_cost" field in the mutation.
func (m *DebateMutation) TotalCost() (r decimal.Decimal, exists bool) {
	v := m.total_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCost returns the old "total_cost" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldTotalCost(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCost: %w", err)
	}
	return oldValue.TotalCost, nil
}

// AddTotalCost adds d to the "total_cost" field.
func (m *DebateMutation) AddTotalCost(d decimal.Decimal) {
	if m.addtotal_cost != nil {
		*m.addtotal_cost = m.addtotal_cost.Add(d)
	} else {
		m.addtotal_cost = &d
	}
}

// AddedTotalCost returns the value that was added to the "total_cost" field in this mutation.
func (m *DebateMutation) AddedTotalCost() (r decimal.Decimal, exists bool) {
	v := m.addtotal_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCost resets all changes to the "total_cost" field.
func (m *DebateMutation) ResetTotalCost() {
	m.total_cost = nil
	m.addtotal_cost = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DebateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DebateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DebateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DebateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DebateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DebateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *DebateMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *DebateMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *DebateMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[debate.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *DebateMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[debate.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *DebateMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, debate.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *DebateMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DebateMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DebateMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[debate.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DebateMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[debate.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DebateMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, debate.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *DebateMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DebateMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DebateMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[debate.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DebateMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[debate.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DebateMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, debate.FieldErrorMessage)
}

// AddRoundIDs adds the "rounds" edge to the DebateRound entity by ids.
func (m *DebateMutation) AddRoundIDs(ids ...string) {
	if m.rounds == nil {
		m.rounds = make(map[string]struct{})
	}
	for i := range ids {
		m.rounds[ids[i]] = struct{}{}
	}
}

// ClearRounds clears the "rounds" edge to the DebateRound entity.
func (m *DebateMutation) ClearRounds() {
	m.clearedrounds = true
}

// RoundsCleared reports if the "rounds" edge to the DebateRound entity was cleared.
func (m *DebateMutation) RoundsCleared() bool {
	return m.clearedrounds
}

// RemoveRoundIDs removes the "rounds" edge to the DebateRound entity by IDs.
func (m *DebateMutation) RemoveRoundIDs(ids ...string) {
	if m.removedrounds == nil {
		m.removedrounds = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.rounds, ids[i])
		m.removedrounds[ids[i]] = struct{}{}
	}
}

// RemovedRounds returns the removed IDs of the "rounds" edge to the DebateRound entity.
func (m *DebateMutation) RemovedRoundsIDs() (ids []string) {
	for id := range m.removedrounds {
		ids = append(ids, id)
	}
	return
}

// RoundsIDs returns the "rounds" edge IDs in the mutation.
func (m *DebateMutation) RoundsIDs() (ids []string) {
	for id := range m.rounds {
		ids = append(ids, id)
	}
	return
}

// ResetRounds resets all changes to the "rounds" edge.
func (m *DebateMutation) ResetRounds() {
	m.rounds = nil
	m.clearedrounds = false
	m.removedrounds = nil
}

// SetSynthesisID sets the "synthesis" edge to the DebateSynthesis entity by id.
func (m *DebateMutation) SetSynthesisID(id string) {
	m.synthesis = &id
}

// ClearSynthesis clears the "synthesis" edge to the DebateSynthesis entity.
func (m *DebateMutation) ClearSynthesis() {
	m.clearedsynthesis = true
}

// SynthesisCleared reports if the "synthesis" edge to the DebateSynthesis entity was cleared.
func (m *DebateMutation) SynthesisCleared() bool {
	return m.clearedsynthesis
}

// SynthesisID returns the "synthesis" edge ID in the mutation.
func (m *DebateMutation) SynthesisID() (id string, exists bool) {
	if m.synthesis != nil {
		return *m.synthesis, true
	}
	return
}

// SynthesisIDs returns the "synthesis" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SynthesisID instead. It exists only for internal usage by the builders.
func (m *DebateMutation) SynthesisIDs() (ids []string) {
	if id := m.synthesis; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSynthesis resets all changes to the "synthesis" edge.
func (m *DebateMutation) ResetSynthesis() {
	m.synthesis = nil
	m.clearedsynthesis = false
}

// Where appends a list predicates to the DebateMutation builder.
func (m *DebateMutation) Where(ps ...predicate.Debate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DebateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DebateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Debate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DebateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DebateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Debate).
func (m *DebateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DebateMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.user_id != nil {
		fields = append(fields, debate.FieldUserID)
	}
	if m.question != nil {
		fields = append(fields, debate.FieldQuestion)
	}
	if m.provider != nil {
		fields = append(fields, debate.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, debate.FieldModel)
	}
	if m.settings != nil {
		fields = append(fields, debate.FieldSettings)
	}
	if m.status != nil {
		fields = append(fields, debate.FieldStatus)
	}
	if m.current_round != nil {
		fields = append(fields, debate.FieldCurrentRound)
	}
	if m.total_input_tokens != nil {
		fields = append(fields, debate.FieldTotalInputTokens)
	}
	if m.total_output_tokens != nil {
		fields = append(fields, debate.FieldTotalOutputTokens)
	}
	if m.total_cost != nil {
		fields = append(fields, debate.FieldTotalCost)
	}
	if m.created_at != nil {
		fields = append(fields, debate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, debate.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, debate.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, debate.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, debate.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DebateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case debate.FieldUserID:
		return m.UserID()
	case debate.FieldQuestion:
		return m.Question()
	case debate.FieldProvider:
		return m.Provider()
	case debate.FieldModel:
		return m.Model()
	case debate.FieldSettings:
		return m.Settings()
	case debate.FieldStatus:
		return m.Status()
	case debate.FieldCurrentRound:
		return m.CurrentRound()
	case debate.FieldTotalInputTokens:
		return m.TotalInputTokens()
	case debate.FieldTotalOutputTokens:
		return m.TotalOutputTokens()
	case debate.FieldTotalCost:
		return m.TotalCost()
	case debate.FieldCreatedAt:
		return m.CreatedAt()
	case debate.FieldUpdatedAt:
		return m.UpdatedAt()
	case debate.FieldStartedAt:
		return m.StartedAt()
	case debate.FieldCompletedAt:
		return m.CompletedAt()
	case debate.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DebateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case debate.FieldUserID:
		return m.OldUserID(ctx)
	case debate.FieldQuestion:
		return m.OldQuestion(ctx)
	case debate.FieldProvider:
		return m.OldProvider(ctx)
	case debate.FieldModel:
		return m.OldModel(ctx)
	case debate.FieldSettings:
		return m.OldSettings(ctx)
	case debate.FieldStatus:
		return m.OldStatus(ctx)
	case debate.FieldCurrentRound:
		return m.OldCurrentRound(ctx)
	case debate.FieldTotalInputTokens:
		return m.OldTotalInputTokens(ctx)
	case debate.FieldTotalOutputTokens:
		return m.OldTotalOutputTokens(ctx)
	case debate.FieldTotalCost:
		return m.OldTotalCost(ctx)
	case debate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case debate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case debate.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case debate.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case debate.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown Debate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case debate.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case debate.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case debate.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case debate.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case debate.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case debate.FieldStatus:
		v, ok := value.(debate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case debate.FieldCurrentRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentRound(v)
		return nil
	case debate.FieldTotalInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalInputTokens(v)
		return nil
	case debate.FieldTotalOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalOutputTokens(v)
		return nil
	case debate.FieldTotalCost:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCost(v)
		return nil
	case debate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case debate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case debate.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case debate.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case debate.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown Debate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DebateMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_round != nil {
		fields = append(fields, debate.FieldCurrentRound)
	}
	if m.addtotal_input_tokens != nil {
		fields = append(fields, debate.FieldTotalInputTokens)
	}
	if m.addtotal_output_tokens != nil {
		fields = append(fields, debate.FieldTotalOutputTokens)
	}
	if m.addtotal_cost != nil {
		fields = append(fields, debate.FieldTotalCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DebateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case debate.FieldCurrentRound:
		return m.AddedCurrentRound()
	case debate.FieldTotalInputTokens:
		return m.AddedTotalInputTokens()
	case debate.FieldTotalOutputTokens:
		return m.AddedTotalOutputTokens()
	case debate.FieldTotalCost:
		return m.AddedTotalCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case debate.FieldCurrentRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentRound(v)
		return nil
	case debate.FieldTotalInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalInputTokens(v)
		return nil
	case debate.FieldTotalOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalOutputTokens(v)
		return nil
	case debate.FieldTotalCost:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCost(v)
		return nil
	}
	return fmt.Errorf("unknown Debate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DebateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(debate.FieldStartedAt) {
		fields = append(fields, debate.FieldStartedAt)
	}
	if m.FieldCleared(debate.FieldCompletedAt) {
		fields = append(fields, debate.FieldCompletedAt)
	}
	if m.FieldCleared(debate.FieldErrorMessage) {
		fields = append(fields, debate.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DebateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DebateMutation) ClearField(name string) error {
	switch name {
	case debate.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case debate.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case debate.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Debate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DebateMutation) ResetField(name string) error {
	switch name {
	case debate.FieldUserID:
		m.ResetUserID()
		return nil
	case debate.FieldQuestion:
		m.ResetQuestion()
		return nil
	case debate.FieldProvider:
		m.ResetProvider()
		return nil
	case debate.FieldModel:
		m.ResetModel()
		return nil
	case debate.FieldSettings:
		m.ResetSettings()
		return nil
	case debate.FieldStatus:
		m.ResetStatus()
		return nil
	case debate.FieldCurrentRound:
		m.ResetCurrentRound()
		return nil
	case debate.FieldTotalInputTokens:
		m.ResetTotalInputTokens()
		return nil
	case debate.FieldTotalOutputTokens:
		m.ResetTotalOutputTokens()
		return nil
	case debate.FieldTotalCost:
		m.ResetTotalCost()
		return nil
	case debate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case debate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case debate.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case debate.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case debate.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Debate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DebateMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.rounds != nil {
		edges = append(edges, debate.EdgeRounds)
	}
	if m.synthesis != nil {
		edges = append(edges, debate.EdgeSynthesis)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DebateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case debate.EdgeRounds:
		ids := make([]ent.Value, 0, len(m.rounds))
		for id := range m.rounds {
			ids = append(ids, id)
		}
		return ids
	case debate.EdgeSynthesis:
		if id := m.synthesis; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DebateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrounds != nil {
		edges = append(edges, debate.EdgeRounds)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DebateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case debate.EdgeRounds:
		ids := make([]ent.Value, 0, len(m.removedrounds))
		for id := range m.removedrounds {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DebateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrounds {
		edges = append(edges, debate.EdgeRounds)
	}
	if m.clearedsynthesis {
		edges = append(edges, debate.EdgeSynthesis)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DebateMutation) EdgeCleared(name string) bool {
	switch name {
	case debate.EdgeRounds:
		return m.clearedrounds
	case debate.EdgeSynthesis:
		return m.clearedsynthesis
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DebateMutation) ClearEdge(name string) error {
	switch name {
	case debate.EdgeSynthesis:
		m.ClearSynthesis()
		return nil
	}
	return fmt.Errorf("unknown Debate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DebateMutation) ResetEdge(name string) error {
	switch name {
	case debate.EdgeRounds:
		m.ResetRounds()
		return nil
	case debate.EdgeSynthesis:
		m.ResetSynthesis()
		return nil
	}
	return fmt.Errorf("unknown Debate edge %s", name)
}

// DebateRoundMutation represents an operation that mutates the DebateRound nodes in the graph.
type DebateRoundMutation struct {
	config
	op               Op
	typ              string
	id               *string
	round_number     *int
	addround_number  *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	debate           *string
	cleareddebate    bool
	responses        map[string]struct{}
	removedresponses map[string]struct{}
	clearedresponses bool
	done             bool
	oldValue         func(context.Context) (*DebateRound, error)
	predicates       []predicate.DebateRound
}

var _ ent.Mutation = (*DebateRoundMutation)(nil)

// debateroundOption allows management of the mutation configuration using functional options.
type debateroundOption func(*DebateRoundMutation)

// newDebateRoundMutation creates new mutation for the DebateRound entity.
func newDebateRoundMutation(c config, op Op, opts ...debateroundOption) *DebateRoundMutation {
	m := &DebateRoundMutation{
		config:        c,
		op:            op,
		typ:           TypeDebateRound,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDebateRoundID sets the ID field of the mutation.
func withDebateRoundID(id string) debateroundOption {
	return func(m *DebateRoundMutation) {
		var (
			err   error
			once  sync.Once
			value *DebateRound
		)
		m.oldValue = func(ctx context.Context) (*DebateRound, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DebateRound.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDebateRound sets the old DebateRound of the mutation.
func withDebateRound(node *DebateRound) debateroundOption {
	return func(m *DebateRoundMutation) {
		m.oldValue = func(context.Context) (*DebateRound, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DebateRoundMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DebateRoundMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DebateRound entities.
func (m *DebateRoundMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DebateRoundMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DebateRoundMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DebateRound.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDebateID sets the "debate_id" field.
func (m *DebateRoundMutation) SetDebateID(s string) {
	m.debate = &s
}

// DebateID returns the value of the "debate_id" field in the mutation.
func (m *DebateRoundMutation) DebateID() (r string, exists bool) {
	v := m.debate
	if v == nil {
		return
	}
	return *v, true
}

// OldDebateID returns the old "debate_id" field's value of the DebateRound entity.
// If the DebateRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateRoundMutation) OldDebateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebateID: %w", err)
	}
	return oldValue.DebateID, nil
}

// ResetDebateID resets all changes to the "debate_id" field.
func (m *DebateRoundMutation) ResetDebateID() {
	m.debate = nil
}

// SetRoundNumber sets the "round_number" field.
func (m *DebateRoundMutation) SetRoundNumber(i int) {
	m.round_number = &i
	m.addround_number = nil
}

// RoundNumber returns the value of the "round_number" field in the mutation.
func (m *DebateRoundMutation) RoundNumber() (r int, exists bool) {
	v := m.round_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundNumber returns the old "round_number" field's value of the DebateRound entity.
// If the DebateRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateRoundMutation) OldRoundNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundNumber: %w", err)
	}
	return oldValue.RoundNumber, nil
}

// AddRoundNumber adds i to the "round_number" field.
func (m *DebateRoundMutation) AddRoundNumber(i int) {
	if m.addround_number != nil {
		*m.addround_number += i
	} else {
		m.addround_number = &i
	}
}

// AddedRoundNumber returns the value that was added to the "round_number" field in this mutation.
func (m *DebateRoundMutation) AddedRoundNumber() (r int, exists bool) {
	v := m.addround_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoundNumber resets all changes to the "round_number" field.
func (m *DebateRoundMutation) ResetRoundNumber() {
	m.round_number = nil
	m.addround_number = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DebateRoundMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DebateRoundMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DebateRound entity.
// If the DebateRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateRoundMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DebateRoundMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDebate clears the "debate" edge to the Debate entity.
func (m *DebateRoundMutation) ClearDebate() {
	m.cleareddebate = true
	m.clearedFields[debateround.FieldDebateID] = struct{}{}
}

// DebateCleared reports if the "debate" edge to the Debate entity was cleared.
func (m *DebateRoundMutation) DebateCleared() bool {
	return m.cleareddebate
}

// DebateIDs returns the "debate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DebateID instead. It exists only for internal usage by the builders.
func (m *DebateRoundMutation) DebateIDs() (ids []string) {
	if id := m.debate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDebate resets all changes to the "debate" edge.
func (m *DebateRoundMutation) ResetDebate() {
	m.debate = nil
	m.cleareddebate = false
}

// AddResponseIDs adds the "responses" edge to the PersonalityResponse entity by ids.
func (m *DebateRoundMutation) AddResponseIDs(ids ...string) {
	if m.responses == nil {
		m.responses = make(map[string]struct{})
	}
	for i := range ids {
		m.responses[ids[i]] = struct{}{}
	}
}

// ClearResponses clears the "responses" edge to the PersonalityResponse entity.
func (m *DebateRoundMutation) ClearResponses() {
	m.clearedresponses = true
}

// ResponsesCleared reports if the "responses" edge to the PersonalityResponse entity was cleared.
func (m *DebateRoundMutation) ResponsesCleared() bool {
	return m.clearedresponses
}

// RemoveResponseIDs removes the "responses" edge to the PersonalityResponse entity by IDs.
func (m *DebateRoundMutation) RemoveResponseIDs(ids ...string) {
	if m.removedresponses == nil {
		m.removedresponses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.responses, ids[i])
		m.removedresponses[ids[i]] = struct{}{}
	}
}

// RemovedResponses returns the removed IDs of the "responses" edge to the PersonalityResponse entity.
func (m *DebateRoundMutation) RemovedResponsesIDs() (ids []string) {
	for id := range m.removedresponses {
		ids = append(ids, id)
	}
	return
}

// ResponsesIDs returns the "responses" edge IDs in the mutation.
func (m *DebateRoundMutation) ResponsesIDs() (ids []string) {
	for id := range m.responses {
		ids = append(ids, id)
	}
	return
}

// ResetResponses resets all changes to the "responses" edge.
func (m *DebateRoundMutation) ResetResponses() {
	m.responses = nil
	m.clearedresponses = false
	m.removedresponses = nil
}

// Where appends a list predicates to the DebateRoundMutation builder.
func (m *DebateRoundMutation) Where(ps ...predicate.DebateRound) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DebateRoundMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DebateRoundMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DebateRound, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DebateRoundMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DebateRoundMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DebateRound).
func (m *DebateRoundMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DebateRoundMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.debate != nil {
		fields = append(fields, debateround.FieldDebateID)
	}
	if m.round_number != nil {
		fields = append(fields, debateround.FieldRoundNumber)
	}
	if m.created_at != nil {
		fields = append(fields, debateround.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DebateRoundMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case debateround.FieldDebateID:
		return m.DebateID()
	case debateround.FieldRoundNumber:
		return m.RoundNumber()
	case debateround.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DebateRoundMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case debateround.FieldDebateID:
		return m.OldDebateID(ctx)
	case debateround.FieldRoundNumber:
		return m.OldRoundNumber(ctx)
	case debateround.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DebateRound field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateRoundMutation) SetField(name string, value ent.Value) error {
	switch name {
	case debateround.FieldDebateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebateID(v)
		return nil
	case debateround.FieldRoundNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundNumber(v)
		return nil
	case debateround.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DebateRound field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DebateRoundMutation) AddedFields() []string {
	var fields []string
	if m.addround_number != nil {
		fields = append(fields, debateround.FieldRoundNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DebateRoundMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case debateround.FieldRoundNumber:
		return m.AddedRoundNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateRoundMutation) AddField(name string, value ent.Value) error {
	switch name {
	case debateround.FieldRoundNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoundNumber(v)
		return nil
	}
	return fmt.Errorf("unknown DebateRound numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DebateRoundMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DebateRoundMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DebateRoundMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DebateRound nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DebateRoundMutation) ResetField(name string) error {
	switch name {
	case debateround.FieldDebateID:
		m.ResetDebateID()
		return nil
	case debateround.FieldRoundNumber:
		m.ResetRoundNumber()
		return nil
	case debateround.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DebateRound field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DebateRoundMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.debate != nil {
		edges = append(edges, debateround.EdgeDebate)
	}
	if m.responses != nil {
		edges = append(edges, debateround.EdgeResponses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DebateRoundMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case debateround.EdgeDebate:
		if id := m.debate; id != nil {
			return []ent.Value{*id}
		}
	case debateround.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.responses))
		for id := range m.responses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DebateRoundMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedresponses != nil {
		edges = append(edges, debateround.EdgeResponses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DebateRoundMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case debateround.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.removedresponses))
		for id := range m.removedresponses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DebateRoundMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddebate {
		edges = append(edges, debateround.EdgeDebate)
	}
	if m.clearedresponses {
		edges = append(edges, debateround.EdgeResponses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DebateRoundMutation) EdgeCleared(name string) bool {
	switch name {
	case debateround.EdgeDebate:
		return m.cleareddebate
	case debateround.EdgeResponses:
		return m.clearedresponses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DebateRoundMutation) ClearEdge(name string) error {
	switch name {
	case debateround.EdgeDebate:
		m.ClearDebate()
		return nil
	}
	return fmt.Errorf("unknown DebateRound unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DebateRoundMutation) ResetEdge(name string) error {
	switch name {
	case debateround.EdgeDebate:
		m.ResetDebate()
		return nil
	case debateround.EdgeResponses:
		m.ResetResponses()
		return nil
	}
	return fmt.Errorf("unknown DebateRound edge %s", name)
}

// DebateSynthesisMutation represents an operation that mutates the DebateSynthesis nodes in the graph.
type DebateSynthesisMutation struct {
	config
	op               Op
	typ              string
	id               *string
	content          *string
	input_tokens     *int64
	addinput_tokens  *int64
	output_tokens    *int64
	addoutput_tokens *int64
	cost             *decimal.Decimal
	addcost          *decimal.Decimal
	created_at       *time.Time
	clearedFields    map[string]struct{}
	debate           *string
	cleareddebate    bool
	done             bool
	oldValue         func(context.Context) (*DebateSynthesis, error)
	predicates       []predicate.DebateSynthesis
}

var _ ent.Mutation = (*DebateSynthesisMutation)(nil)

// debatesynthesisOption allows management of the mutation configuration using functional options.
type debatesynthesisOption func(*DebateSynthesisMutation)

// newDebateSynthesisMutation creates new mutation for the DebateSynthesis entity.
func newDebateSynthesisMutation(c config, op Op, opts ...debatesynthesisOption) *DebateSynthesisMutation {
	m := &DebateSynthesisMutation{
		config:        c,
		op:            op,
		typ:           TypeDebateSynthesis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDebateSynthesisID sets the ID field of the mutation.
func withDebateSynthesisID(id string) debatesynthesisOption {
	return func(m *DebateSynthesisMutation) {
		var (
			err   error
			once  sync.Once
			value *DebateSynthesis
		)
		m.oldValue = func(ctx context.Context) (*DebateSynthesis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DebateSynthesis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDebateSynthesis sets the old DebateSynthesis of the mutation.
func withDebateSynthesis(node *DebateSynthesis) debatesynthesisOption {
	return func(m *DebateSynthesisMutation) {
		m.oldValue = func(context.Context) (*DebateSynthesis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DebateSynthesisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DebateSynthesisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DebateSynthesis entities.
func (m *DebateSynthesisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DebateSynthesisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DebateSynthesisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DebateSynthesis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDebateID sets the "debate_id" field.
func (m *DebateSynthesisMutation) SetDebateID(s string) {
	m.debate = &s
}

// DebateID returns the value of the "debate_id" field in the mutation.
func (m *DebateSynthesisMutation) DebateID() (r string, exists bool) {
	v := m.debate
	if v == nil {
		return
	}
	return *v, true
}

// OldDebateID returns the old "debate_id" field's value of the DebateSynthesis entity.
// If the DebateSynthesis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSynthesisMutation) OldDebateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebateID: %w", err)
	}
	return oldValue.DebateID, nil
}

// ResetDebateID resets all changes to the "debate_id" field.
func (m *DebateSynthesisMutation) ResetDebateID() {
	m.debate = nil
}

// SetContent sets the "content" field.
func (m *DebateSynthesisMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DebateSynthesisMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the DebateSynthesis entity.
// If the DebateSynthesis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSynthesisMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *DebateSynthesisMutation) ResetContent() {
	m.content = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *DebateSynthesisMutation) SetInputTokens(i int64) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *DebateSynthesisMutation) InputTokens() (r int64, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the DebateSynthesis entity.
// If the DebateSynthesis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSynthesisMutation) OldInputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *DebateSynthesisMutation) AddInputTokens(i int64) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *DebateSynthesisMutation) AddedInputTokens() (r int64, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *DebateSynthesisMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *DebateSynthesisMutation) SetOutputTokens(i int64) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *DebateSynthesisMutation) OutputTokens() (r int64, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the DebateSynthesis entity.
// If the DebateSynthesis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSynthesisMutation) OldOutputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *DebateSynthesisMutation) AddOutputTokens(i int64) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *DebateSynthesisMutation) AddedOutputTokens() (r int64, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *DebateSynthesisMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCost sets the "cost" field.
func (m *DebateSynthesisMutation) SetCost(d decimal.Decimal) {
	m.cost = &d
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *DebateSynthesisMutation) Cost() (r decimal.Decimal, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the DebateSynthesis entity.
// If the DebateSynthesis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSynthesisMutation) OldCost(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds d to the "cost" field.
func (m *DebateSynthesisMutation) AddCost(d decimal.Decimal) {
	if m.addcost != nil {
		*m.addcost = m.addcost.Add(d)
	} else {
		m.addcost = &d
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *DebateSynthesisMutation) AddedCost() (r decimal.Decimal, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *DebateSynthesisMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DebateSynthesisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DebateSynthesisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DebateSynthesis entity.
// If the DebateSynthesis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSynthesisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DebateSynthesisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDebate clears the "debate" edge to the Debate entity.
func (m *DebateSynthesisMutation) ClearDebate() {
	m.cleareddebate = true
	m.clearedFields[debatesynthesis.FieldDebateID] = struct{}{}
}

// DebateCleared reports if the "debate" edge to the Debate entity was cleared.
func (m *DebateSynthesisMutation) DebateCleared() bool {
	return m.cleareddebate
}

// DebateIDs returns the "debate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DebateID instead. It exists only for internal usage by the builders.
func (m *DebateSynthesisMutation) DebateIDs() (ids []string) {
	if id := m.debate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDebate resets all changes to the "debate" edge.
func (m *DebateSynthesisMutation) ResetDebate() {
	m.debate = nil
	m.cleareddebate = false
}

// Where appends a list predicates to the DebateSynthesisMutation builder.
func (m *DebateSynthesisMutation) Where(ps ...predicate.DebateSynthesis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DebateSynthesisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DebateSynthesisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DebateSynthesis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DebateSynthesisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DebateSynthesisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DebateSynthesis).
func (m *DebateSynthesisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DebateSynthesisMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.debate != nil {
		fields = append(fields, debatesynthesis.FieldDebateID)
	}
	if m.content != nil {
		fields = append(fields, debatesynthesis.FieldContent)
	}
	if m.input_tokens != nil {
		fields = append(fields, debatesynthesis.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, debatesynthesis.FieldOutputTokens)
	}
	if m.cost != nil {
		fields = append(fields, debatesynthesis.FieldCost)
	}
	if m.created_at != nil {
		fields = append(fields, debatesynthesis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DebateSynthesisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case debatesynthesis.FieldDebateID:
		return m.DebateID()
	case debatesynthesis.FieldContent:
		return m.Content()
	case debatesynthesis.FieldInputTokens:
		return m.InputTokens()
	case debatesynthesis.FieldOutputTokens:
		return m.OutputTokens()
	case debatesynthesis.FieldCost:
		return m.Cost()
	case debatesynthesis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DebateSynthesisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case debatesynthesis.FieldDebateID:
		return m.OldDebateID(ctx)
	case debatesynthesis.FieldContent:
		return m.OldContent(ctx)
	case debatesynthesis.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case debatesynthesis.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case debatesynthesis.FieldCost:
		return m.OldCost(ctx)
	case debatesynthesis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DebateSynthesis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateSynthesisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case debatesynthesis.FieldDebateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebateID(v)
		return nil
	case debatesynthesis.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case debatesynthesis.FieldInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case debatesynthesis.FieldOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case debatesynthesis.FieldCost:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case debatesynthesis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DebateSynthesis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DebateSynthesisMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, debatesynthesis.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, debatesynthesis.FieldOutputTokens)
	}
	if m.addcost != nil {
		fields = append(fields, debatesynthesis.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DebateSynthesisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case debatesynthesis.FieldInputTokens:
		return m.AddedInputTokens()
	case debatesynthesis.FieldOutputTokens:
		return m.AddedOutputTokens()
	case debatesynthesis.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateSynthesisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case debatesynthesis.FieldInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case debatesynthesis.FieldOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case debatesynthesis.FieldCost:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown DebateSynthesis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DebateSynthesisMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DebateSynthesisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DebateSynthesisMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DebateSynthesis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DebateSynthesisMutation) ResetField(name string) error {
	switch name {
	case debatesynthesis.FieldDebateID:
		m.ResetDebateID()
		return nil
	case debatesynthesis.FieldContent:
		m.ResetContent()
		return nil
	case debatesynthesis.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case debatesynthesis.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case debatesynthesis.FieldCost:
		m.ResetCost()
		return nil
	case debatesynthesis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DebateSynthesis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DebateSynthesisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.debate != nil {
		edges = append(edges, debatesynthesis.EdgeDebate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DebateSynthesisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case debatesynthesis.EdgeDebate:
		if id := m.debate; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DebateSynthesisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DebateSynthesisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DebateSynthesisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddebate {
		edges = append(edges, debatesynthesis.EdgeDebate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DebateSynthesisMutation) EdgeCleared(name string) bool {
	switch name {
	case debatesynthesis.EdgeDebate:
		return m.cleareddebate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DebateSynthesisMutation) ClearEdge(name string) error {
	switch name {
	case debatesynthesis.EdgeDebate:
		m.ClearDebate()
		return nil
	}
	return fmt.Errorf("unknown DebateSynthesis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DebateSynthesisMutation) ResetEdge(name string) error {
	switch name {
	case debatesynthesis.EdgeDebate:
		m.ResetDebate()
		return nil
	}
	return fmt.Errorf("unknown DebateSynthesis edge %s", name)
}

// PersonalityResponseMutation represents an operation that mutates the PersonalityResponse nodes in the graph.
type PersonalityResponseMutation struct {
	config
	op                Op
	typ               string
	id                *string
	personality       *string
	response_index    *int
	addresponse_index *int
	thinking          *string
	answer            *string
	input_tokens      *int64
	addinput_tokens   *int64
	output_tokens     *int64
	addoutput_tokens  *int64
	cost              *decimal.Decimal
	addcost           *decimal.Decimal
	created_at        *time.Time
	clearedFields     map[string]struct{}
	round             *string
	clearedround      bool
	done              bool
	oldValue          func(context.Context) (*PersonalityResponse, error)
	predicates        []predicate.PersonalityResponse
}

var _ ent.Mutation = (*PersonalityResponseMutation)(nil)

// personalityresponseOption allows management of the mutation configuration using functional options.
type personalityresponseOption func(*PersonalityResponseMutation)

// newPersonalityResponseMutation creates new mutation for the PersonalityResponse entity.
func newPersonalityResponseMutation(c config, op Op, opts ...personalityresponseOption) *PersonalityResponseMutation {
	m := &PersonalityResponseMutation{
		config:        c,
		op:            op,
		typ:           TypePersonalityResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonalityResponseID sets the ID field of the mutation.
func withPersonalityResponseID(id string) personalityresponseOption {
	return func(m *PersonalityResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *PersonalityResponse
		)
		m.oldValue = func(ctx context.Context) (*PersonalityResponse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PersonalityResponse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPersonalityResponse sets the old PersonalityResponse of the mutation.
func withPersonalityResponse(node *PersonalityResponse) personalityresponseOption {
	return func(m *PersonalityResponseMutation) {
		m.oldValue = func(context.Context) (*PersonalityResponse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonalityResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonalityResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PersonalityResponse entities.
func (m *PersonalityResponseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonalityResponseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonalityResponseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PersonalityResponse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoundID sets the "round_id" field.
func (m *PersonalityResponseMutation) SetRoundID(s string) {
	m.round = &s
}

// RoundID returns the value of the "round_id" field in the mutation.
func (m *PersonalityResponseMutation) RoundID() (r string, exists bool) {
	v := m.round
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundID returns the old "round_id" field's value of the PersonalityResponse entity.
// If the PersonalityResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonalityResponseMutation) OldRoundID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundID: %w", err)
	}
	return oldValue.RoundID, nil
}

// ResetRoundID resets all changes to the "round_id" field.
func (m *PersonalityResponseMutation) ResetRoundID() {
	m.round = nil
}

// SetPersonality sets the "personality" field.
func (m *PersonalityResponseMutation) SetPersonality(s string) {
	m.personality = &s
}

// Personality returns the value of the "personality" field in the mutation.
func (m *PersonalityResponseMutation) Personality() (r string, exists bool) {
	v := m.personality
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonality returns the old "personality" field's value of the PersonalityResponse entity.
// If the PersonalityResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonalityResponseMutation) OldPersonality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonality: %w", err)
	}
	return oldValue.Personality, nil
}

// ResetPersonality resets all changes to the "personality" field.
func (m *PersonalityResponseMutation) ResetPersonality() {
	m.personality = nil
}

// SetResponseIndex sets the "response_index" field.
func (m *PersonalityResponseMutation) SetResponseIndex(i int) {
	m.response_index = &i
	m.addresponse_index = nil
}

// ResponseIndex returns the value of the "response_index" field in the mutation.
func (m *PersonalityResponseMutation) ResponseIndex() (r int, exists bool) {
	v := m.response_index
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseIndex returns the old "response_index" field's value of the PersonalityResponse entity.
// If the PersonalityResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonalityResponseMutation) OldResponseIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseIndex: %w", err)
	}
	return oldValue.ResponseIndex, nil
}

// AddResponseIndex adds i to the "response_index" field.
func (m *PersonalityResponseMutation) AddResponseIndex(i int) {
	if m.addresponse_index != nil {
		*m.addresponse_index += i
	} else {
		m.addresponse_index = &i
	}
}

// AddedResponseIndex returns the value that was added to the "response_index" field in this mutation.
func (m *PersonalityResponseMutation) AddedResponseIndex() (r int, exists bool) {
	v := m.addresponse_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseIndex resets all changes to the "response_index" field.
func (m *PersonalityResponseMutation) ResetResponseIndex() {
	m.response_index = nil
	m.addresponse_index = nil
}

// SetThinking sets the "thinking" field.
func (m *PersonalityResponseMutation) SetThinking(s string) {
	m.thinking = &s
}

// Thinking returns the value of the "thinking" field in the mutation.
func (m *PersonalityResponseMutation) Thinking() (r string, exists bool) {
	v := m.thinking
	if v == nil {
		return
	}
	return *v, true
}

// OldThinking returns the old "thinking" field's value of the PersonalityResponse entity.
// If the PersonalityResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonalityResponseMutation) OldThinking(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThinking is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThinking requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThinking: %w", err)
	}
	return oldValue.Thinking, nil
}

// ClearThinking clears the value of the "thinking" field.
func (m *PersonalityResponseMutation) ClearThinking() {
	m.thinking = nil
	m.clearedFields[personalityresponse.FieldThinking] = struct{}{}
}

// ThinkingCleared returns if the "thinking" field was cleared in this mutation.
func (m *PersonalityResponseMutation) ThinkingCleared() bool {
	_, ok := m.clearedFields[personalityresponse.FieldThinking]
	return ok
}

// ResetThinking resets all changes to the "thinking" field.
func (m *PersonalityResponseMutation) ResetThinking() {
	m.thinking = nil
	delete(m.clearedFields, personalityresponse.FieldThinking)
}

// SetAnswer sets the "answer" field.
func (m *PersonalityResponseMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *PersonalityResponseMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the PersonalityResponse entity.
// If the PersonalityResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonalityResponseMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ResetAnswer resets all changes to the "answer" field.
func (m *PersonalityResponseMutation) ResetAnswer() {
	m.answer = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *PersonalityResponseMutation) SetInputTokens(i int64) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *PersonalityResponseMutation) InputTokens() (r int64, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the PersonalityResponse entity.
// If the PersonalityResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonalityResponseMutation) OldInputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *PersonalityResponseMutation) AddInputTokens(i int64) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *PersonalityResponseMutation) AddedInputTokens() (r int64, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *PersonalityResponseMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *PersonalityResponseMutation) SetOutputTokens(i int64) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *PersonalityResponseMutation) OutputTokens() (r int64, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the PersonalityResponse entity.
// If the PersonalityResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonalityResponseMutation) OldOutputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *PersonalityResponseMutation) AddOutputTokens(i int64) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *PersonalityResponseMutation) AddedOutputTokens() (r int64, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *PersonalityResponseMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCost sets the "cost" field.
func (m *PersonalityResponseMutation) SetCost(d decimal.Decimal) {
	m.cost = &d
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *PersonalityResponseMutation) Cost() (r decimal.Decimal, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the PersonalityResponse entity.
// If the PersonalityResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonalityResponseMutation) OldCost(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds d to the "cost" field.
func (m *PersonalityResponseMutation) AddCost(d decimal.Decimal) {
	if m.addcost != nil {
		*m.addcost = m.addcost.Add(d)
	} else {
		m.addcost = &d
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *PersonalityResponseMutation) AddedCost() (r decimal.Decimal, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *PersonalityResponseMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonalityResponseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonalityResponseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PersonalityResponse entity.
// If the PersonalityResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonalityResponseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonalityResponseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRound clears the "round" edge to the DebateRound entity.
func (m *PersonalityResponseMutation) ClearRound() {
	m.clearedround = true
	m.clearedFields[personalityresponse.FieldRoundID] = struct{}{}
}

// RoundCleared reports if the "round" edge to the DebateRound entity was cleared.
func (m *PersonalityResponseMutation) RoundCleared() bool {
	return m.clearedround
}

// RoundIDs returns the "round" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoundID instead. It exists only for internal usage by the builders.
func (m *PersonalityResponseMutation) RoundIDs() (ids []string) {
	if id := m.round; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRound resets all changes to the "round" edge.
func (m *PersonalityResponseMutation) ResetRound() {
	m.round = nil
	m.clearedround = false
}

// Where appends a list predicates to the PersonalityResponseMutation builder.
func (m *PersonalityResponseMutation) Where(ps ...predicate.PersonalityResponse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonalityResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonalityResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PersonalityResponse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonalityResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonalityResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PersonalityResponse).
func (m *PersonalityResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonalityResponseMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.round != nil {
		fields = append(fields, personalityresponse.FieldRoundID)
	}
	if m.personality != nil {
		fields = append(fields, personalityresponse.FieldPersonality)
	}
	if m.response_index != nil {
		fields = append(fields, personalityresponse.FieldResponseIndex)
	}
	if m.thinking != nil {
		fields = append(fields, personalityresponse.FieldThinking)
	}
	if m.answer != nil {
		fields = append(fields, personalityresponse.FieldAnswer)
	}
	if m.input_tokens != nil {
		fields = append(fields, personalityresponse.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, personalityresponse.FieldOutputTokens)
	}
	if m.cost != nil {
		fields = append(fields, personalityresponse.FieldCost)
	}
	if m.created_at != nil {
		fields = append(fields, personalityresponse.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonalityResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case personalityresponse.FieldRoundID:
		return m.RoundID()
	case personalityresponse.FieldPersonality:
		return m.Personality()
	case personalityresponse.FieldResponseIndex:
		return m.ResponseIndex()
	case personalityresponse.FieldThinking:
		return m.Thinking()
	case personalityresponse.FieldAnswer:
		return m.Answer()
	case personalityresponse.FieldInputTokens:
		return m.InputTokens()
	case personalityresponse.FieldOutputTokens:
		return m.OutputTokens()
	case personalityresponse.FieldCost:
		return m.Cost()
	case personalityresponse.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonalityResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case personalityresponse.FieldRoundID:
		return m.OldRoundID(ctx)
	case personalityresponse.FieldPersonality:
		return m.OldPersonality(ctx)
	case personalityresponse.FieldResponseIndex:
		return m.OldResponseIndex(ctx)
	case personalityresponse.FieldThinking:
		return m.OldThinking(ctx)
	case personalityresponse.FieldAnswer:
		return m.OldAnswer(ctx)
	case personalityresponse.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case personalityresponse.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case personalityresponse.FieldCost:
		return m.OldCost(ctx)
	case personalityresponse.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PersonalityResponse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonalityResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case personalityresponse.FieldRoundID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundID(v)
		return nil
	case personalityresponse.FieldPersonality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonality(v)
		return nil
	case personalityresponse.FieldResponseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseIndex(v)
		return nil
	case personalityresponse.FieldThinking:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThinking(v)
		return nil
	case personalityresponse.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case personalityresponse.FieldInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case personalityresponse.FieldOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case personalityresponse.FieldCost:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case personalityresponse.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PersonalityResponse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonalityResponseMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_index != nil {
		fields = append(fields, personalityresponse.FieldResponseIndex)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, personalityresponse.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, personalityresponse.FieldOutputTokens)
	}
	if m.addcost != nil {
		fields = append(fields, personalityresponse.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonalityResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case personalityresponse.FieldResponseIndex:
		return m.AddedResponseIndex()
	case personalityresponse.FieldInputTokens:
		return m.AddedInputTokens()
	case personalityresponse.FieldOutputTokens:
		return m.AddedOutputTokens()
	case personalityresponse.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonalityResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case personalityresponse.FieldResponseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseIndex(v)
		return nil
	case personalityresponse.FieldInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case personalityresponse.FieldOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case personalityresponse.FieldCost:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown PersonalityResponse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonalityResponseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(personalityresponse.FieldThinking) {
		fields = append(fields, personalityresponse.FieldThinking)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonalityResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonalityResponseMutation) ClearField(name string) error {
	switch name {
	case personalityresponse.FieldThinking:
		m.ClearThinking()
		return nil
	}
	return fmt.Errorf("unknown PersonalityResponse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonalityResponseMutation) ResetField(name string) error {
	switch name {
	case personalityresponse.FieldRoundID:
		m.ResetRoundID()
		return nil
	case personalityresponse.FieldPersonality:
		m.ResetPersonality()
		return nil
	case personalityresponse.FieldResponseIndex:
		m.ResetResponseIndex()
		return nil
	case personalityresponse.FieldThinking:
		m.ResetThinking()
		return nil
	case personalityresponse.FieldAnswer:
		m.ResetAnswer()
		return nil
	case personalityresponse.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case personalityresponse.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case personalityresponse.FieldCost:
		m.ResetCost()
		return nil
	case personalityresponse.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PersonalityResponse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonalityResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.round != nil {
		edges = append(edges, personalityresponse.EdgeRound)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonalityResponseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case personalityresponse.EdgeRound:
		if id := m.round; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonalityResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonalityResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonalityResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedround {
		edges = append(edges, personalityresponse.EdgeRound)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonalityResponseMutation) EdgeCleared(name string) bool {
	switch name {
	case personalityresponse.EdgeRound:
		return m.clearedround
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonalityResponseMutation) ClearEdge(name string) error {
	switch name {
	case personalityresponse.EdgeRound:
		m.ClearRound()
		return nil
	}
	return fmt.Errorf("unknown PersonalityResponse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonalityResponseMutation) ResetEdge(name string) error {
	switch name {
	case personalityresponse.EdgeRound:
		m.ResetRound()
		return nil
	}
	return fmt.Errorf("unknown PersonalityResponse edge %s", name)
}

// UsageRecordMutation represents an operation that mutates the UsageRecord nodes in the graph.
type UsageRecordMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	debate_id        *string
	provider         *string
	model            *string
	input_tokens     *int64
	addinput_tokens  *int64
	output_tokens    *int64
	addoutput_tokens *int64
	cached_tokens    *int64
	addcached_tokens *int64
	total_tokens     *int64
	addtotal_tokens  *int64
	cost             *decimal.Decimal
	addcost          *decimal.Decimal
	operation        *usagerecord.Operation
	personality      *string
	round_number     *int
	addround_number  *int
	estimated        *bool
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*UsageRecord, error)
	predicates       []predicate.UsageRecord
}

var _ ent.Mutation = (*UsageRecordMutation)(nil)

// usagerecordOption allows management of the mutation configuration using functional options.
type usagerecordOption func(*UsageRecordMutation)

// newUsageRecordMutation creates new mutation for the UsageRecord entity.
func newUsageRecordMutation(c config, op Op, opts ...usagerecordOption) *UsageRecordMutation {
	m := &UsageRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageRecordID sets the ID field of the mutation.
func withUsageRecordID(id string) usagerecordOption {
	return func(m *UsageRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageRecord
		)
		m.oldValue = func(ctx context.Context) (*UsageRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageRecord sets the old UsageRecord of the mutation.
func withUsageRecord(node *UsageRecord) usagerecordOption {
	return func(m *UsageRecordMutation) {
		m.oldValue = func(context.Context) (*UsageRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UsageRecord entities.
func (m *UsageRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UsageRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UsageRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UsageRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetDebateID sets the "debate_id" field.
func (m *UsageRecordMutation) SetDebateID(s string) {
	m.debate_id = &s
}

// DebateID returns the value of the "debate_id" field in the mutation.
func (m *UsageRecordMutation) DebateID() (r string, exists bool) {
	v := m.debate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDebateID returns the old "debate_id" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldDebateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebateID: %w", err)
	}
	return oldValue.DebateID, nil
}

// ResetDebateID resets all changes to the "debate_id" field.
func (m *UsageRecordMutation) ResetDebateID() {
	m.debate_id = nil
}

// SetProvider sets the "provider" field.
func (m *UsageRecordMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *UsageRecordMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *UsageRecordMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *UsageRecordMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *UsageRecordMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *UsageRecordMutation) ResetModel() {
	m.model = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *UsageRecordMutation) SetInputTokens(i int64) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *UsageRecordMutation) InputTokens() (r int64, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldInputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *UsageRecordMutation) AddInputTokens(i int64) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *UsageRecordMutation) AddedInputTokens() (r int64, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *UsageRecordMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *UsageRecordMutation) SetOutputTokens(i int64) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *UsageRecordMutation) OutputTokens() (r int64, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldOutputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *UsageRecordMutation) AddOutputTokens(i int64) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *UsageRecordMutation) AddedOutputTokens() (r int64, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *UsageRecordMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCachedTokens sets the "cached_tokens" field.
func (m *UsageRecordMutation) SetCachedTokens(i int64) {
	m.cached_tokens = &i
	m.addcached_tokens = nil
}

// CachedTokens returns the value of the "cached_tokens" field in the mutation.
func (m *UsageRecordMutation) CachedTokens() (r int64, exists bool) {
	v := m.cached_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCachedTokens returns the old "cached_tokens" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldCachedTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCachedTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCachedTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCachedTokens: %w", err)
	}
	return oldValue.CachedTokens, nil
}

// AddCachedTokens adds i to the "cached_tokens" field.
func (m *UsageRecordMutation) AddCachedTokens(i int64) {
	if m.addcached_tokens != nil {
		*m.addcached_tokens += i
	} else {
		m.addcached_tokens = &i
	}
}

// AddedCachedTokens returns the value that was added to the "cached_tokens" field in this mutation.
func (m *UsageRecordMutation) AddedCachedTokens() (r int64, exists bool) {
	v := m.addcached_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCachedTokens resets all changes to the "cached_tokens" field.
func (m *UsageRecordMutation) ResetCachedTokens() {
	m.cached_tokens = nil
	m.addcached_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *UsageRecordMutation) SetTotalTokens(i int64) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *UsageRecordMutation) TotalTokens() (r int64, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldTotalTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *UsageRecordMutation) AddTotalTokens(i int64) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *UsageRecordMutation) AddedTotalTokens() (r int64, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *UsageRecordMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetCost sets the "cost" field.
func (m *UsageRecordMutation) SetCost(d decimal.Decimal) {
	m.cost = &d
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *UsageRecordMutation) Cost() (r decimal.Decimal, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldCost(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds d to the "cost" field.
func (m *UsageRecordMutation) AddCost(d decimal.Decimal) {
	if m.addcost != nil {
		*m.addcost = m.addcost.Add(d)
	} else {
		m.addcost = &d
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *UsageRecordMutation) AddedCost() (r decimal.Decimal, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *UsageRecordMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetOperation sets the "operation" field.
func (m *UsageRecordMutation) SetOperation(u usagerecord.Operation) {
	m.operation = &u
}

// Operation returns the value of the "operation" field in the mutation.
func (m *UsageRecordMutation) Operation() (r usagerecord.Operation, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldOperation(ctx context.Context) (v usagerecord.Operation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *UsageRecordMutation) ResetOperation() {
	m.operation = nil
}

// SetPersonality sets the "personality" field.
func (m *UsageRecordMutation) SetPersonality(s string) {
	m.personality = &s
}

// Personality returns the value of the "personality" field in the mutation.
func (m *UsageRecordMutation) Personality() (r string, exists bool) {
	v := m.personality
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonality returns the old "personality" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldPersonality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonality: %w", err)
	}
	return oldValue.Personality, nil
}

// ClearPersonality clears the value of the "personality" field.
func (m *UsageRecordMutation) ClearPersonality() {
	m.personality = nil
	m.clearedFields[usagerecord.FieldPersonality] = struct{}{}
}

// PersonalityCleared returns if the "personality" field was cleared in this mutation.
func (m *UsageRecordMutation) PersonalityCleared() bool {
	_, ok := m.clearedFields[usagerecord.FieldPersonality]
	return ok
}

// ResetPersonality resets all changes to the "personality" field.
func (m *UsageRecordMutation) ResetPersonality() {
	m.personality = nil
	delete(m.clearedFields, usagerecord.FieldPersonality)
}

// SetRoundNumber sets the "round_number" field.
func (m *UsageRecordMutation) SetRoundNumber(i int) {
	m.round_number = &i
	m.addround_number = nil
}

// RoundNumber returns the value of the "round_number" field in the mutation.
func (m *UsageRecordMutation) RoundNumber() (r int, exists bool) {
	v := m.round_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundNumber returns the old "round_number" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldRoundNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundNumber: %w", err)
	}
	return oldValue.RoundNumber, nil
}

// AddRoundNumber adds i to the "round_number" field.
func (m *UsageRecordMutation) AddRoundNumber(i int) {
	if m.addround_number != nil {
		*m.addround_number += i
	} else {
		m.addround_number = &i
	}
}

// AddedRoundNumber returns the value that was added to the "round_number" field in this mutation.
func (m *UsageRecordMutation) AddedRoundNumber() (r int, exists bool) {
	v := m.addround_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearRoundNumber clears the value of the "round_number" field.
func (m *UsageRecordMutation) ClearRoundNumber() {
	m.round_number = nil
	m.addround_number = nil
	m.clearedFields[usagerecord.FieldRoundNumber] = struct{}{}
}

// RoundNumberCleared returns if the "round_number" field was cleared in this mutation.
func (m *UsageRecordMutation) RoundNumberCleared() bool {
	_, ok := m.clearedFields[usagerecord.FieldRoundNumber]
	return ok
}

// ResetRoundNumber resets all changes to the "round_number" field.
func (m *UsageRecordMutation) ResetRoundNumber() {
	m.round_number = nil
	m.addround_number = nil
	delete(m.clearedFields, usagerecord.FieldRoundNumber)
}

// SetEstimated sets the "estimated" field.
func (m *UsageRecordMutation) SetEstimated(b bool) {
	m.estimated = &b
}

// Estimated returns the value of the "estimated" field in the mutation.
func (m *UsageRecordMutation) Estimated() (r bool, exists bool) {
	v := m.estimated
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimated returns the old "estimated" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldEstimated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimated: %w", err)
	}
	return oldValue.Estimated, nil
}

// ResetEstimated resets all changes to the "estimated" field.
func (m *UsageRecordMutation) ResetEstimated() {
	m.estimated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UsageRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UsageRecordMutation builder.
func (m *UsageRecordMutation) Where(ps ...predicate.UsageRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageRecord).
func (m *UsageRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageRecordMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.user_id != nil {
		fields = append(fields, usagerecord.FieldUserID)
	}
	if m.debate_id != nil {
		fields = append(fields, usagerecord.FieldDebateID)
	}
	if m.provider != nil {
		fields = append(fields, usagerecord.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, usagerecord.FieldModel)
	}
	if m.input_tokens != nil {
		fields = append(fields, usagerecord.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, usagerecord.FieldOutputTokens)
	}
	if m.cached_tokens != nil {
		fields = append(fields, usagerecord.FieldCachedTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, usagerecord.FieldTotalTokens)
	}
	if m.cost != nil {
		fields = append(fields, usagerecord.FieldCost)
	}
	if m.operation != nil {
		fields = append(fields, usagerecord.FieldOperation)
	}
	if m.personality != nil {
		fields = append(fields, usagerecord.FieldPersonality)
	}
	if m.round_number != nil {
		fields = append(fields, usagerecord.FieldRoundNumber)
	}
	if m.estimated != nil {
		fields = append(fields, usagerecord.FieldEstimated)
	}
	if m.created_at != nil {
		fields = append(fields, usagerecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usagerecord.FieldUserID:
		return m.UserID()
	case usagerecord.FieldDebateID:
		return m.DebateID()
	case usagerecord.FieldProvider:
		return m.Provider()
	case usagerecord.FieldModel:
		return m.Model()
	case usagerecord.FieldInputTokens:
		return m.InputTokens()
	case usagerecord.FieldOutputTokens:
		return m.OutputTokens()
	case usagerecord.FieldCachedTokens:
		return m.CachedTokens()
	case usagerecord.FieldTotalTokens:
		return m.TotalTokens()
	case usagerecord.FieldCost:
		return m.Cost()
	case usagerecord.FieldOperation:
		return m.Operation()
	case usagerecord.FieldPersonality:
		return m.Personality()
	case usagerecord.FieldRoundNumber:
		return m.RoundNumber()
	case usagerecord.FieldEstimated:
		return m.Estimated()
	case usagerecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usagerecord.FieldUserID:
		return m.OldUserID(ctx)
	case usagerecord.FieldDebateID:
		return m.OldDebateID(ctx)
	case usagerecord.FieldProvider:
		return m.OldProvider(ctx)
	case usagerecord.FieldModel:
		return m.OldModel(ctx)
	case usagerecord.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case usagerecord.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case usagerecord.FieldCachedTokens:
		return m.OldCachedTokens(ctx)
	case usagerecord.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case usagerecord.FieldCost:
		return m.OldCost(ctx)
	case usagerecord.FieldOperation:
		return m.OldOperation(ctx)
	case usagerecord.FieldPersonality:
		return m.OldPersonality(ctx)
	case usagerecord.FieldRoundNumber:
		return m.OldRoundNumber(ctx)
	case usagerecord.FieldEstimated:
		return m.OldEstimated(ctx)
	case usagerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usagerecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usagerecord.FieldDebateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebateID(v)
		return nil
	case usagerecord.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case usagerecord.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case usagerecord.FieldInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case usagerecord.FieldOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case usagerecord.FieldCachedTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCachedTokens(v)
		return nil
	case usagerecord.FieldTotalTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case usagerecord.FieldCost:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case usagerecord.FieldOperation:
		v, ok := value.(usagerecord.Operation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case usagerecord.FieldPersonality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonality(v)
		return nil
	case usagerecord.FieldRoundNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundNumber(v)
		return nil
	case usagerecord.FieldEstimated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimated(v)
		return nil
	case usagerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageRecordMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, usagerecord.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, usagerecord.FieldOutputTokens)
	}
	if m.addcached_tokens != nil {
		fields = append(fields, usagerecord.FieldCachedTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, usagerecord.FieldTotalTokens)
	}
	if m.addcost != nil {
		fields = append(fields, usagerecord.FieldCost)
	}
	if m.addround_number != nil {
		fields = append(fields, usagerecord.FieldRoundNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usagerecord.FieldInputTokens:
		return m.AddedInputTokens()
	case usagerecord.FieldOutputTokens:
		return m.AddedOutputTokens()
	case usagerecord.FieldCachedTokens:
		return m.AddedCachedTokens()
	case usagerecord.FieldTotalTokens:
		return m.AddedTotalTokens()
	case usagerecord.FieldCost:
		return m.AddedCost()
	case usagerecord.FieldRoundNumber:
		return m.AddedRoundNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usagerecord.FieldInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case usagerecord.FieldOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case usagerecord.FieldCachedTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCachedTokens(v)
		return nil
	case usagerecord.FieldTotalTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case usagerecord.FieldCost:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case usagerecord.FieldRoundNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoundNumber(v)
		return nil
	}
	return fmt.Errorf("unknown UsageRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usagerecord.FieldPersonality) {
		fields = append(fields, usagerecord.FieldPersonality)
	}
	if m.FieldCleared(usagerecord.FieldRoundNumber) {
		fields = append(fields, usagerecord.FieldRoundNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageRecordMutation) ClearField(name string) error {
	switch name {
	case usagerecord.FieldPersonality:
		m.ClearPersonality()
		return nil
	case usagerecord.FieldRoundNumber:
		m.ClearRoundNumber()
		return nil
	}
	return fmt.Errorf("unknown UsageRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageRecordMutation) ResetField(name string) error {
	switch name {
	case usagerecord.FieldUserID:
		m.ResetUserID()
		return nil
	case usagerecord.FieldDebateID:
		m.ResetDebateID()
		return nil
	case usagerecord.FieldProvider:
		m.ResetProvider()
		return nil
	case usagerecord.FieldModel:
		m.ResetModel()
		return nil
	case usagerecord.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case usagerecord.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case usagerecord.FieldCachedTokens:
		m.ResetCachedTokens()
		return nil
	case usagerecord.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case usagerecord.FieldCost:
		m.ResetCost()
		return nil
	case usagerecord.FieldOperation:
		m.ResetOperation()
		return nil
	case usagerecord.FieldPersonality:
		m.ResetPersonality()
		return nil
	case usagerecord.FieldRoundNumber:
		m.ResetRoundNumber()
		return nil
	case usagerecord.FieldEstimated:
		m.ResetEstimated()
		return nil
	case usagerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UsageRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UsageRecord edge %s", name)
}
