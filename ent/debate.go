// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/roundtable-ai/roundtable/ent/debate"
	"github.com/roundtable-ai/roundtable/ent/debatesynthesis"
	"github.com/shopspring/decimal"
)

// Debate is the model entity for the Debate schema.
type Debate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owner; all service-level access is scoped to this user
	UserID string `json:"user_id,omitempty"`
	// The question being debated (1..10000 chars, validated upstream)
	Question string `json:"question,omitempty"`
	// Provider tag, e.g. 'anthropic', 'openai', 'ollama'
	Provider string `json:"provider,omitempty"`
	// Model tag for the provider
	Model string `json:"model,omitempty"`
	// max_rounds, temperature, personalities, include_synthesis
	Settings map[string]interface{} `json:"settings,omitempty"`
	// Status holds the value of the "status" field.
	Status debate.Status `json:"status,omitempty"`
	// CurrentRound holds the value of the "current_round" field.
	CurrentRound int `json:"current_round,omitempty"`
	// TotalInputTokens holds the value of the "total_input_tokens" field.
	TotalInputTokens int64 `json:"total_input_tokens,omitempty"`
	// TotalOutputTokens holds the value of the "total_output_tokens" field.
	TotalOutputTokens int64 `json:"total_output_tokens,omitempty"`
	// TotalCost holds the value of the "total_cost" field.
	TotalCost decimal.Decimal `json:"total_cost,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Set on first transition to active
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Set on transition to a terminal status
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DebateQuery when eager-loading is set.
	Edges        DebateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DebateEdges holds the relations/edges for other nodes in the graph.
type DebateEdges struct {
	// Rounds holds the value of the rounds edge.
	Rounds []*DebateRound `json:"rounds,omitempty"`
	// Synthesis holds the value of the synthesis edge.
	Synthesis *DebateSynthesis `json:"synthesis,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RoundsOrErr returns the Rounds value or an error if the edge
// was not loaded in eager-loading.
func (e DebateEdges) RoundsOrErr() ([]*DebateRound, error) {
	if e.loadedTypes[0] {
		return e.Rounds, nil
	}
	return nil, &NotLoadedError{edge: "rounds"}
}

// SynthesisOrErr returns the Synthesis value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DebateEdges) SynthesisOrErr() (*DebateSynthesis, error) {
	if e.Synthesis != nil {
		return e.Synthesis, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: debatesynthesis.Label}
	}
	return nil, &NotLoadedError{edge: "synthesis"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Debate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case debate.FieldSettings:
			values[i] = new([]byte)
		case debate.FieldTotalCost:
			values[i] = new(decimal.Decimal)
		case debate.FieldCurrentRound, debate.FieldTotalInputTokens, debate.FieldTotalOutputTokens:
			values[i] = new(sql.NullInt64)
		case debate.FieldID, debate.FieldUserID, debate.FieldQuestion, debate.FieldProvider, debate.FieldModel, debate.FieldStatus, debate.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case debate.FieldCreatedAt, debate.FieldUpdatedAt, debate.FieldStartedAt, debate.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Debate fields.
func (_m *Debate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case debate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case debate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case debate.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case debate.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case debate.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case debate.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case debate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = debate.Status(value.String)
			}
		case debate.FieldCurrentRound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_round", values[i])
			} else if value.Valid {
				_m.CurrentRound = int(value.Int64)
			}
		case debate.FieldTotalInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_input_tokens", values[i])
			} else if value.Valid {
				_m.TotalInputTokens = value.Int64
			}
		case debate.FieldTotalOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_output_tokens", values[i])
			} else if value.Valid {
				_m.TotalOutputTokens = value.Int64
			}
		case debate.FieldTotalCost:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost", values[i])
			} else if value != nil {
				_m.TotalCost = *value
			}
		case debate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case debate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case debate.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case debate.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case debate.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Debate.
// This includes values selected through modifiers, order, etc.
func (_m *Debate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRounds queries the "rounds" edge of the Debate entity.
func (_m *Debate) QueryRounds() *DebateRoundQuery {
	return NewDebateClient(_m.config).QueryRounds(_m)
}

// QuerySynthesis queries the "synthesis" edge of the Debate entity.
func (_m *Debate) QuerySynthesis() *DebateSynthesisQuery {
	return NewDebateClient(_m.config).QuerySynthesis(_m)
}

// Update returns a builder for updating this Debate.
// Note that you need to call Debate.Unwrap() before calling this method if this Debate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Debate) Update() *DebateUpdateOne {
	return NewDebateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Debate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Debate) Unwrap() *Debate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Debate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Debate) String() string {
	var builder strings.Builder
	builder.WriteString("Debate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Settings))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_round=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentRound))
	builder.WriteString(", ")
	builder.WriteString("total_input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalInputTokens))
	builder.WriteString(", ")
	builder.WriteString("total_output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalOutputTokens))
	builder.WriteString(", ")
	builder.WriteString("total_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCost))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Debates is a parsable slice of Debate.
type Debates []*Debate
