// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/roundtable-ai/roundtable/ent/debateround"
	"github.com/roundtable-ai/roundtable/ent/personalityresponse"
	"github.com/shopspring/decimal"
)

// PersonalityResponse is the model entity for the PersonalityResponse schema.
type PersonalityResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RoundID holds the value of the "round_id" field.
	RoundID string `json:"round_id,omitempty"`
	// Name of the emitting personality
	Personality string `json:"personality,omitempty"`
	// Position matching the declared personality order
	ResponseIndex int `json:"response_index,omitempty"`
	// Content inside a <think>...</think> block, if any
	Thinking *string `json:"thinking,omitempty"`
	// Answer holds the value of the "answer" field.
	Answer string `json:"answer,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int64 `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int64 `json:"output_tokens,omitempty"`
	// Cost holds the value of the "cost" field.
	Cost decimal.Decimal `json:"cost,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PersonalityResponseQuery when eager-loading is set.
	Edges        PersonalityResponseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PersonalityResponseEdges holds the relations/edges for other nodes in the graph.
type PersonalityResponseEdges struct {
	// Round holds the value of the round edge.
	Round *DebateRound `json:"round,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RoundOrErr returns the Round value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PersonalityResponseEdges) RoundOrErr() (*DebateRound, error) {
	if e.Round != nil {
		return e.Round, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: debateround.Label}
	}
	return nil, &NotLoadedError{edge: "round"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PersonalityResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case personalityresponse.FieldCost:
			values[i] = new(decimal.Decimal)
		case personalityresponse.FieldResponseIndex, personalityresponse.FieldInputTokens, personalityresponse.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case personalityresponse.FieldID, personalityresponse.FieldRoundID, personalityresponse.FieldPersonality, personalityresponse.FieldThinking, personalityresponse.FieldAnswer:
			values[i] = new(sql.NullString)
		case personalityresponse.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PersonalityResponse fields.
func (_m *PersonalityResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case personalityresponse.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case personalityresponse.FieldRoundID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field round_id", values[i])
			} else if value.Valid {
				_m.RoundID = value.String
			}
		case personalityresponse.FieldPersonality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field personality", values[i])
			} else if value.Valid {
				_m.Personality = value.String
			}
		case personalityresponse.FieldResponseIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_index", values[i])
			} else if value.Valid {
				_m.ResponseIndex = int(value.Int64)
			}
		case personalityresponse.FieldThinking:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thinking", values[i])
			} else if value.Valid {
				_m.Thinking = new(string)
				*_m.Thinking = value.String
			}
		case personalityresponse.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case personalityresponse.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = value.Int64
			}
		case personalityresponse.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = value.Int64
			}
		case personalityresponse.FieldCost:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value != nil {
				_m.Cost = *value
			}
		case personalityresponse.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PersonalityResponse.
// This includes values selected through modifiers, order, etc.
func (_m *PersonalityResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRound queries the "round" edge of the PersonalityResponse entity.
func (_m *PersonalityResponse) QueryRound() *DebateRoundQuery {
	return NewPersonalityResponseClient(_m.config).QueryRound(_m)
}

// Update returns a builder for updating this PersonalityResponse.
// Note that you need to call PersonalityResponse.Unwrap() before calling this method if this PersonalityResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PersonalityResponse) Update() *PersonalityResponseUpdateOne {
	return NewPersonalityResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PersonalityResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PersonalityResponse) Unwrap() *PersonalityResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PersonalityResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PersonalityResponse) String() string {
	var builder strings.Builder
	builder.WriteString("PersonalityResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("round_id=")
	builder.WriteString(_m.RoundID)
	builder.WriteString(", ")
	builder.WriteString("personality=")
	builder.WriteString(_m.Personality)
	builder.WriteString(", ")
	builder.WriteString("response_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseIndex))
	builder.WriteString(", ")
	if v := _m.Thinking; v != nil {
		builder.WriteString("thinking=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cost))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PersonalityResponses is a parsable slice of PersonalityResponse.
type PersonalityResponses []*PersonalityResponse
