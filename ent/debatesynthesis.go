// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/roundtable-ai/roundtable/ent/debate"
	"github.com/roundtable-ai/roundtable/ent/debatesynthesis"
	"github.com/shopspring/decimal"
)

// DebateSynthesis is the model entity for the DebateSynthesis schema.
type DebateSynthesis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DebateID holds the value of the "debate_id" field.
	DebateID string `json:"debate_id,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int64 `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int64 `json:"output_tokens,omitempty"`
	// Cost holds the value of the "cost" field.
	Cost decimal.Decimal `json:"cost,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DebateSynthesisQuery when eager-loading is set.
	Edges        DebateSynthesisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DebateSynthesisEdges holds the relations/edges for other nodes in the graph.
type DebateSynthesisEdges struct {
	// Debate holds the value of the debate edge.
	Debate *Debate `json:"debate,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DebateOrErr returns the Debate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DebateSynthesisEdges) DebateOrErr() (*Debate, error) {
	if e.Debate != nil {
		return e.Debate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: debate.Label}
	}
	return nil, &NotLoadedError{edge: "debate"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DebateSynthesis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case debatesynthesis.FieldCost:
			values[i] = new(decimal.Decimal)
		case debatesynthesis.FieldInputTokens, debatesynthesis.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case debatesynthesis.FieldID, debatesynthesis.FieldDebateID, debatesynthesis.FieldContent:
			values[i] = new(sql.NullString)
		case debatesynthesis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DebateSynthesis fields.
func (_m *DebateSynthesis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case debatesynthesis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case debatesynthesis.FieldDebateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field debate_id", values[i])
			} else if value.Valid {
				_m.DebateID = value.String
			}
		case debatesynthesis.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case debatesynthesis.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = value.Int64
			}
		case debatesynthesis.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = value.Int64
			}
		case debatesynthesis.FieldCost:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value != nil {
				_m.Cost = *value
			}
		case debatesynthesis.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DebateSynthesis.
// This includes values selected through modifiers, order, etc.
func (_m *DebateSynthesis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDebate queries the "debate" edge of the DebateSynthesis entity.
func (_m *DebateSynthesis) QueryDebate() *DebateQuery {
	return NewDebateSynthesisClient(_m.config).QueryDebate(_m)
}

// Update returns a builder for updating this DebateSynthesis.
// Note that you need to call DebateSynthesis.Unwrap() before calling this method if this DebateSynthesis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DebateSynthesis) Update() *DebateSynthesisUpdateOne {
	return NewDebateSynthesisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DebateSynthesis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DebateSynthesis) Unwrap() *DebateSynthesis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DebateSynthesis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DebateSynthesis) String() string {
	var builder strings.Builder
	builder.WriteString("DebateSynthesis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("debate_id=")
	builder.WriteString(_m.DebateID)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
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

// DebateSyntheses is a parsable slice of DebateSynthesis.
type DebateSyntheses []*DebateSynthesis
