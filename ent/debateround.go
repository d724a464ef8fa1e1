// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/roundtable-ai/roundtable/ent/debate"
	"github.com/roundtable-ai/roundtable/ent/debateround"
)

// DebateRound is the model entity for the DebateRound schema.
type DebateRound struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DebateID holds the value of the "debate_id" field.
	DebateID string `json:"debate_id,omitempty"`
	// 1-based position within the debate
	RoundNumber int `json:"round_number,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DebateRoundQuery when eager-loading is set.
	Edges        DebateRoundEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DebateRoundEdges holds the relations/edges for other nodes in the graph.
type DebateRoundEdges struct {
	// Debate holds the value of the debate edge.
	Debate *Debate `json:"debate,omitempty"`
	// Responses holds the value of the responses edge.
	Responses []*PersonalityResponse `json:"responses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DebateOrErr returns the Debate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DebateRoundEdges) DebateOrErr() (*Debate, error) {
	if e.Debate != nil {
		return e.Debate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: debate.Label}
	}
	return nil, &NotLoadedError{edge: "debate"}
}

// ResponsesOrErr returns the Responses value or an error if the edge
// was not loaded in eager-loading.
func (e DebateRoundEdges) ResponsesOrErr() ([]*PersonalityResponse, error) {
	if e.loadedTypes[1] {
		return e.Responses, nil
	}
	return nil, &NotLoadedError{edge: "responses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DebateRound) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case debateround.FieldRoundNumber:
			values[i] = new(sql.NullInt64)
		case debateround.FieldID, debateround.FieldDebateID:
			values[i] = new(sql.NullString)
		case debateround.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DebateRound fields.
func (_m *DebateRound) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case debateround.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case debateround.FieldDebateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field debate_id", values[i])
			} else if value.Valid {
				_m.DebateID = value.String
			}
		case debateround.FieldRoundNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round_number", values[i])
			} else if value.Valid {
				_m.RoundNumber = int(value.Int64)
			}
		case debateround.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DebateRound.
// This includes values selected through modifiers, order, etc.
func (_m *DebateRound) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDebate queries the "debate" edge of the DebateRound entity.
func (_m *DebateRound) QueryDebate() *DebateQuery {
	return NewDebateRoundClient(_m.config).QueryDebate(_m)
}

// QueryResponses queries the "responses" edge of the DebateRound entity.
func (_m *DebateRound) QueryResponses() *PersonalityResponseQuery {
	return NewDebateRoundClient(_m.config).QueryResponses(_m)
}

// Update returns a builder for updating this DebateRound.
// Note that you need to call DebateRound.Unwrap() before calling this method if this DebateRound
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DebateRound) Update() *DebateRoundUpdateOne {
	return NewDebateRoundClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DebateRound entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DebateRound) Unwrap() *DebateRound {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DebateRound is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DebateRound) String() string {
	var builder strings.Builder
	builder.WriteString("DebateRound(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("debate_id=")
	builder.WriteString(_m.DebateID)
	builder.WriteString(", ")
	builder.WriteString("round_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundNumber))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DebateRounds is a parsable slice of DebateRound.
type DebateRounds []*DebateRound
