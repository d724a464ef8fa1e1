// Code generated by ent, DO NOT EDIT.

package debateround

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the debateround type in the database.
	Label = "debate_round"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "round_id"
	// FieldDebateID holds the string denoting the debate_id field in the database.
	FieldDebateID = "debate_id"
	// FieldRoundNumber holds the string denoting the round_number field in the database.
	FieldRoundNumber = "round_number"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDebate holds the string denoting the debate edge name in mutations.
	EdgeDebate = "debate"
	// EdgeResponses holds the string denoting the responses edge name in mutations.
	EdgeResponses = "responses"
	// DebateFieldID holds the string denoting the ID field of the Debate.
	DebateFieldID = "debate_id"
	// PersonalityResponseFieldID holds the string denoting the ID field of the PersonalityResponse.
	PersonalityResponseFieldID = "response_id"
	// Table holds the table name of the debateround in the database.
	Table = "debate_rounds"
	// DebateTable is the table that holds the debate relation/edge.
	DebateTable = "debate_rounds"
	// DebateInverseTable is the table name for the Debate entity.
	// It exists in this package in order to avoid circular dependency with the "debate" package.
	DebateInverseTable = "debates"
	// DebateColumn is the table column denoting the debate relation/edge.
	DebateColumn = "debate_id"
	// ResponsesTable is the table that holds the responses relation/edge.
	ResponsesTable = "personality_responses"
	// ResponsesInverseTable is the table name for the PersonalityResponse entity.
	// It exists in this package in order to avoid circular dependency with the "personalityresponse" package.
	ResponsesInverseTable = "personality_responses"
	// ResponsesColumn is the table column denoting the responses relation/edge.
	ResponsesColumn = "round_id"
)

// Columns holds all SQL columns for debateround fields.
var Columns = []string{
	FieldID,
	FieldDebateID,
	FieldRoundNumber,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the DebateRound queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDebateID orders the results by the debate_id field.
func ByDebateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDebateID, opts...).ToFunc()
}

// ByRoundNumber orders the results by the round_number field.
func ByRoundNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundNumber, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDebateField orders the results by debate field.
func ByDebateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDebateStep(), sql.OrderByField(field, opts...))
	}
}

// ByResponsesCount orders the results by responses count.
func ByResponsesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResponsesStep(), opts...)
	}
}

// ByResponses orders the results by responses terms.
func ByResponses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResponsesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDebateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DebateInverseTable, DebateFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DebateTable, DebateColumn),
	)
}
func newResponsesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResponsesInverseTable, PersonalityResponseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResponsesTable, ResponsesColumn),
	)
}
