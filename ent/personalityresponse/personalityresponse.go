// Code generated by ent, DO NOT EDIT.

package personalityresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shopspring/decimal"
)

const (
	// Label holds the string label denoting the personalityresponse type in the database.
	Label = "personality_response"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "response_id"
	// FieldRoundID holds the string denoting the round_id field in the database.
	FieldRoundID = "round_id"
	// FieldPersonality holds the string denoting the personality field in the database.
	FieldPersonality = "personality"
	// FieldResponseIndex holds the string denoting the response_index field in the database.
	FieldResponseIndex = "response_index"
	// FieldThinking holds the string denoting the thinking field in the database.
	FieldThinking = "thinking"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRound holds the string denoting the round edge name in mutations.
	EdgeRound = "round"
	// DebateRoundFieldID holds the string denoting the ID field of the DebateRound.
	DebateRoundFieldID = "round_id"
	// Table holds the table name of the personalityresponse in the database.
	Table = "personality_responses"
	// RoundTable is the table that holds the round relation/edge.
	RoundTable = "personality_responses"
	// RoundInverseTable is the table name for the DebateRound entity.
	// It exists in this package in order to avoid circular dependency with the "debateround" package.
	RoundInverseTable = "debate_rounds"
	// RoundColumn is the table column denoting the round relation/edge.
	RoundColumn = "round_id"
)

// Columns holds all SQL columns for personalityresponse fields.
var Columns = []string{
	FieldID,
	FieldRoundID,
	FieldPersonality,
	FieldResponseIndex,
	FieldThinking,
	FieldAnswer,
	FieldInputTokens,
	FieldOutputTokens,
	FieldCost,
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
	// DefaultInputTokens holds the default value on creation for the "input_tokens" field.
	DefaultInputTokens int64
	// DefaultOutputTokens holds the default value on creation for the "output_tokens" field.
	DefaultOutputTokens int64
	// DefaultCost holds the default value on creation for the "cost" field.
	DefaultCost func() decimal.Decimal
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PersonalityResponse queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRoundID orders the results by the round_id field.
func ByRoundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundID, opts...).ToFunc()
}

// ByPersonality orders the results by the personality field.
func ByPersonality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonality, opts...).ToFunc()
}

// ByResponseIndex orders the results by the response_index field.
func ByResponseIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseIndex, opts...).ToFunc()
}

// ByThinking orders the results by the thinking field.
func ByThinking(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThinking, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRoundField orders the results by round field.
func ByRoundField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoundStep(), sql.OrderByField(field, opts...))
	}
}
func newRoundStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoundInverseTable, DebateRoundFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RoundTable, RoundColumn),
	)
}
