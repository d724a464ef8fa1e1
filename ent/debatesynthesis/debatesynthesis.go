// Code generated by ent, DO NOT EDIT.

package debatesynthesis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shopspring/decimal"
)

const (
	// Label holds the string label denoting the debatesynthesis type in the database.
	Label = "debate_synthesis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "synthesis_id"
	// FieldDebateID holds the string denoting the debate_id field in the database.
	FieldDebateID = "debate_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDebate holds the string denoting the debate edge name in mutations.
	EdgeDebate = "debate"
	// DebateFieldID holds the string denoting the ID field of the Debate.
	DebateFieldID = "debate_id"
	// Table holds the table name of the debatesynthesis in the database.
	Table = "debate_synthesis"
	// DebateTable is the table that holds the debate relation/edge.
	DebateTable = "debate_synthesis"
	// DebateInverseTable is the table name for the Debate entity.
	// It exists in this package in order to avoid circular dependency with the "debate" package.
	DebateInverseTable = "debates"
	// DebateColumn is the table column denoting the debate relation/edge.
	DebateColumn = "debate_id"
)

// Columns holds all SQL columns for debatesynthesis fields.
var Columns = []string{
	FieldID,
	FieldDebateID,
	FieldContent,
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

// OrderOption defines the ordering options for the DebateSynthesis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDebateID orders the results by the debate_id field.
func ByDebateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDebateID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
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

// ByDebateField orders the results by debate field.
func ByDebateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDebateStep(), sql.OrderByField(field, opts...))
	}
}
func newDebateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DebateInverseTable, DebateFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, DebateTable, DebateColumn),
	)
}
