// Code generated by ent, DO NOT EDIT.

package debatesynthesis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/roundtable-ai/roundtable/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldContainsFold(FieldID, id))
}

// DebateID applies equality check predicate on the "debate_id" field. It's identical to DebateIDEQ.
func DebateID(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldDebateID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldContent, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldOutputTokens, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v decimal.Decimal) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldCost, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldCreatedAt, v))
}

// DebateIDEQ applies the EQ predicate on the "debate_id" field.
func DebateIDEQ(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldDebateID, v))
}

// DebateIDNEQ applies the NEQ predicate on the "debate_id" field.
func DebateIDNEQ(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNEQ(FieldDebateID, v))
}

// DebateIDIn applies the In predicate on the "debate_id" field.
func DebateIDIn(vs ...string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldIn(FieldDebateID, vs...))
}

// DebateIDNotIn applies the NotIn predicate on the "debate_id" field.
func DebateIDNotIn(vs ...string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNotIn(FieldDebateID, vs...))
}

// DebateIDGT applies the GT predicate on the "debate_id" field.
func DebateIDGT(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGT(FieldDebateID, v))
}

// DebateIDGTE applies the GTE predicate on the "debate_id" field.
func DebateIDGTE(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGTE(FieldDebateID, v))
}

// DebateIDLT applies the LT predicate on the "debate_id" field.
func DebateIDLT(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLT(FieldDebateID, v))
}

// DebateIDLTE applies the LTE predicate on the "debate_id" field.
func DebateIDLTE(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLTE(FieldDebateID, v))
}

// DebateIDContains applies the Contains predicate on the "debate_id" field.
func DebateIDContains(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldContains(FieldDebateID, v))
}

// DebateIDHasPrefix applies the HasPrefix predicate on the "debate_id" field.
func DebateIDHasPrefix(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldHasPrefix(FieldDebateID, v))
}

// DebateIDHasSuffix applies the HasSuffix predicate on the "debate_id" field.
func DebateIDHasSuffix(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldHasSuffix(FieldDebateID, v))
}

// DebateIDEqualFold applies the EqualFold predicate on the "debate_id" field.
func DebateIDEqualFold(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEqualFold(FieldDebateID, v))
}

// DebateIDContainsFold applies the ContainsFold predicate on the "debate_id" field.
func DebateIDContainsFold(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldContainsFold(FieldDebateID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldContainsFold(FieldContent, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int64) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLTE(FieldOutputTokens, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v decimal.Decimal) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v decimal.Decimal) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...decimal.Decimal) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...decimal.Decimal) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v decimal.Decimal) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v decimal.Decimal) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v decimal.Decimal) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v decimal.Decimal) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLTE(FieldCost, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDebate applies the HasEdge predicate on the "debate" edge.
func HasDebate() predicate.DebateSynthesis {
	return predicate.DebateSynthesis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DebateTable, DebateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDebateWith applies the HasEdge predicate on the "debate" edge with a given conditions (other predicates).
func HasDebateWith(preds ...predicate.Debate) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(func(s *sql.Selector) {
		step := newDebateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DebateSynthesis) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DebateSynthesis) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DebateSynthesis) predicate.DebateSynthesis {
	return predicate.DebateSynthesis(sql.NotPredicates(p))
}
