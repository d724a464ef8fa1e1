// Code generated by ent, DO NOT EDIT.

package debateround

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/roundtable-ai/roundtable/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldContainsFold(FieldID, id))
}

// DebateID applies equality check predicate on the "debate_id" field. It's identical to DebateIDEQ.
func DebateID(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldDebateID, v))
}

// RoundNumber applies equality check predicate on the "round_number" field. It's identical to RoundNumberEQ.
func RoundNumber(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldRoundNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldCreatedAt, v))
}

// DebateIDEQ applies the EQ predicate on the "debate_id" field.
func DebateIDEQ(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldDebateID, v))
}

// DebateIDNEQ applies the NEQ predicate on the "debate_id" field.
func DebateIDNEQ(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNEQ(FieldDebateID, v))
}

// DebateIDIn applies the In predicate on the "debate_id" field.
func DebateIDIn(vs ...string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIn(FieldDebateID, vs...))
}

// DebateIDNotIn applies the NotIn predicate on the "debate_id" field.
func DebateIDNotIn(vs ...string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotIn(FieldDebateID, vs...))
}

// DebateIDGT applies the GT predicate on the "debate_id" field.
func DebateIDGT(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGT(FieldDebateID, v))
}

// DebateIDGTE applies the GTE predicate on the "debate_id" field.
func DebateIDGTE(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGTE(FieldDebateID, v))
}

// DebateIDLT applies the LT predicate on the "debate_id" field.
func DebateIDLT(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLT(FieldDebateID, v))
}

// DebateIDLTE applies the LTE predicate on the "debate_id" field.
func DebateIDLTE(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLTE(FieldDebateID, v))
}

// DebateIDContains applies the Contains predicate on the "debate_id" field.
func DebateIDContains(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldContains(FieldDebateID, v))
}

// DebateIDHasPrefix applies the HasPrefix predicate on the "debate_id" field.
func DebateIDHasPrefix(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldHasPrefix(FieldDebateID, v))
}

// DebateIDHasSuffix applies the HasSuffix predicate on the "debate_id" field.
func DebateIDHasSuffix(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldHasSuffix(FieldDebateID, v))
}

// DebateIDEqualFold applies the EqualFold predicate on the "debate_id" field.
func DebateIDEqualFold(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEqualFold(FieldDebateID, v))
}

// DebateIDContainsFold applies the ContainsFold predicate on the "debate_id" field.
func DebateIDContainsFold(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldContainsFold(FieldDebateID, v))
}

// RoundNumberEQ applies the EQ predicate on the "round_number" field.
func RoundNumberEQ(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldRoundNumber, v))
}

// RoundNumberNEQ applies the NEQ predicate on the "round_number" field.
func RoundNumberNEQ(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNEQ(FieldRoundNumber, v))
}

// RoundNumberIn applies the In predicate on the "round_number" field.
func RoundNumberIn(vs ...int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIn(FieldRoundNumber, vs...))
}

// RoundNumberNotIn applies the NotIn predicate on the "round_number" field.
func RoundNumberNotIn(vs ...int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotIn(FieldRoundNumber, vs...))
}

// RoundNumberGT applies the GT predicate on the "round_number" field.
func RoundNumberGT(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGT(FieldRoundNumber, v))
}

// RoundNumberGTE applies the GTE predicate on the "round_number" field.
func RoundNumberGTE(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGTE(FieldRoundNumber, v))
}

// RoundNumberLT applies the LT predicate on the "round_number" field.
func RoundNumberLT(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLT(FieldRoundNumber, v))
}

// RoundNumberLTE applies the LTE predicate on the "round_number" field.
func RoundNumberLTE(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLTE(FieldRoundNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDebate applies the HasEdge predicate on the "debate" edge.
func HasDebate() predicate.DebateRound {
	return predicate.DebateRound(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DebateTable, DebateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDebateWith applies the HasEdge predicate on the "debate" edge with a given conditions (other predicates).
func HasDebateWith(preds ...predicate.Debate) predicate.DebateRound {
	return predicate.DebateRound(func(s *sql.Selector) {
		step := newDebateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResponses applies the HasEdge predicate on the "responses" edge.
func HasResponses() predicate.DebateRound {
	return predicate.DebateRound(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResponsesTable, ResponsesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResponsesWith applies the HasEdge predicate on the "responses" edge with a given conditions (other predicates).
func HasResponsesWith(preds ...predicate.PersonalityResponse) predicate.DebateRound {
	return predicate.DebateRound(func(s *sql.Selector) {
		step := newResponsesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DebateRound) predicate.DebateRound {
	return predicate.DebateRound(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DebateRound) predicate.DebateRound {
	return predicate.DebateRound(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DebateRound) predicate.DebateRound {
	return predicate.DebateRound(sql.NotPredicates(p))
}
