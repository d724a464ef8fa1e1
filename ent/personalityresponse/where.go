// Code generated by ent, DO NOT EDIT.

package personalityresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/roundtable-ai/roundtable/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldContainsFold(FieldID, id))
}

// RoundID applies equality check predicate on the "round_id" field. It's identical to RoundIDEQ.
func RoundID(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldRoundID, v))
}

// Personality applies equality check predicate on the "personality" field. It's identical to PersonalityEQ.
func Personality(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldPersonality, v))
}

// ResponseIndex applies equality check predicate on the "response_index" field. It's identical to ResponseIndexEQ.
func ResponseIndex(v int) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldResponseIndex, v))
}

// Thinking applies equality check predicate on the "thinking" field. It's identical to ThinkingEQ.
func Thinking(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldThinking, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldAnswer, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldOutputTokens, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v decimal.Decimal) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldCost, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// RoundIDEQ applies the EQ predicate on the "round_id" field.
func RoundIDEQ(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldRoundID, v))
}

// RoundIDNEQ applies the NEQ predicate on the "round_id" field.
func RoundIDNEQ(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNEQ(FieldRoundID, v))
}

// RoundIDIn applies the In predicate on the "round_id" field.
func RoundIDIn(vs ...string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldIn(FieldRoundID, vs...))
}

// RoundIDNotIn applies the NotIn predicate on the "round_id" field.
func RoundIDNotIn(vs ...string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNotIn(FieldRoundID, vs...))
}

// RoundIDGT applies the GT predicate on the "round_id" field.
func RoundIDGT(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGT(FieldRoundID, v))
}

// RoundIDGTE applies the GTE predicate on the "round_id" field.
func RoundIDGTE(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGTE(FieldRoundID, v))
}

// RoundIDLT applies the LT predicate on the "round_id" field.
func RoundIDLT(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLT(FieldRoundID, v))
}

// RoundIDLTE applies the LTE predicate on the "round_id" field.
func RoundIDLTE(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLTE(FieldRoundID, v))
}

// RoundIDContains applies the Contains predicate on the "round_id" field.
func RoundIDContains(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldContains(FieldRoundID, v))
}

// RoundIDHasPrefix applies the HasPrefix predicate on the "round_id" field.
func RoundIDHasPrefix(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldHasPrefix(FieldRoundID, v))
}

// RoundIDHasSuffix applies the HasSuffix predicate on the "round_id" field.
func RoundIDHasSuffix(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldHasSuffix(FieldRoundID, v))
}

// RoundIDEqualFold applies the EqualFold predicate on the "round_id" field.
func RoundIDEqualFold(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEqualFold(FieldRoundID, v))
}

// RoundIDContainsFold applies the ContainsFold predicate on the "round_id" field.
func RoundIDContainsFold(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldContainsFold(FieldRoundID, v))
}

// PersonalityEQ applies the EQ predicate on the "personality" field.
func PersonalityEQ(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldPersonality, v))
}

// PersonalityNEQ applies the NEQ predicate on the "personality" field.
func PersonalityNEQ(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNEQ(FieldPersonality, v))
}

// PersonalityIn applies the In predicate on the "personality" field.
func PersonalityIn(vs ...string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldIn(FieldPersonality, vs...))
}

// PersonalityNotIn applies the NotIn predicate on the "personality" field.
func PersonalityNotIn(vs ...string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNotIn(FieldPersonality, vs...))
}

// PersonalityGT applies the GT predicate on the "personality" field.
func PersonalityGT(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGT(FieldPersonality, v))
}

// PersonalityGTE applies the GTE predicate on the "personality" field.
func PersonalityGTE(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGTE(FieldPersonality, v))
}

// PersonalityLT applies the LT predicate on the "personality" field.
func PersonalityLT(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLT(FieldPersonality, v))
}

// PersonalityLTE applies the LTE predicate on the "personality" field.
func PersonalityLTE(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLTE(FieldPersonality, v))
}

// PersonalityContains applies the Contains predicate on the "personality" field.
func PersonalityContains(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldContains(FieldPersonality, v))
}

// PersonalityHasPrefix applies the HasPrefix predicate on the "personality" field.
func PersonalityHasPrefix(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldHasPrefix(FieldPersonality, v))
}

// PersonalityHasSuffix applies the HasSuffix predicate on the "personality" field.
func PersonalityHasSuffix(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldHasSuffix(FieldPersonality, v))
}

// PersonalityEqualFold applies the EqualFold predicate on the "personality" field.
func PersonalityEqualFold(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEqualFold(FieldPersonality, v))
}

// PersonalityContainsFold applies the ContainsFold predicate on the "personality" field.
func PersonalityContainsFold(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldContainsFold(FieldPersonality, v))
}

// ResponseIndexEQ applies the EQ predicate on the "response_index" field.
func ResponseIndexEQ(v int) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldResponseIndex, v))
}

// ResponseIndexNEQ applies the NEQ predicate on the "response_index" field.
func ResponseIndexNEQ(v int) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNEQ(FieldResponseIndex, v))
}

// ResponseIndexIn applies the In predicate on the "response_index" field.
func ResponseIndexIn(vs ...int) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldIn(FieldResponseIndex, vs...))
}

// ResponseIndexNotIn applies the NotIn predicate on the "response_index" field.
func ResponseIndexNotIn(vs ...int) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNotIn(FieldResponseIndex, vs...))
}

// ResponseIndexGT applies the GT predicate on the "response_index" field.
func ResponseIndexGT(v int) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGT(FieldResponseIndex, v))
}

// ResponseIndexGTE applies the GTE predicate on the "response_index" field.
func ResponseIndexGTE(v int) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGTE(FieldResponseIndex, v))
}

// ResponseIndexLT applies the LT predicate on the "response_index" field.
func ResponseIndexLT(v int) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLT(FieldResponseIndex, v))
}

// ResponseIndexLTE applies the LTE predicate on the "response_index" field.
func ResponseIndexLTE(v int) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLTE(FieldResponseIndex, v))
}

// ThinkingEQ applies the EQ predicate on the "thinking" field.
func ThinkingEQ(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldThinking, v))
}

// ThinkingNEQ applies the NEQ predicate on the "thinking" field.
func ThinkingNEQ(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNEQ(FieldThinking, v))
}

// ThinkingIn applies the In predicate on the "thinking" field.
func ThinkingIn(vs ...string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldIn(FieldThinking, vs...))
}

// ThinkingNotIn applies the NotIn predicate on the "thinking" field.
func ThinkingNotIn(vs ...string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNotIn(FieldThinking, vs...))
}

// ThinkingGT applies the GT predicate on the "thinking" field.
func ThinkingGT(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGT(FieldThinking, v))
}

// ThinkingGTE applies the GTE predicate on the "thinking" field.
func ThinkingGTE(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGTE(FieldThinking, v))
}

// ThinkingLT applies the LT predicate on the "thinking" field.
func ThinkingLT(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLT(FieldThinking, v))
}

// ThinkingLTE applies the LTE predicate on the "thinking" field.
func ThinkingLTE(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLTE(FieldThinking, v))
}

// ThinkingContains applies the Contains predicate on the "thinking" field.
func ThinkingContains(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldContains(FieldThinking, v))
}

// ThinkingHasPrefix applies the HasPrefix predicate on the "thinking" field.
func ThinkingHasPrefix(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldHasPrefix(FieldThinking, v))
}

// ThinkingHasSuffix applies the HasSuffix predicate on the "thinking" field.
func ThinkingHasSuffix(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldHasSuffix(FieldThinking, v))
}

// ThinkingIsNil applies the IsNil predicate on the "thinking" field.
func ThinkingIsNil() predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldIsNull(FieldThinking))
}

// ThinkingNotNil applies the NotNil predicate on the "thinking" field.
func ThinkingNotNil() predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNotNull(FieldThinking))
}

// ThinkingEqualFold applies the EqualFold predicate on the "thinking" field.
func ThinkingEqualFold(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEqualFold(FieldThinking, v))
}

// ThinkingContainsFold applies the ContainsFold predicate on the "thinking" field.
func ThinkingContainsFold(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldContainsFold(FieldThinking, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldContainsFold(FieldAnswer, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int64) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLTE(FieldOutputTokens, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v decimal.Decimal) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v decimal.Decimal) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...decimal.Decimal) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...decimal.Decimal) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v decimal.Decimal) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v decimal.Decimal) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v decimal.Decimal) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v decimal.Decimal) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLTE(FieldCost, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRound applies the HasEdge predicate on the "round" edge.
func HasRound() predicate.PersonalityResponse {
	return predicate.PersonalityResponse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoundTable, RoundColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoundWith applies the HasEdge predicate on the "round" edge with a given conditions (other predicates).
func HasRoundWith(preds ...predicate.DebateRound) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(func(s *sql.Selector) {
		step := newRoundStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PersonalityResponse) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PersonalityResponse) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PersonalityResponse) predicate.PersonalityResponse {
	return predicate.PersonalityResponse(sql.NotPredicates(p))
}
