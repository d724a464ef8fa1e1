package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DebateRound holds the schema definition for one round of a debate.
// Rounds are 1-indexed and strictly monotone within a debate.
type DebateRound struct {
	ent.Schema
}

// Annotations of the DebateRound.
func (DebateRound) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "debate_rounds"},
	}
}

// Fields of the DebateRound.
func (DebateRound) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("round_id").
			Unique().
			Immutable(),
		field.String("debate_id").
			Immutable(),
		field.Int("round_number").
			Comment("1-based position within the debate"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DebateRound.
func (DebateRound) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("debate", Debate.Type).
			Ref("rounds").
			Field("debate_id").
			Unique().
			Required().
			Immutable(),
		edge.To("responses", PersonalityResponse.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the DebateRound.
func (DebateRound) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("debate_id", "round_number").
			Unique(),
	}
}
