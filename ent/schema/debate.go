package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// Debate holds the schema definition for the Debate entity — the root of a
// multi-round, multi-personality debate transcript.
type Debate struct {
	ent.Schema
}

// Annotations of the Debate.
func (Debate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "debates"},
	}
}

// Fields of the Debate.
func (Debate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("debate_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Owner; all service-level access is scoped to this user"),
		field.Text("question").
			Comment("The question being debated (1..10000 chars, validated upstream)"),
		field.String("provider").
			Comment("Provider tag, e.g. 'anthropic', 'openai', 'ollama'"),
		field.String("model").
			Comment("Model tag for the provider"),
		field.JSON("settings", map[string]interface{}{}).
			Comment("max_rounds, temperature, personalities, include_synthesis"),
		field.Enum("status").
			Values("pending", "active", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int("current_round").
			Default(0),
		field.Int64("total_input_tokens").
			Default(0),
		field.Int64("total_output_tokens").
			Default(0),
		field.Float("total_cost").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,6)"}).
			DefaultFunc(func() decimal.Decimal { return decimal.Zero }),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("Set on first transition to active"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set on transition to a terminal status"),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the Debate.
func (Debate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("rounds", DebateRound.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("synthesis", DebateSynthesis.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Debate.
func (Debate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "status"),
	}
}
