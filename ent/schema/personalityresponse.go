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

// PersonalityResponse holds one personality's contribution to a round.
type PersonalityResponse struct {
	ent.Schema
}

// Annotations of the PersonalityResponse.
func (PersonalityResponse) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "personality_responses"},
	}
}

// Fields of the PersonalityResponse.
func (PersonalityResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("response_id").
			Unique().
			Immutable(),
		field.String("round_id").
			Immutable(),
		field.String("personality").
			Comment("Name of the emitting personality"),
		field.Int("response_index").
			Comment("Position matching the declared personality order"),
		field.Text("thinking").
			Optional().
			Nillable().
			Comment("Content inside a <think>...</think> block, if any"),
		field.Text("answer"),
		field.Int64("input_tokens").
			Default(0),
		field.Int64("output_tokens").
			Default(0),
		field.Float("cost").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,6)"}).
			DefaultFunc(func() decimal.Decimal { return decimal.Zero }),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PersonalityResponse.
func (PersonalityResponse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("round", DebateRound.Type).
			Ref("responses").
			Field("round_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PersonalityResponse.
func (PersonalityResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("round_id", "response_index").
			Unique(),
	}
}
