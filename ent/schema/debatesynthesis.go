package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/shopspring/decimal"
)

// DebateSynthesis holds the final integrated answer of a debate.
// At most one synthesis exists per debate.
type DebateSynthesis struct {
	ent.Schema
}

// Annotations of the DebateSynthesis.
func (DebateSynthesis) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "debate_synthesis"},
	}
}

// Fields of the DebateSynthesis.
func (DebateSynthesis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("synthesis_id").
			Unique().
			Immutable(),
		field.String("debate_id").
			Unique().
			Immutable(),
		field.Text("content"),
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

// Edges of the DebateSynthesis.
func (DebateSynthesis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("debate", Debate.Type).
			Ref("synthesis").
			Field("debate_id").
			Unique().
			Required().
			Immutable(),
	}
}
