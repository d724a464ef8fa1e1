package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// UsageRecord holds an immutable, append-only record of one priced LLM call.
// Records reference a debate by id only — they are owned by the user and
// survive debate deletion for auditing.
type UsageRecord struct {
	ent.Schema
}

// Annotations of the UsageRecord.
func (UsageRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "usage_records"},
	}
}

// Fields of the UsageRecord.
func (UsageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("record_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("debate_id").
			Immutable().
			Comment("Plain reference, no FK — outlives debate deletion"),
		field.String("provider").
			Immutable(),
		field.String("model").
			Immutable(),
		field.Int64("input_tokens").
			Immutable(),
		field.Int64("output_tokens").
			Immutable(),
		field.Int64("cached_tokens").
			Default(0).
			Immutable(),
		field.Int64("total_tokens").
			Immutable().
			Comment("Always input_tokens + output_tokens"),
		field.Float("cost").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,6)"}).
			Immutable(),
		field.Enum("operation").
			Values("debate_response", "synthesis", "consensus_check").
			Immutable(),
		field.String("personality").
			Optional().
			Immutable(),
		field.Int("round_number").
			Optional().
			Nillable().
			Immutable(),
		field.Bool("estimated").
			Default(false).
			Immutable().
			Comment("True when token counts came from the local estimator"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the UsageRecord.
func (UsageRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("debate_id"),
	}
}
