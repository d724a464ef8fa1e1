// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DebatesColumns holds the columns for the "debates" table.
	DebatesColumns = []*schema.Column{
		{Name: "debate_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "settings", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "current_round", Type: field.TypeInt, Default: 0},
		{Name: "total_input_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "total_output_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "total_cost", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,6)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// DebatesTable holds the schema information for the "debates" table.
	DebatesTable = &schema.Table{
		Name:       "debates",
		Columns:    DebatesColumns,
		PrimaryKey: []*schema.Column{DebatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "debate_user_id",
				Unique:  false,
				Columns: []*schema.Column{DebatesColumns[1]},
			},
			{
				Name:    "debate_status",
				Unique:  false,
				Columns: []*schema.Column{DebatesColumns[6]},
			},
			{
				Name:    "debate_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DebatesColumns[1], DebatesColumns[11]},
			},
			{
				Name:    "debate_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{DebatesColumns[1], DebatesColumns[6]},
			},
		},
	}
	// DebateRoundsColumns holds the columns for the "debate_rounds" table.
	DebateRoundsColumns = []*schema.Column{
		{Name: "round_id", Type: field.TypeString, Unique: true},
		{Name: "round_number", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "debate_id", Type: field.TypeString},
	}
	// DebateRoundsTable holds the schema information for the "debate_rounds" table.
	DebateRoundsTable = &schema.Table{
		Name:       "debate_rounds",
		Columns:    DebateRoundsColumns,
		PrimaryKey: []*schema.Column{DebateRoundsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "debate_rounds_debates_rounds",
				Columns:    []*schema.Column{DebateRoundsColumns[3]},
				RefColumns: []*schema.Column{DebatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "debateround_debate_id_round_number",
				Unique:  true,
				Columns: []*schema.Column{DebateRoundsColumns[3], DebateRoundsColumns[1]},
			},
		},
	}
	// DebateSynthesisColumns holds the columns for the "debate_synthesis" table.
	DebateSynthesisColumns = []*schema.Column{
		{Name: "synthesis_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "input_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,6)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "debate_id", Type: field.TypeString, Unique: true},
	}
	// DebateSynthesisTable holds the schema information for the "debate_synthesis" table.
	DebateSynthesisTable = &schema.Table{
		Name:       "debate_synthesis",
		Columns:    DebateSynthesisColumns,
		PrimaryKey: []*schema.Column{DebateSynthesisColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "debate_synthesis_debates_synthesis",
				Columns:    []*schema.Column{DebateSynthesisColumns[6]},
				RefColumns: []*schema.Column{DebatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// PersonalityResponsesColumns holds the columns for the "personality_responses" table.
	PersonalityResponsesColumns = []*schema.Column{
		{Name: "response_id", Type: field.TypeString, Unique: true},
		{Name: "personality", Type: field.TypeString},
		{Name: "response_index", Type: field.TypeInt},
		{Name: "thinking", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "input_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,6)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "round_id", Type: field.TypeString},
	}
	// PersonalityResponsesTable holds the schema information for the "personality_responses" table.
	PersonalityResponsesTable = &schema.Table{
		Name:       "personality_responses",
		Columns:    PersonalityResponsesColumns,
		PrimaryKey: []*schema.Column{PersonalityResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "personality_responses_debate_rounds_responses",
				Columns:    []*schema.Column{PersonalityResponsesColumns[9]},
				RefColumns: []*schema.Column{DebateRoundsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "personalityresponse_round_id_response_index",
				Unique:  true,
				Columns: []*schema.Column{PersonalityResponsesColumns[9], PersonalityResponsesColumns[2]},
			},
		},
	}
	// UsageRecordsColumns holds the columns for the "usage_records" table.
	UsageRecordsColumns = []*schema.Column{
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "debate_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt64},
		{Name: "output_tokens", Type: field.TypeInt64},
		{Name: "cached_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt64},
		{Name: "cost", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,6)"}},
		{Name: "operation", Type: field.TypeEnum, Enums: []string{"debate_response", "synthesis", "consensus_check"}},
		{Name: "personality", Type: field.TypeString, Nullable: true},
		{Name: "round_number", Type: field.TypeInt, Nullable: true},
		{Name: "estimated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsageRecordsTable holds the schema information for the "usage_records" table.
	UsageRecordsTable = &schema.Table{
		Name:       "usage_records",
		Columns:    UsageRecordsColumns,
		PrimaryKey: []*schema.Column{UsageRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagerecord_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageRecordsColumns[1], UsageRecordsColumns[14]},
			},
			{
				Name:    "usagerecord_debate_id",
				Unique:  false,
				Columns: []*schema.Column{UsageRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DebatesTable,
		DebateRoundsTable,
		DebateSynthesisTable,
		PersonalityResponsesTable,
		UsageRecordsTable,
	}
)

func init() {
	DebatesTable.Annotation = &entsql.Annotation{
		Table: "debates",
	}
	DebateRoundsTable.ForeignKeys[0].RefTable = DebatesTable
	DebateRoundsTable.Annotation = &entsql.Annotation{
		Table: "debate_rounds",
	}
	DebateSynthesisTable.ForeignKeys[0].RefTable = DebatesTable
	DebateSynthesisTable.Annotation = &entsql.Annotation{
		Table: "debate_synthesis",
	}
	PersonalityResponsesTable.ForeignKeys[0].RefTable = DebateRoundsTable
	PersonalityResponsesTable.Annotation = &entsql.Annotation{
		Table: "personality_responses",
	}
	UsageRecordsTable.Annotation = &entsql.Annotation{
		Table: "usage_records",
	}
}
