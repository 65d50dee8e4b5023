// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GradedItemsColumns holds the columns for the "graded_items" table.
	GradedItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "subject", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "student_answer", Type: field.TypeString, Default: ""},
		{Name: "correct_answer", Type: field.TypeString, Default: ""},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "analysis_status", Type: field.TypeString, Default: "pending"},
		{Name: "base_branch", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "detailed_branch", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "error_type", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "specific_issue", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "evidence", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "suggestion", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true, Default: 0},
		{Name: "analyzed_at", Type: field.TypeTime, Nullable: true},
		{Name: "weakness_key", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "synced", Type: field.TypeBool, Default: false},
		{Name: "graded_at", Type: field.TypeTime},
	}
	// GradedItemsTable holds the schema information for the "graded_items" table.
	GradedItemsTable = &schema.Table{
		Name:       "graded_items",
		Columns:    GradedItemsColumns,
		PrimaryKey: []*schema.Column{GradedItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gradeditem_item_id",
				Unique:  true,
				Columns: []*schema.Column{GradedItemsColumns[1]},
			},
			{
				Name:    "gradeditem_analysis_status",
				Unique:  false,
				Columns: []*schema.Column{GradedItemsColumns[7]},
			},
			{
				Name:    "gradeditem_subject",
				Unique:  false,
				Columns: []*schema.Column{GradedItemsColumns[2]},
			},
			{
				Name:    "gradeditem_synced",
				Unique:  false,
				Columns: []*schema.Column{GradedItemsColumns[18]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// WeaknessEntriesColumns holds the columns for the "weakness_entries" table.
	WeaknessEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "subject", Type: field.TypeString},
		{Name: "base_branch", Type: field.TypeString},
		{Name: "detailed_branch", Type: field.TypeString},
		{Name: "count", Type: field.TypeInt, Default: 0},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// WeaknessEntriesTable holds the schema information for the "weakness_entries" table.
	WeaknessEntriesTable = &schema.Table{
		Name:       "weakness_entries",
		Columns:    WeaknessEntriesColumns,
		PrimaryKey: []*schema.Column{WeaknessEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "weaknessentry_key",
				Unique:  true,
				Columns: []*schema.Column{WeaknessEntriesColumns[1]},
			},
			{
				Name:    "weaknessentry_subject_base_branch",
				Unique:  false,
				Columns: []*schema.Column{WeaknessEntriesColumns[2], WeaknessEntriesColumns[3]},
			},
			{
				Name:    "weaknessentry_count",
				Unique:  false,
				Columns: []*schema.Column{WeaknessEntriesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GradedItemsTable,
		LlmRequestEventsTable,
		WeaknessEntriesTable,
	}
)

func init() {
}
