package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GradedItem is the authoritative local record of one graded answer.
// Pass-1 grading creates it with analysis_status "pending"; the background
// classification workers are its only writers after that.
type GradedItem struct {
	ent.Schema
}

func (GradedItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Stable item identifier, also the idempotent reporting-store key"),
		field.String("subject").NotEmpty(),
		field.String("question_text").NotEmpty(),
		field.String("student_answer").Default(""),
		field.String("correct_answer").Default(""),
		field.Bool("is_correct"),
		field.String("analysis_status").
			Default("pending").
			Comment("pending, processing, completed, failed"),
		field.String("base_branch").Optional().Default(""),
		field.String("detailed_branch").Optional().Default(""),
		field.String("error_type").Optional().Default(""),
		field.String("specific_issue").Optional().Default(""),
		field.String("evidence").Optional().Default(""),
		field.String("suggestion").Optional().Default(""),
		field.Float("confidence").Optional().Default(0),
		field.Time("analyzed_at").Optional().Nillable(),
		field.String("weakness_key").Optional().Default(""),
		field.Int("attempt_count").
			Default(0).
			Comment("Remote classification attempts consumed so far"),
		field.Bool("synced").
			Default(false).
			Comment("Whether this record has been copied to the reporting store"),
		field.Time("graded_at").Default(time.Now).Immutable(),
	}
}

func (GradedItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id").Unique(),
		index.Fields("analysis_status"),
		index.Fields("subject"),
		index.Fields("synced"),
	}
}
