package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WeaknessEntry aggregates mistake/mastery frequency for one taxonomy path.
// Entries are created on the first mistake, floored at zero on mastery
// decrements, and never deleted.
type WeaknessEntry struct {
	ent.Schema
}

func (WeaknessEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Immutable().
			NotEmpty().
			Comment(`"<Subject>/<BaseBranch>/<DetailedBranch>"`),
		field.String("subject").NotEmpty(),
		field.String("base_branch").NotEmpty(),
		field.String("detailed_branch").NotEmpty(),
		field.Int("count").
			Default(0).
			NonNegative(),
		field.Time("last_seen").Default(time.Now),
	}
}

func (WeaknessEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").Unique(),
		index.Fields("subject", "base_branch"),
		index.Fields("count"),
	}
}
