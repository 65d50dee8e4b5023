// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GradedItem is the predicate function for gradeditem builders.
type GradedItem func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// WeaknessEntry is the predicate function for weaknessentry builders.
type WeaknessEntry func(*sql.Selector)
