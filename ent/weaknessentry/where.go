// Code generated by ent, DO NOT EDIT.

package weaknessentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/pvaidya/recheck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLTE(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldKey, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldSubject, v))
}

// BaseBranch applies equality check predicate on the "base_branch" field. It's identical to BaseBranchEQ.
func BaseBranch(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldBaseBranch, v))
}

// DetailedBranch applies equality check predicate on the "detailed_branch" field. It's identical to DetailedBranchEQ.
func DetailedBranch(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldDetailedBranch, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldCount, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldLastSeen, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldContainsFold(FieldKey, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldContainsFold(FieldSubject, v))
}

// BaseBranchEQ applies the EQ predicate on the "base_branch" field.
func BaseBranchEQ(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldBaseBranch, v))
}

// BaseBranchNEQ applies the NEQ predicate on the "base_branch" field.
func BaseBranchNEQ(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNEQ(FieldBaseBranch, v))
}

// BaseBranchIn applies the In predicate on the "base_branch" field.
func BaseBranchIn(vs ...string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldIn(FieldBaseBranch, vs...))
}

// BaseBranchNotIn applies the NotIn predicate on the "base_branch" field.
func BaseBranchNotIn(vs ...string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNotIn(FieldBaseBranch, vs...))
}

// BaseBranchGT applies the GT predicate on the "base_branch" field.
func BaseBranchGT(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGT(FieldBaseBranch, v))
}

// BaseBranchGTE applies the GTE predicate on the "base_branch" field.
func BaseBranchGTE(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGTE(FieldBaseBranch, v))
}

// BaseBranchLT applies the LT predicate on the "base_branch" field.
func BaseBranchLT(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLT(FieldBaseBranch, v))
}

// BaseBranchLTE applies the LTE predicate on the "base_branch" field.
func BaseBranchLTE(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLTE(FieldBaseBranch, v))
}

// BaseBranchContains applies the Contains predicate on the "base_branch" field.
func BaseBranchContains(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldContains(FieldBaseBranch, v))
}

// BaseBranchHasPrefix applies the HasPrefix predicate on the "base_branch" field.
func BaseBranchHasPrefix(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldHasPrefix(FieldBaseBranch, v))
}

// BaseBranchHasSuffix applies the HasSuffix predicate on the "base_branch" field.
func BaseBranchHasSuffix(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldHasSuffix(FieldBaseBranch, v))
}

// BaseBranchEqualFold applies the EqualFold predicate on the "base_branch" field.
func BaseBranchEqualFold(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEqualFold(FieldBaseBranch, v))
}

// BaseBranchContainsFold applies the ContainsFold predicate on the "base_branch" field.
func BaseBranchContainsFold(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldContainsFold(FieldBaseBranch, v))
}

// DetailedBranchEQ applies the EQ predicate on the "detailed_branch" field.
func DetailedBranchEQ(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldDetailedBranch, v))
}

// DetailedBranchNEQ applies the NEQ predicate on the "detailed_branch" field.
func DetailedBranchNEQ(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNEQ(FieldDetailedBranch, v))
}

// DetailedBranchIn applies the In predicate on the "detailed_branch" field.
func DetailedBranchIn(vs ...string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldIn(FieldDetailedBranch, vs...))
}

// DetailedBranchNotIn applies the NotIn predicate on the "detailed_branch" field.
func DetailedBranchNotIn(vs ...string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNotIn(FieldDetailedBranch, vs...))
}

// DetailedBranchGT applies the GT predicate on the "detailed_branch" field.
func DetailedBranchGT(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGT(FieldDetailedBranch, v))
}

// DetailedBranchGTE applies the GTE predicate on the "detailed_branch" field.
func DetailedBranchGTE(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGTE(FieldDetailedBranch, v))
}

// DetailedBranchLT applies the LT predicate on the "detailed_branch" field.
func DetailedBranchLT(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLT(FieldDetailedBranch, v))
}

// DetailedBranchLTE applies the LTE predicate on the "detailed_branch" field.
func DetailedBranchLTE(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLTE(FieldDetailedBranch, v))
}

// DetailedBranchContains applies the Contains predicate on the "detailed_branch" field.
func DetailedBranchContains(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldContains(FieldDetailedBranch, v))
}

// DetailedBranchHasPrefix applies the HasPrefix predicate on the "detailed_branch" field.
func DetailedBranchHasPrefix(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldHasPrefix(FieldDetailedBranch, v))
}

// DetailedBranchHasSuffix applies the HasSuffix predicate on the "detailed_branch" field.
func DetailedBranchHasSuffix(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldHasSuffix(FieldDetailedBranch, v))
}

// DetailedBranchEqualFold applies the EqualFold predicate on the "detailed_branch" field.
func DetailedBranchEqualFold(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEqualFold(FieldDetailedBranch, v))
}

// DetailedBranchContainsFold applies the ContainsFold predicate on the "detailed_branch" field.
func DetailedBranchContainsFold(v string) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldContainsFold(FieldDetailedBranch, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLTE(FieldCount, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WeaknessEntry) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WeaknessEntry) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WeaknessEntry) predicate.WeaknessEntry {
	return predicate.WeaknessEntry(sql.NotPredicates(p))
}
