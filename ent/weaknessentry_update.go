// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pvaidya/recheck/ent/predicate"
	"github.com/pvaidya/recheck/ent/weaknessentry"
)

// WeaknessEntryUpdate is the builder for updating WeaknessEntry entities.
type WeaknessEntryUpdate struct {
	config
	hooks    []Hook
	mutation *WeaknessEntryMutation
}

// Where appends a list predicates to the WeaknessEntryUpdate builder.
func (_u *WeaknessEntryUpdate) Where(ps ...predicate.WeaknessEntry) *WeaknessEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *WeaknessEntryUpdate) SetSubject(v string) *WeaknessEntryUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *WeaknessEntryUpdate) SetNillableSubject(v *string) *WeaknessEntryUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBaseBranch sets the "base_branch" field.
func (_u *WeaknessEntryUpdate) SetBaseBranch(v string) *WeaknessEntryUpdate {
	_u.mutation.SetBaseBranch(v)
	return _u
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_u *WeaknessEntryUpdate) SetNillableBaseBranch(v *string) *WeaknessEntryUpdate {
	if v != nil {
		_u.SetBaseBranch(*v)
	}
	return _u
}

// SetDetailedBranch sets the "detailed_branch" field.
func (_u *WeaknessEntryUpdate) SetDetailedBranch(v string) *WeaknessEntryUpdate {
	_u.mutation.SetDetailedBranch(v)
	return _u
}

// SetNillableDetailedBranch sets the "detailed_branch" field if the given value is not nil.
func (_u *WeaknessEntryUpdate) SetNillableDetailedBranch(v *string) *WeaknessEntryUpdate {
	if v != nil {
		_u.SetDetailedBranch(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *WeaknessEntryUpdate) SetCount(v int) *WeaknessEntryUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *WeaknessEntryUpdate) SetNillableCount(v *int) *WeaknessEntryUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *WeaknessEntryUpdate) AddCount(v int) *WeaknessEntryUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *WeaknessEntryUpdate) SetLastSeen(v time.Time) *WeaknessEntryUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *WeaknessEntryUpdate) SetNillableLastSeen(v *time.Time) *WeaknessEntryUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the WeaknessEntryMutation object of the builder.
func (_u *WeaknessEntryUpdate) Mutation() *WeaknessEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeaknessEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeaknessEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeaknessEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeaknessEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeaknessEntryUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := weaknessentry.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseBranch(); ok {
		if err := weaknessentry.BaseBranchValidator(v); err != nil {
			return &ValidationError{Name: "base_branch", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.base_branch": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DetailedBranch(); ok {
		if err := weaknessentry.DetailedBranchValidator(v); err != nil {
			return &ValidationError{Name: "detailed_branch", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.detailed_branch": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Count(); ok {
		if err := weaknessentry.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.count": %w`, err)}
		}
	}
	return nil
}

func (_u *WeaknessEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weaknessentry.Table, weaknessentry.Columns, sqlgraph.NewFieldSpec(weaknessentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(weaknessentry.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseBranch(); ok {
		_spec.SetField(weaknessentry.FieldBaseBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.DetailedBranch(); ok {
		_spec.SetField(weaknessentry.FieldDetailedBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(weaknessentry.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(weaknessentry.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(weaknessentry.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weaknessentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeaknessEntryUpdateOne is the builder for updating a single WeaknessEntry entity.
type WeaknessEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeaknessEntryMutation
}

// SetSubject sets the "subject" field.
func (_u *WeaknessEntryUpdateOne) SetSubject(v string) *WeaknessEntryUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *WeaknessEntryUpdateOne) SetNillableSubject(v *string) *WeaknessEntryUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBaseBranch sets the "base_branch" field.
func (_u *WeaknessEntryUpdateOne) SetBaseBranch(v string) *WeaknessEntryUpdateOne {
	_u.mutation.SetBaseBranch(v)
	return _u
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_u *WeaknessEntryUpdateOne) SetNillableBaseBranch(v *string) *WeaknessEntryUpdateOne {
	if v != nil {
		_u.SetBaseBranch(*v)
	}
	return _u
}

// SetDetailedBranch sets the "detailed_branch" field.
func (_u *WeaknessEntryUpdateOne) SetDetailedBranch(v string) *WeaknessEntryUpdateOne {
	_u.mutation.SetDetailedBranch(v)
	return _u
}

// SetNillableDetailedBranch sets the "detailed_branch" field if the given value is not nil.
func (_u *WeaknessEntryUpdateOne) SetNillableDetailedBranch(v *string) *WeaknessEntryUpdateOne {
	if v != nil {
		_u.SetDetailedBranch(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *WeaknessEntryUpdateOne) SetCount(v int) *WeaknessEntryUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *WeaknessEntryUpdateOne) SetNillableCount(v *int) *WeaknessEntryUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *WeaknessEntryUpdateOne) AddCount(v int) *WeaknessEntryUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *WeaknessEntryUpdateOne) SetLastSeen(v time.Time) *WeaknessEntryUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *WeaknessEntryUpdateOne) SetNillableLastSeen(v *time.Time) *WeaknessEntryUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the WeaknessEntryMutation object of the builder.
func (_u *WeaknessEntryUpdateOne) Mutation() *WeaknessEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the WeaknessEntryUpdate builder.
func (_u *WeaknessEntryUpdateOne) Where(ps ...predicate.WeaknessEntry) *WeaknessEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeaknessEntryUpdateOne) Select(field string, fields ...string) *WeaknessEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeaknessEntry entity.
func (_u *WeaknessEntryUpdateOne) Save(ctx context.Context) (*WeaknessEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeaknessEntryUpdateOne) SaveX(ctx context.Context) *WeaknessEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeaknessEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeaknessEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeaknessEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := weaknessentry.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseBranch(); ok {
		if err := weaknessentry.BaseBranchValidator(v); err != nil {
			return &ValidationError{Name: "base_branch", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.base_branch": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DetailedBranch(); ok {
		if err := weaknessentry.DetailedBranchValidator(v); err != nil {
			return &ValidationError{Name: "detailed_branch", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.detailed_branch": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Count(); ok {
		if err := weaknessentry.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.count": %w`, err)}
		}
	}
	return nil
}

func (_u *WeaknessEntryUpdateOne) sqlSave(ctx context.Context) (_node *WeaknessEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weaknessentry.Table, weaknessentry.Columns, sqlgraph.NewFieldSpec(weaknessentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WeaknessEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weaknessentry.FieldID)
		for _, f := range fields {
			if !weaknessentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != weaknessentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(weaknessentry.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseBranch(); ok {
		_spec.SetField(weaknessentry.FieldBaseBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.DetailedBranch(); ok {
		_spec.SetField(weaknessentry.FieldDetailedBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(weaknessentry.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(weaknessentry.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(weaknessentry.FieldLastSeen, field.TypeTime, value)
	}
	_node = &WeaknessEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weaknessentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
