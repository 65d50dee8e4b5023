// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pvaidya/recheck/ent/predicate"
	"github.com/pvaidya/recheck/ent/weaknessentry"
)

// WeaknessEntryDelete is the builder for deleting a WeaknessEntry entity.
type WeaknessEntryDelete struct {
	config
	hooks    []Hook
	mutation *WeaknessEntryMutation
}

// Where appends a list predicates to the WeaknessEntryDelete builder.
func (_d *WeaknessEntryDelete) Where(ps ...predicate.WeaknessEntry) *WeaknessEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WeaknessEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WeaknessEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WeaknessEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(weaknessentry.Table, sqlgraph.NewFieldSpec(weaknessentry.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WeaknessEntryDeleteOne is the builder for deleting a single WeaknessEntry entity.
type WeaknessEntryDeleteOne struct {
	_d *WeaknessEntryDelete
}

// Where appends a list predicates to the WeaknessEntryDelete builder.
func (_d *WeaknessEntryDeleteOne) Where(ps ...predicate.WeaknessEntry) *WeaknessEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WeaknessEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{weaknessentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WeaknessEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
