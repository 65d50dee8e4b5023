// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pvaidya/recheck/ent/weaknessentry"
)

// WeaknessEntryCreate is the builder for creating a WeaknessEntry entity.
type WeaknessEntryCreate struct {
	config
	mutation *WeaknessEntryMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *WeaknessEntryCreate) SetKey(v string) *WeaknessEntryCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *WeaknessEntryCreate) SetSubject(v string) *WeaknessEntryCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetBaseBranch sets the "base_branch" field.
func (_c *WeaknessEntryCreate) SetBaseBranch(v string) *WeaknessEntryCreate {
	_c.mutation.SetBaseBranch(v)
	return _c
}

// SetDetailedBranch sets the "detailed_branch" field.
func (_c *WeaknessEntryCreate) SetDetailedBranch(v string) *WeaknessEntryCreate {
	_c.mutation.SetDetailedBranch(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *WeaknessEntryCreate) SetCount(v int) *WeaknessEntryCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *WeaknessEntryCreate) SetNillableCount(v *int) *WeaknessEntryCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *WeaknessEntryCreate) SetLastSeen(v time.Time) *WeaknessEntryCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *WeaknessEntryCreate) SetNillableLastSeen(v *time.Time) *WeaknessEntryCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// Mutation returns the WeaknessEntryMutation object of the builder.
func (_c *WeaknessEntryCreate) Mutation() *WeaknessEntryMutation {
	return _c.mutation
}

// Save creates the WeaknessEntry in the database.
func (_c *WeaknessEntryCreate) Save(ctx context.Context) (*WeaknessEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeaknessEntryCreate) SaveX(ctx context.Context) *WeaknessEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeaknessEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeaknessEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WeaknessEntryCreate) defaults() {
	if _, ok := _c.mutation.Count(); !ok {
		v := weaknessentry.DefaultCount
		_c.mutation.SetCount(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := weaknessentry.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeaknessEntryCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "WeaknessEntry.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := weaknessentry.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "WeaknessEntry.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := weaknessentry.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaseBranch(); !ok {
		return &ValidationError{Name: "base_branch", err: errors.New(`ent: missing required field "WeaknessEntry.base_branch"`)}
	}
	if v, ok := _c.mutation.BaseBranch(); ok {
		if err := weaknessentry.BaseBranchValidator(v); err != nil {
			return &ValidationError{Name: "base_branch", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.base_branch": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DetailedBranch(); !ok {
		return &ValidationError{Name: "detailed_branch", err: errors.New(`ent: missing required field "WeaknessEntry.detailed_branch"`)}
	}
	if v, ok := _c.mutation.DetailedBranch(); ok {
		if err := weaknessentry.DetailedBranchValidator(v); err != nil {
			return &ValidationError{Name: "detailed_branch", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.detailed_branch": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "WeaknessEntry.count"`)}
	}
	if v, ok := _c.mutation.Count(); ok {
		if err := weaknessentry.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "WeaknessEntry.count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "WeaknessEntry.last_seen"`)}
	}
	return nil
}

func (_c *WeaknessEntryCreate) sqlSave(ctx context.Context) (*WeaknessEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WeaknessEntryCreate) createSpec() (*WeaknessEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &WeaknessEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weaknessentry.Table, sqlgraph.NewFieldSpec(weaknessentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(weaknessentry.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(weaknessentry.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.BaseBranch(); ok {
		_spec.SetField(weaknessentry.FieldBaseBranch, field.TypeString, value)
		_node.BaseBranch = value
	}
	if value, ok := _c.mutation.DetailedBranch(); ok {
		_spec.SetField(weaknessentry.FieldDetailedBranch, field.TypeString, value)
		_node.DetailedBranch = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(weaknessentry.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(weaknessentry.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// WeaknessEntryCreateBulk is the builder for creating many WeaknessEntry entities in bulk.
type WeaknessEntryCreateBulk struct {
	config
	err      error
	builders []*WeaknessEntryCreate
}

// Save creates the WeaknessEntry entities in the database.
func (_c *WeaknessEntryCreateBulk) Save(ctx context.Context) ([]*WeaknessEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeaknessEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeaknessEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WeaknessEntryCreateBulk) SaveX(ctx context.Context) []*WeaknessEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeaknessEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeaknessEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
