// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/punchd-io/punchd/ent/predicate"
	"github.com/punchd-io/punchd/ent/punchcardrequirement"
)

// PunchCardRequirementDelete is the builder for deleting a PunchCardRequirement entity.
type PunchCardRequirementDelete struct {
	config
	hooks    []Hook
	mutation *PunchCardRequirementMutation
}

// Where appends a list predicates to the PunchCardRequirementDelete builder.
func (_d *PunchCardRequirementDelete) Where(ps ...predicate.PunchCardRequirement) *PunchCardRequirementDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PunchCardRequirementDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PunchCardRequirementDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PunchCardRequirementDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(punchcardrequirement.Table, sqlgraph.NewFieldSpec(punchcardrequirement.FieldID, field.TypeString))
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

// PunchCardRequirementDeleteOne is the builder for deleting a single PunchCardRequirement entity.
type PunchCardRequirementDeleteOne struct {
	_d *PunchCardRequirementDelete
}

// Where appends a list predicates to the PunchCardRequirementDelete builder.
func (_d *PunchCardRequirementDeleteOne) Where(ps ...predicate.PunchCardRequirement) *PunchCardRequirementDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PunchCardRequirementDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{punchcardrequirement.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PunchCardRequirementDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
